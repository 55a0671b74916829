package collection

import "errors"

var ErrEmptyReduction = errors.New("reduce of empty collection with no initial value")

// Find returns the first value, in order, that satisfies fn.
func (c *Collection[K, V]) Find(fn func(value V, key K) bool) (V, bool) {
	for _, k := range c.keys {
		if v := c.inner[k]; fn(v, k) {
			return v, true
		}
	}

	var zero V
	return zero, false
}

func (c *Collection[K, V]) FindKey(fn func(value V, key K) bool) (K, bool) {
	for _, k := range c.keys {
		if fn(c.inner[k], k) {
			return k, true
		}
	}

	var zero K
	return zero, false
}

// Sweep deletes every entry satisfying fn and returns how many were removed.
// fn sees the entries present when Sweep was called and may itself delete
// keys; entries already gone by the time they are reached are skipped.
func (c *Collection[K, V]) Sweep(fn func(value V, key K) bool) int {
	removed := 0

	for _, e := range c.Entries() {
		if !c.Has(e.Key) {
			continue
		}

		if fn(e.Value, e.Key) && c.Delete(e.Key) {
			removed++
		}
	}

	return removed
}

func (c *Collection[K, V]) HasAll(keys ...K) bool {
	for _, k := range keys {
		if !c.Has(k) {
			return false
		}
	}

	return true
}

func (c *Collection[K, V]) HasAny(keys ...K) bool {
	for _, k := range keys {
		if c.Has(k) {
			return true
		}
	}

	return false
}

func (c *Collection[K, V]) Count(fn func(value V, key K) bool) int {
	n := 0

	for _, k := range c.keys {
		if fn(c.inner[k], k) {
			n++
		}
	}

	return n
}

func (c *Collection[K, V]) Filter(fn func(value V, key K) bool) *Collection[K, V] {
	result := c.derive(0)

	for _, k := range c.keys {
		if v := c.inner[k]; fn(v, k) {
			result.Set(k, v)
		}
	}

	return result
}

// Partition splits the collection into the entries that satisfy fn and the
// ones that don't. Relative order is kept on both sides.
func (c *Collection[K, V]) Partition(fn func(value V, key K) bool) (pass, fail *Collection[K, V]) {
	pass, fail = c.derive(0), c.derive(0)

	for _, k := range c.keys {
		v := c.inner[k]

		if fn(v, k) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}

	return pass, fail
}

// Map collects fn(value, key) for every entry, in order.
func Map[K comparable, V, R any](c *Collection[K, V], fn func(value V, key K) R) []R {
	result := make([]R, 0, c.Len())

	for _, k := range c.keys {
		result = append(result, fn(c.inner[k], k))
	}

	return result
}

// MapValues returns a collection with the same keys and fn(value, key) as
// values.
func MapValues[K comparable, V, R any](c *Collection[K, V], fn func(value V, key K) R) *Collection[K, R] {
	result := newCollection[K, R](c.Len(), c.rand)

	for _, k := range c.keys {
		result.Set(k, fn(c.inner[k], k))
	}

	return result
}

// FlatMap merges the collections returned by fn into one. Later keys
// overwrite earlier ones.
func FlatMap[K comparable, V any, K2 comparable, V2 any](c *Collection[K, V], fn func(value V, key K) *Collection[K2, V2]) *Collection[K2, V2] {
	result := newCollection[K2, V2](0, c.rand)

	for _, k := range c.keys {
		part := fn(c.inner[k], k)
		if part == nil {
			continue
		}

		for _, k2 := range part.keys {
			result.Set(k2, part.inner[k2])
		}
	}

	return result
}

func (c *Collection[K, V]) Each(fn func(value V, key K)) *Collection[K, V] {
	for _, k := range c.keys {
		fn(c.inner[k], k)
	}

	return c
}

func (c *Collection[K, V]) Tap(fn func(*Collection[K, V])) *Collection[K, V] {
	fn(c)
	return c
}

func (c *Collection[K, V]) Some(fn func(value V, key K) bool) bool {
	_, ok := c.FindKey(fn)
	return ok
}

func (c *Collection[K, V]) Every(fn func(value V, key K) bool) bool {
	for _, k := range c.keys {
		if !fn(c.inner[k], k) {
			return false
		}
	}

	return true
}

// Reduce folds the collection from the left, seeding the accumulator with
// the first value. It fails with ErrEmptyReduction on an empty collection.
func (c *Collection[K, V]) Reduce(fn func(acc V, value V, key K) V) (V, error) {
	if len(c.keys) == 0 {
		var zero V
		return zero, ErrEmptyReduction
	}

	acc := c.inner[c.keys[0]]

	for _, k := range c.keys[1:] {
		acc = fn(acc, c.inner[k], k)
	}

	return acc, nil
}

// Fold is Reduce with an explicit initial accumulator of any type.
func Fold[K comparable, V, R any](c *Collection[K, V], initial R, fn func(acc R, value V, key K) R) R {
	acc := initial

	for _, k := range c.keys {
		acc = fn(acc, c.inner[k], k)
	}

	return acc
}
