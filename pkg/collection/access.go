package collection

import "math/rand"

// First returns the first value, or false if the collection is empty.
func (c *Collection[K, V]) First() (V, bool) {
	return c.At(0)
}

// FirstN returns up to n values from the front. A negative n takes from the
// back instead, so FirstN(-2) is LastN(2).
func (c *Collection[K, V]) FirstN(n int) []V {
	if n < 0 {
		return c.LastN(-n)
	}

	return head(c.values(), n)
}

func (c *Collection[K, V]) FirstKey() (K, bool) {
	return c.KeyAt(0)
}

func (c *Collection[K, V]) FirstKeyN(n int) []K {
	if n < 0 {
		return c.LastKeyN(-n)
	}

	return head(c.orderedKeys(), n)
}

func (c *Collection[K, V]) Last() (V, bool) {
	return c.At(-1)
}

// LastN returns up to n values from the back, in collection order. A
// negative n takes from the front.
func (c *Collection[K, V]) LastN(n int) []V {
	if n < 0 {
		return c.FirstN(-n)
	}

	return tail(c.values(), n)
}

func (c *Collection[K, V]) LastKey() (K, bool) {
	return c.KeyAt(-1)
}

func (c *Collection[K, V]) LastKeyN(n int) []K {
	if n < 0 {
		return c.FirstKeyN(-n)
	}

	return tail(c.orderedKeys(), n)
}

// At returns the value at position i. Negative positions count from the
// end, -1 being the last entry.
func (c *Collection[K, V]) At(i int) (V, bool) {
	return index(c.values(), i)
}

func (c *Collection[K, V]) KeyAt(i int) (K, bool) {
	return index(c.orderedKeys(), i)
}

// Random returns a uniformly chosen value.
func (c *Collection[K, V]) Random() (V, bool) {
	values := c.values()

	if len(values) == 0 {
		var zero V
		return zero, false
	}

	return values[c.intn(len(values))], true
}

// RandomN returns up to n values drawn without replacement: no position is
// picked twice, though equal values stored under different keys may repeat.
func (c *Collection[K, V]) RandomN(n int) []V {
	return sample(c.values(), n, c.intn)
}

func (c *Collection[K, V]) RandomKey() (K, bool) {
	keys := c.orderedKeys()

	if len(keys) == 0 {
		var zero K
		return zero, false
	}

	return keys[c.intn(len(keys))], true
}

func (c *Collection[K, V]) RandomKeyN(n int) []K {
	return sample(c.orderedKeys(), n, c.intn)
}

func (c *Collection[K, V]) intn(n int) int {
	if c.rand != nil {
		return c.rand.Intn(n)
	}

	return rand.Intn(n)
}

func index[T any](s []T, i int) (T, bool) {
	if i < 0 {
		i += len(s)
	}

	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}

	return s[i], true
}

func head[T any](s []T, n int) []T {
	n = min(n, len(s))
	return append(make([]T, 0, n), s[:n]...)
}

func tail[T any](s []T, n int) []T {
	n = min(n, len(s))
	return append(make([]T, 0, n), s[len(s)-n:]...)
}

// sample picks up to n elements of s without replacement using a partial
// Fisher-Yates shuffle over a copy of the index pool.
func sample[T any](s []T, n int, intn func(int) int) []T {
	n = min(n, len(s))

	if n <= 0 {
		return []T{}
	}

	pool := make([]int, len(s))
	for i := range pool {
		pool[i] = i
	}

	result := make([]T, n)

	for i := 0; i < n; i++ {
		j := i + intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		result[i] = s[pool[i]]
	}

	return result
}
