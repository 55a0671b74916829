package collection

import (
	"encoding/json"
	"reflect"
)

// Clone returns a shallow copy.
func (c *Collection[K, V]) Clone() *Collection[K, V] {
	result := c.derive(c.Len())

	for _, k := range c.keys {
		result.Set(k, c.inner[k])
	}

	return result
}

// Concat returns a clone of c with the entries of others applied in order.
// None of the inputs are modified.
func (c *Collection[K, V]) Concat(others ...*Collection[K, V]) *Collection[K, V] {
	result := c.Clone()

	for _, other := range others {
		if other == nil {
			continue
		}

		for _, k := range other.keys {
			result.Set(k, other.inner[k])
		}
	}

	return result
}

// Equals reports whether both collections hold the same keys mapped to
// strictly equal values. Scalars are compared with ==; slices, maps, funcs
// and pointers by identity, including inside structs, arrays and
// interfaces. Order is ignored.
func (c *Collection[K, V]) Equals(other *Collection[K, V]) bool {
	return c.EqualsFunc(other, strictEqual[V])
}

func (c *Collection[K, V]) EqualsFunc(other *Collection[K, V], eq func(a, b V) bool) bool {
	if other == nil {
		return false
	}

	if c == other {
		return true
	}

	if c.Len() != other.Len() {
		return false
	}

	for k, v := range c.inner {
		ov, ok := other.inner[k]
		if !ok || !eq(v, ov) {
			return false
		}
	}

	return true
}

// Intersect returns the entries whose keys exist in both collections, with
// values taken from other.
func (c *Collection[K, V]) Intersect(other *Collection[K, V]) *Collection[K, V] {
	result := c.derive(0)

	if other == nil {
		return result
	}

	for _, k := range other.keys {
		if c.Has(k) {
			result.Set(k, other.inner[k])
		}
	}

	return result
}

// Difference returns the entries whose keys exist in exactly one of the two
// collections. Entries only in c come first.
func (c *Collection[K, V]) Difference(other *Collection[K, V]) *Collection[K, V] {
	if other == nil {
		return c.Clone()
	}

	result := c.derive(0)

	for _, k := range c.keys {
		if !other.Has(k) {
			result.Set(k, c.inner[k])
		}
	}

	for _, k := range other.keys {
		if !c.Has(k) {
			result.Set(k, other.inner[k])
		}
	}

	return result
}

// Reverse reverses the order in place.
func (c *Collection[K, V]) Reverse() *Collection[K, V] {
	for i, j := 0, len(c.keys)-1; i < j; i, j = i+1, j-1 {
		c.keys[i], c.keys[j] = c.keys[j], c.keys[i]
	}

	c.invalidate()

	return c
}

// MarshalJSON encodes the values, in order, as a JSON array. Keys are not
// part of the snapshot.
func (c *Collection[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.values())
}

func strictEqual[V any](a, b V) bool {
	return identical(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

// identical applies == field by field so that reference kinds nested in
// structs, arrays and interfaces compare by identity instead of panicking.
func identical(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return identical(a.Elem(), b.Elem())
	case reflect.Slice:
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !identical(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !identical(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	}

	return false
}
