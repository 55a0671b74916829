package collection

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Comparator orders two entries: negative puts a first, positive puts b
// first, zero keeps their current relative order.
type Comparator[K comparable, V any] func(a, b V, ka, kb K) int

// Sort reorders the collection in place. A nil comparator sorts values in
// ascending natural order. The sort is stable.
func (c *Collection[K, V]) Sort(compare Comparator[K, V]) *Collection[K, V] {
	if compare == nil {
		compare = defaultComparator[K, V]
	}

	slices.SortStableFunc(c.keys, func(ka, kb K) int {
		return compare(c.inner[ka], c.inner[kb], ka, kb)
	})

	c.invalidate()

	return c
}

// Sorted is Sort applied to a clone; c keeps its order.
func (c *Collection[K, V]) Sorted(compare Comparator[K, V]) *Collection[K, V] {
	return c.Clone().Sort(compare)
}

func defaultComparator[K comparable, V any](a, b V, _, _ K) int {
	return compareNatural(reflect.ValueOf(a), reflect.ValueOf(b))
}

// compareNatural orders numbers numerically across int, uint and float
// kinds, strings lexically and false before true. Other kinds, or a mix of
// classes, fall back to their formatted text.
func compareNatural(a, b reflect.Value) int {
	if isNumber(a) && isNumber(b) {
		return compareNumbers(a, b)
	}

	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Bool:
			return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
		}
	}

	return cmp.Compare(formatValue(a), formatValue(b))
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

// compareNumbers stays exact for any pair of integers and goes through
// float64 once a float is involved.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isInt(a) && isUint(b):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUint(a) && isInt(b):
		return -compareNumbers(b, a)
	}

	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}

	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}

	return v.String()
}
