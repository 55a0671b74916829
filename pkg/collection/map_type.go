package collection

// OrderedMap is the ordered map surface shared by Collection and anything
// that wants to stand in for it.
type OrderedMap[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, bool)
	Has(key K) bool
	Delete(key K) bool
	Clear()
	Keys() []K
	Values() []V
	Len() int
}

var _ OrderedMap[string, int] = (*Collection[string, int])(nil)
