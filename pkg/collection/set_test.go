package collection_test

import (
	"testing"

	"github.com/UTD-JLA/collection/pkg/collection"
	"github.com/stretchr/testify/assert"
)

func entries(pairs ...any) *collection.Collection[string, int] {
	c := collection.New[string, int]()

	for i := 0; i < len(pairs); i += 2 {
		c.Set(pairs[i].(string), pairs[i+1].(int))
	}

	return c
}

func TestClone(t *testing.T) {
	m := abc()
	clone := m.Clone()

	assert.True(t, clone.Equals(m))
	assert.True(t, m.Equals(clone))
	assert.NotSame(t, m, clone)

	clone.Set("a", 100)
	clone.Set("d", 4)
	clone.Delete("b")

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())
}

func TestCloneIsShallow(t *testing.T) {
	m := collection.New[string, *int]()
	n := 1
	m.Set("n", &n)

	clone := m.Clone()
	v, _ := clone.Get("n")
	*v = 2

	assert.Equal(t, 2, n)
	assert.True(t, clone.Equals(m))
}

func TestConcat(t *testing.T) {
	a := entries("a", 1, "b", 2)
	b := entries("b", 20, "c", 30)
	c := entries("c", 300, "d", 400)

	out := a.Concat(b, nil, c)

	assert.Equal(t, []string{"a", "b", "c", "d"}, out.Keys())
	assert.Equal(t, []int{1, 20, 300, 400}, out.Values())

	assert.Equal(t, []int{1, 2}, a.Values())
	assert.Equal(t, []int{20, 30}, b.Values())
	assert.Equal(t, []int{300, 400}, c.Values())
}

func TestEquals(t *testing.T) {
	m := abc()

	assert.True(t, m.Equals(m))
	assert.False(t, m.Equals(nil))
	assert.True(t, m.Equals(entries("c", 3, "b", 2, "a", 1)))
	assert.False(t, m.Equals(entries("a", 1, "b", 2)))
	assert.False(t, m.Equals(entries("a", 1, "b", 2, "c", 4)))
	assert.False(t, m.Equals(entries("a", 1, "b", 2, "d", 3)))
	assert.True(t, collection.New[string, int]().Equals(collection.New[string, int]()))
}

func TestEqualsIsNotDeep(t *testing.T) {
	shared := []int{1, 2}

	a := collection.New[string, []int]()
	a.Set("x", shared)

	b := collection.New[string, []int]()
	b.Set("x", shared)

	c := collection.New[string, []int]()
	c.Set("x", []int{1, 2})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))

	boxed := collection.New[string, any]()
	boxed.Set("x", shared)
	boxed.Set("n", 1)

	other := collection.New[string, any]()
	other.Set("x", shared)
	other.Set("n", 1)

	assert.True(t, boxed.Equals(other))

	other.Set("n", int64(1))
	assert.False(t, boxed.Equals(other))

	other.Set("n", nil)
	assert.False(t, boxed.Equals(other))
}

func TestEqualsFunc(t *testing.T) {
	a := collection.New[string, []int]()
	a.Set("x", []int{1, 2})

	b := collection.New[string, []int]()
	b.Set("x", []int{1, 2})

	sameLen := func(x, y []int) bool { return len(x) == len(y) }
	assert.True(t, a.EqualsFunc(b, sameLen))
	assert.False(t, a.EqualsFunc(nil, sameLen))
}

func TestIntersect(t *testing.T) {
	a := entries("a", 1, "b", 2, "c", 3)
	b := entries("c", 30, "b", 20, "d", 40)

	ab := a.Intersect(b)
	ba := b.Intersect(a)

	assert.ElementsMatch(t, ab.Keys(), ba.Keys())
	assert.ElementsMatch(t, []string{"b", "c"}, ab.Keys())

	v, _ := ab.Get("b")
	assert.Equal(t, 20, v)
	v, _ = ba.Get("b")
	assert.Equal(t, 2, v)

	assert.Zero(t, a.Intersect(nil).Len())
}

func TestDifference(t *testing.T) {
	a := entries("a", 1, "b", 2, "c", 3)
	b := entries("c", 30, "d", 40)

	ab := a.Difference(b)
	ba := b.Difference(a)

	assert.Equal(t, []string{"a", "b", "d"}, ab.Keys())
	assert.Equal(t, []int{1, 2, 40}, ab.Values())
	assert.ElementsMatch(t, ab.Keys(), ba.Keys())

	assert.True(t, a.Difference(nil).Equals(a))
	assert.Zero(t, a.Difference(a.Clone()).Len())
}

func TestReverse(t *testing.T) {
	m := abc()

	// prime the caches
	_ = m.Values()

	ret := m.Reverse()
	assert.Same(t, m, ret)
	assert.Equal(t, []string{"c", "b", "a"}, m.Keys())
	assert.Equal(t, []int{3, 2, 1}, m.Values())

	first, _ := m.First()
	assert.Equal(t, 3, first)

	m.Set("d", 4)
	assert.Equal(t, []string{"c", "b", "a", "d"}, m.Keys())

	empty := collection.New[string, int]()
	assert.Zero(t, empty.Reverse().Len())
}

type box struct {
	X    any
	tags []string
}

func TestEqualsWithReferenceFields(t *testing.T) {
	shared := []int{1}
	tags := []string{"a"}

	a := collection.New[string, box]()
	a.Set("k", box{X: shared, tags: tags})

	b := collection.New[string, box]()
	b.Set("k", box{X: shared, tags: tags})

	assert.NotPanics(t, func() { a.Equals(b) })
	assert.True(t, a.Equals(b))

	b.Set("k", box{X: []int{1}, tags: tags})
	assert.False(t, a.Equals(b))

	b.Set("k", box{X: shared, tags: []string{"a"}})
	assert.False(t, a.Equals(b))

	arrays := collection.New[string, [2]any]()
	arrays.Set("k", [2]any{map[string]int{}, 1})
	assert.NotPanics(t, func() { arrays.Equals(arrays.Clone()) })
	assert.True(t, arrays.Equals(arrays.Clone()))
}
