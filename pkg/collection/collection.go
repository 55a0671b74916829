// Package collection provides Collection, an insertion-ordered map with
// array-like helpers for positional access, querying, set algebra and
// sorting.
//
// A Collection is not safe for concurrent use.
package collection

import (
	"fmt"
	"math/rand"
	"strings"
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type config struct {
	capacity int
	rand     *rand.Rand
}

type Option func(*config)

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithRand sets the source used by Random and friends. Derived collections
// share it.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

func (c *config) applyOptions(options []Option) {
	for _, option := range options {
		option(c)
	}
}

type Collection[K comparable, V any] struct {
	inner map[K]V
	keys  []K
	rand  *rand.Rand

	valueCache []V
	keyCache   []K
}

func New[K comparable, V any](options ...Option) *Collection[K, V] {
	cfg := config{}
	cfg.applyOptions(options)

	return newCollection[K, V](cfg.capacity, cfg.rand)
}

func NewWithCapacity[K comparable, V any](capacity int, options ...Option) *Collection[K, V] {
	return New[K, V](append([]Option{WithCapacity(capacity)}, options...)...)
}

// From builds a collection from entries. A repeated key keeps the position
// of its first occurrence and the value of its last.
func From[K comparable, V any](entries []Entry[K, V], options ...Option) *Collection[K, V] {
	c := New[K, V](append([]Option{WithCapacity(len(entries))}, options...)...)

	for _, e := range entries {
		c.Set(e.Key, e.Value)
	}

	return c
}

func newCollection[K comparable, V any](capacity int, r *rand.Rand) *Collection[K, V] {
	return &Collection[K, V]{
		inner: make(map[K]V, capacity),
		keys:  make([]K, 0, capacity),
		rand:  r,
	}
}

// derive returns an empty collection carrying the receiver's options.
func (c *Collection[K, V]) derive(capacity int) *Collection[K, V] {
	return newCollection[K, V](capacity, c.rand)
}

func (c *Collection[K, V]) invalidate() {
	c.valueCache = nil
	c.keyCache = nil
}

func (c *Collection[K, V]) Set(key K, value V) {
	if _, ok := c.inner[key]; !ok {
		c.keys = append(c.keys, key)
	}

	c.inner[key] = value
	c.invalidate()
}

func (c *Collection[K, V]) Get(key K) (V, bool) {
	value, ok := c.inner[key]

	return value, ok
}

func (c *Collection[K, V]) Has(key K) bool {
	_, ok := c.inner[key]
	return ok
}

// Ensure returns the value stored under key, storing fn(key) first if the
// key is missing.
func (c *Collection[K, V]) Ensure(key K, fn func(K) V) V {
	if value, ok := c.inner[key]; ok {
		return value
	}

	value := fn(key)
	c.Set(key, value)

	return value
}

func (c *Collection[K, V]) Delete(key K) bool {
	if _, ok := c.inner[key]; !ok {
		return false
	}

	delete(c.inner, key)

	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}

	c.invalidate()

	return true
}

func (c *Collection[K, V]) Clear() {
	c.inner = make(map[K]V)
	c.keys = c.keys[:0]
	c.invalidate()
}

func (c *Collection[K, V]) Len() int {
	return len(c.keys)
}

// values returns the cached value view. Callers must not modify it.
func (c *Collection[K, V]) values() []V {
	if c.valueCache == nil || len(c.valueCache) != len(c.keys) {
		c.valueCache = make([]V, len(c.keys))
		for i, k := range c.keys {
			c.valueCache[i] = c.inner[k]
		}
	}

	return c.valueCache
}

func (c *Collection[K, V]) orderedKeys() []K {
	if c.keyCache == nil || len(c.keyCache) != len(c.keys) {
		c.keyCache = make([]K, len(c.keys))
		copy(c.keyCache, c.keys)
	}

	return c.keyCache
}

// Values returns the values in order. The slice is owned by the caller.
func (c *Collection[K, V]) Values() []V {
	return append([]V(nil), c.values()...)
}

// Keys returns the keys in order. The slice is owned by the caller.
func (c *Collection[K, V]) Keys() []K {
	return append([]K(nil), c.orderedKeys()...)
}

func (c *Collection[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], len(c.keys))

	for i, k := range c.keys {
		entries[i] = Entry[K, V]{Key: k, Value: c.inner[k]}
	}

	return entries
}

// Range calls fn for each entry in order until fn returns false.
func (c *Collection[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range c.keys {
		if !fn(k, c.inner[k]) {
			break
		}
	}
}

func (c *Collection[K, V]) String() string {
	var b strings.Builder

	b.WriteString("Collection[")

	for i, k := range c.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, c.inner[k])
	}

	b.WriteByte(']')

	return b.String()
}
