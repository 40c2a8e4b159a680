// Package sequencedmap provides a map that remembers the order in which keys were first added.
//
// Element names, family names and other keys whose document order matters are collected into a
// sequenced map so that iteration reproduces that order deterministically.
package sequencedmap

import (
	"iter"
	"slices"
)

// Element is a key-value pair stored in a sequenced map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map that iterates in insertion order. The zero value is ready to use.
type Map[K comparable, V any] struct {
	index   map[K]int
	entries []*Element[K, V]
}

// New creates a new map holding elements. Later elements replace earlier ones with the same key.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		index:   make(map[K]int, len(elements)),
		entries: make([]*Element[K, V], 0, len(elements)),
	}
	for _, element := range elements {
		m.Set(element.Key, element.Value)
	}
	return m
}

// Len returns the number of keys in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Set stores value under key. A key that already exists keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}

	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}

	m.index[key] = len(m.entries)
	m.entries = append(m.entries, NewElem(key, value))
}

// Get returns the value stored under key and whether it was found. nil safe.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].Value, true
}

// GetOrZero returns the value stored under key or the zero value when there is none.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is in the map. nil safe.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// All iterates over the entries in insertion order. Entries added while iterating are not visited.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		for _, element := range slices.Clone(m.entries) {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates over the values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
