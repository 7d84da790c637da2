package strenum

import (
	"fmt"
	"iter"
)

// Map is a map keyed by enum values. Entries are stored under the canonical
// string of the key, so a lookup by variant and a lookup by the raw
// canonical string always hit the same entry. Alias strings are not keys.
//
// The zero Map is empty and ready to use. A Map is not safe for concurrent
// writes.
type Map[K fmt.Stringer, V any] struct {
	entries map[string]mapEntry[K, V]
}

type mapEntry[K fmt.Stringer, V any] struct {
	key K
	val V
}

// NewMap returns an empty Map with room for size entries.
func NewMap[K fmt.Stringer, V any](size int) *Map[K, V] {
	return &Map[K, V]{entries: make(map[string]mapEntry[K, V], size)}
}

// Set stores v under k.
func (m *Map[K, V]) Set(k K, v V) {
	if m.entries == nil {
		m.entries = make(map[string]mapEntry[K, V])
	}
	m.entries[k.String()] = mapEntry[K, V]{key: k, val: v}
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.GetString(k.String())
}

// GetString returns the value stored under the variant whose canonical
// string is s.
func (m *Map[K, V]) GetString(s string) (V, bool) {
	e, ok := m.entries[s]
	return e.val, ok
}

// Delete removes the entry stored under k.
func (m *Map[K, V]) Delete(k K) {
	delete(m.entries, k.String())
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// All iterates over the entries in unspecified order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
