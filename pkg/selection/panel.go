// Package selection implements a single-choice panel over a closed set of keys.
//
// A Panel pairs a fixed table of entries with at most one selected key. It is a
// small value: toggling returns a new Panel and leaves the receiver untouched,
// so a caller can compute "what would the panel look like after clicking k"
// without committing to it.
package selection

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned by New when two entries share a key.
var ErrDuplicateKey = errors.New("duplicate key")

// Entry is one member of a panel's key set.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type table[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Panel holds a closed set of entries and at most one selected key.
// The zero Panel has no entries and nothing selected.
type Panel[K comparable, V any] struct {
	t        *table[K, V]
	selected K
	active   bool
}

// New builds an empty-selection panel from entries, keeping their order.
func New[K comparable, V any](entries ...Entry[K, V]) (Panel[K, V], error) {
	t := &table[K, V]{
		keys:   make([]K, 0, len(entries)),
		values: make(map[K]V, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.values[e.Key]; ok {
			return Panel[K, V]{}, fmt.Errorf("%w: %v", ErrDuplicateKey, e.Key)
		}
		t.keys = append(t.keys, e.Key)
		t.values[e.Key] = e.Value
	}
	return Panel[K, V]{t: t}, nil
}

// Toggle returns the panel after a click on k: clicking the selected key
// clears the selection, clicking any other member selects it instead.
// Keys outside the set leave the panel unchanged.
func (p Panel[K, V]) Toggle(k K) Panel[K, V] {
	if !p.Has(k) {
		return p
	}
	if p.active && p.selected == k {
		return p.Clear()
	}
	p.selected = k
	p.active = true
	return p
}

// Select returns the panel with k selected. ok is false, and the panel is
// returned unchanged, when k is not a member.
func (p Panel[K, V]) Select(k K) (next Panel[K, V], ok bool) {
	if !p.Has(k) {
		return p, false
	}
	p.selected = k
	p.active = true
	return p, true
}

// Clear returns the panel with nothing selected.
func (p Panel[K, V]) Clear() Panel[K, V] {
	var zero K
	p.selected = zero
	p.active = false
	return p
}

// Selected reports the selected key and its value.
func (p Panel[K, V]) Selected() (K, V, bool) {
	var (
		zk K
		zv V
	)
	if !p.active {
		return zk, zv, false
	}
	return p.selected, p.t.values[p.selected], true
}

// IsSelected reports whether k is the selected key.
func (p Panel[K, V]) IsSelected(k K) bool {
	return p.active && p.selected == k
}

// Has reports whether k is a member of the panel's key set.
func (p Panel[K, V]) Has(k K) bool {
	if p.t == nil {
		return false
	}
	_, ok := p.t.values[k]
	return ok
}

// Lookup returns the value stored for k.
func (p Panel[K, V]) Lookup(k K) (V, bool) {
	var zero V
	if p.t == nil {
		return zero, false
	}
	v, ok := p.t.values[k]
	return v, ok
}

// Keys returns the member keys in insertion order.
func (p Panel[K, V]) Keys() []K {
	if p.t == nil {
		return nil
	}
	out := make([]K, len(p.t.keys))
	copy(out, p.t.keys)
	return out
}

// Len returns the number of members.
func (p Panel[K, V]) Len() int {
	if p.t == nil {
		return 0
	}
	return len(p.t.keys)
}
