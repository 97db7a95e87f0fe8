// Package anydict implements an ordered dictionary keyed by arbitrary types.
//
// A Dict is indexed through a caller-supplied projection from the key type
// to a string.  Two keys are the same entry exactly when their projections
// are equal; callers choose a projection that is injective for their domain.
// The original key object is stored alongside each value, so consumers
// always get their own key type back, never the projected string.
//
// Iteration order is lexicographic over projected strings, ascending, for
// every traversal (Keys, Values, Entries, All, Fold, Merge) and for the
// emitted JSON object shape.
//
// Every mutating operation returns a new Dict and leaves its receiver
// untouched, so any Dict value that has been published is safe for
// concurrent reads without locking.  The package provides no internal
// synchronization beyond that.
package anydict

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Entry is one key/value pair of a Dict.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Dict is an ordered dictionary from K to V, indexed by a string projection
// of K fixed at construction time.  The zero value behaves as an empty,
// read-only dictionary; use New, Singleton, or FromEntries to obtain a Dict
// that accepts mutations.
type Dict[K, V any] struct {
	project func(K) string
	keys    []string // ascending projected strings
	entries map[string]Entry[K, V]
}

// New returns an empty Dict indexed by project.
//
// project must be pure and stable: equal keys must project to the same
// string for the Dict's entire lifetime, because every operation recomputes
// the projection rather than caching it.
func New[K, V any](project func(K) string) Dict[K, V] {
	return Dict[K, V]{project: project}
}

// Singleton returns a Dict holding exactly one entry.
func Singleton[K, V any](project func(K) string, key K, value V) Dict[K, V] {
	return New[K, V](project).Set(key, value)
}

// FromEntries builds a Dict by inserting entries in order.  Later entries
// whose keys project to the same string overwrite earlier ones.
func FromEntries[K, V any](project func(K) string, entries []Entry[K, V]) Dict[K, V] {
	d := Dict[K, V]{
		project: project,
		entries: make(map[string]Entry[K, V], len(entries)),
	}
	for _, e := range entries {
		d.entries[project(e.Key)] = e
	}
	d.keys = make([]string, 0, len(d.entries))
	for s := range d.entries {
		d.keys = append(d.keys, s)
	}
	slices.Sort(d.keys)
	return d
}

// clone is the copy-on-write step shared by the mutating operations.
func (d Dict[K, V]) clone() Dict[K, V] {
	return Dict[K, V]{
		project: d.project,
		keys:    slices.Clone(d.keys),
		entries: maps.Clone(d.entries),
	}
}

// Get returns the value stored under key's projection.  The bool reports
// whether the entry was present; a miss is not an error.
func (d Dict[K, V]) Get(key K) (V, bool) {
	if len(d.entries) == 0 {
		var zero V
		return zero, false
	}
	e, ok := d.entries[d.project(key)]
	return e.Value, ok
}

// Has reports whether an entry is stored under key's projection.
func (d Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Set returns a Dict with value stored under key's projection, replacing
// any existing entry there.  The stored key object is always the argument,
// even when it replaces a colliding one.
func (d Dict[K, V]) Set(key K, value V) Dict[K, V] {
	s := d.project(key)
	nd := d.clone()
	if nd.entries == nil {
		nd.entries = make(map[string]Entry[K, V], 1)
	}
	if _, ok := nd.entries[s]; !ok {
		i := sort.SearchStrings(nd.keys, s)
		nd.keys = slices.Insert(nd.keys, i, s)
	}
	nd.entries[s] = Entry[K, V]{Key: key, Value: value}
	return nd
}

// Delete returns a Dict without any entry under key's projection.  Deleting
// an absent key is a no-op, not an error.
func (d Dict[K, V]) Delete(key K) Dict[K, V] {
	if len(d.entries) == 0 {
		return d
	}
	s := d.project(key)
	if _, ok := d.entries[s]; !ok {
		return d
	}
	nd := d.clone()
	delete(nd.entries, s)
	i := sort.SearchStrings(nd.keys, s)
	nd.keys = slices.Delete(nd.keys, i, i+1)
	return nd
}

// Update applies f to the current value under key (with ok reporting
// presence) and returns a Dict reflecting f's answer: (v, true) stores v
// under the argument key whether or not the entry existed, and (_, false)
// removes the entry whether or not it existed.
func (d Dict[K, V]) Update(key K, f func(value V, ok bool) (V, bool)) Dict[K, V] {
	v, ok := d.Get(key)
	nv, keep := f(v, ok)
	if keep {
		return d.Set(key, nv)
	}
	return d.Delete(key)
}

// Len returns the number of entries.
func (d Dict[K, V]) Len() int {
	return len(d.entries)
}

// IsEmpty reports whether the Dict has no entries.
func (d Dict[K, V]) IsEmpty() bool {
	return len(d.entries) == 0
}

// Keys returns the stored key objects, ascending by projected string.
func (d Dict[K, V]) Keys() []K {
	out := make([]K, len(d.keys))
	for i, s := range d.keys {
		out[i] = d.entries[s].Key
	}
	return out
}

// Values returns the stored values, aligned with Keys.
func (d Dict[K, V]) Values() []V {
	out := make([]V, len(d.keys))
	for i, s := range d.keys {
		out[i] = d.entries[s].Value
	}
	return out
}

// Entries returns the entries, ascending by projected string.
func (d Dict[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(d.keys))
	for i, s := range d.keys {
		out[i] = d.entries[s]
	}
	return out
}

// All returns an iterator over the entries, ascending by projected string.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, s := range d.keys {
			e := d.entries[s]
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (d Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteString("Dict{")
	for i, s := range d.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %v", s, d.entries[s].Value)
	}
	b.WriteByte('}')
	return b.String()
}
