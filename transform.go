package anydict

import "slices"

// Filter returns a Dict keeping only the entries for which pred holds.
// The projection carries over and ordering is unchanged.
func (d Dict[K, V]) Filter(pred func(K, V) bool) Dict[K, V] {
	kept := make([]Entry[K, V], 0, len(d.keys))
	for _, s := range d.keys {
		e := d.entries[s]
		if pred(e.Key, e.Value) {
			kept = append(kept, e)
		}
	}
	return FromEntries(d.project, kept)
}

// Partition splits the Dict into the entries for which pred holds and
// those for which it does not.  The two results are disjoint and together
// hold exactly the receiver's entries.
func (d Dict[K, V]) Partition(pred func(K, V) bool) (Dict[K, V], Dict[K, V]) {
	yes := make([]Entry[K, V], 0, len(d.keys))
	no := make([]Entry[K, V], 0, len(d.keys))
	for _, s := range d.keys {
		e := d.entries[s]
		if pred(e.Key, e.Value) {
			yes = append(yes, e)
		} else {
			no = append(no, e)
		}
	}
	return FromEntries(d.project, yes), FromEntries(d.project, no)
}

// Map returns a Dict with f applied to every value.  Keys and their
// projections are untouched, so ordering and entry count are preserved.
//
// A package-level function because Go methods cannot introduce the result
// value type.
func Map[K, A, B any](d Dict[K, A], f func(K, A) B) Dict[K, B] {
	nd := Dict[K, B]{
		project: d.project,
		keys:    slices.Clone(d.keys),
		entries: make(map[string]Entry[K, B], len(d.entries)),
	}
	for s, e := range d.entries {
		nd.entries[s] = Entry[K, B]{Key: e.Key, Value: f(e.Key, e.Value)}
	}
	return nd
}

// Fold accumulates over the entries ascending by projected string.
func Fold[K, V, A any](d Dict[K, V], initial A, f func(K, V, A) A) A {
	acc := initial
	for _, s := range d.keys {
		e := d.entries[s]
		acc = f(e.Key, e.Value, acc)
	}
	return acc
}

// FoldBack accumulates over the entries descending by projected string.
// It visits exactly the entries Fold visits, in reverse.
func FoldBack[K, V, A any](d Dict[K, V], initial A, f func(K, V, A) A) A {
	acc := initial
	for i := len(d.keys) - 1; i >= 0; i-- {
		e := d.entries[d.keys[i]]
		acc = f(e.Key, e.Value, acc)
	}
	return acc
}
