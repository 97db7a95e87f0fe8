package anydict

import (
	"slices"
	"sort"
)

// Union returns a Dict holding all entries from both operands.  On a
// projection collision the receiver's entry wins.  The result uses the
// receiver's projection; the other operand contributes entries by value
// only.
func (d Dict[K, V]) Union(other Dict[K, V]) Dict[K, V] {
	if len(other.entries) == 0 {
		return d
	}
	nd := d.clone()
	if nd.entries == nil {
		nd.entries = make(map[string]Entry[K, V], len(other.entries))
	}
	for _, s := range other.keys {
		e := other.entries[s]
		ps := nd.project(e.Key)
		if _, ok := nd.entries[ps]; ok {
			continue
		}
		i := sort.SearchStrings(nd.keys, ps)
		nd.keys = slices.Insert(nd.keys, i, ps)
		nd.entries[ps] = e
	}
	return nd
}

// Intersect returns the receiver's entries whose keys are also present in
// other.  Values come from the receiver.
func (d Dict[K, V]) Intersect(other Dict[K, V]) Dict[K, V] {
	return d.Filter(func(k K, _ V) bool { return other.Has(k) })
}

// Diff returns the receiver's entries whose keys are not present in other.
func (d Dict[K, V]) Diff(other Dict[K, V]) Dict[K, V] {
	return d.Filter(func(k K, _ V) bool { return !other.Has(k) })
}

// Merge is a three-way fold over the union of both operands' projected
// keys, ascending, visiting each key exactly once: onLeft for keys only in
// left, onRight for keys only in right, and onBoth (with left's key object
// and both values) for keys in both.
//
// Union, Intersect, and Diff are special cases of Merge; they are
// implemented directly for efficiency.
func Merge[K, A, B, R any](
	left Dict[K, A],
	right Dict[K, B],
	initial R,
	onLeft func(K, A, R) R,
	onBoth func(K, A, B, R) R,
	onRight func(K, B, R) R,
) R {
	acc := initial
	i, j := 0, 0
	for i < len(left.keys) && j < len(right.keys) {
		ls, rs := left.keys[i], right.keys[j]
		switch {
		case ls < rs:
			e := left.entries[ls]
			acc = onLeft(e.Key, e.Value, acc)
			i++
		case ls > rs:
			e := right.entries[rs]
			acc = onRight(e.Key, e.Value, acc)
			j++
		default:
			le := left.entries[ls]
			re := right.entries[rs]
			acc = onBoth(le.Key, le.Value, re.Value, acc)
			i++
			j++
		}
	}
	for ; i < len(left.keys); i++ {
		e := left.entries[left.keys[i]]
		acc = onLeft(e.Key, e.Value, acc)
	}
	for ; j < len(right.keys); j++ {
		e := right.entries[right.keys[j]]
		acc = onRight(e.Key, e.Value, acc)
	}
	return acc
}
