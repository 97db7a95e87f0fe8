package anydict

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Projection constructors for common key shapes.  A projection is the
// identity a Dict indexes by: it must be deterministic, and injective for
// the caller's key domain.

// ProjectString projects string-kinded keys as themselves.
func ProjectString[K ~string]() func(K) string {
	return func(k K) string { return string(k) }
}

// ProjectInt projects signed integer keys in decimal.
//
// Note the Dict orders entries lexicographically over projected strings, so
// decimal projections of mixed-width integers do not sort numerically; pad
// in the projection if numeric order matters.
func ProjectInt[K constraints.Signed]() func(K) string {
	return func(k K) string { return strconv.FormatInt(int64(k), 10) }
}

// ProjectUint projects unsigned integer keys in decimal.
func ProjectUint[K constraints.Unsigned]() func(K) string {
	return func(k K) string { return strconv.FormatUint(uint64(k), 10) }
}

// ProjectStringer projects keys through their String method.
func ProjectStringer[K fmt.Stringer]() func(K) string {
	return func(k K) string { return k.String() }
}
