// Package bsearch provides binary searches over sorted slices that report
// how much work they did.
package bsearch

import (
	"cmp"
	"fmt"
)

// Stats is the outcome of an upper bound search.
type Stats[T any] struct {
	// Iterations is the number of loop passes the search performed.
	Iterations int
	// Value is the smallest element >= target. Only meaningful when Found.
	Value T
	// Index is the position of Value, or -1 when nothing qualifies.
	Index int
	Found bool
}

// String renders the stats as an (iterations, value) pair, using "none"
// when no element qualifies.
func (s Stats[T]) String() string {
	if !s.Found {
		return fmt.Sprintf("(%d, none)", s.Iterations)
	}
	return fmt.Sprintf("(%d, %v)", s.Iterations, s.Value)
}

// UpperBound searches the ascending slice s for the smallest element that is
// greater than or equal to target.
//
// The search narrows a closed interval [left, right]. An element equal to
// target is recorded as a candidate and the search keeps narrowing to the
// left, so the result is always the leftmost qualifying element. The result
// is unspecified if s is not sorted.
func UpperBound[S ~[]E, E cmp.Ordered](s S, target E) Stats[E] {
	return UpperBoundFunc(s, target, cmp.Compare[E])
}

// UpperBoundFunc works like UpperBound with a custom comparison. cmp(e, t)
// must return a negative number when e orders before t, zero when they are
// equal and a positive number otherwise. s must be sorted by cmp.
func UpperBoundFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) Stats[E] {
	st := Stats[E]{Index: -1}
	left, right := 0, len(s)-1
	for left <= right {
		st.Iterations++
		mid := left + (right-left)/2
		if cmp(s[mid], target) < 0 {
			left = mid + 1
			continue
		}
		st.Value, st.Index, st.Found = s[mid], mid, true
		right = mid - 1
	}
	return st
}
