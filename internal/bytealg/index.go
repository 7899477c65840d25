// Package bytealg holds byte sequence primitives shared by the matchers and
// the benchmark harness.
package bytealg

import (
	"bytes"
	"strings"
)

// Equal reports whether a and b hold the same bytes.
func Equal[T ~string | ~[]byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}
	// the compiler does not allocate for string conversions in a comparison
	return string(a) == string(b)
}

// Index finds the first occurrence of needle in haystack using the standard
// library. It serves as the baseline the matchers are measured against.
func Index[T ~string | ~[]byte](haystack, needle T) int {
	switch h := any(haystack).(type) {
	case string:
		return strings.Index(h, string(needle))
	case []byte:
		return bytes.Index(h, []byte(needle))
	}
	return IndexNaive(haystack, needle)
}

// IndexNaive tries every alignment left to right. It is the reference
// oracle for the matchers: quadratic, but obviously correct.
func IndexNaive[T ~string | ~[]byte](haystack, needle T) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	for i := 0; i <= len(haystack)-n; i++ {
		if Equal(haystack[i:i+n], needle) {
			return i
		}
	}
	return -1
}
