package search

// KMPSearcher is a Knuth-Morris-Pratt matcher prepared for one pattern.
type KMPSearcher[T Text] struct {
	pattern T
	lps     []int
}

// NewKMPSearcher computes the failure function of pattern.
func NewKMPSearcher[T Text](pattern T) KMPSearcher[T] {
	return KMPSearcher[T]{pattern: pattern, lps: failureFunction(pattern)}
}

// failureFunction returns, for every prefix pattern[:i+1], the length of the
// longest proper prefix of pattern that is also a suffix of that prefix.
func failureFunction[T Text](pattern T) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		switch {
		case pattern[i] == pattern[length]:
			length++
			lps[i] = length
			i++
		case length > 0:
			length = lps[length-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// Index returns the index of the first occurrence of the pattern in text,
// or NotFound. Each text byte is consumed at most once.
func (k *KMPSearcher[T]) Index(text T) int {
	m := len(k.pattern)
	if m == 0 {
		return 0
	}
	if m > len(text) {
		return NotFound
	}

	i, j := 0, 0
	for i < len(text) {
		if text[i] == k.pattern[j] {
			i++
			j++
			if j == m {
				return i - m
			}
			continue
		}
		// fall back without consuming text unless nothing matched yet
		if j > 0 {
			j = k.lps[j-1]
		} else {
			i++
		}
	}
	return NotFound
}

// KMP returns the index of the first occurrence of pattern in text using the
// Knuth-Morris-Pratt algorithm, or NotFound.
func KMP[T Text](text, pattern T) int {
	if len(pattern) == 0 {
		return 0
	}
	k := NewKMPSearcher(pattern)
	return k.Index(text)
}
