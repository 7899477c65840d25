package search

// Horspool is a Boyer-Moore matcher prepared for one pattern. It uses only
// the bad-character rule: after a mismatch the window advances by the shift
// recorded for the text byte aligned with the last pattern position.
type Horspool[T Text] struct {
	pattern T
	shift   [256]int
}

// NewHorspool builds the bad-character table for pattern. Each byte of the
// pattern except the last maps to its distance from the last occurrence to
// the pattern end; every other byte shifts by the full pattern length.
func NewHorspool[T Text](pattern T) Horspool[T] {
	h := Horspool[T]{pattern: pattern}
	m := len(pattern)
	for i := range h.shift {
		h.shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		h.shift[pattern[i]] = m - 1 - i
	}
	return h
}

// Index returns the index of the first occurrence of the pattern in text,
// or NotFound.
func (h *Horspool[T]) Index(text T) int {
	m := len(h.pattern)
	if m == 0 {
		return 0
	}

	// end is the text position aligned with the last pattern byte
	for end := m - 1; end < len(text); end += h.shift[text[end]] {
		i, j := end, m-1
		for j >= 0 && text[i] == h.pattern[j] {
			i--
			j--
		}
		if j < 0 {
			return i + 1
		}
	}
	return NotFound
}

// BoyerMoore returns the index of the first occurrence of pattern in text
// using the Horspool bad-character heuristic, or NotFound.
func BoyerMoore[T Text](text, pattern T) int {
	if len(pattern) == 0 {
		return 0
	}
	h := NewHorspool(pattern)
	return h.Index(text)
}
