package search

import "github.com/NataliiaYakorieva/goit-algo-hw-05/internal/bytealg"

const (
	// RadixRK is the base of the polynomial rolling hash, one digit per byte value.
	RadixRK = 256
	// PrimeRK is the hash modulus. It is deliberately small, so unequal
	// windows often share a hash and every hash hit is verified.
	PrimeRK = 101
)

// RabinKarpSearcher is a Rabin-Karp matcher prepared for one pattern.
type RabinKarpSearcher[T Text] struct {
	pattern T
	hash    int // hash of the pattern
	pow     int // RadixRK^(len(pattern)-1) mod PrimeRK
}

// NewRabinKarpSearcher hashes pattern and precomputes the weight of the
// leading window byte.
func NewRabinKarpSearcher[T Text](pattern T) RabinKarpSearcher[T] {
	pow := 1
	for i := 1; i < len(pattern); i++ {
		pow = pow * RadixRK % PrimeRK
	}
	return RabinKarpSearcher[T]{
		pattern: pattern,
		hash:    hashPrefix(pattern, len(pattern)),
		pow:     pow,
	}
}

// hashPrefix returns the polynomial hash of s[:n] modulo PrimeRK.
func hashPrefix[T Text](s T, n int) int {
	h := 0
	for i := 0; i < n; i++ {
		h = (RadixRK*h + int(s[i])) % PrimeRK
	}
	return h
}

// roll drops out from the front of the window hashed by h and appends in.
func (rk *RabinKarpSearcher[T]) roll(h int, out, in byte) int {
	h = (RadixRK*(h-int(out)*rk.pow) + int(in)) % PrimeRK
	if h < 0 {
		h += PrimeRK
	}
	return h
}

// Index returns the index of the first occurrence of the pattern in text,
// or NotFound. Windows whose hash equals the pattern hash are compared byte
// by byte before being reported.
func (rk *RabinKarpSearcher[T]) Index(text T) int {
	m, n := len(rk.pattern), len(text)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	h := hashPrefix(text, m)
	for s := 0; ; s++ {
		if h == rk.hash && bytealg.Equal(text[s:s+m], rk.pattern) {
			return s
		}
		if s == n-m {
			return NotFound
		}
		h = rk.roll(h, text[s], text[s+m])
	}
}

// RabinKarp returns the index of the first occurrence of pattern in text
// using a rolling hash with verification, or NotFound.
func RabinKarp[T Text](text, pattern T) int {
	if len(pattern) == 0 {
		return 0
	}
	rk := NewRabinKarpSearcher(pattern)
	return rk.Index(text)
}
