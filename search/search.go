// Package search implements single-pattern exact substring matchers over
// byte sequences: a Boyer-Moore-Horspool variant, Knuth-Morris-Pratt and
// Rabin-Karp.
//
// Every matcher returns the index of the first occurrence of the pattern in
// the text, or NotFound. An empty pattern matches at index 0, including in an
// empty text. Matchers operate on bytes; no Unicode normalization or case
// folding is applied.
//
// Each matcher comes in two forms: a one-shot function (BoyerMoore, KMP,
// RabinKarp) and a prepared searcher (NewHorspool, NewKMPSearcher,
// NewRabinKarpSearcher) that precomputes the pattern tables once for
// repeated searches over many texts.
package search

import "strings"

// NotFound is returned by all matchers when the pattern does not occur in
// the text.
const NotFound = -1

// Text is the set of byte sequence types accepted by the matchers.
type Text interface {
	~string | ~[]byte
}

// Func is the common signature shared by all matchers so that callers can
// use them interchangeably.
type Func[T Text] func(text, pattern T) int

// Searcher is a matcher prepared for a single pattern.
type Searcher[T Text] interface {
	Index(text T) int
}

// Algorithm names a matcher and exposes it for both text representations.
type Algorithm struct {
	Name       string
	Index      Func[string]
	IndexBytes Func[[]byte]
}

const (
	NameBoyerMoore = "Boyer-Moore"
	NameKMP        = "KMP"
	NameRabinKarp  = "Rabin-Karp"
)

// Algorithms returns the registered matchers in report order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: NameBoyerMoore, Index: BoyerMoore[string], IndexBytes: BoyerMoore[[]byte]},
		{Name: NameKMP, Index: KMP[string], IndexBytes: KMP[[]byte]},
		{Name: NameRabinKarp, Index: RabinKarp[string], IndexBytes: RabinKarp[[]byte]},
	}
}

// Lookup finds a registered matcher by name, ignoring case and the
// separator between words ("boyer-moore", "BoyerMoore" and "boyer_moore"
// all resolve to Boyer-Moore).
func Lookup(name string) (Algorithm, bool) {
	key := canonicalName(name)
	for _, a := range Algorithms() {
		if canonicalName(a.Name) == key {
			return a, true
		}
	}
	return Algorithm{}, false
}

func canonicalName(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
