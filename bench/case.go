package bench

import (
	"github.com/NataliiaYakorieva/goit-algo-hw-05/corpus"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/internal/bytealg"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/search"
)

// PatternKind tells whether a case's pattern was taken from its text.
type PatternKind uint8

const (
	// Existing patterns are excerpts of the text and always match.
	Existing PatternKind = iota
	// Fabricated patterns are made up and normally do not occur.
	Fabricated
)

func (k PatternKind) String() string {
	switch k {
	case Existing:
		return "existing"
	case Fabricated:
		return "fabricated"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PatternKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Case is one (text, pattern) pair fed to every matcher.
type Case struct {
	Corpus  string      `json:"corpus"`
	Kind    PatternKind `json:"kind"`
	Text    string      `json:"-"`
	Pattern string      `json:"pattern"`
}

const (
	// ExcerptLength is the length in runes of existing patterns.
	ExcerptLength = 20
	// excerptStride spaces the excerpt offsets of consecutive corpora.
	excerptStride = 50
)

// FabricatedPatterns are the made-up patterns, used in turn for each corpus.
var FabricatedPatterns = []string{
	"qwertyuiopasdfghjklz",
	"zxcvbnmasdfghjklqwer",
}

// ExcerptOffset is the rune offset of the existing pattern of the i-th
// corpus: 50 for the first, 100 for the second and so on.
func ExcerptOffset(i int) int {
	return excerptStride * (i + 1)
}

// CasesFor builds the existing and fabricated cases for one document.
func CasesFor(doc corpus.Document, offset int, fabricated string) []Case {
	return []Case{
		{Corpus: doc.Name, Kind: Existing, Text: doc.Text, Pattern: doc.Excerpt(offset, ExcerptLength)},
		{Corpus: doc.Name, Kind: Fabricated, Text: doc.Text, Pattern: fabricated},
	}
}

// CasesForAll builds cases for every document, choosing excerpt offsets with
// ExcerptOffset and cycling through FabricatedPatterns.
func CasesForAll(docs []corpus.Document) []Case {
	cases := make([]Case, 0, 2*len(docs))
	for i, doc := range docs {
		fabricated := FabricatedPatterns[i%len(FabricatedPatterns)]
		cases = append(cases, CasesFor(doc, ExcerptOffset(i), fabricated)...)
	}
	return cases
}

// Baseline is the standard library substring search, for comparison with
// the matchers.
func Baseline() search.Algorithm {
	return search.Algorithm{
		Name:       "stdlib",
		Index:      bytealg.Index[string],
		IndexBytes: bytealg.Index[[]byte],
	}
}
