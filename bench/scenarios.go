package bench

import (
	"strings"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/internal/bytealg"
)

type scenario struct {
	name, size, text, pattern string
}

func scenarioCases() []scenario {
	return []scenario{
		// pure scan
		{"notfound", "1KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 43), "quartz"},
		{"notfound", "64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2730), "quartz"},

		// match positions
		{"match_start", "1KB", "xylophone" + strings.Repeat("abcdefghijklmnoprstuvwy ", 42), "xylophone"},
		{"match_mid", "1KB", strings.Repeat("x", 500) + "needle" + strings.Repeat("y", 500), "needle"},
		{"match_end", "1KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 42) + "xylophone", "xylophone"},
		{"match_end", "64KB", strings.Repeat("abcdefghijklmnoprstuvwy ", 2728) + "xylophone", "xylophone"},

		// many partial matches
		{"json", "1KB", strings.Repeat(`{"k":"v"},`, 100) + `{"num":1}`, `"num"`},
		{"periodic", "1KB", strings.Repeat("abcd", 250) + "abce", "abce"},
		{"samechar", "1KB", strings.Repeat("a", 1000) + "aab", "aab"},
		{"samechar", "64KB", strings.Repeat("a", 64000) + "aab", "aab"},

		// needle lengths
		{"needle3", "1KB", strings.Repeat("x", 1000) + "abc", "abc"},
		{"needle16", "1KB", strings.Repeat("x", 1000) + "abcdefghijklmnop", "abcdefghijklmnop"},

		// small alphabet
		{"dna", "1KB", strings.Repeat("ATCGATCGATCG", 83) + "ZZZZZ", "ZZZZZ"},

		// long repeating pattern that does not occur
		{"torture", "6KB", strings.Repeat("ABC", 1<<10) + "123" + strings.Repeat("ABC", 1<<10), strings.Repeat("ABC", 1<<10+1)},
	}
}

// Scenarios returns synthetic cases covering best and worst inputs for the
// matchers. They need no corpus files. A case is Existing when its pattern
// occurs in its text.
func Scenarios() []Case {
	sc := scenarioCases()
	cases := make([]Case, 0, len(sc))
	for _, s := range sc {
		kind := Existing
		if bytealg.Index(s.text, s.pattern) < 0 {
			kind = Fabricated
		}
		cases = append(cases, Case{
			Corpus:  "scenario=" + s.name + "/size=" + s.size,
			Kind:    kind,
			Text:    s.text,
			Pattern: s.pattern,
		})
	}
	return cases
}
