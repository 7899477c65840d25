// Package report renders benchmark results as a markdown comparison table
// with conclusions, or as JSON.
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/bench"
)

// ErrEmpty is returned when there is nothing to report.
var ErrEmpty = errors.New("no results to report")

// Language holds the labels used in a markdown report.
type Language struct {
	Title         string
	Corpus        string
	Pattern       string
	Kinds         map[bench.PatternKind]string
	Conclusions   string
	FastestFormat string // corpus, pattern kind, algorithm
	OverallFormat string // algorithm
}

var (
	// English labels.
	English = Language{
		Title:   "Substring search algorithm comparison",
		Corpus:  "Article",
		Pattern: "Pattern",
		Kinds: map[bench.PatternKind]string{
			bench.Existing:   "existing",
			bench.Fabricated: "fabricated",
		},
		Conclusions:   "Conclusions:",
		FastestFormat: "For %s (%s pattern) the fastest algorithm is **%s**.",
		OverallFormat: "Overall the fastest algorithm is **%s**.",
	}

	// Ukrainian labels.
	Ukrainian = Language{
		Title:   "Порівняння алгоритмів пошуку підрядка",
		Corpus:  "Стаття",
		Pattern: "Тип підрядка",
		Kinds: map[bench.PatternKind]string{
			bench.Existing:   "існуючий",
			bench.Fabricated: "вигаданий",
		},
		Conclusions:   "Висновки:",
		FastestFormat: "Для %s (%s підрядок) найшвидший алгоритм: **%s**.",
		OverallFormat: "В цілому найшвидший алгоритм: **%s**.",
	}
)

// LanguageByCode resolves "en" or "uk" to a Language.
func LanguageByCode(code string) (Language, bool) {
	switch strings.ToLower(code) {
	case "en", "english":
		return English, true
	case "uk", "ua", "ukrainian":
		return Ukrainian, true
	default:
		return Language{}, false
	}
}

func (l Language) kind(k bench.PatternKind) string {
	if s, ok := l.Kinds[k]; ok {
		return s
	}
	return k.String()
}

// WriteMarkdown writes a table with one row per case and one column per
// algorithm holding total seconds, followed by the fastest algorithm for
// each corpus on existing patterns and overall.
func WriteMarkdown(w io.Writer, rs bench.Results, lang Language) error {
	if len(rs.Items) == 0 {
		return ErrEmpty
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", lang.Title)

	header := append([]string{lang.Corpus, lang.Pattern}, rs.Algorithms...)
	writeRow(bw, header)
	sep := make([]string, len(header))
	for i, h := range header {
		sep[i] = strings.Repeat("-", max(3, len([]rune(h))))
	}
	writeRow(bw, sep)

	for _, r := range rs.Items {
		row := []string{r.Case.Corpus, lang.kind(r.Case.Kind)}
		for _, name := range rs.Algorithms {
			d, _ := r.Elapsed(name)
			row = append(row, seconds(d))
		}
		writeRow(bw, row)
	}

	fmt.Fprintf(bw, "\n**%s**\n", lang.Conclusions)
	for _, c := range rs.Corpora() {
		if alg, ok := rs.FastestFor(c, bench.Existing); ok {
			fmt.Fprintf(bw, "- "+lang.FastestFormat+"\n", c, lang.kind(bench.Existing), alg)
		}
	}
	if alg, ok := rs.OverallFastest(); ok {
		fmt.Fprintf(bw, "- "+lang.OverallFormat+"\n", alg)
	}

	return bw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// WriteJSON writes rs as indented JSON.
func WriteJSON(w io.Writer, rs bench.Results) error {
	if len(rs.Items) == 0 {
		return ErrEmpty
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rs)
}
