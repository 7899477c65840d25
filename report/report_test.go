package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/bench"
)

func timings(bm, kmp, rk time.Duration, index int) []bench.Timing {
	return []bench.Timing{
		{Algorithm: "Boyer-Moore", Index: index, Elapsed: bm},
		{Algorithm: "KMP", Index: index, Elapsed: kmp},
		{Algorithm: "Rabin-Karp", Index: index, Elapsed: rk},
	}
}

func sampleResults() bench.Results {
	ms := time.Millisecond
	return bench.Results{
		Repetitions: 10,
		Algorithms:  []string{"Boyer-Moore", "KMP", "Rabin-Karp"},
		Items: []bench.Result{
			{
				Case:    bench.Case{Corpus: "article_1", Kind: bench.Existing, Pattern: "abc"},
				Timings: timings(1*ms, 5*ms, 9*ms, 42),
			},
			{
				Case:    bench.Case{Corpus: "article_1", Kind: bench.Fabricated, Pattern: "qwertyuiopasdfghjklz"},
				Timings: timings(2*ms, 30*ms, 40*ms, -1),
			},
			{
				Case:    bench.Case{Corpus: "article_2", Kind: bench.Existing, Pattern: "def"},
				Timings: timings(8*ms, 3*ms, 7*ms, 7),
			},
			{
				Case:    bench.Case{Corpus: "article_2", Kind: bench.Fabricated, Pattern: "zxcvbnmasdfghjklqwer"},
				Timings: timings(4*ms, 20*ms, 25*ms, -1),
			},
		},
	}
}

func TestWriteMarkdownEnglish(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResults(), English))

	want := `# Substring search algorithm comparison

| Article | Pattern | Boyer-Moore | KMP | Rabin-Karp |
| ------- | ------- | ----------- | --- | ---------- |
| article_1 | existing | 0.001000 | 0.005000 | 0.009000 |
| article_1 | fabricated | 0.002000 | 0.030000 | 0.040000 |
| article_2 | existing | 0.008000 | 0.003000 | 0.007000 |
| article_2 | fabricated | 0.004000 | 0.020000 | 0.025000 |

**Conclusions:**
- For article_1 (existing pattern) the fastest algorithm is **Boyer-Moore**.
- For article_2 (existing pattern) the fastest algorithm is **KMP**.
- Overall the fastest algorithm is **Boyer-Moore**.
`
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownUkrainian(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResults(), Ukrainian))

	out := buf.String()
	assert.Contains(t, out, "# Порівняння алгоритмів пошуку підрядка")
	assert.Contains(t, out, "| Стаття | Тип підрядка | Boyer-Moore | KMP | Rabin-Karp |")
	assert.Contains(t, out, "| article_2 | вигаданий | 0.004000 | 0.020000 | 0.025000 |")
	assert.Contains(t, out, "- Для article_2 (існуючий підрядок) найшвидший алгоритм: **KMP**.")
	assert.Contains(t, out, "- В цілому найшвидший алгоритм: **Boyer-Moore**.")
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, WriteMarkdown(&buf, bench.Results{}, English), ErrEmpty)
	require.ErrorIs(t, WriteJSON(&buf, bench.Results{}), ErrEmpty)
	assert.Zero(t, buf.Len())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults()))

	var decoded struct {
		Repetitions int `json:"repetitions"`
		Results     []struct {
			Case struct {
				Corpus  string `json:"corpus"`
				Kind    string `json:"kind"`
				Pattern string `json:"pattern"`
			} `json:"case"`
			Timings []struct {
				Algorithm string `json:"algorithm"`
				Index     int    `json:"index"`
				Elapsed   int64  `json:"elapsed_ns"`
			} `json:"timings"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 10, decoded.Repetitions)
	require.Len(t, decoded.Results, 4)
	assert.Equal(t, "fabricated", decoded.Results[1].Case.Kind)
	assert.Equal(t, "KMP", decoded.Results[2].Timings[1].Algorithm)
	assert.Equal(t, int64(3*time.Millisecond), decoded.Results[2].Timings[1].Elapsed)
	assert.NotContains(t, buf.String(), `"Text"`)
}

func TestLanguageByCode(t *testing.T) {
	lang, ok := LanguageByCode("UK")
	require.True(t, ok)
	assert.Equal(t, Ukrainian.Title, lang.Title)

	lang, ok = LanguageByCode("en")
	require.True(t, ok)
	assert.Equal(t, English.Title, lang.Title)

	_, ok = LanguageByCode("fr")
	assert.False(t, ok)
}
