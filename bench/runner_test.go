package bench

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/corpus"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/search"
)

// fakeClock only moves when a fake matcher advances it.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func timedAlgorithm(name string, clock *fakeClock, cost time.Duration) search.Algorithm {
	return search.Algorithm{
		Name: name,
		Index: func(text, pattern string) int {
			clock.advance(cost)
			return strings.Index(text, pattern)
		},
	}
}

func testDocs() []corpus.Document {
	return []corpus.Document{
		corpus.New("article_1", strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 20)),
		corpus.New("article_2", strings.Repeat("Структури даних та алгоритми пошуку підрядка в тексті. ", 20)),
	}
}

func TestRunnerRealAlgorithms(t *testing.T) {
	collector := NewBasicCollector()
	runner := NewRunner(WithRepetitions(3), WithCollector(collector))

	cases := CasesForAll(testDocs())
	rs, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 3, rs.Repetitions)
	assert.Equal(t, []string{search.NameBoyerMoore, search.NameKMP, search.NameRabinKarp}, rs.Algorithms)
	require.Len(t, rs.Items, len(cases))

	for i, r := range rs.Items {
		assert.Equal(t, cases[i], r.Case)
		require.Len(t, r.Timings, 3)
		want := strings.Index(r.Case.Text, r.Case.Pattern)
		assert.Equal(t, want, r.Index(), "case %d", i)
		if r.Case.Kind == Existing {
			assert.GreaterOrEqual(t, r.Index(), 0)
		} else {
			assert.Equal(t, -1, r.Index())
		}
	}

	snap := collector.Snapshot()
	require.Len(t, snap, 3)
	for name, s := range snap {
		assert.Equal(t, int64(len(cases)), s.Searches, name)
		assert.Equal(t, int64(2), s.Misses, name)
	}
	assert.Equal(t, []string{"article_1", "article_2"}, rs.Corpora())
}

func TestRunnerFakeClock(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	runner := NewRunner(
		WithRepetitions(10),
		WithClock(clock.now),
		WithAlgorithms(
			timedAlgorithm("slow", clock, 3*time.Millisecond),
			timedAlgorithm("fast", clock, time.Millisecond),
			timedAlgorithm("medium", clock, 2*time.Millisecond),
		),
	)

	rs, err := runner.Run(context.Background(), CasesForAll(testDocs()))
	require.NoError(t, err)

	for _, r := range rs.Items {
		d, ok := r.Elapsed("slow")
		require.True(t, ok)
		assert.Equal(t, 30*time.Millisecond, d)
		assert.Equal(t, "fast", r.Fastest().Algorithm)
		assert.Equal(t, 10*time.Millisecond, r.Fastest().Elapsed)
	}

	totals := rs.Totals()
	assert.Equal(t, 40*time.Millisecond, totals["fast"])
	assert.Equal(t, 120*time.Millisecond, totals["slow"])

	best, ok := rs.OverallFastest()
	require.True(t, ok)
	assert.Equal(t, "fast", best)

	best, ok = rs.FastestFor("article_2", Existing)
	require.True(t, ok)
	assert.Equal(t, "fast", best)

	_, ok = rs.FastestFor("article_3", Existing)
	assert.False(t, ok)
}

func TestRunnerDisagreement(t *testing.T) {
	broken := search.Algorithm{
		Name:  "broken",
		Index: func(text, pattern string) int { return 0 },
	}
	kmp, ok := search.Lookup("kmp")
	require.True(t, ok)

	runner := NewRunner(WithAlgorithms(kmp, broken))
	_, err := runner.Run(context.Background(), []Case{
		{Corpus: "c", Kind: Fabricated, Text: "abc", Pattern: "zzz"},
	})
	require.ErrorIs(t, err, ErrDisagreement)
	assert.Contains(t, err.Error(), "broken=0")
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner().Run(ctx, Scenarios())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerNoCases(t *testing.T) {
	_, err := NewRunner().Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoCases)
}

func TestRunnerConcurrentKeepsOrder(t *testing.T) {
	cases := Scenarios()
	runner := NewRunner(WithConcurrency(4), WithRepetitions(1), WithAlgorithms(append(search.Algorithms(), Baseline())...))

	rs, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, rs.Items, len(cases))
	for i, r := range rs.Items {
		assert.Equal(t, cases[i].Corpus, r.Case.Corpus)
		assert.Equal(t, cases[i].Pattern, r.Case.Pattern)
		assert.Len(t, r.Timings, 4)
	}
}

func TestRunnerLogs(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(
		WithRepetitions(1),
		WithLogger(NewJSONLogger(&buf, slog.LevelDebug)),
	)

	_, err := runner.Run(context.Background(), []Case{{Corpus: "tiny", Kind: Existing, Text: "abc", Pattern: "b"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"case timed"`)
	assert.Contains(t, out, `"corpus":"tiny"`)
	assert.Contains(t, out, `"algorithm":"KMP"`)
	assert.Contains(t, out, `"msg":"benchmark finished"`)
}

func TestCasesForAll(t *testing.T) {
	docs := testDocs()
	cases := CasesForAll(docs)
	require.Len(t, cases, 4)

	assert.Equal(t, Case{Corpus: "article_1", Kind: Existing, Text: docs[0].Text, Pattern: docs[0].Excerpt(50, 20)}, cases[0])
	assert.Equal(t, Fabricated, cases[1].Kind)
	assert.Equal(t, "qwertyuiopasdfghjklz", cases[1].Pattern)

	assert.Equal(t, docs[1].Excerpt(100, 20), cases[2].Pattern)
	assert.Len(t, []rune(cases[2].Pattern), ExcerptLength)
	assert.Equal(t, "zxcvbnmasdfghjklqwer", cases[3].Pattern)

	assert.Equal(t, 150, ExcerptOffset(2))
}

func TestScenarios(t *testing.T) {
	for _, c := range Scenarios() {
		found := strings.Contains(c.Text, c.Pattern)
		if c.Kind == Existing {
			assert.True(t, found, c.Corpus)
		} else {
			assert.False(t, found, c.Corpus)
		}
		assert.True(t, strings.HasPrefix(c.Corpus, "scenario="), c.Corpus)
	}
}

func TestEnvironment(t *testing.T) {
	env := CaptureEnvironment()
	assert.NotEmpty(t, env.GOOS)
	assert.NotEmpty(t, env.GOARCH)
	assert.Positive(t, env.NumCPU)
	assert.NotEmpty(t, env.GoVersion)
}

func TestPatternKindString(t *testing.T) {
	assert.Equal(t, "existing", Existing.String())
	assert.Equal(t, "fabricated", Fabricated.String())
	assert.Equal(t, "unknown", PatternKind(9).String())

	b, err := Fabricated.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fabricated", string(b))
}
