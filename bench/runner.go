// Package bench times the substring matchers over identical (text, pattern)
// cases and collects comparable results.
package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Runner executes benchmark cases. A Runner is safe for concurrent use.
type Runner struct {
	opts options
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: newOptions(opts)}
}

// Run times every configured algorithm on every case. Results are returned
// in case order regardless of concurrency. The run stops at the first error:
// cancellation of ctx, or matchers disagreeing on a case.
func (r *Runner) Run(ctx context.Context, cases []Case) (Results, error) {
	if len(cases) == 0 {
		return Results{}, ErrNoCases
	}
	if len(r.opts.algorithms) == 0 {
		return Results{}, ErrNoAlgorithms
	}

	rs := Results{
		Environment: CaptureEnvironment(),
		Repetitions: r.opts.repetitions,
		Algorithms:  make([]string, 0, len(r.opts.algorithms)),
		Items:       make([]Result, len(cases)),
	}
	for _, a := range r.opts.algorithms {
		rs.Algorithms = append(rs.Algorithms, a.Name)
	}

	start := r.opts.now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.concurrency)
	for i, c := range cases {
		g.Go(func() error {
			res, err := r.runCase(gctx, c)
			if err != nil {
				return err
			}
			rs.Items[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	r.opts.logger.Info("benchmark finished",
		"cases", len(cases),
		"algorithms", len(rs.Algorithms),
		"repetitions", rs.Repetitions,
		"elapsed", r.opts.now().Sub(start),
	)
	return rs, nil
}

func (r *Runner) runCase(ctx context.Context, c Case) (Result, error) {
	log := r.opts.logger.WithCase(c)
	res := Result{Case: c, Timings: make([]Timing, 0, len(r.opts.algorithms))}

	for _, alg := range r.opts.algorithms {
		index := -1
		start := r.opts.now()
		for rep := 0; rep < r.opts.repetitions; rep++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			index = alg.Index(c.Text, c.Pattern)
		}
		elapsed := r.opts.now().Sub(start)

		r.opts.collector.RecordSearch(alg.Name, elapsed, index)
		log.WithAlgorithm(alg.Name).Debug("case timed", "index", index, "elapsed", elapsed)
		res.Timings = append(res.Timings, Timing{Algorithm: alg.Name, Index: index, Elapsed: elapsed})
	}

	if err := checkAgreement(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func checkAgreement(res Result) error {
	want := res.Timings[0]
	for _, t := range res.Timings[1:] {
		if t.Index != want.Index {
			return fmt.Errorf("%w: corpus %q, %s pattern %q: %s=%d, %s=%d",
				ErrDisagreement, res.Case.Corpus, res.Case.Kind, res.Case.Pattern,
				want.Algorithm, want.Index, t.Algorithm, t.Index)
		}
	}
	return nil
}
