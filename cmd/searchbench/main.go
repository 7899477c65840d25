// Command searchbench compares the substring matchers on text corpora and
// writes a markdown report.
//
// Usage:
//
//	searchbench [flags] article_1.txt article_2.txt.zst ...
//	searchbench -synthetic [flags]
//	searchbench upper-bound TARGET V1 V2 ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"

	"github.com/NataliiaYakorieva/goit-algo-hw-05/bench"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/bsearch"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/corpus"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/report"
	"github.com/NataliiaYakorieva/goit-algo-hw-05/search"
	"golang.org/x/sync/errgroup"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != errUsage && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "searchbench: %v\n", err)
		}
		os.Exit(1)
	}
}

type config struct {
	output      string
	jsonOutput  string
	repetitions int
	concurrency int
	lang        string
	logFormat   string
	verbose     bool
	synthetic   bool
	baseline    bool
	algorithms  string
	maxSize     int64
	requireUTF8 bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "upper-bound" {
		return runUpperBound(args[1:], stdout)
	}

	fs := flag.NewFlagSet("searchbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.output, "o", "results.md", "markdown report path (- for stdout)")
	fs.StringVar(&cfg.jsonOutput, "json", "", "optional JSON results path (- for stdout)")
	fs.IntVar(&cfg.repetitions, "n", bench.DefaultRepetitions, "repetitions per algorithm and case")
	fs.IntVar(&cfg.concurrency, "j", 1, "cases timed concurrently")
	fs.StringVar(&cfg.lang, "lang", "uk", "report language (uk, en)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text, json)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.synthetic, "synthetic", false, "benchmark built-in synthetic scenarios instead of corpus files")
	fs.BoolVar(&cfg.baseline, "baseline", false, "also time the standard library search")
	fs.StringVar(&cfg.algorithms, "algorithms", "", "comma separated algorithms to run (default: all)")
	fs.Int64Var(&cfg.maxSize, "max-size", corpus.DefaultMaxSize, "maximum decoded corpus size in bytes")
	fs.BoolVar(&cfg.requireUTF8, "utf8", false, "reject corpora that are not valid UTF-8")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: searchbench [flags] corpus...\n       searchbench upper-bound TARGET VALUES...\n\nflags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	lang, ok := report.LanguageByCode(cfg.lang)
	if !ok {
		return fmt.Errorf("unknown report language %q", cfg.lang)
	}
	logger, err := newLogger(stderr, cfg.logFormat, cfg.verbose)
	if err != nil {
		return err
	}
	algs, err := selectAlgorithms(cfg.algorithms, cfg.baseline)
	if err != nil {
		return err
	}

	var cases []bench.Case
	switch {
	case cfg.synthetic:
		cases = bench.Scenarios()
	case fs.NArg() == 0:
		fs.Usage()
		return errUsage
	default:
		docs, err := loadCorpora(ctx, logger, fs.Args(),
			corpus.WithMaxSize(cfg.maxSize),
			corpus.WithRequireUTF8(cfg.requireUTF8),
		)
		if err != nil {
			return err
		}
		cases = bench.CasesForAll(docs)
	}

	runner := bench.NewRunner(
		bench.WithRepetitions(cfg.repetitions),
		bench.WithConcurrency(cfg.concurrency),
		bench.WithAlgorithms(algs...),
		bench.WithLogger(logger),
	)
	rs, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}

	if err := writeOutput(cfg.output, stdout, func(w io.Writer) error {
		return report.WriteMarkdown(w, rs, lang)
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.jsonOutput != "" {
		if err := writeOutput(cfg.jsonOutput, stdout, func(w io.Writer) error {
			return report.WriteJSON(w, rs)
		}); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	}
	logger.Info("report written", "path", cfg.output)
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*bench.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	switch format {
	case "text":
		return bench.NewTextLogger(w, level), nil
	case "json":
		return bench.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func selectAlgorithms(names string, baseline bool) ([]search.Algorithm, error) {
	algs := search.Algorithms()
	if names != "" {
		algs = nil
		for _, name := range strings.Split(names, ",") {
			alg, ok := search.Lookup(strings.TrimSpace(name))
			if !ok {
				return nil, fmt.Errorf("unknown algorithm %q", name)
			}
			algs = append(algs, alg)
		}
	}
	if baseline {
		algs = append(algs, bench.Baseline())
	}
	return algs, nil
}

// loadCorpora reads corpora in parallel, keeping them in argument order.
func loadCorpora(ctx context.Context, logger *bench.Logger, paths []string, opts ...corpus.Option) ([]corpus.Document, error) {
	docs := make([]corpus.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := corpus.Load(gctx, path, opts...)
			if err != nil {
				return err
			}
			logger.Debug("corpus loaded",
				"corpus", doc.Name,
				"format", doc.Format.String(),
				"bytes", doc.Profile.Bytes,
				"runes", doc.Profile.Runes,
				"ascii", doc.Profile.ASCII,
			)
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runUpperBound(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: searchbench upper-bound TARGET VALUES...", errUsage)
	}
	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", a, err)
		}
		nums[i] = v
	}
	target, values := nums[0], nums[1:]
	if !slices.IsSorted(values) {
		return errors.New("values must be sorted in ascending order")
	}

	_, err := fmt.Fprintln(stdout, bsearch.UpperBound(values, target))
	return err
}
