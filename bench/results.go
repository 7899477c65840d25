package bench

import "time"

// Timing is the measurement of one matcher on one case.
type Timing struct {
	Algorithm string        `json:"algorithm"`
	Index     int           `json:"index"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Result holds the timings of every matcher for one case, in algorithm order.
type Result struct {
	Case    Case     `json:"case"`
	Timings []Timing `json:"timings"`
}

// Index is the match position all matchers agreed on.
func (r Result) Index() int {
	if len(r.Timings) == 0 {
		return -1
	}
	return r.Timings[0].Index
}

// Elapsed returns the total time the named matcher took on this case.
func (r Result) Elapsed(algorithm string) (time.Duration, bool) {
	for _, t := range r.Timings {
		if t.Algorithm == algorithm {
			return t.Elapsed, true
		}
	}
	return 0, false
}

// Fastest returns the timing with the smallest elapsed time. Ties go to the
// algorithm listed first.
func (r Result) Fastest() Timing {
	var best Timing
	for i, t := range r.Timings {
		if i == 0 || t.Elapsed < best.Elapsed {
			best = t
		}
	}
	return best
}

// Results is the outcome of a run.
type Results struct {
	Environment Environment `json:"environment"`
	Repetitions int         `json:"repetitions"`
	Algorithms  []string    `json:"algorithms"`
	Items       []Result    `json:"results"`
}

// Corpora lists the corpus names in the order they first appear.
func (rs Results) Corpora() []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range rs.Items {
		if !seen[r.Case.Corpus] {
			seen[r.Case.Corpus] = true
			names = append(names, r.Case.Corpus)
		}
	}
	return names
}

// Totals sums the elapsed time of each algorithm over all cases.
func (rs Results) Totals() map[string]time.Duration {
	totals := make(map[string]time.Duration, len(rs.Algorithms))
	for _, r := range rs.Items {
		for _, t := range r.Timings {
			totals[t.Algorithm] += t.Elapsed
		}
	}
	return totals
}

// FastestFor returns the fastest algorithm on the given corpus for patterns
// of the given kind: the case whose best time is lowest decides, and its
// fastest algorithm is reported. ok is false when no case matches.
func (rs Results) FastestFor(corpus string, kind PatternKind) (algorithm string, ok bool) {
	var best Timing
	for _, r := range rs.Items {
		if r.Case.Corpus != corpus || r.Case.Kind != kind || len(r.Timings) == 0 {
			continue
		}
		if f := r.Fastest(); !ok || f.Elapsed < best.Elapsed {
			best, ok = f, true
		}
	}
	return best.Algorithm, ok
}

// OverallFastest returns the algorithm with the lowest total time. Ties go
// to the algorithm listed first.
func (rs Results) OverallFastest() (string, bool) {
	totals := rs.Totals()
	var (
		best     string
		bestTime time.Duration
		found    bool
	)
	for _, name := range rs.Algorithms {
		d, ok := totals[name]
		if !ok {
			continue
		}
		if !found || d < bestTime {
			best, bestTime, found = name, d, true
		}
	}
	return best, found
}
