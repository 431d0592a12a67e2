package batch

import (
	"slices"
	"time"

	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes a batch run.
type Report struct {
	RunID      uuid.UUID
	Total      int
	Resolved   int
	ByMethod   map[resolve.Method]int
	Unresolved []Reference
	Scores     ScoreSummary
	Elapsed    time.Duration
}

// ScoreSummary describes the scores of fuzzy matches only; exact stages always
// score 1 and would hide drift.
type ScoreSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
}

// NewReport aggregates results.
func NewReport(runID uuid.UUID, results []Result, elapsed time.Duration) *Report {
	rep := &Report{
		RunID:    runID,
		Total:    len(results),
		ByMethod: make(map[resolve.Method]int),
		Elapsed:  elapsed,
	}

	var fuzzy []float64
	for _, res := range results {
		if !res.Match.Resolved() {
			rep.Unresolved = append(rep.Unresolved, res.Reference)
			continue
		}
		rep.Resolved++
		rep.ByMethod[res.Match.Method]++
		if isFuzzy(res.Match.Method) {
			fuzzy = append(fuzzy, res.Match.Score)
		}
	}
	rep.Scores = summarize(fuzzy)
	return rep
}

// Deviations counts references that did not resolve through an exact stage.
func (r *Report) Deviations() int {
	n := len(r.Unresolved)
	for m, c := range r.ByMethod {
		if isFuzzy(m) || m == resolve.MethodPlain {
			n += c
		}
	}
	return n
}

func isFuzzy(m resolve.Method) bool {
	switch m {
	case resolve.MethodSingle, resolve.MethodConfidenceGap, resolve.MethodConsensus, resolve.MethodConsensusFallback:
		return true
	}
	return false
}

func summarize(scores []float64) ScoreSummary {
	if len(scores) == 0 {
		return ScoreSummary{}
	}
	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	s := ScoreSummary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
