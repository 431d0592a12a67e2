package resolve

import (
	"strings"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"

	"github.com/rs/zerolog"
)

// Method records which stage produced a match.
type Method string

const (
	MethodNone              Method = ""
	MethodExact             Method = "exact"
	MethodCaseInsensitive   Method = "case-insensitive"
	MethodComposite         Method = "composite"
	MethodPlain             Method = "plain"
	MethodSingle            Method = "single"
	MethodConfidenceGap     Method = "confidence-gap"
	MethodConsensus         Method = "consensus"
	MethodConsensusFallback Method = "consensus-fallback"
)

// Match is the outcome of one resolution. An unresolved reference is the zero Match.
type Match struct {
	Path   string
	Score  float64 // 1 for exact stages, the Jaro-Winkler score otherwise
	Method Method
}

// Resolved reports whether a path was found.
func (m Match) Resolved() bool { return m.Method != MethodNone }

// Resolver maps parsed gallery references onto an index. It holds only its base
// options and logger, so one Resolver may serve concurrent calls.
type Resolver struct {
	opts   Options
	logger zerolog.Logger
}

// NewResolver creates a resolver with base options. Strategy params are merged
// on top of them per call.
func NewResolver(opts Options, logger zerolog.Logger) *Resolver {
	return &Resolver{opts: opts, logger: logger}
}

// ResolveFuzzy resolves parsed against idx with the default options and returns
// the matched relative path. A miss is reported as ("", false), never an error.
func ResolveFuzzy(parsed ParsedURL, idx *indexing.FileIndex, strategy Strategy) (string, bool) {
	m := NewResolver(DefaultOptions(), zerolog.Nop()).Resolve(parsed, idx, strategy)
	return m.Path, m.Resolved()
}

// Resolve runs the exact stages first and, on a miss, the strategy's fuzzy
// decision. A single strategy without params uses the plain variant matcher.
func (r *Resolver) Resolve(parsed ParsedURL, idx *indexing.FileIndex, strategy Strategy) Match {
	if idx.Len() == 0 || parsed.IsEmpty() {
		return Match{}
	}

	log := r.logger.With().
		Str("reference", parsed.FullPath()).
		Str("algorithm", strategy.Algorithm).
		Str("strategy", string(strategy.Type)).
		Logger()

	if e, method := ExactMatch(parsed, idx); method != MethodNone {
		return r.found(log, Scored{Entry: e, Score: 1}, method)
	}

	opts := r.opts.Merge(strategy.Params)

	var (
		best   Scored
		method Method
	)
	switch {
	case strategy.Type == StrategyConsensus:
		best, method = ConsensusMatch(parsed, GetCandidates(parsed, idx, opts), opts)
	case strategy.Params == nil:
		var e indexing.FileEntry
		e, method = PlainMatch(parsed, idx)
		best = Scored{Entry: e, Score: 1}
	default:
		best, method = BestMatch(parsed, GetCandidates(parsed, idx, opts), opts)
	}

	if method == MethodNone {
		log.Debug().Msg("Reference unresolved")
		return Match{}
	}
	return r.found(log, best, method)
}

func (r *Resolver) found(log zerolog.Logger, s Scored, method Method) Match {
	m := Match{
		Path:   strings.TrimPrefix(s.Entry.FullPath, "./"),
		Score:  s.Score,
		Method: method,
	}
	log.Debug().
		Str("path", m.Path).
		Str("method", string(m.Method)).
		Float64("score", m.Score).
		Msg("Reference resolved")
	return m
}
