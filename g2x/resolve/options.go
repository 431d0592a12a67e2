package resolve

import (
	"fmt"
	"maps"
	"strings"
)

// StrategyType selects the decision procedure applied to scored candidates.
type StrategyType string

const (
	StrategySingle    StrategyType = "single"
	StrategyConsensus StrategyType = "consensus"
)

// Weights balances the three similarity components of a candidate score.
type Weights struct {
	Path  float64 `mapstructure:"path"`
	Album float64 `mapstructure:"album"`
	File  float64 `mapstructure:"file"`
}

// DefaultWeights favours the album and file names over the full directory path.
var DefaultWeights = Weights{Path: 0.2, Album: 0.4, File: 0.4}

// Normalized rescales w to sum to 1. A non-positive sum falls back to DefaultWeights.
func (w Weights) Normalized() Weights {
	sum := w.Path + w.Album + w.File
	if sum <= 0 {
		return DefaultWeights
	}
	return Weights{Path: w.Path / sum, Album: w.Album / sum, File: w.File / sum}
}

// Options carries every tunable of the engine. It is a plain value: callers get
// their own copy from DefaultOptions or Merge and the engine never writes to it.
type Options struct {
	CandidateCap int // upper bound on the retrieved candidate pool
	EarlyExitTop int // pool size kept after the cheap pre-ranking

	Threshold      float64 // absolute acceptance score
	ConfidenceGap  float64 // lead over the runner-up that allows a lower score
	LowerThreshold float64 // floor for confidence-gap acceptance

	Weights Weights

	ContainmentFactor     float64 // file score multiplier when one name contains the other
	AlbumContainmentBoost float64 // flat album bonus for contained segment names
	SkeletonScale         float64 // discount for digit-masked filename similarity
	DepthPenaltyStep      float64 // per level of nesting difference
	DepthPenaltyMax       float64
	StemMinLength         int // segments longer than this are vowel-stripped

	BordaTopK          int
	MinConsensusPoints int

	Synonyms map[string]string // lowercased album name -> substitute
}

// DefaultSynonyms maps Swedish album names seen in the legacy gallery to the
// spelling later used on disk.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"internationella": "international",
		"svenska":         "swedish",
		"sommar":          "summer",
		"vinter":          "winter",
		"bilder":          "pictures",
	}
}

// DefaultOptions returns the built-in tuning.
func DefaultOptions() Options {
	return Options{
		CandidateCap:          500,
		EarlyExitTop:          50,
		Threshold:             0.55,
		ConfidenceGap:         0.3,
		LowerThreshold:        0.45,
		Weights:               DefaultWeights,
		ContainmentFactor:     1.2,
		AlbumContainmentBoost: 0.1,
		SkeletonScale:         0.9,
		DepthPenaltyStep:      0.02,
		DepthPenaltyMax:       0.1,
		StemMinLength:         4,
		BordaTopK:             3,
		MinConsensusPoints:    2,
		Synonyms:              DefaultSynonyms(),
	}
}

// Params are per-strategy overrides. A nil field keeps the base value.
type Params struct {
	Threshold          *float64
	ConfidenceGap      *float64
	LowerThreshold     *float64
	Weights            *Weights
	CandidateCap       *int
	EarlyExitTop       *int
	BordaTopK          *int
	MinConsensusPoints *int
}

func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }

// Merge returns a copy of o with every non-nil field of p applied.
// Values are taken as given; only weights are normalized later, at scoring time.
func (o Options) Merge(p *Params) Options {
	out := o
	out.Synonyms = maps.Clone(o.Synonyms)
	if p == nil {
		return out
	}
	if p.Threshold != nil {
		out.Threshold = *p.Threshold
	}
	if p.ConfidenceGap != nil {
		out.ConfidenceGap = *p.ConfidenceGap
	}
	if p.LowerThreshold != nil {
		out.LowerThreshold = *p.LowerThreshold
	}
	if p.Weights != nil {
		out.Weights = *p.Weights
	}
	if p.CandidateCap != nil {
		out.CandidateCap = *p.CandidateCap
	}
	if p.EarlyExitTop != nil {
		out.EarlyExitTop = *p.EarlyExitTop
	}
	if p.BordaTopK != nil {
		out.BordaTopK = *p.BordaTopK
	}
	if p.MinConsensusPoints != nil {
		out.MinConsensusPoints = *p.MinConsensusPoints
	}
	return out
}

// Strategy is the caller's choice of decision procedure.
type Strategy struct {
	Algorithm string // descriptive, shows up in logs
	Type      StrategyType
	Params    *Params
}

// DefaultConsensusStrategy votes between Jaro-Winkler and token-overlap rankings.
func DefaultConsensusStrategy() Strategy {
	return Strategy{Algorithm: "jaro-winkler+token-overlap", Type: StrategyConsensus, Params: &Params{}}
}

// DefaultSingleStrategy scores with Jaro-Winkler and the built-in thresholds.
func DefaultSingleStrategy() Strategy {
	return Strategy{Algorithm: "jaro-winkler", Type: StrategySingle, Params: &Params{}}
}

// PlainStrategy only matches directory-spelling variants with an equal filename.
func PlainStrategy() Strategy {
	return Strategy{Algorithm: "plain", Type: StrategySingle}
}

// ParseStrategyType accepts "single" or "consensus" in any case.
func ParseStrategyType(s string) (StrategyType, error) {
	switch t := StrategyType(strings.ToLower(strings.TrimSpace(s))); t {
	case StrategySingle, StrategyConsensus:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
}

// Validate reports an unknown strategy type.
func (s Strategy) Validate() error {
	_, err := ParseStrategyType(string(s.Type))
	return err
}
