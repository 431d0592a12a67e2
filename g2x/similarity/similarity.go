// Package similarity implements the string metrics used to rank path candidates.
// Both return a score in [0, 1] where 1 means identical.
package similarity

import (
	"fmt"
	"strings"
)

// Func scores how alike two strings are.
type Func func(a, b string) float64

const (
	AlgorithmJaroWinkler  = "jaro-winkler"
	AlgorithmTokenOverlap = "token-overlap"
)

// ByName returns the metric registered under name.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case AlgorithmJaroWinkler, "jarowinkler", "jw":
		return JaroWinkler, nil
	case AlgorithmTokenOverlap, "tokenoverlap", "bigram", "jaccard":
		return TokenOverlap, nil
	default:
		return nil, fmt.Errorf("unknown similarity algorithm %q", name)
	}
}
