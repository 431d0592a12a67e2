package similarity

import "strings"

// TokenOverlap is the Jaccard coefficient of the character-bigram sets of the
// lowercased strings. A single-rune string is its own token, so "a" and "b"
// share nothing while "a" and "A" are identical. Two empty sets score 1.
func TokenOverlap(a, b string) float64 {
	if a == b {
		return 1
	}
	ga := bigrams(strings.ToLower(a))
	gb := bigrams(strings.ToLower(b))

	switch {
	case len(ga) == 0 && len(gb) == 0:
		return 1
	case len(ga) == 0 || len(gb) == 0:
		return 0
	}

	inter := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			inter++
		}
	}
	union := len(ga) + len(gb) - inter
	return float64(inter) / float64(union)
}

func bigrams(s string) map[string]struct{} {
	r := []rune(s)
	switch len(r) {
	case 0:
		return nil
	case 1:
		return map[string]struct{}{s: {}}
	}
	set := make(map[string]struct{}, len(r)-1)
	for i := 0; i+2 <= len(r); i++ {
		set[string(r[i:i+2])] = struct{}{}
	}
	return set
}
