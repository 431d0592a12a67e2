package similarity

const (
	winklerPrefixScale = 0.1
	winklerMaxPrefix   = 4
)

// JaroWinkler returns the Jaro similarity of a and b boosted by their common
// prefix (scale 0.1, at most 4 runes). Comparison is rune based and case-sensitive.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return 1
	}
	r1, r2 := []rune(a), []rune(b)
	if len(r1) == 0 || len(r2) == 0 {
		return 0
	}

	j := jaro(r1, r2)

	prefix := 0
	for i := 0; i < min(len(r1), len(r2), winklerMaxPrefix); i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return j + float64(prefix)*winklerPrefixScale*(1-j)
}

func jaro(r1, r2 []rune) float64 {
	window := max(0, max(len(r1), len(r2))/2-1)

	matched1 := make([]bool, len(r1))
	matched2 := make([]bool, len(r2))

	matches := 0
	for i := range r1 {
		start := max(0, i-window)
		end := min(i+window+1, len(r2))
		for k := start; k < end; k++ {
			if matched2[k] || r1[i] != r2[k] {
				continue
			}
			matched1[i] = true
			matched2[k] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := range r1 {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len(r1)) + m/float64(len(r2)) + (m-float64(transpositions)/2)/m) / 3
}
