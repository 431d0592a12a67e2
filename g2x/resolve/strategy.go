package resolve

import (
	"sort"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
	"github.com/ZanzyTHEbar/g2x/g2x/similarity"
)

// Scored pairs a candidate with its score.
type Scored struct {
	Entry indexing.FileEntry
	Score float64
}

// RankCandidates scores every candidate with sim and sorts them best first.
// Equal scores keep retrieval order.
func RankCandidates(parsed ParsedURL, candidates []indexing.FileEntry, sim similarity.Func, opts Options) []Scored {
	ranked := make([]Scored, len(candidates))
	for i, e := range candidates {
		ranked[i] = Scored{Entry: e, Score: ScoreCandidate(parsed, e, opts.Weights, sim, opts)}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked
}

// decide applies the single-algorithm acceptance rule to a ranking: the leader
// wins outright at Threshold, or at LowerThreshold when it leads the runner-up
// by at least ConfidenceGap.
func decide(ranked []Scored, opts Options) (Scored, Method) {
	if len(ranked) == 0 {
		return Scored{}, MethodNone
	}
	top := ranked[0]
	if top.Score >= opts.Threshold {
		return top, MethodSingle
	}
	second := 0.0
	if len(ranked) > 1 {
		second = ranked[1].Score
	}
	if top.Score-second >= opts.ConfidenceGap && top.Score >= opts.LowerThreshold {
		return top, MethodConfidenceGap
	}
	return Scored{}, MethodNone
}

// BestMatch ranks candidates with Jaro-Winkler scoring and applies the
// threshold / confidence-gap rule.
func BestMatch(parsed ParsedURL, candidates []indexing.FileEntry, opts Options) (Scored, Method) {
	return decide(RankCandidates(parsed, candidates, similarity.JaroWinkler, opts), opts)
}

// ConsensusMatch ranks candidates twice, with Jaro-Winkler and with
// token-overlap scoring, and Borda-counts the top BordaTopK of each list: rank r
// of a list of size K earns K+1-r points. The leading path is accepted with at
// least MinConsensusPoints; otherwise the Jaro-Winkler ranking over the whole
// pool decides as BestMatch would.
func ConsensusMatch(parsed ParsedURL, candidates []indexing.FileEntry, opts Options) (Scored, Method) {
	if len(candidates) == 0 {
		return Scored{}, MethodNone
	}
	byJW := RankCandidates(parsed, candidates, similarity.JaroWinkler, opts)
	byOverlap := RankCandidates(parsed, candidates, similarity.TokenOverlap, opts)

	points := indexing.NewOrderedSet[string, int](2 * max(opts.BordaTopK, 0))
	jwScore := make(map[string]Scored, len(byJW))
	for _, s := range byJW {
		jwScore[s.Entry.FullPath] = s
	}

	for _, list := range [][]Scored{topK(byJW, opts.BordaTopK), topK(byOverlap, opts.BordaTopK)} {
		k := len(list)
		for r, s := range list {
			cur, _ := points.Get(s.Entry.FullPath)
			points.Set(s.Entry.FullPath, cur+k+1-r)
		}
	}

	leader, best := "", 0
	for _, key := range points.Keys() {
		if p, _ := points.Get(key); p > best {
			leader, best = key, p
		}
	}
	if leader != "" && best >= opts.MinConsensusPoints {
		return jwScore[leader], MethodConsensus
	}

	match, method := decide(byJW, opts)
	if method != MethodNone {
		method = MethodConsensusFallback
	}
	return match, method
}

func topK(ranked []Scored, k int) []Scored {
	if k < 0 {
		k = 0
	}
	if len(ranked) > k {
		return ranked[:k]
	}
	return ranked
}
