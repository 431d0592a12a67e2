package resolve

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
)

const (
	heuristicTrigramWeight   = 10
	heuristicFirstCharWeight = 5
	heuristicLengthWeight    = 1
	heuristicLengthSlack     = 5
)

// GetCandidates narrows the index to a bounded pool worth scoring. Three sources
// each contribute at most CandidateCap/3 entries:
//
//	a. entries in a directory named like the query's last segment
//	b. entries whose directory matches a PathVariants spelling
//	c. entries sharing a filename trigram with the query
//
// The union is deduplicated by full path in source order. Pools larger than
// EarlyExitTop are cut down by a cheap trigram/first-rune/length heuristic.
// The cost is bounded by the caps, not by the size of the index.
func GetCandidates(parsed ParsedURL, idx *indexing.FileIndex, opts Options) []indexing.FileEntry {
	if idx.Len() == 0 {
		return nil
	}
	sourceCap := opts.CandidateCap / 3
	queryLower := strings.ToLower(parsed.BaseFilename)
	grams := indexing.Trigrams(queryLower)

	pool := indexing.NewOrderedSet[string, indexing.FileEntry](3 * max(sourceCap, 0))
	for _, source := range [][]indexing.FileEntry{
		bySegment(parsed, idx, sourceCap),
		byVariant(parsed, idx, sourceCap),
		byTrigram(grams, idx, sourceCap),
	} {
		for _, e := range source {
			pool.Add(e.FullPath, e)
		}
	}
	pool.Truncate(opts.CandidateCap)

	candidates := pool.Values()
	if len(candidates) <= opts.EarlyExitTop {
		return candidates
	}

	type ranked struct {
		entry indexing.FileEntry
		score int
	}
	firstRune, _ := utf8.DecodeRuneInString(queryLower)
	queryLen := utf8.RuneCountInString(queryLower)

	rs := make([]ranked, len(candidates))
	for i, e := range candidates {
		score := 0
		if ord, ok := idx.OrdinalOf(e.FullPath); ok {
			score += heuristicTrigramWeight * idx.Trigrams().Overlap(grams, ord)
		}
		name := strings.ToLower(e.Filename)
		if r, _ := utf8.DecodeRuneInString(name); queryLower != "" && name != "" && r == firstRune {
			score += heuristicFirstCharWeight
		}
		if abs(utf8.RuneCountInString(name)-queryLen) <= heuristicLengthSlack {
			score += heuristicLengthWeight
		}
		rs[i] = ranked{entry: e, score: score}
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].score > rs[j].score })

	top := make([]indexing.FileEntry, 0, opts.EarlyExitTop)
	for _, r := range rs[:max(opts.EarlyExitTop, 0)] {
		top = append(top, r.entry)
	}
	return top
}

// bySegment, byVariant and byTrigram stop reading a bucket or posting list as
// soon as limit entries are collected.
func bySegment(parsed ParsedURL, idx *indexing.FileIndex, limit int) []indexing.FileEntry {
	if limit <= 0 {
		return nil
	}
	set := indexing.NewOrderedSet[string, indexing.FileEntry](limit)
	for e := range idx.ByLastSegment(strings.ToLower(parsed.LastSegment())) {
		set.Add(e.FullPath, e)
		if set.Len() >= limit {
			break
		}
	}
	return set.Values()
}

func byVariant(parsed ParsedURL, idx *indexing.FileIndex, limit int) []indexing.FileEntry {
	if limit <= 0 {
		return nil
	}
	set := indexing.NewOrderedSet[string, indexing.FileEntry](limit)
	seenDirs := make(map[string]struct{})
	for _, v := range PathVariants(parsed.DirSegments) {
		dir := strings.ToLower(v)
		if _, ok := seenDirs[dir]; ok {
			continue
		}
		seenDirs[dir] = struct{}{}
		for e := range idx.ByDir(dir) {
			set.Add(e.FullPath, e)
			if set.Len() >= limit {
				return set.Values()
			}
		}
	}
	return set.Values()
}

func byTrigram(grams []string, idx *indexing.FileIndex, limit int) []indexing.FileEntry {
	if limit <= 0 {
		return nil
	}
	set := indexing.NewOrderedSet[string, indexing.FileEntry](limit)
	for _, g := range grams {
		for e := range idx.ByTrigram(g) {
			set.Add(e.FullPath, e)
			if set.Len() >= limit {
				return set.Values()
			}
		}
	}
	return set.Values()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
