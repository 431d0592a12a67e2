package resolve

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
	"github.com/ZanzyTHEbar/g2x/g2x/similarity"
)

const disambiguationMarker = "___"

// ScoreCandidate rates how well entry matches parsed under sim. The score blends
// path, album (last segment) and filename similarity by the normalized weights,
// after stemming, synonym, containment and digit-skeleton adjustments, minus a
// penalty for differing directory depth. The result is never negative.
func ScoreCandidate(parsed ParsedURL, entry indexing.FileEntry, weights Weights, sim similarity.Func, opts Options) float64 {
	w := weights.Normalized()

	pathSim := max(
		sim(parsed.DirPath(), entry.DirPath),
		sim(stemJoin(parsed.DirSegments, opts.StemMinLength), stemJoin(entry.DirSegments, opts.StemMinLength)),
	)

	queryAlbum := strings.ToLower(parsed.LastSegment())
	entryAlbum := strings.ToLower(entry.LastSegment())
	albumSim := max(
		sim(queryAlbum, entryAlbum),
		sim(stem(queryAlbum, opts.StemMinLength), stem(entryAlbum, opts.StemMinLength)),
	)
	if syn, ok := opts.Synonyms[queryAlbum]; ok {
		albumSim = max(albumSim, sim(syn, entryAlbum))
	}
	if contains(queryAlbum, entryAlbum, 1) {
		albumSim = min(1, albumSim+opts.AlbumContainmentBoost)
	}

	queryFile := strings.ToLower(DedupeFilename(parsed.BaseFilename))
	entryFile := strings.ToLower(entry.Filename)
	fileSim := max(
		sim(queryFile, entryFile),
		sim(skeleton(queryFile), skeleton(entryFile))*opts.SkeletonScale,
	)
	if contains(queryFile, entryFile, 2) {
		fileSim = min(1, fileSim*opts.ContainmentFactor)
	}

	depthDiff := abs(len(parsed.DirSegments) - len(entry.DirSegments))
	penalty := min(opts.DepthPenaltyMax, opts.DepthPenaltyStep*float64(depthDiff))

	score := pathSim*w.Path + albumSim*w.Album + fileSim*w.File - penalty
	return max(0, score)
}

// DedupeFilename strips the "___" disambiguation prefix the legacy exporter put
// in front of clashing names. Text up to the first marker is dropped; if more
// markers remain only the text after the last one is kept. The extension
// follows the last marker, so it survives unchanged.
func DedupeFilename(name string) string {
	_, rest, found := strings.Cut(name, disambiguationMarker)
	if !found {
		return name
	}
	if i := strings.LastIndex(rest, disambiguationMarker); i >= 0 {
		rest = rest[i+len(disambiguationMarker):]
	}
	return rest
}

// stem lowercases s and, for names longer than minLen runes, drops the vowels.
func stem(s string, minLen int) string {
	s = strings.ToLower(s)
	if utf8.RuneCountInString(s) <= minLen {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return -1
		}
		return r
	}, s)
}

func stemJoin(segments []string, minLen int) string {
	stems := make([]string, len(segments))
	for i, s := range segments {
		stems[i] = stem(s, minLen)
	}
	return strings.Join(stems, "/")
}

// skeleton masks every digit with '#'.
func skeleton(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return '#'
		}
		return r
	}, s)
}

// contains reports whether either string holds the other, counting only
// contained strings of at least minLen runes.
func contains(a, b string, minLen int) bool {
	if utf8.RuneCountInString(b) >= minLen && strings.Contains(a, b) {
		return true
	}
	return utf8.RuneCountInString(a) >= minLen && strings.Contains(b, a)
}
