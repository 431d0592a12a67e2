package resolve

import (
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
)

// ExactMatch tries, in order, the case-sensitive full path, the case-folded
// full path and the "dir::filename" composite key.
func ExactMatch(parsed ParsedURL, idx *indexing.FileIndex) (indexing.FileEntry, Method) {
	full := parsed.FullPath()
	if e, ok := idx.Exact(full); ok {
		return e, MethodExact
	}
	if hits := idx.ByLowerPath(strings.ToLower(full)); len(hits) > 0 {
		return hits[0], MethodCaseInsensitive
	}
	if hits := idx.ByComposite(indexing.CompositeKey(parsed.DirPath(), parsed.BaseFilename)); len(hits) > 0 {
		return hits[0], MethodComposite
	}
	return indexing.FileEntry{}, MethodNone
}

// PlainMatch walks the PathVariants of the query directory and returns the first
// entry whose filename equals the query filename, ignoring case and treating
// whitespace as '_'.
func PlainMatch(parsed ParsedURL, idx *indexing.FileIndex) (indexing.FileEntry, Method) {
	want := underscoreSpaces(parsed.BaseFilename)
	for _, v := range PathVariants(parsed.DirSegments) {
		for e := range idx.ByDir(strings.ToLower(v)) {
			if strings.EqualFold(e.Filename, parsed.BaseFilename) || strings.EqualFold(underscoreSpaces(e.Filename), want) {
				return e, MethodPlain
			}
		}
	}
	return indexing.FileEntry{}, MethodNone
}

func underscoreSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}
