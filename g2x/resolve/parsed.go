package resolve

import (
	"strings"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
)

// ParsedURL is a stored gallery path split into directory segments and a filename.
type ParsedURL struct {
	DirSegments  []string
	BaseFilename string
}

// ParsePath splits a '/' or '\' separated relative path into a ParsedURL.
func ParsePath(p string) ParsedURL {
	e := indexing.NewFileEntry(strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(p), "\\", "/"), "./"))
	return ParsedURL{DirSegments: e.DirSegments, BaseFilename: e.Filename}
}

// DirPath joins the directory segments with '/'.
func (p ParsedURL) DirPath() string {
	return strings.Join(p.DirSegments, "/")
}

// FullPath is DirPath plus the filename, without a leading separator.
func (p ParsedURL) FullPath() string {
	if len(p.DirSegments) == 0 {
		return p.BaseFilename
	}
	return p.DirPath() + "/" + p.BaseFilename
}

// LastSegment returns the album name, i.e. the deepest directory segment.
func (p ParsedURL) LastSegment() string {
	if len(p.DirSegments) == 0 {
		return ""
	}
	return p.DirSegments[len(p.DirSegments)-1]
}

// IsEmpty reports a reference with neither directories nor a usable filename.
func (p ParsedURL) IsEmpty() bool {
	return len(p.DirSegments) == 0 && strings.TrimSpace(p.BaseFilename) == ""
}
