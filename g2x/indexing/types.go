package indexing

import "strings"

// FileEntry is one line of a file listing split into its directory and file parts.
// All fields are derived once by NewFileEntry and never change afterwards.
type FileEntry struct {
	FullPath    string
	DirPath     string
	DirSegments []string
	Filename    string
}

// NewFileEntry splits an already-normalized relative path at its last '/'.
// DirPath is empty for paths without a separator.
func NewFileEntry(fullPath string) FileEntry {
	entry := FileEntry{FullPath: fullPath, Filename: fullPath}
	if i := strings.LastIndex(fullPath, "/"); i >= 0 {
		entry.DirPath = fullPath[:i]
		entry.Filename = fullPath[i+1:]
	}
	entry.DirSegments = SplitDir(entry.DirPath)
	return entry
}

// SplitDir returns the '/'-separated segments of dirPath, or an empty slice for "".
func SplitDir(dirPath string) []string {
	if dirPath == "" {
		return []string{}
	}
	return strings.Split(dirPath, "/")
}

// LastSegment returns the deepest directory name, or "" for root-level files.
func (e FileEntry) LastSegment() string {
	if len(e.DirSegments) == 0 {
		return ""
	}
	return e.DirSegments[len(e.DirSegments)-1]
}

// Depth is the number of directory segments above the file.
func (e FileEntry) Depth() int {
	return len(e.DirSegments)
}

// CompositeKey builds the "dirLower::filenameLower" key used by the composite map.
func CompositeKey(dirPath, filename string) string {
	return strings.ToLower(dirPath) + "::" + strings.ToLower(filename)
}
