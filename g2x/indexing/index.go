package indexing

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

// FileIndex is the read-only lookup structure built from a listing snapshot.
// It is never mutated after BuildFileIndex returns, so a single instance can be
// shared by any number of concurrent readers without locking. A changed listing
// needs a new index.
type FileIndex struct {
	entries []FileEntry

	exact       map[string]int
	byLowerPath map[string][]int
	byLastSeg   map[string][]int
	byDir       *dirTree
	byComposite map[string][]int
	trigrams    *TrigramPostings
}

// IndexStats summarizes the size of each lookup structure.
type IndexStats struct {
	Entries      int
	Directories  int
	LastSegments int
	Trigrams     int
}

// BuildFileIndex builds every lookup structure in a single pass over entries.
// Multi-valued maps keep all entries that share a key, in listing order. The exact
// map keeps the first entry for a duplicated path.
//
// An entry with an empty FullPath is a programming error and panics.
func BuildFileIndex(entries []FileEntry) *FileIndex {
	idx := &FileIndex{
		entries:     make([]FileEntry, len(entries)),
		exact:       make(map[string]int, len(entries)),
		byLowerPath: make(map[string][]int, len(entries)),
		byLastSeg:   make(map[string][]int),
		byDir:       newDirTree(),
		byComposite: make(map[string][]int, len(entries)),
		trigrams:    newTrigramPostings(),
	}
	copy(idx.entries, entries)

	for i, e := range idx.entries {
		if e.FullPath == "" {
			panic(fmt.Sprintf("indexing: entry %d has an empty FullPath", i))
		}

		if _, dup := idx.exact[e.FullPath]; !dup {
			idx.exact[e.FullPath] = i
		}

		lowerPath := strings.ToLower(e.FullPath)
		idx.byLowerPath[lowerPath] = append(idx.byLowerPath[lowerPath], i)

		lastSeg := strings.ToLower(e.LastSegment())
		idx.byLastSeg[lastSeg] = append(idx.byLastSeg[lastSeg], i)

		idx.byDir.insert(strings.ToLower(e.DirPath), i)

		ck := CompositeKey(e.DirPath, e.Filename)
		idx.byComposite[ck] = append(idx.byComposite[ck], i)

		for _, g := range LowerTrigrams(e.Filename) {
			idx.trigrams.add(g, i)
		}
	}

	slog.Debug("File index built",
		"entries", len(idx.entries),
		"directories", idx.byDir.dirs,
		"trigrams", idx.trigrams.Len())

	return idx
}

// Len returns the number of indexed entries.
func (idx *FileIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Exact looks up a full path case-sensitively.
func (idx *FileIndex) Exact(fullPath string) (FileEntry, bool) {
	i, ok := idx.exact[fullPath]
	if !ok {
		return FileEntry{}, false
	}
	return idx.entries[i], true
}

// ByLowerPath returns entries whose lowercased full path equals lowerPath.
func (idx *FileIndex) ByLowerPath(lowerPath string) []FileEntry {
	return idx.collect(idx.byLowerPath[lowerPath])
}

// ByLastSegment yields entries whose lowercased deepest directory equals seg, in
// listing order. The bucket is not copied.
func (idx *FileIndex) ByLastSegment(seg string) iter.Seq[FileEntry] {
	return idx.each(idx.byLastSeg[seg])
}

// ByDir yields entries whose lowercased directory path equals dirLower.
func (idx *FileIndex) ByDir(dirLower string) iter.Seq[FileEntry] {
	return idx.each(idx.byDir.lookup(dirLower))
}

// ByComposite returns entries stored under CompositeKey(dir, filename).
func (idx *FileIndex) ByComposite(key string) []FileEntry {
	return idx.collect(idx.byComposite[key])
}

// ByTrigram yields the entries whose lowercased filename contains gram.
func (idx *FileIndex) ByTrigram(gram string) iter.Seq[FileEntry] {
	return func(yield func(FileEntry) bool) {
		for o := range idx.trigrams.Ordinals(gram) {
			if !yield(idx.entries[o]) {
				return
			}
		}
	}
}

// Trigrams exposes the filename trigram postings.
func (idx *FileIndex) Trigrams() *TrigramPostings {
	return idx.trigrams
}

// DirsWithPrefix lists lowercased directory paths at or below prefix, sorted.
func (idx *FileIndex) DirsWithPrefix(prefix string) []string {
	return idx.byDir.walkPrefix(strings.ToLower(prefix))
}

// OrdinalOf returns the ordinal of the entry stored under fullPath.
func (idx *FileIndex) OrdinalOf(fullPath string) (int, bool) {
	i, ok := idx.exact[fullPath]
	return i, ok
}

// Stats reports the size of each lookup structure.
func (idx *FileIndex) Stats() IndexStats {
	return IndexStats{
		Entries:      len(idx.entries),
		Directories:  idx.byDir.dirs,
		LastSegments: len(idx.byLastSeg),
		Trigrams:     idx.trigrams.Len(),
	}
}

func (idx *FileIndex) collect(ordinals []int) []FileEntry {
	if len(ordinals) == 0 {
		return nil
	}
	out := make([]FileEntry, len(ordinals))
	for i, o := range ordinals {
		out[i] = idx.entries[o]
	}
	return out
}

func (idx *FileIndex) each(ordinals []int) iter.Seq[FileEntry] {
	return func(yield func(FileEntry) bool) {
		for _, o := range ordinals {
			if !yield(idx.entries[o]) {
				return
			}
		}
	}
}
