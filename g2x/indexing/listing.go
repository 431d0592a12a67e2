package indexing

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// LoadFileList parses a newline-delimited listing of relative paths.
// Blank lines are dropped, a leading "./" is stripped and backslashes become '/'.
// Nothing is checked against the filesystem.
func LoadFileList(content string) []FileEntry {
	return loadFileList(content, nil)
}

// LoadFileListFiltered is LoadFileList with gitignore-style patterns applied to
// each normalized path. Matching lines are dropped before they reach the index.
func LoadFileListFiltered(content string, patterns []string) []FileEntry {
	var matcher *ignore.GitIgnore
	if len(patterns) > 0 {
		matcher = ignore.CompileIgnoreLines(patterns...)
	}
	return loadFileList(content, matcher)
}

// ReadListing loads a listing file from disk and parses it with LoadFileListFiltered.
func ReadListing(path string, patterns []string) ([]FileEntry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrListingEmpty
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrListingNotFound, path)
		}
		return nil, fmt.Errorf("failed to read listing %s: %w", path, err)
	}
	return LoadFileListFiltered(string(data), patterns), nil
}

func loadFileList(content string, matcher *ignore.GitIgnore) []FileEntry {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	entries := make([]FileEntry, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		p := normalizeListingLine(line)
		if p == "" {
			continue
		}
		if matcher != nil && matcher.MatchesPath(p) {
			skipped++
			continue
		}
		entries = append(entries, NewFileEntry(p))
	}

	slog.Debug("Listing parsed",
		"entries", len(entries),
		"ignored", skipped)

	return entries
}

func normalizeListingLine(line string) string {
	p := strings.TrimSpace(line)
	if p == "" {
		return ""
	}
	p = strings.TrimPrefix(p, "./")
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimSpace(p)
}
