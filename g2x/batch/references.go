package batch

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/g2x/g2x/resolve"
)

var ErrEmptyReference = errors.New("reference has no path")

// Reference is one gallery item to resolve.
type Reference struct {
	ID     string
	Line   int
	Parsed resolve.ParsedURL
}

// ParseReferences reads one reference per line as "id<TAB>path". Lines without
// a tab use their line number as id. Blank lines and '#' comments are skipped.
func ParseReferences(content string) ([]Reference, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	refs := make([]Reference, 0, len(lines))

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lineNo := i + 1
		id, p, found := strings.Cut(line, "\t")
		if !found {
			id, p = strconv.Itoa(lineNo), line
		}
		id, p = strings.TrimSpace(id), strings.TrimSpace(p)

		parsed := resolve.ParsePath(p)
		if parsed.IsEmpty() {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrEmptyReference)
		}
		refs = append(refs, Reference{ID: id, Line: lineNo, Parsed: parsed})
	}
	return refs, nil
}

// ReadReferences loads and parses a references file.
func ReadReferences(path string) ([]Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read references %s: %w", path, err)
	}
	refs, err := ParseReferences(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse references %s: %w", path, err)
	}
	return refs, nil
}
