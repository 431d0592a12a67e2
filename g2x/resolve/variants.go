package resolve

import (
	"strings"

	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
)

// PathVariants returns alternate spellings of the joined directory path that
// compensate for case and separator drift between the database and the disk:
//   - the path as given, lowercased and uppercased
//   - every '-' and '_' unified to '-', then to '_'
//   - each single segment with '-', '_' or both removed, in all three cases
//
// The result is deduplicated and keeps first-seen order.
func PathVariants(segments []string) []string {
	set := indexing.NewOrderedSet[string, struct{}](8 + 9*len(segments))
	addCased := func(segs []string) {
		joined := strings.Join(segs, "/")
		set.Add(joined, struct{}{})
		set.Add(strings.ToLower(joined), struct{}{})
		set.Add(strings.ToUpper(joined), struct{}{})
	}

	addCased(segments)

	for _, sep := range []string{"-", "_"} {
		unified := make([]string, len(segments))
		for i, s := range segments {
			unified[i] = strings.NewReplacer("-", sep, "_", sep).Replace(s)
		}
		set.Add(strings.Join(unified, "/"), struct{}{})
	}

	removals := []*strings.Replacer{
		strings.NewReplacer("-", ""),
		strings.NewReplacer("_", ""),
		strings.NewReplacer("-", "", "_", ""),
	}
	for i := range segments {
		for _, r := range removals {
			variant := make([]string, len(segments))
			copy(variant, segments)
			variant[i] = r.Replace(segments[i])
			addCased(variant)
		}
	}

	return set.Keys()
}
