package indexing

import (
	"iter"
	"strings"

	roaring "github.com/RoaringBitmap/roaring"
)

// TrigramPostings maps each 3-rune substring to a bitmap of entry ordinals.
// Ordinals are assigned in listing order, so ascending bitmap iteration yields
// deduplicated entries in insertion order.
type TrigramPostings struct {
	lists map[string]*roaring.Bitmap
}

func newTrigramPostings() *TrigramPostings {
	return &TrigramPostings{lists: make(map[string]*roaring.Bitmap)}
}

func (tp *TrigramPostings) add(gram string, ordinal int) {
	bm, ok := tp.lists[gram]
	if !ok {
		bm = roaring.New()
		tp.lists[gram] = bm
	}
	bm.Add(uint32(ordinal))
}

// Contains reports whether the entry at ordinal has gram in its filename.
func (tp *TrigramPostings) Contains(gram string, ordinal int) bool {
	bm, ok := tp.lists[gram]
	return ok && bm.Contains(uint32(ordinal))
}

// Ordinals yields the posting list for gram in ascending order. Iteration walks
// the bitmap lazily, so stopping early costs nothing for long lists.
func (tp *TrigramPostings) Ordinals(gram string) iter.Seq[int] {
	return func(yield func(int) bool) {
		bm, ok := tp.lists[gram]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Overlap counts how many of grams occur in the filename of the entry at ordinal.
func (tp *TrigramPostings) Overlap(grams []string, ordinal int) int {
	n := 0
	for _, g := range grams {
		if tp.Contains(g, ordinal) {
			n++
		}
	}
	return n
}

func (tp *TrigramPostings) Len() int { return len(tp.lists) }

// Trigrams returns the distinct 3-rune substrings of s in first-occurrence order.
// Strings shorter than three runes have none.
func Trigrams(s string) []string {
	r := []rune(s)
	if len(r) < 3 {
		return nil
	}
	set := NewOrderedSet[string, struct{}](len(r) - 2)
	for i := 0; i+3 <= len(r); i++ {
		set.Add(string(r[i:i+3]), struct{}{})
	}
	return set.Keys()
}

// LowerTrigrams is Trigrams over the lowercased string.
func LowerTrigrams(s string) []string {
	return Trigrams(strings.ToLower(s))
}
