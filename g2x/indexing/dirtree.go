package indexing

import (
	"strings"

	"github.com/armon/go-radix"
)

// dirTree is a patricia tree keyed by lowercased directory path. Each leaf holds
// the ordinals of the entries in that directory, in listing order. Lookups are
// O(k) in the key length and prefix walks visit only the matching subtree.
type dirTree struct {
	tree *radix.Tree
	dirs int
}

type dirBucket struct {
	ordinals []int
}

func newDirTree() *dirTree {
	return &dirTree{tree: radix.New()}
}

func (dt *dirTree) insert(dirLower string, ordinal int) {
	if v, ok := dt.tree.Get(dirLower); ok {
		b := v.(*dirBucket)
		b.ordinals = append(b.ordinals, ordinal)
		return
	}
	dt.tree.Insert(dirLower, &dirBucket{ordinals: []int{ordinal}})
	dt.dirs++
}

func (dt *dirTree) lookup(dirLower string) []int {
	v, ok := dt.tree.Get(dirLower)
	if !ok {
		return nil
	}
	return v.(*dirBucket).ordinals
}

// walkPrefix returns every directory key equal to prefix or nested below it.
func (dt *dirTree) walkPrefix(prefix string) []string {
	prefix = strings.TrimSuffix(prefix, "/")
	var dirs []string
	dt.tree.WalkPrefix(prefix, func(key string, _ interface{}) bool {
		if prefix == "" || key == prefix || strings.HasPrefix(key, prefix+"/") {
			dirs = append(dirs, key)
		}
		return false
	})
	return dirs
}
