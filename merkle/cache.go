package merkle

import "github.com/spacemeshos/merkle-tree/cache"

type (
	// CacheReader reads back the cached rows of a built commitment tree.
	CacheReader = cache.CacheReader

	// LayerReadWriter is one cached tree row.
	LayerReadWriter = cache.LayerReadWriter
)

// TreeCache is a built tree's cached rows together with its root.
type TreeCache struct {
	Reader CacheReader
	Root   []byte
}

// MergeCaches combines per-subtree caches into one cache spanning them all
// and builds the top rows over the subtree roots. The inputs must be equally
// shaped; their count matches the sub-tree arity of the composed tree.
func MergeCaches(caches []*TreeCache) (*TreeCache, error) {
	switch len(caches) {
	case 0:
		return nil, nil
	case 1:
		return caches[0], nil
	default:
		readers := make([]CacheReader, len(caches))
		for i, c := range caches {
			readers[i] = c.Reader
		}

		reader, err := cache.Merge(readers)
		if err != nil {
			return nil, err
		}

		reader, root, err := cache.BuildTop(reader)
		if err != nil {
			return nil, err
		}

		return &TreeCache{reader, root}, nil
	}
}
