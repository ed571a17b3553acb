package merkle

import "fmt"

// A Tree names one commitment-tree shape: the hash function compressing its
// nodes and the fan-out at each level. Compound shapes stack a sub tree and
// optionally a top tree over the base; flat shapes leave both arities at
// zero. Shapes carry no data, so they are compared and passed by value.
type Tree interface {
	// Name returns the canonical shape identifier, embedding the hasher
	// name and the fan-out triple, e.g. "merkletree-poseidon_hasher-8-0-0".
	Name() string

	// HasherName returns the canonical name of the node hash function.
	HasherName() string

	// Arity returns the base fan-out.
	Arity() uint

	// SubTreeArity returns the sub-tree fan-out, or zero for flat shapes.
	SubTreeArity() uint

	// TopTreeArity returns the top-tree fan-out, or zero when no top tree
	// is stacked.
	TopTreeArity() uint

	// LevelCached reports whether the shape is persisted through a
	// level-cached store, which discards its lowest cached rows on disk
	// and rebuilds them on demand.
	LevelCached() bool
}

type treeShape struct {
	hasher         string
	base, sub, top uint
	levelCached    bool
}

func (s treeShape) Name() string {
	return fmt.Sprintf("merkletree-%s-%d-%d-%d", s.hasher, s.base, s.sub, s.top)
}

func (s treeShape) HasherName() string { return s.hasher }
func (s treeShape) Arity() uint        { return s.base }
func (s treeShape) SubTreeArity() uint { return s.sub }
func (s treeShape) TopTreeArity() uint { return s.top }
func (s treeShape) LevelCached() bool  { return s.levelCached }

var (
	// DefaultBinaryTree is the data-commitment shape: sha256 nodes over the
	// raw sector data with binary fan-out.
	DefaultBinaryTree Tree = treeShape{hasher: Sha256HasherName, base: BinaryArity}

	// DefaultOctTree is the replica-commitment shape: poseidon nodes with
	// eight-way fan-out, fully persisted.
	DefaultOctTree Tree = treeShape{hasher: PoseidonHasherName, base: OctArity}

	// DefaultOctLCTree is DefaultOctTree persisted through a level-cached
	// store. The shape and identifier are unchanged; only the on-disk
	// footprint differs.
	DefaultOctLCTree Tree = treeShape{hasher: PoseidonHasherName, base: OctArity, levelCached: true}
)

// RowCount returns the number of rows in a tree of the given fan-out over
// the given number of leaves, counting both the leaf row and the root.
func RowCount(leaves uint64, arity uint) uint {
	rows := uint(1)
	for leaves > 1 {
		leaves = (leaves + uint64(arity) - 1) / uint64(arity)
		rows++
	}
	return rows
}

// DefaultRowsToDiscard returns how many cached rows a level-cached store
// drops for a tree of the given size and fan-out. The cap shrinks as the
// fan-out grows; the leaf row and the root are never discarded.
func DefaultRowsToDiscard(leaves uint64, arity uint) uint {
	rowCount := RowCount(leaves, arity)
	if rowCount <= 2 {
		return 0
	}
	if rowCount == 3 {
		return 1
	}

	maxRowsToDiscard := rowCount - 2
	var limit uint
	switch arity {
	case BinaryArity:
		limit = 7
	case QuadArity:
		limit = 5
	case OctArity:
		limit = 2
	default:
		return maxRowsToDiscard
	}
	if limit < maxRowsToDiscard {
		return limit
	}
	return maxRowsToDiscard
}
