package merkle

// MerkleProof is an inclusion proof against one commitment tree. Exactly one
// of the Data variants is set, matching the shape of the tree the proof was
// drawn from: flat shapes produce Single proofs, compound shapes produce Sub
// or Top proofs spanning each stacked level.
type MerkleProof[H HasherDomain] struct {
	Data ProofData[H] `json:"data"`
}

// ProofData is the variant body of a MerkleProof.
type ProofData[H HasherDomain] struct {
	Single *SingleProof[H] `json:"Single,omitempty"`
	Sub    *SubProof[H]    `json:"Sub,omitempty"`
	Top    *TopProof[H]    `json:"Top,omitempty"`
}

// SingleProof proves a leaf against a flat tree.
type SingleProof[H HasherDomain] struct {
	Root H                `json:"root"`
	Leaf H                `json:"leaf"`
	Path InclusionPath[H] `json:"path"`
}

// SubProof proves a leaf against a two-level compound tree: a path through
// the base tree, then a path through the sub tree over the base roots.
type SubProof[H HasherDomain] struct {
	BaseProof InclusionPath[H] `json:"base_proof"`
	SubProof  InclusionPath[H] `json:"sub_proof"`
	Root      H                `json:"root"`
	Leaf      H                `json:"leaf"`
}

// TopProof proves a leaf against a three-level compound tree.
type TopProof[H HasherDomain] struct {
	BaseProof InclusionPath[H] `json:"base_proof"`
	SubProof  InclusionPath[H] `json:"sub_proof"`
	TopProof  InclusionPath[H] `json:"top_proof"`

	Root H `json:"root"`
	Leaf H `json:"leaf"`
}

// InclusionPath is the ordered list of sibling sets on the way from a leaf
// to a root.
type InclusionPath[H HasherDomain] struct {
	Path []PathElement[H] `json:"path"`
}

// PathElement carries the siblings of one path node and the node's index
// among its siblings.
type PathElement[H HasherDomain] struct {
	Hashes []H    `json:"hashes"`
	Index  uint64 `json:"index"`
}
