package porep

import (
	"github.com/filecoin-project/go-proofs/merkle"
)

// VanillaSealProof is one challenge's worth of replication evidence, before
// any compression: inclusion proofs for the challenged node in the data tree
// and the replica tree, the columns of its parents, and the labeling and
// encoding derivations tying them together. Data-tree proofs are always
// sha256; the replica side is generic over the tree hasher's domain.
type VanillaSealProof[H merkle.HasherDomain] struct {
	CommDProofs    merkle.MerkleProof[merkle.Sha256Domain] `json:"comm_d_proofs"`
	CommRLastProof merkle.MerkleProof[H]                   `json:"comm_r_last_proof"`

	ReplicaColumnProofs ReplicaColumnProof[H] `json:"replica_column_proofs"`
	LabelingProofs      []LabelingProof[H]    `json:"labeling_proofs"`
	EncodingProof       EncodingProof[H]      `json:"encoding_proof"`
}

// ReplicaColumnProof carries the labeled columns of a challenged node and
// of all its parents.
type ReplicaColumnProof[H merkle.HasherDomain] struct {
	CX         ColumnProof[H]   `json:"c_x"`
	DrgParents []ColumnProof[H] `json:"drg_parents"`
	ExpParents []ColumnProof[H] `json:"exp_parents"`
}

// ColumnProof is one column together with its inclusion proof against the
// column commitment.
type ColumnProof[H merkle.HasherDomain] struct {
	Column         Column[H]             `json:"column"`
	InclusionProof merkle.MerkleProof[H] `json:"inclusion_proof"`
}

// Column is the per-layer labels of one graph node.
type Column[H merkle.HasherDomain] struct {
	Index uint32 `json:"index"`
	Rows  []H    `json:"rows"`
}

// LabelingProof shows that a node's label in one layer was derived from its
// parents' labels.
type LabelingProof[H merkle.HasherDomain] struct {
	Parents    []H    `json:"parents"`
	LayerIndex uint32 `json:"layer_index"`
	Node       uint64 `json:"node"`
}

// EncodingProof shows that the replica node encodes the data node under the
// final layer's key.
type EncodingProof[H merkle.HasherDomain] struct {
	Parents    []H    `json:"parents"`
	LayerIndex uint32 `json:"layer_index"`
	Node       uint64 `json:"node"`
}
