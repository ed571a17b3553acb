package shared

import (
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/porep"
	"github.com/filecoin-project/go-proofs/post"
)

type (
	SectorID = post.SectorID
)

// SealPreCommitPhase1Output carries the first precommit phase's results into
// the second: the per-layer label stores, the data-tree store, and the data
// commitment.
type SealPreCommitPhase1Output struct {
	Labels merkle.Labels      `json:"labels"`
	Config merkle.StoreConfig `json:"config"`
	CommD  Commitment         `json:"comm_d"`
}

// SealPreCommitOutput is the result of the precommit flow: the replica and
// data commitments, the two values a sector is registered under.
type SealPreCommitOutput struct {
	CommR Commitment `json:"comm_r"`
	CommD Commitment `json:"comm_d"`
}

// SealCommitPhase1Output carries the uncompressed commit evidence between
// the two commit phases: vanilla proofs grouped by partition, the
// commitments they bind, the replica's identity and the randomness the
// session was run under.
type SealCommitPhase1Output[H merkle.HasherDomain] struct {
	VanillaProofs [][]porep.VanillaSealProof[H] `json:"vanilla_proofs"`

	CommR     Commitment `json:"comm_r"`
	CommD     Commitment `json:"comm_d"`
	ReplicaID H          `json:"replica_id"`
	Seed      Ticket     `json:"seed"`
	Ticket    Ticket     `json:"ticket"`
}

// SealCommitOutput is the final compressed replication proof.
type SealCommitOutput struct {
	Proof []byte `json:"proof"`
}
