package post

import (
	"github.com/filecoin-project/go-proofs/merkle"
)

// FallbackPoStSectorProof is the uncompressed evidence for one sector:
// which sector was challenged, its replica commitment, and the vanilla
// proof answering the challenges against it.
type FallbackPoStSectorProof[H merkle.HasherDomain] struct {
	SectorID     SectorID        `json:"sector_id"`
	CommR        H               `json:"comm_r"`
	VanillaProof VanillaProof[H] `json:"vanilla_proof"`
}

// VanillaProof is one partition's worth of uncompressed evidence, one
// sector proof per challenged sector.
type VanillaProof[H merkle.HasherDomain] struct {
	Sectors []SectorProof[H] `json:"sectors"`
}

// SectorProof answers every challenge against a single sector: an inclusion
// proof per challenge, plus the column and replica commitments binding them
// to the sector's CommR.
type SectorProof[H merkle.HasherDomain] struct {
	InclusionProofs []merkle.MerkleProof[H] `json:"inclusion_proofs"`

	CommC     H `json:"comm_c"`
	CommRLast H `json:"comm_r_last"`
}

// PublicReplicaInfo is the verifier's view of one challenged sector.
type PublicReplicaInfo[H merkle.HasherDomain] struct {
	CommR H `json:"comm_r"`
}
