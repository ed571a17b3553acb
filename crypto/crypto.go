// Package crypto holds the seed-derivation primitives shared by the proving
// protocols. Every seed is derived by hashing a domain separation tag ahead
// of the protocol identifier, so seeds for unrelated uses can never collide
// even when derived from the same identifier.
package crypto

import (
	"github.com/spacemeshos/sha256-simd"
)

// DomainSeparationTag scopes a derived seed to a single consumer. Tags are
// protocol constants; changing one changes every seed derived under it.
type DomainSeparationTag string

const (
	// DRSampleTag scopes seeds used to sample base-graph parents.
	DRSampleTag DomainSeparationTag = "Filecoin_DRSample"

	// FeistelTag scopes seeds used to key the Feistel permutation behind
	// expander-graph parents.
	FeistelTag DomainSeparationTag = "Filecoin_Feistel"
)

// DerivePoRepDomainSeed derives the 32-byte seed for one consumer of a PoRep
// protocol identifier. The derivation is a single SHA-256 over the tag
// followed by the identifier.
func DerivePoRepDomainSeed(tag DomainSeparationTag, porepID [32]byte) [32]byte {
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write(porepID[:])

	var seed [32]byte
	h.Sum(seed[:0])
	return seed
}
