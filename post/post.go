// Package post implements the parameter layer of the fallback proof of
// spacetime, the scheme behind both the winning and the window variant. The
// two variants differ only in how their setup parameters are derived; once
// derived, this package treats them identically.
package post

import (
	"fmt"
	"github.com/filecoin-project/go-proofs/merkle"
)

// SectorID identifies one sector within a prover's collection.
type SectorID uint64

// SetupParams is everything FallbackPoSt.Setup needs to assemble public
// parameters. Callers normally obtain one from the parameters package
// rather than populating it by hand.
type SetupParams struct {
	// SectorSize is the padded byte size of each challenged sector.
	SectorSize uint64 `json:"sector_size"`

	// ChallengeCount is the number of challenges per challenged sector.
	ChallengeCount uint64 `json:"challenge_count"`

	// SectorCount is the number of sectors challenged by one partition
	// proof.
	SectorCount uint64 `json:"sector_count"`
}

// PublicParams is the assembled parameter set of one proof-of-spacetime
// configuration. Prover and verifier derive it independently and must agree
// on its Identifier.
type PublicParams struct {
	SectorSize     uint64 `json:"sector_size"`
	ChallengeCount uint64 `json:"challenge_count"`
	SectorCount    uint64 `json:"sector_count"`
}

// Identifier returns the canonical name of this parameter set, the key
// under which proving artifacts for it are cached.
func (p PublicParams) Identifier() string {
	return fmt.Sprintf("post.PublicParams{sector_size: %d, challenge_count: %d, sector_count: %d}",
		p.SectorSize, p.ChallengeCount, p.SectorCount)
}

// FallbackPoSt is the proof-of-spacetime scheme over one commitment-tree
// shape. The zero value is not usable; construct with NewFallbackPoSt.
type FallbackPoSt struct {
	tree merkle.Tree
}

// NewFallbackPoSt returns the proof-of-spacetime scheme whose replica
// commitments are built over the given tree shape.
func NewFallbackPoSt(tree merkle.Tree) FallbackPoSt {
	return FallbackPoSt{tree: tree}
}

// Setup assembles public parameters from setup parameters. The parameters
// carry over field for field; Setup never fails and is trivially
// deterministic.
func (p FallbackPoSt) Setup(sp SetupParams) (PublicParams, error) {
	return PublicParams{
		SectorSize:     sp.SectorSize,
		ChallengeCount: sp.ChallengeCount,
		SectorCount:    sp.SectorCount,
	}, nil
}
