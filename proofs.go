// Package proofs derives the public parameters of the storage-proving
// protocols from caller configuration: replication (PoRep) setup and public
// parameters, and the two proof-of-spacetime flavors, winning and window.
//
// Every derivation is deterministic. The same configuration, protocol
// identifier and policy produce the same parameters on every host, so prover
// and verifier can derive them independently and agree on the result.
package proofs

import (
	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/parameters"
	"github.com/filecoin-project/go-proofs/porep"
	"github.com/filecoin-project/go-proofs/post"
	"github.com/filecoin-project/go-proofs/shared"
)

type (
	PoRepConfig = config.PoRepConfig
	PoStConfig  = config.PoStConfig
	SectorClass = config.SectorClass
	PoRepPolicy = config.PoRepPolicy

	SectorSize = shared.SectorSize
	PoRepID    = shared.PoRepID
	ProverID   = shared.ProverID
	Commitment = shared.Commitment
	Logger     = shared.Logger

	Tree = merkle.Tree
)

var (
	SetupParams       = parameters.SetupParams
	PublicParams      = parameters.PublicParams
	PoRepPublicParams = parameters.PoRepPublicParams

	WinningPoStSetupParams  = parameters.WinningPoStSetupParams
	WinningPoStPublicParams = parameters.WinningPoStPublicParams
	WindowPoStSetupParams   = parameters.WindowPoStSetupParams
	WindowPoStPublicParams  = parameters.WindowPoStPublicParams

	WithPoRepPolicy = parameters.WithPoRepPolicy
	WithLogger      = parameters.WithLogger

	DefaultPoRepPolicy       = config.DefaultPoRepPolicy
	DefaultWinningPoStConfig = config.DefaultWinningPoStConfig
	DefaultWindowPoStConfig  = config.DefaultWindowPoStConfig
)

// SetupScheme is a proving scheme that assembles its public parameters from
// setup parameters.
type SetupScheme[SP any, PP any] interface {
	Setup(sp SP) (PP, error)
}

// ProofScheme is the full contract an external proving scheme satisfies:
// parameter assembly plus proving and verifying under the assembled
// parameters. This module implements Setup only; Prove and Verify are
// supplied by the scheme implementations callers link in.
type ProofScheme[SP any, PP any, PubIn any, PrivIn any, Pf any] interface {
	SetupScheme[SP, PP]

	Prove(pp PP, pub PubIn, priv PrivIn) (Pf, error)
	Verify(pp PP, pub PubIn, proof Pf) (bool, error)
}

var (
	_ SetupScheme[porep.SetupParams, porep.PublicParams] = porep.StackedDrg{}
	_ SetupScheme[post.SetupParams, post.PublicParams]   = post.FallbackPoSt{}
)
