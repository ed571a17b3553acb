// Package porep implements the parameter layer of the stacked
// depth-robust-graph proof of replication: the replication graph
// description, the per-layer challenge plan, and the deterministic setup
// that turns caller-facing setup parameters into the public parameters a
// prover and verifier must agree on. Replication and proving themselves sit
// above this package.
package porep

import "encoding/hex"

const (
	// BaseDegree is the number of depth-robust parents of every graph node.
	BaseDegree = 6

	// ExpansionDegree is the number of expander parents of every graph node.
	ExpansionDegree = 8

	// DRGSeedLen is the number of seed bytes keying base-graph parent
	// sampling.
	DRGSeedLen = 28
)

// DRGSeed keys the sampling of base-graph parents. It is derived from the
// protocol identifier, never chosen directly.
type DRGSeed [DRGSeedLen]byte

func (s DRGSeed) String() string {
	return hex.EncodeToString(s[:])
}
