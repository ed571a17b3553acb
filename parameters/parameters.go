// Package parameters turns caller-facing proving configuration into the
// public parameters the schemes run under. Every derivation here is
// deterministic: the same configuration, protocol identifier and policy
// always produce the same parameters, across processes and architectures.
package parameters

import (
	"fmt"
	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/porep"
	"github.com/filecoin-project/go-proofs/shared"
	"github.com/spacemeshos/sha256-simd"
)

type (
	PoRepConfig = config.PoRepConfig
	PoStConfig  = config.PoStConfig
	PoRepPolicy = config.PoRepPolicy
	Logger      = shared.Logger
)

// drgNonce perturbs the protocol identifier before it keys base-graph
// parent sampling. Index 29 carries 30 rather than 29; the sequence is
// consensus-critical and cannot change while replicas derived from it
// exist.
var drgNonce = [32]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 30, 30, 31,
}

// DRGSeedFromPoRepID derives the base-graph sampling seed of one protocol
// version: the leading 28 bytes of sha256(porepID || nonce).
func DRGSeedFromPoRepID(porepID shared.PoRepID) porep.DRGSeed {
	h := sha256.New()
	h.Write(porepID[:])
	h.Write(drgNonce[:])

	var seed porep.DRGSeed
	copy(seed[:], h.Sum(nil)[:porep.DRGSeedLen])
	return seed
}

// SelectChallenges returns the smallest per-partition challenge count whose
// total across partitions meets the minimum, as a challenge plan over the
// given number of layers. partitions must be at least 1.
func SelectChallenges(partitions uint, minimumTotalChallenges uint64, layers uint) porep.LayerChallenges {
	count := uint64(1)
	for uint64(partitions)*count < minimumTotalChallenges {
		count++
	}
	return porep.NewLayerChallenges(layers, count)
}

// SetupParams builds the replication setup parameters of a sector size
// under a protocol identifier. The sector size must be registered in the
// replication policy and split into whole 32-byte nodes.
func SetupParams(sectorBytes shared.PaddedBytesAmount, partitions uint, porepID shared.PoRepID, options ...OptionFunc) (porep.SetupParams, error) {
	opts := applyOpts(options...)

	if partitions < 1 {
		return porep.SetupParams{}, fmt.Errorf("invalid `partitions`; expected: >= 1, given: %d", partitions)
	}

	sectorSize := shared.SectorSize(sectorBytes)
	if sectorBytes == 0 || uint64(sectorBytes)%merkle.NodeSize != 0 {
		return porep.SetupParams{}, shared.InvalidSectorSizeError{SectorSize: sectorSize}
	}
	nodes := uint64(sectorBytes) / merkle.NodeSize

	entry, ok := opts.policy.Lookup(sectorSize)
	if !ok {
		return porep.SetupParams{}, shared.UnknownSectorSizeError{SectorSize: sectorSize}
	}

	layerChallenges := SelectChallenges(partitions, entry.MinChallenges, entry.Layers)

	opts.logger.Debug("replication setup: sector size: %v, nodes: %d, layers: %d, challenges per partition: %d",
		sectorSize, nodes, layerChallenges.Layers(), layerChallenges.ChallengesCountAll())

	return porep.SetupParams{
		Nodes:           nodes,
		Degree:          porep.BaseDegree,
		ExpansionDegree: porep.ExpansionDegree,
		Seed:            DRGSeedFromPoRepID(porepID),
		LayerChallenges: layerChallenges,
	}, nil
}

// PublicParams derives the replication public parameters of a sector size
// under a protocol identifier, over the given tree shape.
func PublicParams(tree merkle.Tree, sectorBytes shared.PaddedBytesAmount, partitions uint, porepID shared.PoRepID, options ...OptionFunc) (porep.PublicParams, error) {
	sp, err := SetupParams(sectorBytes, partitions, porepID, options...)
	if err != nil {
		return porep.PublicParams{}, err
	}

	return porep.NewStackedDrg(tree).Setup(sp)
}

// PoRepPublicParams derives the replication public parameters of a full
// caller configuration, validating the configuration first.
func PoRepPublicParams(tree merkle.Tree, cfg PoRepConfig, options ...OptionFunc) (porep.PublicParams, error) {
	if err := cfg.Validate(); err != nil {
		return porep.PublicParams{}, err
	}

	return PublicParams(tree, cfg.PaddedBytesAmount(), uint(cfg.Partitions), cfg.PoRepID, options...)
}
