package config

import (
	"fmt"
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/shared"
)

// PoRepProofPartitions is the number of partitions a compressed replication
// proof is split into. More partitions mean smaller circuits and fewer
// challenges per partition.
type PoRepProofPartitions uint8

const (
	// PoRepPartitions2 is the partition count of the small test sector
	// sizes.
	PoRepPartitions2 PoRepProofPartitions = 2

	// PoRepPartitions10 is the partition count of the production sector
	// sizes.
	PoRepPartitions10 PoRepProofPartitions = 10
)

// PoStProofPartitions is the number of partitions a compressed
// proof-of-spacetime is split into.
type PoStProofPartitions uint8

// PoStPartitions1 is the single partition every supported
// proof-of-spacetime configuration runs with.
const PoStPartitions1 PoStProofPartitions = 1

var poStTypes = []string{
	"winning",
	"window",
}

// PoStType selects between the two proof-of-spacetime flavors: the winning
// variant run by a newly elected block producer, and the window variant run
// continuously over the whole sector collection.
type PoStType uint

const (
	PoStTypeWinning PoStType = 1 + iota
	PoStTypeWindow
)

func (t PoStType) String() string {
	return poStTypes[t-1]
}

// PoRepConfig is the caller-facing configuration of one replication setup.
type PoRepConfig struct {
	SectorSize shared.SectorSize    `mapstructure:"sector-size"`
	Partitions PoRepProofPartitions `mapstructure:"partitions"`

	// PoRepID pins the protocol version every derived seed depends on.
	PoRepID shared.PoRepID `mapstructure:"-"`
}

func (cfg PoRepConfig) Validate() error {
	if cfg.SectorSize == 0 || uint64(cfg.SectorSize)%merkle.NodeSize != 0 {
		return fmt.Errorf("invalid `SectorSize`; expected: a positive multiple of %d, given: %d", merkle.NodeSize, cfg.SectorSize)
	}

	if cfg.Partitions < 1 {
		return fmt.Errorf("invalid `Partitions`; expected: >= 1, given: %d", cfg.Partitions)
	}

	return nil
}

// PaddedBytesAmount returns the sector size as a padded byte amount.
func (cfg PoRepConfig) PaddedBytesAmount() shared.PaddedBytesAmount {
	return shared.PaddedBytesAmount(cfg.SectorSize)
}

// UnpaddedBytesAmount returns the raw bytes the sector can hold.
func (cfg PoRepConfig) UnpaddedBytesAmount() shared.UnpaddedBytesAmount {
	return cfg.PaddedBytesAmount().Unpadded()
}

// PoStConfig is the caller-facing configuration of one proof-of-spacetime
// setup. ChallengeCount and SectorCount describe the whole proving session;
// how they split across partition proofs is derived, not configured.
type PoStConfig struct {
	Type           PoStType          `mapstructure:"type"`
	SectorSize     shared.SectorSize `mapstructure:"sector-size"`
	ChallengeCount uint64            `mapstructure:"challenge-count"`
	SectorCount    uint64            `mapstructure:"sector-count"`

	// Priority requests precedence over other proving work when sessions
	// compete for the same hardware.
	Priority bool `mapstructure:"priority"`
}

func (cfg PoStConfig) Validate() error {
	if cfg.Type != PoStTypeWinning && cfg.Type != PoStTypeWindow {
		return fmt.Errorf("invalid `Type`; expected: winning or window, given: %d", cfg.Type)
	}

	if cfg.SectorSize == 0 || uint64(cfg.SectorSize)%merkle.NodeSize != 0 {
		return fmt.Errorf("invalid `SectorSize`; expected: a positive multiple of %d, given: %d", merkle.NodeSize, cfg.SectorSize)
	}

	if cfg.ChallengeCount < 1 {
		return fmt.Errorf("invalid `ChallengeCount`; expected: >= 1, given: %d", cfg.ChallengeCount)
	}

	if cfg.SectorCount < 1 {
		return fmt.Errorf("invalid `SectorCount`; expected: >= 1, given: %d", cfg.SectorCount)
	}

	return nil
}

// PaddedSectorSize returns the sector size as a padded byte amount.
func (cfg PoStConfig) PaddedSectorSize() shared.PaddedBytesAmount {
	return shared.PaddedBytesAmount(cfg.SectorSize)
}

// UnpaddedSectorSize returns the raw bytes the sector can hold.
func (cfg PoStConfig) UnpaddedSectorSize() shared.UnpaddedBytesAmount {
	return cfg.PaddedSectorSize().Unpadded()
}

// SectorClass groups the knobs that distinguish one sector flavor from
// another.
type SectorClass struct {
	SectorSize shared.SectorSize
	Partitions PoRepProofPartitions
	PoRepID    shared.PoRepID
}

// PoRepConfig returns the replication configuration of this class.
func (c SectorClass) PoRepConfig() PoRepConfig {
	return PoRepConfig{
		SectorSize: c.SectorSize,
		Partitions: c.Partitions,
		PoRepID:    c.PoRepID,
	}
}
