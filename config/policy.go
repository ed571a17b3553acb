package config

import (
	"github.com/filecoin-project/go-proofs/shared"
	"sort"
)

// Supported sector sizes.
const (
	SectorSize2KiB   shared.SectorSize = 1 << 11
	SectorSize4KiB   shared.SectorSize = 1 << 12
	SectorSize16KiB  shared.SectorSize = 1 << 14
	SectorSize32KiB  shared.SectorSize = 1 << 15
	SectorSize8MiB   shared.SectorSize = 1 << 23
	SectorSize16MiB  shared.SectorSize = 1 << 24
	SectorSize512MiB shared.SectorSize = 1 << 29
	SectorSize1GiB   shared.SectorSize = 1 << 30
	SectorSize32GiB  shared.SectorSize = 1 << 35
	SectorSize64GiB  shared.SectorSize = 1 << 36
)

const (
	// WinningPoStChallengeCount is the total challenge count of one winning
	// proof-of-spacetime session.
	WinningPoStChallengeCount = 66

	// WinningPoStSectorCount is the number of sectors a winning session
	// challenges.
	WinningPoStSectorCount = 1

	// WindowPoStChallengeCount is the per-sector challenge count of one
	// window proof-of-spacetime session.
	WindowPoStChallengeCount = 10
)

// PoRepPolicyEntry is the replication policy of a single sector size.
type PoRepPolicyEntry struct {
	// MinChallenges is the minimum total challenge count a replication
	// proof must answer across all of its partitions.
	MinChallenges uint64

	// Layers is the number of replication layers.
	Layers uint
}

// PoRepPolicy maps each supported sector size to its replication policy.
// Policies are immutable once built; the zero value supports no sizes.
type PoRepPolicy struct {
	entries map[shared.SectorSize]PoRepPolicyEntry
}

// NewPoRepPolicy returns a policy over a private copy of entries. Later
// changes to the argument do not affect the policy.
func NewPoRepPolicy(entries map[shared.SectorSize]PoRepPolicyEntry) PoRepPolicy {
	copied := make(map[shared.SectorSize]PoRepPolicyEntry, len(entries))
	for size, entry := range entries {
		copied[size] = entry
	}
	return PoRepPolicy{entries: copied}
}

// Lookup returns the policy entry of the given sector size.
func (p PoRepPolicy) Lookup(size shared.SectorSize) (PoRepPolicyEntry, bool) {
	entry, ok := p.entries[size]
	return entry, ok
}

// SectorSizes returns the supported sector sizes in increasing order.
func (p PoRepPolicy) SectorSizes() []shared.SectorSize {
	sizes := make([]shared.SectorSize, 0, len(p.entries))
	for size := range p.entries {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}

// DefaultPoRepPolicy returns the mainnet replication policy. Production
// sector sizes answer at least 176 challenges over 11 layers; the small
// sizes exist for tests and are kept cheap.
func DefaultPoRepPolicy() PoRepPolicy {
	return NewPoRepPolicy(map[shared.SectorSize]PoRepPolicyEntry{
		SectorSize2KiB:   {MinChallenges: 2, Layers: 2},
		SectorSize8MiB:   {MinChallenges: 2, Layers: 2},
		SectorSize512MiB: {MinChallenges: 2, Layers: 2},
		SectorSize32GiB:  {MinChallenges: 176, Layers: 11},
		SectorSize64GiB:  {MinChallenges: 176, Layers: 11},
	})
}

// Window proofs challenge a fixed number of sectors per partition, sized so
// one partition's circuit fits a single proving run.
var windowPoStSectorCount = map[shared.SectorSize]uint64{
	SectorSize2KiB:   2,
	SectorSize4KiB:   2,
	SectorSize16KiB:  2,
	SectorSize32KiB:  2,
	SectorSize8MiB:   2,
	SectorSize16MiB:  2,
	SectorSize512MiB: 2,
	SectorSize1GiB:   2,
	SectorSize32GiB:  2349,
	SectorSize64GiB:  2300,
}

// WindowPoStSectorCount returns how many sectors one window partition
// challenges for the given sector size.
func WindowPoStSectorCount(size shared.SectorSize) (uint64, bool) {
	count, ok := windowPoStSectorCount[size]
	return count, ok
}

// DefaultWinningPoStConfig returns the winning-variant configuration of the
// given sector size.
func DefaultWinningPoStConfig(sectorSize shared.SectorSize) PoStConfig {
	return PoStConfig{
		Type:           PoStTypeWinning,
		SectorSize:     sectorSize,
		ChallengeCount: WinningPoStChallengeCount,
		SectorCount:    WinningPoStSectorCount,
	}
}

// DefaultWindowPoStConfig returns the window-variant configuration of the
// given sector size.
func DefaultWindowPoStConfig(sectorSize shared.SectorSize) (PoStConfig, error) {
	sectorCount, ok := WindowPoStSectorCount(sectorSize)
	if !ok {
		return PoStConfig{}, shared.UnknownSectorSizeError{SectorSize: sectorSize}
	}

	return PoStConfig{
		Type:           PoStTypeWindow,
		SectorSize:     sectorSize,
		ChallengeCount: WindowPoStChallengeCount,
		SectorCount:    sectorCount,
	}, nil
}
