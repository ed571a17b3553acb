package shared

import (
	"fmt"
)

// InvalidSectorSizeError reports a sector size that cannot be split into
// whole 32-byte nodes.
type InvalidSectorSizeError struct {
	SectorSize SectorSize
}

func (err InvalidSectorSizeError) Error() string {
	return fmt.Sprintf("invalid `SectorSize`; expected: a multiple of 32, given: %d", uint64(err.SectorSize))
}

// UnknownSectorSizeError reports a sector size no policy is registered for.
type UnknownSectorSizeError struct {
	SectorSize SectorSize
}

func (err UnknownSectorSizeError) Error() string {
	return fmt.Sprintf("unknown `SectorSize`; no policy registered for %d bytes", uint64(err.SectorSize))
}

// IndivisibleChallengeCountError reports a proof-of-spacetime configuration
// whose challenge count cannot be split evenly across its sector count.
type IndivisibleChallengeCountError struct {
	ChallengeCount uint64
	SectorCount    uint64
}

func (err IndivisibleChallengeCountError) Error() string {
	return fmt.Sprintf("invalid `ChallengeCount`; expected: evenly divisible by `SectorCount` (%d), given: %d",
		err.SectorCount, err.ChallengeCount)
}

// InternalInconsistencyError reports a derived parameter set that failed its
// own consistency check: the factored counts no longer multiply back to the
// configured challenge count. It signals a bug in the derivation rather than
// bad input.
type InternalInconsistencyError struct {
	SectorCount    uint64
	ChallengeCount uint64
	Expected       uint64
}

func (err InternalInconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent parameters; derived: %d * %d, expected: %d",
		err.SectorCount, err.ChallengeCount, err.Expected)
}

// ConfigMismatchError reports persisted state written under a different
// configuration than the one now in use.
type ConfigMismatchError struct {
	Param    string
	Expected string
	Found    string
	DataDir  string
}

func (err ConfigMismatchError) Error() string {
	return fmt.Sprintf("`%v` config mismatch; expected: %v, found: %v, datadir: %v",
		err.Param, err.Expected, err.Found, err.DataDir)
}
