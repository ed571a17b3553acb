package persistence

import (
	"encoding/json"
	"fmt"
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/shared"
)

// SavePreCommitPhase1Output persists the first precommit phase's output for
// the given sector.
func SavePreCommitPhase1Output(datadir string, id ProverID, sector SectorID, out *shared.SealPreCommitPhase1Output) error {
	return persist(datadir, id, sector, preCommitPhase1Filename, out)
}

// FetchPreCommitPhase1Output restores the first precommit phase's output for
// the given sector. If the output was never persisted, ErrOutputNotExist is
// returned.
func FetchPreCommitPhase1Output(datadir string, id ProverID, sector SectorID) (*shared.SealPreCommitPhase1Output, error) {
	out := &shared.SealPreCommitPhase1Output{}
	if err := fetch(datadir, id, sector, preCommitPhase1Filename, out); err != nil {
		return nil, err
	}

	return out, nil
}

// SavePreCommitOutput persists the precommit flow's final output for the
// given sector.
func SavePreCommitOutput(datadir string, id ProverID, sector SectorID, out *shared.SealPreCommitOutput) error {
	return persist(datadir, id, sector, preCommitFilename, out)
}

// FetchPreCommitOutput restores the precommit flow's final output for the
// given sector.
func FetchPreCommitOutput(datadir string, id ProverID, sector SectorID) (*shared.SealPreCommitOutput, error) {
	out := &shared.SealPreCommitOutput{}
	if err := fetch(datadir, id, sector, preCommitFilename, out); err != nil {
		return nil, err
	}

	return out, nil
}

// SaveCommitOutput persists the compressed replication proof for the given
// sector.
func SaveCommitOutput(datadir string, id ProverID, sector SectorID, out *shared.SealCommitOutput) error {
	return persist(datadir, id, sector, commitFilename, out)
}

// FetchCommitOutput restores the compressed replication proof for the given
// sector.
func FetchCommitOutput(datadir string, id ProverID, sector SectorID) (*shared.SealCommitOutput, error) {
	out := &shared.SealCommitOutput{}
	if err := fetch(datadir, id, sector, commitFilename, out); err != nil {
		return nil, err
	}

	return out, nil
}

// SaveCommitPhase1Output persists the uncompressed commit evidence for the
// given sector. The tree proofs inside it are sparse variant pointers, which
// XDR cannot express, so this output alone is stored as JSON.
func SaveCommitPhase1Output[H merkle.HasherDomain](datadir string, id ProverID, sector SectorID, out *shared.SealCommitPhase1Output[H]) error {
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}

	return writeChecked(GetSectorDir(datadir, id, sector), commitPhase1Filename, data)
}

// FetchCommitPhase1Output restores the uncompressed commit evidence for the
// given sector.
func FetchCommitPhase1Output[H merkle.HasherDomain](datadir string, id ProverID, sector SectorID) (*shared.SealCommitPhase1Output[H], error) {
	data, err := readChecked(GetSectorDir(datadir, id, sector), commitPhase1Filename)
	if err != nil {
		return nil, err
	}

	out := &shared.SealCommitPhase1Output[H]{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("deserialization failure: %v", err)
	}

	return out, nil
}
