// Package persistence saves the intermediate outputs of the sealing flow to
// disk, one directory per prover with one subdirectory per sector, so that
// each phase can run in a separate process.
//
// Outputs are XDR-encoded and written with a BLAKE2b checksum in a sidecar
// file; fetching verifies the checksum before decoding. The commit phase 1
// output holds sparse tree-proof variants and is stored as JSON instead.
package persistence

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/filecoin-project/go-proofs/shared"
	"github.com/minio/blake2b-simd"
	"github.com/nullstyle/go-xdr/xdr3"
	"github.com/spacemeshos/smutil"
	"os"
	"path/filepath"
	"strconv"
)

type (
	ProverID = shared.ProverID
	SectorID = shared.SectorID
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0700

// OwnerReadWrite is a standard owner read / write file permission.
const OwnerReadWrite = 0600

const (
	DefaultDataDirName = "data"

	checksumExt = ".blake2b"

	preCommitPhase1Filename = "pre-commit-1"
	preCommitFilename       = "pre-commit"
	commitPhase1Filename    = "commit-1"
	commitFilename          = "commit"
)

var (
	DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "proofs", DefaultDataDirName)

	// ErrOutputNotExist is returned when fetching an output that was never persisted.
	ErrOutputNotExist = errors.New("output doesn't exist")

	// ErrMetadataNotExist is returned when a sector directory has no seal metadata.
	ErrMetadataNotExist = errors.New("seal metadata doesn't exist")

	// ErrChecksumMismatch is returned when a persisted output fails its integrity check.
	ErrChecksumMismatch = errors.New("output checksum mismatch")
)

// GetProverDir returns the directory holding all of a prover's sector state.
func GetProverDir(datadir string, id ProverID) string {
	return filepath.Join(datadir, hex.EncodeToString(id[:]))
}

// GetSectorDir returns the directory holding one sector's sealed state.
func GetSectorDir(datadir string, id ProverID, sector SectorID) string {
	return filepath.Join(GetProverDir(datadir, id), strconv.FormatUint(uint64(sector), 10))
}

func persist(datadir string, id ProverID, sector SectorID, name string, v interface{}) error {
	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, v); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}

	return writeChecked(GetSectorDir(datadir, id, sector), name, w.Bytes())
}

func fetch(datadir string, id ProverID, sector SectorID, name string, v interface{}) error {
	data, err := readChecked(GetSectorDir(datadir, id, sector), name)
	if err != nil {
		return err
	}

	if _, err := xdr.Unmarshal(bytes.NewReader(data), v); err != nil {
		return fmt.Errorf("deserialization failure: %v", err)
	}

	return nil
}

func writeChecked(dir string, name string, data []byte) error {
	if err := os.MkdirAll(dir, OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %v", err)
	}

	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	sum := blake2b.Sum256(data)
	if err := os.WriteFile(filename+checksumExt, []byte(hex.EncodeToString(sum[:])), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	return nil
}

func readChecked(dir string, name string) ([]byte, error) {
	filename := filepath.Join(dir, name)
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrOutputNotExist
		}

		return nil, fmt.Errorf("read file failure: %v", err)
	}

	// Outputs imported without a sidecar checksum are accepted unverified.
	want, err := os.ReadFile(filename + checksumExt)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}

		return nil, fmt.Errorf("read file failure: %v", err)
	}

	sum := blake2b.Sum256(data)
	if hex.EncodeToString(sum[:]) != string(want) {
		return nil, ErrChecksumMismatch
	}

	return data, nil
}
