package persistence

import (
	"bytes"
	"fmt"
	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/shared"
	"github.com/nullstyle/go-xdr/xdr3"
	"os"
	"path/filepath"
)

type (
	ConfigMismatchError = shared.ConfigMismatchError
)

// SectorMetadata is the data associated with a sector's sealing run,
// persisted in the sector directory next to the phase outputs. Later phases
// verify it to catch runs resumed under a different replication
// configuration.
type SectorMetadata struct {
	SectorSize uint64
	Partitions uint8
	PoRepID    shared.PoRepID
	State      metadataSealState
}

const metadataFileName = ".seal"

type metadataSealState int

const (
	MetadataSealStateStarted metadataSealState = 1 + iota
	MetadataSealStatePreCommitted
	MetadataSealStateCommitted
)

// SaveMetadata records a sector's sealing configuration and state under
// datadir.
func SaveMetadata(datadir string, id ProverID, sector SectorID, cfg *config.PoRepConfig, state metadataSealState) error {
	dir := GetSectorDir(datadir, id, sector)
	if err := os.MkdirAll(dir, OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %v", err)
	}

	var w bytes.Buffer
	m := SectorMetadata{uint64(cfg.SectorSize), uint8(cfg.Partitions), cfg.PoRepID, state}
	if _, err := xdr.Marshal(&w, m); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, metadataFileName), w.Bytes(), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	return nil
}

// LoadMetadata restores a sector's sealing metadata. If the sector was never
// sealed under datadir, ErrMetadataNotExist is returned.
func LoadMetadata(datadir string, id ProverID, sector SectorID) (*SectorMetadata, error) {
	filename := filepath.Join(GetSectorDir(datadir, id, sector), metadataFileName)
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMetadataNotExist
		}

		return nil, fmt.Errorf("read file failure: %v", err)
	}

	m := &SectorMetadata{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), m); err != nil {
		return nil, err
	}

	return m, nil
}

// VerifyMetadata checks a sector's recorded sealing configuration against
// cfg.
func VerifyMetadata(m *SectorMetadata, cfg *config.PoRepConfig, datadir string) error {
	if uint64(cfg.SectorSize) != m.SectorSize {
		return ConfigMismatchError{
			Param:    "SectorSize",
			Expected: fmt.Sprintf("%d", uint64(cfg.SectorSize)),
			Found:    fmt.Sprintf("%d", m.SectorSize),
			DataDir:  datadir,
		}
	}

	if uint8(cfg.Partitions) != m.Partitions {
		return ConfigMismatchError{
			Param:    "Partitions",
			Expected: fmt.Sprintf("%d", uint8(cfg.Partitions)),
			Found:    fmt.Sprintf("%d", m.Partitions),
			DataDir:  datadir,
		}
	}

	if cfg.PoRepID != m.PoRepID {
		return ConfigMismatchError{
			Param:    "PoRepID",
			Expected: cfg.PoRepID.String(),
			Found:    m.PoRepID.String(),
			DataDir:  datadir,
		}
	}

	return nil
}
