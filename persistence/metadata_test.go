package persistence

import (
	"testing"

	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/shared"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	_, err := LoadMetadata(datadir, testProverID, testSectorID)
	req.Equal(ErrMetadataNotExist, err)

	cfg := &config.PoRepConfig{
		SectorSize: shared.SectorSize(2048),
		Partitions: config.PoRepProofPartitions(1),
		PoRepID:    shared.PoRepID{1, 2, 3},
	}
	req.NoError(SaveMetadata(datadir, testProverID, testSectorID, cfg, MetadataSealStateStarted))

	m, err := LoadMetadata(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(uint64(2048), m.SectorSize)
	req.Equal(uint8(1), m.Partitions)
	req.Equal(cfg.PoRepID, m.PoRepID)
	req.Equal(MetadataSealStateStarted, m.State)

	// Saving again advances the recorded state.
	req.NoError(SaveMetadata(datadir, testProverID, testSectorID, cfg, MetadataSealStatePreCommitted))
	m, err = LoadMetadata(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(MetadataSealStatePreCommitted, m.State)
}

func TestVerifyMetadata(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	cfg := &config.PoRepConfig{
		SectorSize: shared.SectorSize(2048),
		Partitions: config.PoRepProofPartitions(1),
		PoRepID:    shared.PoRepID{1, 2, 3},
	}
	req.NoError(SaveMetadata(datadir, testProverID, testSectorID, cfg, MetadataSealStateStarted))

	m, err := LoadMetadata(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.NoError(VerifyMetadata(m, cfg, datadir))

	newCfg := *cfg
	newCfg.SectorSize = shared.SectorSize(4096)
	err = VerifyMetadata(m, &newCfg, datadir)
	mismatch, ok := err.(ConfigMismatchError)
	req.True(ok)
	req.Equal("SectorSize", mismatch.Param)
	req.Equal(datadir, mismatch.DataDir)

	newCfg = *cfg
	newCfg.Partitions = config.PoRepProofPartitions(2)
	err = VerifyMetadata(m, &newCfg, datadir)
	mismatch, ok = err.(ConfigMismatchError)
	req.True(ok)
	req.Equal("Partitions", mismatch.Param)

	newCfg = *cfg
	newCfg.PoRepID = shared.PoRepID{9}
	err = VerifyMetadata(m, &newCfg, datadir)
	mismatch, ok = err.(ConfigMismatchError)
	req.True(ok)
	req.Equal("PoRepID", mismatch.Param)
}
