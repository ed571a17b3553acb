package persistence

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/porep"
	"github.com/filecoin-project/go-proofs/shared"
	"github.com/stretchr/testify/require"
)

var (
	testProverID = ProverID{0xde, 0xad, 0xbe, 0xef}
	testSectorID = SectorID(7)
)

func TestGetSectorDir(t *testing.T) {
	req := require.New(t)

	dir := GetSectorDir("/tmp/proofs", testProverID, testSectorID)
	req.Equal(filepath.Join("/tmp/proofs", hex.EncodeToString(testProverID[:]), "7"), dir)
}

func TestPreCommitPhase1OutputRoundTrip(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	_, err := FetchPreCommitPhase1Output(datadir, testProverID, testSectorID)
	req.Equal(ErrOutputNotExist, err)

	saved := &shared.SealPreCommitPhase1Output{
		Labels: merkle.Labels{
			Labels: []merkle.StoreConfig{
				merkle.NewStoreConfig(datadir, "layer-1", 2),
				merkle.NewStoreConfig(datadir, "layer-2", 2),
			},
		},
		Config: merkle.NewStoreConfig(datadir, "tree-d", 0),
		CommD:  shared.Commitment{1, 2, 3},
	}
	req.NoError(SavePreCommitPhase1Output(datadir, testProverID, testSectorID, saved))

	fetched, err := FetchPreCommitPhase1Output(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(saved, fetched)
}

func TestPreCommitOutputRoundTrip(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	_, err := FetchPreCommitOutput(datadir, testProverID, testSectorID)
	req.Equal(ErrOutputNotExist, err)

	saved := &shared.SealPreCommitOutput{
		CommR: shared.Commitment{4, 5, 6},
		CommD: shared.Commitment{7, 8, 9},
	}
	req.NoError(SavePreCommitOutput(datadir, testProverID, testSectorID, saved))

	fetched, err := FetchPreCommitOutput(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(saved, fetched)
}

func TestCommitOutputRoundTrip(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	saved := &shared.SealCommitOutput{Proof: []byte("aggregated snark bytes")}
	req.NoError(SaveCommitOutput(datadir, testProverID, testSectorID, saved))

	fetched, err := FetchCommitOutput(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(saved, fetched)
}

func TestCommitPhase1OutputRoundTrip(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	_, err := FetchCommitPhase1Output[merkle.PoseidonDomain](datadir, testProverID, testSectorID)
	req.Equal(ErrOutputNotExist, err)

	saved := testCommitPhase1Output()
	req.NoError(SaveCommitPhase1Output(datadir, testProverID, testSectorID, saved))

	fetched, err := FetchCommitPhase1Output[merkle.PoseidonDomain](datadir, testProverID, testSectorID)
	req.NoError(err)
	req.Equal(saved, fetched)
}

func TestFetchTamperedOutput(t *testing.T) {
	req := require.New(t)
	datadir := t.TempDir()

	saved := &shared.SealPreCommitOutput{
		CommR: shared.Commitment{4, 5, 6},
		CommD: shared.Commitment{7, 8, 9},
	}
	req.NoError(SavePreCommitOutput(datadir, testProverID, testSectorID, saved))

	filename := filepath.Join(GetSectorDir(datadir, testProverID, testSectorID), preCommitFilename)
	data, err := os.ReadFile(filename)
	req.NoError(err)
	data[0] ^= 0xff
	req.NoError(os.WriteFile(filename, data, OwnerReadWrite))

	_, err = FetchPreCommitOutput(datadir, testProverID, testSectorID)
	req.Equal(ErrChecksumMismatch, err)

	// Without the sidecar the tampered bytes are accepted as-is.
	req.NoError(os.Remove(filename + checksumExt))
	fetched, err := FetchPreCommitOutput(datadir, testProverID, testSectorID)
	req.NoError(err)
	req.NotEqual(saved, fetched)
}

func testCommitPhase1Output() *shared.SealCommitPhase1Output[merkle.PoseidonDomain] {
	treeProof := merkle.MerkleProof[merkle.PoseidonDomain]{
		Data: merkle.ProofData[merkle.PoseidonDomain]{
			Single: &merkle.SingleProof[merkle.PoseidonDomain]{
				Root: merkle.PoseidonDomain{1},
				Leaf: merkle.PoseidonDomain{2},
				Path: merkle.InclusionPath[merkle.PoseidonDomain]{
					Path: []merkle.PathElement[merkle.PoseidonDomain]{
						{Hashes: []merkle.PoseidonDomain{{3}}, Index: 1},
					},
				},
			},
		},
	}
	dataProof := merkle.MerkleProof[merkle.Sha256Domain]{
		Data: merkle.ProofData[merkle.Sha256Domain]{
			Single: &merkle.SingleProof[merkle.Sha256Domain]{
				Root: merkle.Sha256Domain{4},
				Leaf: merkle.Sha256Domain{5},
			},
		},
	}

	proof := porep.VanillaSealProof[merkle.PoseidonDomain]{
		CommDProofs:    dataProof,
		CommRLastProof: treeProof,
		ReplicaColumnProofs: porep.ReplicaColumnProof[merkle.PoseidonDomain]{
			CX: porep.ColumnProof[merkle.PoseidonDomain]{
				Column:         porep.Column[merkle.PoseidonDomain]{Index: 11, Rows: []merkle.PoseidonDomain{{6}, {7}}},
				InclusionProof: treeProof,
			},
		},
		LabelingProofs: []porep.LabelingProof[merkle.PoseidonDomain]{
			{Parents: []merkle.PoseidonDomain{{8}}, LayerIndex: 1, Node: 11},
		},
		EncodingProof: porep.EncodingProof[merkle.PoseidonDomain]{
			Parents:    []merkle.PoseidonDomain{{9}},
			LayerIndex: 2,
			Node:       11,
		},
	}

	return &shared.SealCommitPhase1Output[merkle.PoseidonDomain]{
		VanillaProofs: [][]porep.VanillaSealProof[merkle.PoseidonDomain]{{proof}},
		CommR:         shared.Commitment{10},
		CommD:         shared.Commitment{11},
		ReplicaID:     merkle.PoseidonDomain{12},
		Seed:          shared.Ticket{13},
		Ticket:        shared.Ticket{14},
	}
}
