package merkle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerkleProofVariantEncoding(t *testing.T) {
	r := require.New(t)

	leaf := Sha256Domain{1}
	root := Sha256Domain{2}
	sibling := Sha256Domain{3}

	proof := MerkleProof[Sha256Domain]{
		Data: ProofData[Sha256Domain]{
			Single: &SingleProof[Sha256Domain]{
				Root: root,
				Leaf: leaf,
				Path: InclusionPath[Sha256Domain]{
					Path: []PathElement[Sha256Domain]{
						{Hashes: []Sha256Domain{sibling}, Index: 1},
					},
				},
			},
		},
	}

	data, err := json.Marshal(proof)
	r.NoError(err)

	// Exactly one variant is encoded, tagged by name.
	r.Contains(string(data), `"Single"`)
	r.NotContains(string(data), `"Sub"`)
	r.NotContains(string(data), `"Top"`)

	var decoded MerkleProof[Sha256Domain]
	r.NoError(json.Unmarshal(data, &decoded))
	r.Equal(proof, decoded)
}
