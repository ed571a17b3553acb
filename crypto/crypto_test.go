package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivePoRepDomainSeed(t *testing.T) {
	r := require.New(t)

	var idA, idB [32]byte
	idB[0] = 1

	drSample := DerivePoRepDomainSeed(DRSampleTag, idA)
	feistel := DerivePoRepDomainSeed(FeistelTag, idA)

	// Deterministic per (tag, identifier) pair.
	r.Equal(drSample, DerivePoRepDomainSeed(DRSampleTag, idA))
	r.Equal(feistel, DerivePoRepDomainSeed(FeistelTag, idA))

	// Seeds are separated both by tag and by identifier.
	r.NotEqual(drSample, feistel)
	r.NotEqual(drSample, DerivePoRepDomainSeed(DRSampleTag, idB))
	r.NotEqual(feistel, DerivePoRepDomainSeed(FeistelTag, idB))
}
