package shared

import (
	"math"
	"testing"

	"github.com/spacemeshos/smutil"
	"github.com/stretchr/testify/require"
)

func TestAvailableSpace(t *testing.T) {
	r := require.New(t)

	// Sanity test.
	space := AvailableSpace(smutil.GetUserHomeDirectory())
	r.True(space > 0)
}

func TestCanFitSectors(t *testing.T) {
	r := require.New(t)

	home := smutil.GetUserHomeDirectory()
	r.True(CanFitSectors(home, SectorSize(2048), 0))
	r.False(CanFitSectors(home, SectorSize(math.MaxUint64/2), 1))

	// Overflowing byte counts never fit.
	r.False(CanFitSectors(home, SectorSize(math.MaxUint64), 2))
}
