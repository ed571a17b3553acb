package shared

import (
	"github.com/ricochet2200/go-disk-usage/du"
	"math"
)

// AvailableSpace returns the number of bytes available to new data under
// the given path.
func AvailableSpace(path string) uint64 {
	usage := du.NewDiskUsage(path)
	return usage.Available()
}

// CanFitSectors reports whether count sectors of the given padded size fit
// in the space available under path.
func CanFitSectors(path string, size SectorSize, count uint64) bool {
	if Uint64MulOverflow(uint64(size), count) {
		return false
	}
	return AvailableSpace(path) >= uint64(size)*count
}

// Uint64MulOverflow reports whether a*b overflows uint64.
func Uint64MulOverflow(a, b uint64) bool {
	return a != 0 && b > math.MaxUint64/a
}
