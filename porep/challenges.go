package porep

import "fmt"

// LayerChallenges is the challenge plan of a layered replication proof: how
// many encoding layers the replica spans and how many challenges a single
// partition answers. Plans are immutable values; build them with
// NewLayerChallenges.
type LayerChallenges struct {
	layers   uint
	maxCount uint64
}

// NewLayerChallenges returns a plan for the given number of layers in which
// every partition answers count challenges.
func NewLayerChallenges(layers uint, count uint64) LayerChallenges {
	return LayerChallenges{layers: layers, maxCount: count}
}

// Layers returns the number of encoding layers.
func (lc LayerChallenges) Layers() uint {
	return lc.layers
}

// ChallengesCountAll returns the number of challenges one partition proof
// answers. Partitions all answer the same count, so a proof of k partitions
// covers k times this many challenges.
func (lc LayerChallenges) ChallengesCountAll() uint64 {
	return lc.maxCount
}

func (lc LayerChallenges) String() string {
	return fmt.Sprintf("LayerChallenges{layers: %d, max_count: %d}", lc.layers, lc.maxCount)
}
