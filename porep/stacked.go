package porep

import (
	"fmt"
	"github.com/filecoin-project/go-proofs/merkle"
)

// SetupParams is everything StackedDrg.Setup needs to assemble public
// parameters. Callers normally obtain one from the parameters package
// rather than populating it by hand.
type SetupParams struct {
	// Nodes is the number of 32-byte nodes in one graph layer.
	Nodes uint64

	// Degree is the base-graph parent count, BaseDegree for every
	// supported configuration.
	Degree uint

	// ExpansionDegree is the expander parent count, ExpansionDegree for
	// every supported configuration.
	ExpansionDegree uint

	// Seed keys base-graph parent sampling.
	Seed DRGSeed

	// LayerChallenges is the challenge plan the proof must answer.
	LayerChallenges LayerChallenges
}

// Graph describes the replication graph of one layer: a depth-robust base
// graph with an expander stacked over it. The description is enough to
// regenerate the graph; the edges themselves are sampled on demand by the
// prover.
type Graph struct {
	Nodes           uint64
	BaseDegree      uint
	ExpansionDegree uint
	Seed            DRGSeed
}

// Degree returns the total parent count of a node.
func (g Graph) Degree() uint {
	return g.BaseDegree + g.ExpansionDegree
}

// Size returns the byte size of one layer, Nodes 32-byte nodes.
func (g Graph) Size() uint64 {
	return g.Nodes * merkle.NodeSize
}

// String names the graph shape. The sampling seed is not part of the name;
// parameter identifiers cover shape only.
func (g Graph) String() string {
	return fmt.Sprintf("Graph{nodes: %d, base_degree: %d, expansion_degree: %d}",
		g.Nodes, g.BaseDegree, g.ExpansionDegree)
}

// PublicParams is the assembled parameter set of one replication
// configuration. Prover and verifier derive it independently and must agree
// on its Identifier.
type PublicParams struct {
	Graph           Graph
	LayerChallenges LayerChallenges
	Tree            merkle.Tree
}

// Identifier returns the canonical name of this parameter set, the key
// under which proving artifacts for it are cached.
func (p PublicParams) Identifier() string {
	return fmt.Sprintf("porep.PublicParams{graph: %v, challenges: %v, tree: %v}",
		p.Graph, p.LayerChallenges, p.Tree.Name())
}

// StackedDrg is the layered replication scheme over one commitment-tree
// shape. The zero value is not usable; construct with NewStackedDrg.
type StackedDrg struct {
	tree merkle.Tree
}

// NewStackedDrg returns the replication scheme whose replica commitments
// are built over the given tree shape.
func NewStackedDrg(tree merkle.Tree) StackedDrg {
	return StackedDrg{tree: tree}
}

// Setup deterministically assembles public parameters from setup
// parameters. Equal inputs yield equal outputs; there is no hidden state
// and no randomness.
func (d StackedDrg) Setup(sp SetupParams) (PublicParams, error) {
	if sp.Nodes == 0 {
		return PublicParams{}, fmt.Errorf("invalid `nodes`; expected: positive number, given: %d", sp.Nodes)
	}
	if sp.Degree == 0 {
		return PublicParams{}, fmt.Errorf("invalid `degree`; expected: positive number, given: %d", sp.Degree)
	}
	if sp.LayerChallenges.Layers() == 0 {
		return PublicParams{}, fmt.Errorf("invalid `layers`; expected: positive number, given: %d", sp.LayerChallenges.Layers())
	}

	return PublicParams{
		Graph: Graph{
			Nodes:           sp.Nodes,
			BaseDegree:      sp.Degree,
			ExpansionDegree: sp.ExpansionDegree,
			Seed:            sp.Seed,
		},
		LayerChallenges: sp.LayerChallenges,
		Tree:            d.tree,
	}, nil
}
