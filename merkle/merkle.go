// Package merkle describes the commitment trees the proving protocols are
// built over: the node domains, the tree shapes and their canonical names,
// and the inclusion-proof records exchanged between proving phases. It
// describes shapes only; building and hashing trees belongs to the provers.
package merkle

const (
	// NodeSize is the number of bytes in a tree node. Both node domains are
	// 32 bytes wide, so sector node counts are always sectorBytes/NodeSize.
	NodeSize = 32

	// BinaryArity is the fan-out of data-commitment trees.
	BinaryArity = 2

	// QuadArity is an intermediate fan-out kept for compound shapes.
	QuadArity = 4

	// OctArity is the fan-out of replica-commitment trees.
	OctArity = 8
)

// Canonical hasher names, embedded in tree identifiers.
const (
	Sha256HasherName   = "sha256_hasher"
	PoseidonHasherName = "poseidon_hasher"
)

// HasherDomain is the element type of a commitment tree. Proof records are
// generic over it so a single record family serves both tree families.
type HasherDomain = any

// Sha256Domain is a node of a data-commitment tree.
type Sha256Domain [32]byte

// PoseidonDomain is a node of a replica-commitment tree, a field element in
// 32 little-endian bytes.
type PoseidonDomain [32]byte

// Blake2bDomain is a blake2b digest, used for checksums over persisted
// artifacts rather than commitment trees.
type Blake2bDomain [32]byte
