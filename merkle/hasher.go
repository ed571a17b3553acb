package merkle

import (
	"github.com/minio/blake2b-simd"
	"github.com/spacemeshos/sha256-simd"
)

// Domain constrains the node types a hasher can produce to fixed 32-byte
// values.
type Domain interface {
	~[32]byte
}

// Hasher compresses raw bytes into one tree domain. Only the byte hashers
// live here; poseidon hashing is algebraic and belongs to the external
// schemes, so oct shapes name it without evaluating it.
type Hasher[D Domain] interface {
	// Name returns the canonical hasher name, as embedded in tree
	// identifiers.
	Name() string

	// Hash compresses data into one domain element.
	Hash(data []byte) D
}

// Sha256Hasher hashes data-commitment tree nodes.
type Sha256Hasher struct{}

func (Sha256Hasher) Name() string { return Sha256HasherName }

func (Sha256Hasher) Hash(data []byte) Sha256Domain {
	return Sha256Domain(sha256.Sum256(data))
}

// Blake2bHasherName is the canonical name of the blake2b hasher.
const Blake2bHasherName = "blake2b_hasher"

// Blake2bHasher hashes integrity checksums over persisted proof artifacts.
type Blake2bHasher struct{}

func (Blake2bHasher) Name() string { return Blake2bHasherName }

func (Blake2bHasher) Hash(data []byte) Blake2bDomain {
	return Blake2bDomain(blake2b.Sum256(data))
}

var (
	_ Hasher[Sha256Domain]  = Sha256Hasher{}
	_ Hasher[Blake2bDomain] = Blake2bHasher{}
)
