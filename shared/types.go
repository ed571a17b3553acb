package shared

import (
	"code.cloudfoundry.org/bytefmt"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	// CommitmentBytesLen is the number of bytes in a CommR, CommD and CommP.
	CommitmentBytesLen = 32

	// TicketBytesLen is the number of bytes in a sealing ticket or seed.
	TicketBytesLen = 32

	// PoRepIDBytesLen is the number of bytes in a PoRep protocol identifier.
	PoRepIDBytesLen = 32
)

// SectorSize is the number of bytes in a sector.
type SectorSize uint64

func (s SectorSize) String() string {
	return bytefmt.ByteSize(uint64(s))
}

// PaddedBytesAmount is a byte amount after bit-padding has been applied,
// i.e. in sector-aligned units.
type PaddedBytesAmount uint64

// UnpaddedBytesAmount is a raw byte amount, before bit-padding. One byte of
// every 128-byte unit is reserved by the padding rule, so an unpadded amount
// is always 127/128 of its padded counterpart.
type UnpaddedBytesAmount uint64

// Unpadded converts a padded byte amount to the raw amount it can hold.
func (p PaddedBytesAmount) Unpadded() UnpaddedBytesAmount {
	return UnpaddedBytesAmount(uint64(p) - uint64(p)/128)
}

// Padded converts a raw byte amount to the padded amount required to hold it.
func (u UnpaddedBytesAmount) Padded() PaddedBytesAmount {
	return PaddedBytesAmount(uint64(u) + uint64(u)/127)
}

// Commitment is the root of a commitment tree: CommR for a replica, CommD for
// piece data, CommP for an individual piece.
type Commitment [CommitmentBytesLen]byte

func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

func (c Commitment) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(c[:]))
}

func (c *Commitment) UnmarshalJSON(data []byte) error {
	return unmarshalFixedHex(c[:], data, "commitment")
}

// Ticket is randomness bound into a proof session: the sealing ticket drawn
// at precommit time, or the interactive seed drawn at commit time.
type Ticket [TicketBytesLen]byte

func (t Ticket) String() string {
	return hex.EncodeToString(t[:])
}

func (t Ticket) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(t[:]))
}

func (t *Ticket) UnmarshalJSON(data []byte) error {
	return unmarshalFixedHex(t[:], data, "ticket")
}

// ChallengeSeed is the randomness a proof-of-spacetime session draws its
// challenges from.
type ChallengeSeed [32]byte

func (c ChallengeSeed) String() string {
	return hex.EncodeToString(c[:])
}

// ProverID uniquely identifies the prover a replica is encoded for.
type ProverID [32]byte

func (p ProverID) String() string {
	return hex.EncodeToString(p[:])
}

// PoRepID distinguishes one proving-protocol configuration from another, e.g.
// across network upgrades. It is supplied by the caller and never generated
// here; every seed derived from it changes when it changes.
type PoRepID [PoRepIDBytesLen]byte

func (id PoRepID) String() string {
	return hex.EncodeToString(id[:])
}

func unmarshalFixedHex(dst []byte, data []byte, name string) error {
	var hexString string
	if err := json.Unmarshal(data, &hexString); err != nil {
		return err
	}
	raw, err := hex.DecodeString(hexString)
	if err != nil {
		return err
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("invalid %v length; expected: %d, given: %d", name, len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}
