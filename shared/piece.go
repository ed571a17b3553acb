package shared

import "fmt"

// PieceInfo describes one piece of client data bound into a sector: the
// commitment to its content (CommP) and its raw size. Piece sizes are
// unpadded; the padded footprint inside the sector is Size.Padded().
type PieceInfo struct {
	Commitment Commitment          `json:"commitment"`
	Size       UnpaddedBytesAmount `json:"size"`
}

// NewPieceInfo returns a PieceInfo for the given commitment and raw size.
// The size is only validated where the piece is bound to a concrete sector.
func NewPieceInfo(commP Commitment, size UnpaddedBytesAmount) PieceInfo {
	return PieceInfo{Commitment: commP, Size: size}
}

func (p PieceInfo) String() string {
	return fmt.Sprintf("PieceInfo(commP: %v, size: %d)", p.Commitment, p.Size)
}
