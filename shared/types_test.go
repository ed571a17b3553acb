package shared

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaddedUnpaddedConversions(t *testing.T) {
	r := require.New(t)

	r.Equal(UnpaddedBytesAmount(2032), PaddedBytesAmount(2048).Unpadded())
	r.Equal(PaddedBytesAmount(2048), UnpaddedBytesAmount(2032).Padded())

	// One byte of every 128-byte unit is reserved by the padding rule.
	for _, padded := range []PaddedBytesAmount{
		PaddedBytesAmount(1 << 11),
		PaddedBytesAmount(1 << 23),
		PaddedBytesAmount(1 << 29),
		PaddedBytesAmount(1 << 35),
		PaddedBytesAmount(1 << 36),
	} {
		unpadded := padded.Unpadded()
		r.Equal(uint64(padded)/128*127, uint64(unpadded))
		r.Equal(padded, unpadded.Padded())
	}
}

func TestSectorSizeString(t *testing.T) {
	r := require.New(t)

	r.Equal("2K", SectorSize(1<<11).String())
	r.Equal("8M", SectorSize(1<<23).String())
	r.Equal("512M", SectorSize(1<<29).String())
	r.Equal("32G", SectorSize(1<<35).String())
	r.Equal("64G", SectorSize(1<<36).String())
}

func TestCommitmentJSON(t *testing.T) {
	r := require.New(t)

	c := Commitment{0xde, 0xad, 0xbe, 0xef}
	data, err := json.Marshal(c)
	r.NoError(err)
	r.Equal(`"deadbeef`+strings.Repeat("00", 28)+`"`, string(data))

	var decoded Commitment
	r.NoError(json.Unmarshal(data, &decoded))
	r.Equal(c, decoded)

	err = json.Unmarshal([]byte(`"deadbeef"`), &decoded)
	r.EqualError(err, "invalid commitment length; expected: 32, given: 4")

	err = json.Unmarshal([]byte(`"not-hex"`), &decoded)
	r.Error(err)
}

func TestTicketJSON(t *testing.T) {
	r := require.New(t)

	ticket := Ticket{1, 2, 3}
	data, err := json.Marshal(ticket)
	r.NoError(err)

	var decoded Ticket
	r.NoError(json.Unmarshal(data, &decoded))
	r.Equal(ticket, decoded)

	err = json.Unmarshal([]byte(`"0102"`), &decoded)
	r.EqualError(err, "invalid ticket length; expected: 32, given: 2")
}

func TestHexStrings(t *testing.T) {
	r := require.New(t)

	r.Equal(
		"0100000000000000000000000000000000000000000000000000000000000000",
		ProverID{1}.String(),
	)
	r.Equal(
		"ff00000000000000000000000000000000000000000000000000000000000000",
		PoRepID{0xff}.String(),
	)
	r.Equal(
		"0000000000000000000000000000000000000000000000000000000000000000",
		ChallengeSeed{}.String(),
	)
}
