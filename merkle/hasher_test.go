package merkle

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha256Hasher(t *testing.T) {
	r := require.New(t)

	var h Sha256Hasher
	r.Equal(Sha256HasherName, h.Name())

	d := h.Hash([]byte("abc"))
	r.Equal("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(d[:]))

	r.Equal(d, h.Hash([]byte("abc")))
	r.NotEqual(d, h.Hash([]byte("abd")))
}

func TestBlake2bHasher(t *testing.T) {
	r := require.New(t)

	var h Blake2bHasher
	r.Equal(Blake2bHasherName, h.Name())

	d := h.Hash([]byte("abc"))
	r.Equal("bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
		hex.EncodeToString(d[:]))

	r.Equal(d, h.Hash([]byte("abc")))
}
