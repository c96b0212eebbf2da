package schnorr

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Blake2bHasher is unkeyed BLAKE2b-512. It is the default.
type Blake2bHasher struct{}

func (Blake2bHasher) Sum512(inputs ...[]byte) [64]byte {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic(err)
	}
	for _, in := range inputs {
		h.Write(in)
	}

	var out [64]byte
	h.Sum(out[:0])
	return out
}

// SHA3Hasher is SHA3-512.
type SHA3Hasher struct{}

func (SHA3Hasher) Sum512(inputs ...[]byte) [64]byte {
	h := sha3.New512()
	for _, in := range inputs {
		h.Write(in)
	}

	var out [64]byte
	h.Sum(out[:0])
	return out
}
