package schnorr

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
)

var (
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidSignature       = errors.New("invalid signature")
)

// Serialize encodes the signature as R || s.
func (sig *Signature) Serialize() []byte {
	b := make([]byte, 0, SignatureSize)
	b = append(b, sig.R.Encode()...)
	b = append(b, sig.S.Encode()...)
	return b
}

// Deserialize decodes a signature produced by Serialize. It rejects a
// commitment that is not a canonical point encoding and a response that is
// not a canonical scalar.
func (sig *Signature) Deserialize(in []byte) error {
	if len(in) != SignatureSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignatureLength, SignatureSize, len(in))
	}

	R, err := ristretto.DecodePoint(in[:ristretto.PointSize])
	if err != nil {
		return fmt.Errorf("%w: failed to decode commitment: %w", ErrInvalidSignature, err)
	}

	S, err := ristretto.DecodeScalar(in[ristretto.PointSize:])
	if err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrInvalidSignature, err)
	}

	sig.R = R
	sig.S = S
	return nil
}
