package ristretto

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

var (
	ErrInvalidLength      = errors.New("invalid encoding length")
	ErrNonCanonicalScalar = errors.New("scalar is not canonically encoded")
)

// ScalarImpl is an integer modulo the group order l. Every operation is
// constant time and leaves the result fully reduced.
type ScalarImpl struct {
	inner *edwards25519.Scalar
}

// NewScalar returns the zero scalar.
func NewScalar() *ScalarImpl {
	return &ScalarImpl{
		inner: edwards25519.NewScalar(),
	}
}

// ReduceScalar interprets b as a little-endian integer of up to 512 bits and
// returns it modulo l. It panics if b is longer than WideScalarSize.
func ReduceScalar(b []byte) *ScalarImpl {
	if len(b) > WideScalarSize {
		panic(fmt.Sprintf("ristretto: cannot reduce %d-byte input", len(b)))
	}

	var wide [WideScalarSize]byte
	copy(wide[:], b)

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

// DecodeScalar parses a canonical 32-byte little-endian scalar, rejecting
// any value not strictly less than l.
func DecodeScalar(b []byte) (*ScalarImpl, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("scalar: %w: got %d bytes", ErrInvalidLength, len(b))
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, ErrNonCanonicalScalar
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ristretto.ScalarImpl")
	}
	return ss
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Subtract(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Multiply(s.inner, mustScalar(b).inner),
	}
}

// Inverse returns s^-1 mod l. The inverse of zero is zero.
func (s *ScalarImpl) Inverse() Scalar {
	return &ScalarImpl{
		inner: edwards25519.NewScalar().Invert(s.inner),
	}
}

// Encode returns the canonical 32-byte little-endian encoding.
func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}
