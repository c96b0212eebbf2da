package ristretto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"golang.org/x/crypto/blake2b"

	"github.com/athanorlabs/go-ristretto-schnorr/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

// CurveImpl is the ristretto255 group. It holds no state; the base point
// table used by ScalarBaseMul is built once, on first use, by edwards25519.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) BitSize() uint64 {
	return 252
}

func (c *CurveImpl) CompressedPointSize() int {
	return PointSize
}

// Order returns a copy of the group order l.
func (c *CurveImpl) Order() *big.Int {
	return new(big.Int).Set(groupOrder)
}

func (c *CurveImpl) BasePoint() Point {
	return NewGeneratorPoint()
}

func (c *CurveImpl) Identity() Point {
	return NewIdentityPoint()
}

func (c *CurveImpl) NewRandomScalar() Scalar {
	var b [WideScalarSize]byte
	_, err := rand.Read(b[:])
	if err != nil {
		panic(err)
	}

	return ReduceScalar(b[:])
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	var b [ScalarSize]byte
	binary.LittleEndian.PutUint32(b[:4], in)
	return ReduceScalar(b[:])
}

// ReduceScalar reduces a little-endian integer of up to 64 bytes modulo l.
func (c *CurveImpl) ReduceScalar(b []byte) Scalar {
	return ReduceScalar(b)
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	return DecodeScalar(b)
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	return DecodePoint(b)
}

// HashToScalar reduces the BLAKE2b-512 digest of in modulo l.
func (c *CurveImpl) HashToScalar(in []byte) (Scalar, error) {
	h := blake2b.Sum512(in)
	s, err := edwards25519.NewScalar().SetUniformBytes(h[:])
	if err != nil {
		return nil, err
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

// HashToPoint maps the BLAKE2b-512 digest of in to a group element with
// FromUniformBytes. Nobody knows the discrete log of the result.
func (c *CurveImpl) HashToPoint(in []byte) Point {
	h := blake2b.Sum512(in)
	p, err := FromUniformBytes(h[:])
	if err != nil {
		panic(err)
	}
	return p
}

// FromUniformBytes maps 64 uniformly random bytes to a uniformly
// distributed group element by applying the one-way map to each half and
// adding the results.
func FromUniformBytes(b []byte) (*PointImpl, error) {
	if len(b) != WideScalarSize {
		return nil, fmt.Errorf("uniform bytes: %w: got %d bytes", ErrInvalidLength, len(b))
	}

	// SetBytes drops the top bit of each half.
	t1, err := new(field.Element).SetBytes(b[:32])
	if err != nil {
		return nil, err
	}
	t2, err := new(field.Element).SetBytes(b[32:])
	if err != nil {
		return nil, err
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(mapToPoint(t1), mapToPoint(t2)),
	}, nil
}

// ScalarBaseMul returns s*G in constant time using a precomputed table.
func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(mustScalar(s).inner),
	}
}

// ScalarMul returns s*p in constant time.
func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return mustPoint(p).ScalarMul(s)
}

// VarTimeDoubleScalarBaseMul returns a*A + b*G. It leaks a, b and A through
// timing and must only be given public values.
func (c *CurveImpl) VarTimeDoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).VarTimeDoubleScalarBaseMult(
			mustScalar(a).inner, mustPoint(A).inner, mustScalar(b).inner),
	}
}
