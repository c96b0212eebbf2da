package ristretto

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

var ErrInvalidPoint = errors.New("invalid ristretto255 encoding")

// PointImpl is a ristretto255 group element. The wrapped Edwards point is
// one representative of its coset; only Encode and Equals observe the
// element, never the representative.
type PointImpl struct {
	inner *edwards25519.Point
}

// NewIdentityPoint returns the group identity.
func NewIdentityPoint() *PointImpl {
	return &PointImpl{
		inner: edwards25519.NewIdentityPoint(),
	}
}

// NewGeneratorPoint returns the ristretto255 generator, which shares its
// representative with the Ed25519 base point.
func NewGeneratorPoint() *PointImpl {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

// DecodePoint parses a canonical 32-byte encoding.
func DecodePoint(b []byte) (*PointImpl, error) {
	if len(b) != PointSize {
		return nil, fmt.Errorf("point: %w: got %d bytes", ErrInvalidLength, len(b))
	}

	p, ok := decode(b)
	if ok != 1 {
		return nil, ErrInvalidPoint
	}

	return &PointImpl{
		inner: p,
	}, nil
}

// IsValidEncoding reports whether b is the canonical encoding of a group
// element. It never panics.
func IsValidEncoding(b []byte) bool {
	if len(b) != PointSize {
		return false
	}
	_, ok := decode(b)
	return ok == 1
}

// decode returns the decoded point and 1, or the identity and 0. Apart from
// the final curve check every step runs regardless of input validity.
func decode(in []byte) (*edwards25519.Point, int) {
	s, err := new(field.Element).SetBytes(in)
	if err != nil {
		return edwards25519.NewIdentityPoint(), 0
	}

	// SetBytes ignores the top bit and accepts values up to 2^255-1, so
	// compare against the canonical re-encoding.
	canonical := subtle.ConstantTimeCompare(s.Bytes(), in)
	nonNegative := 1 ^ s.IsNegative()

	one := new(field.Element).One()
	ss := new(field.Element).Square(s)
	u1 := new(field.Element).Subtract(one, ss)
	u2 := new(field.Element).Add(one, ss)
	u2Sqr := new(field.Element).Square(u2)

	// v = -(d * u1^2) - u2^2
	v := new(field.Element).Square(u1)
	v.Multiply(v, curveD)
	v.Negate(v)
	v.Subtract(v, u2Sqr)

	invSqrt, wasSquare := new(field.Element).SqrtRatio(one, new(field.Element).Multiply(v, u2Sqr))

	denX := new(field.Element).Multiply(invSqrt, u2)
	denY := new(field.Element).Multiply(invSqrt, denX)
	denY.Multiply(denY, v)

	x := new(field.Element).Multiply(s, denX)
	x.Add(x, x)
	x.Absolute(x)
	y := new(field.Element).Multiply(u1, denY)
	t := new(field.Element).Multiply(x, y)

	yNonZero := 1 ^ y.Equal(new(field.Element).Zero())
	tNonNegative := 1 ^ t.IsNegative()

	ok := canonical & nonNegative & wasSquare & tNonNegative & yNonZero
	if ok != 1 {
		return edwards25519.NewIdentityPoint(), 0
	}

	p, err := new(edwards25519.Point).SetExtendedCoordinates(x, y, one, t)
	if err != nil {
		return edwards25519.NewIdentityPoint(), 0
	}
	return p, 1
}

// encode computes the canonical encoding of the coset containing p.
func encode(p *edwards25519.Point) []byte {
	x0, y0, z0, t0 := p.ExtendedCoordinates()

	// u1 = (z0 + y0) * (z0 - y0)
	u1 := new(field.Element).Add(z0, y0)
	u1.Multiply(u1, new(field.Element).Subtract(z0, y0))
	u2 := new(field.Element).Multiply(x0, y0)

	one := new(field.Element).One()
	u2Sqr := new(field.Element).Square(u2)
	invSqrt, _ := new(field.Element).SqrtRatio(one, u2Sqr.Multiply(u2Sqr, u1))

	den1 := new(field.Element).Multiply(invSqrt, u1)
	den2 := new(field.Element).Multiply(invSqrt, u2)
	zInv := new(field.Element).Multiply(den1, den2)
	zInv.Multiply(zInv, t0)

	ix0 := new(field.Element).Multiply(x0, sqrtM1)
	iy0 := new(field.Element).Multiply(y0, sqrtM1)
	enchantedDenominator := new(field.Element).Multiply(den1, invSqrtAMinusD)

	rotate := new(field.Element).Multiply(t0, zInv).IsNegative()

	x := new(field.Element).Select(iy0, x0, rotate)
	y := new(field.Element).Select(ix0, y0, rotate)
	denInv := new(field.Element).Select(enchantedDenominator, den2, rotate)

	negY := new(field.Element).Negate(y)
	y.Select(negY, y, new(field.Element).Multiply(x, zInv).IsNegative())

	s := new(field.Element).Subtract(z0, y)
	s.Multiply(s, denInv)
	s.Absolute(s)
	return s.Bytes()
}

// equal is the ristretto255 equality test, which holds for any two
// representatives of the same coset.
func equal(p, q *edwards25519.Point) int {
	x1, y1, _, _ := p.ExtendedCoordinates()
	x2, y2, _, _ := q.ExtendedCoordinates()

	x1y2 := new(field.Element).Multiply(x1, y2)
	y1x2 := new(field.Element).Multiply(y1, x2)
	y1y2 := new(field.Element).Multiply(y1, y2)
	x1x2 := new(field.Element).Multiply(x1, x2)

	return x1y2.Equal(y1x2) | y1y2.Equal(x1x2)
}

// mapToPoint is the one-way map from a field element to a group element
// (RFC 9496, Section 4.3.4).
func mapToPoint(t *field.Element) *edwards25519.Point {
	one := new(field.Element).One()
	minusOne := new(field.Element).Negate(one)

	// r = SQRT_M1 * t^2
	r := new(field.Element).Square(t)
	r.Multiply(r, sqrtM1)

	// u = (r + 1) * ONE_MINUS_D_SQ
	u := new(field.Element).Add(r, one)
	u.Multiply(u, oneMinusDSQ)

	// v = (-1 - r*d) * (r + d)
	rd := new(field.Element).Multiply(r, curveD)
	v := new(field.Element).Subtract(minusOne, rd)
	v.Multiply(v, new(field.Element).Add(r, curveD))

	s, wasSquare := new(field.Element).SqrtRatio(u, v)
	sPrime := new(field.Element).Multiply(s, t)
	sPrime.Absolute(sPrime)
	sPrime.Negate(sPrime)
	s.Select(s, sPrime, wasSquare)
	c := new(field.Element).Select(minusOne, r, wasSquare)

	// N = c * (r - 1) * D_MINUS_ONE_SQ - v
	n := new(field.Element).Subtract(r, one)
	n.Multiply(n, c)
	n.Multiply(n, dMinusOneSQ)
	n.Subtract(n, v)

	sSqr := new(field.Element).Square(s)
	w0 := new(field.Element).Multiply(s, v)
	w0.Add(w0, w0)
	w1 := new(field.Element).Multiply(n, sqrtADMinusOne)
	w2 := new(field.Element).Subtract(one, sSqr)
	w3 := new(field.Element).Add(one, sSqr)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(
		new(field.Element).Multiply(w0, w3),
		new(field.Element).Multiply(w2, w1),
		new(field.Element).Multiply(w1, w3),
		new(field.Element).Multiply(w0, w2),
	)
	if err != nil {
		panic("ristretto: one-way map produced a point off the curve")
	}
	return p
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ristretto.PointImpl")
	}
	return pp
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Negate(p.inner),
	}
}

// ScalarMul returns s*p in constant time.
func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(mustScalar(s).inner, p.inner),
	}
}

// Encode returns the canonical 32-byte encoding.
func (p *PointImpl) Encode() []byte {
	return encode(p.inner)
}

func (p *PointImpl) IsZero() bool {
	return equal(p.inner, edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	return equal(p.inner, mustPoint(other).inner) == 1
}
