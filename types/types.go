package types

// Curve is a prime-order group together with its scalar field.
type Curve interface {
	BitSize() uint64
	CompressedPointSize() int
	BasePoint() Point
	Identity() Point
	NewRandomScalar() Scalar
	ScalarFrom(uint32) Scalar
	ReduceScalar([]byte) Scalar
	DecodeToScalar([]byte) (Scalar, error)
	DecodeToPoint([]byte) (Point, error)
	HashToScalar([]byte) (Scalar, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	ScalarMul(Scalar) Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}

// Hasher computes the 64-byte digests that are reduced to challenge scalars.
// Implementations must write every input in order with no framing.
type Hasher interface {
	Sum512(inputs ...[]byte) [64]byte
}
