package schnorr

import (
	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
)

// Verify reports whether sig is a valid signature on msg under pk.
func (s *Scheme) Verify(pk Point, msg []byte, sig *Signature) bool {
	if pk == nil || sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	return s.verify(pk, pk.Encode(), msg, sig.R, sig.R.Encode(), sig.S)
}

// VerifyBytes reports whether sig is a valid encoded signature on msg under
// the encoded public key pk. Malformed keys, commitments and responses are
// all reported as false, and the same work is done whichever one is
// malformed.
func (s *Scheme) VerifyBytes(pk, msg, sig []byte) bool {
	if len(pk) != ristretto.PointSize || len(sig) != SignatureSize {
		return false
	}

	A, okA := decodePointOrIdentity(pk)
	R, okR := decodePointOrIdentity(sig[:ristretto.PointSize])
	sc, okS := decodeScalarOrZero(sig[ristretto.PointSize:])

	ok := s.verify(A, pk, msg, R, sig[:ristretto.PointSize], sc)
	return okA && okR && okS && ok
}

// verify checks R == s*G - c*A. Every input is public, so the variable-time
// double multiplication is safe here.
func (s *Scheme) verify(A Point, ABytes, msg []byte, R Point, RBytes []byte, sc Scalar) bool {
	c := s.challenge(RBytes, ABytes, msg)

	expected := s.curve.VarTimeDoubleScalarBaseMul(c.Negate(), A, sc)
	return expected.Equals(R)
}

func decodePointOrIdentity(b []byte) (Point, bool) {
	p, err := ristretto.DecodePoint(b)
	if err != nil {
		return ristretto.NewIdentityPoint(), false
	}
	return p, true
}

func decodeScalarOrZero(b []byte) (Scalar, bool) {
	sc, err := ristretto.DecodeScalar(b)
	if err != nil {
		return ristretto.NewScalar(), false
	}
	return sc, true
}
