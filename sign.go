package schnorr

import (
	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
)

// Signature is a commitment point R and a response scalar s.
type Signature struct {
	R Point
	S Scalar
}

// Sign signs msg with secret key sk and nonce r. The caller is responsible
// for r being secret and never used for another message under sk.
// Sign runs in constant time with respect to sk and r.
func (s *Scheme) Sign(sk, r Scalar, msg []byte) *Signature {
	R := s.curve.ScalarBaseMul(r)
	A := s.curve.ScalarBaseMul(sk)

	c := s.challenge(R.Encode(), A.Encode(), msg)

	return &Signature{
		R: R,
		S: r.Add(c.Mul(sk)),
	}
}

// DeriveNonce returns H(sk || msg) mod l, a nonce that is unique per
// (key, message) pair.
func (s *Scheme) DeriveNonce(sk Scalar, msg []byte) Scalar {
	h := s.hasher.Sum512(sk.Encode(), msg)
	return ristretto.ReduceScalar(h[:])
}

// SignDeterministic signs msg with a nonce derived from sk and msg, so
// signing the same message twice yields the same signature.
func (s *Scheme) SignDeterministic(sk Scalar, msg []byte) *Signature {
	return s.Sign(sk, s.DeriveNonce(sk, msg), msg)
}

// challenge returns H(R || A || msg) reduced modulo l.
func (s *Scheme) challenge(R, A, msg []byte) Scalar {
	h := s.hasher.Sum512(R, A, msg)
	return ristretto.ReduceScalar(h[:])
}
