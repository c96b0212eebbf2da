// Package schnorr implements Schnorr signatures over the ristretto255 group.
//
// A signature on msg under secret scalar sk with nonce r is R || s where
//
//	R = r*G
//	c = H(R || sk*G || msg) mod l
//	s = r + c*sk
//
// and H is BLAKE2b-512 unless another Hasher is configured. The nonce must
// never be reused for two different messages under one key: doing so
// reveals sk. Use SignDeterministic to derive it from the key and message.
package schnorr

import (
	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
	"github.com/athanorlabs/go-ristretto-schnorr/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar
type Hasher = types.Hasher

// SignatureSize is the length of an encoded signature.
const SignatureSize = ristretto.PointSize + ristretto.ScalarSize

// Scheme signs and verifies messages. It is immutable and safe for
// concurrent use.
type Scheme struct {
	curve  *ristretto.CurveImpl
	hasher Hasher
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithHasher replaces the default BLAKE2b-512 challenge hash. Signatures made
// with one hasher do not verify under another.
func WithHasher(h Hasher) Option {
	return func(s *Scheme) {
		if h != nil {
			s.hasher = h
		}
	}
}

// New returns a Scheme over ristretto255.
func New(opts ...Option) *Scheme {
	s := &Scheme{
		curve:  &ristretto.CurveImpl{},
		hasher: Blake2bHasher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Curve returns the group the scheme operates in.
func (s *Scheme) Curve() Curve {
	return s.curve
}

var defaultScheme = New()
