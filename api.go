package schnorr

import (
	"fmt"

	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
)

// The functions below operate on fixed-size encodings and use the default
// Scheme. Scalar inputs are reduced modulo l, so a non-canonical scalar is
// treated as its reduction rather than rejected.
//
// Point inputs to AddPoint and MulPointByScalar MUST already have been
// checked with VerifyPoint. They panic on an encoding that does not decode.

// ReduceToScalar reduces a little-endian integer of up to 64 bytes modulo l
// and returns its canonical encoding. It panics on longer input.
func ReduceToScalar(in []byte) [32]byte {
	return [32]byte(ristretto.ReduceScalar(in).Encode())
}

// VerifyPoint reports whether p is the canonical encoding of a group element.
func VerifyPoint(p [32]byte) bool {
	return ristretto.IsValidEncoding(p[:])
}

// AddScalar returns x + y mod l.
func AddScalar(x, y [32]byte) [32]byte {
	sum := ristretto.ReduceScalar(x[:]).Add(ristretto.ReduceScalar(y[:]))
	return [32]byte(sum.Encode())
}

// MulScalar returns x * y mod l.
func MulScalar(x, y [32]byte) [32]byte {
	product := ristretto.ReduceScalar(x[:]).Mul(ristretto.ReduceScalar(y[:]))
	return [32]byte(product.Encode())
}

// AddPoint returns x + y. Both inputs must pass VerifyPoint.
func AddPoint(x, y [32]byte) [32]byte {
	sum := mustDecodePoint(x).Add(mustDecodePoint(y))
	return [32]byte(sum.Encode())
}

// MulPointByScalar returns s*p in constant time. p must pass VerifyPoint.
func MulPointByScalar(p, s [32]byte) [32]byte {
	product := mustDecodePoint(p).ScalarMul(ristretto.ReduceScalar(s[:]))
	return [32]byte(product.Encode())
}

// ToPoint returns s*G, the public key for secret key s.
func ToPoint(s [32]byte) [32]byte {
	return [32]byte(defaultScheme.curve.ScalarBaseMul(ristretto.ReduceScalar(s[:])).Encode())
}

// Sign signs msg with secret key sk and nonce. The nonce must be secret and
// must never be reused with sk for a different message.
func Sign(sk, nonce [32]byte, msg []byte) [SignatureSize]byte {
	sig := defaultScheme.Sign(ristretto.ReduceScalar(sk[:]), ristretto.ReduceScalar(nonce[:]), msg)
	return [SignatureSize]byte(sig.Serialize())
}

// SignDeterministic signs msg with secret key sk and a nonce derived from
// sk and msg.
func SignDeterministic(sk [32]byte, msg []byte) [SignatureSize]byte {
	sig := defaultScheme.SignDeterministic(ristretto.ReduceScalar(sk[:]), msg)
	return [SignatureSize]byte(sig.Serialize())
}

// Verify reports whether sig is a valid signature on msg under pk.
func Verify(pk [32]byte, msg []byte, sig [SignatureSize]byte) bool {
	return defaultScheme.VerifyBytes(pk[:], msg, sig[:])
}

func mustDecodePoint(b [32]byte) Point {
	p, err := ristretto.DecodePoint(b[:])
	if err != nil {
		panic(fmt.Sprintf("schnorr: point input was not validated: %v", err))
	}
	return p
}
