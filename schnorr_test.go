package schnorr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ristretto-schnorr/ristretto"
)

func newKeyPair(s *Scheme) (Scalar, Point) {
	sk := s.Curve().NewRandomScalar()
	return sk, s.Curve().ScalarBaseMul(sk)
}

func TestSignAndVerify(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	msg := []byte("hello")

	sig := s.Sign(sk, s.Curve().NewRandomScalar(), msg)
	require.True(t, s.Verify(pk, msg, sig))
	require.True(t, s.VerifyBytes(pk.Encode(), msg, sig.Serialize()))

	require.False(t, s.Verify(pk, []byte("hellp"), sig))
	_, otherPK := newKeyPair(s)
	require.False(t, s.Verify(otherPK, msg, sig))
}

func TestSignEmptyMessage(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	sig := s.Sign(sk, s.Curve().NewRandomScalar(), nil)
	require.True(t, s.Verify(pk, nil, sig))
	require.True(t, s.Verify(pk, []byte{}, sig))
}

func TestSignIsDeterministic(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	r := s.Curve().NewRandomScalar()
	msg := []byte("message")

	require.Equal(t, s.Sign(sk, r, msg).Serialize(), s.Sign(sk, r, msg).Serialize())

	a := s.SignDeterministic(sk, msg)
	b := s.SignDeterministic(sk, msg)
	require.Equal(t, a.Serialize(), b.Serialize())
	require.True(t, s.Verify(pk, msg, a))

	c := s.SignDeterministic(sk, []byte("other message"))
	require.False(t, a.R.Equals(c.R))
}

func TestSignatureCommitmentIsNonceTimesGenerator(t *testing.T) {
	s := New()
	sk, _ := newKeyPair(s)
	r := s.Curve().NewRandomScalar()
	sig := s.Sign(sk, r, []byte("x"))
	require.True(t, sig.R.Equals(s.Curve().ScalarBaseMul(r)))
}

func TestNonceReuseRevealsSecretKey(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	r := s.Curve().NewRandomScalar()
	m1, m2 := []byte("first"), []byte("second")

	sig1 := s.Sign(sk, r, m1)
	sig2 := s.Sign(sk, r, m2)

	c1 := s.challenge(sig1.R.Encode(), pk.Encode(), m1)
	c2 := s.challenge(sig2.R.Encode(), pk.Encode(), m2)

	// sk = (s1 - s2) / (c1 - c2)
	recovered := sig1.S.Sub(sig2.S).Mul(c1.Sub(c2).Inverse())
	require.True(t, recovered.Eq(sk))
}

func TestVerifyRejectsBitFlips(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	msg := []byte("bit flips")
	sig := s.Sign(sk, s.Curve().NewRandomScalar(), msg).Serialize()
	pkBytes := pk.Encode()

	require.True(t, s.VerifyBytes(pkBytes, msg, sig))

	t.Run("signature", func(t *testing.T) {
		for i := 0; i < len(sig)*8; i++ {
			flipped := append([]byte{}, sig...)
			flipped[i/8] ^= 1 << (i % 8)
			require.False(t, s.VerifyBytes(pkBytes, msg, flipped), "bit %d", i)
		}
	})

	t.Run("public key", func(t *testing.T) {
		for i := 0; i < len(pkBytes)*8; i++ {
			flipped := append([]byte{}, pkBytes...)
			flipped[i/8] ^= 1 << (i % 8)
			require.False(t, s.VerifyBytes(flipped, msg, sig), "bit %d", i)
		}
	})

	t.Run("message", func(t *testing.T) {
		for i := 0; i < len(msg)*8; i++ {
			flipped := append([]byte{}, msg...)
			flipped[i/8] ^= 1 << (i % 8)
			require.False(t, s.VerifyBytes(pkBytes, flipped, sig), "bit %d", i)
		}
	})
}

func TestVerifyRejectsMalformedInput(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)
	msg := []byte("malformed")
	sig := s.Sign(sk, s.Curve().NewRandomScalar(), msg)
	sigBytes := sig.Serialize()

	require.False(t, s.VerifyBytes(pk.Encode(), msg, sigBytes[:63]))
	require.False(t, s.VerifyBytes(pk.Encode()[:31], msg, sigBytes))
	require.False(t, s.Verify(nil, msg, sig))
	require.False(t, s.Verify(pk, msg, nil))
	require.False(t, s.Verify(pk, msg, &Signature{}))

	t.Run("non-canonical response", func(t *testing.T) {
		// s + l is congruent to s but is not a canonical encoding.
		withOrder := addOrder(t, sig.S.Encode())
		malleated := append(append([]byte{}, sigBytes[:32]...), withOrder...)
		require.False(t, s.VerifyBytes(pk.Encode(), msg, malleated))
	})

	t.Run("invalid public key does not act as identity", func(t *testing.T) {
		// With pk replaced by the identity, R = s*G satisfies the equation.
		sc := s.Curve().NewRandomScalar()
		R := s.Curve().ScalarBaseMul(sc)
		forged := append(R.Encode(), sc.Encode()...)

		badPK := make([]byte, 32)
		badPK[0] = 1
		require.False(t, s.VerifyBytes(badPK, msg, forged))
		require.True(t, s.VerifyBytes(make([]byte, 32), msg, forged))
	})

	t.Run("invalid commitment does not act as identity", func(t *testing.T) {
		badR := make([]byte, 32)
		badR[0] = 1
		// s*G - c*pk = identity for s = c*sk.
		c := s.challenge(badR, pk.Encode(), msg)
		sc := c.Mul(sk)
		forged := append(append([]byte{}, badR...), sc.Encode()...)
		require.False(t, s.VerifyBytes(pk.Encode(), msg, forged))

		// The identity encoding hashes differently, so it is rejected too.
		require.False(t, s.VerifyBytes(pk.Encode(), msg, append(make([]byte, 32), sc.Encode()...)))
	})
}

func TestHashers(t *testing.T) {
	b2 := New()
	s3 := New(WithHasher(SHA3Hasher{}))
	sk, pk := newKeyPair(b2)
	r := b2.Curve().NewRandomScalar()
	msg := []byte("hashers")

	sig := s3.Sign(sk, r, msg)
	require.True(t, s3.Verify(pk, msg, sig))
	require.False(t, b2.Verify(pk, msg, sig))
	require.False(t, s3.Verify(pk, msg, b2.Sign(sk, r, msg)))

	require.NotEqual(t, Blake2bHasher{}.Sum512([]byte("a")), SHA3Hasher{}.Sum512([]byte("a")))
	require.Equal(t, Blake2bHasher{}.Sum512([]byte("ab")), Blake2bHasher{}.Sum512([]byte("a"), []byte("b")))
	require.Equal(t, SHA3Hasher{}.Sum512([]byte("ab")), SHA3Hasher{}.Sum512([]byte("a"), []byte("b")))

	require.Equal(t, Blake2bHasher{}, New(WithHasher(nil)).hasher)
}

func TestChallengeMatchesCurveHash(t *testing.T) {
	s := New()
	R, A, msg := []byte("R"), []byte("A"), []byte("msg")
	expected, err := ristretto.NewCurve().HashToScalar([]byte("RAmsg"))
	require.NoError(t, err)
	require.True(t, s.challenge(R, A, msg).Eq(expected))
}

func TestConcurrentSignAndVerify(t *testing.T) {
	s := New()
	sk, pk := newKeyPair(s)

	errs := make(chan bool, 16)
	for i := 0; i < cap(errs); i++ {
		go func(i int) {
			msg := []byte{byte(i)}
			sig := s.SignDeterministic(sk, msg)
			errs <- s.Verify(pk, msg, sig)
		}(i)
	}
	for i := 0; i < cap(errs); i++ {
		require.True(t, <-errs)
	}
}

// addOrder returns the 32-byte little-endian encoding of s + l.
func addOrder(t *testing.T, s []byte) []byte {
	be := make([]byte, len(s))
	for i := range s {
		be[len(s)-1-i] = s[i]
	}

	l := ristretto.NewCurve().(*ristretto.CurveImpl).Order()
	n := new(big.Int).Add(new(big.Int).SetBytes(be), l)
	require.LessOrEqual(t, n.BitLen(), 256)

	out := make([]byte, 32)
	n.FillBytes(out)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
