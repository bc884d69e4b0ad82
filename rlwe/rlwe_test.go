package rlwe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/rlwe"
	"github.com/dantalion/lhetoy/sampling"
)

func newPRNG(t *testing.T, seed string) sampling.PRNG {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)
	return prng
}

func TestRoundTrip(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.RLWE128())
	require.NoError(t, err)

	sk, err := rlwe.GenerateSecretKey(newPRNG(t, "sk"), p.N)
	require.NoError(t, err)

	m := make(ring.Poly, p.N)
	for i := range m {
		m[i] = int64(i) % p.T
	}

	ct, err := rlwe.Encrypt(newPRNG(t, "ct"), ring.Schoolbook{}, sk, p, m)
	require.NoError(t, err)

	got, err := rlwe.Decrypt(ring.Schoolbook{}, ct, sk, p)
	require.NoError(t, err)
	require.True(t, got.IsEqual(m))
}

func TestEncryptRejectsSizeMismatch(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.RLWE128())
	require.NoError(t, err)
	sk, err := rlwe.GenerateSecretKey(newPRNG(t, "sk"), p.N)
	require.NoError(t, err)

	_, err = rlwe.Encrypt(newPRNG(t, "ct"), ring.Schoolbook{}, sk, p, make(ring.Poly, p.N-1))
	require.ErrorIs(t, err, modarith.ErrInvalidSize)
}

func TestHomomorphicAdd(t *testing.T) {
	lit := params.RLWEHomAdd()
	p, err := params.NewParametersFromLiteral(lit)
	require.NoError(t, err)

	sk, err := rlwe.GenerateSecretKey(newPRNG(t, "sk"), p.N)
	require.NoError(t, err)
	ev := rlwe.NewEvaluator(p)

	m1 := make(ring.Poly, p.N)
	m2 := make(ring.Poly, p.N)
	for i := range m1 {
		m1[i] = int64(i+1) % p.T
		m2[i] = int64(i+2) % p.T
	}

	ct1, err := rlwe.Encrypt(newPRNG(t, "ct1"), ring.Schoolbook{}, sk, p, m1)
	require.NoError(t, err)
	ct2, err := rlwe.Encrypt(newPRNG(t, "ct2"), ring.Schoolbook{}, sk, p, m2)
	require.NoError(t, err)

	sum, err := ev.Add(ct1, ct2)
	require.NoError(t, err)
	got, err := rlwe.Decrypt(ring.Schoolbook{}, sum, sk, p)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		want := (m1[i] + m2[i]) % p.T
		require.Equal(t, want, got[i], "coefficient %d mismatch", i)
	}
}

func TestRawMultiplyProducesIndependentProducts(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.RLWE128())
	require.NoError(t, err)
	sk, err := rlwe.GenerateSecretKey(newPRNG(t, "sk"), p.N)
	require.NoError(t, err)
	ev := rlwe.NewEvaluator(p)

	m := make(ring.Poly, p.N)
	ct1, err := rlwe.Encrypt(newPRNG(t, "ct1"), ring.Schoolbook{}, sk, p, m)
	require.NoError(t, err)
	ct2, err := rlwe.Encrypt(newPRNG(t, "ct2"), ring.Schoolbook{}, sk, p, m)
	require.NoError(t, err)

	pair, err := ev.RawMultiply(ring.Schoolbook{}, ct1, ct2)
	require.NoError(t, err)

	wantA2, err := ring.NegacyclicMultiply(ct1.A, ct2.A, p.Q)
	require.NoError(t, err)
	wantB2, err := ring.NegacyclicMultiply(ct1.B, ct2.B, p.Q)
	require.NoError(t, err)
	require.True(t, pair.A2.IsEqual(wantA2))
	require.True(t, pair.B2.IsEqual(wantB2))
}
