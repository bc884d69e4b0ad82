package lwe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dantalion/lhetoy/lwe"
	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/sampling"
)

func newPRNG(t *testing.T, seed string) sampling.PRNG {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)
	return prng
}

func TestRoundTrip(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.LWE128())
	require.NoError(t, err)

	sk, err := lwe.GenerateSecretKey(newPRNG(t, "lwe-sk"), p.K)
	require.NoError(t, err)

	for _, m := range []int64{0, 1, 2, 3, 5, 7, 10, 15} {
		ct, err := lwe.Encrypt(newPRNG(t, "lwe-ct"), sk, p, m)
		require.NoError(t, err)
		got, err := lwe.Decrypt(ct, sk, p)
		require.NoError(t, err)
		require.Equal(t, m, got, "message %d did not round-trip", m)
	}
}

func TestEncryptRejectsOutOfRangeMessage(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.LWE128())
	require.NoError(t, err)
	sk, err := lwe.GenerateSecretKey(newPRNG(t, "sk"), p.K)
	require.NoError(t, err)

	_, err = lwe.Encrypt(newPRNG(t, "ct"), sk, p, p.T)
	require.ErrorIs(t, err, modarith.ErrInvalidMessage)

	_, err = lwe.Encrypt(newPRNG(t, "ct"), sk, p, -1)
	require.ErrorIs(t, err, modarith.ErrInvalidMessage)
}

func TestDecryptRejectsSizeMismatch(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.LWE128())
	require.NoError(t, err)
	sk, err := lwe.GenerateSecretKey(newPRNG(t, "sk"), p.K)
	require.NoError(t, err)

	ct, err := lwe.Encrypt(newPRNG(t, "ct"), sk, p, 3)
	require.NoError(t, err)
	ct.A = ct.A[:len(ct.A)-1]

	_, err = lwe.Decrypt(ct, sk, p)
	require.ErrorIs(t, err, modarith.ErrInvalidSize)
}

func TestScalarMultiply(t *testing.T) {
	lit := params.LWEScalarMul()
	p, err := params.NewParametersFromLiteral(lit)
	require.NoError(t, err)

	sk, err := lwe.GenerateSecretKey(newPRNG(t, "sk"), p.K)
	require.NoError(t, err)
	ev := lwe.NewEvaluator(p)

	ct, err := lwe.Encrypt(newPRNG(t, "ct"), sk, p, 3)
	require.NoError(t, err)

	got2, err := lwe.Decrypt(ev.ScalarMul(ct, 2), sk, p)
	require.NoError(t, err)
	require.Equal(t, int64(6), got2)

	got3, err := lwe.Decrypt(ev.ScalarMul(ct, 3), sk, p)
	require.NoError(t, err)
	require.Equal(t, int64(1), got3) // 9 mod 8
}

func TestHomomorphicAddAndSub(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.LWE128())
	require.NoError(t, err)
	sk, err := lwe.GenerateSecretKey(newPRNG(t, "sk"), p.K)
	require.NoError(t, err)
	ev := lwe.NewEvaluator(p)

	ct1, err := lwe.Encrypt(newPRNG(t, "ct1"), sk, p, 5)
	require.NoError(t, err)
	ct2, err := lwe.Encrypt(newPRNG(t, "ct2"), sk, p, 7)
	require.NoError(t, err)

	sum, err := ev.Add(ct1, ct2)
	require.NoError(t, err)
	gotSum, err := lwe.Decrypt(sum, sk, p)
	require.NoError(t, err)
	require.Equal(t, int64(12)%p.T, gotSum)

	diff, err := ev.Sub(ct1, ct2)
	require.NoError(t, err)
	gotDiff, err := lwe.Decrypt(diff, sk, p)
	require.NoError(t, err)
	require.Equal(t, modarith.Modq(5-7, p.T), gotDiff)
}

func TestAddRejectsSizeMismatch(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.LWE128())
	require.NoError(t, err)
	ev := lwe.NewEvaluator(p)

	ct1 := lwe.Ciphertext{A: make([]int64, p.K), B: 0}
	ct2 := lwe.Ciphertext{A: make([]int64, p.K+1), B: 0}

	_, err = ev.Add(ct1, ct2)
	require.ErrorIs(t, err, modarith.ErrInvalidSize)
}
