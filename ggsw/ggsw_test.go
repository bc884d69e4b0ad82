package ggsw_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dantalion/lhetoy/ggsw"
	"github.com/dantalion/lhetoy/glwe"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

func newPRNG(t *testing.T, seed string) sampling.PRNG {
	t.Helper()
	prng, err := sampling.NewKeyedPRNG([]byte(seed))
	require.NoError(t, err)
	return prng
}

func TestFinalRowDecryptionRoundTrip(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.GLWE128())
	require.NoError(t, err)
	const l = 4
	const beta = int64(16)

	sk, err := glwe.GenerateSecretKey(newPRNG(t, "sk"), p.K, p.N)
	require.NoError(t, err)
	pk, err := glwe.GeneratePublicKey(newPRNG(t, "pk"), ring.Schoolbook{}, sk, p)
	require.NoError(t, err)

	m := make(ring.Poly, p.N)
	for i := range m {
		m[i] = int64(i) % p.T
	}

	ct, err := ggsw.Encrypt(newPRNG(t, "ct"), ring.Schoolbook{}, pk, sk, p, l, beta, m)
	require.NoError(t, err)
	require.Len(t, ct.Rows, p.K+1)

	for _, level := range []int{0, l} {
		got, err := ggsw.Decrypt(ring.Schoolbook{}, ct, sk, p, level, beta)
		require.NoError(t, err)
		require.True(t, got.IsEqual(m), "level %d did not round-trip", level)
	}
}
