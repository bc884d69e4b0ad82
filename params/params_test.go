package params_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dantalion/lhetoy/params"
)

func TestNewParametersFromLiteralDerivesDelta(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.ParametersLiteral{
		N: 1024, K: 0, Q: 16384, T: 256, NoiseBound: 3,
	})
	require.NoError(t, err)
	require.Equal(t, int64(64), p.Delta)
}

func TestNewParametersFromLiteralRejectsBadInput(t *testing.T) {
	_, err := params.NewParametersFromLiteral(params.ParametersLiteral{Q: 0, T: 16})
	require.Error(t, err)

	_, err = params.NewParametersFromLiteral(params.ParametersLiteral{Q: 16384, T: 256, N: 3})
	require.Error(t, err)
}

func TestLevelDeltaMatchesFormula(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.GLWE128())
	require.NoError(t, err)

	beta := int64(16)
	for level := 0; level < 4; level++ {
		denom := beta
		for i := 0; i < level; i++ {
			denom *= beta
		}
		want := p.Q / denom
		if want == 0 {
			want = 1
		}
		require.Equal(t, want, p.LevelDelta(level, beta))
	}
}

func TestNoiseBudgetBitsPositiveForSafeParameters(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.RLWE128())
	require.NoError(t, err)
	require.Greater(t, p.NoiseBudgetBits(), 0.0)
}

func TestNoiseBudgetBitsInfiniteForZeroBound(t *testing.T) {
	p, err := params.NewParametersFromLiteral(params.ParametersLiteral{Q: 100, T: 10, NoiseBound: 0})
	require.NoError(t, err)
	require.True(t, math.IsInf(p.NoiseBudgetBits(), 1))
}
