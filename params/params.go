// Package params defines the parameter set shared by every scheme in
// this module and the handful of named presets exercised by the
// end-to-end scenarios the core is tested against.
package params

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/dantalion/lhetoy/modarith"
)

// ParametersLiteral is the user-facing, unvalidated description of a
// parameter set, mirroring the teacher's ParametersLiteral/Parameters
// split: a literal is what a caller writes down, a Parameters is what
// the core actually computes with once validated and its derived values
// computed.
type ParametersLiteral struct {
	// N is the ring degree n, zero or a power of two. Use 0 for the
	// LWE-only scheme, which has no ring.
	N int
	// K is the LWE/GLWE security dimension: the secret-key length for
	// LWE, the number of secret polynomials for GLWE.
	K int
	// Q is the ciphertext modulus.
	Q int64
	// T is the plaintext modulus.
	T int64
	// NoiseBound is B, the half-width of the uniform noise distribution.
	NoiseBound int64
}

// Parameters is a validated ParametersLiteral with its derived scaling
// factor precomputed once.
type Parameters struct {
	N          int
	K          int
	Q          int64
	T          int64
	NoiseBound int64
	Delta      int64
}

// NewParametersFromLiteral validates lit and derives Delta = floor(q/t).
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.Q <= 0 || lit.T <= 0 {
		return Parameters{}, fmt.Errorf("params: q and t must be positive: %w", modarith.ErrInvalidSize)
	}
	if lit.N < 0 || (lit.N != 0 && lit.N&(lit.N-1) != 0) {
		return Parameters{}, fmt.Errorf("params: n must be zero or a power of two: %w", modarith.ErrInvalidSize)
	}
	if lit.K < 0 {
		return Parameters{}, fmt.Errorf("params: k must be non-negative: %w", modarith.ErrInvalidSize)
	}
	if lit.NoiseBound < 0 {
		return Parameters{}, fmt.Errorf("params: noise_bound must be non-negative: %w", modarith.ErrInvalidSize)
	}
	return Parameters{
		N:          lit.N,
		K:          lit.K,
		Q:          lit.Q,
		T:          lit.T,
		NoiseBound: lit.NoiseBound,
		Delta:      lit.Q / lit.T,
	}, nil
}

// LevelDelta computes the GLev/GGSW scaling factor for level j under
// decomposition base beta, Delta_j = floor(q / (beta * beta^j)), clamped
// to 1 if the division underflows to zero. This is the same value as the
// textbook Delta_j = floor(q/beta^(j+1)). GLev encryption and level
// decryption both call this method, so level j uses the same Delta_j on
// both sides.
func (p Parameters) LevelDelta(level int, beta int64) int64 {
	denom := beta
	for i := 0; i < level; i++ {
		denom *= beta
	}
	d := p.Q / denom
	if d == 0 {
		return 1
	}
	return d
}

// NoiseBudgetBits reports the diagnostic noise budget log2(Delta/2) -
// log2(B), an estimate of how many doublings of noise the parameter set
// can absorb before a ciphertext built from it risks decrypting
// incorrectly. It is advisory only: the core never consults it, and a
// negative result does not make an operation fail — it only tells a
// caller their parameter choice is unsafe.
func (p Parameters) NoiseBudgetBits() float64 {
	if p.NoiseBound <= 0 {
		return math.Inf(1)
	}
	half := new(big.Float).Quo(big.NewFloat(float64(p.Delta)), big.NewFloat(2))
	bound := big.NewFloat(float64(p.NoiseBound))

	logHalf := bigfloat.Log(half)
	logBound := bigfloat.Log(bound)
	ln2 := math.Ln2

	logHalfF, _ := logHalf.Float64()
	logBoundF, _ := logBound.Float64()
	return logHalfF/ln2 - logBoundF/ln2
}

// LWE128 is a parameter set sized for the LWE round-trip scenario:
// k=256, q=2^30, t=16, B=floor(q/(4t)).
func LWE128() ParametersLiteral {
	q := int64(1) << 30
	t := int64(16)
	return ParametersLiteral{N: 0, K: 256, Q: q, T: t, NoiseBound: q / (4 * t)}
}

// RLWE128 is a parameter set sized for the RLWE round-trip scenario:
// n=1024, q=16384, t=256, B=3.
func RLWE128() ParametersLiteral {
	return ParametersLiteral{N: 1024, K: 0, Q: 16384, T: 256, NoiseBound: 3}
}

// RLWEHomAdd is a parameter set sized for the RLWE homomorphic-add
// scenario: n=512, q=8192, t=16, B=2.
func RLWEHomAdd() ParametersLiteral {
	return ParametersLiteral{N: 512, K: 0, Q: 8192, T: 16, NoiseBound: 2}
}

// LWEScalarMul is a parameter set sized for the LWE scalar-multiply
// scenario: k=128, q=2^25, t=8, B=floor(q/(8t)).
func LWEScalarMul() ParametersLiteral {
	q := int64(1) << 25
	t := int64(8)
	return ParametersLiteral{N: 0, K: 128, Q: q, T: t, NoiseBound: q / (8 * t)}
}

// GLWE128 is a parameter set sized for the GLev/GGSW scenarios:
// n=1024, k=2, q=2^32, t=256, B=8.
func GLWE128() ParametersLiteral {
	return ParametersLiteral{N: 1024, K: 2, Q: int64(1) << 32, T: 256, NoiseBound: 8}
}
