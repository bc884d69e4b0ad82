// Package glev implements GLev ciphertexts: a vector of GLWE ciphertexts
// encrypting the same message at L = l+1 geometrically scaled precision
// levels, the building block GGSW layers its rows out of.
package glev

import (
	"fmt"

	"github.com/dantalion/lhetoy/glwe"
	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

// Ciphertext is L = l+1 GLWE ciphertexts, one per precision level, each
// encrypted with its own independent randomness and its own scaling
// factor Delta_j = params.Parameters.LevelDelta(j, beta).
type Ciphertext struct {
	Levels []glwe.Ciphertext
}

// Encrypt produces a GLev encryption of m under pk at depth l with
// decomposition base beta. Level j's GLWE ciphertext signs the value m
// directly, scaled by Delta_j in place of the GLWE-native Delta; each
// level draws its own fresh randomness.
func Encrypt(prng sampling.PRNG, mul ring.Multiplier, pk glwe.PublicKey, p params.Parameters, l int, beta int64, m ring.Poly) (Ciphertext, error) {
	if l < 0 {
		return Ciphertext{}, fmt.Errorf("glev: encrypt: %w", modarith.ErrLevelOutOfRange)
	}
	levels := make([]glwe.Ciphertext, l+1)
	for j := 0; j <= l; j++ {
		deltaJ := p.LevelDelta(j, beta)
		ct, err := glwe.EncryptScaled(prng, mul, pk, p.N, p.Q, p.NoiseBound, deltaJ, m)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("glev: encrypt level %d: %w", j, err)
		}
		levels[j] = ct
	}
	return Ciphertext{Levels: levels}, nil
}

// DecryptLevel decrypts level i of ct, reconstructing Delta_i by the
// same formula used at encryption time.
func DecryptLevel(mul ring.Multiplier, ct Ciphertext, sk glwe.SecretKey, p params.Parameters, i int, beta int64) (ring.Poly, error) {
	if i < 0 || i >= len(ct.Levels) {
		return nil, fmt.Errorf("glev: decrypt level %d: %w", i, modarith.ErrLevelOutOfRange)
	}
	deltaI := p.LevelDelta(i, beta)
	return glwe.DecryptScaled(mul, ct.Levels[i], sk, p.Q, p.T, deltaI)
}
