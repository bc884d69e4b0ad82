// Package ggsw implements GGSW ciphertexts: a (k+1)-row matrix of GLev
// rows encoding a message together with its product with each secret-key
// component, the building block of the external product this core does
// not itself provide.
package ggsw

import (
	"fmt"

	"github.com/dantalion/lhetoy/glev"
	"github.com/dantalion/lhetoy/glwe"
	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

// Ciphertext is k+1 GLev rows: row i < k encrypts -(s_i*m), row k
// encrypts m.
type Ciphertext struct {
	Rows []glev.Ciphertext
}

// Encrypt produces a GGSW encryption of m at depth l with decomposition
// base beta. It consumes the public key (for all k+1 GLev encryptions)
// and the secret key (to compute the first k rows' messages), so the
// encrypter must hold sk.
func Encrypt(prng sampling.PRNG, mul ring.Multiplier, pk glwe.PublicKey, sk glwe.SecretKey, p params.Parameters, l int, beta int64, m ring.Poly) (Ciphertext, error) {
	k := len(sk.S)
	rows := make([]glev.Ciphertext, k+1)

	for i := 0; i < k; i++ {
		sim, err := mul.Multiply(sk.S[i], m, p.Q)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("ggsw: encrypt row %d: %w", i, err)
		}
		ri := ring.Neg(sim, p.Q)

		row, err := glev.Encrypt(prng, mul, pk, p, l, beta, ri)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("ggsw: encrypt row %d: %w", i, err)
		}
		rows[i] = row
	}

	lastRow, err := glev.Encrypt(prng, mul, pk, p, l, beta, m)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("ggsw: encrypt last row: %w", err)
	}
	rows[k] = lastRow

	return Ciphertext{Rows: rows}, nil
}

// Decrypt recovers m by decrypting level i of the last GLev row. The
// other k rows are retained but not decryptable here — GGSW's
// cryptographic value is in the homomorphic external product, which this
// core does not provide.
func Decrypt(mul ring.Multiplier, ct Ciphertext, sk glwe.SecretKey, p params.Parameters, i int, beta int64) (ring.Poly, error) {
	if len(ct.Rows) == 0 {
		return nil, fmt.Errorf("ggsw: decrypt: %w", modarith.ErrInvalidSize)
	}
	lastRow := ct.Rows[len(ct.Rows)-1]
	return glev.DecryptLevel(mul, lastRow, sk, p, i, beta)
}
