package glwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

// Ciphertext is a polynomial b and a sequence of k polynomials dTilde,
// encrypting m with invariant b - sum_i dTilde_i*s_i = Delta*m + e (mod q).
type Ciphertext struct {
	B      ring.Poly
	DTilde []ring.Poly
}

// Encrypt encrypts m under pk using the parameter set's native Delta.
func Encrypt(prng sampling.PRNG, mul ring.Multiplier, pk PublicKey, p params.Parameters, m ring.Poly) (Ciphertext, error) {
	return EncryptScaled(prng, mul, pk, p.N, p.Q, p.NoiseBound, p.Delta, m)
}

// EncryptScaled is the GLWE encryption procedure generalised to accept an
// arbitrary scaling factor delta in place of the parameter set's native
// Delta. GLev uses this directly, substituting its own per-level Delta_j,
// since a GLev level is "a GLWE encryption that signs the scaled value
// Delta_j*m directly rather than re-applying q/t" — algebraically the
// same formula as Encrypt, just parameterised on delta instead of p.Delta.
func EncryptScaled(prng sampling.PRNG, mul ring.Multiplier, pk PublicKey, n int, q, noiseBound, delta int64, m ring.Poly) (Ciphertext, error) {
	k := len(pk.Pk2)
	if len(m) != n {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: message has %d coefficients, want %d: %w", len(m), n, modarith.ErrInvalidSize)
	}

	binary := sampling.NewBinarySampler(prng)
	uCoeffs, err := binary.ReadVector(n)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
	}
	u := ring.Poly(uCoeffs)

	bounded, err := sampling.NewBoundedSampler(prng, noiseBound)
	if err != nil {
		return Ciphertext{}, err
	}

	pk1u, err := mul.Multiply(pk.Pk1, u, q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
	}
	scaledM := ring.ScalarMul(m, delta, q)
	b, err := ring.Add(pk1u, scaledM, q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
	}
	e1Coeffs, err := bounded.ReadVector(n)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
	}
	b, err = ring.Add(b, ring.Poly(e1Coeffs), q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
	}

	dTilde := make([]ring.Poly, k)
	for i := 0; i < k; i++ {
		pk2u, err := mul.Multiply(pk.Pk2[i], u, q)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
		}
		e2Coeffs, err := bounded.ReadVector(n)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
		}
		dTilde[i], err = ring.Add(pk2u, ring.Poly(e2Coeffs), q)
		if err != nil {
			return Ciphertext{}, fmt.Errorf("glwe: encrypt: %w", err)
		}
	}

	return Ciphertext{B: b, DTilde: dTilde}, nil
}

// Decrypt recovers the message encrypted in ct under sk using the
// parameter set's native Delta.
func Decrypt(mul ring.Multiplier, ct Ciphertext, sk SecretKey, p params.Parameters) (ring.Poly, error) {
	return DecryptScaled(mul, ct, sk, p.Q, p.T, p.Delta)
}

// DecryptScaled is the GLWE decryption procedure generalised to accept an
// arbitrary scaling factor delta, mirroring EncryptScaled.
func DecryptScaled(mul ring.Multiplier, ct Ciphertext, sk SecretKey, q, t, delta int64) (ring.Poly, error) {
	if len(ct.DTilde) != len(sk.S) {
		return nil, fmt.Errorf("glwe: decrypt: %w", modarith.ErrInvalidSize)
	}

	n := len(ct.B)
	acc := make(ring.Poly, n)
	for i := range sk.S {
		term, err := mul.Multiply(ct.DTilde[i], sk.S[i], q)
		if err != nil {
			return nil, fmt.Errorf("glwe: decrypt: %w", err)
		}
		acc, err = ring.Add(acc, term, q)
		if err != nil {
			return nil, fmt.Errorf("glwe: decrypt: %w", err)
		}
	}

	d, err := ring.Sub(ct.B, acc, q)
	if err != nil {
		return nil, fmt.Errorf("glwe: decrypt: %w", err)
	}

	centered := ring.CenterRepresentation(d, q)
	out := make(ring.Poly, len(centered))
	for i, c := range centered {
		out[i] = modarith.Modq(modarith.RoundDiv(c, delta), t)
	}
	return out, nil
}
