// Package rlwe implements key generation, encryption, and decryption for
// the Ring-LWE scheme: LWE generalised to encrypt a whole polynomial
// message at once using negacyclic ring arithmetic.
package rlwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

// SecretKey is a single binary polynomial of length n.
type SecretKey struct {
	S ring.Poly
}

// GenerateSecretKey draws a length-n binary secret key polynomial from
// prng.
func GenerateSecretKey(prng sampling.PRNG, n int) (SecretKey, error) {
	if n <= 0 {
		return SecretKey{}, modarith.ErrInvalidSize
	}
	s, err := sampling.NewBinarySampler(prng).ReadVector(n)
	if err != nil {
		return SecretKey{}, fmt.Errorf("rlwe: generate secret key: %w", err)
	}
	return SecretKey{S: ring.Poly(s)}, nil
}

// Ciphertext is a pair (a, b) of length-n polynomials satisfying
// b = a*s + Delta*m + e (mod q, Phi).
type Ciphertext struct {
	A ring.Poly
	B ring.Poly
}

// Encrypt encrypts a length-n message polynomial m (coefficients
// interpreted in [0, t)) under sk, using mul as the negacyclic
// multiplier.
func Encrypt(prng sampling.PRNG, mul ring.Multiplier, sk SecretKey, p params.Parameters, m ring.Poly) (Ciphertext, error) {
	if len(m) != len(sk.S) {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: message has %d coefficients, key has %d: %w", len(m), len(sk.S), modarith.ErrInvalidSize)
	}

	uniform, err := sampling.NewUniformSampler(prng, p.Q)
	if err != nil {
		return Ciphertext{}, err
	}
	aCoeffs, err := uniform.ReadPoly(len(sk.S))
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	a := ring.Poly(aCoeffs)

	bounded, err := sampling.NewBoundedSampler(prng, p.NoiseBound)
	if err != nil {
		return Ciphertext{}, err
	}
	eCoeffs, err := bounded.ReadVector(len(sk.S))
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	e := ring.Poly(eCoeffs)

	as, err := mul.Multiply(a, sk.S, p.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: %w", err)
	}

	scaledM := ring.ScalarMul(m, p.Delta, p.Q)
	b, err := ring.Add(as, scaledM, p.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: %w", err)
	}
	b, err = ring.Add(b, e, p.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: encrypt: %w", err)
	}

	return Ciphertext{A: a, B: b}, nil
}

// Decrypt recovers the message polynomial encrypted in ct under sk.
func Decrypt(mul ring.Multiplier, ct Ciphertext, sk SecretKey, p params.Parameters) (ring.Poly, error) {
	if len(ct.A) != len(sk.S) || len(ct.B) != len(sk.S) {
		return nil, fmt.Errorf("rlwe: decrypt: %w", modarith.ErrInvalidSize)
	}

	as, err := mul.Multiply(ct.A, sk.S, p.Q)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}
	d, err := ring.Sub(ct.B, as, p.Q)
	if err != nil {
		return nil, fmt.Errorf("rlwe: decrypt: %w", err)
	}

	centered := ring.CenterRepresentation(d, p.Q)
	out := make(ring.Poly, len(centered))
	for i, c := range centered {
		out[i] = modarith.Modq(modarith.RoundDiv(c, p.Delta), p.T)
	}
	return out, nil
}
