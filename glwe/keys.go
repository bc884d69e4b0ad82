// Package glwe implements the module-LWE generalisation of RLWE: a
// secret key made of k independent polynomials, a derived public key,
// and encryption/decryption under that public key.
package glwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
	"github.com/dantalion/lhetoy/sampling"
)

// SecretKey is k independent binary polynomials of length n.
type SecretKey struct {
	S []ring.Poly
}

// GenerateSecretKey draws k independent length-n binary polynomials from
// prng.
func GenerateSecretKey(prng sampling.PRNG, k, n int) (SecretKey, error) {
	if k < 0 || n <= 0 {
		return SecretKey{}, modarith.ErrInvalidSize
	}
	binary := sampling.NewBinarySampler(prng)
	s := make([]ring.Poly, k)
	for i := range s {
		coeffs, err := binary.ReadVector(n)
		if err != nil {
			return SecretKey{}, fmt.Errorf("glwe: generate secret key: %w", err)
		}
		s[i] = ring.Poly(coeffs)
	}
	return SecretKey{S: s}, nil
}

// PublicKey is a polynomial pk1 and a sequence of k polynomials pk2,
// satisfying pk1 = sum_i pk2_i*s_i + e_pk (mod q).
type PublicKey struct {
	Pk1 ring.Poly
	Pk2 []ring.Poly
}

// GeneratePublicKey derives the GLWE public key for sk: pk2 drawn
// uniform, a noise polynomial e with coefficients in [-B,B], and
// pk1 = sum_i pk2_i*s_i + e (mod q) via mul.
func GeneratePublicKey(prng sampling.PRNG, mul ring.Multiplier, sk SecretKey, p params.Parameters) (PublicKey, error) {
	uniform, err := sampling.NewUniformSampler(prng, p.Q)
	if err != nil {
		return PublicKey{}, err
	}
	bounded, err := sampling.NewBoundedSampler(prng, p.NoiseBound)
	if err != nil {
		return PublicKey{}, err
	}

	pk2 := make([]ring.Poly, len(sk.S))
	acc := make(ring.Poly, p.N)
	for i := range sk.S {
		coeffs, err := uniform.ReadPoly(p.N)
		if err != nil {
			return PublicKey{}, fmt.Errorf("glwe: generate public key: %w", err)
		}
		pk2[i] = ring.Poly(coeffs)

		term, err := mul.Multiply(pk2[i], sk.S[i], p.Q)
		if err != nil {
			return PublicKey{}, fmt.Errorf("glwe: generate public key: %w", err)
		}
		acc, err = ring.Add(acc, term, p.Q)
		if err != nil {
			return PublicKey{}, fmt.Errorf("glwe: generate public key: %w", err)
		}
	}

	eCoeffs, err := bounded.ReadVector(p.N)
	if err != nil {
		return PublicKey{}, fmt.Errorf("glwe: generate public key: %w", err)
	}
	pk1, err := ring.Add(acc, ring.Poly(eCoeffs), p.Q)
	if err != nil {
		return PublicKey{}, fmt.Errorf("glwe: generate public key: %w", err)
	}

	return PublicKey{Pk1: pk1, Pk2: pk2}, nil
}
