// Package lwe implements key generation, encryption, and decryption for
// the scalar Learning-With-Errors scheme: the simplest ciphertext type
// in this module, and the one the rest of the core's ring-based schemes
// generalise.
package lwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/sampling"
)

// SecretKey is a length-k binary vector.
type SecretKey struct {
	S []int64
}

// GenerateSecretKey draws a length-k binary secret key from prng.
func GenerateSecretKey(prng sampling.PRNG, k int) (SecretKey, error) {
	if k < 0 {
		return SecretKey{}, modarith.ErrInvalidSize
	}
	s, err := sampling.NewBinarySampler(prng).ReadVector(k)
	if err != nil {
		return SecretKey{}, fmt.Errorf("lwe: generate secret key: %w", err)
	}
	return SecretKey{S: s}, nil
}

// Ciphertext is a pair (a, b) with a of length k over Z_q and b in Z_q,
// satisfying b = <a,s> + Delta*m + e (mod q) for the secret key s it was
// encrypted under.
type Ciphertext struct {
	A []int64
	B int64
}

// Encrypt encrypts a scalar message m in [0, t) under sk.
func Encrypt(prng sampling.PRNG, sk SecretKey, p params.Parameters, m int64) (Ciphertext, error) {
	if m < 0 || m >= p.T {
		return Ciphertext{}, fmt.Errorf("lwe: message %d outside [0,%d): %w", m, p.T, modarith.ErrInvalidMessage)
	}

	uniform, err := sampling.NewUniformSampler(prng, p.Q)
	if err != nil {
		return Ciphertext{}, err
	}
	a, err := uniform.ReadPoly(len(sk.S))
	if err != nil {
		return Ciphertext{}, fmt.Errorf("lwe: encrypt: %w", err)
	}

	bounded, err := sampling.NewBoundedSampler(prng, p.NoiseBound)
	if err != nil {
		return Ciphertext{}, err
	}
	e, err := bounded.Read()
	if err != nil {
		return Ciphertext{}, fmt.Errorf("lwe: encrypt: %w", err)
	}

	dot, err := modarith.DotProductModQ(a, sk.S, p.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("lwe: encrypt: %w", err)
	}

	b := modarith.Modq(dot+modarith.MulMod(p.Delta, m, p.Q)+e, p.Q)
	return Ciphertext{A: a, B: b}, nil
}

// Decrypt recovers the message encrypted in ct under sk.
func Decrypt(ct Ciphertext, sk SecretKey, p params.Parameters) (int64, error) {
	if len(ct.A) != len(sk.S) {
		return 0, fmt.Errorf("lwe: decrypt: ciphertext has %d coefficients, key has %d: %w", len(ct.A), len(sk.S), modarith.ErrInvalidSize)
	}

	dot, err := modarith.DotProductModQ(ct.A, sk.S, p.Q)
	if err != nil {
		return 0, fmt.Errorf("lwe: decrypt: %w", err)
	}

	d := modarith.CenterRep(modarith.Modq(ct.B-dot, p.Q), p.Q)
	m := modarith.Modq(modarith.RoundDiv(d, p.Delta), p.T)
	return m, nil
}
