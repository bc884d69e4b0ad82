package rlwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
)

// Evaluator implements RLWE's homomorphic operations: addition,
// subtraction, and scalar multiplication, coefficient-wise on both a and
// b with a final reduction mod q.
type Evaluator struct {
	Params params.Parameters
}

// NewEvaluator returns an Evaluator for the given parameters.
func NewEvaluator(p params.Parameters) Evaluator {
	return Evaluator{Params: p}
}

// Add returns ct1 + ct2.
func (e Evaluator) Add(ct1, ct2 Ciphertext) (Ciphertext, error) {
	a, err := ring.Add(ct1.A, ct2.A, e.Params.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: evaluator add: %w", err)
	}
	b, err := ring.Add(ct1.B, ct2.B, e.Params.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: evaluator add: %w", err)
	}
	return Ciphertext{A: a, B: b}, nil
}

// Sub returns ct1 - ct2.
func (e Evaluator) Sub(ct1, ct2 Ciphertext) (Ciphertext, error) {
	a, err := ring.Sub(ct1.A, ct2.A, e.Params.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: evaluator sub: %w", err)
	}
	b, err := ring.Sub(ct1.B, ct2.B, e.Params.Q)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("rlwe: evaluator sub: %w", err)
	}
	return Ciphertext{A: a, B: b}, nil
}

// ScalarMul returns c*ct.
func (e Evaluator) ScalarMul(ct Ciphertext, c int64) Ciphertext {
	return Ciphertext{
		A: ring.ScalarMul(ct.A, c, e.Params.Q),
		B: ring.ScalarMul(ct.B, c, e.Params.Q),
	}
}

// RawNegacyclicPair is the result of multiplying two RLWE ciphertexts
// component-wise as raw polynomials. It is NOT an RLWE ciphertext of the
// product message — the source's multiply_rlwe computed exactly this and
// called it an RLWE ciphertext, which is incorrect: a1*a2 and b1*b2 are
// degree-2-in-s terms that require relinearisation before they decrypt to
// anything meaningful. This type exists so advanced callers building
// their own relinearisation can get at the raw products; decrypting it
// directly is undefined.
type RawNegacyclicPair struct {
	A2 ring.Poly
	B2 ring.Poly
}

// RawMultiply computes the raw negacyclic product of two RLWE
// ciphertexts: a1*a2 and b1*b2, independently. See RawNegacyclicPair.
func (e Evaluator) RawMultiply(mul ring.Multiplier, ct1, ct2 Ciphertext) (RawNegacyclicPair, error) {
	if len(ct1.A) != len(ct2.A) {
		return RawNegacyclicPair{}, fmt.Errorf("rlwe: raw multiply: %w", modarith.ErrInvalidSize)
	}
	a2, err := mul.Multiply(ct1.A, ct2.A, e.Params.Q)
	if err != nil {
		return RawNegacyclicPair{}, fmt.Errorf("rlwe: raw multiply: %w", err)
	}
	b2, err := mul.Multiply(ct1.B, ct2.B, e.Params.Q)
	if err != nil {
		return RawNegacyclicPair{}, fmt.Errorf("rlwe: raw multiply: %w", err)
	}
	return RawNegacyclicPair{A2: a2, B2: b2}, nil
}
