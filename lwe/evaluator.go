package lwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
)

// Evaluator implements the homomorphic operations available on LWE
// ciphertexts: addition, subtraction, and scalar multiplication, all
// coefficient-wise with a final reduction mod q. It carries no state
// beyond the parameter set operands must agree on.
type Evaluator struct {
	Params params.Parameters
}

// NewEvaluator returns an Evaluator for the given parameters.
func NewEvaluator(p params.Parameters) Evaluator {
	return Evaluator{Params: p}
}

// Add returns ct1 + ct2.
func (e Evaluator) Add(ct1, ct2 Ciphertext) (Ciphertext, error) {
	return e.combine(ct1, ct2, 1)
}

// Sub returns ct1 - ct2.
func (e Evaluator) Sub(ct1, ct2 Ciphertext) (Ciphertext, error) {
	return e.combine(ct1, ct2, -1)
}

func (e Evaluator) combine(ct1, ct2 Ciphertext, sign int64) (Ciphertext, error) {
	if len(ct1.A) != len(ct2.A) {
		return Ciphertext{}, fmt.Errorf("lwe: evaluator: %w", modarith.ErrInvalidSize)
	}
	q := e.Params.Q
	a := make([]int64, len(ct1.A))
	for i := range a {
		a[i] = modarith.Modq(ct1.A[i]+sign*ct2.A[i], q)
	}
	b := modarith.Modq(ct1.B+sign*ct2.B, q)
	return Ciphertext{A: a, B: b}, nil
}

// ScalarMul returns c*ct.
func (e Evaluator) ScalarMul(ct Ciphertext, c int64) Ciphertext {
	q := e.Params.Q
	a := make([]int64, len(ct.A))
	for i := range a {
		a[i] = modarith.MulMod(ct.A[i], c, q)
	}
	b := modarith.MulMod(ct.B, c, q)
	return Ciphertext{A: a, B: b}
}
