package glwe

import (
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
	"github.com/dantalion/lhetoy/params"
	"github.com/dantalion/lhetoy/ring"
)

// Evaluator implements GLWE's homomorphic operations: addition,
// subtraction, and scalar multiplication, coefficient-wise on b and every
// dTilde component with a final reduction mod q.
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
	if len(ct1.DTilde) != len(ct2.DTilde) {
		return Ciphertext{}, fmt.Errorf("glwe: evaluator: %w", modarith.ErrInvalidSize)
	}
	q := e.Params.Q

	var b ring.Poly
	var err error
	if sign == 1 {
		b, err = ring.Add(ct1.B, ct2.B, q)
	} else {
		b, err = ring.Sub(ct1.B, ct2.B, q)
	}
	if err != nil {
		return Ciphertext{}, fmt.Errorf("glwe: evaluator: %w", err)
	}

	dTilde := make([]ring.Poly, len(ct1.DTilde))
	for i := range dTilde {
		if sign == 1 {
			dTilde[i], err = ring.Add(ct1.DTilde[i], ct2.DTilde[i], q)
		} else {
			dTilde[i], err = ring.Sub(ct1.DTilde[i], ct2.DTilde[i], q)
		}
		if err != nil {
			return Ciphertext{}, fmt.Errorf("glwe: evaluator: %w", err)
		}
	}

	return Ciphertext{B: b, DTilde: dTilde}, nil
}

// ScalarMul returns c*ct.
func (e Evaluator) ScalarMul(ct Ciphertext, c int64) Ciphertext {
	q := e.Params.Q
	dTilde := make([]ring.Poly, len(ct.DTilde))
	for i := range dTilde {
		dTilde[i] = ring.ScalarMul(ct.DTilde[i], c, q)
	}
	return Ciphertext{B: ring.ScalarMul(ct.B, c, q), DTilde: dTilde}
}
