// Package ring implements negacyclic polynomial arithmetic over the ring
// Z_q[X]/(X^n+1), the ambient ring every ciphertext type in this module is
// built on top of.
package ring

import (
	"golang.org/x/exp/slices"

	"github.com/dantalion/lhetoy/modarith"
)

// Poly is an ordered sequence of n signed integers in [0, q), representing
// the coefficients of X^0..X^(n-1). There is no trailing-zero
// normalisation: a Poly in this package always has length exactly n.
type Poly []int64

// NewPoly returns a zero polynomial of length n.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// IsEqual compares p and other first by length, then coefficient-wise.
func (p Poly) IsEqual(other Poly) bool {
	return slices.Equal(p, other)
}

// Add returns p1+p2 reduced modulo q, coefficient-wise. Fails with
// ErrInvalidSize if the operands have different lengths.
func Add(p1, p2 Poly, q int64) (Poly, error) {
	if len(p1) != len(p2) {
		return nil, modarith.ErrInvalidSize
	}
	out := make(Poly, len(p1))
	for i := range p1 {
		out[i] = modarith.Modq(p1[i]+p2[i], q)
	}
	return out, nil
}

// Sub returns p1-p2 reduced modulo q, coefficient-wise. Fails with
// ErrInvalidSize if the operands have different lengths.
func Sub(p1, p2 Poly, q int64) (Poly, error) {
	if len(p1) != len(p2) {
		return nil, modarith.ErrInvalidSize
	}
	out := make(Poly, len(p1))
	for i := range p1 {
		out[i] = modarith.Modq(p1[i]-p2[i], q)
	}
	return out, nil
}

// Neg returns the additive inverse of p, coefficient-wise, modulo q.
func Neg(p Poly, q int64) Poly {
	out := make(Poly, len(p))
	for i := range p {
		out[i] = modarith.Modq(-p[i], q)
	}
	return out
}

// ScalarMul returns c*p reduced modulo q, coefficient-wise.
func ScalarMul(p Poly, c int64, q int64) Poly {
	out := make(Poly, len(p))
	for i := range p {
		out[i] = modarith.MulMod(p[i], c, q)
	}
	return out
}

// CenterRepresentation returns a companion length-n signed-integer vector,
// applying modarith.CenterRep coefficient-wise.
func CenterRepresentation(p Poly, q int64) []int64 {
	out := make([]int64, len(p))
	for i := range p {
		out[i] = modarith.CenterRep(p[i], q)
	}
	return out
}
