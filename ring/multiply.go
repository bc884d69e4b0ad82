package ring

import "github.com/dantalion/lhetoy/modarith"

// Multiplier computes the negacyclic product of two length-n polynomials
// modulo q. Implementations must satisfy the convolution identity
// c_k = sum_{i+j=k} a_i*b_j - sum_{i+j=k+n} a_i*b_j (mod q); the contract is
// this mathematical output, not the algorithm used to reach it, so a
// production implementation is free to replace the schoolbook convolution
// below with an NTT-based one as long as it reproduces the same values.
type Multiplier interface {
	Multiply(a, b Poly, q int64) (Poly, error)
}

// Schoolbook is the reference Multiplier: an O(n^2) negacyclic convolution
// computed with a widened accumulator per output coefficient.
type Schoolbook struct{}

// Multiply implements Multiplier.
func (Schoolbook) Multiply(a, b Poly, q int64) (Poly, error) {
	if len(a) != len(b) {
		return nil, modarith.ErrInvalidSize
	}
	n := len(a)
	accs := make([]modarith.Accumulator, n)

	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			idx := i + j
			if idx < n {
				accs[idx].AddProduct(a[i], b[j])
			} else {
				accs[idx-n].SubProduct(a[i], b[j])
			}
		}
	}

	out := make(Poly, n)
	for i := range out {
		out[i] = accs[i].Reduce(q)
	}
	return out, nil
}

// NegacyclicMultiply computes the negacyclic product of a and b modulo q
// using the schoolbook Multiplier. It is the convenience entry point used
// throughout this module; callers needing an NTT-backed multiplier for
// NTT-friendly moduli should use NTT directly.
func NegacyclicMultiply(a, b Poly, q int64) (Poly, error) {
	return Schoolbook{}.Multiply(a, b, q)
}
