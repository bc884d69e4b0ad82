package ring

import (
	"fmt"
	"math/big"

	"github.com/dantalion/lhetoy/modarith"
)

// NTT is an NTT-backed Multiplier, the production alternative the spec's
// design notes (§9) call for alongside the Schoolbook reference: it
// computes the same negacyclic convolution in O(n log n) instead of
// O(n^2) whenever q is NTT-friendly for the given degree (q prime and
// q = 1 mod 2n). Multiply reports an error instead of silently falling
// back to schoolbook when the modulus does not support it, because a
// pluggable Multiplier is expected to either honor the convolution
// identity or refuse, never approximate it.
type NTT struct{}

// Multiply implements Multiplier. It requires n to be a power of two and q
// to be an NTT-friendly prime for that degree (mirroring the constraint
// the teacher's own ring.GenerateNTTPrimes enforces for its RNS moduli).
func (NTT) Multiply(a, b Poly, q int64) (Poly, error) {
	if len(a) != len(b) {
		return nil, modarith.ErrInvalidSize
	}
	n := len(a)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("ring: NTT requires a power-of-two degree, got %d", n)
	}
	if !isNTTFriendly(q, n) {
		return nil, fmt.Errorf("ring: modulus %d is not NTT-friendly for degree %d", q, n)
	}

	psi, err := primitive2NthRoot(q, n)
	if err != nil {
		return nil, err
	}

	psiPow := make([]int64, n)
	psiInvPow := make([]int64, n)
	psiPow[0] = 1
	psiInv := modInverse(psi, q)
	psiInvPow[0] = 1
	for i := 1; i < n; i++ {
		psiPow[i] = modarith.MulMod(psiPow[i-1], psi, q)
		psiInvPow[i] = modarith.MulMod(psiInvPow[i-1], psiInv, q)
	}

	w := modarith.MulMod(psi, psi, q)
	wInv := modInverse(w, q)

	aT := make([]int64, n)
	bT := make([]int64, n)
	for i := 0; i < n; i++ {
		aT[i] = modarith.MulMod(a[i], psiPow[i], q)
		bT[i] = modarith.MulMod(b[i], psiPow[i], q)
	}

	A := cyclicNTT(aT, w, q)
	B := cyclicNTT(bT, w, q)

	C := make([]int64, n)
	for i := range C {
		C[i] = modarith.MulMod(A[i], B[i], q)
	}

	c := cyclicNTT(C, wInv, q)
	nInv := modInverse(int64(n), q)

	out := make(Poly, n)
	for i := 0; i < n; i++ {
		out[i] = modarith.MulMod(modarith.MulMod(c[i], nInv, q), psiInvPow[i], q)
	}
	return out, nil
}

// cyclicNTT computes the length-n (power-of-two) cyclic NTT of a with
// respect to the n-th root of unity w, via the classic radix-2
// decimation-in-time recursion.
func cyclicNTT(a []int64, w int64, q int64) []int64 {
	n := len(a)
	if n == 1 {
		return []int64{a[0]}
	}

	even := make([]int64, n/2)
	odd := make([]int64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}

	w2 := modarith.MulMod(w, w, q)
	evenT := cyclicNTT(even, w2, q)
	oddT := cyclicNTT(odd, w2, q)

	out := make([]int64, n)
	wi := int64(1)
	for i := 0; i < n/2; i++ {
		t := modarith.MulMod(wi, oddT[i], q)
		out[i] = modarith.Modq(evenT[i]+t, q)
		out[i+n/2] = modarith.Modq(evenT[i]-t, q)
		wi = modarith.MulMod(wi, w, q)
	}
	return out
}

// isNTTFriendly reports whether q is prime and q = 1 (mod 2n), the
// standard precondition for a length-n negacyclic NTT to exist modulo q.
func isNTTFriendly(q int64, n int) bool {
	if q <= 1 {
		return false
	}
	if !big.NewInt(q).ProbablyPrime(20) {
		return false
	}
	return (q-1)%int64(2*n) == 0
}

// primitive2NthRoot searches for a primitive 2n-th root of unity modulo q,
// i.e. a psi with psi^n = q-1 (mod q) and psi != 1.
func primitive2NthRoot(q int64, n int) (int64, error) {
	exp := (q - 1) / int64(2*n)
	for g := int64(2); g < q; g++ {
		psi := modPow(g, exp, q)
		if psi == 1 {
			continue
		}
		if modPow(psi, int64(n), q) == q-1 {
			return psi, nil
		}
	}
	return 0, fmt.Errorf("ring: no primitive 2*%d-th root of unity found modulo %d", n, q)
}

func modPow(base, exp, q int64) int64 {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), big.NewInt(q)).Int64()
}

func modInverse(a, q int64) int64 {
	return new(big.Int).ModInverse(big.NewInt(a), big.NewInt(q)).Int64()
}
