// Package modarith implements the centered and non-negative reduction
// arithmetic shared by every scheme in this module, and declares the
// small, closed set of sentinel errors every other package returns.
package modarith

import (
	"errors"
	"math/bits"
)

// ErrInvalidSize is returned when the dimensions of two operands disagree,
// or a ciphertext's k/n disagrees with a key's.
var ErrInvalidSize = errors.New("modarith: invalid size")

// ErrInvalidMessage is returned when a scalar message for LWE falls
// outside [0, t).
var ErrInvalidMessage = errors.New("modarith: invalid message")

// ErrLevelOutOfRange is returned when a level index passed to GLev/GGSW
// decryption is not in [0, l].
var ErrLevelOutOfRange = errors.New("modarith: level out of range")

// Modq returns the unique r in [0, q) with r congruent to x modulo q, for
// any signed input x.
func Modq(x int64, q int64) int64 {
	r := x % q
	if r < 0 {
		r += q
	}
	return r
}

// CenterRep returns the unique r in (-q/2, q/2] with r congruent to x
// modulo q.
func CenterRep(x int64, q int64) int64 {
	r := Modq(x, q)
	if r > q/2 {
		r -= q
	}
	return r
}

// RoundDiv divides centered by delta using round-half-away-from-zero on
// the true real quotient, computed exactly via integer arithmetic rather
// than through a floating-point division. delta must be positive. This
// is the rounding rule every scheme's decryption routine uses to recover
// a message from the centered, noisy multiple of delta it decrypts to.
func RoundDiv(centered, delta int64) int64 {
	if centered >= 0 {
		return (centered + delta/2) / delta
	}
	return (centered - delta/2) / delta
}

// DotProductModQ computes the coefficient-wise product of a and b, sums
// the products in a 128-bit-wide accumulator, and reduces the result
// modulo q. It fails with ErrInvalidSize if a and b have different
// lengths.
func DotProductModQ(a, b []int64, q int64) (int64, error) {
	if len(a) != len(b) {
		return 0, ErrInvalidSize
	}

	var acc Accumulator
	for i := range a {
		acc.AddProduct(a[i], b[i])
	}

	return acc.Reduce(q), nil
}

// MulMod returns a*b reduced modulo q, widening the product through a
// 128-bit intermediate so it is exact for the full signed 64-bit range of
// a and b.
func MulMod(a, b int64, q int64) int64 {
	hi, lo, neg := widenMul(a, b)
	return reduce128(hi, lo, neg, q)
}

// Accumulator sums a sequence of signed 64-bit products in a 128-bit-wide
// signed register, only reducing modulo q once at the end. It is the
// building block shared by DotProductModQ and the ring package's
// negacyclic convolution, both of which need to sum many products before a
// single final reduction.
type Accumulator struct {
	hi, lo uint64
	neg    bool
}

// AddProduct folds a*b into the accumulator.
func (acc *Accumulator) AddProduct(a, b int64) {
	hi, lo, neg := widenMul(a, b)
	acc.hi, acc.lo, acc.neg = foldSign(acc.hi, acc.lo, acc.neg, hi, lo, neg)
}

// SubProduct folds -(a*b) into the accumulator.
func (acc *Accumulator) SubProduct(a, b int64) {
	hi, lo, neg := widenMul(a, b)
	acc.hi, acc.lo, acc.neg = foldSign(acc.hi, acc.lo, acc.neg, hi, lo, !neg)
}

// Reduce returns the accumulator's value reduced modulo q, in [0, q).
func (acc *Accumulator) Reduce(q int64) int64 {
	return reduce128(acc.hi, acc.lo, acc.neg, q)
}

// widenMul returns the magnitude of a*b split into high/low 64-bit words
// plus its sign, treating a and b as signed 64-bit integers.
func widenMul(a, b int64) (hi, lo uint64, neg bool) {
	neg = (a < 0) != (b < 0)
	ua, ub := absU64(a), absU64(b)
	hi, lo = bits.Mul64(ua, ub)
	return
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// foldSign adds a signed (hi2,lo2,neg2) term onto a running signed
// (hi1,lo1,neg1) accumulator and returns the new signed accumulator.
func foldSign(hi1, lo1 uint64, neg1 bool, hi2, lo2 uint64, neg2 bool) (hi, lo uint64, neg bool) {
	if neg1 == neg2 {
		var carry uint64
		lo, carry = bits.Add64(lo1, lo2, 0)
		hi, _ = bits.Add64(hi1, hi2, carry)
		return hi, lo, neg1
	}

	// Different signs: subtract the smaller magnitude from the larger.
	if hi1 > hi2 || (hi1 == hi2 && lo1 >= lo2) {
		var borrow uint64
		lo, borrow = bits.Sub64(lo1, lo2, 0)
		hi, _ = bits.Sub64(hi1, hi2, borrow)
		return hi, lo, neg1
	}
	var borrow uint64
	lo, borrow = bits.Sub64(lo2, lo1, 0)
	hi, _ = bits.Sub64(hi2, hi1, borrow)
	return hi, lo, neg2
}

// reduce128 reduces a signed 128-bit magnitude (hi,lo,neg) modulo q,
// returning a value in [0, q).
func reduce128(hi, lo uint64, neg bool, q int64) int64 {
	uq := uint64(q)
	_, rem := bits.Div64(hi%uq, lo, uq)
	r := int64(rem)
	if neg && r != 0 {
		r = q - r
	}
	return r
}
