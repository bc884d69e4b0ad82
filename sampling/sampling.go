package sampling

import (
	"encoding/binary"
	"fmt"

	"github.com/dantalion/lhetoy/modarith"
)

// UniformSampler draws coefficients uniformly from [0, q) via rejection
// sampling against the smallest bitmask covering q, the same pattern
// ring.sampler_uniform.go uses to avoid the modulo bias a plain
// "read bytes mod q" draw would introduce.
type UniformSampler struct {
	prng PRNG
	q    int64
	mask uint64
}

// NewUniformSampler returns a UniformSampler reading from prng and
// producing values in [0, q).
func NewUniformSampler(prng PRNG, q int64) (*UniformSampler, error) {
	if q <= 0 {
		return nil, modarith.ErrInvalidSize
	}
	return &UniformSampler{prng: prng, q: q, mask: maskFor(uint64(q - 1))}, nil
}

// Read draws a single uniform value in [0, q).
func (s *UniformSampler) Read() (int64, error) {
	var buf [8]byte
	for {
		if _, err := s.prng.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("sampling: uniform read: %w", err)
		}
		candidate := binary.LittleEndian.Uint64(buf[:]) & s.mask
		if candidate < uint64(s.q) {
			return int64(candidate), nil
		}
	}
}

// ReadPoly fills a length-n slice with independent uniform draws in
// [0, q).
func (s *UniformSampler) ReadPoly(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := s.Read()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BinarySampler draws coefficients uniformly from {0, 1}, the secret-key
// distribution spec §4.3 specifies for every scheme in this module.
type BinarySampler struct {
	prng PRNG
}

// NewBinarySampler returns a BinarySampler reading from prng.
func NewBinarySampler(prng PRNG) *BinarySampler {
	return &BinarySampler{prng: prng}
}

// Read draws a single bit as an int64 (0 or 1).
func (s *BinarySampler) Read() (int64, error) {
	var b [1]byte
	if _, err := s.prng.Read(b[:]); err != nil {
		return 0, fmt.Errorf("sampling: binary read: %w", err)
	}
	return int64(b[0] & 1), nil
}

// ReadVector fills a length-n slice with independent binary draws.
func (s *BinarySampler) ReadVector(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := s.Read()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BoundedSampler draws coefficients uniformly from the centered range
// [-bound, bound], the error (noise) distribution spec §4.3 specifies.
// It rejection-samples an unsigned draw over [0, 2*bound] and recenters,
// so the distribution stays exactly uniform instead of merely
// approximately so.
type BoundedSampler struct {
	prng  PRNG
	bound int64
	width int64 // 2*bound + 1
	mask  uint64
}

// NewBoundedSampler returns a BoundedSampler drawing from [-bound, bound].
func NewBoundedSampler(prng PRNG, bound int64) (*BoundedSampler, error) {
	if bound < 0 {
		return nil, modarith.ErrInvalidSize
	}
	width := 2*bound + 1
	return &BoundedSampler{prng: prng, bound: bound, width: width, mask: maskFor(uint64(width - 1))}, nil
}

// Read draws a single value in [-bound, bound].
func (s *BoundedSampler) Read() (int64, error) {
	if s.bound == 0 {
		return 0, nil
	}
	var buf [8]byte
	for {
		if _, err := s.prng.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("sampling: bounded read: %w", err)
		}
		candidate := binary.LittleEndian.Uint64(buf[:]) & s.mask
		if candidate < uint64(s.width) {
			return int64(candidate) - s.bound, nil
		}
	}
}

// ReadVector fills a length-n slice with independent bounded draws.
func (s *BoundedSampler) ReadVector(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := s.Read()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// maskFor returns the smallest all-ones bitmask covering max, i.e. the
// smallest 2^k-1 >= max.
func maskFor(max uint64) uint64 {
	mask := uint64(1)
	for mask < max {
		mask = mask<<1 | 1
	}
	return mask
}
