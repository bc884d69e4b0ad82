// Package sampling implements the uniform, binary, and bounded-uniform
// distributions every scheme in this module draws randomness from, plus
// the process-level pseudorandom generator those distributions read
// bytes from.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is the interface every sampler in this package reads randomness
// from.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG wraps crypto/rand.Reader. It is the cryptographic
// generator spec §4.3 requires implementers substitute in for real
// deployment; every call is safe to use concurrently.
type ThreadSafePRNG struct{}

// NewThreadSafePRNG returns a new ThreadSafePRNG.
func NewThreadSafePRNG() *ThreadSafePRNG {
	return &ThreadSafePRNG{}
}

// Read implements PRNG.
func (*ThreadSafePRNG) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// KeyedPRNG is a deterministic generator built on the blake2b extendable
// output function, seeded from a fixed key. Two KeyedPRNGs created with
// the same key produce byte-for-byte identical streams, which is what
// makes correctness tests replayable.
//
// WARNING: KeyedPRNG must not be called concurrently by multiple
// goroutines — doing so makes the byte stream depend on scheduling order,
// defeating the determinism this type exists to provide. Use
// ThreadSafePRNG (or one KeyedPRNG per goroutine) for concurrent callers.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG seeded with key. A nil key is treated
// as an empty key and is NOT suitable for cryptographic use — only for
// deterministic test replay.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedPRNG{key: k, xof: xof}, nil
}

// Key returns a copy of the seed used to construct the generator, which
// can be fed back into NewKeyedPRNG to reproduce the same byte stream.
func (p *KeyedPRNG) Key() []byte {
	k := make([]byte, len(p.key))
	copy(k, p.key)
	return k
}

// Read implements PRNG.
func (p *KeyedPRNG) Read(sum []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.xof.Read(sum)
}

// Reset rewinds the generator to its initial state.
func (p *KeyedPRNG) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.xof.Reset()
}

var (
	defaultMu   sync.Mutex
	defaultPRNG PRNG
)

// Default returns the process-level generator spec §4.3 and §5 describe:
// a single generator, seeded once from a high-resolution clock reading at
// first use, shared by every sampling call that does not bring its own
// generator. Access is serialized by an internal mutex, satisfying the
// mutual-exclusion requirement of spec §5 — callers never need to
// synchronize around it themselves, but a caller wanting reproducible
// output (e.g. for tests) should construct its own KeyedPRNG instead of
// relying on this one.
//
// For a cryptographic deployment this default MUST be replaced with a
// caller-supplied ThreadSafePRNG: hashing a clock reading is sufficient
// entropy for correctness testing, not for security.
func Default() PRNG {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPRNG == nil {
		defaultPRNG = newClockSeededPRNG()
	}
	return defaultPRNG
}

// newClockSeededPRNG hashes a high-resolution clock reading with blake3
// into a 32-byte key and uses it to seed a KeyedPRNG. This matches spec
// §4.3's "process-level pseudorandom generator seeded from a
// high-resolution clock at first use" literally, while avoiding a bare
// unseeded or counter-based generator.
func newClockSeededPRNG() PRNG {
	var clockBytes [8]byte
	binary.LittleEndian.PutUint64(clockBytes[:], uint64(time.Now().UnixNano()))

	hasher := blake3.New()
	hasher.Write(clockBytes[:])
	seed := hasher.Sum(nil)

	prng, err := NewKeyedPRNG(seed)
	if err != nil {
		// blake2b.NewXOF only fails for an oversized key; our key is a
		// fixed 32 bytes, so this is unreachable.
		panic(err)
	}
	return &lockingPRNG{inner: prng}
}

// lockingPRNG adds a second layer of mutual exclusion around a PRNG
// (KeyedPRNG already serializes its own Read, so this is a belt-and-braces
// wrapper documenting that the default generator is meant to be shared
// across goroutines).
type lockingPRNG struct {
	mu    sync.Mutex
	inner PRNG
}

func (l *lockingPRNG) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Read(p)
}
