package tinyrng

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// SeedSource supplies 64-bit seeds for the generator constructors.
type SeedSource interface {
	Seed() uint64
}

// FixedSeed always returns the same seed. Use it for reproducible runs and tests.
type FixedSeed uint64

func (s FixedSeed) Seed() uint64 { return uint64(s) }

// ClockSeed derives seeds from the wall clock (see SeedFromClock).
// Two calls within the clock's resolution return the same seed.
type ClockSeed struct{}

func (ClockSeed) Seed() uint64 { return SeedFromClock() }

// EntropySeed reads seeds from the operating system's entropy source (see SeedFromEntropy).
type EntropySeed struct{}

func (EntropySeed) Seed() uint64 { return SeedFromEntropy() }

// SeedFromClock returns a non-deterministic seed derived from the current time,
// in microseconds since the Unix epoch. On Windows the high-resolution
// performance counter is mixed in as well.
func SeedFromClock() uint64 {
	return clockSeed()
}

// entropyPool reads random bytes in batches to reduce the number of calls to
// crypto/rand.Reader (an OS call). It only ever produces seeds: the generators
// seeded from it are still not cryptographically secure.
type entropyPool struct {
	mu     sync.Mutex
	bufPos uint32
	buf    []byte
}

const entropyPoolSize = 512

var entropy = &entropyPool{bufPos: entropyPoolSize, buf: make([]byte, entropyPoolSize)}

// next returns 8 fresh bytes, refilling the buffer when they are used up.
func (p *entropyPool) next() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bufPos+8 > uint32(len(p.buf)) {
		if _, err := rand.Read(p.buf); err != nil {
			panic(err)
		}
		p.bufPos = 0
	}
	v := binary.LittleEndian.Uint64(p.buf[p.bufPos : p.bufPos+8])
	p.bufPos += 8
	return v
}

// SeedFromEntropy returns a seed read from crypto/rand. It is safe for
// concurrent use. It panics if the operating system cannot supply entropy.
func SeedFromEntropy() uint64 {
	return entropy.next()
}
