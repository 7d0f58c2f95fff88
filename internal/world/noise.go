package world

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultWhiteLevel splits noise evenly between empty and blocked cells.
const DefaultWhiteLevel = 0.5

// Streams caches one pseudo-random stream per seed string. Asking twice for
// the same seed continues the same stream rather than restarting it.
type Streams struct {
	mu    sync.Mutex
	cache map[string]*rand.Rand
}

// NewStreams creates an empty stream cache.
func NewStreams() *Streams {
	return &Streams{cache: make(map[string]*rand.Rand)}
}

// stream returns the cached stream for seed, creating it on first use.
// An empty seed gets an entropy-keyed stream.
func (s *Streams) stream(seed string) *rand.Rand {
	if r, ok := s.cache[seed]; ok {
		return r
	}
	var k1, k2 uint64
	if seed == "" {
		var buf [16]byte
		_, _ = crand.Read(buf[:])
		k1 = binary.LittleEndian.Uint64(buf[:8])
		k2 = binary.LittleEndian.Uint64(buf[8:])
	} else {
		k1 = xxhash.Sum64String(seed)
		k2 = xxhash.Sum64String("dungeonle/" + seed)
	}
	r := rand.New(rand.NewPCG(k1, k2))
	s.cache[seed] = r
	return r
}

// Float64 draws the next value in [0, 1) from the stream keyed by seed.
func (s *Streams) Float64(seed string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream(seed).Float64()
}

// Noise draws size cells from the stream keyed by seed. A draw at or above
// whiteLevel yields an empty cell, anything below yields a blocked one.
func (s *Streams) Noise(size int, whiteLevel float64, seed string) ([]Tile, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: noise size %d", ErrInvalidDimensions, size)
	}
	if whiteLevel < 0 || whiteLevel > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWhiteLevel, whiteLevel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.stream(seed)
	row := make([]Tile, size)
	for i := range row {
		if r.Float64() >= whiteLevel {
			row[i] = TileEmpty
		} else {
			row[i] = TileBlocked
		}
	}
	return row, nil
}
