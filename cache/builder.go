package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by Build when a cache parameter is not
// positive.
var ErrInvalidConfiguration = errors.New("invalid cache configuration")

// KB is two to the power of 10 bytes.
const KB = 1024

// Builder can build cache simulation engines.
type Builder struct {
	cacheByteSize    uint64
	blockSize        uint64
	wayAssociativity int
	replaceStrategy  Policy
}

// MakeBuilder creates a builder with the default configuration: a 1 KB,
// 4-way LRU cache with 64-byte blocks.
func MakeBuilder() Builder {
	return Builder{
		cacheByteSize:    1 * KB,
		blockSize:        64,
		wayAssociativity: 4,
		replaceStrategy:  LRU,
	}
}

// WithCacheByteSize sets the total capacity of the cache in bytes.
func (b Builder) WithCacheByteSize(n uint64) Builder {
	b.cacheByteSize = n
	return b
}

// WithBlockSize sets the number of bytes per block.
func (b Builder) WithBlockSize(n uint64) Builder {
	b.blockSize = n
	return b
}

// WithWayAssociativity sets the number of blocks per set.
func (b Builder) WithWayAssociativity(n int) Builder {
	b.wayAssociativity = n
	return b
}

// WithReplaceStrategy sets the replacement policy.
func (b Builder) WithReplaceStrategy(p Policy) Builder {
	b.replaceStrategy = p
	return b
}

// Build validates the configuration and builds an engine with all sets empty
// and all counters zero.
func (b Builder) Build() (*Engine, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	numSets := b.cacheByteSize / (b.blockSize * uint64(b.wayAssociativity))
	if numSets < 1 {
		numSets = 1
	}

	e := &Engine{
		cacheByteSize:    b.cacheByteSize,
		blockSize:        b.blockSize,
		wayAssociativity: b.wayAssociativity,
		policy:           b.replaceStrategy,
		sets:             make([]Set, numSets),
	}
	e.Reset()

	return e, nil
}

func (b Builder) validate() error {
	if b.cacheByteSize == 0 {
		return fmt.Errorf("%w: cache byte size must be positive",
			ErrInvalidConfiguration)
	}

	if b.blockSize == 0 {
		return fmt.Errorf("%w: block size must be positive",
			ErrInvalidConfiguration)
	}

	if b.wayAssociativity <= 0 {
		return fmt.Errorf("%w: way associativity must be positive, got %d",
			ErrInvalidConfiguration, b.wayAssociativity)
	}

	return nil
}
