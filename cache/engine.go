// Package cache implements a functional set-associative cache simulator. It
// models hits, misses, and replacement only; there is no data storage and no
// timing.
package cache

import "fmt"

// An Outcome is the result of a single cache access.
type Outcome int

// An access either hits or misses.
const (
	Hit Outcome = iota
	Miss
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// An Engine simulates one set-associative cache. It routes each address to
// its set, applies the replacement policy on misses, and aggregates
// statistics. An Engine is not safe for concurrent use; callers that share
// one must serialize access to it.
type Engine struct {
	cacheByteSize    uint64
	blockSize        uint64
	wayAssociativity int
	policy           Policy

	sets  []Set
	stats Stats
}

// Access simulates one memory access and returns whether it hit. On a miss,
// the miss is classified, a victim is evicted when the target set is full,
// and the accessed block becomes resident.
func (e *Engine) Access(addr uint64) Outcome {
	block := addr / e.blockSize
	set := e.sets[block%uint64(len(e.sets))]

	e.stats.Accesses++

	if set.Contains(block) {
		e.stats.Hits++
		set.Visit(block)

		return Hit
	}

	e.stats.Misses++
	e.classifyMiss(set)

	if set.Len() >= e.wayAssociativity {
		set.Evict()
	}

	set.Insert(block)

	return Miss
}

// classifyMiss runs before eviction and insertion. A miss is cold only while
// every set in the whole cache is empty, so only the very first access ever
// counts as cold; a first touch of any other set counts as conflict.
func (e *Engine) classifyMiss(target Set) {
	if e.allSetsEmpty() {
		e.stats.ColdMisses++
	} else if target.Len() >= e.wayAssociativity {
		e.stats.CapacityMisses++
	} else {
		e.stats.ConflictMisses++
	}
}

func (e *Engine) allSetsEmpty() bool {
	for _, s := range e.sets {
		if s.Len() > 0 {
			return false
		}
	}

	return true
}

// Stats returns a copy of the running counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// HitRate returns the hit rate as a percentage. It is 0 before the first
// access.
func (e *Engine) HitRate() float64 {
	if e.stats.Accesses == 0 {
		return 0
	}

	return float64(e.stats.Hits) / float64(e.stats.Accesses) * 100
}

// SetContents returns a snapshot of the blocks resident in one set, in the
// order the set maintains them.
func (e *Engine) SetContents(setID int) []uint64 {
	return e.sets[setID].Blocks()
}

// NumSets returns the number of sets in the cache.
func (e *Engine) NumSets() int {
	return len(e.sets)
}

// BlockSize returns the number of bytes per block.
func (e *Engine) BlockSize() uint64 {
	return e.blockSize
}

// WayAssociativity returns the number of blocks each set can hold.
func (e *Engine) WayAssociativity() int {
	return e.wayAssociativity
}

// CacheByteSize returns the total capacity of the cache in bytes.
func (e *Engine) CacheByteSize() uint64 {
	return e.cacheByteSize
}

// ReplaceStrategy returns the replacement policy of the cache.
func (e *Engine) ReplaceStrategy() Policy {
	return e.policy
}

// BlockNumber returns the block an address belongs to.
func (e *Engine) BlockNumber(addr uint64) uint64 {
	return addr / e.blockSize
}

// SetID returns the set an address maps to.
func (e *Engine) SetID(addr uint64) int {
	return int(e.BlockNumber(addr) % uint64(len(e.sets)))
}

// Reset empties all the sets and zeroes the statistics, keeping the
// configuration.
func (e *Engine) Reset() {
	for i := range e.sets {
		e.sets[i] = NewSet(e.policy)
	}

	e.stats = Stats{}
}
