package cache

import "math/rand"

// A Set is a group of block slots that a range of block numbers maps to. The
// ordering a Set maintains over its resident blocks depends on the
// replacement policy: recency order for LRU, insertion order for FIFO, no
// order for Random.
type Set interface {
	// Contains reports whether the block is resident in the set.
	Contains(block uint64) bool

	// Visit marks the block as just used. The block must be resident in the
	// set. Policies that do not track recency ignore the call.
	Visit(block uint64)

	// Insert adds a block to the set. The block must not already be
	// resident. The caller evicts first when the set is at capacity.
	Insert(block uint64)

	// Evict removes one resident block chosen by the replacement policy and
	// returns it. The second return value is false when the set is empty.
	Evict() (uint64, bool)

	// Len returns the number of resident blocks.
	Len() int

	// Blocks returns a snapshot of the resident blocks in the order the set
	// maintains them.
	Blocks() []uint64
}

// NewSet creates an empty set that evicts according to the given policy.
func NewSet(policy Policy) Set {
	switch policy {
	case LRU:
		return &lruSet{}
	case FIFO:
		return &fifoSet{}
	case Random:
		return &randomSet{}
	default:
		panic("unknown replacement policy " + policy.String())
	}
}

// An lruSet keeps blocks in recency order, least recently used first.
type lruSet struct {
	blocks []uint64
}

func (s *lruSet) Contains(block uint64) bool {
	return indexOf(s.blocks, block) >= 0
}

// Visit moves the block to the end of the recency queue.
func (s *lruSet) Visit(block uint64) {
	i := indexOf(s.blocks, block)
	if i < 0 {
		panic("visiting a block that is not resident")
	}

	s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
	s.blocks = append(s.blocks, block)
}

func (s *lruSet) Insert(block uint64) {
	s.blocks = append(s.blocks, block)
}

func (s *lruSet) Evict() (uint64, bool) {
	if len(s.blocks) == 0 {
		return 0, false
	}

	victim := s.blocks[0]
	s.blocks = s.blocks[1:]

	return victim, true
}

func (s *lruSet) Len() int {
	return len(s.blocks)
}

func (s *lruSet) Blocks() []uint64 {
	return snapshot(s.blocks)
}

// A fifoSet keeps blocks in insertion order, oldest first.
type fifoSet struct {
	blocks []uint64
}

func (s *fifoSet) Contains(block uint64) bool {
	return indexOf(s.blocks, block) >= 0
}

func (s *fifoSet) Visit(block uint64) {
}

func (s *fifoSet) Insert(block uint64) {
	s.blocks = append(s.blocks, block)
}

func (s *fifoSet) Evict() (uint64, bool) {
	if len(s.blocks) == 0 {
		return 0, false
	}

	victim := s.blocks[0]
	s.blocks = s.blocks[1:]

	return victim, true
}

func (s *fifoSet) Len() int {
	return len(s.blocks)
}

func (s *fifoSet) Blocks() []uint64 {
	return snapshot(s.blocks)
}

// A randomSet keeps blocks in storage order and evicts a uniformly random
// resident block.
type randomSet struct {
	blocks []uint64
}

func (s *randomSet) Contains(block uint64) bool {
	return indexOf(s.blocks, block) >= 0
}

func (s *randomSet) Visit(block uint64) {
}

func (s *randomSet) Insert(block uint64) {
	s.blocks = append(s.blocks, block)
}

func (s *randomSet) Evict() (uint64, bool) {
	if len(s.blocks) == 0 {
		return 0, false
	}

	i := rand.Intn(len(s.blocks))
	victim := s.blocks[i]
	s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)

	return victim, true
}

func (s *randomSet) Len() int {
	return len(s.blocks)
}

func (s *randomSet) Blocks() []uint64 {
	return snapshot(s.blocks)
}

func indexOf(blocks []uint64, block uint64) int {
	for i, b := range blocks {
		if b == block {
			return i
		}
	}

	return -1
}

func snapshot(blocks []uint64) []uint64 {
	out := make([]uint64, len(blocks))
	copy(out, blocks)

	return out
}
