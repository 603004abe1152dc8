package cache

import (
	"fmt"
	"strings"
)

// A Policy decides which resident block a full set evicts.
type Policy int

// The supported replacement policies.
const (
	LRU Policy = iota
	FIFO
	Random
)

// ParsePolicy converts a policy name to a Policy. Names are matched
// case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "lru":
		return LRU, nil
	case "fifo":
		return FIFO, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown replacement policy %q", name)
	}
}

func (p Policy) String() string {
	switch p {
	case LRU:
		return "LRU"
	case FIFO:
		return "FIFO"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
