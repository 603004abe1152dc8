package trace

import (
	"fmt"
	"math/rand"
	"strings"
)

// A Pattern names a synthetic address sequence.
type Pattern int

// The supported synthetic patterns.
const (
	// PatternRandom draws addresses uniformly from [0, 0xFFFF].
	PatternRandom Pattern = iota
	// PatternSequential walks word-sized addresses: 0, 4, 8, ...
	PatternSequential
	// PatternStride2 walks with a stride of two words: 0, 8, 16, ...
	PatternStride2
	// PatternStride4 walks with a stride of four words: 0, 16, 32, ...
	PatternStride4
	// PatternLooping cycles over a 16-address sequential working set.
	PatternLooping
)

// loopLength is the working-set size of the looping pattern.
const loopLength = 16

// ParsePattern converts a pattern name to a Pattern. Names are matched
// case-insensitively.
func ParsePattern(name string) (Pattern, error) {
	switch strings.ToLower(name) {
	case "random":
		return PatternRandom, nil
	case "sequential":
		return PatternSequential, nil
	case "stride-2":
		return PatternStride2, nil
	case "stride-4":
		return PatternStride4, nil
	case "looping":
		return PatternLooping, nil
	default:
		return 0, fmt.Errorf("unknown access pattern %q", name)
	}
}

func (p Pattern) String() string {
	switch p {
	case PatternRandom:
		return "Random"
	case PatternSequential:
		return "Sequential"
	case PatternStride2:
		return "Stride-2"
	case PatternStride4:
		return "Stride-4"
	case PatternLooping:
		return "Looping"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Generate produces count addresses following the pattern.
func Generate(pattern Pattern, count int) []uint64 {
	addrs := make([]uint64, count)

	switch pattern {
	case PatternRandom:
		for i := range addrs {
			addrs[i] = uint64(rand.Intn(0x10000))
		}
	case PatternSequential:
		for i := range addrs {
			addrs[i] = uint64(i) * 4
		}
	case PatternStride2:
		for i := range addrs {
			addrs[i] = uint64(i) * 8
		}
	case PatternStride4:
		for i := range addrs {
			addrs[i] = uint64(i) * 16
		}
	case PatternLooping:
		for i := range addrs {
			addrs[i] = uint64(i%loopLength) * 4
		}
	default:
		panic("unknown access pattern " + pattern.String())
	}

	return addrs
}
