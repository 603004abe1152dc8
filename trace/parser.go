// Package trace supplies the address sequences a cache simulation consumes,
// either parsed from a trace file or generated from a synthetic pattern.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrTraceParse is returned when a trace file contains a line that is not a
// valid hexadecimal address.
var ErrTraceParse = errors.New("trace parse error")

// ParseFile reads a trace file and returns the addresses in file order. The
// format is one hexadecimal address per line, without a 0x prefix; blank
// lines are ignored. Any invalid line aborts the whole load and no addresses
// are returned.
func ParseFile(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	addrs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return addrs, nil
}

// Parse reads a trace from r. See ParseFile for the format.
func Parse(r io.Reader) ([]uint64, error) {
	var addrs []uint64

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		addr, err := strconv.ParseUint(line, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not a hexadecimal "+
				"address", ErrTraceParse, lineNum, line)
		}

		addrs = append(addrs, addr)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return addrs, nil
}
