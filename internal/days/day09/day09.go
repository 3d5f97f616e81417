// Package day09 solves Disk Fragmenter: compact a dense disk map by
// moving file blocks (part 1) or whole files (part 2) into free
// space, then checksum the layout.
package day09

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 9 with the harness.
func Solution() solver.Solution {
	return solver.New(9, parse, part1, part2)
}

// span is a run of blocks belonging to one file. Files keep their
// original disk order in the parsed slice; gaps are implied by the
// space between consecutive spans.
type span struct {
	id    int
	start int
	size  int
}

func parse(input string) ([]span, error) {
	var files []span
	next := 0
	isFile := true
	for _, ch := range strings.TrimSpace(input) {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("%q is not a digit", ch)
		}
		size := int(ch - '0')
		if isFile {
			files = append(files, span{id: len(files), start: next, size: size})
		}
		next += size
		isFile = !isFile
	}
	return files, nil
}

// checksum sums id*position over a span's blocks.
func (s span) checksum() int64 {
	// start + (start+1) + ... + (start+size-1)
	positions := int64(s.size)*int64(s.start) + int64(s.size)*int64(s.size-1)/2
	return int64(s.id) * positions
}

// part1 moves individual blocks from the end of the disk into the
// leftmost gaps. Spans are consumed from the right and split to fit.
func part1(files []span) string {
	remaining := make([]span, len(files))
	copy(remaining, files)
	var total int64
	next := 0 // next address to fill
	for i := 0; i < len(remaining); i++ {
		f := remaining[i]
		// Fill the gap before f with blocks pulled from the tail.
		for next < f.start && i < len(remaining)-1 {
			tail := &remaining[len(remaining)-1]
			moved := min(f.start-next, tail.size)
			total += span{id: tail.id, start: next, size: moved}.checksum()
			next += moved
			tail.size -= moved
			if tail.size == 0 {
				remaining = remaining[:len(remaining)-1]
			}
		}
		if i >= len(remaining) {
			break
		}
		f = remaining[i]
		if f.start > next {
			// The tail file itself slides left into the last gap.
			f.start = next
		}
		total += f.checksum()
		next = f.start + f.size
	}
	return strconv.FormatInt(total, 10)
}

// part2 moves each whole file, highest id first, into the leftmost
// gap that fits and lies left of the file. Files that don't fit stay.
func part2(files []span) string {
	layout := make([]span, len(files))
	copy(layout, files)
	for id := len(layout) - 1; id >= 0; id-- {
		// Locate the file with this id; earlier moves keep the
		// slice sorted by start, so search for it.
		idx := -1
		for i := range layout {
			if layout[i].id == id {
				idx = i
				break
			}
		}
		file := layout[idx]
		for i := 0; i < idx; i++ {
			gapStart := layout[i].start + layout[i].size
			gapEnd := layout[i+1].start
			if gapEnd-gapStart >= file.size {
				file.start = gapStart
				copy(layout[i+2:idx+1], layout[i+1:idx])
				layout[i+1] = file
				break
			}
		}
	}
	var total int64
	for _, f := range layout {
		total += f.checksum()
	}
	return strconv.FormatInt(total, 10)
}
