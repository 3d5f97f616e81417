// Package day18 solves RAM Run: bytes fall onto a memory grid and
// block tiles. Part 1 finds the shortest exit path after the first
// kilobyte lands; part 2 finds the first byte that cuts the exit off.
package day18

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 18 with the harness.
func Solution() solver.Solution {
	return solver.New(18, parse, part1, part2)
}

// The real memory space; tests use a smaller one.
const (
	gridSize    = 71
	part1Fallen = 1024
)

type coord struct {
	x int
	y int
}

func parse(input string) ([]coord, error) {
	var bytes []coord
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		xs, ys, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("can't split %q", line)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", xs)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", ys)
		}
		bytes = append(bytes, coord{x: x, y: y})
	}
	return bytes, nil
}

// shortestPath runs a breadth-first search from the top-left to the
// bottom-right corner and returns the step count, or -1 when the exit
// is unreachable.
func shortestPath(fallen []coord, size int) int {
	blocked := make([]bool, size*size)
	for _, c := range fallen {
		blocked[c.y*size+c.x] = true
	}
	distance := make([]int, size*size)
	for i := range distance {
		distance[i] = -1
	}
	distance[0] = 0
	queue := []coord{{0, 0}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c.x == size-1 && c.y == size-1 {
			return distance[c.y*size+c.x]
		}
		for _, n := range [4]coord{{c.x - 1, c.y}, {c.x + 1, c.y}, {c.x, c.y - 1}, {c.x, c.y + 1}} {
			if n.x < 0 || n.x >= size || n.y < 0 || n.y >= size {
				continue
			}
			i := n.y*size + n.x
			if blocked[i] || distance[i] >= 0 {
				continue
			}
			distance[i] = distance[c.y*size+c.x] + 1
			queue = append(queue, n)
		}
	}
	return -1
}

// firstBlocker binary-searches for the first fallen byte that leaves
// no path to the exit. Connectivity only ever degrades as bytes fall,
// so the predicate is monotone.
func firstBlocker(bytes []coord, size int) string {
	low, high := 0, len(bytes) // low bytes keep a path, high don't
	for low+1 < high {
		mid := (low + high) / 2
		if shortestPath(bytes[:mid], size) >= 0 {
			low = mid
		} else {
			high = mid
		}
	}
	if high > len(bytes)-1 && shortestPath(bytes, size) >= 0 {
		return "never blocked"
	}
	b := bytes[high-1]
	return fmt.Sprintf("%d,%d", b.x, b.y)
}

func part1(bytes []coord) string {
	fallen := bytes
	if len(fallen) > part1Fallen {
		fallen = fallen[:part1Fallen]
	}
	return strconv.Itoa(shortestPath(fallen, gridSize))
}

func part2(bytes []coord) string {
	return firstBlocker(bytes, gridSize)
}
