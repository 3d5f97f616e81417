// Package day06 solves Guard Gallivant: trace a guard that walks
// forward and turns right at obstacles, then count the places where
// one extra obstacle traps it in a loop.
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 6 with the harness.
func Solution() solver.Solution {
	return solver.New(6, parse, part1, part2)
}

// Directions in turn-right order: north, east, south, west.
var steps = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

type floor struct {
	walls    [][]bool
	width    int
	height   int
	startX   int
	startY   int
	startDir int
}

func parse(input string) (*floor, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	f := &floor{
		height:   len(lines),
		width:    len(lines[0]),
		startDir: -1,
	}
	f.walls = make([][]bool, f.height)
	for y, line := range lines {
		f.walls[y] = make([]bool, f.width)
		for x, ch := range []byte(line) {
			switch ch {
			case '.':
			case '#':
				f.walls[y][x] = true
			case '^', '>', 'v', '<':
				f.startX, f.startY = x, y
				f.startDir = strings.IndexByte("^>v<", ch)
			default:
				return nil, fmt.Errorf("invalid character %q", ch)
			}
		}
	}
	if f.startDir < 0 {
		return nil, fmt.Errorf("no guard found")
	}
	return f, nil
}

func (f *floor) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// walk runs the guard until it leaves the floor, calling visit for
// every square it occupies. extraX/extraY place one additional wall
// (-1,-1 for none). Returns true if the guard loops instead of
// leaving, detected by revisiting a square in the same direction.
func (f *floor) walk(extraX, extraY int, visit func(x, y int)) bool {
	seen := make([]uint8, f.width*f.height)
	x, y, dir := f.startX, f.startY, f.startDir
	for {
		bit := uint8(1) << dir
		if seen[y*f.width+x]&bit != 0 {
			return true
		}
		if seen[y*f.width+x] == 0 && visit != nil {
			visit(x, y)
		}
		seen[y*f.width+x] |= bit
		nx, ny := x+steps[dir][0], y+steps[dir][1]
		if !f.inBounds(nx, ny) {
			return false
		}
		if f.walls[ny][nx] || (nx == extraX && ny == extraY) {
			dir = (dir + 1) % 4
			continue
		}
		x, y = nx, ny
	}
}

func part1(f *floor) string {
	count := 0
	f.walk(-1, -1, func(x, y int) { count++ })
	return strconv.Itoa(count)
}

// part2 only needs to try obstacles on the unobstructed path; a wall
// anywhere else is never touched.
func part2(f *floor) string {
	type coord struct{ x, y int }
	var path []coord
	f.walk(-1, -1, func(x, y int) {
		if x != f.startX || y != f.startY {
			path = append(path, coord{x, y})
		}
	})
	count := 0
	for _, c := range path {
		if f.walk(c.x, c.y, nil) {
			count++
		}
	}
	return strconv.Itoa(count)
}
