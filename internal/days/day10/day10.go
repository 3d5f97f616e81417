// Package day10 solves Hoof It: score hiking trailheads by the
// distinct summits they reach, then by the distinct trails.
package day10

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 10 with the harness.
func Solution() solver.Solution {
	return solver.New(10, parse, part1, part2)
}

type coord struct {
	x int
	y int
}

type topo struct {
	elevation [][]int8
	starts    []coord
}

func parse(input string) (topo, error) {
	var m topo
	for y, line := range strings.Split(strings.TrimSpace(input), "\n") {
		row := make([]int8, len(line))
		for x := 0; x < len(line); x++ {
			if line[x] < '0' || line[x] > '9' {
				return topo{}, fmt.Errorf("%q is not a digit", line[x])
			}
			row[x] = int8(line[x] - '0')
			if row[x] == 0 {
				m.starts = append(m.starts, coord{x: x, y: y})
			}
		}
		m.elevation = append(m.elevation, row)
	}
	return m, nil
}

func (m topo) at(c coord) int8 {
	if c.y < 0 || c.y >= len(m.elevation) || c.x < 0 || c.x >= len(m.elevation[c.y]) {
		return -1
	}
	return m.elevation[c.y][c.x]
}

// trails counts the paths from c to every summit, memoized per cell.
// A cell's trail count is independent of how it was reached.
func (m topo) trails(c coord, memo map[coord]int) int {
	if n, ok := memo[c]; ok {
		return n
	}
	height := m.at(c)
	if height == 9 {
		return 1
	}
	total := 0
	for _, next := range []coord{{c.x - 1, c.y}, {c.x + 1, c.y}, {c.x, c.y - 1}, {c.x, c.y + 1}} {
		if m.at(next) == height+1 {
			total += m.trails(next, memo)
		}
	}
	memo[c] = total
	return total
}

// summits collects the distinct height-9 cells reachable from c.
func (m topo) summits(c coord, reached map[coord]bool) {
	height := m.at(c)
	if height == 9 {
		reached[c] = true
		return
	}
	for _, next := range []coord{{c.x - 1, c.y}, {c.x + 1, c.y}, {c.x, c.y - 1}, {c.x, c.y + 1}} {
		if m.at(next) == height+1 {
			m.summits(next, reached)
		}
	}
}

func part1(m topo) string {
	total := 0
	for _, start := range m.starts {
		reached := make(map[coord]bool)
		m.summits(start, reached)
		total += len(reached)
	}
	return strconv.Itoa(total)
}

func part2(m topo) string {
	total := 0
	memo := make(map[coord]int)
	for _, start := range m.starts {
		total += m.trails(start, memo)
	}
	return strconv.Itoa(total)
}
