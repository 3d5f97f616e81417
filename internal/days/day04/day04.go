// Package day04 solves Ceres Search: count XMAS in a letter grid
// along all eight directions, then X-shaped MAS pairs.
package day04

import (
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 4 with the harness.
func Solution() solver.Solution {
	return solver.New(4, parse, part1, part2)
}

type grid struct {
	rows []string
}

func parse(input string) (grid, error) {
	return grid{rows: strings.Split(strings.TrimSpace(input), "\n")}, nil
}

func (g grid) at(x, y int) byte {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return 0
	}
	return g.rows[y][x]
}

// matchRay reports whether word reads from (x,y) stepping by (dx,dy).
func (g grid) matchRay(word string, x, y, dx, dy int) bool {
	for i := 0; i < len(word); i++ {
		if g.at(x+i*dx, y+i*dy) != word[i] {
			return false
		}
	}
	return true
}

func part1(g grid) string {
	const word = "XMAS"
	directions := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	count := 0
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x] != word[0] {
				continue
			}
			for _, d := range directions {
				if g.matchRay(word, x, y, d[0], d[1]) {
					count++
				}
			}
		}
	}
	return strconv.Itoa(count)
}

// diagonalMAS reports whether the diagonal through (x,y) with slope
// (dx,dy) spells MAS in either direction.
func (g grid) diagonalMAS(x, y, dx, dy int) bool {
	a, b := g.at(x-dx, y-dy), g.at(x+dx, y+dy)
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

func part2(g grid) string {
	count := 0
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x] == 'A' && g.diagonalMAS(x, y, 1, 1) && g.diagonalMAS(x, y, 1, -1) {
				count++
			}
		}
	}
	return strconv.Itoa(count)
}
