// Package day08 solves Resonant Collinearity: count antinode
// positions projected by pairs of same-frequency antennas.
package day08

import (
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 8 with the harness.
func Solution() solver.Solution {
	return solver.New(8, parse, part1, part2)
}

type coord struct {
	x int
	y int
}

type cityMap struct {
	// antennas groups locations by frequency character.
	antennas map[byte][]coord
	width    int
	height   int
}

func parse(input string) (cityMap, error) {
	m := cityMap{antennas: make(map[byte][]coord)}
	lines := strings.Split(strings.TrimSpace(input), "\n")
	m.height = len(lines)
	m.width = len(lines[0])
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] != '.' {
				m.antennas[line[x]] = append(m.antennas[line[x]], coord{x: x, y: y})
			}
		}
	}
	return m, nil
}

func (m cityMap) inBounds(c coord) bool {
	return c.x >= 0 && c.x < m.width && c.y >= 0 && c.y < m.height
}

// countAntinodes collects the antinodes cast by every same-frequency
// antenna pair. With harmonics, each pair projects along its whole
// line instead of just the two mirror points.
func (m cityMap) countAntinodes(harmonics bool) int {
	antinodes := make(map[coord]bool)
	for _, locations := range m.antennas {
		for i, left := range locations {
			for _, right := range locations[i+1:] {
				dx, dy := left.x-right.x, left.y-right.y
				if !harmonics {
					for _, c := range []coord{
						{x: left.x + dx, y: left.y + dy},
						{x: right.x - dx, y: right.y - dy},
					} {
						if m.inBounds(c) {
							antinodes[c] = true
						}
					}
					continue
				}
				for c := left; m.inBounds(c); c.x, c.y = c.x+dx, c.y+dy {
					antinodes[c] = true
				}
				for c := right; m.inBounds(c); c.x, c.y = c.x-dx, c.y-dy {
					antinodes[c] = true
				}
			}
		}
	}
	return len(antinodes)
}

func part1(m cityMap) string {
	return strconv.Itoa(m.countAntinodes(false))
}

func part2(m cityMap) string {
	return strconv.Itoa(m.countAntinodes(true))
}
