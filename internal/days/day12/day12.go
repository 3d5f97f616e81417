// Package day12 solves Garden Groups: price fence around contiguous
// crop regions by area*perimeter, then by area*sides. A region has as
// many sides as corners, so part 2 counts corner configurations.
package day12

import (
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 12 with the harness.
func Solution() solver.Solution {
	return solver.New(12, parse, part1, part2)
}

type garden struct {
	plots  []string
	width  int
	height int
	// region[y][x] is the region id of each plot, assigned by flood
	// fill during parse.
	region [][]int
	areas  []int
}

func parse(input string) (*garden, error) {
	g := &garden{plots: strings.Split(strings.TrimSpace(input), "\n")}
	g.height = len(g.plots)
	g.width = len(g.plots[0])
	g.region = make([][]int, g.height)
	for y := range g.region {
		g.region[y] = make([]int, g.width)
		for x := range g.region[y] {
			g.region[y][x] = -1
		}
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.region[y][x] < 0 {
				g.areas = append(g.areas, g.fill(x, y, len(g.areas)))
			}
		}
	}
	return g, nil
}

// fill flood-fills the region containing (x,y) and returns its area.
func (g *garden) fill(x, y, id int) int {
	crop := g.plots[y][x]
	stack := [][2]int{{x, y}}
	g.region[y][x] = id
	area := 0
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++
		for _, n := range [4][2]int{{c[0] - 1, c[1]}, {c[0] + 1, c[1]}, {c[0], c[1] - 1}, {c[0], c[1] + 1}} {
			if g.sameCrop(n[0], n[1], crop) && g.region[n[1]][n[0]] < 0 {
				g.region[n[1]][n[0]] = id
				stack = append(stack, n)
			}
		}
	}
	return area
}

func (g *garden) sameCrop(x, y int, crop byte) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width && g.plots[y][x] == crop
}

func part1(g *garden) string {
	perimeters := make([]int, len(g.areas))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			crop := g.plots[y][x]
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				if !g.sameCrop(n[0], n[1], crop) {
					perimeters[g.region[y][x]]++
				}
			}
		}
	}
	total := 0
	for id, area := range g.areas {
		total += area * perimeters[id]
	}
	return strconv.Itoa(total)
}

// corners counts the region corners contributed by plot (x,y): a
// convex corner where two touching edges both face out, a concave one
// where both neighbors match but the diagonal between them doesn't.
func (g *garden) corners(x, y int) int {
	crop := g.plots[y][x]
	count := 0
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		horizontal := g.sameCrop(x+d[0], y, crop)
		vertical := g.sameCrop(x, y+d[1], crop)
		diagonal := g.sameCrop(x+d[0], y+d[1], crop)
		if !horizontal && !vertical {
			count++
		} else if horizontal && vertical && !diagonal {
			count++
		}
	}
	return count
}

func part2(g *garden) string {
	sides := make([]int, len(g.areas))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sides[g.region[y][x]] += g.corners(x, y)
		}
	}
	total := 0
	for id, area := range g.areas {
		total += area * sides[id]
	}
	return strconv.Itoa(total)
}
