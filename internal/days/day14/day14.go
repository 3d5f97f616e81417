// Package day14 solves Restroom Redoubt: robots glide on a wrapping
// grid. Part 1 scores quadrant occupancy after 100 seconds; part 2
// finds the first second the robots draw the Christmas tree, which is
// the first time no two robots share a tile.
package day14

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 14 with the harness.
func Solution() solver.Solution {
	return solver.New(14, parse, part1, part2)
}

const (
	boardWidth  = 101
	boardHeight = 103
)

type robot struct {
	x, y   int
	vx, vy int
}

func parseVector(s string) (int, int, error) {
	_, values, found := strings.Cut(s, "=")
	if !found {
		return 0, 0, fmt.Errorf("can't find '=' in %q", s)
	}
	xs, ys, found := strings.Cut(values, ",")
	if !found {
		return 0, 0, fmt.Errorf("can't find ',' in %q", values)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("can't parse integer %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("can't parse integer %q", ys)
	}
	return x, y, nil
}

func parse(input string) ([]robot, error) {
	var robots []robot
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		pos, vel, found := strings.Cut(line, " ")
		if !found {
			return nil, fmt.Errorf("can't split line %q", line)
		}
		var r robot
		var err error
		if r.x, r.y, err = parseVector(pos); err != nil {
			return nil, err
		}
		if r.vx, r.vy, err = parseVector(vel); err != nil {
			return nil, err
		}
		robots = append(robots, r)
	}
	return robots, nil
}

// wrap keeps a coordinate on the board; Go's % keeps the dividend's
// sign, so fold negatives back.
func wrap(v, bound int) int {
	v %= bound
	if v < 0 {
		v += bound
	}
	return v
}

func (r robot) after(steps, width, height int) (int, int) {
	return wrap(r.x+r.vx*steps, width), wrap(r.y+r.vy*steps, height)
}

// safetyScore multiplies the robot counts of the four quadrants.
// Robots on the middle lines count for no quadrant.
func safetyScore(robots []robot, steps, width, height int) int {
	var counts [4]int
	for _, r := range robots {
		x, y := r.after(steps, width, height)
		if x == width/2 || y == height/2 {
			continue
		}
		quadrant := 0
		if x > width/2 {
			quadrant++
		}
		if y > height/2 {
			quadrant += 2
		}
		counts[quadrant]++
	}
	return counts[0] * counts[1] * counts[2] * counts[3]
}

func part1(robots []robot) string {
	return strconv.Itoa(safetyScore(robots, 100, boardWidth, boardHeight))
}

// part2 steps until every robot occupies its own tile. Positions
// repeat with period width*height, so the search is bounded.
func part2(robots []robot) string {
	occupied := make(map[[2]int]bool, len(robots))
	for steps := 1; steps <= boardWidth*boardHeight; steps++ {
		clear(occupied)
		distinct := true
		for _, r := range robots {
			x, y := r.after(steps, boardWidth, boardHeight)
			if occupied[[2]int{x, y}] {
				distinct = false
				break
			}
			occupied[[2]int{x, y}] = true
		}
		if distinct {
			return strconv.Itoa(steps)
		}
	}
	return "no tree found"
}
