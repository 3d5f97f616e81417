// Package day13 solves Claw Contraption: each machine is a 2x2 linear
// system; a prize is winnable only when the system has an integer
// solution. Button A costs 3 tokens, button B costs 1.
package day13

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 13 with the harness.
func Solution() solver.Solution {
	return solver.New(13, parse, part1, part2)
}

type machine struct {
	ax, ay int64
	bx, by int64
	px, py int64
}

// parseClaim reads "X+94" or "X=8400" style attribute values.
func parseClaim(s, attribute string) (int64, error) {
	s = strings.TrimSpace(s)
	name, value, found := strings.Cut(s, "+")
	if !found {
		name, value, found = strings.Cut(s, "=")
	}
	if !found || name != attribute {
		return 0, fmt.Errorf("can't parse attribute %q from %q", attribute, s)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse integer %q", value)
	}
	return n, nil
}

func parseCoordinate(line string) (int64, int64, error) {
	_, values, found := strings.Cut(line, ": ")
	if !found {
		return 0, 0, fmt.Errorf("can't split line %q", line)
	}
	xs, ys, found := strings.Cut(values, ",")
	if !found {
		return 0, 0, fmt.Errorf("can't split coordinates %q", values)
	}
	x, err := parseClaim(xs, "X")
	if err != nil {
		return 0, 0, err
	}
	y, err := parseClaim(ys, "Y")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parse(input string) ([]machine, error) {
	var machines []machine
	for _, block := range strings.Split(strings.TrimSpace(input), "\n\n") {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			return nil, fmt.Errorf("can't parse machine %q", block)
		}
		var m machine
		var err error
		if m.ax, m.ay, err = parseCoordinate(lines[0]); err != nil {
			return nil, err
		}
		if m.bx, m.by, err = parseCoordinate(lines[1]); err != nil {
			return nil, err
		}
		if m.px, m.py, err = parseCoordinate(lines[2]); err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, nil
}

// tokens solves the system by Cramer's rule and returns the cost, or
// false when no integer press counts hit the prize.
func (m machine) tokens() (int64, bool) {
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0, false
	}
	aTop := m.px*m.by - m.py*m.bx
	bTop := m.ax*m.py - m.ay*m.px
	if aTop%det != 0 || bTop%det != 0 {
		return 0, false
	}
	a, b := aTop/det, bTop/det
	if a < 0 || b < 0 {
		return 0, false
	}
	return a*3 + b, true
}

func totalTokens(machines []machine, offset int64) string {
	var total int64
	for _, m := range machines {
		m.px += offset
		m.py += offset
		if cost, ok := m.tokens(); ok {
			total += cost
		}
	}
	return strconv.FormatInt(total, 10)
}

func part1(machines []machine) string {
	return totalTokens(machines, 0)
}

func part2(machines []machine) string {
	return totalTokens(machines, 10000000000000)
}
