// Package day07 solves Bridge Repair: decide which calibration
// equations can be satisfied by inserting +, * and (in part 2) digit
// concatenation between the operands, evaluated left to right.
package day07

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 7 with the harness.
func Solution() solver.Solution {
	return solver.New(7, parse, part1, part2)
}

type equation struct {
	target int64
	inputs []int64
}

func parse(input string) ([]equation, error) {
	var equations []equation
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		targetStr, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("can't find separator in %q", line)
		}
		target, err := strconv.ParseInt(targetStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", targetStr)
		}
		eq := equation{target: target}
		for _, field := range strings.Fields(rest) {
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("can't parse integer %q", field)
			}
			eq.inputs = append(eq.inputs, value)
		}
		equations = append(equations, eq)
	}
	return equations, nil
}

// concat appends right's digits to left: concat(12, 345) = 12345.
func concat(left, right int64) int64 {
	shift := int64(10)
	for shift <= right {
		shift *= 10
	}
	return left*shift + right
}

// solvable tries every operator placement. Every operator grows the
// accumulator (inputs are positive), so overshooting prunes.
func solvable(target, accumulated int64, inputs []int64, withConcat bool) bool {
	if accumulated > target {
		return false
	}
	if len(inputs) == 0 {
		return target == accumulated
	}
	next, rest := inputs[0], inputs[1:]
	return solvable(target, accumulated+next, rest, withConcat) ||
		solvable(target, accumulated*next, rest, withConcat) ||
		(withConcat && solvable(target, concat(accumulated, next), rest, withConcat))
}

func calibrate(equations []equation, withConcat bool) string {
	var total int64
	for _, eq := range equations {
		if len(eq.inputs) == 0 {
			continue
		}
		if solvable(eq.target, eq.inputs[0], eq.inputs[1:], withConcat) {
			total += eq.target
		}
	}
	return strconv.FormatInt(total, 10)
}

func part1(equations []equation) string {
	return calibrate(equations, false)
}

func part2(equations []equation) string {
	return calibrate(equations, true)
}
