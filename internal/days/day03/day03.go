// Package day03 solves Mull It Over: scan corrupted memory for
// mul(X,Y) instructions, optionally gated by do()/don't().
package day03

import (
	"regexp"
	"strconv"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 3 with the harness.
func Solution() solver.Solution {
	return solver.New(3, parse, part1, part2)
}

var instructionPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// parse keeps the raw text; the parts scan it with different rules.
func parse(input string) (string, error) {
	return input, nil
}

func part1(input string) string {
	total := 0
	for _, match := range instructionPattern.FindAllStringSubmatch(input, -1) {
		if match[1] != "" {
			total += mustAtoi(match[1]) * mustAtoi(match[2])
		}
	}
	return strconv.Itoa(total)
}

func part2(input string) string {
	total := 0
	enabled := true
	for _, match := range instructionPattern.FindAllStringSubmatch(input, -1) {
		switch {
		case match[0] == "do()":
			enabled = true
		case match[0] == "don't()":
			enabled = false
		case enabled:
			total += mustAtoi(match[1]) * mustAtoi(match[2])
		}
	}
	return strconv.Itoa(total)
}

// mustAtoi converts a digit group already validated by the regexp.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}
