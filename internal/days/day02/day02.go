// Package day02 solves Red-Nosed Reports: count reactor level reports
// that change monotonically by 1 to 3 per step, with and without the
// Problem Dampener allowing one bad level.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 2 with the harness.
func Solution() solver.Solution {
	return solver.New(2, parse, part1, part2)
}

func parse(input string) ([][]int, error) {
	var reports [][]int
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var report []int
		for _, field := range strings.Fields(line) {
			level, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("can't parse integer %q", field)
			}
			report = append(report, level)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func isSafe(report []int) bool {
	if len(report) <= 1 {
		return true
	}
	increasing := report[1] > report[0]
	for i := 1; i < len(report); i++ {
		diff := report[i] - report[i-1]
		if !increasing {
			diff = -diff
		}
		if diff < 1 || diff > 3 {
			return false
		}
	}
	return true
}

// isSafeDampened tries the report as-is, then with each single level
// removed. Reports are a handful of levels, so the quadratic retry is
// fine.
func isSafeDampened(report []int) bool {
	if isSafe(report) {
		return true
	}
	shorter := make([]int, 0, len(report)-1)
	for skip := range report {
		shorter = shorter[:0]
		for i, level := range report {
			if i != skip {
				shorter = append(shorter, level)
			}
		}
		if isSafe(shorter) {
			return true
		}
	}
	return false
}

func part1(reports [][]int) string {
	count := 0
	for _, report := range reports {
		if isSafe(report) {
			count++
		}
	}
	return strconv.Itoa(count)
}

func part2(reports [][]int) string {
	count := 0
	for _, report := range reports {
		if isSafeDampened(report) {
			count++
		}
	}
	return strconv.Itoa(count)
}
