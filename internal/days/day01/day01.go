// Package day01 solves Historian Hysteria: reconcile two columns of
// location IDs.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 1 with the harness.
func Solution() solver.Solution {
	return solver.New(1, parse, part1, part2)
}

type pair struct {
	left  int
	right int
}

func parse(input string) ([]pair, error) {
	var pairs []pair
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("expected two columns, got %q", line)
		}
		left, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", fields[0])
		}
		right, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", fields[1])
		}
		pairs = append(pairs, pair{left: left, right: right})
	}
	return pairs, nil
}

// part1 pairs the columns smallest-to-smallest and sums the gaps.
func part1(pairs []pair) string {
	left := make([]int, len(pairs))
	right := make([]int, len(pairs))
	for i, p := range pairs {
		left[i] = p.left
		right[i] = p.right
	}
	sort.Ints(left)
	sort.Ints(right)
	total := 0
	for i := range left {
		diff := left[i] - right[i]
		if diff < 0 {
			diff = -diff
		}
		total += diff
	}
	return strconv.Itoa(total)
}

// part2 scores each left ID by how often it appears on the right.
func part2(pairs []pair) string {
	counts := make(map[int]int, len(pairs))
	for _, p := range pairs {
		counts[p.right]++
	}
	total := 0
	for _, p := range pairs {
		total += p.left * counts[p.left]
	}
	return strconv.Itoa(total)
}
