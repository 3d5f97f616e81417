// Package day11 solves Plutonian Pebbles: count stones after repeated
// blinks. Stones with equal numbers evolve identically, so the state
// is a multiset of values rather than an ordered line.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 11 with the harness.
func Solution() solver.Solution {
	return solver.New(11, parse, part1, part2)
}

func parse(input string) (map[uint64]int, error) {
	stones := make(map[uint64]int)
	for _, field := range strings.Fields(input) {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("can't parse integer %q", field)
		}
		stones[n]++
	}
	return stones, nil
}

// split halves an even-digit number: split(1234) = 12, 34, true.
func split(n uint64) (uint64, uint64, bool) {
	digits := 0
	for v := n; v > 0; v /= 10 {
		digits++
	}
	if digits%2 != 0 {
		return 0, 0, false
	}
	pow := uint64(1)
	for i := 0; i < digits/2; i++ {
		pow *= 10
	}
	return n / pow, n % pow, true
}

func blink(stones map[uint64]int) map[uint64]int {
	next := make(map[uint64]int, len(stones))
	for n, count := range stones {
		switch left, right, even := split(n); {
		case n == 0:
			next[1] += count
		case even:
			next[left] += count
			next[right] += count
		default:
			next[n*2024] += count
		}
	}
	return next
}

func countAfter(stones map[uint64]int, blinks int) string {
	for i := 0; i < blinks; i++ {
		stones = blink(stones)
	}
	total := 0
	for _, count := range stones {
		total += count
	}
	return strconv.Itoa(total)
}

func part1(stones map[uint64]int) string {
	return countAfter(stones, 25)
}

func part2(stones map[uint64]int) string {
	return countAfter(stones, 75)
}
