// Package day19 solves Linen Layout: which towel designs can be
// composed from the available stripe patterns, and in how many ways.
// One memoized count per design answers both parts: possible means a
// nonzero arrangement count.
package day19

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 19 with the harness.
func Solution() solver.Solution {
	return solver.New(19, parse, part1, part2)
}

type onsen struct {
	patterns []string
	designs  []string
}

func parse(input string) (onsen, error) {
	patternPart, designPart, found := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !found {
		return onsen{}, fmt.Errorf("can't split patterns from designs")
	}
	var o onsen
	for _, p := range strings.Split(patternPart, ",") {
		o.patterns = append(o.patterns, strings.TrimSpace(p))
	}
	o.designs = strings.Split(designPart, "\n")
	return o, nil
}

// arrangements counts the ways to build design from the patterns.
// memo is keyed by suffix length; a suffix's count doesn't depend on
// what was matched before it.
func (o onsen) arrangements(design string, memo []int64) int64 {
	if memo[len(design)] >= 0 {
		return memo[len(design)]
	}
	var count int64
	for _, p := range o.patterns {
		if strings.HasPrefix(design, p) {
			count += o.arrangements(design[len(p):], memo)
		}
	}
	memo[len(design)] = count
	return count
}

func (o onsen) countAll(design string) int64 {
	memo := make([]int64, len(design)+1)
	for i := range memo {
		memo[i] = -1
	}
	memo[0] = 1 // the empty suffix is one complete arrangement
	return o.arrangements(design, memo)
}

func part1(o onsen) string {
	possible := 0
	for _, design := range o.designs {
		if o.countAll(design) > 0 {
			possible++
		}
	}
	return strconv.Itoa(possible)
}

func part2(o onsen) string {
	var total int64
	for _, design := range o.designs {
		total += o.countAll(design)
	}
	return strconv.FormatInt(total, 10)
}
