// Package day05 solves Print Queue: validate page orderings against
// precedence rules and repair the ones that break them.
package day05

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 5 with the harness.
func Solution() solver.Solution {
	return solver.New(5, parse, part1, part2)
}

type ordering struct {
	// before[{a,b}] means page a must be printed before page b.
	before    map[[2]int]bool
	printings [][]int
}

func parse(input string) (ordering, error) {
	sections := strings.SplitN(strings.TrimSpace(input), "\n\n", 2)
	if len(sections) != 2 {
		return ordering{}, fmt.Errorf("expected rules and printings separated by a blank line")
	}
	ord := ordering{before: make(map[[2]int]bool)}
	for _, line := range strings.Split(sections[0], "\n") {
		prev, follow, found := strings.Cut(line, "|")
		if !found {
			return ordering{}, fmt.Errorf("rule %q missing divider", line)
		}
		p, err := strconv.Atoi(prev)
		if err != nil {
			return ordering{}, fmt.Errorf("can't parse integer %q", prev)
		}
		f, err := strconv.Atoi(follow)
		if err != nil {
			return ordering{}, fmt.Errorf("can't parse integer %q", follow)
		}
		ord.before[[2]int{p, f}] = true
	}
	for _, line := range strings.Split(sections[1], "\n") {
		var printing []int
		for _, field := range strings.Split(line, ",") {
			page, err := strconv.Atoi(field)
			if err != nil {
				return ordering{}, fmt.Errorf("can't parse integer %q", field)
			}
			printing = append(printing, page)
		}
		ord.printings = append(ord.printings, printing)
	}
	return ord, nil
}

func (o ordering) correct(printing []int) bool {
	for i, page := range printing {
		for _, earlier := range printing[:i] {
			if o.before[[2]int{page, earlier}] {
				return false
			}
		}
	}
	return true
}

func middle(printing []int) int {
	return printing[len(printing)/2]
}

func part1(o ordering) string {
	total := 0
	for _, printing := range o.printings {
		if o.correct(printing) {
			total += middle(printing)
		}
	}
	return strconv.Itoa(total)
}

func part2(o ordering) string {
	total := 0
	for _, printing := range o.printings {
		if o.correct(printing) {
			continue
		}
		fixed := make([]int, len(printing))
		copy(fixed, printing)
		// The rules form a total order over the pages of any one
		// printing, so they work directly as a sort comparator.
		sort.SliceStable(fixed, func(i, j int) bool {
			return o.before[[2]int{fixed[i], fixed[j]}]
		})
		total += middle(fixed)
	}
	return strconv.Itoa(total)
}
