// Package solver defines the contract between the harness and the
// per-day puzzle packages.
//
// A day consists of a parser and two independent part functions. The
// parser runs once per invocation; both parts consume the same parsed
// value. Parts return their answer as a string so the driver can
// compare against recorded answers without knowing the underlying
// type (most days answer with an integer, day 17 with a comma list,
// day 18 part 2 with a coordinate).
//
// Day packages keep typed signatures and adapt them with New:
//
//	func Solution() solver.Solution {
//	    return solver.New(7, parse, part1, part2)
//	}
//
// The harness never inspects the parsed value; it is opaque glue
// between the three stages.
package solver

import "fmt"

// MaxDay is the highest day number a puzzle calendar can hold.
const MaxDay = 25

// Solution is the type-erased form of one day's solver.
type Solution struct {
	// Day is the puzzle day, 1 through MaxDay.
	Day int

	// Parse converts the raw input text into the day's intermediate
	// representation. A parse error is fatal for the day.
	Parse func(input string) (any, error)

	// Part1 and Part2 compute the two answers from the parsed value.
	Part1 func(parsed any) string
	Part2 func(parsed any) string
}

// New adapts a typed day implementation into a Solution.
// The parsed value round-trips through an interface but both part
// functions see the concrete type T.
func New[T any](day int, parse func(string) (T, error), part1, part2 func(T) string) Solution {
	return Solution{
		Day: day,
		Parse: func(input string) (any, error) {
			return parse(input)
		},
		Part1: func(parsed any) string {
			return part1(parsed.(T))
		},
		Part2: func(parsed any) string {
			return part2(parsed.(T))
		},
	}
}

// ByDay finds the solution for a day number in a registry slice.
func ByDay(solutions []Solution, day int) (Solution, error) {
	for _, s := range solutions {
		if s.Day == day {
			return s, nil
		}
	}
	return Solution{}, fmt.Errorf("no solver registered for day %d", day)
}

// Days returns the day numbers present in the registry, in registry
// order.
func Days(solutions []Solution) []int {
	days := make([]int, len(solutions))
	for i, s := range solutions {
		days[i] = s.Day
	}
	return days
}
