// Package days collects every implemented puzzle day into a single
// registry. Registration is an explicit table rather than init side
// effects so the set of days is readable in one place and a partial
// build can't silently drop a day.
package days

import (
	"github.com/roach88/advent2024/internal/days/day01"
	"github.com/roach88/advent2024/internal/days/day02"
	"github.com/roach88/advent2024/internal/days/day03"
	"github.com/roach88/advent2024/internal/days/day04"
	"github.com/roach88/advent2024/internal/days/day05"
	"github.com/roach88/advent2024/internal/days/day06"
	"github.com/roach88/advent2024/internal/days/day07"
	"github.com/roach88/advent2024/internal/days/day08"
	"github.com/roach88/advent2024/internal/days/day09"
	"github.com/roach88/advent2024/internal/days/day10"
	"github.com/roach88/advent2024/internal/days/day11"
	"github.com/roach88/advent2024/internal/days/day12"
	"github.com/roach88/advent2024/internal/days/day13"
	"github.com/roach88/advent2024/internal/days/day14"
	"github.com/roach88/advent2024/internal/days/day15"
	"github.com/roach88/advent2024/internal/days/day16"
	"github.com/roach88/advent2024/internal/days/day17"
	"github.com/roach88/advent2024/internal/days/day18"
	"github.com/roach88/advent2024/internal/days/day19"
	"github.com/roach88/advent2024/internal/days/day20"
	"github.com/roach88/advent2024/internal/days/day21"
	"github.com/roach88/advent2024/internal/solver"
)

// All returns every registered day in calendar order.
func All() []solver.Solution {
	return []solver.Solution{
		day01.Solution(),
		day02.Solution(),
		day03.Solution(),
		day04.Solution(),
		day05.Solution(),
		day06.Solution(),
		day07.Solution(),
		day08.Solution(),
		day09.Solution(),
		day10.Solution(),
		day11.Solution(),
		day12.Solution(),
		day13.Solution(),
		day14.Solution(),
		day15.Solution(),
		day16.Solution(),
		day17.Solution(),
		day18.Solution(),
		day19.Solution(),
		day20.Solution(),
		day21.Solution(),
	}
}
