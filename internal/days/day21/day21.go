// Package day21 solves Keypad Conundrum: type door codes through a
// chain of robots, each driving the next one's directional keypad.
// Between any two keys only two move orders matter (horizontal-first
// or vertical-first, skipping any that crosses the keypad gap), so
// the cheapest press count per (from, to, depth) memoizes cleanly
// even 25 robots deep.
package day21

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 21 with the harness.
func Solution() solver.Solution {
	return solver.New(21, parse, part1, part2)
}

type position struct {
	x int
	y int
}

// keypad maps button labels to positions; gap is the hole a robot arm
// must never point at.
type keypad struct {
	keys map[byte]position
	gap  position
}

var numericPad = keypad{
	keys: map[byte]position{
		'7': {0, 0}, '8': {1, 0}, '9': {2, 0},
		'4': {0, 1}, '5': {1, 1}, '6': {2, 1},
		'1': {0, 2}, '2': {1, 2}, '3': {2, 2},
		'0': {1, 3}, 'A': {2, 3},
	},
	gap: position{0, 3},
}

var arrowPad = keypad{
	keys: map[byte]position{
		'^': {1, 0}, 'A': {2, 0},
		'<': {0, 1}, 'v': {1, 1}, '>': {2, 1},
	},
	gap: position{0, 0},
}

func parse(input string) ([]string, error) {
	codes := strings.Split(strings.TrimSpace(input), "\n")
	for _, code := range codes {
		for i := 0; i < len(code); i++ {
			if _, ok := numericPad.keys[code[i]]; !ok {
				return nil, fmt.Errorf("invalid key %q in code %q", code[i], code)
			}
		}
	}
	return codes, nil
}

// paths returns the candidate arrow sequences (ending in A) that move
// the arm from one key to another along a direct route.
func (k keypad) paths(from, to byte) []string {
	src, dst := k.keys[from], k.keys[to]
	horizontal := strings.Repeat(">", max(dst.x-src.x, 0)) + strings.Repeat("<", max(src.x-dst.x, 0))
	vertical := strings.Repeat("v", max(dst.y-src.y, 0)) + strings.Repeat("^", max(src.y-dst.y, 0))
	if horizontal == "" || vertical == "" {
		return []string{horizontal + vertical + "A"}
	}
	var result []string
	if (position{dst.x, src.y}) != k.gap {
		result = append(result, horizontal+vertical+"A")
	}
	if (position{src.x, dst.y}) != k.gap {
		result = append(result, vertical+horizontal+"A")
	}
	return result
}

type memoKey struct {
	from  byte
	to    byte
	depth int
}

// pressCost is the number of human key presses needed to move a robot
// arm from one arrow key to another and press it, with depth robot
// layers still between this pad and the human.
func pressCost(from, to byte, depth int, memo map[memoKey]int64) int64 {
	if depth == 0 {
		// The human presses the arrows directly.
		return int64(len(arrowPad.paths(from, to)[0]))
	}
	key := memoKey{from: from, to: to, depth: depth}
	if cost, ok := memo[key]; ok {
		return cost
	}
	best := int64(-1)
	for _, path := range arrowPad.paths(from, to) {
		if cost := sequenceCost(path, depth-1, memo); best < 0 || cost < best {
			best = cost
		}
	}
	memo[key] = best
	return best
}

// sequenceCost types an arrow sequence on the pad one layer down.
// Every sequence starts and ends on A, so pairs chain from A.
func sequenceCost(seq string, depth int, memo map[memoKey]int64) int64 {
	var total int64
	prev := byte('A')
	for i := 0; i < len(seq); i++ {
		total += pressCost(prev, seq[i], depth, memo)
		prev = seq[i]
	}
	return total
}

// codeCost types a door code with the given number of intermediate
// robot arrow pads.
func codeCost(code string, robots int, memo map[memoKey]int64) int64 {
	var total int64
	prev := byte('A')
	for i := 0; i < len(code); i++ {
		best := int64(-1)
		for _, path := range numericPad.paths(prev, code[i]) {
			if cost := sequenceCost(path, robots-1, memo); best < 0 || cost < best {
				best = cost
			}
		}
		total += best
		prev = code[i]
	}
	return total
}

// numericPart is the code without its trailing A, as a number.
func numericPart(code string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSuffix(code, "A"), 10, 64)
	return n
}

func complexity(codes []string, robots int) string {
	memo := make(map[memoKey]int64)
	var total int64
	for _, code := range codes {
		total += codeCost(code, robots, memo) * numericPart(code)
	}
	return strconv.FormatInt(total, 10)
}

func part1(codes []string) string {
	return complexity(codes, 2)
}

func part2(codes []string) string {
	return complexity(codes, 25)
}
