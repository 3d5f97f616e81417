// Package day17 solves Chronospatial Computer: run the 3-bit VM and
// print its output, then find the smallest register A that makes the
// program print itself. The quine search fixes A three bits at a
// time, from the most significant end, since each loop iteration of
// these programs consumes the low three bits of A.
package day17

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 17 with the harness.
func Solution() solver.Solution {
	return solver.New(17, parse, part1, part2)
}

type computer struct {
	a, b, c uint64
	program []uint64
}

func parseRegister(line string) (uint64, error) {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return 0, fmt.Errorf("can't read register from %q", line)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse register value %q", value)
	}
	return n, nil
}

func parse(input string) (computer, error) {
	registers, programPart, found := strings.Cut(input, "\n\n")
	if !found {
		return computer{}, fmt.Errorf("can't find program")
	}
	lines := strings.Split(strings.TrimSpace(registers), "\n")
	if len(lines) != 3 {
		return computer{}, fmt.Errorf("expected three registers, got %d", len(lines))
	}
	var comp computer
	var err error
	if comp.a, err = parseRegister(lines[0]); err != nil {
		return computer{}, err
	}
	if comp.b, err = parseRegister(lines[1]); err != nil {
		return computer{}, err
	}
	if comp.c, err = parseRegister(lines[2]); err != nil {
		return computer{}, err
	}
	_, bytesPart, found := strings.Cut(strings.TrimSpace(programPart), ": ")
	if !found {
		return computer{}, fmt.Errorf("can't find program bytes")
	}
	for _, field := range strings.Split(bytesPart, ",") {
		b, err := strconv.ParseUint(field, 10, 64)
		if err != nil || b > 7 {
			return computer{}, fmt.Errorf("invalid program byte %q", field)
		}
		comp.program = append(comp.program, b)
	}
	return comp, nil
}

// run executes the program with register A forced to a and returns
// the output stream.
func (c computer) run(a uint64) []uint64 {
	b, creg := c.b, c.c
	var output []uint64
	combo := func(operand uint64) uint64 {
		switch operand {
		case 4:
			return a
		case 5:
			return b
		case 6:
			return creg
		default:
			return operand
		}
	}
	shift := func(operand uint64) uint64 {
		if s := combo(operand); s < 64 {
			return s
		}
		return 63
	}
	for pc := 0; pc+1 < len(c.program); pc += 2 {
		operand := c.program[pc+1]
		switch c.program[pc] {
		case 0: // adv
			a >>= shift(operand)
		case 1: // bxl
			b ^= operand
		case 2: // bst
			b = combo(operand) % 8
		case 3: // jnz
			if a != 0 {
				pc = int(operand) - 2
			}
		case 4: // bxc
			b ^= creg
		case 5: // out
			output = append(output, combo(operand)%8)
		case 6: // bdv
			b = a >> shift(operand)
		case 7: // cdv
			creg = a >> shift(operand)
		}
	}
	return output
}

func joinOutput(output []uint64) string {
	parts := make([]string, len(output))
	for i, v := range output {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

func part1(c computer) string {
	return joinOutput(c.run(c.a))
}

func matchesTail(output, program []uint64) bool {
	if len(output) > len(program) {
		return false
	}
	tail := program[len(program)-len(output):]
	for i := range output {
		if output[i] != tail[i] {
			return false
		}
	}
	return true
}

// findQuine extends a three bits at a time; each extension must
// reproduce one more byte of the program tail.
func (c computer) findQuine(a uint64, matched int) (uint64, bool) {
	if matched == len(c.program) {
		return a, true
	}
	for digit := uint64(0); digit < 8; digit++ {
		candidate := a<<3 | digit
		if candidate == 0 {
			// A zero accumulator would terminate the loop early.
			continue
		}
		output := c.run(candidate)
		if len(output) == matched+1 && matchesTail(output, c.program) {
			if result, ok := c.findQuine(candidate, matched+1); ok {
				return result, true
			}
		}
	}
	return 0, false
}

func part2(c computer) string {
	a, ok := c.findQuine(0, 0)
	if !ok {
		return "no quine found"
	}
	return strconv.FormatUint(a, 10)
}
