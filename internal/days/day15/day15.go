// Package day15 solves Warehouse Woes: a robot shoves box chains
// around a warehouse. Part 2 doubles the warehouse width, so boxes
// span two tiles and vertical pushes fan out over box trees.
package day15

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 15 with the harness.
func Solution() solver.Solution {
	return solver.New(15, parse, part1, part2)
}

type warehouse struct {
	grid  []string
	moves []byte
}

var moveSteps = map[byte][2]int{
	'^': {0, -1},
	'v': {0, 1},
	'<': {-1, 0},
	'>': {1, 0},
}

func parse(input string) (warehouse, error) {
	gridStr, movesStr, found := strings.Cut(input, "\n\n")
	if !found {
		return warehouse{}, fmt.Errorf("can't find move list")
	}
	w := warehouse{grid: strings.Split(strings.TrimSpace(gridStr), "\n")}
	for _, line := range w.grid {
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '#', '.', 'O', '@':
			default:
				return warehouse{}, fmt.Errorf("invalid character %q", line[i])
			}
		}
	}
	for _, ch := range []byte(movesStr) {
		if _, ok := moveSteps[ch]; ok {
			w.moves = append(w.moves, ch)
		} else if ch != '\n' {
			return warehouse{}, fmt.Errorf("invalid direction %q", ch)
		}
	}
	return w, nil
}

// mutable copies the grid into writable rows and finds the robot.
func mutable(rows []string) ([][]byte, int, int) {
	grid := make([][]byte, len(rows))
	rx, ry := -1, -1
	for y, row := range rows {
		grid[y] = []byte(row)
		if x := strings.IndexByte(row, '@'); x >= 0 {
			rx, ry = x, y
			grid[y][x] = '.'
		}
	}
	return grid, rx, ry
}

func gpsSum(grid [][]byte) string {
	total := 0
	for y, row := range grid {
		for x, ch := range row {
			if ch == 'O' || ch == '[' {
				total += 100*y + x
			}
		}
	}
	return strconv.Itoa(total)
}

func part1(w warehouse) string {
	grid, rx, ry := mutable(w.grid)
	for _, move := range w.moves {
		dx, dy := moveSteps[move][0], moveSteps[move][1]
		// Find the first non-box tile along the push direction.
		fx, fy := rx+dx, ry+dy
		for grid[fy][fx] == 'O' {
			fx, fy = fx+dx, fy+dy
		}
		if grid[fy][fx] == '#' {
			continue
		}
		// The whole chain shifts one tile: a box appears at the free
		// tile and disappears where the robot steps.
		grid[fy][fx] = 'O'
		rx, ry = rx+dx, ry+dy
		grid[ry][rx] = '.'
	}
	return gpsSum(grid)
}

// widen doubles the warehouse: walls and boxes become two tiles.
func widen(rows []string) []string {
	wide := make([]string, len(rows))
	var b strings.Builder
	for y, row := range rows {
		b.Reset()
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '#':
				b.WriteString("##")
			case 'O':
				b.WriteString("[]")
			case '@':
				b.WriteString("@.")
			default:
				b.WriteString("..")
			}
		}
		wide[y] = b.String()
	}
	return wide
}

// pushWide attempts a vertical push of the box whose left half is at
// (x,y). It collects every box in the dependency tree; if any of them
// hits a wall the push fails and nothing moves.
func pushWide(grid [][]byte, x, y, dy int, moved *[][2]int) bool {
	*moved = append(*moved, [2]int{x, y})
	for _, nx := range []int{x, x + 1} {
		switch grid[y+dy][nx] {
		case '#':
			return false
		case '[':
			if !pushWide(grid, nx, y+dy, dy, moved) {
				return false
			}
		case ']':
			if !pushWide(grid, nx-1, y+dy, dy, moved) {
				return false
			}
		}
		// A '[' at x pushes both halves; skip the duplicate visit.
		if grid[y+dy][x] == '[' {
			break
		}
	}
	return true
}

func part2(w warehouse) string {
	grid, rx, ry := mutable(widen(w.grid))
	for _, move := range w.moves {
		dx, dy := moveSteps[move][0], moveSteps[move][1]
		if dy == 0 {
			// Horizontal pushes behave like part 1 with longer chains.
			fx := rx + dx
			for grid[ry][fx] == '[' || grid[ry][fx] == ']' {
				fx += dx
			}
			if grid[ry][fx] == '#' {
				continue
			}
			// Shift the whole run one tile toward the free spot.
			for x := fx; x != rx; x -= dx {
				grid[ry][x] = grid[ry][x-dx]
			}
			rx += dx
			grid[ry][rx] = '.'
			continue
		}
		var boxes [][2]int
		ok := true
		switch grid[ry+dy][rx] {
		case '#':
			ok = false
		case '[':
			ok = pushWide(grid, rx, ry+dy, dy, &boxes)
		case ']':
			ok = pushWide(grid, rx-1, ry+dy, dy, &boxes)
		}
		if !ok {
			continue
		}
		// Clear then redraw; a box may appear twice in the list when
		// two parents push it, clearing first makes that harmless.
		for _, b := range boxes {
			grid[b[1]][b[0]] = '.'
			grid[b[1]][b[0]+1] = '.'
		}
		for _, b := range boxes {
			grid[b[1]+dy][b[0]] = '['
			grid[b[1]+dy][b[0]+1] = ']'
		}
		ry += dy
	}
	return gpsSum(grid)
}
