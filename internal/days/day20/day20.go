// Package day20 solves Race Condition: the racetrack has a single
// path, and a cheat teleports through walls for a bounded number of
// picoseconds. Both parts count cheats that save enough time; they
// differ only in cheat length (2 vs 20) and are served by one scan
// over track-cell pairs within taxicab range.
package day20

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 20 with the harness.
func Solution() solver.Solution {
	return solver.New(20, parse, part1, part2)
}

type track struct {
	open   [][]bool
	width  int
	height int
	startX int
	startY int
}

func parse(input string) (*track, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	t := &track{height: len(lines), width: len(lines[0]), startX: -1}
	t.open = make([][]bool, t.height)
	for y, line := range lines {
		t.open[y] = make([]bool, t.width)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
			case '.', 'E':
				t.open[y][x] = true
			case 'S':
				t.open[y][x] = true
				t.startX, t.startY = x, y
			default:
				return nil, fmt.Errorf("invalid character %q", line[x])
			}
		}
	}
	if t.startX < 0 {
		return nil, fmt.Errorf("can't find start")
	}
	return t, nil
}

// distances flood-fills race time from the start over open tiles.
// Unreachable tiles stay -1.
func (t *track) distances() [][]int {
	dist := make([][]int, t.height)
	for y := range dist {
		dist[y] = make([]int, t.width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	dist[t.startY][t.startX] = 0
	queue := [][2]int{{t.startX, t.startY}}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range [4][2]int{{c[0] - 1, c[1]}, {c[0] + 1, c[1]}, {c[0], c[1] - 1}, {c[0], c[1] + 1}} {
			if n[0] < 0 || n[0] >= t.width || n[1] < 0 || n[1] >= t.height {
				continue
			}
			if !t.open[n[1]][n[0]] || dist[n[1]][n[0]] >= 0 {
				continue
			}
			dist[n[1]][n[0]] = dist[c[1]][c[0]] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// countCheats counts ordered cheat start/end pairs of open tiles
// within maxCheat taxicab steps whose shortcut saves at least
// minSaving picoseconds.
func (t *track) countCheats(maxCheat, minSaving int) int {
	dist := t.distances()
	count := 0
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			if dist[y][x] < 0 {
				continue
			}
			for dy := -maxCheat; dy <= maxCheat; dy++ {
				ny := y + dy
				if ny < 0 || ny >= t.height {
					continue
				}
				span := maxCheat - abs(dy)
				for dx := -span; dx <= span; dx++ {
					nx := x + dx
					if nx < 0 || nx >= t.width || dist[ny][nx] < 0 {
						continue
					}
					walk := abs(dx) + abs(dy)
					if dist[ny][nx]-dist[y][x]-walk >= minSaving {
						count++
					}
				}
			}
		}
	}
	return count
}

func part1(t *track) string {
	return strconv.Itoa(t.countCheats(2, 100))
}

func part2(t *track) string {
	return strconv.Itoa(t.countCheats(20, 100))
}
