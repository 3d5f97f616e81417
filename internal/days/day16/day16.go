// Package day16 solves Reindeer Maze: cheapest route from S to E
// where a step costs 1 and a 90-degree turn costs 1000. Search runs
// over (tile, facing) states; part 2 walks cheapest predecessors
// backward from the end to count tiles on any best route.
package day16

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/roach88/advent2024/internal/solver"
)

// Solution registers day 16 with the harness.
func Solution() solver.Solution {
	return solver.New(16, parse, part1, part2)
}

// Facings in turn order: north, east, south, west.
var facingSteps = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

const east = 1

type maze struct {
	open   [][]bool
	width  int
	height int
	startX int
	startY int
	endX   int
	endY   int
}

func parse(input string) (*maze, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	m := &maze{
		height: len(lines),
		width:  len(lines[0]),
		startX: -1,
		endX:   -1,
	}
	m.open = make([][]bool, m.height)
	for y, line := range lines {
		m.open[y] = make([]bool, m.width)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
			case '.':
				m.open[y][x] = true
			case 'S':
				m.open[y][x] = true
				m.startX, m.startY = x, y
			case 'E':
				m.open[y][x] = true
				m.endX, m.endY = x, y
			default:
				return nil, fmt.Errorf("invalid character %q", line[x])
			}
		}
	}
	if m.startX < 0 {
		return nil, fmt.Errorf("can't find start")
	}
	if m.endX < 0 {
		return nil, fmt.Errorf("can't find end")
	}
	return m, nil
}

// state packs (x, y, facing) into one index for the distance table.
func (m *maze) state(x, y, facing int) int {
	return (y*m.width+x)*4 + facing
}

type workItem struct {
	cost  int
	state int
}

type workQueue []workItem

func (q workQueue) Len() int            { return len(q) }
func (q workQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q workQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *workQueue) Push(v any)         { *q = append(*q, v.(workItem)) }
func (q *workQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}

const unreachable = int(^uint(0) >> 1)

// distances runs Dijkstra from the start facing east and returns the
// cheapest cost to every (tile, facing) state.
func (m *maze) distances() []int {
	dist := make([]int, m.width*m.height*4)
	for i := range dist {
		dist[i] = unreachable
	}
	start := m.state(m.startX, m.startY, east)
	dist[start] = 0
	queue := &workQueue{{cost: 0, state: start}}
	for queue.Len() > 0 {
		current := heap.Pop(queue).(workItem)
		if current.cost > dist[current.state] {
			continue
		}
		facing := current.state % 4
		x := (current.state / 4) % m.width
		y := current.state / 4 / m.width
		// Step forward.
		nx, ny := x+facingSteps[facing][0], y+facingSteps[facing][1]
		if ny >= 0 && ny < m.height && nx >= 0 && nx < m.width && m.open[ny][nx] {
			next := m.state(nx, ny, facing)
			if current.cost+1 < dist[next] {
				dist[next] = current.cost + 1
				heap.Push(queue, workItem{cost: current.cost + 1, state: next})
			}
		}
		// Turn left or right in place.
		for _, turn := range []int{1, 3} {
			next := m.state(x, y, (facing+turn)%4)
			if current.cost+1000 < dist[next] {
				dist[next] = current.cost + 1000
				heap.Push(queue, workItem{cost: current.cost + 1000, state: next})
			}
		}
	}
	return dist
}

// bestCost picks the cheapest facing at the end tile.
func (m *maze) bestCost(dist []int) int {
	best := unreachable
	for facing := 0; facing < 4; facing++ {
		if d := dist[m.state(m.endX, m.endY, facing)]; d < best {
			best = d
		}
	}
	return best
}

func part1(m *maze) string {
	return fmt.Sprint(m.bestCost(m.distances()))
}

// part2 counts tiles that lie on at least one cheapest route: walk
// backward from the optimal end states, keeping predecessors whose
// recorded distance accounts exactly for the edge just undone.
func part2(m *maze) string {
	dist := m.distances()
	best := m.bestCost(dist)
	onPath := make([]bool, len(dist))
	var pending []int
	for facing := 0; facing < 4; facing++ {
		s := m.state(m.endX, m.endY, facing)
		if dist[s] == best && !onPath[s] {
			onPath[s] = true
			pending = append(pending, s)
		}
	}
	for len(pending) > 0 {
		s := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		facing := s % 4
		x := (s / 4) % m.width
		y := s / 4 / m.width
		// Undo a forward step.
		px, py := x-facingSteps[facing][0], y-facingSteps[facing][1]
		if py >= 0 && py < m.height && px >= 0 && px < m.width && m.open[py][px] {
			p := m.state(px, py, facing)
			if dist[p]+1 == dist[s] && !onPath[p] {
				onPath[p] = true
				pending = append(pending, p)
			}
		}
		// Undo a turn.
		for _, turn := range []int{1, 3} {
			p := m.state(x, y, (facing+turn)%4)
			if dist[p]+1000 == dist[s] && !onPath[p] {
				onPath[p] = true
				pending = append(pending, p)
			}
		}
	}
	tiles := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			for facing := 0; facing < 4; facing++ {
				if onPath[m.state(x, y, facing)] {
					tiles++
					break
				}
			}
		}
	}
	return fmt.Sprint(tiles)
}
