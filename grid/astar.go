package grid

import (
	"container/heap"
	"fmt"
	"time"
)

// moves is the 4-cell neighborhood, in a fixed order for determinism.
var moves = [4]Coord{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// AStar finds a minimum-cost route from start to goal on g, guided by h.
// The cost of a step is the value of the cell being entered.
//
// Steps:
//  1. Validate the grid and both endpoints (bounds, walls).
//  2. Seed the open heap with start at f = h(start, goal).
//  3. Pop the lowest f-score cell; skip stale entries (lazy decrease-key);
//     finalize it and stop once goal is finalized.
//  4. Relax the 4 neighbors, pushing improved g-scores with updated f.
//  5. Reconstruct the route from the predecessor map.
//
// Errors:
//   - ErrEmptyGrid, ErrOutOfBounds, ErrBlocked on invalid input.
//   - ErrNoRoute when goal is unreachable; statistics are still returned.
//
// Complexity: O(C log C) for C walkable cells.
func AStar(g Grid, start, goal Coord, h Heuristic) (Result, error) {
	rows, cols := g.size()
	if rows == 0 || cols == 0 {
		return Result{}, ErrEmptyGrid
	}
	if !g.inBounds(start, rows, cols) {
		return Result{}, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.Row, start.Col)
	}
	if !g.inBounds(goal, rows, cols) {
		return Result{}, fmt.Errorf("%w: goal (%d,%d)", ErrOutOfBounds, goal.Row, goal.Col)
	}
	if !g.walkable(start) || !g.walkable(goal) {
		return Result{}, ErrBlocked
	}

	// Walkable-cell total for the visited-percentage statistic.
	totalWalkable := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g[r][c] > 0 {
				totalWalkable++
			}
		}
	}

	began := time.Now()

	dist := map[Coord]float64{start: 0}
	prev := make(map[Coord]Coord)
	visited := 0
	reached := false

	pq := &cellPQ{{coord: start, dist: 0, f: h(start, goal)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*cellItem)
		cur := item.coord

		// Stale heap entry: a shorter route to cur was already finalized.
		if item.dist > dist[cur] {
			continue
		}
		visited++

		if cur == goal {
			reached = true
			break
		}

		for _, m := range moves {
			next := Coord{Row: cur.Row + m.Row, Col: cur.Col + m.Col}
			if !g.inBounds(next, rows, cols) || !g.walkable(next) {
				continue
			}

			nd := item.dist + float64(g[next.Row][next.Col])
			if best, seen := dist[next]; seen && nd >= best {
				continue
			}
			dist[next] = nd
			prev[next] = cur
			heap.Push(pq, &cellItem{coord: next, dist: nd, f: nd + h(next, goal)})
		}
	}

	res := Result{
		Visited: visited,
		Elapsed: time.Since(began),
	}
	if totalWalkable > 0 {
		res.VisitedPercent = float64(visited) / float64(totalWalkable) * 100
	}

	if !reached {
		return res, ErrNoRoute
	}

	// Walk the predecessor map backwards, then reverse in place.
	path := []Coord{goal}
	for cur := goal; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	res.Cost = dist[goal]
	res.Path = path

	return res, nil
}

// cellItem is one open-set entry; dist is the g-score, f = dist + heuristic.
type cellItem struct {
	coord Coord
	dist  float64
	f     float64
}

// cellPQ is a min-heap of *cellItem ordered by f-score, then g-score, then
// coordinate for full determinism on ties.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].coord.Row != pq[j].coord.Row {
		return pq[i].coord.Row < pq[j].coord.Row
	}

	return pq[i].coord.Col < pq[j].coord.Col
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
