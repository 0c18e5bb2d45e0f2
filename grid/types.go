// Package grid provides A* pathfinding over rectangular integer height
// grids using a 4-cell neighborhood.
//
// A cell value of 0 is a wall; a positive value is the cost of stepping
// onto that cell. The search minimizes the sum of entered-cell costs and
// reports visit statistics alongside the route, so callers can compare how
// much of the map each heuristic had to explore.
//
// Complexity: O(C log C) time and O(C) space for C walkable cells, as each
// cell enters the priority queue a bounded number of times under the lazy
// decrease-key strategy.
package grid

import (
	"errors"
	"math"
	"time"
)

// Sentinel errors for grid routing.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrOutOfBounds indicates a start or goal coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBlocked indicates the start or goal sits on a wall cell.
	ErrBlocked = errors.New("grid: start or goal is a wall")

	// ErrNoRoute indicates no walkable path connects start and goal.
	ErrNoRoute = errors.New("grid: no route between start and goal")
)

// Grid is a rectangular map of cell costs; 0 marks an impassable wall.
type Grid [][]int

// Coord addresses one cell as (row, column), 0-based.
type Coord struct {
	Row int
	Col int
}

// Heuristic estimates the remaining cost from a to b. It must never
// overestimate if A* is to return optimal routes.
type Heuristic func(a, b Coord) float64

// Manhattan is the L1 distance — the natural admissible heuristic for a
// 4-cell neighborhood.
func Manhattan(a, b Coord) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean is the L2 distance — a looser bound that explores more cells
// but remains admissible.
func Euclidean(a, b Coord) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Result describes one A* run.
type Result struct {
	// Cost is the total of entered-cell costs along Path.
	Cost float64
	// Path is the route from start to goal inclusive.
	Path []Coord
	// Visited counts cells finalized by the search.
	Visited int
	// VisitedPercent relates Visited to all walkable cells of the map.
	VisitedPercent float64
	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// rows/cols helpers; a Grid is valid when it has at least one row and all
// rows share a width (the graphfile parser guarantees this for loaded maps).
func (g Grid) size() (rows, cols int) {
	rows = len(g)
	if rows > 0 {
		cols = len(g[0])
	}

	return rows, cols
}

func (g Grid) inBounds(c Coord, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

func (g Grid) walkable(c Coord) bool {
	return g[c.Row][c.Col] > 0
}
