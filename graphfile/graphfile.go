// Package graphfile implements the line-oriented text format the workbench
// loads graphs from, plus the integer grid format used by A* routing.
//
// Graph format:
//
//	line 1:  n            — declared vertex count; vertices are 0..n-1
//	then:    u v [w]      — one edge per line, whitespace-separated;
//	                        w is an optional real weight, default 1.0
//
// Blank lines are skipped. Duplicate pair definitions resolve to the last
// occurrence's weight; edge endpoints outside 0..n-1 are rejected. Order of
// lines does not otherwise affect the resulting graph.
package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/grid"
)

// ErrMalformedInput indicates the input does not follow the expected shape:
// missing header, non-numeric field, negative vertex count, ragged grid
// rows, or an edge endpoint outside the declared range.
var ErrMalformedInput = errors.New("graphfile: malformed input")

// Parse reads the graph format and returns the declared vertex count plus
// the edge declarations in file order, with the 1.0 default applied to
// weightless lines. Duplicate pairs are NOT resolved here — that is the
// store's "last definition wins" job during Load.
//
// Complexity: O(L) over input lines.
func Parse(r io.Reader) (int, []core.EdgeDecl, error) {
	sc := bufio.NewScanner(r)

	// 1) Header: the declared vertex count.
	n, err := parseHeader(sc)
	if err != nil {
		return 0, nil, err
	}

	// 2) Body: one "u v [w]" declaration per non-blank line.
	var decls []core.EdgeDecl
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		d, err := parseEdge(fields, line)
		if err != nil {
			return 0, nil, err
		}
		decls = append(decls, d)
	}
	if err = sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return n, decls, nil
}

// parseHeader consumes lines until the vertex-count header is found.
func parseHeader(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: line 1: vertex count %q is not an integer", ErrMalformedInput, text)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: line 1: negative vertex count %d", ErrMalformedInput, n)
		}

		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return 0, fmt.Errorf("%w: empty input, expected vertex count on line 1", ErrMalformedInput)
}

// parseEdge turns one split line into an EdgeDecl.
func parseEdge(fields []string, line int) (core.EdgeDecl, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return core.EdgeDecl{}, fmt.Errorf("%w: line %d: expected \"u v [w]\", got %d fields", ErrMalformedInput, line, len(fields))
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.EdgeDecl{}, fmt.Errorf("%w: line %d: vertex %q is not an integer", ErrMalformedInput, line, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.EdgeDecl{}, fmt.Errorf("%w: line %d: vertex %q is not an integer", ErrMalformedInput, line, fields[1])
	}

	w := 1.0 // weight defaults to 1.0 when omitted
	if len(fields) == 3 {
		w, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return core.EdgeDecl{}, fmt.Errorf("%w: line %d: weight %q is not a number", ErrMalformedInput, line, fields[2])
		}
	}

	return core.EdgeDecl{From: u, To: v, Weight: w}, nil
}

// Load parses the graph format and builds a fresh graph of the requested
// mode. Parse errors and range violations surface as ErrMalformedInput;
// a prior graph held by the caller is never touched (all-or-nothing).
func Load(r io.Reader, directed bool) (*core.Graph, error) {
	n, decls, err := Parse(r)
	if err != nil {
		return nil, err
	}

	g, err := core.Load(directed, n, decls)
	if err != nil {
		// The shape was fine but an endpoint escaped the declared bound:
		// still a malformed file from the caller's point of view.
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return g, nil
}

// LoadFile is a convenience wrapper around Load for a file path.
func LoadFile(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, directed)
}

// ParseGrid reads the routing map format: rows of whitespace-separated
// integers of equal width, blank lines skipped. 0 marks a wall, positive
// values the cost of stepping onto the cell.
func ParseGrid(r io.Reader) (grid.Grid, error) {
	sc := bufio.NewScanner(r)

	var rows grid.Grid
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: cell %q is not an integer", ErrMalformedInput, line, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedInput)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedInput, i+1, len(row), width)
		}
	}

	return rows, nil
}

// LoadGridFile is a convenience wrapper around ParseGrid for a file path.
func LoadGridFile(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseGrid(f)
}
