// Package search finds a path from a maze's entry to its exit.
//
// BFS returns a shortest path in number of moves. DFS walks depth first with
// backtracking and returns the first path it reaches. Both report every cell they
// discovered, which callers use for the visited overlay. Searches never modify the
// grid, so one grid may be searched concurrently.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// Algorithm selects the traversal strategy.
type Algorithm int

const (
	BFS Algorithm = iota + 1
	DFS
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a == BFS || a == DFS
}

// ParseAlgorithm accepts "bfs" or "dfs" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one search run. It holds coordinates only.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Path      []maze.CellPosition // entry to exit inclusive, empty when not found
	Visited   []maze.CellPosition // discovery order, no duplicates
}

// Steps returns the number of moves along the path, or -1 when no path was found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// VisitedSet returns the visited cells as a set.
func (r Result) VisitedSet() map[maze.CellPosition]struct{} {
	set := make(map[maze.CellPosition]struct{}, len(r.Visited))
	for _, p := range r.Visited {
		set[p] = struct{}{}
	}
	return set
}

// Run searches g with the selected algorithm.
func Run(alg Algorithm, g *maze.Grid) (Result, error) {
	switch alg {
	case BFS:
		return BFSearch(g), nil
	case DFS:
		return DFSearch(g), nil
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
}
