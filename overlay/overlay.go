// Package overlay renders a maze together with the outcome of a search.
package overlay

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

// Options controls which annotations are drawn.
type Options struct {
	ShowVisited bool // Mark explored cells that are not on the path
}

// Render draws g with res layered on top. A nil res renders the bare maze, which
// is identical to its text snapshot.
//
// Each cell takes the first matching symbol of: entry, exit, wall, path, visited,
// open.
func Render(g *maze.Grid, res *search.Result, opts Options) string {
	var onPath, visited map[maze.CellPosition]struct{}
	if res != nil {
		onPath = make(map[maze.CellPosition]struct{}, len(res.Path))
		for _, p := range res.Path {
			onPath[p] = struct{}{}
		}
		if opts.ShowVisited {
			visited = res.VisitedSet()
		}
	}

	var out strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			out.WriteRune(symbol(g, maze.CellPosition{Row: row, Col: col}, onPath, visited))
		}
	}
	return out.String()
}

func symbol(g *maze.Grid, pos maze.CellPosition, onPath, visited map[maze.CellPosition]struct{}) rune {
	cell, _ := g.Cell(pos)
	switch {
	case cell.Entry:
		return maze.SymbolEntry
	case cell.Exit:
		return maze.SymbolExit
	case cell.Wall:
		return maze.SymbolWall
	}
	if _, ok := onPath[pos]; ok {
		return maze.SymbolPath
	}
	if _, ok := visited[pos]; ok {
		return maze.SymbolVisited
	}
	return maze.SymbolOpen
}

// Summary describes how much of the maze a search explored and what it found.
func Summary(res search.Result) string {
	lines := []string{fmt.Sprintf("Visited: %d nodes", len(res.Visited))}
	if res.Found {
		lines = append(lines, fmt.Sprintf("Path len: %d steps", res.Steps()))
	} else {
		lines = append(lines, "Path: none (no path found)")
	}
	return strings.Join(lines, "\n")
}
