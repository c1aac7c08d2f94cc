package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

// SolveRequest describes a maze to generate and the search to run on it.
type SolveRequest struct {
	Rows           int
	Cols           int
	Density        float64 // Probability of a non entry/exit cell being a wall
	Entry          maze.CellPosition
	Exit           maze.CellPosition
	Algorithm      search.Algorithm
	Seed           *int64 // Drawn from the clock when nil
	EnsureSolvable bool   // Regenerate until the exit is reachable
	MaxAttempts    int    // Cap for EnsureSolvable, service default when non-positive
}

// Outcome is the grid a search ran on and what it found.
type Outcome struct {
	Grid     *maze.Grid
	Result   search.Result
	Attempts int   // Grids generated, 0 for imported mazes
	Seed     int64 // Seed the grid was generated from
	Duration time.Duration
}
