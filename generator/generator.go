// Package generator creates random mazes and, on request, keeps regenerating until
// the exit is reachable from the entry.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

const (
	DefaultMaxAttempts = 200
)

var (
	ErrUnsolvableMaze = errors.New("could not generate a solvable maze")
)

// Params describes the maze to generate.
type Params struct {
	Rows    int
	Cols    int
	Density float64 // Probability of a non entry/exit cell being a wall (0.0 to 1.0)
	Entry   maze.CellPosition
	Exit    maze.CellPosition
}

// Options configures a Generator.
type Options struct {
	MaxAttempts int // Grids tried by GenerateSolvable before giving up
}

// Generator creates mazes from caller supplied random sources.
type Generator struct {
	opts *Options
}

// New returns a Generator. A nil opts or a non-positive MaxAttempts falls back to
// DefaultMaxAttempts.
func New(opts *Options) *Generator {
	if opts == nil {
		opts = &Options{MaxAttempts: DefaultMaxAttempts}
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	return &Generator{opts: opts}
}

// MaxAttempts returns the configured attempt cap.
func (g *Generator) MaxAttempts() int {
	return g.opts.MaxAttempts
}

// Generate creates a single maze without checking that it can be solved.
func (g *Generator) Generate(rng *rand.Rand, p Params) (*maze.Grid, error) {
	return maze.New(p.Rows, p.Cols, p.Density, p.Entry, p.Exit, rng)
}

// GenerateSolvable creates mazes until a breadth first search from the entry
// reaches the exit, and returns that maze with the number of attempts it took.
//
// Invalid parameters fail on the first attempt and are not retried. When every
// attempt is unsolvable the returned error wraps ErrUnsolvableMaze.
func (g *Generator) GenerateSolvable(rng *rand.Rand, p Params) (*maze.Grid, int, error) {
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		grid, err := g.Generate(rng, p)
		if err != nil {
			return nil, attempt, err
		}

		if Solvable(grid) {
			return grid, attempt, nil
		}
	}

	return nil, g.opts.MaxAttempts, fmt.Errorf("%w: %d attempts exhausted for %dx%d at density %.2f",
		ErrUnsolvableMaze, g.opts.MaxAttempts, p.Rows, p.Cols, p.Density)
}

// Solvable reports whether the exit of grid is reachable from its entry.
func Solvable(grid *maze.Grid) bool {
	return search.BFSearch(grid).Found
}
