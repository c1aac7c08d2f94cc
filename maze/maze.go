/*
Package maze provides the grid model used by the generator and the searches.

A Grid is a rectangular lattice of cells, each either open or a wall, with exactly
one entry and one exit cell. Entry and exit are always open and never coincide.

Grids are immutable once built: New draws walls at random with a caller supplied
random source, FromLayout builds one from an explicit wall layout, and Unmarshal
reads one from its plain text form. A Grid may be shared by concurrent searches.
*/
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimensions")
	ErrInvalidPoint     = errors.New("invalid entry or exit point")
	ErrInvalidDensity   = errors.New("invalid wall density")
)

// Grid represents a rectangular maze of open and wall cells.
type Grid struct {
	rows  int      // Number of rows
	cols  int      // Number of columns
	walls [][]bool // walls[row][col] is true when the cell is impassable
	entry CellPosition
	exit  CellPosition
}

// New creates a rows x cols grid where every cell other than entry and exit is a
// wall with probability density.
//
// One value is drawn from rng for every cell in row-major order, entry and exit
// included, and entry and exit are forced open afterwards. The same rng state and
// parameters therefore always produce the same grid.
func New(rows, cols int, density float64, entry, exit CellPosition, rng *rand.Rand) (*Grid, error) {
	if err := validate(rows, cols, entry, exit); err != nil {
		return nil, err
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidDensity, density)
	}

	walls := make([][]bool, rows)
	for r := range walls {
		walls[r] = make([]bool, cols)
		for c := range walls[r] {
			walls[r][c] = rng.Float64() < density
		}
	}

	return newGrid(walls, entry, exit), nil
}

// FromLayout builds a grid from an explicit wall layout. Every row must have the
// same length. Entry and exit are forced open.
func FromLayout(walls [][]bool, entry, exit CellPosition) (*Grid, error) {
	rows := len(walls)
	cols := 0
	if rows > 0 {
		cols = len(walls[0])
	}
	for r, row := range walls {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidDimension, r, len(row), cols)
		}
	}
	if err := validate(rows, cols, entry, exit); err != nil {
		return nil, err
	}

	cp := make([][]bool, rows)
	for r := range walls {
		cp[r] = append([]bool(nil), walls[r]...)
	}
	return newGrid(cp, entry, exit), nil
}

func newGrid(walls [][]bool, entry, exit CellPosition) *Grid {
	walls[entry.Row][entry.Col] = false
	walls[exit.Row][exit.Col] = false
	return &Grid{
		rows:  len(walls),
		cols:  len(walls[0]),
		walls: walls,
		entry: entry,
		exit:  exit,
	}
}

// validate checks the structural invariants shared by every constructor.
func validate(rows, cols int, entry, exit CellPosition) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d, both must be at least 1", ErrInvalidDimension, rows, cols)
	}

	inBound := func(p CellPosition) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}
	if !inBound(entry) {
		return fmt.Errorf("%w: entry %s is out of bounds", ErrInvalidPoint, entry)
	}
	if !inBound(exit) {
		return fmt.Errorf("%w: exit %s is out of bounds", ErrInvalidPoint, exit)
	}
	if entry == exit {
		return fmt.Errorf("%w: entry and exit are both %s", ErrInvalidPoint, entry)
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Entry returns the entry position.
func (g *Grid) Entry() CellPosition { return g.entry }

// Exit returns the exit position.
func (g *Grid) Exit() CellPosition { return g.exit }

// InBound reports whether pos lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// IsWall reports whether pos is an in-bounds wall.
func (g *Grid) IsWall(pos CellPosition) bool {
	return g.InBound(pos) && g.walls[pos.Row][pos.Col]
}

// IsOpen reports whether pos is in bounds and not a wall.
func (g *Grid) IsOpen(pos CellPosition) bool {
	return g.InBound(pos) && !g.walls[pos.Row][pos.Col]
}

// Cell returns the cell at pos, or false when pos is out of bounds.
func (g *Grid) Cell(pos CellPosition) (Cell, bool) {
	if !g.InBound(pos) {
		return Cell{}, false
	}
	return Cell{
		Pos:   pos,
		Wall:  g.walls[pos.Row][pos.Col],
		Entry: pos == g.entry,
		Exit:  pos == g.exit,
	}, true
}

// Neighbors returns the open cells one step away from pos, in Directions order.
func (g *Grid) Neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		if next := pos.Add(d); g.IsOpen(next) {
			result = append(result, next)
		}
	}
	return result
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, row := range g.walls {
		for _, w := range row {
			if w {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same size, walls, entry and exit.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols || g.entry != other.entry || g.exit != other.exit {
		return false
	}
	for r := range g.walls {
		for c := range g.walls[r] {
			if g.walls[r][c] != other.walls[r][c] {
				return false
			}
		}
	}
	return true
}

// String provides the plain text representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder
	output.Grow(g.rows * (g.cols + 1))

	for row := 0; row < g.rows; row++ {
		if row > 0 {
			output.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			output.WriteRune(g.symbol(CellPosition{Row: row, Col: col}))
		}
	}

	return output.String()
}

// symbol returns the base text symbol of the cell at pos.
func (g *Grid) symbol(pos CellPosition) rune {
	switch {
	case pos == g.entry:
		return SymbolEntry
	case pos == g.exit:
		return SymbolExit
	case g.walls[pos.Row][pos.Col]:
		return SymbolWall
	default:
		return SymbolOpen
	}
}
