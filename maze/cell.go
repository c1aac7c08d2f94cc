package maze

import "fmt"

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Add returns the position reached by moving one step in direction d.
func (cp CellPosition) Add(d Direction) CellPosition {
	return CellPosition{Row: cp.Row + d.Row, Col: cp.Col + d.Col}
}

// Adjacent reports whether other is one orthogonal step away from cp.
func (cp CellPosition) Adjacent(other CellPosition) bool {
	dr, dc := cp.Row-other.Row, cp.Col-other.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// Cell is a read-only view of a single cell in a maze grid.
type Cell struct {
	Pos   CellPosition // Position of the cell
	Wall  bool         // Wall indicates whether the cell is impassable.
	Entry bool         // Entry marks the cell the search starts from.
	Exit  bool         // Exit marks the cell the search is looking for.
}

// IsOpen reports whether the cell can be walked on.
func (c Cell) IsOpen() bool {
	return !c.Wall
}

// Direction is a single orthogonal step.
type Direction struct {
	Row int
	Col int
}

// Directions lists the four moves in the order neighbours are produced.
// The order is fixed so that searches over the same grid are reproducible.
var Directions = [4]Direction{
	{Row: -1, Col: 0}, // up
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
	{Row: 0, Col: 1},  // right
}
