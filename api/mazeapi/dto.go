// Package mazeapi exposes maze generation, solving and snapshot storage over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// SolveRequest asks for a generated maze to be searched.
type SolveRequest struct {
	Rows           int               `json:"rows"`
	Cols           int               `json:"cols"`
	Density        float64           `json:"density"`
	Entry          maze.CellPosition `json:"entry"`
	Exit           maze.CellPosition `json:"exit"`
	Algorithm      string            `json:"algorithm" binding:"required"`
	Seed           *int64            `json:"seed"`
	EnsureSolvable bool              `json:"ensure_solvable"`
	MaxAttempts    int               `json:"max_attempts"`
	ShowVisited    bool              `json:"show_visited"`
}

// SolveTextRequest asks for a plain text maze to be searched.
type SolveTextRequest struct {
	Layout      string `json:"layout" binding:"required"`
	Algorithm   string `json:"algorithm" binding:"required"`
	ShowVisited bool   `json:"show_visited"`
}

// SaveRequest stores a plain text maze under a name.
type SaveRequest struct {
	Name   string `json:"name"`
	Layout string `json:"layout" binding:"required"`
}

// SolveResponse reports a search. PathLength is -1 when no path was found.
type SolveResponse struct {
	Seed         int64               `json:"seed"`
	Attempts     int                 `json:"attempts"`
	Algorithm    string              `json:"algorithm"`
	Found        bool                `json:"found"`
	Path         []maze.CellPosition `json:"path"`
	VisitedCount int                 `json:"visited_count"`
	PathLength   int                 `json:"path_length"`
	Layout       string              `json:"layout"`
	Rendered     string              `json:"rendered"`
	DurationMS   float64             `json:"duration_ms"`
}

// RecentResponse lists stored snapshots, newest first.
type RecentResponse struct {
	Mazes []*domain.Snapshot `json:"mazes"`
}
