package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/google/uuid"
)

// MazeService generates and solves mazes and manages stored snapshots.
type MazeService interface {
	// Solve generates a maze for the request and searches it.
	Solve(ctx context.Context, req domain.SolveRequest) (*domain.Outcome, error)

	// SolveText imports a plain text maze and searches it.
	SolveText(ctx context.Context, layout []byte, alg search.Algorithm) (*domain.Outcome, error)

	// Save stores g under name.
	Save(ctx context.Context, name string, g *maze.Grid) (*domain.Snapshot, error)

	// Load returns a stored snapshot and the grid it describes.
	Load(ctx context.Context, id uuid.UUID) (*domain.Snapshot, *maze.Grid, error)

	// Recent lists up to limit of the most recently stored snapshots, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.Snapshot, error)
}
