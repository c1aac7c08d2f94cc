package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// SnapshotRepo defines the interface for maze snapshot persistence operations.
type SnapshotRepo interface {
	// Save inserts or replaces a snapshot.
	Save(ctx context.Context, s *domain.Snapshot) error

	// ByID retrieves a snapshot by its unique ID.
	// Returns domain.ErrSnapshotNotFound if no snapshot has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Snapshot, error)

	// ByIDs retrieves the snapshots with the given IDs. Unknown IDs are skipped.
	ByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Snapshot, error)
}
