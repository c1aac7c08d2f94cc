package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxSnapshotNameLength = 64
	defaultSnapshotName   = "untitled"
)

var (
	ErrSnapshotNameTooLong = errors.New("snapshot name too long")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
)

// Snapshot is a stored maze: its plain text layout plus listing metadata.
type Snapshot struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rows      int       `bson:"rows" json:"rows"`
	Cols      int       `bson:"cols" json:"cols"`
	Layout    string    `bson:"layout" json:"layout"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// SnapshotConfig holds the parameters for creating a Snapshot.
type SnapshotConfig struct {
	ID     uuid.UUID
	Name   string
	Rows   int
	Cols   int
	Layout string
}

// NewSnapshot creates a Snapshot stamped with the current time. An empty name is
// replaced by a default one.
func NewSnapshot(config SnapshotConfig) (*Snapshot, error) {
	name := strings.TrimSpace(config.Name)
	if name == "" {
		name = defaultSnapshotName
	}
	if len(name) > maxSnapshotNameLength {
		return nil, ErrSnapshotNameTooLong
	}

	return &Snapshot{
		ID:        config.ID,
		Name:      name,
		Rows:      config.Rows,
		Cols:      config.Cols,
		Layout:    config.Layout,
		CreatedAt: time.Now().UTC(),
	}, nil
}
