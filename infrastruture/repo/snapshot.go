package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ i.SnapshotRepo = &SnapshotRepo{}

// SnapshotRepo handles the persistence of maze snapshots.
type SnapshotRepo struct {
	collection *mongo.Collection
}

// NewSnapshotRepo creates a new SnapshotRepo with the given MongoDB client, database name, and collection name.
func NewSnapshotRepo(client *mongo.Client, dbName, collectionName string) *SnapshotRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SnapshotRepo{
		collection: collection,
	}
}

// Save inserts or updates a snapshot in the repository.
func (s *SnapshotRepo) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": snapshot.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      snapshot.Name,
			"rows":      snapshot.Rows,
			"cols":      snapshot.Cols,
			"layout":    snapshot.Layout,
			"createdAt": snapshot.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", snapshot.ID, err)
	}

	return nil
}

// ByID retrieves a snapshot by its ID.
// Returns domain.ErrSnapshotNotFound if no snapshot has that ID.
func (s *SnapshotRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var snapshot domain.Snapshot
	if err := s.collection.FindOne(ctx, filter).Decode(&snapshot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, id)
		}
		return nil, fmt.Errorf("loading snapshot %s: %w", id, err)
	}
	return &snapshot, nil
}

// ByIDs retrieves the snapshots whose IDs are listed, in no particular order.
// Unknown IDs are skipped.
func (s *SnapshotRepo) ByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$in": ids}}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	snapshots := []*domain.Snapshot{}
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("decoding snapshots: %w", err)
	}
	return snapshots, nil
}
