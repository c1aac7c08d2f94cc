package i

import "context"

// SortedIndex keeps members ordered by score.
type SortedIndex interface {
	// Add inserts or re-scores member under key.
	Add(ctx context.Context, key string, score float64, member string) error

	// Top returns up to amount members with the highest scores, highest first.
	Top(ctx context.Context, key string, amount int64) ([]string, error)

	// Trim keeps only the keep highest scored members.
	Trim(ctx context.Context, key string, keep int64) error

	// Count returns the number of members under key.
	Count(ctx context.Context, key string) int64
}
