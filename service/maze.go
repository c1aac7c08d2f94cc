package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultIndexKey       = "mazes:recent"
	defaultRecentCapacity = 100
	defaultRecentLimit    = 20
	defaultMaxCells       = 1_000_000
)

var (
	ErrNotConfigured   = errors.New("maze store not configured")
	ErrMazeTooLarge    = errors.New("maze too large")
	ErrTooManyAttempts = errors.New("too many generation attempts requested")
)

var _ i.MazeService = &MazeService{}

// Options tunes a MazeService.
type Options struct {
	IndexKey       string // Key of the recent-snapshot index
	RecentCapacity int64  // Snapshots kept in the recent index
	RecentLimit    int    // Default and maximum size of a Recent listing
	MaxCells       int    // Largest rows*cols accepted by Solve, SolveText and Save
}

// Config holds the collaborators of a MazeService. Repo and Index may be nil, in
// which case the snapshot operations fail with ErrNotConfigured.
type Config struct {
	Generator *generator.Generator
	Repo      i.SnapshotRepo
	Index     i.SortedIndex
	Logger    i.Logger
	Options   *Options
}

// MazeService generates mazes, runs searches on them and stores snapshots.
type MazeService struct {
	generator *generator.Generator
	repo      i.SnapshotRepo
	index     i.SortedIndex
	logger    i.Logger
	opts      *Options
}

// NewMazeService wires a MazeService, filling unset options with defaults.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	gen := c.Generator
	if gen == nil {
		gen = generator.New(nil)
	}

	opts := c.Options
	if opts == nil {
		opts = &Options{}
	}

	if opts.IndexKey == "" {
		opts.IndexKey = defaultIndexKey
	}

	if opts.RecentCapacity <= 0 {
		opts.RecentCapacity = defaultRecentCapacity
	}

	if opts.RecentLimit <= 0 {
		opts.RecentLimit = defaultRecentLimit
	}

	if opts.MaxCells <= 0 {
		opts.MaxCells = defaultMaxCells
	}

	return &MazeService{
		generator: gen,
		repo:      c.Repo,
		index:     c.Index,
		logger:    c.Logger,
		opts:      opts,
	}, nil
}

// Solve generates a maze for req and searches it. When req.EnsureSolvable is set
// the maze is regenerated until its exit is reachable, up to the attempt cap.
// req.MaxAttempts may lower the generator's cap but never raise it.
// A search that finds no path is a normal outcome, not an error.
func (s *MazeService) Solve(ctx context.Context, req domain.SolveRequest) (*domain.Outcome, error) {
	if !req.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", search.ErrUnknownAlgorithm, req.Algorithm)
	}

	if err := s.checkSize(req.Rows, req.Cols); err != nil {
		return nil, err
	}

	if req.MaxAttempts > s.generator.MaxAttempts() {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyAttempts, req.MaxAttempts, s.generator.MaxAttempts())
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	params := generator.Params{
		Rows:    req.Rows,
		Cols:    req.Cols,
		Density: req.Density,
		Entry:   req.Entry,
		Exit:    req.Exit,
	}

	start := time.Now()
	var (
		grid     *maze.Grid
		attempts = 1
		err      error
	)
	if req.EnsureSolvable {
		gen := s.generator
		if req.MaxAttempts > 0 && req.MaxAttempts != gen.MaxAttempts() {
			gen = generator.New(&generator.Options{MaxAttempts: req.MaxAttempts})
		}
		grid, attempts, err = gen.GenerateSolvable(rng, params)
	} else {
		grid, err = s.generator.Generate(rng, params)
	}
	if err != nil {
		if errors.Is(err, generator.ErrUnsolvableMaze) {
			s.logger.Warning(fmt.Sprintf("Generation gave up: seed=%d %s", seed, err))
		}
		return nil, err
	}

	res, err := search.Run(req.Algorithm, grid)
	if err != nil {
		return nil, err
	}

	outcome := &domain.Outcome{
		Grid:     grid,
		Result:   res,
		Attempts: attempts,
		Seed:     seed,
		Duration: time.Since(start),
	}
	s.logger.Info(fmt.Sprintf("Solved %dx%d maze: seed=%d algorithm=%s attempts=%d found=%t visited=%d steps=%d",
		grid.Rows(), grid.Cols(), seed, res.Algorithm, attempts, res.Found, len(res.Visited), res.Steps()))
	return outcome, nil
}

// SolveText imports a plain text maze and searches it.
func (s *MazeService) SolveText(ctx context.Context, layout []byte, alg search.Algorithm) (*domain.Outcome, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", search.ErrUnknownAlgorithm, alg)
	}

	// A cell takes at most two bytes ('·') and each row ends in at most "\r\n".
	if maxBytes := 4*s.opts.MaxCells + 2; len(layout) > maxBytes {
		return nil, fmt.Errorf("%w: layout of %d bytes exceeds %d", ErrMazeTooLarge, len(layout), maxBytes)
	}

	start := time.Now()
	grid, err := maze.Unmarshal(layout)
	if err != nil {
		return nil, err
	}

	if err := s.checkSize(grid.Rows(), grid.Cols()); err != nil {
		return nil, err
	}

	res, err := search.Run(alg, grid)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Solved imported %dx%d maze: algorithm=%s found=%t visited=%d steps=%d",
		grid.Rows(), grid.Cols(), res.Algorithm, res.Found, len(res.Visited), res.Steps()))
	return &domain.Outcome{
		Grid:     grid,
		Result:   res,
		Duration: time.Since(start),
	}, nil
}

// Save stores the text snapshot of g under name and records it in the recent
// index. Index failures are logged and do not fail the save.
func (s *MazeService) Save(ctx context.Context, name string, g *maze.Grid) (*domain.Snapshot, error) {
	if s.repo == nil {
		return nil, ErrNotConfigured
	}

	if err := s.checkSize(g.Rows(), g.Cols()); err != nil {
		return nil, err
	}

	snapshot, err := domain.NewSnapshot(domain.SnapshotConfig{
		ID:     uuid.New(),
		Name:   name,
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Layout: string(maze.Marshal(g)),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save snapshot: %s", err))
		return nil, err
	}

	indexed := int64(0)
	if s.index != nil {
		if err := s.index.Add(ctx, s.opts.IndexKey, float64(snapshot.CreatedAt.UnixNano()), snapshot.ID.String()); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to index snapshot %s: %s", snapshot.ID, err))
		} else if err := s.index.Trim(ctx, s.opts.IndexKey, s.opts.RecentCapacity); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to trim recent index: %s", err))
		}
		indexed = s.index.Count(ctx, s.opts.IndexKey)
	}

	s.logger.Info(fmt.Sprintf("Snapshot saved: ID=%s name=%q size=%dx%d recent=%d",
		snapshot.ID, snapshot.Name, snapshot.Rows, snapshot.Cols, indexed))
	return snapshot, nil
}

// Load returns the snapshot with the given id and the grid it describes.
func (s *MazeService) Load(ctx context.Context, id uuid.UUID) (*domain.Snapshot, *maze.Grid, error) {
	if s.repo == nil {
		return nil, nil, ErrNotConfigured
	}

	snapshot, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	grid, err := maze.Unmarshal([]byte(snapshot.Layout))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Stored snapshot %s is corrupt: %s", id, err))
		return nil, nil, err
	}

	return snapshot, grid, nil
}

// Recent lists the most recently saved snapshots, newest first. A non-positive
// or oversized limit is replaced by the configured RecentLimit.
func (s *MazeService) Recent(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	if s.repo == nil || s.index == nil {
		return nil, ErrNotConfigured
	}

	if limit <= 0 || limit > s.opts.RecentLimit {
		limit = s.opts.RecentLimit
	}

	rawIDs, err := s.index.Top(ctx, s.opts.IndexKey, int64(limit))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to read recent index: %s", err))
		return nil, err
	}

	var ids []uuid.UUID
	for _, raw := range rawIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		} else {
			s.logger.Warning(fmt.Sprintf("Non-UUID value in recent index: %s", raw))
		}
	}
	if len(ids) == 0 {
		return []*domain.Snapshot{}, nil
	}

	snapshots, err := s.repo.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Keep index order; the repository returns documents in any order.
	rank := make(map[uuid.UUID]int, len(ids))
	for n, id := range ids {
		rank[id] = n
	}
	slices.SortFunc(snapshots, func(a, b *domain.Snapshot) int {
		return rank[a.ID] - rank[b.ID]
	})

	return snapshots, nil
}

// checkSize rejects grids with more than MaxCells cells.
func (s *MazeService) checkSize(rows, cols int) error {
	if rows > 0 && cols > 0 && rows > s.opts.MaxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrMazeTooLarge, rows, cols, s.opts.MaxCells)
	}
	return nil
}
