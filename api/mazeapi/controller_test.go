package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memRepo struct {
	snapshots map[uuid.UUID]*domain.Snapshot
}

func (r *memRepo) Save(_ context.Context, s *domain.Snapshot) error {
	r.snapshots[s.ID] = s
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Snapshot, error) {
	if s, ok := r.snapshots[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotNotFound, id)
}

func (r *memRepo) ByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Snapshot, error) {
	out := []*domain.Snapshot{}
	for _, id := range ids {
		if s, ok := r.snapshots[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type memIndex struct {
	scores map[string]float64
	seq    float64
}

func (x *memIndex) Add(_ context.Context, _ string, _ float64, member string) error {
	x.seq++
	x.scores[member] = x.seq
	return nil
}

func (x *memIndex) Top(_ context.Context, _ string, amount int64) ([]string, error) {
	members := make([]string, 0, len(x.scores))
	for m := range x.scores {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool { return x.scores[members[a]] > x.scores[members[b]] })
	if int64(len(members)) > amount {
		members = members[:amount]
	}
	return members, nil
}

func (x *memIndex) Trim(context.Context, string, int64) error { return nil }

func (x *memIndex) Count(context.Context, string) int64 { return int64(len(x.scores)) }

const (
	testSecret = "test-secret"
	testIssuer = "maze-api"
)

func newTestServer(t *testing.T, withStore bool, opts ...*Options) *gin.Engine {
	t.Helper()
	config := &service.Config{Logger: nopLogger{}}
	if withStore {
		config.Repo = &memRepo{snapshots: make(map[uuid.UUID]*domain.Snapshot)}
		config.Index = &memIndex{scores: make(map[string]float64)}
	}
	svc, err := service.NewMazeService(config)
	require.NoError(t, err)

	var controllerOpts *Options
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}
	controller, err := NewMazeController(svc, controllerOpts)
	require.NoError(t, err)

	tokenizer, err := token.NewJwtService(testSecret, testIssuer)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []i.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	return router.Handler()
}

func bearer(t *testing.T) string {
	t.Helper()
	tokenizer, err := token.NewJwtService(testSecret, testIssuer)
	require.NoError(t, err)
	tok, err := tokenizer.Issue("tester", time.Minute)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil, nil)
	assert.ErrorIs(t, err, ErrNilService)
}

func TestSolveRoute(t *testing.T) {
	h := newTestServer(t, false)

	t.Run("Open grid", func(t *testing.T) {
		seed := int64(7)
		rec := do(t, h, http.MethodPost, "/api/v1/mazes/solve", SolveRequest{
			Rows: 3, Cols: 3, Density: 0,
			Entry: maze.CellPosition{Row: 0, Col: 0}, Exit: maze.CellPosition{Row: 2, Col: 2},
			Algorithm: "bfs", Seed: &seed,
		}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var res SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(7), res.Seed)
		assert.Equal(t, 1, res.Attempts)
		assert.Equal(t, "BFS", res.Algorithm)
		assert.True(t, res.Found)
		assert.Equal(t, 4, res.PathLength)
		assert.Len(t, res.Path, 5)
		assert.Equal(t, "S..\n...\n..E", res.Layout)
		assert.Equal(t, "S..\n*..\n**E", res.Rendered)
	})

	t.Run("No path is still a success", func(t *testing.T) {
		seed := int64(1)
		rec := do(t, h, http.MethodPost, "/api/v1/mazes/solve", SolveRequest{
			Rows: 4, Cols: 4, Density: 1,
			Entry: maze.CellPosition{Row: 0, Col: 0}, Exit: maze.CellPosition{Row: 3, Col: 3},
			Algorithm: "dfs", Seed: &seed,
		}, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var res SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Found)
		assert.Equal(t, -1, res.PathLength)
		assert.Empty(t, res.Path)
		assert.Equal(t, 1, res.VisitedCount)
	})

	cases := []struct {
		name string
		body interface{}
		want int
	}{
		{"Malformed body", "not an object", http.StatusBadRequest},
		{"Missing algorithm", SolveRequest{Rows: 3, Cols: 3, Exit: maze.CellPosition{Row: 2, Col: 2}}, http.StatusBadRequest},
		{"Unknown algorithm", SolveRequest{Rows: 3, Cols: 3, Exit: maze.CellPosition{Row: 2, Col: 2}, Algorithm: "astar"}, http.StatusBadRequest},
		{"Bad dimension", SolveRequest{Rows: 0, Cols: 3, Algorithm: "bfs"}, http.StatusBadRequest},
		{"Exit out of bounds", SolveRequest{Rows: 3, Cols: 3, Exit: maze.CellPosition{Row: 3, Col: 3}, Algorithm: "bfs"}, http.StatusBadRequest},
		{"Bad density", SolveRequest{Rows: 3, Cols: 3, Density: 2, Exit: maze.CellPosition{Row: 2, Col: 2}, Algorithm: "bfs"}, http.StatusBadRequest},
		{"Attempts above server cap", SolveRequest{
			Rows: 5, Cols: 5, Density: 1, Exit: maze.CellPosition{Row: 4, Col: 4},
			Algorithm: "bfs", EnsureSolvable: true, MaxAttempts: 1_000_000_000,
		}, http.StatusBadRequest},
		{"Too many cells", SolveRequest{
			Rows: 1001, Cols: 1000, Exit: maze.CellPosition{Row: 4, Col: 4}, Algorithm: "bfs",
		}, http.StatusBadRequest},
		{"Unsolvable", SolveRequest{
			Rows: 5, Cols: 5, Density: 1, Exit: maze.CellPosition{Row: 4, Col: 4},
			Algorithm: "bfs", EnsureSolvable: true, MaxAttempts: 2,
		}, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/mazes/solve", tc.body, "")
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestSolveTextRoute(t *testing.T) {
	h := newTestServer(t, false)

	rec := do(t, h, http.MethodPost, "/api/v1/mazes/solve-text", SolveTextRequest{
		Layout: "S.#\n#..\n#.E", Algorithm: "DFS", ShowVisited: true,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Found)
	assert.Zero(t, res.Attempts)
	assert.Equal(t, "S.#\n#..\n#.E", res.Layout)

	rec = do(t, h, http.MethodPost, "/api/v1/mazes/solve-text", SolveTextRequest{
		Layout: "S..\n..", Algorithm: "bfs",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSnapshotRoutes(t *testing.T) {
	t.Run("Store not configured", func(t *testing.T) {
		h := newTestServer(t, false)
		rec := do(t, h, http.MethodGet, "/api/v1/mazes", nil, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		rec = do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "SE"}, bearer(t))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	h := newTestServer(t, true)

	t.Run("Save requires a token", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "SE"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "SE"}, "Bearer nonsense")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "SE"}, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Save rejects malformed layout", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "S.\n.."}, bearer(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	var saved []domain.Snapshot
	for n, layout := range []string{"SE", "S#\n.E", "S..\n##.\nE.."} {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Name: fmt.Sprintf("m%d", n), Layout: layout}, bearer(t))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var snap domain.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, layout, snap.Layout)
		saved = append(saved, snap)
	}

	t.Run("Unnamed save takes the token subject", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: "ES"}, bearer(t))
		require.Equal(t, http.StatusCreated, rec.Code)
		var snap domain.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, "tester", snap.Name)
	})

	t.Run("Load by ID", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/mazes/"+saved[1].ID.String(), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var snap domain.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, saved[1].ID, snap.ID)
		assert.Equal(t, "m1", snap.Name)
		assert.Equal(t, 2, snap.Rows)

		rec = do(t, h, http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, h, http.MethodGet, "/api/v1/mazes/not-a-uuid", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Recent", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/mazes?limit=2", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var res RecentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Mazes, 2)
		assert.Equal(t, "tester", res.Mazes[0].Name)
		assert.Equal(t, saved[2].ID, res.Mazes[1].ID)

		rec = do(t, h, http.MethodGet, "/api/v1/mazes?limit=x", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusOf(errors.New("boom")))
	assert.Equal(t, http.StatusNotFound, statusOf(fmt.Errorf("wrapped: %w", domain.ErrSnapshotNotFound)))
	assert.Equal(t, http.StatusBadRequest, statusOf(service.ErrMazeTooLarge))
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(service.ErrNotConfigured))
}

func TestBodyLimit(t *testing.T) {
	h := newTestServer(t, true, &Options{MaxBodyBytes: 256})
	layout := strings.Repeat(".", 300) + "\nS" + strings.Repeat(".", 298) + "E"

	rec := do(t, h, http.MethodPost, "/api/v1/mazes/solve-text", SolveTextRequest{Layout: layout, Algorithm: "bfs"}, "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/mazes", SaveRequest{Layout: layout}, bearer(t))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/mazes/solve-text", SolveTextRequest{Layout: "S.\n.E", Algorithm: "bfs"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
