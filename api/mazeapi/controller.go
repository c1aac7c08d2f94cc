package mazeapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/overlay"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultMaxBodyBytes = 8 << 20

var ErrNilService = errors.New("maze controller requires a maze service")

// Options tunes a MazeController.
type Options struct {
	MaxBodyBytes int64 // Largest accepted request body, 8 MiB when non-positive
}

// MazeController serves the /mazes routes.
type MazeController struct {
	mazeService  i.MazeService
	maxBodyBytes int64
}

// NewMazeController initializes a MazeController. opts may be nil.
func NewMazeController(ms i.MazeService, opts *Options) (*MazeController, error) {
	if ms == nil {
		return nil, ErrNilService
	}

	maxBodyBytes := int64(defaultMaxBodyBytes)
	if opts != nil && opts.MaxBodyBytes > 0 {
		maxBodyBytes = opts.MaxBodyBytes
	}

	return &MazeController{
		mazeService:  ms,
		maxBodyBytes: maxBodyBytes,
	}, nil
}

// limitBody caps how much of the request body handlers may read.
func (mc *MazeController) limitBody(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, mc.maxBodyBytes)
	ctx.Next()
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes", mc.limitBody)
	{
		mazes.POST("/solve", mc.solve)
		mazes.POST("/solve-text", mc.solveText)
		mazes.GET("/:ID", mc.snapshot)
		mazes.GET("", mc.recent)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes", mc.limitBody)
	{
		mazes.POST("", mc.save)
	}
}

// solve handles generate-and-search requests.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	alg, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, err)
		return
	}

	outcome, err := mc.mazeService.Solve(ctx, domain.SolveRequest{
		Rows:           request.Rows,
		Cols:           request.Cols,
		Density:        request.Density,
		Entry:          request.Entry,
		Exit:           request.Exit,
		Algorithm:      alg,
		Seed:           request.Seed,
		EnsureSolvable: request.EnsureSolvable,
		MaxAttempts:    request.MaxAttempts,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(outcome, request.ShowVisited))
}

// solveText handles searches on uploaded text mazes.
func (mc *MazeController) solveText(ctx *gin.Context) {
	var request SolveTextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	alg, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, err)
		return
	}

	outcome, err := mc.mazeService.SolveText(ctx, []byte(request.Layout), alg)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(outcome, request.ShowVisited))
}

// snapshot retrieves a stored maze.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "id not found"})
		return
	}

	snapshot, _, err := mc.mazeService.Load(ctx, ID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// recent lists the latest stored mazes.
func (mc *MazeController) recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	snapshots, err := mc.mazeService.Recent(ctx, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, RecentResponse{Mazes: snapshots})
}

// save validates a text maze and stores it.
func (mc *MazeController) save(ctx *gin.Context) {
	var request SaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	grid, err := maze.Unmarshal([]byte(request.Layout))
	if err != nil {
		writeError(ctx, err)
		return
	}

	name := request.Name
	if name == "" {
		name = identity.Subject(ctx)
	}

	snapshot, err := mc.mazeService.Save(ctx, name, grid)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, snapshot)
}

func newSolveResponse(o *domain.Outcome, showVisited bool) SolveResponse {
	path := o.Result.Path
	if path == nil {
		path = []maze.CellPosition{}
	}
	return SolveResponse{
		Seed:         o.Seed,
		Attempts:     o.Attempts,
		Algorithm:    o.Result.Algorithm.String(),
		Found:        o.Result.Found,
		Path:         path,
		VisitedCount: len(o.Result.Visited),
		PathLength:   o.Result.Steps(),
		Layout:       string(maze.Marshal(o.Grid)),
		Rendered:     overlay.Render(o.Grid, &o.Result, overlay.Options{ShowVisited: showVisited}),
		DurationMS:   float64(o.Duration) / float64(time.Millisecond),
	}
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrInvalidPoint),
		errors.Is(err, maze.ErrInvalidDensity),
		errors.Is(err, maze.ErrMalformedText),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, service.ErrTooManyAttempts),
		errors.Is(err, domain.ErrSnapshotNameTooLong):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrUnsolvableMaze):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(ctx *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "unexpected error"
	}
	ctx.JSON(status, gin.H{"error": msg})
}

func writeBindError(ctx *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
