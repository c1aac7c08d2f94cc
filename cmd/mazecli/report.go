package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/overlay"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/urfave/cli/v2"
)

// newService builds a store-less maze service. Its logs go to stderr only in
// verbose mode. Unlike the server, the attempt cap is whatever the user asks for.
func newService(c *cli.Context) (*service.MazeService, error) {
	var out io.Writer = io.Discard
	if c.Bool("verbose") {
		out = c.App.ErrWriter
		if out == nil {
			out = os.Stderr
		}
	}

	mazeLogger, err := logger.New("MAZE", config.ColorCyan, out)
	if err != nil {
		return nil, err
	}
	// The local cap follows --max-attempts, which only solve defines.
	return service.NewMazeService(&service.Config{
		Generator: generator.New(&generator.Options{MaxAttempts: c.Int("max-attempts")}),
		Logger:    mazeLogger,
	})
}

// parsePoint reads a "row,col" pair.
func parsePoint(s string) (maze.CellPosition, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return maze.CellPosition{}, fmt.Errorf("%w: point %q must be row,col", errBadInput, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return maze.CellPosition{}, fmt.Errorf("%w: point %q must be row,col", errBadInput, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return maze.CellPosition{}, fmt.Errorf("%w: point %q must be row,col", errBadInput, s)
	}
	return maze.CellPosition{Row: row, Col: col}, nil
}

// printReport writes the search summary, the rendered maze and the elapsed time.
func printReport(w io.Writer, header []string, o *domain.Outcome, showVisited bool) {
	for _, line := range header {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, overlay.Summary(o.Result))
	fmt.Fprintln(w)
	fmt.Fprintln(w, overlay.Render(o.Grid, &o.Result, overlay.Options{ShowVisited: showVisited}))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Time: %.2f ms\n", float64(o.Duration)/float64(time.Millisecond))
	if !o.Result.Found {
		fmt.Fprintln(w, noPathMessage)
	}
}
