package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/urfave/cli/v2"
)

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Generate a random maze and search it",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "rows",
				Usage: "Number of rows",
				Value: 10,
			},
			&cli.IntFlag{
				Name:  "cols",
				Usage: "Number of columns",
				Value: 10,
			},
			&cli.Float64Flag{
				Name:    "density",
				Aliases: []string{"d"},
				Usage:   "Probability of a cell being a wall, in [0,1]",
				Value:   0.3,
			},
			&cli.StringFlag{
				Name:  "entry",
				Usage: "Entry cell as row,col",
				Value: "0,0",
			},
			&cli.StringFlag{
				Name:  "exit",
				Usage: "Exit cell as row,col, the bottom right cell when empty",
			},
			&cli.StringFlag{
				Name:    "algo",
				Aliases: []string{"a"},
				Usage:   "Search algorithm: bfs or dfs",
				Value:   "bfs",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "RNG seed, drawn from the clock when unset",
			},
			&cli.BoolFlag{
				Name:  "ensure",
				Usage: "Regenerate until the exit is reachable",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "Attempt cap for --ensure, the service default when 0",
			},
			&cli.BoolFlag{
				Name:  "show-visited",
				Usage: "Mark explored cells off the path",
			},
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"o"},
				Usage:   "Write the maze layout (walls, S and E) to this file",
			},
		},
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	alg, err := search.ParseAlgorithm(c.String("algo"))
	if err != nil {
		return classify(err)
	}

	entry, err := parsePoint(c.String("entry"))
	if err != nil {
		return err
	}

	rows, cols := c.Int("rows"), c.Int("cols")
	exit := maze.CellPosition{Row: rows - 1, Col: cols - 1}
	if c.String("exit") != "" {
		if exit, err = parsePoint(c.String("exit")); err != nil {
			return err
		}
	}

	req := domain.SolveRequest{
		Rows:           rows,
		Cols:           cols,
		Density:        c.Float64("density"),
		Entry:          entry,
		Exit:           exit,
		Algorithm:      alg,
		EnsureSolvable: c.Bool("ensure"),
		MaxAttempts:    c.Int("max-attempts"),
	}
	if c.IsSet("seed") {
		seed := c.Int64("seed")
		req.Seed = &seed
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}

	outcome, err := svc.Solve(c.Context, req)
	if err != nil {
		return classify(err)
	}

	w := c.App.Writer
	printReport(w, []string{
		fmt.Sprintf("Generated maze (%dx%d)  density=%.2f  seed=%d", rows, cols, req.Density, outcome.Seed),
		fmt.Sprintf("Entry=%s  Exit=%s  Algo=%s  Attempt=%d", entry, exit, alg, outcome.Attempts),
	}, outcome, c.Bool("show-visited"))

	if path := c.String("export"); path != "" {
		if err := os.WriteFile(path, maze.Marshal(outcome.Grid), 0o644); err != nil {
			return fmt.Errorf("exporting maze: %w", err)
		}
		fmt.Fprintf(w, "Saved maze to: %s\n", path)
	}

	return nil
}
