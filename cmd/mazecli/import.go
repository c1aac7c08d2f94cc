package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Search a maze read from a text snapshot",
		Description: `The file holds one line per row: '#' for walls, '.' for open cells,
'S' for the entry and 'E' for the exit. Rendered output is accepted too.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path of the text snapshot",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "algo",
				Aliases: []string{"a"},
				Usage:   "Search algorithm: bfs or dfs",
				Value:   "bfs",
			},
			&cli.BoolFlag{
				Name:  "show-visited",
				Usage: "Mark explored cells off the path",
			},
		},
		Action: runImport,
	}
}

func runImport(c *cli.Context) error {
	alg, err := search.ParseAlgorithm(c.String("algo"))
	if err != nil {
		return classify(err)
	}

	path := c.String("file")
	layout, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", errBadInput, path, err)
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}

	outcome, err := svc.SolveText(c.Context, layout, alg)
	if err != nil {
		return classify(err)
	}

	g := outcome.Grid
	printReport(c.App.Writer, []string{
		fmt.Sprintf("Imported maze (%dx%d) from %s", g.Rows(), g.Cols(), path),
		fmt.Sprintf("Entry=%s  Exit=%s  Algo=%s", g.Entry(), g.Exit(), alg),
	}, outcome, c.Bool("show-visited"))

	return nil
}
