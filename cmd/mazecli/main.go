// Command mazecli generates random grid mazes and solves them from the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errBadInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "mazecli",
		Usage: "Generate random grid mazes and solve them with BFS or DFS",
		Description: `Coordinates are 0-indexed row,col pairs with 0,0 at the top left.

Examples:
  mazecli solve --rows 12 --cols 30 --density 0.3 --algo bfs --ensure --show-visited
  mazecli solve --seed 42 --export maze.txt
  mazecli import --file maze.txt --algo dfs`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Write service logs to stderr",
			},
		},
		Commands: []*cli.Command{
			solveCommand(),
			importCommand(),
			tokenCommand(),
		},
	}
}
