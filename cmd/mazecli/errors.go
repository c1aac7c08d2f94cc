package main

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service"
)

var (
	errBadInput   = errors.New("bad input parameters")
	errUnsolvable = errors.New("could not generate a solvable maze")
)

const noPathMessage = "no path exists in this maze"

// classify folds service errors into the two failures the CLI reports.
func classify(err error) error {
	switch {
	case errors.Is(err, generator.ErrUnsolvableMaze):
		return fmt.Errorf("%w: %v", errUnsolvable, err)
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrInvalidPoint),
		errors.Is(err, maze.ErrInvalidDensity),
		errors.Is(err, maze.ErrMalformedText),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrMazeTooLarge),
		errors.Is(err, service.ErrTooManyAttempts):
		return fmt.Errorf("%w: %v", errBadInput, err)
	}
	return err
}
