package maze

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Text snapshot symbols. Path and visited only appear in rendered output.
const (
	SymbolWall    = '#'
	SymbolOpen    = '.'
	SymbolEntry   = 'S'
	SymbolExit    = 'E'
	SymbolPath    = '*'
	SymbolVisited = '·'
)

var ErrMalformedText = errors.New("malformed maze text")

// Marshal returns the plain text snapshot of g: one line per row, no trailing
// newline.
func Marshal(g *Grid) []byte {
	return []byte(g.String())
}

// Unmarshal parses a plain text snapshot. Lines may end in "\n" or "\r\n" and a
// single trailing newline is ignored. Path and visited overlay symbols are read as
// open cells, so rendered output imports to the same layout.
func Unmarshal(data []byte) (*Grid, error) {
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedText)
	}

	lines := bytes.Split(data, []byte("\n"))
	walls := make([][]bool, len(lines))
	var entry, exit []CellPosition
	cols := -1

	for r, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if !utf8.Valid(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrMalformedText, r+1)
		}

		row := make([]bool, 0, len(line))
		for _, sym := range string(line) {
			pos := CellPosition{Row: r, Col: len(row)}
			switch sym {
			case SymbolWall:
				row = append(row, true)
			case SymbolOpen, SymbolPath, SymbolVisited:
				row = append(row, false)
			case SymbolEntry:
				entry = append(entry, pos)
				row = append(row, false)
			case SymbolExit:
				exit = append(exit, pos)
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: unexpected symbol %q at %s", ErrMalformedText, sym, pos)
			}
		}

		if cols == -1 {
			cols = len(row)
		}
		if len(row) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, expected %d", ErrMalformedText, r+1, len(row), cols)
		}
		walls[r] = row
	}

	if cols == 0 {
		return nil, fmt.Errorf("%w: empty lines", ErrMalformedText)
	}
	if len(entry) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one %q, found %d", ErrMalformedText, SymbolEntry, len(entry))
	}
	if len(exit) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one %q, found %d", ErrMalformedText, SymbolExit, len(exit))
	}

	return FromLayout(walls, entry[0], exit[0])
}
