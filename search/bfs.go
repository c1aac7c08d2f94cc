package search

import (
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// BFSearch explores g level by level from the entry. The first time the exit is
// dequeued it is at its minimum distance, so the reconstructed path is shortest.
func BFSearch(g *maze.Grid) Result {
	entry, exit := g.Entry(), g.Exit()

	res := Result{
		Algorithm: BFS,
		Visited:   []maze.CellPosition{entry},
	}
	visited := map[maze.CellPosition]struct{}{entry: {}}
	parent := make(map[maze.CellPosition]maze.CellPosition)

	queue := []maze.CellPosition{entry}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		if cell == exit {
			res.Found = true
			res.Path = reconstruct(parent, entry, exit)
			return res
		}

		for _, nbr := range g.Neighbors(cell) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			parent[nbr] = cell
			res.Visited = append(res.Visited, nbr)
			queue = append(queue, nbr)
		}
	}

	return res
}

// reconstruct walks predecessors back from exit to entry and reverses the result.
func reconstruct(parent map[maze.CellPosition]maze.CellPosition, entry, exit maze.CellPosition) []maze.CellPosition {
	path := []maze.CellPosition{exit}
	for cur := exit; cur != entry; {
		cur = parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
