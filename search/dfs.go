package search

import "github.com/beka-birhanu/vinom-pathfinder/maze"

// frame is one cell of the path in progress and how far its neighbours have
// been tried.
type frame struct {
	pos  maze.CellPosition
	next int
	nbrs []maze.CellPosition
}

// DFSearch walks depth first from the entry with backtracking, using an explicit
// stack so large grids cannot exhaust the call stack. A cell stays visited after
// it is backtracked over, which keeps the returned path simple.
func DFSearch(g *maze.Grid) Result {
	entry, exit := g.Entry(), g.Exit()

	res := Result{
		Algorithm: DFS,
		Visited:   []maze.CellPosition{entry},
	}
	visited := map[maze.CellPosition]struct{}{entry: {}}
	stack := []*frame{{pos: entry, nbrs: g.Neighbors(entry)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.pos == exit {
			res.Found = true
			res.Path = make([]maze.CellPosition, len(stack))
			for i, f := range stack {
				res.Path[i] = f.pos
			}
			return res
		}

		advanced := false
		for top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			res.Visited = append(res.Visited, nbr)
			stack = append(stack, &frame{pos: nbr, nbrs: g.Neighbors(nbr)})
			advanced = true
			break
		}

		if !advanced {
			pop(&stack)
		}
	}

	return res
}

// pop removes the last frame of the stack.
func pop(s *[]*frame) *frame {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
