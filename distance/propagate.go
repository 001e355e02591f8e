package distance

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates mutable propagation state.
type walker struct {
	grid    *pipegrid.Grid
	opts    Options
	visited map[pipegrid.Coord]struct{}
	res     *Result
}

// MaxDistance runs a layered breadth expansion over g from start and
// returns the largest distance reached together with the full layer trace.
//
//	layer 0 = {start}, visited = {start}, distance = 0
//	repeat: collect unvisited neighbours of the current layer into the next,
//	        marking each visited as it is collected;
//	        stop when the next layer is empty, otherwise distance++.
//
// Returns ErrGridNil, ErrStartOutOfBounds, a context error, or a wrapped
// OnLayer error. On error the partial Result is returned as well.
func MaxDistance(g *pipegrid.Grid, start pipegrid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		visited: map[pipegrid.Coord]struct{}{start: {}},
		res: &Result{
			Depth:  map[pipegrid.Coord]int{start: 0},
			Parent: make(map[pipegrid.Coord]pipegrid.Coord),
		},
	}

	return w.res, w.loop([]pipegrid.Coord{start})
}

// loop advances layer by layer until the frontier stalls.
func (w *walker) loop(layer []pipegrid.Coord) error {
	for depth := 0; ; depth++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.res.Layers = append(w.res.Layers, layer)
		w.res.Max = depth
		if err := w.opts.OnLayer(depth, layer); err != nil {
			return fmt.Errorf("distance: OnLayer error at depth %d: %w", depth, err)
		}

		next := w.expand(layer, depth+1)
		if len(next) == 0 {
			return nil
		}
		layer = next
	}
}

// expand collects every unvisited neighbour of layer, marking it visited
// at the given depth as soon as it is collected.
func (w *walker) expand(layer []pipegrid.Coord, depth int) []pipegrid.Coord {
	var next []pipegrid.Coord
	for _, c := range layer {
		for _, n := range w.grid.Neighbors(c) {
			if _, seen := w.visited[n]; seen {
				continue
			}
			w.visited[n] = struct{}{}
			w.res.Depth[n] = depth
			w.res.Parent[n] = c
			next = append(next, n)
		}
	}
	return next
}
