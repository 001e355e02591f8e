package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates state during discovery.
type walker struct {
	grid  *pipegrid.Grid
	opts  Options
	stack []pipegrid.Coord
	res   *Loop
}

// Discover collects every cell reachable from g.Start() through mutually
// compatible pipe steps. A cell already visited is never explored again,
// which is what makes the walk around a cycle terminate.
// Returns the partial Loop alongside any context or hook error.
func Discover(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Seed the worklist with the start cell
	w := &walker{
		grid:  g,
		opts:  o,
		stack: []pipegrid.Coord{g.Start()},
		res: &Loop{
			Start:   g.Start(),
			members: make(map[pipegrid.Coord]struct{}),
		},
	}

	return w.res, w.run()
}

// run pops cells until the stack drains, visiting each unseen one.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		n := len(w.stack) - 1
		c := w.stack[n]
		w.stack = w.stack[:n]

		if _, seen := w.res.members[c]; seen {
			continue
		}
		if err := w.visit(c); err != nil {
			return err
		}

		// Push in reverse so neighbours are explored in resolver order.
		nbs := w.grid.Neighbors(c)
		for i := len(nbs) - 1; i >= 0; i-- {
			if _, seen := w.res.members[nbs[i]]; !seen {
				w.stack = append(w.stack, nbs[i])
			}
		}
	}
	return nil
}

// visit marks c as a member and runs the OnVisit hook.
func (w *walker) visit(c pipegrid.Coord) error {
	w.res.members[c] = struct{}{}
	w.res.Order = append(w.res.Order, c)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return fmt.Errorf("loop: OnVisit hook for %v: %w", c, err)
		}
	}
	return nil
}
