// Package solver runs the complete pipe-maze computation: build the grid,
// discover the loop through the start, mask everything else to ground and
// measure the farthest loop tile from the start.
//
// Construction errors abort the whole run; no partial report is returned.
// Progress is logged through a charmbracelet/log logger at debug level, one
// line per phase and one per propagation layer.
package solver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pipeloop/distance"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Options configures a solver run.
type Options struct {
	// Logger receives progress output. Nil discards it.
	Logger *log.Logger

	// Verify checks that the discovered loop is a simple cycle and fails
	// the run with loop.ErrNotClosed otherwise.
	Verify bool

	// SkipMask propagates over the unmasked grid.
	SkipMask bool
}

// Report is the outcome of a successful run.
type Report struct {
	Grid        *pipegrid.Grid
	Start       pipegrid.Coord
	StartShape  pipegrid.Tile
	Loop        *loop.Loop
	Masked      *pipegrid.Grid
	Distance    *distance.Result
	MaxDistance int
	Elapsed     time.Duration
}

func (o *Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Logger
}

// SolveReader parses a grid from r and solves it.
func SolveReader(ctx context.Context, r io.Reader, opts Options) (*Report, error) {
	g, err := pipegrid.Parse(r)
	if err != nil {
		return nil, err
	}
	return Solve(ctx, g, opts)
}

// Solve discovers the loop through g's start and returns its maximum distance.
func Solve(ctx context.Context, g *pipegrid.Grid, opts Options) (*Report, error) {
	if g == nil {
		return nil, pipegrid.ErrEmptyGrid
	}
	logger := opts.logger()
	began := time.Now()
	logger.Debug("grid loaded", "width", g.Width(), "height", g.Height(), "start", g.Start())

	lp, err := loop.Discover(g, loop.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("discover loop: %w", err)
	}
	logger.Debug("loop discovered", "members", lp.Len())

	if opts.Verify {
		if err := lp.Verify(g); err != nil {
			return nil, err
		}
		logger.Debug("loop verified")
	}

	field := g.MaskToLoop(lp.Members())
	if opts.SkipMask {
		field = g
	} else {
		logger.Debug("grid masked to loop")
	}

	res, err := distance.MaxDistance(field, g.Start(),
		distance.WithContext(ctx),
		distance.WithOnLayer(func(depth int, layer []pipegrid.Coord) error {
			logger.Debug("layer", "distance", depth, "positions", layer)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("propagate distances: %w", err)
	}

	rep := &Report{
		Grid:        g,
		Start:       g.Start(),
		StartShape:  lp.StartShape(g),
		Loop:        lp,
		Masked:      field,
		Distance:    res,
		MaxDistance: res.Max,
		Elapsed:     time.Since(began),
	}
	logger.Info("solved", "loop", lp.Len(), "max_distance", rep.MaxDistance,
		"elapsed", rep.Elapsed.Round(time.Microsecond))

	return rep, nil
}
