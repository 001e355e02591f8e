package distance

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for distance propagation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrStartOutOfBounds is returned when the start lies off the grid.
	ErrStartOutOfBounds = errors.New("distance: start is outside the grid")

	// ErrNoPath is returned by PathTo for a cell that was never reached.
	ErrNoPath = errors.New("distance: cell not reached")
)

// Option configures propagation via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize propagation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnLayer is called with every layer as it is completed, starting with
	// layer 0 = {start}. If it returns an error, propagation aborts.
	OnLayer func(depth int, layer []pipegrid.Coord) error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLayer: func(int, []pipegrid.Coord) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLayer registers a callback run on each completed layer.
func WithOnLayer(fn func(depth int, layer []pipegrid.Coord) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// Result holds the outcome of a propagation:
//   - Max: number of layers after the first, i.e. the largest distance reached.
//   - Layers: Layers[d] lists the cells first reached at distance d.
//   - Depth: distance of every reached cell.
//   - Parent: predecessor of every reached cell except the start.
type Result struct {
	Max    int
	Layers [][]pipegrid.Coord
	Depth  map[pipegrid.Coord]int
	Parent map[pipegrid.Coord]pipegrid.Coord
}

// Farthest returns the cells at the maximum distance.
func (r *Result) Farthest() []pipegrid.Coord {
	if len(r.Layers) == 0 {
		return nil
	}
	return r.Layers[len(r.Layers)-1]
}

// PathTo reconstructs the path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest pipegrid.Coord) ([]pipegrid.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []pipegrid.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
