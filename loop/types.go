package loop

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrGridNil is returned when a nil *pipegrid.Grid is passed to Discover.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrNotClosed indicates the discovered member set is not a simple cycle.
	ErrNotClosed = errors.New("loop: members do not form a simple closed loop")
)

// Option configures optional behavior of Discover.
type Option func(*Options)

// Options holds configurable parameters for loop discovery.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is first marked visited.
	// Returning an error aborts discovery with that error.
	OnVisit func(c pipegrid.Coord) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for discovery.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(c pipegrid.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Loop is the set of cells reachable from the start through compatible pipe
// steps. It is built once by Discover and read-only afterward.
type Loop struct {
	// Start is the grid's start coordinate; always a member.
	Start pipegrid.Coord

	// Order records members in the sequence they were first visited.
	Order []pipegrid.Coord

	members map[pipegrid.Coord]struct{}
}

// Contains reports whether c is a member of the loop.
func (l *Loop) Contains(c pipegrid.Coord) bool {
	_, ok := l.members[c]
	return ok
}

// Len returns the number of members.
func (l *Loop) Len() int { return len(l.members) }

// Members returns a copy of the member set, suitable for pipegrid.Grid.MaskToLoop.
func (l *Loop) Members() map[pipegrid.Coord]struct{} {
	return maps.Clone(l.members)
}

// Coords returns the members sorted in row-major order.
func (l *Loop) Coords() []pipegrid.Coord {
	out := slices.Collect(maps.Keys(l.members))
	slices.SortFunc(out, func(a, b pipegrid.Coord) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}
