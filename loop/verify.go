package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Verify checks that the members form a simple closed loop on g: every
// member other than the start has exactly two neighbours inside the set,
// and the start has at least two. Stray pipes attached to the loop make
// this fail, as does a dead-end path that never returns to the start.
func (l *Loop) Verify(g *pipegrid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	for _, c := range l.Order {
		inside := l.insideNeighbors(g, c)
		switch {
		case c == l.Start && len(inside) < 2:
			return fmt.Errorf("%w: start %v has %d loop neighbours", ErrNotClosed, c, len(inside))
		case c != l.Start && len(inside) != 2:
			return fmt.Errorf("%w: %v has %d loop neighbours", ErrNotClosed, c, len(inside))
		}
	}
	return nil
}

// StartShape infers the pipe the start tile stands for from the directions
// in which it connects to other loop members. It returns pipegrid.Start when
// that is not exactly two directions.
func (l *Loop) StartShape(g *pipegrid.Grid) pipegrid.Tile {
	if g == nil {
		return pipegrid.Start
	}
	var open []pipegrid.Direction
	for _, d := range pipegrid.Directions {
		if n := l.Start.Step(d); l.Contains(n) && g.Connected(l.Start, n) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return pipegrid.Start
	}
	return pipegrid.TileFromOpenings(open[0], open[1])
}

func (l *Loop) insideNeighbors(g *pipegrid.Grid, c pipegrid.Coord) []pipegrid.Coord {
	var out []pipegrid.Coord
	for _, n := range g.Neighbors(c) {
		if l.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
