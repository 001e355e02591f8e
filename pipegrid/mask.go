package pipegrid

// MaskToLoop returns a copy of g where every tile whose coordinate is not in
// members has been replaced with Ground. g itself is left untouched, so
// masking twice with the same set yields the same grid as masking once.
// The start coordinate is carried over unchanged.
// Complexity: O(W×H) time and memory.
func (g *Grid) MaskToLoop(members map[Coord]struct{}) *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Tile, len(g.cells)),
		start:  g.start,
	}
	for i, t := range g.cells {
		if _, ok := members[g.Coordinate(i)]; ok {
			out.cells[i] = t
		} else {
			out.cells[i] = Ground
		}
	}
	return out
}
