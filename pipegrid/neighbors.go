package pipegrid

// Neighbors returns the cells reachable from c in one compatible pipe step,
// in North, South, East, West order. A neighbour is included only when the
// tile at c opens toward it and it opens back toward c. Cells off the grid
// are ground and are never returned.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	own := g.TileAt(c).Compatibility()
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if !own.Opens(d) {
			continue
		}
		next := c.Step(d)
		if g.TileAt(next).Compatibility().Opens(d.Opposite()) {
			out = append(out, next)
		}
	}
	return out
}

// Connected reports whether a and b are orthogonally adjacent and both open
// toward each other.
func (g *Grid) Connected(a, b Coord) bool {
	for _, d := range Directions {
		if a.Step(d) != b {
			continue
		}
		return g.TileAt(a).Compatibility().Opens(d) &&
			g.TileAt(b).Compatibility().Opens(d.Opposite())
	}
	return false
}
