package pipegrid

// Networks finds every group of cells linked through mutually compatible
// pipe connections. Ground cells and isolated pipes whose openings are not
// reciprocated form no network. Networks are returned in row-major order of
// their first cell; each network lists its cells in BFS order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Networks() [][]Coord {
	seen := make([]bool, len(g.cells))
	var nets [][]Coord

	for i0, t := range g.cells {
		if seen[i0] || t == Ground {
			continue
		}
		c0 := g.Coordinate(i0)
		if len(g.Neighbors(c0)) == 0 {
			continue // dangling or unreciprocated pipe
		}
		// BFS to collect the network
		queue := []Coord{c0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		nets = append(nets, queue)
	}
	return nets
}
