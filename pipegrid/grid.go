package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular matrix of tiles.
// It deep-copies the input and locates the unique Start tile.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNoStart if no Start
// tile exists and ErrMultipleStarts if more than one does.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	g := &Grid{width: w, height: h, cells: make([]Tile, 0, w*h)}
	found := false
	for r, row := range rows {
		for c, t := range row {
			if t == Start {
				if found {
					return nil, fmt.Errorf("%w: %v and %d,%d", ErrMultipleStarts, g.start, r, c)
				}
				g.start, found = Coord{Row: r, Col: c}, true
			}
			g.cells = append(g.cells, t)
		}
	}
	if !found {
		return nil, ErrNoStart
	}

	return g, nil
}

// Parse reads one grid row per line from r. Trailing blank lines and
// carriage returns are ignored; every other line is a row.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Tile
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]Tile, 0, len(line))
		for _, ch := range line {
			row = append(row, ParseTile(ch))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: reading grid: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the coordinate of the start tile.
func (g *Grid) Start() Coord { return g.start }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// TileAt returns the tile at c, or Ground for any coordinate off the grid.
// Complexity: O(1).
func (g *Grid) TileAt(c Coord) Tile {
	if !g.InBounds(c) {
		return Ground
	}
	return g.cells[g.index(c)]
}

// Rows renders the grid back to its textual form, one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for _, t := range g.cells[r*g.width : (r+1)*g.width] {
			sb.WriteRune(rune(t))
		}
		out[r] = sb.String()
	}
	return out
}

// index maps c to a row-major index: Row*width + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}
