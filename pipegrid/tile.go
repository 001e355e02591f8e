package pipegrid

// ParseTile maps an input symbol to its Tile. Unknown symbols are Ground.
func ParseTile(r rune) Tile {
	switch t := Tile(r); t {
	case Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast, Start:
		return t
	default:
		return Ground
	}
}

// Compatibility returns the directions t opens to.
// Start opens everywhere; Ground and anything unknown open nowhere.
func (t Tile) Compatibility() Compatibility {
	switch t {
	case Vertical:
		return Compatibility{North: true, South: true}
	case Horizontal:
		return Compatibility{East: true, West: true}
	case NorthEast:
		return Compatibility{North: true, East: true}
	case NorthWest:
		return Compatibility{North: true, West: true}
	case SouthWest:
		return Compatibility{South: true, West: true}
	case SouthEast:
		return Compatibility{South: true, East: true}
	case Start:
		return Compatibility{North: true, South: true, East: true, West: true}
	default:
		return Compatibility{}
	}
}

// CompatibilityOf is shorthand for t.Compatibility().
func CompatibilityOf(t Tile) Compatibility { return t.Compatibility() }

// IsPipe reports whether t is one of the six two-way pipe shapes.
func (t Tile) IsPipe() bool {
	switch t {
	case Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast:
		return true
	}
	return false
}

// String returns the tile's input symbol.
func (t Tile) String() string {
	return string(rune(t))
}

// Opens reports whether the record permits a connection toward d.
func (c Compatibility) Opens(d Direction) bool {
	switch d {
	case North:
		return c.North
	case South:
		return c.South
	case East:
		return c.East
	case West:
		return c.West
	}
	return false
}

// TileFromOpenings returns the pipe that opens exactly toward a and b.
// It returns Ground when a == b.
func TileFromOpenings(a, b Direction) Tile {
	var c Compatibility
	c.set(a)
	c.set(b)
	for _, t := range []Tile{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast} {
		if t.Compatibility() == c {
			return t
		}
	}
	return Ground
}

func (c *Compatibility) set(d Direction) {
	switch d {
	case North:
		c.North = true
	case South:
		c.South = true
	case East:
		c.East = true
	case West:
		c.West = true
	}
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset returns the (row, col) delta of one step toward d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Step returns the coordinate one cell toward d. The result may lie off-grid.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Offset()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
