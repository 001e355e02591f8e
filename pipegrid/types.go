package pipegrid

import "fmt"

// Tile is the connector shape of a single grid cell, keyed by its input symbol.
type Tile rune

const (
	// Vertical connects north and south.
	Vertical Tile = '|'
	// Horizontal connects east and west.
	Horizontal Tile = '-'
	// NorthEast is a bend connecting north and east.
	NorthEast Tile = 'L'
	// NorthWest is a bend connecting north and west.
	NorthWest Tile = 'J'
	// SouthWest is a bend connecting south and west.
	SouthWest Tile = '7'
	// SouthEast is a bend connecting south and east.
	SouthEast Tile = 'F'
	// Ground has no connections.
	Ground Tile = '.'
	// Start connects in all four directions.
	Start Tile = 'S'
)

// Direction is one of the four compass directions. North is the top row.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the compass directions in resolver order.
var Directions = [4]Direction{North, South, East, West}

// Compatibility records which directions a tile opens to.
type Compatibility struct {
	North, South, East, West bool
}

// Coord is a (row, column) cell position. Equal components mean the same cell.
type Coord struct {
	Row, Col int
}

// String formats c as "row,col".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Grid is an immutable rectangular matrix of tiles with a unique start cell.
// cells is stored row-major; index(c) = c.Row*width + c.Col.
type Grid struct {
	width, height int
	cells         []Tile
	start         Coord
}
