package pipegrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

//----------------------------------------------------------------------------//
// NewGrid and Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that empty, ragged and start-less inputs are rejected.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", pipegrid.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", pipegrid.ErrEmptyGrid},
		{"NonRectangular", "S-7\n|.\n", pipegrid.ErrNonRectangular},
		{"InteriorBlankLine", "S7\n\nLJ\n", pipegrid.ErrNonRectangular},
		{"NoStart", "F7\nLJ\n", pipegrid.ErrNoStart},
		{"TwoStarts", "S7\nLS\n", pipegrid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.ParseString(tc.input)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseString(%q) error = %v; want %v", tc.input, err, tc.err)
			}
			assert.Nil(t, g)
		})
	}
}

func TestNewGrid_Errors(t *testing.T) {
	_, err := pipegrid.NewGrid(nil)
	assert.ErrorIs(t, err, pipegrid.ErrEmptyGrid)

	_, err = pipegrid.NewGrid([][]pipegrid.Tile{{}})
	assert.ErrorIs(t, err, pipegrid.ErrEmptyGrid)

	_, err = pipegrid.NewGrid([][]pipegrid.Tile{{pipegrid.Start, pipegrid.Ground}, {pipegrid.Ground}})
	assert.ErrorIs(t, err, pipegrid.ErrNonRectangular)
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]pipegrid.Tile{
		{pipegrid.Start, pipegrid.SouthWest},
		{pipegrid.NorthEast, pipegrid.NorthWest},
	}
	g, err := pipegrid.NewGrid(rows)
	require.NoError(t, err)

	rows[0][1] = pipegrid.Ground
	assert.Equal(t, pipegrid.SouthWest, g.TileAt(pipegrid.Coord{Row: 0, Col: 1}))
}

func TestParse_Basics(t *testing.T) {
	g, err := pipegrid.ParseString(".....\r\n.S-7.\r\n.|.|.\r\n.L-J.\r\n.....\r\n\r\n")
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, pipegrid.Coord{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, []string{".....", ".S-7.", ".|.|.", ".L-J.", "....."}, g.Rows())
}

// TestParse_UnknownSymbols checks that symbols outside the tile set read as ground.
func TestParse_UnknownSymbols(t *testing.T) {
	g, err := pipegrid.ParseString("xS#\n")
	require.NoError(t, err)
	assert.Equal(t, "..", strings.ReplaceAll(g.Rows()[0], "S", ""))
}

// TestTileAt_OutOfBounds checks that every off-grid coordinate reads as ground.
func TestTileAt_OutOfBounds(t *testing.T) {
	g, err := pipegrid.ParseString("S-\n||\n")
	require.NoError(t, err)

	valid := []pipegrid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []pipegrid.Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 2}, {Row: -5, Col: -5}, {Row: 100, Col: 100}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.Equal(t, pipegrid.Ground, g.TileAt(c), "TileAt(%v)", c)
	}
}

func TestCoordinate_RoundTrip(t *testing.T) {
	g, err := pipegrid.ParseString("S..\n...\n")
	require.NoError(t, err)
	assert.Equal(t, pipegrid.Coord{Row: 1, Col: 2}, g.Coordinate(5))
	assert.Equal(t, pipegrid.Coord{Row: 0, Col: 1}, g.Coordinate(1))
}
