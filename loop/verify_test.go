package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

func TestVerify(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		closed bool
	}{
		{"Square", square, true},
		{"Junk", junkMaze, true},
		// A pipe above the start opens back toward it, so it joins the member set as a spur.
		{"Spur", ".|...\n.S-7.\n.|.|.\n.L-J.\n", false},
		{"DeadEnd", "S-.\n", false},
		{"Isolated", "S\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.input)
			lp, err := loop.Discover(g)
			require.NoError(t, err)

			err = lp.Verify(g)
			if tc.closed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, loop.ErrNotClosed)
			}
		})
	}
}

func TestVerify_NilGrid(t *testing.T) {
	lp, err := loop.Discover(mustParse(t, square))
	require.NoError(t, err)
	assert.ErrorIs(t, lp.Verify(nil), loop.ErrGridNil)
}

// TestStartShape infers the real pipe under S from its loop connections.
func TestStartShape(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  pipegrid.Tile
	}{
		{"SouthEast", square, pipegrid.SouthEast},
		{"JunkSouthEast", junkMaze, pipegrid.SouthEast},
		{"Horizontal", "F-S-7\nL---J\n", pipegrid.Horizontal},
		{"DeadEnd", "F-7\n|.|\n|.S\n", pipegrid.Start},
		{"Spur", ".|...\n.S-7.\n.|.|.\n.L-J.\n", pipegrid.Start},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.input)
			lp, err := loop.Discover(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lp.StartShape(g))
		})
	}
}
