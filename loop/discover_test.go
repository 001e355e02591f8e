package loop_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

// junkMaze holds a 16-cell loop surrounded by pipes that point at it.
const junkMaze = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

func mustParse(t testing.TB, s string) *pipegrid.Grid {
	t.Helper()
	g, err := pipegrid.ParseString(s)
	require.NoError(t, err)
	return g
}

// rectLoop builds an n×n grid whose border is a single pipe loop through S.
func rectLoop(n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == 0 && c == n-1:
				sb.WriteByte('7')
			case r == n-1 && c == 0:
				sb.WriteByte('L')
			case r == n-1 && c == n-1:
				sb.WriteByte('J')
			case r == 0 || r == n-1:
				sb.WriteByte('-')
			case c == 0 || c == n-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestDiscover_NilGrid(t *testing.T) {
	res, err := loop.Discover(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, loop.ErrGridNil)
}

// TestDiscover_Square checks membership and visit order on the 5×5 square.
func TestDiscover_Square(t *testing.T) {
	g := mustParse(t, square)
	lp, err := loop.Discover(g)
	require.NoError(t, err)

	want := []pipegrid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2}}
	assert.Equal(t, want, lp.Order)
	assert.Equal(t, 8, lp.Len())
	assert.Equal(t, pipegrid.Coord{Row: 1, Col: 1}, lp.Start)
	assert.True(t, lp.Contains(lp.Start))
	assert.False(t, lp.Contains(pipegrid.Coord{Row: 2, Col: 2}))
	assert.Equal(t, []pipegrid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}}, lp.Coords())
}

// TestDiscover_JunkIgnored ensures pipes that merely point at the loop stay outside it.
func TestDiscover_JunkIgnored(t *testing.T) {
	g := mustParse(t, junkMaze)
	lp, err := loop.Discover(g)
	require.NoError(t, err)

	assert.Equal(t, 16, lp.Len())
	for _, c := range []pipegrid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 4}, {Row: 1, Col: 4}, {Row: 2, Col: 2}, {Row: 4, Col: 3}, {Row: 4, Col: 4}} {
		assert.False(t, lp.Contains(c), "junk cell %v must not be a member", c)
	}
	require.NoError(t, lp.Verify(g))
}

// TestDiscover_Closure checks every member has exactly two in-loop neighbours.
func TestDiscover_Closure(t *testing.T) {
	for name, in := range map[string]string{"square": square, "junk": junkMaze, "rect": rectLoop(30)} {
		t.Run(name, func(t *testing.T) {
			g := mustParse(t, in)
			lp, err := loop.Discover(g)
			require.NoError(t, err)
			for _, c := range lp.Order {
				inside := 0
				for _, n := range g.Neighbors(c) {
					if lp.Contains(n) {
						inside++
					}
				}
				assert.Equal(t, 2, inside, "member %v", c)
			}
		})
	}
}

// TestDiscover_LargeLoop walks a loop far longer than any sane recursion budget.
func TestDiscover_LargeLoop(t *testing.T) {
	g := mustParse(t, rectLoop(1000))
	lp, err := loop.Discover(g)
	require.NoError(t, err)
	assert.Equal(t, 4*999, lp.Len())
}

func TestDiscover_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loop.Discover(mustParse(t, square), loop.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDiscover_OnVisitAbort stops discovery at the third visited cell.
func TestDiscover_OnVisitAbort(t *testing.T) {
	errStop := errors.New("stop")
	visits := 0
	lp, err := loop.Discover(mustParse(t, square), loop.WithOnVisit(func(pipegrid.Coord) error {
		visits++
		if visits == 3 {
			return errStop
		}
		return nil
	}))
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, lp.Len())
}

func TestDiscover_MembersIsCopy(t *testing.T) {
	lp, err := loop.Discover(mustParse(t, square))
	require.NoError(t, err)

	m := lp.Members()
	delete(m, lp.Start)
	assert.True(t, lp.Contains(lp.Start))
}
