package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	colorCyan  = lipgloss.Color("36")  // loop
	colorGreen = lipgloss.Color("35")  // start
	colorAmber = lipgloss.Color("220") // farthest
	colorDim   = lipgloss.Color("240") // everything else

	styleLoop     = lipgloss.NewStyle().Foreground(colorCyan)
	styleStart    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleFarthest = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	styleOther    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	glyphGround   = '·'
	glyphFarthest = '●'
)

// glyphs maps pipe tiles to box-drawing runes.
var glyphs = map[pipegrid.Tile]rune{
	pipegrid.Vertical:   '│',
	pipegrid.Horizontal: '─',
	pipegrid.NorthEast:  '└',
	pipegrid.NorthWest:  '┘',
	pipegrid.SouthWest:  '┐',
	pipegrid.SouthEast:  '┌',
	pipegrid.Start:      'S',
	pipegrid.Ground:     glyphGround,
}

// TextOptions controls Text output.
type TextOptions struct {
	// Color styles the output with ANSI colours via lipgloss. Without it,
	// tiles off the loop are drawn as ground and farthest tiles as '●'.
	Color bool

	// Farthest lists cells to highlight, typically distance.Result.Farthest().
	Farthest []pipegrid.Coord
}

// Glyph returns the box-drawing rune for t.
func Glyph(t pipegrid.Tile) rune {
	if r, ok := glyphs[t]; ok {
		return r
	}
	return glyphGround
}

// Text draws g row by row, one line per row with a trailing newline.
// lp may be nil, in which case every tile is drawn as-is.
func Text(g *pipegrid.Grid, lp *loop.Loop, opts TextOptions) string {
	far := make(map[pipegrid.Coord]struct{}, len(opts.Farthest))
	for _, c := range opts.Farthest {
		far[c] = struct{}{}
	}

	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			at := pipegrid.Coord{Row: r, Col: c}
			sb.WriteString(cell(g.TileAt(at), at, lp, far, opts.Color))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cell(t pipegrid.Tile, at pipegrid.Coord, lp *loop.Loop, far map[pipegrid.Coord]struct{}, color bool) string {
	onLoop := lp == nil || lp.Contains(at)
	_, isFar := far[at]
	glyph := string(Glyph(t))

	if !color {
		switch {
		case !onLoop:
			return string(glyphGround)
		case isFar && t != pipegrid.Start:
			return string(glyphFarthest)
		default:
			return glyph
		}
	}

	switch {
	case t == pipegrid.Start:
		return styleStart.Render(glyph)
	case !onLoop:
		return styleOther.Render(glyph)
	case isFar:
		return styleFarthest.Render(glyph)
	default:
		return styleLoop.Render(glyph)
	}
}
