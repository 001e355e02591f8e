package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/pipeloop/distance"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// DOT converts the loop into an undirected Graphviz graph. Each member
// becomes a node labelled with its tile and, when res is non-nil, its
// distance from the start; each compatible step between members becomes an
// edge. Nodes carry pinned positions matching the grid layout.
func DOT(g *pipegrid.Grid, lp *loop.Loop, res *distance.Result) string {
	far := make(map[pipegrid.Coord]bool)
	if res != nil {
		for _, c := range res.Farthest() {
			far[c] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph loop {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	coords := lp.Coords()
	for _, c := range coords {
		label := g.TileAt(c).String()
		if res != nil {
			label = fmt.Sprintf("%s\\n%d", label, res.Depth[c])
		}
		attrs := fmt.Sprintf("label=\"%s\", pos=\"%d,%d!\"", label, c.Col, -c.Row)
		switch {
		case c == lp.Start:
			attrs += ", fillcolor=palegreen"
		case far[c]:
			attrs += ", fillcolor=gold"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", c.String(), attrs)
	}

	buf.WriteString("\n")
	for _, c := range coords {
		// South and east only, so each edge is written once.
		for _, d := range []pipegrid.Direction{pipegrid.South, pipegrid.East} {
			n := c.Step(d)
			if lp.Contains(n) && g.Connected(c, n) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", c.String(), n.String())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
