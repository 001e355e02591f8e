// Package render presents a solved pipe maze.
//
// Text draws the grid with box-drawing glyphs, highlighting the loop, the
// start and the tiles farthest from it; colours come from lipgloss and are
// only applied when requested. DOT describes the loop as an undirected
// Graphviz graph labelled with distances, and SVG renders such a graph
// through goccy/go-graphviz.
package render
