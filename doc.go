// Package pipeloop finds the closed pipe loop running through a start tile
// on a character grid and measures how far along it the farthest tile lies.
//
// What is pipeloop?
//
//	A small library plus CLI for pipe mazes:
//		• Tiles & grid: | - L J 7 F . S parsed into an immutable grid
//		• Adjacency: two cells connect only when both pipes open toward each other
//		• Loop discovery: iterative depth-first closure from S
//		• Distances: layered breadth expansion around the loop
//		• Rendering: box-drawing text, Graphviz DOT and SVG
//
// Packages:
//
//	pipegrid/   tiles, compatibility, Grid, Neighbors, MaskToLoop, Networks
//	loop/       Discover, Verify, StartShape
//	distance/   MaxDistance with layer trace and path reconstruction
//	solver/     end-to-end run with logging
//	render/     text, DOT and SVG output
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is an 8-tile loop; its farthest tile, the J, is 4 steps from S.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
