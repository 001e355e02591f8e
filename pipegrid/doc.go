// Package pipegrid treats a 2D character grid of pipe tiles as a graph,
// where two cells are adjacent only when both pipes open toward each other.
//
// What:
//
//   - Tile enumerates the connector shapes: | - L J 7 F, ground (.) and the start (S).
//   - Compatibility records which of the four compass directions a tile opens to.
//   - Grid wraps a rectangular matrix of tiles together with the unique start cell.
//   - Neighbors resolves the cells reachable from a cell in one compatible pipe step.
//   - MaskToLoop produces a copy of the grid where everything off a given set is ground.
//   - Networks enumerates every connected group of mutually compatible pipes.
//
// Why:
//
//   - A pipe must open toward its neighbour AND the neighbour must open back.
//     A single-sided test merges loops that merely touch.
//   - Coordinates outside the grid are ground, so boundary pipes never leak.
//
// Complexity:
//
//   - Parse, NewGrid, MaskToLoop: O(W×H) time and memory.
//   - Neighbors:                 O(1).
//   - Networks:                  O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no S tile present.
//   - ErrMultipleStarts: more than one S tile present.
package pipegrid
