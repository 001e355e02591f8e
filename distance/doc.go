// Package distance measures how far along the loop each tile lies from the start.
//
// MaxDistance expands outward from the start one layer at a time: layer d
// holds the cells first reached after d compatible pipe steps. A global
// visited set guarantees a cell appears in at most one layer. Expansion stops
// as soon as the next layer would be empty; the number of completed steps is
// the start's eccentricity, which on a simple cycle of length L is ⌊L/2⌋.
//
// Run it on a grid masked to the loop (pipegrid.Grid.MaskToLoop) so the
// fronts cannot wander into pipes that only touch the loop.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per layer.
//   - WithOnLayer(fn)    hook receiving each layer; an error aborts.
//
// Errors:
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if start lies off the grid.
//   - ErrNoPath            from Result.PathTo for an unreached cell.
package distance
