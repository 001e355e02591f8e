// Package loop discovers the closed pipe loop running through a grid's start tile.
//
// Discover walks outward from pipegrid.Grid.Start using an explicit stack and
// a visited set; every cell reachable through mutually compatible pipe steps
// becomes a member. For a well-formed grid that set is exactly the loop.
//
// Key features:
//   - Discover(g, opts...): iterative depth-first closure, no recursion depth tied to loop length
//   - Hooks: OnVisit, called once per newly visited cell; an error aborts discovery
//   - Cancellation via context.Context, checked once per stack pop
//   - Loop.Verify: checks that every member has exactly two in-loop neighbours
//   - Loop.StartShape: infers which pipe the start tile really is
//
// Complexity:
//
//   - Time:   O(L) where L = number of cells reachable from start.
//   - Memory: O(L) for the stack and member set.
//
// Errors:
//
//   - ErrGridNil     if g is nil.
//   - ErrNotClosed   from Verify when the member set is not a simple cycle.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit, wrapped.
package loop
