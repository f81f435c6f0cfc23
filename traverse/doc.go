// Package traverse implements depth-first and breadth-first walks over a
// core.Graph as generic folds: a caller-supplied per-vertex mapping is
// applied to every vertex discovered from a start id, and the results are
// folded into an accumulator through an explicit associative combine.
//
// What:
//
//   - DepthFirst / BreadthFirst: read-only folds (LIFO / FIFO frontier).
//   - DepthFirstMut / BreadthFirstMut: identical contracts, but the
//     callback receives exclusive mutable access to the vertex payload for
//     in-place annotation during the walk.
//   - AllPathsFrom: a breadth-first fold whose mapping turns each outgoing
//     edge into a single-edge path and whose combine is the paths.Product,
//     yielding the reachable paths of the walk.
//   - AllPathsBetween: AllPathsFrom filtered to walks from one id to
//     another via paths.SubpathBetween.
//
// Traversal order is deterministic: neighbors are pushed in the vertex's
// outgoing-edge list order, each vertex is visited exactly once, and a
// vertex already discovered is skipped when popped again.
//
// Walks follow outgoing adjacency, so they require a graph with the
// CapOutgoing or CapBoth capability; an ingoing-only graph fails with
// core.ErrMismatchedVicinity.
//
// Complexity:
//
//   - DepthFirst / BreadthFirst: O((V+E)·t·log_t V) plus callback cost.
//   - AllPathsFrom: output-sensitive; the fold's combine is a cartesian
//     product over path sets.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrNilCallback: nil mapping or combine function.
//   - ErrEmptyFrontier: frontier underflow; an invariant violation that
//     cannot occur under correct bookkeeping.
//   - ErrNoPaths: AllPathsBetween found no walk between the ids.
//   - core.ErrVertexNotFound, core.ErrNilVertex, core.ErrMismatchedVicinity
//     propagated from vertex and neighbor resolution.
//
// No cancellation or timeout semantics: a walk runs to completion or to
// its first failure.
package traverse
