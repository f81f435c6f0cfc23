// Package toposort provides dependency ordering and cycle awareness over
// a core.Graph with outgoing adjacency.
//
// What:
//
//   - Sort: three-mark (unmarked/temporary/permanent) depth-first
//     topological ordering seeded from a start id; every vertex touched by
//     the walk joins the bookkeeping, and the driver re-seeds from the
//     first unmarked vertex until every mark is permanent. The result is
//     front-to-back: for every edge u->v, u precedes v.
//   - IsInCycle: breadth-first self-reachability - true the first time an
//     outgoing edge leads back to the origin id.
//   - IsAcyclic: whole-graph check, true iff no vertex is in a cycle.
//
// Why:
//
//   - Sort is fatal on cycles: a dependency order either exists in full or
//     not at all, so no partial result is ever returned.
//   - IsInCycle needs no global state and answers the per-vertex question
//     in O(V+E), making IsAcyclic a simple O(V·(V+E)) sweep.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrCycleDetected: Sort hit a vertex still on its own recursion path.
//   - core.ErrVertexNotFound, core.ErrNilVertex: resolution failures.
//   - core.ErrMismatchedVicinity: the graph does not track outgoing
//     adjacency (CapIngoing).
package toposort
