// Package paths implements the path algebra over core edges: ordered edge
// sequences with concatenation, a cross-product combination over path
// sets, and sub-range extraction by endpoint ids.
//
// What:
//
//   - Path[V, E, Id]: an ordered, non-empty sequence of edges, read as a
//     walk from the first edge's start to the last edge's end. The zero
//     value is the empty path, which acts only as a concatenation identity
//     and is never produced by the graph algorithms.
//   - Paths[V, E, Id]: an ordered collection of Path values.
//   - Concat: joins two paths when the left end id equals the right start
//     id, failing loudly with ErrNotAdjacent otherwise.
//   - Product: cartesian combination of two path sets, the accumulation
//     step of traverse.AllPathsFrom.
//   - SubpathBetween: inclusive sub-sequence between the first edge
//     starting at one id and the first edge ending at another.
//
// Why:
//
//   - Traversals fold per-vertex results through an associative combine;
//     Product is exactly that combine for path enumeration, so reachable
//     paths fall out of an ordinary breadth-first fold.
//
// Complexity:
//
//   - Concat: O(len(l)+len(r)).
//   - Product: O(|l|·|r|·L) for average path length L.
//   - SubpathBetween / Contains: O(len(p)).
//
// Errors:
//
//   - ErrNotAdjacent: Concat of non-adjacent operands.
//   - ErrEmptyPath: start/end queried on an empty path.
//   - ErrIDNotFound: SubpathBetween anchor missing from the path.
//   - ErrOutOfBounds: positional access outside a collection's range.
//   - core.ErrNilVertex: an edge endpoint failed to resolve.
package paths
