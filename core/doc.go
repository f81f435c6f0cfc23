// Package core defines the reference model of the library: a generic
// directed Graph whose vertices are owned by an ordered B-tree index and
// whose edges reference their endpoints through non-owning back-references.
//
// What:
//
//   - Graph[V, E, Id]: vertices keyed by a caller-ordered Id, payloads V on
//     vertices and E on edges.
//   - Capability marker (CapOutgoing, CapIngoing, CapBoth), fixed at
//     construction, constraining which adjacency a graph instance records.
//   - Vicinity: a vertex's adjacency record; its shape must match the
//     graph's capability or insertion fails.
//   - AddVertex / AddEdge, plus the ordered read surface the algorithm
//     packages (traverse, toposort) build on.
//
// Why:
//
//   - The index is the single owner of every vertex, and edges hold only
//     back-references, so many edges can cheaply share a vertex without
//     ownership cycles between the index and the edges pointing into it.
//   - The capability marker scopes per-direction bookkeeping: an
//     ingoing-only graph never pays for outgoing lists and vice versa.
//
// Complexity:
//
//   - AddVertex / AddEdge / VertexByID: O(t·log_t V).
//   - VerticesInOrder: O(V).
//
// Errors:
//
//   - ErrVertexAlreadyExists: duplicate id on AddVertex.
//   - ErrVertexNotFound: lookup or edge-endpoint miss.
//   - ErrMismatchedVicinity: vicinity shape disagrees with the capability.
//   - ErrNilVertex: an edge back-reference failed to resolve.
//
// Vertices and edges are never removed; there is no deletion operation.
// All operations are single-threaded, synchronous, and value-return every
// failure.
package core
