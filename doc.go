// Package vigraph is an in-memory toolkit pairing a generic ordered
// key-value index with a directed-graph engine built on top of it.
//
// 🚀 What is vigraph?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Ordered index: a generic B-tree with pluggable comparators and in-order export
//		• Reference model: B-tree-owned vertices, back-referencing edges, capability-scoped adjacency
//		• Traversals: depth-first & breadth-first folds with caller-defined accumulators
//		• Dependency ordering: three-mark topological sort with fatal cycle detection
//		• Path algebra: concatenation, cartesian products, sub-range extraction
//
// ✨ Why choose vigraph?
//
//   - Deterministic - iteration order is fixed by comparators and edge insertion order
//   - Value-returned failures - sentinel errors everywhere, no panics in the public contract
//   - Pure Go - no cgo, no hidden deps
//   - Generic - your id, vertex, edge and accumulator types throughout
//
// Everything is organized under five subpackages:
//
//	btree/     — the ordered index: Insert, Search, Contains, InOrder
//	core/      — Graph, Vertex, Edge, Vicinity & capability markers
//	traverse/  — DFS/BFS folds (read-only & mutating) + path enumeration
//	toposort/  — topological sort, per-vertex and whole-graph cycle checks
//	paths/     — Path/Paths algebra over core edges
//
// Quick ASCII example:
//
//	A ──▶ B
//	│     │
//	▼     ▼
//	C ◀── D
//
//	a dependency graph; toposort.Sort from A yields an order where
//	A precedes B and C, and B precedes D.
//
// Dive into the per-package docs for contracts, complexity and errors,
// and into examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/vigraph
package vigraph
