// Package core declares Capability, Vicinity, Vertex, Edge, Graph,
// the GraphOption plumbing, sentinel errors, and the New constructor.
package core

import (
	"errors"

	"github.com/katalvlaran/vigraph/btree"
)

// Sentinel errors for reference-model operations.
var (
	// ErrVertexAlreadyExists indicates AddVertex with an id already indexed.
	ErrVertexAlreadyExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrMismatchedVicinity indicates a vicinity shape that disagrees with
	// the graph's capability marker.
	ErrMismatchedVicinity = errors.New("core: mismatched vicinity")

	// ErrNilVertex indicates an edge back-reference failed to resolve.
	ErrNilVertex = errors.New("core: edge endpoint is nil")
)

// Capability selects which adjacency a graph instance records, and doubles
// as the shape tag of a vertex's Vicinity. Exactly one shape is legal per
// graph, fixed at construction.
type Capability uint8

const (
	// CapBoth records both ingoing and outgoing adjacency per vertex.
	CapBoth Capability = iota
	// CapOutgoing records outgoing adjacency only.
	CapOutgoing
	// CapIngoing records ingoing adjacency only.
	CapIngoing
)

// String names the capability for diagnostics.
func (c Capability) String() string {
	switch c {
	case CapOutgoing:
		return "outgoing"
	case CapIngoing:
		return "ingoing"
	default:
		return "both"
	}
}

// Vicinity is a vertex's adjacency record. Its shape mirrors the owning
// graph's capability: only the lists the capability tracks are ever
// populated, and reading a list the shape does not carry fails with
// ErrMismatchedVicinity.
type Vicinity[V, E any, Id comparable] struct {
	shape Capability
	in    []*Edge[V, E, Id]
	out   []*Edge[V, E, Id]
}

// Shape reports the vicinity's shape tag.
func (vc *Vicinity[V, E, Id]) Shape() Capability { return vc.shape }

// Outgoing returns the ordered outgoing-edge list.
// Fails with ErrMismatchedVicinity for an ingoing-only shape.
func (vc *Vicinity[V, E, Id]) Outgoing() ([]*Edge[V, E, Id], error) {
	if vc.shape == CapIngoing {
		return nil, ErrMismatchedVicinity
	}

	return vc.out, nil
}

// Ingoing returns the ordered ingoing-edge list.
// Fails with ErrMismatchedVicinity for an outgoing-only shape.
func (vc *Vicinity[V, E, Id]) Ingoing() ([]*Edge[V, E, Id], error) {
	if vc.shape == CapOutgoing {
		return nil, ErrMismatchedVicinity
	}

	return vc.in, nil
}

// Vertex is a node of the graph: a unique identity, a caller payload, and
// the adjacency the graph's capability tracks. Vertices are owned
// exclusively by the graph's index for the graph's whole lifetime.
type Vertex[V, E any, Id comparable] struct {
	id Id

	// Info is the caller payload. The mutating traversal variants hand the
	// callback exclusive access to it for in-place annotation.
	Info V

	vicinity Vicinity[V, E, Id]
}

// ID returns the vertex's unique identity.
func (v *Vertex[V, E, Id]) ID() Id { return v.id }

// Vicinity exposes the vertex's adjacency record.
func (v *Vertex[V, E, Id]) Vicinity() *Vicinity[V, E, Id] { return &v.vicinity }

// Edge connects two vertices: a caller payload plus two non-owning
// back-references to the endpoints. Edges never own their vertices, so no
// reference cycle forms between the index and the edges pointing into it.
type Edge[V, E any, Id comparable] struct {
	// Info is the caller payload carried by the edge.
	Info E

	start *Vertex[V, E, Id]
	end   *Vertex[V, E, Id]
}

// Start resolves the back-reference to the live start vertex.
// Fails with ErrNilVertex if the reference cannot resolve.
func (e *Edge[V, E, Id]) Start() (*Vertex[V, E, Id], error) {
	if e.start == nil {
		return nil, ErrNilVertex
	}

	return e.start, nil
}

// End resolves the back-reference to the live end vertex.
// Fails with ErrNilVertex if the reference cannot resolve.
func (e *Edge[V, E, Id]) End() (*Vertex[V, E, Id], error) {
	if e.end == nil {
		return nil, ErrNilVertex
	}

	return e.end, nil
}

// StartID returns the id of the start vertex, or ErrNilVertex.
func (e *Edge[V, E, Id]) StartID() (Id, error) {
	var zero Id
	v, err := e.Start()
	if err != nil {
		return zero, err
	}

	return v.id, nil
}

// EndID returns the id of the end vertex, or ErrNilVertex.
func (e *Edge[V, E, Id]) EndID() (Id, error) {
	var zero Id
	v, err := e.End()
	if err != nil {
		return zero, err
	}

	return v.id, nil
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig holds construction-time parameters for a Graph.
type graphConfig struct {
	capability Capability
	treeOpts   []btree.Option
}

// WithOutgoing restricts the graph to outgoing adjacency per vertex.
func WithOutgoing() GraphOption {
	return func(c *graphConfig) { c.capability = CapOutgoing }
}

// WithIngoing restricts the graph to ingoing adjacency per vertex.
func WithIngoing() GraphOption {
	return func(c *graphConfig) { c.capability = CapIngoing }
}

// WithBoth records both ingoing and outgoing adjacency per vertex.
// This is the default capability.
func WithBoth() GraphOption {
	return func(c *graphConfig) { c.capability = CapBoth }
}

// WithMinDegree sets the minimum degree of the underlying vertex index.
func WithMinDegree(t int) GraphOption {
	return func(c *graphConfig) { c.treeOpts = append(c.treeOpts, btree.WithMinDegree(t)) }
}

// Graph is the reference model: an ordered index that exclusively owns
// every vertex, plus the capability marker fixing which adjacency shape
// the instance may record.
type Graph[V, E any, Id comparable] struct {
	capability Capability
	vertices   *btree.Tree[Id, *Vertex[V, E, Id]]
}

// New creates an empty Graph whose vertex ids are ordered by c.
// By default the graph records both adjacency directions (CapBoth).
// Errors from invalid index options (btree.ErrInvalidDegree,
// btree.ErrNilComparator) are returned as-is.
// Complexity: O(1)
func New[V, E any, Id comparable](c btree.Comparator[Id], opts ...GraphOption) (*Graph[V, E, Id], error) {
	// 1. Apply options over defaults.
	cfg := graphConfig{capability: CapBoth}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. The index owns the vertices; its comparator defines id order.
	tree, err := btree.New[Id, *Vertex[V, E, Id]](c, cfg.treeOpts...)
	if err != nil {
		return nil, err
	}

	return &Graph[V, E, Id]{capability: cfg.capability, vertices: tree}, nil
}

// Capability reports the graph's capability marker.
func (g *Graph[V, E, Id]) Capability() Capability { return g.capability }

// Len reports the number of vertices.
func (g *Graph[V, E, Id]) Len() int { return g.vertices.Len() }
