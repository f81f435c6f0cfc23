package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vigraph/btree"
)

// AddVertex creates a vertex under id with the given payload and vicinity
// shape and inserts it into the graph's index.
// Returns ErrMismatchedVicinity if vicinity does not match the graph's
// capability, ErrVertexAlreadyExists if id is already indexed.
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) AddVertex(id Id, info V, vicinity Capability) error {
	// 1. The requested adjacency shape must match the graph capability.
	if vicinity != g.capability {
		return fmt.Errorf("%w: graph records %s, vertex requests %s",
			ErrMismatchedVicinity, g.capability, vicinity)
	}

	// 2. Identities are unique across the whole index.
	if g.vertices.Contains(id) {
		return ErrVertexAlreadyExists
	}

	// 3. The index takes sole ownership of the vertex.
	v := &Vertex[V, E, Id]{
		id:       id,
		Info:     info,
		vicinity: Vicinity[V, E, Id]{shape: vicinity},
	}
	if err := g.vertices.Insert(id, v); err != nil {
		if errors.Is(err, btree.ErrKeyAlreadyExists) {
			return ErrVertexAlreadyExists
		}

		return fmt.Errorf("core: indexing vertex: %w", err)
	}

	return nil
}

// HasVertex reports whether id is present. Never fails.
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) HasVertex(id Id) bool {
	return g.vertices.Contains(id)
}

// VertexByID resolves id to its live vertex.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) VertexByID(id Id) (*Vertex[V, E, Id], error) {
	v, err := g.vertices.Search(id)
	if err != nil {
		if errors.Is(err, btree.ErrKeyNotFound) {
			return nil, ErrVertexNotFound
		}

		return nil, fmt.Errorf("core: resolving vertex: %w", err)
	}

	return v, nil
}

// VerticesInOrder exports every vertex sorted by id, in the order defined
// by the index comparator. Deterministic across calls.
// Complexity: O(V)
func (g *Graph[V, E, Id]) VerticesInOrder() ([]*Vertex[V, E, Id], error) {
	pairs, err := g.vertices.InOrder()
	if err != nil {
		return nil, fmt.Errorf("core: exporting vertices: %w", err)
	}
	out := make([]*Vertex[V, E, Id], len(pairs))
	for i, kv := range pairs {
		out[i] = kv.Value
	}

	return out, nil
}

// IDsInOrder exports every vertex id sorted by the index comparator.
// Complexity: O(V)
func (g *Graph[V, E, Id]) IDsInOrder() ([]Id, error) {
	verts, err := g.VerticesInOrder()
	if err != nil {
		return nil, err
	}
	ids := make([]Id, len(verts))
	for i, v := range verts {
		ids[i] = v.id
	}

	return ids, nil
}
