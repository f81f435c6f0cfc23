// Package traverse defines the callback types and sentinel errors of the
// traversal engine.
package traverse

import (
	"errors"

	"github.com/katalvlaran/vigraph/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned when a nil graph is passed to a traversal.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrNilCallback is returned when the mapping or combine function is nil.
	ErrNilCallback = errors.New("traverse: callback is nil")

	// ErrEmptyFrontier indicates a pop from an empty frontier.
	// Unreachable under correct bookkeeping.
	ErrEmptyFrontier = errors.New("traverse: frontier is empty")

	// ErrNoPaths is returned by AllPathsBetween when no walk connects the ids.
	ErrNoPaths = errors.New("traverse: no paths between vertices")
)

// VertexFunc maps a vertex to a per-vertex result. Callbacks passed to the
// read-only traversals must not mutate the vertex.
type VertexFunc[V, E any, Id comparable, R any] func(v *core.Vertex[V, E, Id]) R

// VertexMutFunc maps a vertex to a per-vertex result and may mutate the
// vertex payload in place. The traversal guarantees the callback holds the
// only live access to that vertex for the duration of the call.
type VertexMutFunc[V, E any, Id comparable, R any] func(v *core.Vertex[V, E, Id]) R

// CombineFunc folds a per-vertex result into the accumulator. It must be
// associative: the fold order is the traversal order.
type CombineFunc[R any] func(acc, next R) R
