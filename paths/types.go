// Package paths declares the Path and Paths types, their accessors, and
// the sentinel errors of the path algebra.
package paths

import (
	"errors"

	"github.com/katalvlaran/vigraph/core"
)

// Sentinel errors for path-algebra operations.
var (
	// ErrNotAdjacent indicates Concat operands whose boundary ids differ.
	ErrNotAdjacent = errors.New("paths: operands are not adjacent")

	// ErrEmptyPath indicates a start/end query on an empty path.
	ErrEmptyPath = errors.New("paths: path is empty")

	// ErrIDNotFound indicates a SubpathBetween anchor absent from the path.
	ErrIDNotFound = errors.New("paths: id not found in path")

	// ErrOutOfBounds indicates positional access outside a collection's range.
	ErrOutOfBounds = errors.New("paths: index out of bounds")
)

// Path is an ordered, non-empty sequence of edges interpreted as a walk
// from the first edge's start to the last edge's end. The zero value is
// the empty path; it is a valid concatenation identity but carries no
// walk of its own.
type Path[V, E any, Id comparable] struct {
	edges []*core.Edge[V, E, Id]
}

// NewPath builds a path from edges in walk order. The edges are not
// validated for pairwise adjacency; Concat is the checked way to grow a
// path.
func NewPath[V, E any, Id comparable](edges ...*core.Edge[V, E, Id]) Path[V, E, Id] {
	return Path[V, E, Id]{edges: edges}
}

// Single wraps one edge as a path of length one.
func Single[V, E any, Id comparable](e *core.Edge[V, E, Id]) Path[V, E, Id] {
	return Path[V, E, Id]{edges: []*core.Edge[V, E, Id]{e}}
}

// Len reports the number of edges in the path.
func (p Path[V, E, Id]) Len() int { return len(p.edges) }

// Empty reports whether the path holds no edges.
func (p Path[V, E, Id]) Empty() bool { return len(p.edges) == 0 }

// Edges returns the path's edges in walk order. The slice is a copy; the
// edges themselves are shared back-references into the graph.
func (p Path[V, E, Id]) Edges() []*core.Edge[V, E, Id] {
	return append([]*core.Edge[V, E, Id](nil), p.edges...)
}

// StartID returns the id the walk departs from: the first edge's start.
// Fails with ErrEmptyPath on an empty path and propagates
// core.ErrNilVertex from an unresolvable endpoint.
func (p Path[V, E, Id]) StartID() (Id, error) {
	var zero Id
	if p.Empty() {
		return zero, ErrEmptyPath
	}

	return p.edges[0].StartID()
}

// EndID returns the id the walk arrives at: the last edge's end.
// Fails with ErrEmptyPath on an empty path and propagates
// core.ErrNilVertex from an unresolvable endpoint.
func (p Path[V, E, Id]) EndID() (Id, error) {
	var zero Id
	if p.Empty() {
		return zero, ErrEmptyPath
	}

	return p.edges[len(p.edges)-1].EndID()
}

// Contains reports whether any edge of the path starts or ends at id.
// Unresolvable endpoints never match.
func (p Path[V, E, Id]) Contains(id Id) bool {
	for _, e := range p.edges {
		if s, err := e.StartID(); err == nil && s == id {
			return true
		}
		if t, err := e.EndID(); err == nil && t == id {
			return true
		}
	}

	return false
}

// Equal reports whether both paths have the same length and the same
// endpoint ids edge by edge. Edge payloads are not compared.
func (p Path[V, E, Id]) Equal(other Path[V, E, Id]) bool {
	if len(p.edges) != len(other.edges) {
		return false
	}
	for i, e := range p.edges {
		ls, errLS := e.StartID()
		le, errLE := e.EndID()
		rs, errRS := other.edges[i].StartID()
		re, errRE := other.edges[i].EndID()
		if errLS != nil || errLE != nil || errRS != nil || errRE != nil {
			return false
		}
		if ls != rs || le != re {
			return false
		}
	}

	return true
}

// Paths is an ordered collection of Path values.
type Paths[V, E any, Id comparable] []Path[V, E, Id]

// Len reports the number of paths in the collection.
func (ps Paths[V, E, Id]) Len() int { return len(ps) }

// At returns the path at position i.
// Fails with ErrOutOfBounds outside [0, Len()).
func (ps Paths[V, E, Id]) At(i int) (Path[V, E, Id], error) {
	if i < 0 || i >= len(ps) {
		return Path[V, E, Id]{}, ErrOutOfBounds
	}

	return ps[i], nil
}
