// Package toposort implements the three-mark depth-first topological sort.
package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vigraph/core"
)

// Sentinel errors for ordering and cycle checks.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected is returned by Sort when the walk reaches a vertex
	// still on its own recursion path. Fatal: no partial order is returned.
	ErrCycleDetected = errors.New("toposort: graph contains cycle")
)

// mark is the processing state of a vertex during Sort.
type mark uint8

const (
	unmarked  mark = iota // not processed yet
	temporary             // on the current recursion path
	permanent             // fully processed
)

// sorter tracks mark bookkeeping over every vertex the walk touches.
// Marks keep discovery order so the driver's "pick an unmarked vertex"
// step is deterministic.
type sorter[V, E any, Id comparable] struct {
	graph *core.Graph[V, E, Id]
	ids   []Id        // discovery-ordered ids under bookkeeping
	marks map[Id]mark // id -> current mark
	order []Id        // completion order (reversed at the end)
}

// Sort computes a dependency order of the vertices reachable through the
// bookkeeping seeded at startID. The returned sequence is front-to-back:
// for every edge u->v, u precedes v.
// Returns ErrGraphNil for a nil graph, core.ErrVertexNotFound for a
// missing seed, ErrCycleDetected (fatal, no partial result) on a cycle,
// and core.ErrMismatchedVicinity if a visited vertex does not track
// outgoing adjacency.
// Complexity: O((V+E)·t·log_t V)
func Sort[V, E any, Id comparable](g *core.Graph[V, E, Id], startID Id) ([]Id, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: start %v", core.ErrVertexNotFound, startID)
	}

	// 2. Seed the bookkeeping with the start id, unmarked.
	s := &sorter[V, E, Id]{
		graph: g,
		ids:   []Id{startID},
		marks: map[Id]mark{startID: unmarked},
	}

	// 3. Drive: repeatedly pick the first non-permanent vertex and visit
	//    it, until every mark under bookkeeping is permanent.
	for {
		id, ok := s.firstPending()
		if !ok {
			break
		}
		if err := s.visit(id); err != nil {
			return nil, err
		}
	}

	// 4. Vertices were recorded in completion order; a topological order
	//    is its reverse.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// firstPending returns the first id under bookkeeping whose mark is not
// yet permanent.
func (s *sorter[V, E, Id]) firstPending() (Id, bool) {
	var zero Id
	for _, id := range s.ids {
		if s.marks[id] != permanent {
			return id, true
		}
	}

	return zero, false
}

// touch enrolls id into the bookkeeping if it is not there yet.
func (s *sorter[V, E, Id]) touch(id Id) {
	if _, known := s.marks[id]; !known {
		s.marks[id] = unmarked
		s.ids = append(s.ids, id)
	}
}

// visit processes id: permanent returns immediately, temporary means a
// back-edge (cycle), unmarked recurses through every outgoing neighbor
// before turning permanent and joining the completion order.
func (s *sorter[V, E, Id]) visit(id Id) error {
	s.touch(id)
	switch s.marks[id] {
	case permanent:
		return nil
	case temporary:
		return ErrCycleDetected
	}

	// Resolve before marking, so an unresolvable id never pollutes the order.
	v, err := s.graph.VertexByID(id)
	if err != nil {
		return err
	}
	out, err := v.Vicinity().Outgoing()
	if err != nil {
		return fmt.Errorf("toposort: adjacency of %v: %w", id, err)
	}

	s.marks[id] = temporary
	for _, e := range out {
		nid, endErr := e.EndID()
		if endErr != nil {
			return fmt.Errorf("toposort: neighbor of %v: %w", id, endErr)
		}
		if err = s.visit(nid); err != nil {
			return err
		}
	}
	s.marks[id] = permanent
	s.order = append(s.order, id)

	return nil
}
