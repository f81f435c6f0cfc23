package toposort

import (
	"fmt"

	"github.com/katalvlaran/vigraph/core"
)

// IsInCycle reports whether id lies on a directed cycle: a breadth-first
// search along outgoing edges that answers true the first time an edge
// leads back to the origin, and false once the frontier drains.
// Returns core.ErrVertexNotFound for a missing id and
// core.ErrMismatchedVicinity when the graph does not track outgoing
// adjacency.
// Complexity: O((V+E)·t·log_t V)
func IsInCycle[V, E any, Id comparable](g *core.Graph[V, E, Id], id Id) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(id) {
		return false, fmt.Errorf("%w: origin %v", core.ErrVertexNotFound, id)
	}

	discovered := make(map[Id]struct{}, g.Len())
	queue := []Id{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := discovered[current]; seen {
			continue
		}
		discovered[current] = struct{}{}

		out, err := g.OutgoingEdges(current)
		if err != nil {
			return false, fmt.Errorf("toposort: adjacency of %v: %w", current, err)
		}
		for _, e := range out {
			nid, endErr := e.EndID()
			if endErr != nil {
				return false, fmt.Errorf("toposort: neighbor of %v: %w", current, endErr)
			}
			// An edge back to the origin closes a cycle through id.
			if nid == id {
				return true, nil
			}
			if _, seen := discovered[nid]; !seen {
				queue = append(queue, nid)
			}
		}
	}

	return false, nil
}

// IsAcyclic reports whether the whole graph is free of directed cycles:
// true iff IsInCycle is false for every vertex. Outgoing-capability
// graphs only (CapOutgoing or CapBoth).
// Complexity: O(V·(V+E)·t·log_t V)
func IsAcyclic[V, E any, Id comparable](g *core.Graph[V, E, Id]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	verts, err := g.VerticesInOrder()
	if err != nil {
		return false, err
	}
	for _, v := range verts {
		in, cycErr := IsInCycle(g, v.ID())
		if cycErr != nil {
			return false, cycErr
		}
		if in {
			return false, nil
		}
	}

	return true, nil
}
