package core

import "fmt"

// AddEdge creates an edge carrying info from startID to endID and appends
// it into the adjacency list(s) the graph's capability tracks:
//
//   - CapOutgoing: the outgoing list of start.
//   - CapIngoing:  the ingoing list of end.
//   - CapBoth:     two independent edge records sharing semantics - one in
//     the outgoing list of start, one in the ingoing list of end.
//
// Returns ErrVertexNotFound if either endpoint id is absent, and
// ErrMismatchedVicinity if a resolved vertex's vicinity shape disagrees
// with the capability (defensive: unreachable when vertices were added
// through AddVertex).
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) AddEdge(info E, startID, endID Id) error {
	// 1. Edges may only be constructed between ids already indexed.
	if !g.vertices.Contains(startID) || !g.vertices.Contains(endID) {
		return fmt.Errorf("%w: edge %v->%v", ErrVertexNotFound, startID, endID)
	}

	// 2. Resolve both endpoints through the index.
	start, err := g.VertexByID(startID)
	if err != nil {
		return err
	}
	end, err := g.VertexByID(endID)
	if err != nil {
		return err
	}

	// 3. Both endpoint shapes must agree with the capability.
	if start.vicinity.shape != g.capability || end.vicinity.shape != g.capability {
		return ErrMismatchedVicinity
	}

	// 4. Record the adjacency the capability tracks. Append order is the
	//    iteration order every algorithm observes.
	switch g.capability {
	case CapOutgoing:
		start.vicinity.out = append(start.vicinity.out,
			&Edge[V, E, Id]{Info: info, start: start, end: end})
	case CapIngoing:
		end.vicinity.in = append(end.vicinity.in,
			&Edge[V, E, Id]{Info: info, start: start, end: end})
	default: // CapBoth
		start.vicinity.out = append(start.vicinity.out,
			&Edge[V, E, Id]{Info: info, start: start, end: end})
		end.vicinity.in = append(end.vicinity.in,
			&Edge[V, E, Id]{Info: info, start: start, end: end})
	}

	return nil
}

// OutgoingEdges resolves id and returns its ordered outgoing-edge list.
// Returns ErrVertexNotFound for an absent id and ErrMismatchedVicinity for
// an ingoing-only graph.
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) OutgoingEdges(id Id) ([]*Edge[V, E, Id], error) {
	v, err := g.VertexByID(id)
	if err != nil {
		return nil, err
	}

	return v.vicinity.Outgoing()
}

// IngoingEdges resolves id and returns its ordered ingoing-edge list.
// Returns ErrVertexNotFound for an absent id and ErrMismatchedVicinity for
// an outgoing-only graph.
// Complexity: O(t·log_t V)
func (g *Graph[V, E, Id]) IngoingEdges(id Id) ([]*Edge[V, E, Id], error) {
	v, err := g.VertexByID(id)
	if err != nil {
		return nil, err
	}

	return v.vicinity.Ingoing()
}
