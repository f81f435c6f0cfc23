package traverse

import (
	"fmt"

	"github.com/katalvlaran/vigraph/core"
)

// order selects the frontier discipline of a walk.
type order uint8

const (
	lifo order = iota // stack: depth-first
	fifo              // queue: breadth-first
)

// walker encapsulates the state of one fold traversal.
type walker[V, E any, Id comparable, R any] struct {
	graph      *core.Graph[V, E, Id]
	ord        order
	frontier   []Id
	discovered map[Id]struct{}
	fn         func(v *core.Vertex[V, E, Id]) R
	combine    CombineFunc[R]
	acc        R
}

// DepthFirst folds fn over every vertex reachable from start, visiting in
// depth-first order (LIFO frontier). The callback must not mutate vertices.
// Returns the combined accumulator, or the first failure.
func DepthFirst[V, E any, Id comparable, R any](
	g *core.Graph[V, E, Id],
	start Id,
	init R,
	fn VertexFunc[V, E, Id, R],
	combine CombineFunc[R],
) (R, error) {
	return run(g, start, init, fn, combine, lifo)
}

// BreadthFirst folds fn over every vertex reachable from start, visiting
// in breadth-first order (FIFO frontier). The callback must not mutate
// vertices. Returns the combined accumulator, or the first failure.
func BreadthFirst[V, E any, Id comparable, R any](
	g *core.Graph[V, E, Id],
	start Id,
	init R,
	fn VertexFunc[V, E, Id, R],
	combine CombineFunc[R],
) (R, error) {
	return run(g, start, init, fn, combine, fifo)
}

// DepthFirstMut is DepthFirst with a callback that may annotate the vertex
// payload in place. At most one vertex is handed out per step, so the
// callback always holds exclusive access to it.
func DepthFirstMut[V, E any, Id comparable, R any](
	g *core.Graph[V, E, Id],
	start Id,
	init R,
	fn VertexMutFunc[V, E, Id, R],
	combine CombineFunc[R],
) (R, error) {
	return run(g, start, init, fn, combine, lifo)
}

// BreadthFirstMut is BreadthFirst with a callback that may annotate the
// vertex payload in place.
func BreadthFirstMut[V, E any, Id comparable, R any](
	g *core.Graph[V, E, Id],
	start Id,
	init R,
	fn VertexMutFunc[V, E, Id, R],
	combine CombineFunc[R],
) (R, error) {
	return run(g, start, init, fn, combine, fifo)
}

// run validates inputs, seeds the frontier with start, and drives the walk.
func run[V, E any, Id comparable, R any](
	g *core.Graph[V, E, Id],
	start Id,
	init R,
	fn func(v *core.Vertex[V, E, Id]) R,
	combine CombineFunc[R],
	ord order,
) (R, error) {
	// 1. Validate inputs.
	if g == nil {
		return init, ErrGraphNil
	}
	if fn == nil || combine == nil {
		return init, ErrNilCallback
	}
	if !g.HasVertex(start) {
		return init, fmt.Errorf("%w: start %v", core.ErrVertexNotFound, start)
	}

	// 2. Walk.
	w := &walker[V, E, Id, R]{
		graph:      g,
		ord:        ord,
		frontier:   []Id{start},
		discovered: make(map[Id]struct{}, g.Len()),
		fn:         fn,
		combine:    combine,
		acc:        init,
	}
	if err := w.loop(); err != nil {
		return init, err
	}

	return w.acc, nil
}

// loop processes the frontier until it drains or a step fails.
func (w *walker[V, E, Id, R]) loop() error {
	for len(w.frontier) > 0 {
		// 1. Pop according to the frontier discipline.
		id, err := w.pop()
		if err != nil {
			return err
		}

		// 2. Skip ids discovered since they were pushed.
		if _, seen := w.discovered[id]; seen {
			continue
		}
		w.discovered[id] = struct{}{}

		// 3. Resolve the vertex and fold its mapping into the accumulator.
		v, err := w.graph.VertexByID(id)
		if err != nil {
			return fmt.Errorf("traverse: resolving %v: %w", id, err)
		}
		w.acc = w.combine(w.acc, w.fn(v))

		// 4. Push still-undiscovered outgoing neighbors in list order.
		out, err := v.Vicinity().Outgoing()
		if err != nil {
			return fmt.Errorf("traverse: adjacency of %v: %w", id, err)
		}
		for _, e := range out {
			nid, endErr := e.EndID()
			if endErr != nil {
				return fmt.Errorf("traverse: neighbor of %v: %w", id, endErr)
			}
			if _, seen := w.discovered[nid]; !seen {
				w.frontier = append(w.frontier, nid)
			}
		}
	}

	return nil
}

// pop removes the next id according to the frontier discipline: the most
// recently pushed for lifo, the oldest for fifo.
func (w *walker[V, E, Id, R]) pop() (Id, error) {
	var zero Id
	if len(w.frontier) == 0 {
		return zero, ErrEmptyFrontier
	}
	if w.ord == lifo {
		id := w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]

		return id, nil
	}
	id := w.frontier[0]
	w.frontier = w.frontier[1:]

	return id, nil
}
