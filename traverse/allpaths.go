package traverse

import (
	"github.com/katalvlaran/vigraph/core"
	"github.com/katalvlaran/vigraph/paths"
)

// AllPathsFrom enumerates the walks reachable from id: a breadth-first
// fold whose per-vertex mapping converts each outgoing edge into a
// single-edge path and whose combine is the cartesian paths.Product, so
// every visited layer extends the accumulated paths where adjacency
// allows and leaves them intact where it does not.
// Requires outgoing adjacency (CapOutgoing or CapBoth).
func AllPathsFrom[V, E any, Id comparable](g *core.Graph[V, E, Id], id Id) (paths.Paths[V, E, Id], error) {
	expand := func(v *core.Vertex[V, E, Id]) paths.Paths[V, E, Id] {
		out, err := v.Vicinity().Outgoing()
		if err != nil {
			// Shape mismatch is reported by the walk itself when it reads
			// the adjacency; the mapping contributes nothing here.
			return nil
		}
		layer := make(paths.Paths[V, E, Id], 0, len(out))
		for _, e := range out {
			layer = append(layer, paths.Single(e))
		}

		return layer
	}

	return BreadthFirst(g, id, paths.Paths[V, E, Id]{}, expand, paths.Product)
}

// AllPathsBetween filters AllPathsFrom(start) down to walks from start to
// end via paths.SubpathBetween. A self-loop start->start is reported as
// its single-edge path. Fails with ErrNoPaths when no walk matches.
func AllPathsBetween[V, E any, Id comparable](g *core.Graph[V, E, Id], start, end Id) (paths.Paths[V, E, Id], error) {
	all, err := AllPathsFrom(g, start)
	if err != nil {
		return nil, err
	}

	between := make(paths.Paths[V, E, Id], 0, len(all))
	for _, p := range all {
		sub, subErr := paths.SubpathBetween(p, start, end)
		if subErr != nil {
			continue
		}
		between = append(between, sub)
	}
	if len(between) == 0 {
		return nil, ErrNoPaths
	}

	return between, nil
}
