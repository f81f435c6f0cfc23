package paths

import "github.com/katalvlaran/vigraph/core"

// Concat joins two paths into one walk.
// An empty left operand returns the right operand unchanged, and vice
// versa. Otherwise the operands must be adjacent - the left path's end id
// must equal the right path's start id - or Concat fails with
// ErrNotAdjacent. Unresolvable boundary endpoints propagate
// core.ErrNilVertex.
// Complexity: O(len(l)+len(r))
func Concat[V, E any, Id comparable](l, r Path[V, E, Id]) (Path[V, E, Id], error) {
	// 1. Empty operands are the concatenation identity.
	if l.Empty() {
		return r, nil
	}
	if r.Empty() {
		return l, nil
	}

	// 2. Resolve the boundary: left end must meet right start.
	lEnd, err := l.EndID()
	if err != nil {
		return Path[V, E, Id]{}, err
	}
	rStart, err := r.StartID()
	if err != nil {
		return Path[V, E, Id]{}, err
	}
	if lEnd != rStart {
		return Path[V, E, Id]{}, ErrNotAdjacent
	}

	// 3. Join into a fresh path; neither operand is mutated.
	joined := make([]*core.Edge[V, E, Id], 0, len(l.edges)+len(r.edges))
	joined = append(joined, l.edges...)
	joined = append(joined, r.edges...)

	return Path[V, E, Id]{edges: joined}, nil
}

// join is the lenient variant of Concat used by Product: a left operand
// that cannot be extended by r (non-adjacent, or a boundary that fails to
// resolve) survives unchanged instead of failing. This is what lets a
// cartesian accumulation keep paths that the newest layer does not extend.
func join[V, E any, Id comparable](l, r Path[V, E, Id]) Path[V, E, Id] {
	if l.Empty() {
		return r
	}
	if r.Empty() {
		return l
	}
	lEnd, err := l.EndID()
	if err != nil {
		return l
	}
	rStart, err := r.StartID()
	if err != nil {
		return l
	}
	if lEnd != rStart {
		return l
	}
	joined := make([]*core.Edge[V, E, Id], 0, len(l.edges)+len(r.edges))
	joined = append(joined, l.edges...)
	joined = append(joined, r.edges...)

	return Path[V, E, Id]{edges: joined}
}

// Product combines two path sets as a cartesian product: every path of l
// joined (leniently) with every path of r, in order. An empty operand acts
// as identity.
// Complexity: O(|l|·|r|·L)
func Product[V, E any, Id comparable](l, r Paths[V, E, Id]) Paths[V, E, Id] {
	if len(l) == 0 {
		return r
	}
	if len(r) == 0 {
		return l
	}
	out := make(Paths[V, E, Id], 0, len(l)*len(r))
	for _, lp := range l {
		for _, rp := range r {
			out = append(out, join(lp, rp))
		}
	}

	return out
}

// SubpathBetween extracts the inclusive sub-sequence of p between the
// first edge starting at start and the first edge ending at end.
// If the whole path already runs start->end it is returned as a copy
// without scanning. Fails with ErrIDNotFound when p is empty, when either
// anchor is missing, or when the matched positions do not form a forward
// range.
// Complexity: O(len(p))
func SubpathBetween[V, E any, Id comparable](p Path[V, E, Id], start, end Id) (Path[V, E, Id], error) {
	var zero Path[V, E, Id]

	// 1. An empty path holds no walk to extract from.
	if p.Empty() {
		return zero, ErrIDNotFound
	}

	// 2. Fast path: the path itself already runs start->end.
	absStart, err := p.StartID()
	if err != nil {
		return zero, err
	}
	absEnd, err := p.EndID()
	if err != nil {
		return zero, err
	}
	if absStart == start && absEnd == end {
		return Path[V, E, Id]{edges: p.Edges()}, nil
	}

	// 3. Scan for the first edge starting at start and the first edge
	//    ending at end.
	iStart, iEnd := -1, -1
	for i, e := range p.edges {
		if iStart < 0 {
			if s, sErr := e.StartID(); sErr == nil && s == start {
				iStart = i
			}
		}
		if iEnd < 0 {
			if t, tErr := e.EndID(); tErr == nil && t == end {
				iEnd = i
			}
		}
	}
	if iStart < 0 || iEnd < 0 || iEnd < iStart {
		return zero, ErrIDNotFound
	}

	// 4. Inclusive sub-sequence, copied out of p.
	sub := append([]*core.Edge[V, E, Id](nil), p.edges[iStart:iEnd+1]...)

	return Path[V, E, Id]{edges: sub}, nil
}
