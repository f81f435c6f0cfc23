package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vigraph/btree"
	"github.com/katalvlaran/vigraph/core"
	"github.com/katalvlaran/vigraph/paths"
)

// chain builds A->B->C->D (outgoing-only) and returns the graph plus a
// lookup from "U->V" to the recorded edge.
func chain(t *testing.T) (*core.Graph[string, int, string], map[string]*core.Edge[string, int, string]) {
	t.Helper()
	g, err := core.New[string, int](btree.Ordered[string](), core.WithOutgoing())
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id, id, core.CapOutgoing))
	}
	byName := make(map[string]*core.Edge[string, int, string])
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(0, e[0], e[1]))
		out, outErr := g.OutgoingEdges(e[0])
		require.NoError(t, outErr)
		byName[e[0]+"->"+e[1]] = out[len(out)-1]
	}

	return g, byName
}

// ids linearizes a path into the vertex ids it passes through.
func ids(t *testing.T, p paths.Path[string, int, string]) []string {
	t.Helper()
	edges := p.Edges()
	if len(edges) == 0 {
		return nil
	}
	out := make([]string, 0, len(edges)+1)
	s, err := edges[0].StartID()
	require.NoError(t, err)
	out = append(out, s)
	for _, e := range edges {
		end, endErr := e.EndID()
		require.NoError(t, endErr)
		out = append(out, end)
	}

	return out
}

// TestPath_Endpoints verifies StartID/EndID and the empty-path failure.
func TestPath_Endpoints(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"])

	start, err := p.StartID()
	require.NoError(t, err)
	end, err := p.EndID()
	require.NoError(t, err)
	assert.Equal(t, "A", start)
	assert.Equal(t, "C", end)

	var empty paths.Path[string, int, string]
	_, err = empty.StartID()
	assert.ErrorIs(t, err, paths.ErrEmptyPath)
	_, err = empty.EndID()
	assert.ErrorIs(t, err, paths.ErrEmptyPath)
}

// TestConcat_Adjacent: [A->B] + [B->C] = [A->B, B->C].
func TestConcat_Adjacent(t *testing.T) {
	_, edges := chain(t)
	l := paths.Single(edges["A->B"])
	r := paths.Single(edges["B->C"])

	joined, err := paths.Concat(l, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(t, joined))
	assert.Equal(t, 2, joined.Len())

	// The operands are untouched.
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, r.Len())
}

// TestConcat_NotAdjacent fails loudly instead of silently dropping the
// right operand.
func TestConcat_NotAdjacent(t *testing.T) {
	_, edges := chain(t)
	l := paths.Single(edges["A->B"])
	r := paths.Single(edges["C->D"])

	_, err := paths.Concat(l, r)
	assert.ErrorIs(t, err, paths.ErrNotAdjacent)
}

// TestConcat_EmptyIdentity: an empty operand returns the other unchanged.
func TestConcat_EmptyIdentity(t *testing.T) {
	_, edges := chain(t)
	p := paths.Single(edges["B->C"])
	var empty paths.Path[string, int, string]

	got, err := paths.Concat(empty, p)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))

	got, err = paths.Concat(p, empty)
	require.NoError(t, err)
	assert.True(t, got.Equal(p))
}

// TestProduct_CartesianJoin pins the lenient product semantics: adjacent
// pairs join, non-adjacent pairs keep the left path intact.
func TestProduct_CartesianJoin(t *testing.T) {
	_, edges := chain(t)
	l := paths.Paths[string, int, string]{
		paths.Single(edges["A->B"]),
		paths.Single(edges["B->C"]),
	}
	r := paths.Paths[string, int, string]{
		paths.Single(edges["B->C"]),
		paths.Single(edges["C->D"]),
	}

	got := paths.Product(l, r)
	require.Equal(t, 4, got.Len())
	assert.Equal(t, []string{"A", "B", "C"}, ids(t, got[0])) // A->B + B->C
	assert.Equal(t, []string{"A", "B"}, ids(t, got[1]))      // A->B kept: C->D not adjacent
	assert.Equal(t, []string{"B", "C"}, ids(t, got[2]))      // B->C kept: B->C not adjacent
	assert.Equal(t, []string{"B", "C", "D"}, ids(t, got[3])) // B->C + C->D
}

// TestProduct_EmptyIdentity: an empty operand acts as identity.
func TestProduct_EmptyIdentity(t *testing.T) {
	_, edges := chain(t)
	ps := paths.Paths[string, int, string]{paths.Single(edges["A->B"])}

	assert.Equal(t, ps, paths.Product(nil, ps))
	assert.Equal(t, ps, paths.Product(ps, nil))
}

// TestSubpathBetween_WholePath returns a copy when the path already runs
// start->end.
func TestSubpathBetween_WholePath(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"], edges["C->D"])

	sub, err := paths.SubpathBetween(p, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(t, sub))
}

// TestSubpathBetween_InnerRange extracts the inclusive sub-sequence.
func TestSubpathBetween_InnerRange(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"], edges["C->D"])

	sub, err := paths.SubpathBetween(p, "B", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids(t, sub))

	sub, err = paths.SubpathBetween(p, "B", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ids(t, sub))
}

// TestSubpathBetween_Missing fails with the not-found error for absent
// anchors, empty paths, and inverted ranges.
func TestSubpathBetween_Missing(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"])

	_, err := paths.SubpathBetween(p, "A", "Z")
	assert.ErrorIs(t, err, paths.ErrIDNotFound)
	_, err = paths.SubpathBetween(p, "Z", "C")
	assert.ErrorIs(t, err, paths.ErrIDNotFound)

	var empty paths.Path[string, int, string]
	_, err = paths.SubpathBetween(empty, "A", "B")
	assert.ErrorIs(t, err, paths.ErrIDNotFound)

	// C..B would run backwards through the walk.
	_, err = paths.SubpathBetween(p, "C", "B")
	assert.ErrorIs(t, err, paths.ErrIDNotFound)
}

// TestPath_Contains matches edge endpoints only.
func TestPath_Contains(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"])

	assert.True(t, p.Contains("A"))
	assert.True(t, p.Contains("B"))
	assert.True(t, p.Contains("C"))
	assert.False(t, p.Contains("D"))

	var empty paths.Path[string, int, string]
	assert.False(t, empty.Contains("A"))
}

// TestPath_Equal compares endpoint ids edge by edge, lengths included.
func TestPath_Equal(t *testing.T) {
	_, edges := chain(t)
	p := paths.NewPath(edges["A->B"], edges["B->C"])

	assert.True(t, p.Equal(paths.NewPath(edges["A->B"], edges["B->C"])))
	assert.False(t, p.Equal(paths.Single(edges["A->B"])))
	assert.False(t, p.Equal(paths.NewPath(edges["A->B"], edges["C->D"])))
}

// TestPaths_At bounds-checks positional access.
func TestPaths_At(t *testing.T) {
	_, edges := chain(t)
	ps := paths.Paths[string, int, string]{paths.Single(edges["A->B"])}

	got, err := ps.At(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids(t, got))

	_, err = ps.At(1)
	assert.ErrorIs(t, err, paths.ErrOutOfBounds)
	_, err = ps.At(-1)
	assert.ErrorIs(t, err, paths.ErrOutOfBounds)
}
