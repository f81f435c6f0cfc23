package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/vigraph/btree"
	"github.com/katalvlaran/vigraph/core"
	"github.com/katalvlaran/vigraph/traverse"
)

func exampleDiamond() *core.Graph[string, struct{}, string] {
	g, _ := core.New[string, struct{}](btree.Ordered[string](), core.WithOutgoing())
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id, id, core.CapOutgoing)
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		_ = g.AddEdge(struct{}{}, e[0], e[1])
	}

	return g
}

// ExampleDepthFirst collects visit order via a slice accumulator.
func ExampleDepthFirst() {
	visit := func(v *core.Vertex[string, struct{}, string]) []string {
		return []string{v.ID()}
	}
	concat := func(acc, step []string) []string { return append(acc, step...) }

	order, _ := traverse.DepthFirst(exampleDiamond(), "a", nil, visit, concat)
	fmt.Println(order)

	// Output:
	// [a c d b]
}

// ExampleBreadthFirst folds the same diamond level by level.
func ExampleBreadthFirst() {
	visit := func(v *core.Vertex[string, struct{}, string]) []string {
		return []string{v.ID()}
	}
	concat := func(acc, step []string) []string { return append(acc, step...) }

	order, _ := traverse.BreadthFirst(exampleDiamond(), "a", nil, visit, concat)
	fmt.Println(order)

	// Output:
	// [a b c d]
}
