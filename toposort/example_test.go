package toposort_test

import (
	"fmt"

	"github.com/katalvlaran/vigraph/btree"
	"github.com/katalvlaran/vigraph/core"
	"github.com/katalvlaran/vigraph/toposort"
)

// ExampleSort orders a diamond-shaped build plan and shows the fatal
// effect of closing it into a cycle.
func ExampleSort() {
	g, _ := core.New[string, struct{}](btree.Ordered[string](), core.WithOutgoing())
	for _, id := range []string{"a", "b", "c", "d"} {
		_ = g.AddVertex(id, id, core.CapOutgoing)
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}} {
		_ = g.AddEdge(struct{}{}, e[0], e[1])
	}

	order, _ := toposort.Sort(g, "a")
	fmt.Println(order)

	// A back edge makes the graph unsortable.
	_ = g.AddEdge(struct{}{}, "d", "a")
	_, err := toposort.Sort(g, "a")
	fmt.Println(err)

	// Output:
	// [a c b d]
	// toposort: graph contains cycle
}
