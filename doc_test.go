package lacam_test

import (
	"fmt"

	"github.com/katalvlaran/lacam/graph"
	"github.com/katalvlaran/lacam/solver"
)

// Example builds the three-edge "paper example" fixture (a-b, b-c, a-d), runs
// the solver to completion, and reports the final configuration.
func Example() {
	g := graph.NewGraph()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	d := g.AddVertex()
	if _, err := g.AddEdge(a, b); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddEdge(b, c); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := g.AddEdge(a, d); err != nil {
		fmt.Println("error:", err)
		return
	}

	s := solver.New()
	if err := s.Initialize(g, []int{a, c}, []int{d, b}); err != nil {
		fmt.Println("error:", err)
		return
	}
	for s.Step() {
	}

	path, _ := s.Solution()
	final := path[len(path)-1]
	fmt.Println(s.Status())
	fmt.Println(final.At(0), final.At(1))
	// Output:
	// solved
	// 3 1
}
