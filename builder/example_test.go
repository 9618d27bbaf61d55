package builder_test

import (
	"fmt"

	"github.com/katalvlaran/hamtour/builder"
)

// countingAdder tallies emitted edges.
type countingAdder struct{ n int }

func (c *countingAdder) AddEdge(int, int) error {
	c.n++

	return nil
}

// ExampleKnight counts the knight-move edges of the classic chessboard.
func ExampleKnight() {
	c := &countingAdder{}
	if err := builder.Build(c, builder.Knight(8, 8)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.n)
	// Output:
	// 168
}

// ExampleBuild composes several topologies into one edge list.
func ExampleBuild() {
	c := &countingAdder{}
	if err := builder.Build(c, builder.Grid(3, 3), builder.Cycle(9)); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.n)
	// Output:
	// 21
}
