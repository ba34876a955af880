// Package fineman_test provides examples demonstrating how to use Fineman.
// Each example is runnable via "go test -run Example", showing both code and expected output.
package fineman_test

import (
	"fmt"

	"github.com/gofineman/fineman"
	"github.com/gofineman/fineman/graph"
	"github.com/gofineman/fineman/weight"
)

// ExampleFineman_path demonstrates computing shortest paths on a small
// directed graph carrying a negative edge, with source vertex 0.
func ExampleFineman_path() {
	g := graph.New[int64](4)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, -1)
	g.AddEdge(2, 3, 3)

	dist, err := fineman.Fineman(g, 0, weight.IntLimits())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[1]=%d dist[2]=%d dist[3]=%d\n", dist[1].Value, dist[2].Value, dist[3].Value)
	// Output: dist[1]=2 dist[2]=1 dist[3]=4
}

// ExampleFineman_negativeCycle demonstrates that a negative cycle
// reachable from the source is reported as an error rather than a
// distance vector.
func ExampleFineman_negativeCycle() {
	g := graph.New[int64](3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 0, -3)

	_, err := fineman.Fineman(g, 0, weight.IntLimits())
	fmt.Println(err != nil)
	// Output: true
}

// ExampleFineman_unreachable demonstrates that vertices with no path
// from the source are reported via Distance.Unreachable rather than a
// sentinel value.
func ExampleFineman_unreachable() {
	g := graph.New[int64](3)
	g.AddEdge(0, 1, 5)

	dist, err := fineman.Fineman(g, 0, weight.IntLimits())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[1]=%d unreachable[2]=%t\n", dist[1].Value, dist[2].Unreachable)
	// Output: dist[1]=5 unreachable[2]=true
}
