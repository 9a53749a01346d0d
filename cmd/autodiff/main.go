// Package main provides the autodiff demo CLI.
//
// The engine itself never renders anything; this command shows how a
// consumer turns a graph snapshot into Graphviz DOT text.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/casgari/autodiff"
)

const version = "v0.1.0-dev"

// demo is f(x, y) = sin(x*y) + x/y.
func demo(b autodiff.Builder, in []autodiff.Value) []autodiff.Value {
	x, y := in[0], in[1]
	return []autodiff.Value{b.Add(b.Sin(b.Mul(x, y)), b.Div(x, y))}
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("autodiff %s\n", version)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "graph" {
		if err := printGraph(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("autodiff - dual-pass automatic differentiation engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  graph [x y]      Print the demo expression's computation graph as DOT")
}

// printGraph evaluates the demo expression at the given point (default
// 1 2) and writes the reachable subgraph in DOT format to stdout.
func printGraph(args []string) error {
	point := []float64{1, 2}
	switch len(args) {
	case 0:
	case 2:
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("parse point: %w", err)
			}
			point[i] = v
		}
	default:
		return fmt.Errorf("graph takes no arguments or exactly two coordinates, got %d", len(args))
	}

	f, err := autodiff.NewFunction(demo, 2, 1)
	if err != nil {
		return err
	}
	snap, err := f.Graph(point)
	if err != nil {
		return err
	}

	fmt.Println("digraph expression {")
	fmt.Println("  rankdir=LR;")
	for _, n := range snap.Nodes {
		shape := "record"
		if n.Leaf {
			shape = "ellipse"
		}
		fmt.Printf("  v%d [shape=%s, label=\"%s\\nval: %.3f\"];\n", n.ID, shape, n.Op, n.Value)
	}
	for _, e := range snap.Edges {
		fmt.Printf("  v%d -> v%d [label=\"%.3f\"];\n", e.From, e.To, e.Partial)
	}
	fmt.Println("}")
	return nil
}
