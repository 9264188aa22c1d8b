// Command sgcheck validates serialized shader graph assets.
//
// Usage:
//
//	sgcheck [options] <graph.json>
//
// Examples:
//
//	sgcheck material.json              # Validate only
//	sgcheck -outputs material.json     # Also list sink nodes
//	sgcheck -bindings material.json    # Also print the binding table
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/shadergraph"
)

var (
	outputs  = flag.Bool("outputs", false, "list sink output nodes")
	bindings = flag.Bool("bindings", false, "print the input/uniform/output binding table")
	version  = flag.Bool("version", false, "print version")
)

const sgcheckVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("sgcheck version %s\n", sgcheckVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	var g shadergraph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding graph: %v\n", err)
		os.Exit(1)
	}

	if errs := shadergraph.Validate(&g); errs != nil {
		fmt.Fprintf(os.Stderr, "%s: %d problem(s)\n", inputPath, len(errs))
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %v\n", e)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: ok (%d nodes, %d edges)\n", inputPath, g.NodeCount(), g.EdgeCount())

	if *outputs {
		printOutputs(&g)
	}
	if *bindings {
		printBindings(&g)
	}
}

func printOutputs(g *shadergraph.Graph) {
	for _, h := range g.Outputs() {
		n, err := g.Node(h)
		if err != nil {
			continue
		}
		out := n.(shadergraph.Output)
		args, _ := g.Arguments(h)
		fmt.Printf("output node %d: location %d %s, fed by %v\n",
			h, out.Binding, shadergraph.TypeString(out.Type), args)
	}
}

// printBindings emits the host-side view of the graph's interface: which
// attribute locations and uniform bindings a renderer has to supply, and
// which outputs the shader writes.
func printBindings(g *shadergraph.Graph) {
	for h := shadergraph.NodeHandle(0); int(h) < g.NodeCount(); h++ {
		n, err := g.Node(h)
		if err != nil {
			break
		}
		switch n := n.(type) {
		case shadergraph.Input:
			fmt.Printf("input   @location(%d) %s\n", n.Binding, shadergraph.TypeString(n.Type))
		case shadergraph.Uniform:
			fmt.Printf("uniform @binding(%d) %s\n", n.Binding, shadergraph.TypeString(n.Type))
		case shadergraph.Output:
			fmt.Printf("output  @location(%d) %s\n", n.Binding, shadergraph.TypeString(n.Type))
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: sgcheck [options] <graph.json>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  sgcheck material.json            Validate a graph asset\n")
	fmt.Fprintf(os.Stderr, "  sgcheck -outputs material.json   List sink nodes\n")
	fmt.Fprintf(os.Stderr, "  sgcheck -bindings material.json  Print the binding table\n")
}
