package shadergraph

import (
	"cmp"
	"iter"
	"slices"
)

// NodeHandle is a stable integer reference to a node. Handles are issued
// by AddNode, remain valid for the lifetime of the graph, and never
// dangle: there is no node-removal operation.
type NodeHandle uint32

// Direction selects which adjacency of a node a query walks.
type Direction uint8

const (
	// Incoming walks edges that end at the node (its operands).
	Incoming Direction = iota

	// Outgoing walks edges that start at the node (its consumers).
	Outgoing
)

// halfEdge is one endpoint of a directed edge as stored in an adjacency
// list. Slot is the ordinal argument position at the edge's destination.
type halfEdge struct {
	Node NodeHandle
	Slot uint32
}

// Graph is a directed multigraph of shader operations. Nodes are owned by
// an arena and addressed by stable handles; each edge carries the
// argument slot it feeds at its destination.
//
// A Graph is built incrementally and monotonically: nodes and edges are
// only ever added, never mutated or removed. Insertion order carries no
// meaning; only edge slots determine argument order. Before traversal is
// assumed to terminate, HasCycle must have returned false.
//
// The zero value is an empty graph ready for use. A Graph holds no
// external resources and has no internal locking: concurrent reads are
// safe once mutation has stopped, concurrent mutation is not.
type Graph struct {
	nodes    []Node
	outgoing [][]halfEdge
	incoming [][]halfEdge
	edges    int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode inserts a node with no edges and returns its handle. It never
// fails; handles are issued densely starting at zero.
func (g *Graph) AddNode(n Node) NodeHandle {
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.outgoing = append(g.outgoing, nil)
	g.incoming = append(g.incoming, nil)
	return h
}

// AddEdge inserts a directed edge from a producer to a consumer, feeding
// the consumer's argument slot. It does not check that slot is within the
// consumer's arity, that the slot is unused, or that the edge keeps the
// graph acyclic; those are builder contracts surfaced by Validate and
// HasCycle. It fails only when a handle was not issued by this graph.
func (g *Graph) AddEdge(from, to NodeHandle, slot uint32) error {
	if int(from) >= len(g.nodes) {
		return invalidHandle(from, len(g.nodes))
	}
	if int(to) >= len(g.nodes) {
		return invalidHandle(to, len(g.nodes))
	}
	g.outgoing[from] = append(g.outgoing[from], halfEdge{Node: to, Slot: slot})
	g.incoming[to] = append(g.incoming[to], halfEdge{Node: from, Slot: slot})
	g.edges++
	return nil
}

// Node returns the stored node value for a handle.
func (g *Graph) Node(h NodeHandle) (Node, error) {
	if int(h) >= len(g.nodes) {
		return nil, invalidHandle(h, len(g.nodes))
	}
	return g.nodes[h], nil
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// visit state for HasCycle's three-color depth-first search.
const (
	colorWhite uint8 = iota // not yet visited
	colorGray               // on the current DFS path
	colorBlack              // fully explored
)

// HasCycle reports whether the edge relation contains a directed cycle.
// A graph handed to a code generator must return false; traversal over a
// cyclic graph does not terminate. Runs in O(nodes+edges) and assumes
// nothing about the graph's shape.
func (g *Graph) HasCycle() bool {
	color := make([]uint8, len(g.nodes))

	// frame tracks how far into a node's outgoing list the search got,
	// so the walk is iterative and safe for deep graphs.
	type frame struct {
		node NodeHandle
		next int
	}

	var stack []frame
	for start := range g.nodes {
		if color[start] != colorWhite {
			continue
		}
		color[start] = colorGray
		stack = append(stack[:0], frame{node: NodeHandle(start)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.outgoing[top.node]
			if top.next < len(out) {
				succ := out[top.next].Node
				top.next++
				switch color[succ] {
				case colorGray:
					return true
				case colorWhite:
					color[succ] = colorGray
					stack = append(stack, frame{node: succ})
				}
				continue
			}
			color[top.node] = colorBlack
			stack = stack[:len(stack)-1]
		}
	}
	return false
}

// Outputs returns every node that was declared as an Output and has no
// outgoing edges, in ascending handle order. Output nodes with outgoing
// edges are being consumed as intermediate values and are not sinks.
func (g *Graph) Outputs() []NodeHandle {
	var sinks []NodeHandle
	for i, n := range g.nodes {
		if _, ok := n.(Output); !ok {
			continue
		}
		if len(g.outgoing[i]) == 0 {
			sinks = append(sinks, NodeHandle(i))
		}
	}
	return sinks
}

// Arguments returns the producers feeding a node, ordered by ascending
// argument slot. This is how a code generator reconstructs
// f(arg0, arg1, ...) syntax from the unordered edge set. Edges sharing a
// slot keep their insertion order; Validate reports such duplicates.
func (g *Graph) Arguments(h NodeHandle) ([]NodeHandle, error) {
	if int(h) >= len(g.nodes) {
		return nil, invalidHandle(h, len(g.nodes))
	}
	in := slices.Clone(g.incoming[h])
	slices.SortStableFunc(in, func(a, b halfEdge) int {
		return cmp.Compare(a.Slot, b.Slot)
	})
	args := make([]NodeHandle, len(in))
	for i, e := range in {
		args[i] = e.Node
	}
	return args, nil
}

// Neighbors returns a lazy sequence of the nodes adjacent to h in the
// given direction, without slot ordering. It is meant for exploratory
// traversal such as reachability or dead-node sweeps; codegen argument
// recovery should use Arguments. An invalid handle yields nothing.
func (g *Graph) Neighbors(h NodeHandle, dir Direction) iter.Seq[NodeHandle] {
	return func(yield func(NodeHandle) bool) {
		if int(h) >= len(g.nodes) {
			return
		}
		adj := g.incoming[h]
		if dir == Outgoing {
			adj = g.outgoing[h]
		}
		for _, e := range adj {
			if !yield(e.Node) {
				return
			}
		}
	}
}
