// Package shadergraph defines a typed dataflow-graph intermediate
// representation for shader programs.
//
// A shader is modeled as a directed acyclic multigraph: vertices are
// declarations (Input, Uniform, Output), literals (Constant) and pure
// operators (Construct, Extract, Binary, Math, Sample); edges are data
// dependencies, each carrying the ordinal argument slot it feeds at its
// destination. Nodes are addressed by stable integer handles issued at
// insertion; there is no removal, so handles never dangle.
//
// # Lifecycle
//
// A builder (an editor or a deserializer) grows a Graph with AddNode and
// AddEdge. Neither call checks arity, slot uniqueness or acyclicity, so
// an editor can move through invalid intermediate states freely. Before a
// consumer traverses the graph it runs Validate (or at minimum HasCycle)
// and refuses to proceed on any diagnostic. After that the graph is
// contractually frozen: every query is read-only and safe for concurrent
// use.
//
// # Consumption
//
// A code generator walks backward from the sinks:
//
//	for _, out := range g.Outputs() {
//	    args, _ := g.Arguments(out) // ordered by argument slot
//	    ...
//	}
//
// recursing over Arguments until it reaches Input, Uniform and Constant
// leaves, and emitting target shading-language source plus a binding
// table from the declarations' binding indices and types. This package
// deliberately contains no code generation itself.
//
// # Persistence
//
// Graph implements json.Marshaler and json.Unmarshaler; the round trip
// preserves node values, handle numbering and edge data, which makes the
// JSON form suitable as an on-disk asset format.
package shadergraph
