package shadergraph

import "fmt"

// ValidationError describes one problem found in a graph.
type ValidationError struct {
	Kind    ErrorKind
	Message string

	// Node identifies the offending node, when the problem is attributable
	// to one. Graph-level problems such as cycles leave it nil.
	Node *NodeHandle
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("node %d: %s", *e.Node, e.Message)
	}
	return e.Message
}

// validator accumulates diagnostics over a single graph.
type validator struct {
	graph  *Graph
	errors []ValidationError
}

// Validate checks a graph for the structural problems a code generator
// cannot recover from: cycles, arity mismatches, duplicate or
// out-of-range argument slots, colliding binding indices and malformed
// type payloads. It returns all problems found, or nil if the graph is
// well formed.
//
// None of these checks run at mutation time; AddEdge stays permissive so
// an editor can pass through invalid intermediate states. Validate is the
// gate a consumer runs before traversal.
func Validate(g *Graph) []ValidationError {
	v := &validator{graph: g}

	v.validateStructure()
	v.validateNodes()
	v.validateBindings()

	if len(v.errors) > 0 {
		return v.errors
	}
	return nil
}

// validateStructure checks the edge relation as a whole.
func (v *validator) validateStructure() {
	if v.graph.HasCycle() {
		v.errors = append(v.errors, ValidationError{
			Kind:    ErrStructuralCycle,
			Message: "graph contains a directed cycle",
		})
	}
}

// validateNodes checks each node's incoming edges against its arity and
// its type payload against the ranges a backend can emit.
func (v *validator) validateNodes() {
	for i, n := range v.graph.nodes {
		h := NodeHandle(i)

		arity := n.Arity()
		in := v.graph.incoming[i]
		if len(in) != arity {
			v.addNodeError(h, ErrArityMismatch,
				fmt.Sprintf("expected %d arguments, got %d", arity, len(in)))
		}

		seen := make(map[uint32]bool, len(in))
		for _, e := range in {
			if seen[e.Slot] {
				v.addNodeError(h, ErrDuplicateArgumentSlot,
					fmt.Sprintf("argument slot %d is fed by more than one edge", e.Slot))
			}
			seen[e.Slot] = true

			if int(e.Slot) >= arity {
				v.addNodeError(h, ErrArityMismatch,
					fmt.Sprintf("argument slot %d out of range (arity %d)", e.Slot, arity))
			}
		}

		v.validateNodeType(h, n)
	}
}

// validateNodeType checks the TypeName payload of declaring variants.
// The types themselves accept any payload; out-of-range sizes are a
// builder error reported here.
func (v *validator) validateNodeType(h NodeHandle, n Node) {
	switch n := n.(type) {
	case Input:
		v.validateType(h, n.Type)
	case Uniform:
		v.validateType(h, n.Type)
	case Output:
		v.validateType(h, n.Type)
	case Construct:
		v.validateType(h, n.Type)
	case Constant:
		if n.Value == nil {
			v.addNodeError(h, ErrMalformedAsset, "constant has no value")
		}
	}
}

func (v *validator) validateType(h NodeHandle, t TypeName) {
	switch t := t.(type) {
	case nil:
		v.addNodeError(h, ErrMalformedAsset, "node has nil type")
	case Vec:
		if t.Size < 2 || t.Size > 4 {
			v.addNodeError(h, ErrMalformedAsset,
				fmt.Sprintf("vector size must be 2, 3, or 4, got %d", t.Size))
		}
	case Mat:
		if t.Size < 2 || t.Size > 4 {
			v.addNodeError(h, ErrMalformedAsset,
				fmt.Sprintf("matrix size must be 2, 3, or 4, got %d", t.Size))
		}
		if t.Elem == nil {
			v.addNodeError(h, ErrMalformedAsset, "matrix has nil element type")
		} else {
			v.validateType(h, t.Elem)
		}
	case SamplerType:
		if t.Sampled == nil {
			v.addNodeError(h, ErrMalformedAsset, "sampler has nil sampled type")
		} else {
			v.validateType(h, t.Sampled)
		}
	}
}

// validateBindings checks that binding indices are unique within each
// declaration kind. Uniqueness across kinds is not required.
func (v *validator) validateBindings() {
	inputs := make(map[uint32]bool)
	uniforms := make(map[uint32]bool)
	outputs := make(map[uint32]bool)

	for i, n := range v.graph.nodes {
		h := NodeHandle(i)
		switch n := n.(type) {
		case Input:
			if inputs[n.Binding] {
				v.addNodeError(h, ErrMalformedAsset,
					fmt.Sprintf("duplicate input binding %d", n.Binding))
			}
			inputs[n.Binding] = true
		case Uniform:
			if uniforms[n.Binding] {
				v.addNodeError(h, ErrMalformedAsset,
					fmt.Sprintf("duplicate uniform binding %d", n.Binding))
			}
			uniforms[n.Binding] = true
		case Output:
			if outputs[n.Binding] {
				v.addNodeError(h, ErrMalformedAsset,
					fmt.Sprintf("duplicate output binding %d", n.Binding))
			}
			outputs[n.Binding] = true
		}
	}
}

func (v *validator) addNodeError(h NodeHandle, kind ErrorKind, msg string) {
	v.errors = append(v.errors, ValidationError{
		Kind:    kind,
		Message: msg,
		Node:    &h,
	})
}
