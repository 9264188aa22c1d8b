package shadergraph

import (
	"encoding/json"
	"fmt"
)

// Serialized form: a flat node list whose array index is the node's
// handle, plus an edge list of (from, to, slot) triples. Sum types carry
// a "kind" discriminator. This is the interchange format for persisting a
// shader graph as an asset; decode(encode(g)) reproduces g's node values,
// handle numbering and edge data exactly.

type graphJSON struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type edgeJSON struct {
	From NodeHandle `json:"from"`
	To   NodeHandle `json:"to"`
	Slot uint32     `json:"slot"`
}

type nodeJSON struct {
	Kind    string     `json:"kind"`
	Binding *uint32    `json:"binding,omitempty"`
	Type    *typeJSON  `json:"type,omitempty"`
	Value   *valueJSON `json:"value,omitempty"`
	Index   *uint32    `json:"index,omitempty"`
	Op      string     `json:"op,omitempty"`
	Fun     string     `json:"fun,omitempty"`
}

type typeJSON struct {
	Kind    string    `json:"kind"`
	Signed  *bool     `json:"signed,omitempty"`
	Double  *bool     `json:"double,omitempty"`
	Size    *uint32   `json:"size,omitempty"`
	Elem    *typeJSON `json:"elem,omitempty"`
	Sampled *typeJSON `json:"sampled,omitempty"`
	Dim     string    `json:"dim,omitempty"`
}

type valueJSON struct {
	Kind       string    `json:"kind"`
	Components []float64 `json:"components"`
}

var dimNames = map[Dim]string{
	Dim1D:          "1D",
	Dim2D:          "2D",
	Dim3D:          "3D",
	DimCube:        "Cube",
	DimRect:        "Rect",
	DimBuffer:      "Buffer",
	DimSubpassData: "SubpassData",
}

var dimValues = map[string]Dim{}

var binaryOpValues = map[string]BinaryOperator{}

var mathFunValues = map[string]MathFunction{}

func init() {
	for d, name := range dimNames {
		dimValues[name] = d
	}
	for op := BinaryAdd; op <= BinaryModulo; op++ {
		binaryOpValues[op.String()] = op
	}
	for f := MathNormalize; f <= MathRefract; f++ {
		mathFunValues[f.String()] = f
	}
}

// MarshalJSON implements json.Marshaler.
func (g *Graph) MarshalJSON() ([]byte, error) {
	out := graphJSON{
		Nodes: make([]nodeJSON, len(g.nodes)),
		Edges: make([]edgeJSON, 0, g.edges),
	}
	for i, n := range g.nodes {
		nj, err := nodeToJSON(n)
		if err != nil {
			return nil, &Error{
				Kind:    ErrMalformedAsset,
				Message: fmt.Sprintf("node %d: %v", i, err),
			}
		}
		out.Nodes[i] = nj
	}
	// Edges are emitted grouped by destination, each group in insertion
	// order, so a round trip keeps the tie-break order of Arguments.
	for to, in := range g.incoming {
		for _, e := range in {
			out.Edges = append(out.Edges, edgeJSON{
				From: e.Node,
				To:   NodeHandle(to),
				Slot: e.Slot,
			})
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. The receiver's previous
// contents are discarded.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var in graphJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return &Error{
			Kind:    ErrMalformedAsset,
			Message: err.Error(),
		}
	}

	decoded := Graph{}
	for i, nj := range in.Nodes {
		n, err := nodeFromJSON(nj)
		if err != nil {
			return &Error{
				Kind:    ErrMalformedAsset,
				Message: fmt.Sprintf("node %d: %v", i, err),
			}
		}
		decoded.AddNode(n)
	}
	for i, ej := range in.Edges {
		if err := decoded.AddEdge(ej.From, ej.To, ej.Slot); err != nil {
			return &Error{
				Kind:    ErrMalformedAsset,
				Message: fmt.Sprintf("edge %d: %v", i, err),
			}
		}
	}

	*g = decoded
	return nil
}

func nodeToJSON(n Node) (nodeJSON, error) {
	switch n := n.(type) {
	case Input:
		b := n.Binding
		return nodeJSON{Kind: "input", Binding: &b, Type: typeToJSON(n.Type)}, nil
	case Uniform:
		b := n.Binding
		return nodeJSON{Kind: "uniform", Binding: &b, Type: typeToJSON(n.Type)}, nil
	case Output:
		b := n.Binding
		return nodeJSON{Kind: "output", Binding: &b, Type: typeToJSON(n.Type)}, nil
	case Constant:
		v, err := valueToJSON(n.Value)
		if err != nil {
			return nodeJSON{}, err
		}
		return nodeJSON{Kind: "constant", Value: v}, nil
	case Construct:
		return nodeJSON{Kind: "construct", Type: typeToJSON(n.Type)}, nil
	case Extract:
		idx := n.Index
		return nodeJSON{Kind: "extract", Index: &idx}, nil
	case Binary:
		return nodeJSON{Kind: "binary", Op: n.Op.String()}, nil
	case Math:
		return nodeJSON{Kind: "math", Fun: n.Fun.String()}, nil
	case Sample:
		return nodeJSON{Kind: "sample"}, nil
	case nil:
		return nodeJSON{}, fmt.Errorf("nil node")
	default:
		return nodeJSON{}, fmt.Errorf("unknown node variant %T", n)
	}
}

func nodeFromJSON(nj nodeJSON) (Node, error) {
	switch nj.Kind {
	case "input", "uniform", "output":
		if nj.Binding == nil {
			return nil, fmt.Errorf("%s node missing binding", nj.Kind)
		}
		t, err := typeFromJSON(nj.Type)
		if err != nil {
			return nil, err
		}
		switch nj.Kind {
		case "input":
			return Input{Binding: *nj.Binding, Type: t}, nil
		case "uniform":
			return Uniform{Binding: *nj.Binding, Type: t}, nil
		default:
			return Output{Binding: *nj.Binding, Type: t}, nil
		}
	case "constant":
		v, err := valueFromJSON(nj.Value)
		if err != nil {
			return nil, err
		}
		return Constant{Value: v}, nil
	case "construct":
		t, err := typeFromJSON(nj.Type)
		if err != nil {
			return nil, err
		}
		return Construct{Type: t}, nil
	case "extract":
		if nj.Index == nil {
			return nil, fmt.Errorf("extract node missing index")
		}
		return Extract{Index: *nj.Index}, nil
	case "binary":
		op, ok := binaryOpValues[nj.Op]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", nj.Op)
		}
		return Binary{Op: op}, nil
	case "math":
		fun, ok := mathFunValues[nj.Fun]
		if !ok {
			return nil, fmt.Errorf("unknown math function %q", nj.Fun)
		}
		return Math{Fun: fun}, nil
	case "sample":
		return Sample{}, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", nj.Kind)
	}
}

func typeToJSON(t TypeName) *typeJSON {
	switch t := t.(type) {
	case Bool:
		return &typeJSON{Kind: "bool"}
	case Int:
		s := t.Signed
		return &typeJSON{Kind: "int", Signed: &s}
	case Float:
		d := t.Double
		return &typeJSON{Kind: "float", Double: &d}
	case Vec:
		sz := t.Size
		return &typeJSON{Kind: "vec", Size: &sz}
	case Mat:
		sz := t.Size
		return &typeJSON{Kind: "mat", Size: &sz, Elem: typeToJSON(t.Elem)}
	case SamplerType:
		return &typeJSON{Kind: "sampler", Sampled: typeToJSON(t.Sampled), Dim: dimNames[t.Dim]}
	default:
		return nil
	}
}

func typeFromJSON(tj *typeJSON) (TypeName, error) {
	if tj == nil {
		return nil, fmt.Errorf("missing type")
	}
	switch tj.Kind {
	case "bool":
		return Bool{}, nil
	case "int":
		if tj.Signed == nil {
			return nil, fmt.Errorf("int type missing signedness")
		}
		return Int{Signed: *tj.Signed}, nil
	case "float":
		if tj.Double == nil {
			return nil, fmt.Errorf("float type missing precision")
		}
		return Float{Double: *tj.Double}, nil
	case "vec":
		if tj.Size == nil {
			return nil, fmt.Errorf("vec type missing size")
		}
		return Vec{Size: *tj.Size}, nil
	case "mat":
		if tj.Size == nil {
			return nil, fmt.Errorf("mat type missing size")
		}
		elem, err := typeFromJSON(tj.Elem)
		if err != nil {
			return nil, fmt.Errorf("mat element: %v", err)
		}
		return Mat{Size: *tj.Size, Elem: elem}, nil
	case "sampler":
		sampled, err := typeFromJSON(tj.Sampled)
		if err != nil {
			return nil, fmt.Errorf("sampled type: %v", err)
		}
		dim, ok := dimValues[tj.Dim]
		if !ok {
			return nil, fmt.Errorf("unknown dimension %q", tj.Dim)
		}
		return SamplerType{Sampled: sampled, Dim: dim}, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", tj.Kind)
	}
}

func valueToJSON(v TypedValue) (*valueJSON, error) {
	switch v := v.(type) {
	case FloatValue:
		return &valueJSON{Kind: "float", Components: []float64{v.Value}}, nil
	case Vec2Value:
		return &valueJSON{Kind: "vec2", Components: []float64{v.X, v.Y}}, nil
	case Vec3Value:
		return &valueJSON{Kind: "vec3", Components: []float64{v.X, v.Y, v.Z}}, nil
	case Vec4Value:
		return &valueJSON{Kind: "vec4", Components: []float64{v.X, v.Y, v.Z, v.W}}, nil
	case nil:
		return nil, fmt.Errorf("nil constant value")
	default:
		return nil, fmt.Errorf("unknown value variant %T", v)
	}
}

func valueFromJSON(vj *valueJSON) (TypedValue, error) {
	if vj == nil {
		return nil, fmt.Errorf("constant node missing value")
	}
	want := map[string]int{"float": 1, "vec2": 2, "vec3": 3, "vec4": 4}
	n, ok := want[vj.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown value kind %q", vj.Kind)
	}
	if len(vj.Components) != n {
		return nil, fmt.Errorf("%s value needs %d components, got %d", vj.Kind, n, len(vj.Components))
	}
	c := vj.Components
	switch vj.Kind {
	case "float":
		return FloatValue{Value: c[0]}, nil
	case "vec2":
		return Vec2Value{X: c[0], Y: c[1]}, nil
	case "vec3":
		return Vec3Value{X: c[0], Y: c[1], Z: c[2]}, nil
	default:
		return Vec4Value{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
	}
}
