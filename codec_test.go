package shadergraph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes g and decodes it into a fresh graph.
func roundTrip(t *testing.T, g *Graph) *Graph {
	t.Helper()
	data, err := json.Marshal(g)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, json.Unmarshal(data, decoded))
	return decoded
}

func TestRoundTripEmptyGraph(t *testing.T) {
	decoded := roundTrip(t, New())
	assert.Equal(t, 0, decoded.NodeCount())
	assert.Equal(t, 0, decoded.EdgeCount())
}

func TestRoundTripPreservesNodesAndEdges(t *testing.T) {
	g := New()
	pos := g.AddNode(Input{Binding: 0, Type: Vec{Size: 3}})
	uv := g.AddNode(Input{Binding: 1, Type: Vec{Size: 2}})
	tex := g.AddNode(Uniform{Binding: 0, Type: SamplerType{Sampled: Vec{Size: 4}, Dim: Dim2D}})
	tint := g.AddNode(Constant{Value: Vec4Value{X: 1, Y: 0.5, Z: 0.25, W: 1}})
	smp := g.AddNode(Sample{})
	mul := g.AddNode(Binary{Op: BinaryMultiply})
	norm := g.AddNode(Math{Fun: MathNormalize})
	ctor := g.AddNode(Construct{Type: Vec{Size: 4}})
	x := g.AddNode(Extract{Index: 0})
	color := g.AddNode(Output{Binding: 0, Type: Vec{Size: 4}})

	require.NoError(t, g.AddEdge(tex, smp, 0))
	require.NoError(t, g.AddEdge(uv, smp, 1))
	require.NoError(t, g.AddEdge(smp, mul, 0))
	require.NoError(t, g.AddEdge(tint, mul, 1))
	require.NoError(t, g.AddEdge(mul, color, 0))
	require.NoError(t, g.AddEdge(pos, norm, 0))
	require.NoError(t, g.AddEdge(norm, x, 0))
	require.NoError(t, g.AddEdge(x, ctor, 0))

	decoded := roundTrip(t, g)

	require.Equal(t, g.NodeCount(), decoded.NodeCount())
	require.Equal(t, g.EdgeCount(), decoded.EdgeCount())

	// Handles and node values must survive unchanged.
	for h := NodeHandle(0); int(h) < g.NodeCount(); h++ {
		want, err := g.Node(h)
		require.NoError(t, err)
		got, err := decoded.Node(h)
		require.NoError(t, err)
		assert.Equal(t, want, got, "node %d", h)
	}

	// Edge endpoints and slots must survive; Arguments sees them.
	for h := NodeHandle(0); int(h) < g.NodeCount(); h++ {
		want, err := g.Arguments(h)
		require.NoError(t, err)
		got, err := decoded.Arguments(h)
		require.NoError(t, err)
		assert.Equal(t, want, got, "arguments of node %d", h)
	}

	assert.Equal(t, g.Outputs(), decoded.Outputs())
}

func TestRoundTripKeepsArgumentOrder(t *testing.T) {
	g := New()
	a := g.AddNode(Input{Binding: 0, Type: Float{}})
	b := g.AddNode(Input{Binding: 1, Type: Float{}})
	c := g.AddNode(Input{Binding: 2, Type: Float{}})
	clamp := g.AddNode(Math{Fun: MathClamp})

	// Inserted out of slot order on purpose.
	require.NoError(t, g.AddEdge(c, clamp, 2))
	require.NoError(t, g.AddEdge(a, clamp, 0))
	require.NoError(t, g.AddEdge(b, clamp, 1))

	decoded := roundTrip(t, g)

	args, err := decoded.Arguments(clamp)
	require.NoError(t, err)
	assert.Equal(t, []NodeHandle{a, b, c}, args)
}

func TestRoundTripAllTypeVariants(t *testing.T) {
	types := []TypeName{
		Bool{},
		Int{Signed: true},
		Int{Signed: false},
		Float{},
		Float{Double: true},
		Vec{Size: 2},
		Mat{Size: 4, Elem: Float{}},
		Mat{Size: 3, Elem: Mat{Size: 3, Elem: Float{Double: true}}},
		SamplerType{Sampled: Vec{Size: 4}, Dim: DimCube},
		SamplerType{Sampled: Float{}, Dim: DimSubpassData},
	}

	g := New()
	for i, typ := range types {
		g.AddNode(Uniform{Binding: uint32(i), Type: typ})
	}

	decoded := roundTrip(t, g)
	for h, typ := range types {
		n, err := decoded.Node(NodeHandle(h))
		require.NoError(t, err)
		assert.Equal(t, Uniform{Binding: uint32(h), Type: typ}, n)
	}
}

func TestRoundTripAllValueVariants(t *testing.T) {
	values := []TypedValue{
		FloatValue{Value: 3.25},
		Vec2Value{X: 1, Y: -2},
		Vec3Value{X: 0.5, Y: 0.25, Z: 0.125},
		Vec4Value{X: 1, Y: 2, Z: 3, W: 4},
	}

	g := New()
	for _, v := range values {
		g.AddNode(Constant{Value: v})
	}

	decoded := roundTrip(t, g)
	for h, v := range values {
		n, err := decoded.Node(NodeHandle(h))
		require.NoError(t, err)
		assert.Equal(t, Constant{Value: v}, n)
	}
}

func TestUnmarshalRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown node kind", `{"nodes":[{"kind":"teleport"}],"edges":[]}`},
		{"unknown type kind", `{"nodes":[{"kind":"input","binding":0,"type":{"kind":"quaternion"}}],"edges":[]}`},
		{"missing binding", `{"nodes":[{"kind":"input","type":{"kind":"bool"}}],"edges":[]}`},
		{"missing type", `{"nodes":[{"kind":"output","binding":0}],"edges":[]}`},
		{"unknown math function", `{"nodes":[{"kind":"math","fun":"teleport"}],"edges":[]}`},
		{"unknown binary op", `{"nodes":[{"kind":"binary","op":"&"}],"edges":[]}`},
		{"bad value components", `{"nodes":[{"kind":"constant","value":{"kind":"vec3","components":[1,2]}}],"edges":[]}`},
		{"unknown dim", `{"nodes":[{"kind":"uniform","binding":0,"type":{"kind":"sampler","dim":"5D","sampled":{"kind":"bool"}}}],"edges":[]}`},
		{"dangling edge", `{"nodes":[{"kind":"sample"}],"edges":[{"from":0,"to":9,"slot":0}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New()
			err := json.Unmarshal([]byte(c.data), g)
			require.Error(t, err)

			var sgErr *Error
			if assert.ErrorAs(t, err, &sgErr) {
				assert.Equal(t, ErrMalformedAsset, sgErr.Kind)
			}
		})
	}
}

func TestUnmarshalRejectsInvalidJSON(t *testing.T) {
	g := New()
	err := json.Unmarshal([]byte(`{"nodes":`), g)
	require.Error(t, err)
}

func TestUnmarshalReplacesReceiver(t *testing.T) {
	g := New()
	g.AddNode(Sample{})
	g.AddNode(Sample{})

	require.NoError(t, json.Unmarshal([]byte(`{"nodes":[],"edges":[]}`), g))
	assert.Equal(t, 0, g.NodeCount(), "decode must discard previous contents")
}

func TestUnmarshalFailureLeavesReceiverIntact(t *testing.T) {
	g := New()
	g.AddNode(Sample{})

	err := json.Unmarshal([]byte(`{"nodes":[{"kind":"teleport"}],"edges":[]}`), g)
	require.Error(t, err)
	assert.Equal(t, 1, g.NodeCount(), "failed decode must not clobber the receiver")
}
