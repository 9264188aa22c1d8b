package shadergraph

import (
	"encoding/json"
	"testing"
)

// buildChainGraph builds a linear chain input -> op -> op -> ... -> output
// of the given total length.
func buildChainGraph(length int) *Graph {
	g := New()
	prev := g.AddNode(Input{Binding: 0, Type: Vec{Size: 3}})
	for i := 0; i < length-2; i++ {
		op := g.AddNode(Math{Fun: MathNormalize})
		_ = g.AddEdge(prev, op, 0)
		prev = op
	}
	out := g.AddNode(Output{Binding: 0, Type: Vec{Size: 3}})
	_ = g.AddEdge(prev, out, 0)
	return g
}

// buildWideGraph builds a graph of fan-in layers: each layer's nodes mix
// pairs from the previous layer.
func buildWideGraph(width, depth int) *Graph {
	g := New()
	layer := make([]NodeHandle, width)
	for i := range layer {
		layer[i] = g.AddNode(Input{Binding: uint32(i), Type: Float{}})
	}
	for d := 0; d < depth; d++ {
		next := make([]NodeHandle, width)
		for i := range next {
			op := g.AddNode(Binary{Op: BinaryAdd})
			_ = g.AddEdge(layer[i], op, 0)
			_ = g.AddEdge(layer[(i+1)%width], op, 1)
			next[i] = op
		}
		layer = next
	}
	for i, h := range layer {
		out := g.AddNode(Output{Binding: uint32(i), Type: Float{}})
		_ = g.AddEdge(h, out, 0)
	}
	return g
}

func BenchmarkAddNode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	g := New()
	for i := 0; i < b.N; i++ {
		g.AddNode(Math{Fun: MathSin})
	}
}

func BenchmarkAddEdge(b *testing.B) {
	g := New()
	from := g.AddNode(Input{Binding: 0, Type: Float{}})
	to := g.AddNode(Construct{Type: Vec{Size: 4}})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(from, to, uint32(i))
	}
}

func BenchmarkHasCycleChain(b *testing.B) {
	g := buildChainGraph(1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if g.HasCycle() {
			b.Fatal("chain graph must be acyclic")
		}
	}
}

func BenchmarkHasCycleWide(b *testing.B) {
	g := buildWideGraph(64, 16)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if g.HasCycle() {
			b.Fatal("layered graph must be acyclic")
		}
	}
}

func BenchmarkArguments(b *testing.B) {
	g := New()
	mix := g.AddNode(Math{Fun: MathMix})
	for slot := uint32(0); slot < 3; slot++ {
		src := g.AddNode(Constant{Value: FloatValue{Value: float64(slot)}})
		_ = g.AddEdge(src, mix, slot)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Arguments(mix); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalJSON(b *testing.B) {
	g := buildWideGraph(32, 8)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalJSON(b *testing.B) {
	data, err := json.Marshal(buildWideGraph(32, 8))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := New()
		if err := json.Unmarshal(data, g); err != nil {
			b.Fatal(err)
		}
	}
}
