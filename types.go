package shadergraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Dim represents texture dimensionality for sampler types.
type Dim uint8

const (
	Dim1D Dim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpassData
)

// String returns a human-readable dimension name.
func (d Dim) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	case DimRect:
		return "Rect"
	case DimBuffer:
		return "Buffer"
	case DimSubpassData:
		return "SubpassData"
	default:
		return "Unknown"
	}
}

// TypeName describes the type of a value flowing through the graph.
//
// It is a closed sum type: Bool, Int, Float, Vec, Mat and SamplerType are
// the only implementations. All variants are comparable, so structural
// equality is plain ==. TypeName performs no range validation of its own;
// constructing Vec{Size: 0} is a builder error that the validator reports
// but the type accepts.
type TypeName interface {
	typeName()

	// Components returns the number of scalar or column components a value
	// of this type is constructed from: 1 for scalars, Size for vectors,
	// the column count for matrices, 1 for samplers.
	Components() uint32
}

// Bool is the boolean type.
type Bool struct{}

func (Bool) typeName() {}

// Components returns 1.
func (Bool) Components() uint32 { return 1 }

// Int is an integer type, signed or unsigned.
type Int struct {
	Signed bool
}

func (Int) typeName() {}

// Components returns 1.
func (Int) Components() uint32 { return 1 }

// Float is a floating-point type, single or double precision.
type Float struct {
	Double bool
}

func (Float) typeName() {}

// Components returns 1.
func (Float) Components() uint32 { return 1 }

// Vec is a floating-point vector type with Size components.
type Vec struct {
	Size uint32
}

func (Vec) typeName() {}

// Components returns the vector size.
func (v Vec) Components() uint32 { return v.Size }

// Mat is a square matrix type of Size columns of element type Elem.
type Mat struct {
	Size uint32
	Elem TypeName
}

func (Mat) typeName() {}

// Components returns the column count.
func (m Mat) Components() uint32 { return m.Size }

// SamplerType is a texture sampler yielding values of the Sampled type
// from a texture of dimensionality Dim.
type SamplerType struct {
	Sampled TypeName
	Dim     Dim
}

func (SamplerType) typeName() {}

// Components returns 1.
func (SamplerType) Components() uint32 { return 1 }

// TypeString returns a compact printable form, e.g. "vec3" or "mat4<f32>".
func TypeString(t TypeName) string {
	switch t := t.(type) {
	case nil:
		return "<nil>"
	case Bool:
		return "bool"
	case Int:
		if t.Signed {
			return "i32"
		}
		return "u32"
	case Float:
		if t.Double {
			return "f64"
		}
		return "f32"
	case Vec:
		return "vec" + strconv.FormatUint(uint64(t.Size), 10)
	case Mat:
		return "mat" + strconv.FormatUint(uint64(t.Size), 10) + "<" + TypeString(t.Elem) + ">"
	case SamplerType:
		return "sampler" + t.Dim.String() + "<" + TypeString(t.Sampled) + ">"
	default:
		return fmt.Sprintf("<%T>", t)
	}
}

// typeKey builds a unique structural key for a type. Two structurally
// identical types produce the same key, and keys order types by variant
// rank first, then by payload.
func typeKey(t TypeName) string {
	var b []byte
	return string(appendTypeKey(b, t))
}

func appendTypeKey(b []byte, t TypeName) []byte {
	switch t := t.(type) {
	case nil:
		return append(b, "0:nil"...)
	case Bool:
		return append(b, "1:bool"...)
	case Int:
		b = append(b, "2:int:"...)
		return strconv.AppendBool(b, t.Signed)
	case Float:
		b = append(b, "3:float:"...)
		return strconv.AppendBool(b, t.Double)
	case Vec:
		b = append(b, "4:vec:"...)
		return strconv.AppendUint(b, uint64(t.Size), 10)
	case Mat:
		b = append(b, "5:mat:"...)
		b = strconv.AppendUint(b, uint64(t.Size), 10)
		b = append(b, ':')
		return appendTypeKey(b, t.Elem)
	case SamplerType:
		b = append(b, "6:sampler:"...)
		b = strconv.AppendUint(b, uint64(t.Dim), 10)
		b = append(b, ':')
		return appendTypeKey(b, t.Sampled)
	default:
		return append(b, "?:unknown"...)
	}
}

// CompareTypes orders two types structurally. It returns a negative value
// if a sorts before b, zero if they are structurally equal, and a positive
// value otherwise. The order is total and consistent with ==, so TypeName
// values can key ordered containers or drive deterministic overload
// resolution in a code generator.
func CompareTypes(a, b TypeName) int {
	return strings.Compare(typeKey(a), typeKey(b))
}

// TypedValue is a literal constant payload carried by Constant nodes.
//
// Closed sum type: FloatValue, Vec2Value, Vec3Value and Vec4Value are the
// only implementations. All variants are comparable.
type TypedValue interface {
	typedValue()
}

// FloatValue is a scalar literal.
type FloatValue struct {
	Value float64
}

func (FloatValue) typedValue() {}

// Vec2Value is a two-component vector literal.
type Vec2Value struct {
	X, Y float64
}

func (Vec2Value) typedValue() {}

// Vec3Value is a three-component vector literal.
type Vec3Value struct {
	X, Y, Z float64
}

func (Vec3Value) typedValue() {}

// Vec4Value is a four-component vector literal.
type Vec4Value struct {
	X, Y, Z, W float64
}

func (Vec4Value) typedValue() {}
