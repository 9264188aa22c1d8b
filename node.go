package shadergraph

// Node is one vertex of the shader dataflow graph: an I/O declaration, a
// literal constant, or a pure operator.
//
// Node is a closed sum type. Arity reports how many incoming edges a
// well-formed vertex of that variant expects; it is a contract between
// builder, validator and code generator, not something the graph enforces
// at mutation time.
type Node interface {
	node()

	// Arity returns the number of operands the variant consumes.
	Arity() int
}

// Input declares a per-vertex shader input at an attribute location.
type Input struct {
	Binding uint32
	Type    TypeName
}

func (Input) node() {}

// Arity returns 0; inputs are graph sources.
func (Input) Arity() int { return 0 }

// Uniform declares a shader uniform at a binding index.
type Uniform struct {
	Binding uint32
	Type    TypeName
}

func (Uniform) node() {}

// Arity returns 0; uniforms are graph sources.
func (Uniform) Arity() int { return 0 }

// Output declares a shader output at a location. An Output with no
// outgoing edges is a sink of the graph; one with outgoing edges is being
// reused as an intermediate value, which is legal but unusual.
type Output struct {
	Binding uint32
	Type    TypeName
}

func (Output) node() {}

// Arity returns 1; the single operand is the value written to the output.
func (Output) Arity() int { return 1 }

// Constant is a literal value.
type Constant struct {
	Value TypedValue
}

func (Constant) node() {}

// Arity returns 0; constants are graph sources.
func (Constant) Arity() int { return 0 }

// Construct assembles a composite value of the target type from its
// components, like vec3(x, y, z).
type Construct struct {
	Type TypeName
}

func (Construct) node() {}

// Arity returns the component count of the target type.
func (c Construct) Arity() int {
	if c.Type == nil {
		return 0
	}
	return int(c.Type.Components())
}

// Extract selects a single component of a composite value by index.
type Extract struct {
	Index uint32
}

func (Extract) node() {}

// Arity returns 1.
func (Extract) Arity() int { return 1 }

// Binary applies an arithmetic operator to two operands, left at slot 0
// and right at slot 1.
type Binary struct {
	Op BinaryOperator
}

func (Binary) node() {}

// Arity returns 2.
func (Binary) Arity() int { return 2 }

// BinaryOperator represents binary arithmetic operations.
type BinaryOperator uint8

const (
	BinaryAdd      BinaryOperator = iota // Addition
	BinarySubtract                       // Subtraction
	BinaryMultiply                       // Multiplication
	BinaryDivide                         // Division
	BinaryModulo                         // Modulo (remainder)
)

// String returns the operator's symbol.
func (op BinaryOperator) String() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySubtract:
		return "-"
	case BinaryMultiply:
		return "*"
	case BinaryDivide:
		return "/"
	case BinaryModulo:
		return "%"
	default:
		return "?"
	}
}

// Math applies a built-in mathematical function. Operand order follows
// argument slots: for MathMix, slot 0 is a, slot 1 is b, slot 2 is t.
type Math struct {
	Fun MathFunction
}

func (Math) node() {}

// Arity returns the function's argument count.
func (m Math) Arity() int { return m.Fun.Arity() }

// MathFunction represents built-in mathematical functions.
type MathFunction uint8

const (
	// Unary functions
	MathNormalize MathFunction = iota // Normalize vector
	MathFloor                         // Round down to integer
	MathCeil                          // Round up to integer
	MathRound                         // Round to nearest integer
	MathSin                           // Sine
	MathCos                           // Cosine
	MathTan                           // Tangent
	MathLength                        // Vector length

	// Binary functions
	MathDot      // Dot product
	MathCross    // Cross product
	MathPow      // Power (x^y)
	MathMin      // Minimum
	MathMax      // Maximum
	MathDistance // Distance between points

	// Ternary functions
	MathClamp   // Clamp to range
	MathMix     // Linear interpolation
	MathReflect // Reflect vector
	MathRefract // Refract vector
)

// mathArity maps each function to its argument count.
var mathArity = [...]int{
	MathNormalize: 1,
	MathFloor:     1,
	MathCeil:      1,
	MathRound:     1,
	MathSin:       1,
	MathCos:       1,
	MathTan:       1,
	MathLength:    1,

	MathDot:      2,
	MathCross:    2,
	MathPow:      2,
	MathMin:      2,
	MathMax:      2,
	MathDistance: 2,

	MathClamp:   3,
	MathMix:     3,
	MathReflect: 3,
	MathRefract: 3,
}

// Arity returns the function's argument count.
func (f MathFunction) Arity() int {
	if int(f) >= len(mathArity) {
		return 0
	}
	return mathArity[f]
}

// String returns the function name as it appears in shading languages.
func (f MathFunction) String() string {
	switch f {
	case MathNormalize:
		return "normalize"
	case MathFloor:
		return "floor"
	case MathCeil:
		return "ceil"
	case MathRound:
		return "round"
	case MathSin:
		return "sin"
	case MathCos:
		return "cos"
	case MathTan:
		return "tan"
	case MathLength:
		return "length"
	case MathDot:
		return "dot"
	case MathCross:
		return "cross"
	case MathPow:
		return "pow"
	case MathMin:
		return "min"
	case MathMax:
		return "max"
	case MathDistance:
		return "distance"
	case MathClamp:
		return "clamp"
	case MathMix:
		return "mix"
	case MathReflect:
		return "reflect"
	case MathRefract:
		return "refract"
	default:
		return "unknown"
	}
}

// Sample reads a texture through a sampler. Slot 0 is the sampler, slot 1
// the texture coordinate.
type Sample struct{}

func (Sample) node() {}

// Arity returns 2.
func (Sample) Arity() int { return 2 }
