package shadergraph

import "fmt"

// ErrorKind categorizes shader graph errors.
type ErrorKind uint8

const (
	// ErrInvalidHandle indicates a node handle not issued by this graph.
	ErrInvalidHandle ErrorKind = iota

	// ErrStructuralCycle indicates the edge relation contains a directed cycle.
	ErrStructuralCycle

	// ErrArityMismatch indicates a node's incoming edges do not match its arity.
	ErrArityMismatch

	// ErrDuplicateArgumentSlot indicates two edges into a node share a slot.
	ErrDuplicateArgumentSlot

	// ErrMalformedAsset indicates a serialized graph that cannot be decoded.
	ErrMalformedAsset
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidHandle:
		return "InvalidHandle"
	case ErrStructuralCycle:
		return "StructuralCycle"
	case ErrArityMismatch:
		return "ArityMismatch"
	case ErrDuplicateArgumentSlot:
		return "DuplicateArgumentSlot"
	case ErrMalformedAsset:
		return "MalformedAsset"
	default:
		return "Unknown"
	}
}

// Error represents a shader graph error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string

	// Node optionally identifies the offending node.
	Node *NodeHandle
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("shadergraph %s at node %d: %s", e.Kind, *e.Node, e.Message)
	}
	return fmt.Sprintf("shadergraph %s: %s", e.Kind, e.Message)
}

// invalidHandle builds an ErrInvalidHandle error for h.
func invalidHandle(h NodeHandle, n int) *Error {
	return &Error{
		Kind:    ErrInvalidHandle,
		Message: fmt.Sprintf("handle %d out of range (graph has %d nodes)", h, n),
		Node:    &h,
	}
}
