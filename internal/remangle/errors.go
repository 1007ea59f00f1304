package remangle

import (
	"errors"
	"fmt"

	"github.com/skdltmxn/swiftmangle/node"
)

// Sentinel errors, one per failure class. Every *Error unwraps to one of them.
var (
	ErrTooComplex                     = errors.New("remangle: tree too complex")
	ErrBadNodeKind                    = errors.New("remangle: bad node kind")
	ErrMultipleChildNodes             = errors.New("remangle: expected exactly one child")
	ErrBadNominalTypeKind             = errors.New("remangle: bad nominal type kind")
	ErrUnsupportedNodeKind            = errors.New("remangle: unsupported node kind")
	ErrInvalidImplParameterConvention = errors.New("remangle: invalid impl parameter convention")
	ErrInvalidGenericSignature        = errors.New("remangle: invalid generic signature")
	ErrInvalidDependentMemberType     = errors.New("remangle: invalid dependent member type")
	ErrMissingChildNode               = errors.New("remangle: missing child node")
	ErrInvalidNodeStructure           = errors.New("remangle: invalid node structure")
	ErrMissingSymbolicResolver        = errors.New("remangle: symbolic reference without resolver")
	ErrUnexpectedBuiltinType          = errors.New("remangle: unexpected builtin type")
	ErrUnexpectedBuiltinVectorType    = errors.New("remangle: unexpected builtin vector type")
	ErrInvalidCallingConvention       = errors.New("remangle: invalid calling convention")
	ErrInvalidDifferentiability       = errors.New("remangle: invalid differentiability")
)

// ErrorKind classifies an encoding failure.
type ErrorKind uint8

const (
	TooComplex ErrorKind = iota
	BadNodeKind
	MultipleChildNodes
	BadNominalTypeKind
	UnsupportedNodeKind
	InvalidImplParameterConvention
	InvalidGenericSignature
	InvalidDependentMemberType
	MissingChildNode
	InvalidNodeStructure
	MissingSymbolicResolver
	UnexpectedBuiltinType
	UnexpectedBuiltinVectorType
	InvalidCallingConvention
	InvalidDifferentiability
)

var sentinels = [...]error{
	TooComplex:                     ErrTooComplex,
	BadNodeKind:                    ErrBadNodeKind,
	MultipleChildNodes:             ErrMultipleChildNodes,
	BadNominalTypeKind:             ErrBadNominalTypeKind,
	UnsupportedNodeKind:            ErrUnsupportedNodeKind,
	InvalidImplParameterConvention: ErrInvalidImplParameterConvention,
	InvalidGenericSignature:        ErrInvalidGenericSignature,
	InvalidDependentMemberType:     ErrInvalidDependentMemberType,
	MissingChildNode:               ErrMissingChildNode,
	InvalidNodeStructure:           ErrInvalidNodeStructure,
	MissingSymbolicResolver:        ErrMissingSymbolicResolver,
	UnexpectedBuiltinType:          ErrUnexpectedBuiltinType,
	UnexpectedBuiltinVectorType:    ErrUnexpectedBuiltinVectorType,
	InvalidCallingConvention:       ErrInvalidCallingConvention,
	InvalidDifferentiability:       ErrInvalidDifferentiability,
}

func (k ErrorKind) sentinel() error {
	if int(k) < len(sentinels) {
		return sentinels[k]
	}
	return ErrInvalidNodeStructure
}

// Error is a structural encoding failure. Node is the offending node and
// Index the child slot for MissingChildNode.
type Error struct {
	Kind    ErrorKind
	Node    *node.Node
	Index   int
	Message string
}

func (e *Error) Error() string {
	s := e.Kind.sentinel().Error()
	if e.Node != nil {
		s += fmt.Sprintf(" (%v)", e.Node.Kind())
	}
	if e.Kind == MissingChildNode {
		s += fmt.Sprintf(" at %d", e.Index)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

func newError(kind ErrorKind, n *node.Node) error {
	return &Error{Kind: kind, Node: n}
}

func invalid(n *node.Node, format string, args ...any) error {
	return &Error{Kind: InvalidNodeStructure, Node: n, Message: fmt.Sprintf(format, args...)}
}

func missingChild(n *node.Node, i int) error {
	return &Error{Kind: MissingChildNode, Node: n, Index: i}
}
