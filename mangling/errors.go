package mangling

import (
	"github.com/skdltmxn/swiftmangle/internal/remangle"
	"github.com/skdltmxn/swiftmangle/internal/stream"
)

// DecodeError is a positional decoding failure. Pos counts the scalars
// consumed before the failure was detected.
type DecodeError = stream.Error

// EncodeError is a structural encoding failure. Node is the offending node.
type EncodeError = remangle.Error

// Decoding sentinels. Every *DecodeError unwraps to one of them.
var (
	ErrMatchFailed     = stream.ErrMatchFailed
	ErrUnexpectedEnd   = stream.ErrUnexpectedEnd
	ErrExpectedInt     = stream.ErrExpectedInt
	ErrSearchFailed    = stream.ErrSearchFailed
	ErrUnexpected      = stream.ErrUnexpected
	ErrRequiredNonOpt  = stream.ErrRequiredNonOpt
	ErrInvalidPunycode = stream.ErrInvalidPunycode
	ErrTooDeep         = stream.ErrTooDeep
)

// Encoding sentinels. Every *EncodeError unwraps to one of them.
var (
	ErrTooComplex                 = remangle.ErrTooComplex
	ErrUnsupportedNodeKind        = remangle.ErrUnsupportedNodeKind
	ErrMissingChildNode           = remangle.ErrMissingChildNode
	ErrInvalidNodeStructure       = remangle.ErrInvalidNodeStructure
	ErrMultipleChildNodes         = remangle.ErrMultipleChildNodes
	ErrMissingSymbolicResolver    = remangle.ErrMissingSymbolicResolver
	ErrUnexpectedBuiltinType      = remangle.ErrUnexpectedBuiltinType
	ErrInvalidCallingConvention   = remangle.ErrInvalidCallingConvention
	ErrInvalidDifferentiability   = remangle.ErrInvalidDifferentiability
	ErrInvalidGenericSignature    = remangle.ErrInvalidGenericSignature
	ErrInvalidDependentMemberType = remangle.ErrInvalidDependentMemberType
	ErrBadNodeKind                = remangle.ErrBadNodeKind
	ErrBadNominalTypeKind         = remangle.ErrBadNominalTypeKind
	ErrUnexpectedBuiltinVector    = remangle.ErrUnexpectedBuiltinVectorType
	ErrInvalidImplConvention      = remangle.ErrInvalidImplParameterConvention
)
