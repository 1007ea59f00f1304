// Package subst holds the substitution tables and word rules shared by the
// symbol decoder and encoder.
package subst

import "github.com/skdltmxn/swiftmangle/node"

const (
	// MaxNumWords bounds the per-symbol word table.
	MaxNumWords = 26
	// MaxRepeatCount bounds the repeat prefix of a substitution.
	MaxRepeatCount = 2048
)

// Standard is a well-known stdlib declaration reachable through an 'S'
// substitution.
type Standard struct {
	Kind node.Kind
	Name string
}

// Node builds Kind(Module "Swift", Identifier Name) without the Type wrapper.
func (s Standard) Node() *node.Node {
	return node.New(s.Kind,
		node.NewText(node.KindModule, node.StdlibModule),
		node.NewText(node.KindIdentifier, s.Name))
}

var standardTypes = map[rune]Standard{
	'A': {node.KindStructure, "AutoreleasingUnsafeMutablePointer"},
	'a': {node.KindStructure, "Array"},
	'b': {node.KindStructure, "Bool"},
	'D': {node.KindStructure, "Dictionary"},
	'd': {node.KindStructure, "Double"},
	'f': {node.KindStructure, "Float"},
	'h': {node.KindStructure, "Set"},
	'I': {node.KindStructure, "DefaultIndices"},
	'i': {node.KindStructure, "Int"},
	'J': {node.KindStructure, "Character"},
	'N': {node.KindStructure, "ClosedRange"},
	'n': {node.KindStructure, "Range"},
	'O': {node.KindStructure, "ObjectIdentifier"},
	'P': {node.KindStructure, "UnsafePointer"},
	'p': {node.KindStructure, "UnsafeMutablePointer"},
	'R': {node.KindStructure, "UnsafeBufferPointer"},
	'r': {node.KindStructure, "UnsafeMutableBufferPointer"},
	'S': {node.KindStructure, "String"},
	's': {node.KindStructure, "Substring"},
	'u': {node.KindStructure, "UInt"},
	'V': {node.KindStructure, "UnsafeRawPointer"},
	'v': {node.KindStructure, "UnsafeMutableRawPointer"},
	'W': {node.KindStructure, "UnsafeRawBufferPointer"},
	'w': {node.KindStructure, "UnsafeMutableRawBufferPointer"},

	'q': {node.KindEnum, "Optional"},

	'B': {node.KindProtocol, "BinaryFloatingPoint"},
	'E': {node.KindProtocol, "Encodable"},
	'e': {node.KindProtocol, "Decodable"},
	'F': {node.KindProtocol, "FloatingPoint"},
	'G': {node.KindProtocol, "RandomNumberGenerator"},
	'H': {node.KindProtocol, "Hashable"},
	'j': {node.KindProtocol, "Numeric"},
	'K': {node.KindProtocol, "BidirectionalCollection"},
	'k': {node.KindProtocol, "RandomAccessCollection"},
	'L': {node.KindProtocol, "Comparable"},
	'l': {node.KindProtocol, "Collection"},
	'M': {node.KindProtocol, "MutableCollection"},
	'm': {node.KindProtocol, "RangeReplaceableCollection"},
	'Q': {node.KindProtocol, "Equatable"},
	'T': {node.KindProtocol, "Sequence"},
	't': {node.KindProtocol, "IteratorProtocol"},
	'U': {node.KindProtocol, "UnsignedInteger"},
	'X': {node.KindProtocol, "RangeExpression"},
	'x': {node.KindProtocol, "Strideable"},
	'Y': {node.KindProtocol, "RawRepresentable"},
	'y': {node.KindProtocol, "StringProtocol"},
	'Z': {node.KindProtocol, "SignedInteger"},
	'z': {node.KindProtocol, "BinaryInteger"},
}

// Concurrency types live behind the "Sc" prefix.
var concurrencyTypes = map[rune]Standard{
	'A': {node.KindProtocol, "Actor"},
	'C': {node.KindStructure, "CheckedContinuation"},
	'c': {node.KindStructure, "UnsafeContinuation"},
	'E': {node.KindStructure, "CancellationError"},
	'e': {node.KindStructure, "UnownedSerialExecutor"},
	'F': {node.KindProtocol, "Executor"},
	'f': {node.KindProtocol, "SerialExecutor"},
	'G': {node.KindStructure, "TaskGroup"},
	'g': {node.KindStructure, "ThrowingTaskGroup"},
	'h': {node.KindProtocol, "TaskExecutor"},
	'I': {node.KindProtocol, "AsyncIteratorProtocol"},
	'i': {node.KindProtocol, "AsyncSequence"},
	'J': {node.KindStructure, "UnownedJob"},
	'M': {node.KindClass, "MainActor"},
	'P': {node.KindStructure, "TaskPriority"},
	'S': {node.KindStructure, "AsyncStream"},
	's': {node.KindStructure, "AsyncThrowingStream"},
	'T': {node.KindStructure, "Task"},
	't': {node.KindStructure, "UnsafeCurrentTask"},
}

var byName = func() map[string]string {
	m := make(map[string]string, len(standardTypes)+len(concurrencyTypes))
	for r, s := range standardTypes {
		m[s.Name] = string(r)
	}
	for r, s := range concurrencyTypes {
		m[s.Name] = "c" + string(r)
	}
	return m
}()

// Lookup resolves the letter after "S" (or after "Sc" when concurrency is
// set) to its declaration.
func Lookup(letter rune, concurrency bool) (Standard, bool) {
	if concurrency {
		s, ok := concurrencyTypes[letter]
		return s, ok
	}
	s, ok := standardTypes[letter]
	return s, ok
}

// Mangling returns the text that follows "S" for a stdlib declaration
// name, such as "i" for Int or "cT" for Task.
func Mangling(name string, allowConcurrency bool) (string, bool) {
	m, ok := byName[name]
	if !ok || (!allowConcurrency && len(m) > 1) {
		return "", false
	}
	return m, true
}
