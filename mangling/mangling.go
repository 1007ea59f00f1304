// Package mangling decodes mangled Swift symbols into node trees and
// encodes node trees back into their canonical mangling.
//
// Decoding accepts the current grammar ("$s", "_$s", "$S", "_$S", "$e",
// "_$e", "_T0" and the "@__swiftmacro_" prefix), the pre-Swift-4 "_T"
// grammar and "_Tt" Objective-C runtime type names. Encoding always
// produces the maximally compressed "_$s" form, so a symbol that is
// already canonical survives a round trip unchanged.
//
// Each call owns its decoder or encoder state. Calls may run concurrently
// unless they share a cache that is not safe for concurrent use; see
// node.Cache and node.LockedCache.
package mangling

import (
	"github.com/skdltmxn/swiftmangle/internal/demangle"
	"github.com/skdltmxn/swiftmangle/internal/remangle"
	"github.com/skdltmxn/swiftmangle/node"
)

// MaxEncodeDepth is the deepest tree Encode accepts.
const MaxEncodeDepth = remangle.MaxDepth

// Decode decodes s as a type mangling when asType is set and as a symbol
// otherwise.
func Decode(s string, asType bool, options ...Option) (*node.Node, error) {
	o := newOpts(options)
	return demangle.Auto(s, asType, o.decodeOptions())
}

// DecodeSymbol decodes a complete symbol. Inputs without a current
// prefix are read with the pre-Swift-4 grammar.
func DecodeSymbol(s string, options ...Option) (*node.Node, error) {
	return Decode(s, false, options...)
}

// DecodeType decodes a bare type mangling such as "Si" or "SaySiG".
func DecodeType(s string, options ...Option) (*node.Node, error) {
	return Decode(s, true, options...)
}

// Encode returns the canonical mangling of the tree rooted at n. A Global
// root yields a "_$s" symbol; any other root yields the mangling of that
// subtree alone.
func Encode(n *node.Node, options ...Option) (string, error) {
	o := newOpts(options)
	return remangle.Encode(n, o.encodeOptions())
}

// CanEncode reports whether Encode would succeed for n.
func CanEncode(n *node.Node, options ...Option) bool {
	_, err := Encode(n, options...)
	return err == nil
}

// EncodeSubtree encodes the first node, in depth-first pre-order, for
// which match returns true. It returns "" and no error when nothing
// matches.
func EncodeSubtree(root *node.Node, match func(*node.Node) bool, options ...Option) (string, error) {
	if root == nil {
		return "", nil
	}
	n := root.Find(match)
	if n == nil {
		return "", nil
	}
	return Encode(n, options...)
}

// RoundTrip decodes the symbol s and encodes the result.
func RoundTrip(s string, options ...Option) (string, error) {
	n, err := DecodeSymbol(s, options...)
	if err != nil {
		return "", err
	}
	return Encode(n, options...)
}

// CanRoundTrip reports whether s is already in canonical form, that is
// whether RoundTrip(s) returns s itself.
func CanRoundTrip(s string, options ...Option) bool {
	out, err := RoundTrip(s, options...)
	return err == nil && out == s
}

// PrefixLength returns the length of the mangling prefix of s: 2 or 3 for
// the current grammar, 14 for "@__swiftmacro_", and 0 when s carries no
// known prefix.
func PrefixLength(s string) int {
	return demangle.PrefixLength(s)
}

// IsMangled reports whether s starts with a current-grammar prefix or the
// pre-Swift-4 "_T" prefix.
func IsMangled(s string) bool {
	return PrefixLength(s) != 0 || (len(s) > 2 && s[:2] == "_T")
}
