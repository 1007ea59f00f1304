package stream

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class. Every *Error unwraps to one of them.
var (
	ErrMatchFailed     = errors.New("demangle: match failed")
	ErrUnexpectedEnd   = errors.New("demangle: ended prematurely")
	ErrExpectedInt     = errors.New("demangle: expected integer")
	ErrSearchFailed    = errors.New("demangle: search failed")
	ErrUnexpected      = errors.New("demangle: unexpected input")
	ErrRequiredNonOpt  = errors.New("demangle: required value missing")
	ErrInvalidPunycode = errors.New("demangle: invalid punycode")
	ErrTooDeep         = errors.New("demangle: nesting too deep")
)

// ErrorKind classifies a decoding failure.
type ErrorKind uint8

const (
	MatchFailed ErrorKind = iota
	EndedPrematurely
	ExpectedInt
	SearchFailed
	Unexpected
	RequiredNonOptional
	PunycodeParse
	TooDeep
)

func (k ErrorKind) sentinel() error {
	switch k {
	case MatchFailed:
		return ErrMatchFailed
	case EndedPrematurely:
		return ErrUnexpectedEnd
	case ExpectedInt:
		return ErrExpectedInt
	case SearchFailed:
		return ErrSearchFailed
	case RequiredNonOptional:
		return ErrRequiredNonOpt
	case PunycodeParse:
		return ErrInvalidPunycode
	case TooDeep:
		return ErrTooDeep
	}
	return ErrUnexpected
}

// Error is a positional decoding failure. Pos is the number of scalars
// consumed when the failure was detected.
type Error struct {
	Kind   ErrorKind
	Pos    int
	Wanted string // MatchFailed, SearchFailed
	Count  int    // EndedPrematurely: scalars requested (negative for a backtrack)
}

func (e *Error) Error() string {
	switch e.Kind {
	case MatchFailed:
		return fmt.Sprintf("%v: wanted %q at %d", e.Kind.sentinel(), e.Wanted, e.Pos)
	case SearchFailed:
		return fmt.Sprintf("%v: wanted %q after %d", e.Kind.sentinel(), e.Wanted, e.Pos)
	case EndedPrematurely:
		return fmt.Sprintf("%v: needed %d at %d", e.Kind.sentinel(), e.Count, e.Pos)
	}
	return fmt.Sprintf("%v at %d", e.Kind.sentinel(), e.Pos)
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }
