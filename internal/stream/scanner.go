// Package stream holds the scalar cursor the demangler reads from and the
// positional errors it reports.
package stream

import (
	"math"
	"strings"
)

// Scanner is a cursor over the Unicode scalars of a mangled name. The
// position is also the count of consumed scalars, which is what errors report.
type Scanner struct {
	data []rune
	pos  int
}

// NewScanner creates a Scanner over s.
func NewScanner(s string) *Scanner {
	return &Scanner{data: []rune(s)}
}

// NewScannerRunes creates a Scanner over an existing scalar slice.
func NewScannerRunes(r []rune) *Scanner {
	return &Scanner{data: r}
}

// Pos returns the number of consumed scalars.
func (s *Scanner) Pos() int { return s.pos }

// Len returns the total number of scalars.
func (s *Scanner) Len() int { return len(s.data) }

// Reset rewinds to the start.
func (s *Scanner) Reset() { s.pos = 0 }

// AtEnd reports whether every scalar has been consumed.
func (s *Scanner) AtEnd() bool { return s.pos >= len(s.data) }

// Input returns the whole input.
func (s *Scanner) Input() string { return string(s.data) }

// Unexpected builds the catch-all error at the current position.
func (s *Scanner) Unexpected() *Error {
	return &Error{Kind: Unexpected, Pos: s.pos}
}

// Fail builds an error of the given kind at the current position.
func (s *Scanner) Fail(kind ErrorKind) *Error {
	return &Error{Kind: kind, Pos: s.pos}
}

// Match consumes lit or fails without moving.
func (s *Scanner) Match(lit string) error {
	if !s.Conditional(lit) {
		return &Error{Kind: MatchFailed, Pos: s.pos, Wanted: lit}
	}
	return nil
}

// MatchRune consumes r or fails without moving.
func (s *Scanner) MatchRune(r rune) error {
	if s.pos >= len(s.data) || s.data[s.pos] != r {
		return &Error{Kind: MatchFailed, Pos: s.pos, Wanted: string(r)}
	}
	s.pos++
	return nil
}

// MatchFunc consumes one scalar satisfying test or fails.
func (s *Scanner) MatchFunc(test func(rune) bool) error {
	_, err := s.ReadFunc(test)
	return err
}

// ReadFunc consumes and returns one scalar satisfying test.
func (s *Scanner) ReadFunc(test func(rune) bool) (rune, error) {
	if s.pos >= len(s.data) || !test(s.data[s.pos]) {
		return 0, &Error{Kind: MatchFailed, Pos: s.pos, Wanted: "(read test function to succeed)"}
	}
	r := s.data[s.pos]
	s.pos++
	return r, nil
}

// Conditional consumes lit if it is next and reports whether it did.
func (s *Scanner) Conditional(lit string) bool {
	i := s.pos
	for _, r := range lit {
		if i >= len(s.data) || s.data[i] != r {
			return false
		}
		i++
	}
	s.pos = i
	return true
}

// ConditionalRune consumes r if it is next.
func (s *Scanner) ConditionalRune(r rune) bool {
	if s.pos < len(s.data) && s.data[s.pos] == r {
		s.pos++
		return true
	}
	return false
}

// ConditionalFunc consumes the next scalar if it satisfies test.
func (s *Scanner) ConditionalFunc(test func(rune) bool) (rune, bool) {
	if s.pos < len(s.data) && test(s.data[s.pos]) {
		r := s.data[s.pos]
		s.pos++
		return r, true
	}
	return 0, false
}

// ReadWhile consumes the longest run of scalars satisfying test.
func (s *Scanner) ReadWhile(test func(rune) bool) string {
	start := s.pos
	for s.pos < len(s.data) && test(s.data[s.pos]) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

// SkipWhile is ReadWhile without the result.
func (s *Scanner) SkipWhile(test func(rune) bool) {
	for s.pos < len(s.data) && test(s.data[s.pos]) {
		s.pos++
	}
}

// ReadUntil consumes scalars up to, but not including, r.
func (s *Scanner) ReadUntil(r rune) (string, error) {
	start := s.pos
	i := start
	for i < len(s.data) && s.data[i] != r {
		i++
	}
	if i >= len(s.data) {
		return "", &Error{Kind: SearchFailed, Pos: s.pos, Wanted: string(r)}
	}
	s.pos = i
	return string(s.data[start:i]), nil
}

// ReadUntilString consumes scalars up to, but not including, the next
// occurrence of lit.
func (s *Scanner) ReadUntilString(lit string) (string, error) {
	rest := string(s.data[s.pos:])
	idx := strings.Index(rest, lit)
	if lit == "" || idx < 0 {
		return "", &Error{Kind: SearchFailed, Pos: s.pos, Wanted: lit}
	}
	out := rest[:idx]
	s.pos += len([]rune(out))
	return out, nil
}

// Skip advances by n scalars.
func (s *Scanner) Skip(n int) error {
	if n < 0 || n > len(s.data)-s.pos {
		return &Error{Kind: EndedPrematurely, Pos: s.pos, Count: n}
	}
	s.pos += n
	return nil
}

// Backtrack moves back by n consumed scalars. It never moves past the start.
func (s *Scanner) Backtrack(n int) error {
	if n < 0 || n > s.pos {
		return &Error{Kind: EndedPrematurely, Pos: s.pos, Count: -n}
	}
	s.pos -= n
	return nil
}

// Remainder consumes and returns everything left.
func (s *Scanner) Remainder() string {
	out := string(s.data[s.pos:])
	s.pos = len(s.data)
	return out
}

// Peek returns the scalar skip positions ahead without consuming, or 0
// outside the input. A negative skip looks back at consumed scalars.
func (s *Scanner) Peek(skip int) rune {
	if skip < -s.pos || skip >= len(s.data)-s.pos {
		return 0
	}
	return s.data[s.pos+skip]
}

// RequirePeek returns the next scalar or fails at the end of input.
func (s *Scanner) RequirePeek() (rune, error) {
	if s.pos >= len(s.data) {
		return 0, &Error{Kind: EndedPrematurely, Pos: s.pos, Count: 1}
	}
	return s.data[s.pos], nil
}

// ReadScalar consumes one scalar.
func (s *Scanner) ReadScalar() (rune, error) {
	if s.pos >= len(s.data) {
		return 0, &Error{Kind: EndedPrematurely, Pos: s.pos, Count: 1}
	}
	r := s.data[s.pos]
	s.pos++
	return r, nil
}

// ReadN consumes exactly n scalars.
func (s *Scanner) ReadN(n int) (string, error) {
	if n < 0 || n > len(s.data)-s.pos {
		return "", &Error{Kind: EndedPrematurely, Pos: s.pos, Count: n}
	}
	out := string(s.data[s.pos : s.pos+n])
	s.pos += n
	return out, nil
}

// ConditionalInt reads a run of decimal digits. A run that does not fit
// in a uint64 is rejected and nothing is consumed.
func (s *Scanner) ConditionalInt() (uint64, bool) {
	i := s.pos
	var v uint64
	for i < len(s.data) && IsDigit(s.data[i]) {
		d := uint64(s.data[i] - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
		i++
	}
	if i == s.pos {
		return 0, false
	}
	s.pos = i
	return v, true
}

// ReadInt is ConditionalInt that fails when no digit is present.
func (s *Scanner) ReadInt() (uint64, error) {
	v, ok := s.ConditionalInt()
	if !ok {
		return 0, &Error{Kind: ExpectedInt, Pos: s.pos}
	}
	return v, nil
}

// IsDigit reports an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsLower reports an ASCII lowercase letter.
func IsLower(r rune) bool { return r >= 'a' && r <= 'z' }

// IsUpper reports an ASCII uppercase letter.
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsLetter reports an ASCII letter.
func IsLetter(r rune) bool { return IsLower(r) || IsUpper(r) }
