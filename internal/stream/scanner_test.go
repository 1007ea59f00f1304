package stream

import (
	"errors"
	"math"
	"testing"
)

func TestScannerCursor(t *testing.T) {
	s := NewScanner("4Mäin_x")
	n, err := s.ReadInt()
	if err != nil || n != 4 {
		t.Fatalf("ReadInt = %d, %v", n, err)
	}
	word, err := s.ReadN(4)
	if err != nil || word != "Mäin" {
		t.Fatalf("ReadN = %q, %v", word, err)
	}
	if s.Pos() != 5 {
		t.Errorf("Pos = %d, want 5 scalars", s.Pos())
	}
	if !s.ConditionalRune('_') || s.Peek(0) != 'x' || s.Peek(1) != 0 {
		t.Error("cursor out of place after '_'")
	}
	if err := s.Backtrack(2); err != nil || s.Peek(0) != 'n' {
		t.Errorf("Backtrack: %v, next %q", err, s.Peek(0))
	}
	if rest := s.Remainder(); rest != "n_x" || !s.AtEnd() {
		t.Errorf("Remainder = %q", rest)
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Scanner) error
		want error
		pos  int
	}{
		{"match", func(s *Scanner) error { return s.Match("xyz") }, ErrMatchFailed, 0},
		{"read past end", func(s *Scanner) error { _, err := s.ReadN(10); return err }, ErrUnexpectedEnd, 0},
		{"backtrack past start", func(s *Scanner) error { return s.Backtrack(1) }, ErrUnexpectedEnd, 0},
		{"integer", func(s *Scanner) error { _, err := s.ReadInt(); return err }, ErrExpectedInt, 0},
		{"search", func(s *Scanner) error { _, err := s.ReadUntil('#'); return err }, ErrSearchFailed, 0},
		{"after progress", func(s *Scanner) error {
			s.Skip(2)
			return s.MatchRune('q')
		}, ErrMatchFailed, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(NewScanner("abc"))
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var e *Error
			if !errors.As(err, &e) || e.Pos != tt.pos {
				t.Errorf("error %v reported at wrong position, want %d", err, tt.pos)
			}
		})
	}
}

func TestConditional(t *testing.T) {
	s := NewScanner("_$sSi")
	if s.Conditional("$s") {
		t.Fatal("matched out of place")
	}
	if !s.Conditional("_$s") || s.Pos() != 3 {
		t.Fatalf("Conditional did not consume the prefix, pos %d", s.Pos())
	}
	if r, ok := s.ConditionalFunc(IsUpper); !ok || r != 'S' {
		t.Errorf("ConditionalFunc = %q, %v", r, ok)
	}
	if got := s.ReadWhile(IsLower); got != "i" {
		t.Errorf("ReadWhile = %q", got)
	}
}

func TestScannerBounds(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Scanner) error
		want error
	}{
		{"read huge count", func(s *Scanner) error { _, err := s.ReadN(math.MaxInt64); return err }, ErrUnexpectedEnd},
		{"read negative count", func(s *Scanner) error { _, err := s.ReadN(-1); return err }, ErrUnexpectedEnd},
		{"skip huge count", func(s *Scanner) error { return s.Skip(math.MaxInt64) }, ErrUnexpectedEnd},
		{"skip negative count", func(s *Scanner) error { return s.Skip(-1) }, ErrUnexpectedEnd},
		{"backtrack negative count", func(s *Scanner) error { return s.Backtrack(-5) }, ErrUnexpectedEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("1abc")
			s.Skip(1)
			if err := tt.run(s); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if s.Pos() != 1 {
				t.Errorf("cursor moved to %d on failure", s.Pos())
			}
		})
	}
}

func TestPeekOutsideInput(t *testing.T) {
	s := NewScanner("ab")
	s.Skip(1)
	if got := s.Peek(-1); got != 'a' {
		t.Errorf("Peek(-1) = %q, want 'a'", got)
	}
	for _, skip := range []int{-2, 1, math.MaxInt64, math.MinInt64} {
		if got := s.Peek(skip); got != 0 {
			t.Errorf("Peek(%d) = %q, want 0", skip, got)
		}
	}
}

func TestConditionalIntOverflow(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"18446744073709551615_", math.MaxUint64, true},
		{"18446744073709551616_", 0, false},
		{"99999999999999999999999_", 0, false},
		{"0x", 0, true},
	}
	for _, tt := range tests {
		s := NewScanner(tt.in)
		got, ok := s.ConditionalInt()
		if got != tt.want || ok != tt.ok {
			t.Errorf("ConditionalInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if !ok && s.Pos() != 0 {
			t.Errorf("ConditionalInt(%q) consumed input on failure", tt.in)
		}
	}
	if _, err := NewScanner("18446744073709551616").ReadInt(); !errors.Is(err, ErrExpectedInt) {
		t.Errorf("ReadInt overflow error = %v", err)
	}
}

func TestReadScalar(t *testing.T) {
	s := NewScanner("ß")
	r, err := s.ReadScalar()
	if err != nil || r != 'ß' {
		t.Fatalf("ReadScalar = %q, %v", r, err)
	}
	if _, err := s.ReadScalar(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadScalar at end = %v", err)
	}
}
