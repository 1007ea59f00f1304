package demangle

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/skdltmxn/swiftmangle/internal/stream"
	"github.com/skdltmxn/swiftmangle/node"
)

type symbolCase struct {
	Symbol string      `yaml:"symbol"`
	Type   bool        `yaml:"type"`
	Tree   *node.Value `yaml:"tree"`
}

func TestSymbols(t *testing.T) {
	data, err := os.ReadFile("testdata/symbols.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []symbolCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatal(err)
	}
	for _, tc := range cases {
		t.Run(tc.Symbol, func(t *testing.T) {
			got, err := Auto(tc.Symbol, tc.Type, Options{})
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tc.Tree, got.ToValue()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		kind   stream.ErrorKind
		pos    int
	}{
		{"no prefix", "not_a_valid_symbol", stream.MatchFailed, 0},
		{"short identifier", "$s3Fo", stream.EndedPrematurely, 3},
		{"symbolic reference without resolver", "$s\x01", stream.RequiredNonOptional, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Auto(tt.symbol, false, Options{})
			if err == nil {
				t.Fatalf("decode succeeded:\n%v", n)
			}
			var e *stream.Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not a *stream.Error", err)
			}
			if e.Kind != tt.kind || e.Pos != tt.pos {
				t.Errorf("error = %v (kind %d at %d), want kind %d at %d", err, e.Kind, e.Pos, tt.kind, tt.pos)
			}
		})
	}
}

func TestSymbolicReference(t *testing.T) {
	foo := node.NewType(node.KindStructure,
		node.NewText(node.KindModule, "Main"),
		node.NewText(node.KindIdentifier, "Foo"))
	var calls []int
	resolve := func(kind node.SymbolicReferenceKind, dir node.Directness, index int) *node.Node {
		if kind != node.SymRefContext || dir != node.Direct {
			return nil
		}
		calls = append(calls, index)
		return foo
	}
	got, err := Type("\x01Sg", Options{Resolver: resolve})
	if err != nil {
		t.Fatal(err)
	}
	want := node.New(node.KindType, node.New(node.KindBoundGenericEnum,
		node.NewStdlibType(node.KindEnum, "Optional"),
		node.New(node.KindTypeList, foo)))
	if diff := cmp.Diff(want.ToValue(), got.ToValue()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, calls); diff != "" {
		t.Errorf("resolver calls (-want +got):\n%s", diff)
	}

	if _, err := Type("\x01Sg", Options{Resolver: func(node.SymbolicReferenceKind, node.Directness, int) *node.Node { return nil }}); !errors.Is(err, stream.ErrRequiredNonOpt) {
		t.Errorf("nil resolution error = %v", err)
	}
}

func TestObjCTypeName(t *testing.T) {
	got, err := Auto("_TtSi", false, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !got.FirstChild().Is(node.KindTypeMangling) {
		t.Fatalf("unexpected tree:\n%v", got)
	}
	id := got.Find(func(n *node.Node) bool { return n.Is(node.KindIdentifier) })
	if id.TextOrEmpty() != "Int" {
		t.Errorf("unexpected tree:\n%v", got)
	}
}

func TestInterner(t *testing.T) {
	cache := node.NewCache()
	a, err := Symbol("$sSi", Options{Interner: cache})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Symbol("_$sSi", Options{Interner: cache})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("equal symbols decoded to distinct instances")
	}
}

func TestPrefixLength(t *testing.T) {
	tests := map[string]int{
		"$sSi":             2,
		"_$sSi":            3,
		"$eSi":             2,
		"_T0Si":            3,
		"@__swiftmacro_1a": 14,
		"_TtSi":            0,
		"$":                0,
	}
	for in, want := range tests {
		if got := PrefixLength(in); got != want {
			t.Errorf("PrefixLength(%q) = %d, want %d", in, got, want)
		}
	}
}

// decodeWithin decodes symbol on another goroutine and fails the test if
// the decoder neither returns nor panics before the deadline.
func decodeWithin(t *testing.T, symbol string, d time.Duration) (*node.Node, error) {
	t.Helper()
	type result struct {
		n     *node.Node
		err   error
		panic any
	}
	done := make(chan result, 1)
	go func() {
		var r result
		defer func() {
			r.panic = recover()
			done <- r
		}()
		r.n, r.err = Auto(symbol, false, Options{})
	}()
	select {
	case r := <-done:
		if r.panic != nil {
			t.Fatalf("decode %q panicked: %v", symbol, r.panic)
		}
		return r.n, r.err
	case <-time.After(d):
		t.Fatalf("decode %q did not finish within %v", symbol, d)
		return nil, nil
	}
}

func TestMalformedInputFails(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
	}{
		{"repeat count without a number", "_$s7SwiftUI17_Rotation3DEffectV14animatableDataAA14AnimatablePairVySdAFy12CoreGraphics7CGFloatVAFyAiFyAiFyA$FyA2IGAJGGGGGvpMV"},
		{"substitution ends after A", "$s4main3FooVA"},
		{"repeat count too large", "$s4main3FooVA99999a"},
		{"identifier length beyond int", "$s4main3FooV9223372036854775807_abc"},
		{"identifier length beyond uint64", "$s4main3FooV99999999999999999999999abc"},
		{"generic parameter index overflow", "$s4main3FooVqd18446744073709551615_18446744073709551615_D"},
		{"legacy identifier length overflow", "_TF3foo9223372036854775807barFT_T_"},
		{"legacy index overflow", "_TFC3foo3bar3basfT3zimCS18446744073709551615_3zim_T_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := decodeWithin(t, tt.symbol, 5*time.Second)
			if err == nil {
				t.Fatalf("decode succeeded:\n%v", n)
			}
			var e *stream.Error
			if !errors.As(err, &e) {
				t.Errorf("error %v is %T, want a *stream.Error", err, err)
			}
		})
	}
}
