package mangling

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/skdltmxn/swiftmangle/node"
)

type vector struct {
	Symbol    string      `yaml:"symbol"`
	Canonical string      `yaml:"canonical"`
	Tree      *node.Value `yaml:"tree"`
}

type vectors struct {
	Symbols []vector `yaml:"symbols"`
	Types   []vector `yaml:"types"`
	Invalid []string `yaml:"invalid"`
}

func loadVectors(t *testing.T) *vectors {
	t.Helper()
	data, err := os.ReadFile("testdata/vectors.yaml")
	if err != nil {
		t.Fatal(err)
	}
	v := &vectors{}
	if err := yaml.Unmarshal(data, v); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}
	return v
}

func checkVector(t *testing.T, tc vector, decode func(string, ...Option) (*node.Node, error)) {
	t.Helper()
	got, err := decode(tc.Symbol)
	if err != nil {
		t.Fatalf("decode %q: %v", tc.Symbol, err)
	}
	if diff := cmp.Diff(tc.Tree, got.ToValue()); diff != "" {
		t.Errorf("decode %q (-want +got):\n%s", tc.Symbol, diff)
	}
	out, err := Encode(got)
	if err != nil {
		t.Fatalf("encode %q: %v", tc.Symbol, err)
	}
	if out != tc.Canonical {
		t.Errorf("encode %q = %q, want %q", tc.Symbol, out, tc.Canonical)
	}
	again, err := decode(out)
	if err != nil {
		t.Fatalf("decode canonical %q: %v", out, err)
	}
	if !again.Equal(got) {
		t.Errorf("round trip of %q changed the tree:\n%s", tc.Symbol, cmp.Diff(got.ToValue(), again.ToValue()))
	}
}

func TestDecodeSymbol(t *testing.T) {
	for _, tc := range loadVectors(t).Symbols {
		t.Run(tc.Symbol, func(t *testing.T) {
			checkVector(t, tc, DecodeSymbol)
		})
	}
}

func TestDecodeType(t *testing.T) {
	for _, tc := range loadVectors(t).Types {
		t.Run(tc.Symbol, func(t *testing.T) {
			checkVector(t, tc, DecodeType)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range loadVectors(t).Invalid {
		t.Run(s, func(t *testing.T) {
			n, err := DecodeSymbol(s)
			if err == nil {
				t.Fatalf("decode %q succeeded:\n%v", s, n)
			}
			if n != nil {
				t.Errorf("decode %q returned a partial tree", s)
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Errorf("decode %q: error %v is not a *DecodeError", s, err)
			}
		})
	}
}

func TestPrefixVariantsAreEquivalent(t *testing.T) {
	a, err := DecodeSymbol("$sSi")
	if err != nil {
		t.Fatal(err)
	}
	b, err := DecodeSymbol("_$sSi")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("trees differ:\n%s", cmp.Diff(a.ToValue(), b.ToValue()))
	}
}

func swiftType(kind node.Kind, name string) *node.Node {
	return node.New(node.KindType, node.New(kind,
		node.NewText(node.KindModule, node.StdlibModule),
		node.NewText(node.KindIdentifier, name)))
}

func TestEncodeHandBuiltArray(t *testing.T) {
	tree := node.New(node.KindType, node.New(node.KindBoundGenericStructure,
		swiftType(node.KindStructure, "Array"),
		node.New(node.KindTypeList, swiftType(node.KindStructure, "Int"))))

	out, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	if out != "SaySiG" {
		t.Errorf("Encode = %q, want %q", out, "SaySiG")
	}
	back, err := DecodeType(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tree.ToValue(), back.ToValue()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestEncodeSymbolicReference(t *testing.T) {
	ref := node.NewIndex(node.KindTypeSymbolicReference, 0)
	tree := node.New(node.KindGlobal, ref)

	_, err := Encode(tree)
	if !errors.Is(err, ErrMissingSymbolicResolver) {
		t.Fatalf("Encode error = %v, want ErrMissingSymbolicResolver", err)
	}
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("error %T is not an *EncodeError", err)
	}
	if ee.Node != ref {
		t.Errorf("error names %v, want the symbolic reference", ee.Node)
	}
	if CanEncode(tree) {
		t.Error("CanEncode = true without a resolver")
	}

	foo := node.New(node.KindStructure,
		node.NewText(node.KindModule, "Main"),
		node.NewText(node.KindIdentifier, "Foo"))
	resolve := func(n *node.Node) (*node.Node, error) { return foo, nil }
	out, err := Encode(tree, WithEncodeResolver(resolve))
	if err != nil {
		t.Fatal(err)
	}
	if out != "_$s4Main3FooV" {
		t.Errorf("Encode = %q, want %q", out, "_$s4Main3FooV")
	}
}

func TestEncodeDepthGuard(t *testing.T) {
	tree := swiftType(node.KindStructure, "Int")
	for range MaxEncodeDepth + 16 {
		tree = node.New(node.KindType, tree)
	}
	_, err := Encode(tree)
	if !errors.Is(err, ErrTooComplex) {
		t.Fatalf("Encode error = %v, want ErrTooComplex", err)
	}
}

func TestEncodeSubstitutions(t *testing.T) {
	foo := node.New(node.KindType, node.New(node.KindStructure,
		node.NewText(node.KindModule, "Main"),
		node.NewText(node.KindIdentifier, "Foo")))
	tree := node.New(node.KindType, node.New(node.KindBoundGenericStructure,
		swiftType(node.KindStructure, "Dictionary"),
		node.New(node.KindTypeList, foo, foo)))

	out, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "Foo"); n != 1 {
		t.Errorf("%q spells Foo %d times, want once", out, n)
	}
	if !strings.Contains(out, "A") {
		t.Errorf("%q has no back-reference", out)
	}
	back, err := DecodeType(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(tree.ToValue(), back.ToValue()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestInterningSharesSubtrees(t *testing.T) {
	cache := node.NewCache()
	n, err := DecodeType("SDySiSiG", WithCache(cache))
	if err != nil {
		t.Fatal(err)
	}
	args := n.Find(func(n *node.Node) bool { return n.Is(node.KindTypeList) })
	if args == nil || args.NumChildren() != 2 {
		t.Fatalf("unexpected tree:\n%v", n)
	}
	if args.Child(0) != args.Child(1) {
		t.Error("equal arguments were not interned to one instance")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$sSi", "_$sSi"},
		{"_$sSi", "_$sSi"},
		{"$s4Main3FooV", "_$s4Main3FooV"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := RoundTrip(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("RoundTrip = %q, want %q", got, tt.want)
			}
			if CanRoundTrip(tt.in) != (tt.in == tt.want) {
				t.Errorf("CanRoundTrip(%q) = %v", tt.in, !(tt.in == tt.want))
			}
		})
	}
}

func TestEncodeSubtree(t *testing.T) {
	n, err := DecodeSymbol("$s4Main3FooV")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeSubtree(n, func(n *node.Node) bool { return n.Is(node.KindStructure) })
	if err != nil {
		t.Fatal(err)
	}
	if got != "4Main3FooV" {
		t.Errorf("EncodeSubtree = %q", got)
	}
	got, err = EncodeSubtree(n, func(n *node.Node) bool { return n.Is(node.KindClass) })
	if err != nil || got != "" {
		t.Errorf("EncodeSubtree without a match = %q, %v", got, err)
	}
}

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		mangled bool
	}{
		{"$sSi", 2, true},
		{"_$sSi", 3, true},
		{"$SSi", 2, true},
		{"_T0Si", 3, true},
		{"@__swiftmacro_4Main", 14, true},
		{"_TtSi", 0, true},
		{"main", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		if got := PrefixLength(tt.in); got != tt.want {
			t.Errorf("PrefixLength(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if got := IsMangled(tt.in); got != tt.mangled {
			t.Errorf("IsMangled(%q) = %v, want %v", tt.in, got, tt.mangled)
		}
	}
}
