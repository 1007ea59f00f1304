package mangling

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/skdltmxn/swiftmangle/node"
)

type corpusEntry struct {
	Symbol    string   `yaml:"symbol"`
	Canonical bool     `yaml:"canonical"`
	Kinds     []string `yaml:"kinds"`
}

func loadCorpus(tb testing.TB) []corpusEntry {
	tb.Helper()
	data, err := os.ReadFile("testdata/corpus.yaml")
	if err != nil {
		tb.Fatal(err)
	}
	var entries []corpusEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		tb.Fatalf("parsing corpus: %v", err)
	}
	return entries
}

func hasKind(root *node.Node, k node.Kind) bool {
	return root.Find(func(n *node.Node) bool { return n.Is(k) }) != nil
}

func TestCorpus(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Symbol, func(t *testing.T) {
			first, err := DecodeSymbol(tc.Symbol)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			out, err := Encode(first)
			if err != nil {
				t.Fatalf("encode:\n%v\n%v", first, err)
			}
			if tc.Canonical {
				want := tc.Symbol
				if strings.HasPrefix(want, "$s") {
					want = "_" + want
				}
				if out != want {
					t.Errorf("encode = %q, want %q", out, want)
				}
			}

			second, err := DecodeSymbol(out)
			if err != nil {
				t.Fatalf("decode of encoding %q: %v", out, err)
			}
			if tc.Canonical && !second.Equal(first) {
				t.Errorf("canonical symbol changed its tree:\n%s", cmp.Diff(first.ToValue(), second.ToValue()))
			}
			again, err := Encode(second)
			if err != nil {
				t.Fatalf("re-encode of %q: %v", out, err)
			}
			if again != out {
				t.Errorf("encoding is not stable: %q then %q", out, again)
			}

			for _, name := range tc.Kinds {
				k, ok := node.ParseKind(name)
				if !ok {
					t.Fatalf("unknown kind %q in corpus", name)
				}
				if !hasKind(second, k) {
					t.Errorf("tree of %q has no %s node:\n%v", out, name, second)
				}
			}
		})
	}
}

func TestSwift3LabelsMoveToLabelList(t *testing.T) {
	tests := []struct {
		symbol string
		labels []string
	}{
		{"_TF3foo3barFT1aSi1bSS_T_", []string{"a", "b"}},
		{"_TFC3foo3bar3basfT3zimCS_3zim_T_", []string{"zim"}},
		{"_TF3foo3barFT1aSiSS_T_", []string{"a", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			out, err := RoundTrip(tt.symbol)
			if err != nil {
				t.Fatal(err)
			}
			n, err := DecodeSymbol(out)
			if err != nil {
				t.Fatalf("decode of %q: %v", out, err)
			}
			list := n.Find(func(n *node.Node) bool { return n.Is(node.KindLabelList) })
			if list == nil {
				t.Fatalf("%q has no label list:\n%v", out, n)
			}
			var got []string
			for _, l := range list.Children() {
				got = append(got, l.TextOrEmpty())
			}
			if diff := cmp.Diff(tt.labels, got); diff != "" {
				t.Errorf("labels of %q (-want +got):\n%s", out, diff)
			}
			if hasKind(n, node.KindTupleElementName) {
				t.Errorf("%q still names its parameters inside the tuple:\n%v", out, n)
			}
		})
	}
}

func TestTrailingAttributeIsRejected(t *testing.T) {
	n, err := DecodeSymbol("$s4main3FooV_Tg5")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(n)
	if !errors.Is(err, ErrInvalidNodeStructure) {
		t.Errorf("Encode = %q, %v; want ErrInvalidNodeStructure", out, err)
	}
}

func TestLargeSubstitutionIndex(t *testing.T) {
	const count = 40
	args := make([]*node.Node, 0, 2*count)
	for i := range count {
		args = append(args, node.New(node.KindType, node.New(node.KindStructure,
			node.NewText(node.KindModule, "Main"),
			node.NewText(node.KindIdentifier, "Item"+strings.Repeat("x", i)))))
	}
	args = append(args, args...)
	tree := node.New(node.KindType, node.New(node.KindTuple, tupleElements(args)...))

	out, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeType(out)
	if err != nil {
		t.Fatalf("decode of %q: %v", out, err)
	}
	if !back.Equal(tree) {
		t.Errorf("%q decodes to a different tree:\n%s", out, cmp.Diff(tree.ToValue(), back.ToValue()))
	}
}

func tupleElements(types []*node.Node) []*node.Node {
	out := make([]*node.Node, len(types))
	for i, t := range types {
		out[i] = node.New(node.KindTupleElement, t)
	}
	return out
}

// FuzzDecode checks that no input makes the decoder or the encoder panic
// or loop.
func FuzzDecode(f *testing.F) {
	for _, tc := range loadCorpus(f) {
		f.Add(tc.Symbol)
	}
	f.Add("_$s4main3FooVA$")
	f.Add("$s4main3FooV9223372036854775807_abc")
	f.Fuzz(func(t *testing.T, s string) {
		done := make(chan any, 1)
		go func() {
			defer func() { done <- recover() }()
			n, err := DecodeSymbol(s)
			if err != nil {
				return
			}
			_, _ = Encode(n)
		}()
		select {
		case p := <-done:
			if p != nil {
				t.Fatalf("%q panicked: %v", s, p)
			}
		case <-time.After(10 * time.Second):
			t.Fatalf("decoding %q did not finish", s)
		}
	})
}

func TestBoundGenericProtocolIsNotEncodable(t *testing.T) {
	n, err := DecodeSymbol("$sSQySiG")
	if err != nil {
		t.Fatal(err)
	}
	if !hasKind(n, node.KindBoundGenericProtocol) {
		t.Fatalf("no BoundGenericProtocol in\n%v", n)
	}
	if out, err := Encode(n); !errors.Is(err, ErrBadNominalTypeKind) {
		t.Errorf("Encode = %q, %v; want ErrBadNominalTypeKind", out, err)
	}
}
