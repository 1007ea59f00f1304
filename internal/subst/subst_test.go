package subst

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skdltmxn/swiftmangle/node"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		letter      rune
		concurrency bool
		want        Standard
		ok          bool
	}{
		{'i', false, Standard{node.KindStructure, "Int"}, true},
		{'a', false, Standard{node.KindStructure, "Array"}, true},
		{'q', false, Standard{node.KindEnum, "Optional"}, true},
		{'Q', false, Standard{node.KindProtocol, "Equatable"}, true},
		{'T', true, Standard{node.KindStructure, "Task"}, true},
		{'M', true, Standard{node.KindClass, "MainActor"}, true},
		{'0', false, Standard{}, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.letter, tt.concurrency)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q, %v) = %v, %v; want %v, %v", tt.letter, tt.concurrency, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMangling(t *testing.T) {
	tests := []struct {
		name        string
		concurrency bool
		want        string
		ok          bool
	}{
		{"Int", true, "i", true},
		{"String", false, "S", true},
		{"Task", true, "cT", true},
		{"Task", false, "", false},
		{"Foo", true, "", false},
	}
	for _, tt := range tests {
		got, ok := Mangling(tt.name, tt.concurrency)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Mangling(%q, %v) = %q, %v; want %q, %v", tt.name, tt.concurrency, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStandardNode(t *testing.T) {
	n := Standard{node.KindStructure, "Int"}.Node()
	want := node.New(node.KindStructure,
		node.NewText(node.KindModule, "Swift"),
		node.NewText(node.KindIdentifier, "Int"))
	if !n.Equal(want) {
		t.Errorf("Node() =\n%v", n)
	}
}

// write emulates the encoder: it tries to merge and writes the prefixed
// substitution otherwise.
func write(m *Merger, buf *bytes.Buffer, s string, standard bool) {
	if m.TryMerge(buf, s, standard) {
		return
	}
	if standard {
		buf.WriteString("S" + s)
	} else {
		buf.WriteString("A" + s)
	}
}

func TestMerger(t *testing.T) {
	type sub struct {
		text     string
		standard bool
	}
	tests := []struct {
		name string
		subs []sub
		want string
	}{
		{"single", []sub{{"i", true}}, "Si"},
		{"repeated standard", []sub{{"i", true}, {"i", true}}, "S2i"},
		{"three standard", []sub{{"i", true}, {"i", true}, {"i", true}}, "S3i"},
		{"different standard", []sub{{"i", true}, {"S", true}}, "SiSS"},
		{"back-references", []sub{{"B", false}, {"C", false}}, "AbC"},
		{"repeated back-reference", []sub{{"B", false}, {"B", false}}, "A2B"},
		{"mixed", []sub{{"B", false}, {"i", true}}, "ABSi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Merger
			var buf bytes.Buffer
			for _, s := range tt.subs {
				write(&m, &buf, s.text, s.standard)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergerStopsAfterOtherOutput(t *testing.T) {
	var m Merger
	var buf bytes.Buffer
	write(&m, &buf, "i", true)
	buf.WriteString("y")
	write(&m, &buf, "i", true)
	if got := buf.String(); got != "SiySi" {
		t.Errorf("got %q, want %q", got, "SiySi")
	}
}

func TestCollectWords(t *testing.T) {
	tests := []struct {
		chunk string
		want  []string
	}{
		{"MyModule", []string{"My", "Module"}},
		{"foo_bar", []string{"foo", "bar"}},
		{"URLSession", []string{"URLSession"}},
		{"a", nil},
		{"x1y", []string{"x1y"}},
	}
	for _, tt := range tests {
		got := CollectWords(tt.chunk, nil)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("CollectWords(%q) (-want +got):\n%s", tt.chunk, diff)
		}
	}
}

func TestCollectWordsLimit(t *testing.T) {
	var words []string
	for range MaxNumWords + 5 {
		words = CollectWords("AbCd", words)
	}
	if len(words) != MaxNumWords {
		t.Errorf("collected %d words, want %d", len(words), MaxNumWords)
	}
}

func TestTranslateOperator(t *testing.T) {
	tests := map[string]string{
		"+":   "p",
		"==":  "ee",
		"<=>": "leg",
		"...": "zzz",
	}
	for op, want := range tests {
		if got := TranslateOperator(op); got != want {
			t.Errorf("TranslateOperator(%q) = %q, want %q", op, got, want)
		}
		for i, c := range want {
			back, ok := OperatorChar(c)
			if !ok || back != rune(op[i]) {
				t.Errorf("OperatorChar(%q) = %q, %v", c, back, ok)
			}
		}
	}
}
