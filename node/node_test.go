package node

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func intType() *Node { return NewStdlibType(KindStructure, "Int") }

func arrayOf(elem *Node) *Node {
	return New(KindType, New(KindBoundGenericStructure,
		NewStdlibType(KindStructure, "Array"),
		New(KindTypeList, elem)))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"same shape", arrayOf(intType()), arrayOf(intType()), true},
		{"different text", NewStdlibType(KindStructure, "Int"), NewStdlibType(KindStructure, "UInt"), false},
		{"different kind", NewStdlibType(KindStructure, "Int"), NewStdlibType(KindClass, "Int"), false},
		{"text vs index", NewText(KindIdentifier, "1"), NewIndex(KindIdentifier, 1), false},
		{"child count", New(KindTypeList, intType()), New(KindTypeList, intType(), intType()), false},
		{"both nil", nil, nil, true},
		{"one nil", intType(), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilSafeAccessors(t *testing.T) {
	var n *Node
	if n.NumChildren() != 0 || n.Child(0) != nil || n.TextOrEmpty() != "" {
		t.Error("nil node reports content")
	}
	if _, ok := n.Text(); ok {
		t.Error("nil node has text")
	}
	if _, ok := n.Index(); ok {
		t.Error("nil node has an index")
	}
	if n.Is(KindType) {
		t.Error("nil node has a kind")
	}
	if intType().Child(5) != nil || intType().Child(-1) != nil {
		t.Error("out of range child is not nil")
	}
}

func TestConstructorsDropNilChildren(t *testing.T) {
	n := New(KindTypeList, nil, intType(), nil)
	if n.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", n.NumChildren())
	}
}

func TestImmutableEdits(t *testing.T) {
	orig := New(KindTypeList, intType())
	added := orig.AddingChild(NewStdlibType(KindStructure, "Bool"))
	if orig.NumChildren() != 1 || added.NumChildren() != 2 {
		t.Fatalf("AddingChild changed the original: %d, %d", orig.NumChildren(), added.NumChildren())
	}

	inserted := added.InsertingChild(NewStdlibType(KindStructure, "String"), 0)
	if got := inserted.Child(0).FirstChild().Child(1).TextOrEmpty(); got != "String" {
		t.Errorf("InsertingChild put %q first", got)
	}

	removed := inserted.WithChild(0, nil)
	if !removed.Equal(added) {
		t.Errorf("WithChild(0, nil) =\n%v", removed)
	}

	reversed := inserted.ReversingFirst(2)
	if !reversed.Child(0).Equal(inserted.Child(1)) || !reversed.Child(1).Equal(inserted.Child(0)) {
		t.Errorf("ReversingFirst(2) =\n%v", reversed)
	}

	changed := orig.ChangingKind(KindTuple)
	if changed.Kind() != KindTuple || orig.Kind() != KindTypeList {
		t.Error("ChangingKind edited the original")
	}

	target := orig.Child(0)
	repl := orig.ReplacingDescendant(target, NewStdlibType(KindStructure, "Bool"))
	if repl == orig || orig.Child(0) != target {
		t.Error("ReplacingDescendant edited the original")
	}
	if got := repl.Child(0).FirstChild().Child(1).TextOrEmpty(); got != "Bool" {
		t.Errorf("ReplacingDescendant left %q", got)
	}
}

func TestBuilder(t *testing.T) {
	a, b, c := NewText(KindIdentifier, "a"), NewText(KindIdentifier, "b"), NewText(KindIdentifier, "c")
	n := NewBuilder(KindTypeList).
		AddChildren(a, nil, b).
		InsertChild(c, 0).
		ReverseChildren().
		RemoveChild(0).
		Build()
	want := New(KindTypeList, a, c)
	if !n.Equal(want) {
		t.Errorf("Build =\n%v\nwant\n%v", n, want)
	}

	idx := NewBuilder(KindIndex).SetText("x").SetIndex(4).Build()
	if v, ok := idx.Index(); !ok || v != 4 || idx.HasText() {
		t.Errorf("SetIndex after SetText = %v", idx)
	}
}

func TestFindAndWalk(t *testing.T) {
	tree := arrayOf(intType())
	got := tree.Find(func(n *Node) bool { return n.Is(KindIdentifier) })
	if got.TextOrEmpty() != "Array" {
		t.Errorf("Find returned %v", got)
	}
	var names []string
	tree.Walk(func(n *Node) bool {
		if n.Is(KindIdentifier) {
			names = append(names, n.TextOrEmpty())
		}
		return !n.Is(KindTypeList)
	})
	if diff := cmp.Diff([]string{"Array"}, names); diff != "" {
		t.Errorf("Walk did not skip the type list (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	got := New(KindGlobal, New(KindStructure,
		NewText(KindModule, "Main"),
		NewText(KindIdentifier, "Foo"))).String()
	want := strings.Join([]string{
		"kind=Global",
		"  kind=Structure",
		`    kind=Module, text="Main"`,
		`    kind=Identifier, text="Foo"`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String (-want +got):\n%s", diff)
	}
}

func TestValueForms(t *testing.T) {
	tree := New(KindGlobal, NewIndex(KindIndex, 3), arrayOf(intType()))

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatal(err)
	}
	var back Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(tree) {
		t.Errorf("JSON round trip:\n%v", &back)
	}

	y, err := yaml.Marshal(tree.ToValue())
	if err != nil {
		t.Fatal(err)
	}
	var v Value
	if err := yaml.Unmarshal(y, &v); err != nil {
		t.Fatal(err)
	}
	fromYAML, err := FromValue(&v)
	if err != nil {
		t.Fatal(err)
	}
	if !fromYAML.Equal(tree) {
		t.Errorf("YAML round trip:\n%s", y)
	}
}

func TestFromValueErrors(t *testing.T) {
	text, idx := "x", uint64(1)
	tests := []*Value{
		nil,
		{Kind: "NoSuchKind"},
		{Kind: "Identifier", Text: &text, Index: &idx},
		{Kind: "Type", Children: []*Value{{Kind: "Bogus"}}},
	}
	for i, v := range tests {
		if _, err := FromValue(v); err == nil {
			t.Errorf("case %d: FromValue succeeded", i)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()
		back, ok := ParseKind(name)
		if !ok || back != k {
			t.Errorf("ParseKind(%q) = %v, %v", name, back, ok)
		}
	}
}

func TestCacheInterns(t *testing.T) {
	c := NewCache()
	a := c.Intern(arrayOf(intType()))
	b := c.Intern(arrayOf(intType()))
	if a != b {
		t.Error("equal trees were not interned to one instance")
	}
	inner := c.Intern(intType())
	if a.FirstChild().Child(1).FirstChild() != inner {
		t.Error("shared subtree was not interned")
	}
	n := c.Len()
	c.Intern(intType())
	if c.Len() != n {
		t.Errorf("Len grew from %d to %d on a known tree", n, c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestLockedCacheConcurrent(t *testing.T) {
	c := NewLockedCache()
	results := make([]*Node, 16)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			results[i] = c.Intern(arrayOf(intType()))
			if results[i] == nil {
				return fmt.Errorf("worker %d got nil", i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for _, r := range results[1:] {
		if r != results[0] {
			t.Fatal("workers received different instances")
		}
	}
}
