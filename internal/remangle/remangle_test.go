package remangle

import (
	"errors"
	"strings"
	"testing"

	"github.com/skdltmxn/swiftmangle/internal/demangle"
	"github.com/skdltmxn/swiftmangle/node"
)

func nominal(kind node.Kind, module, name string) *node.Node {
	return node.New(kind,
		node.NewText(node.KindModule, module),
		node.NewText(node.KindIdentifier, name))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		tree *node.Node
		want string
	}{
		{
			name: "standard substitution",
			tree: nominal(node.KindStructure, "Swift", "Int"),
			want: "Si",
		},
		{
			name: "type wrapper is transparent",
			tree: node.New(node.KindType, nominal(node.KindStructure, "Swift", "String")),
			want: "SS",
		},
		{
			name: "user struct",
			tree: nominal(node.KindStructure, "Main", "Foo"),
			want: "4Main3FooV",
		},
		{
			name: "user class",
			tree: nominal(node.KindClass, "Main", "Foo"),
			want: "4Main3FooC",
		},
		{
			name: "user enum",
			tree: nominal(node.KindEnum, "Main", "Foo"),
			want: "4Main3FooO",
		},
		{
			name: "word reuse",
			tree: nominal(node.KindStructure, "MyModule", "MyStruct"),
			want: "8MyModule0A6StructV",
		},
		{
			name: "stdlib module",
			tree: node.NewText(node.KindModule, "Swift"),
			want: "s",
		},
		{
			name: "objc module",
			tree: node.NewText(node.KindModule, "__C"),
			want: "So",
		},
		{
			name: "global symbol",
			tree: node.New(node.KindGlobal, nominal(node.KindStructure, "Swift", "Int")),
			want: "_$sSi",
		},
		{
			name: "builtin with code",
			tree: node.NewText(node.KindBuiltinTypeName, "Builtin.NativeObject"),
			want: "Bo",
		},
		{
			name: "builtin integer",
			tree: node.NewText(node.KindBuiltinTypeName, "Builtin.Int64"),
			want: "Bi64_",
		},
		{
			name: "linear differentiability",
			tree: node.NewIndex(node.KindImplDifferentiabilityKind, 'l'),
			want: "l",
		},
		{
			name: "pullback",
			tree: node.NewIndex(node.KindAutoDiffFunctionKind, 'p'),
			want: "p",
		},
		{
			name: "differentiable function",
			tree: node.NewIndex(node.KindDifferentiableFunctionType, 'r'),
			want: "Yjr",
		},
		{
			name: "specialization pass",
			tree: node.NewIndex(node.KindSpecializationPassID, 5),
			want: "5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.tree, Options{Punycode: true})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		tree *node.Node
		want error
	}{
		{"nil tree", nil, ErrInvalidNodeStructure},
		{"identifier without text", node.New(node.KindIdentifier), ErrInvalidNodeStructure},
		{"internal marker", node.NewIndex(node.KindIndex, 3), ErrUnsupportedNodeKind},
		{"unknown builtin", node.NewText(node.KindBuiltinTypeName, "Builtin.Bogus"), ErrUnexpectedBuiltinType},
		{"type with two children", node.New(node.KindType,
			nominal(node.KindStructure, "Swift", "Int"),
			nominal(node.KindStructure, "Swift", "Int")), ErrMultipleChildNodes},
		{"unresolved reference", node.NewIndex(node.KindTypeSymbolicReference, 0), ErrMissingSymbolicResolver},
		{"differentiability NUL", node.NewIndex(node.KindImplDifferentiabilityKind, 0), ErrInvalidDifferentiability},
		{"differentiability beyond a byte", node.NewIndex(node.KindImplDifferentiabilityKind, 0x141), ErrInvalidDifferentiability},
		{"differentiability without payload", node.New(node.KindImplDifferentiabilityKind), ErrInvalidDifferentiability},
		{"derivative kind not a derivative", node.NewIndex(node.KindAutoDiffFunctionKind, 'l'), ErrInvalidDifferentiability},
		{"differentiable function type", node.NewIndex(node.KindDifferentiableFunctionType, 'x'), ErrInvalidDifferentiability},
		{"pass id without payload", node.New(node.KindSpecializationPassID), ErrInvalidNodeStructure},
		{"dropped argument without payload", node.New(node.KindDroppedArgument), ErrInvalidNodeStructure},
		{"attribute without entity", node.New(node.KindGlobal,
			nominal(node.KindStructure, "main", "Foo"),
			node.New(node.KindGenericSpecialization, node.NewIndex(node.KindSpecializationPassID, 5))), ErrInvalidNodeStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.tree, Options{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Encode = %q, %v; want %v", got, err, tt.want)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not an *Error", err)
			}
		})
	}
}

func TestResolverFailure(t *testing.T) {
	ref := node.NewIndex(node.KindTypeSymbolicReference, 7)
	boom := errors.New("no such descriptor")
	_, err := Encode(ref, Options{Resolver: func(*node.Node) (*node.Node, error) { return nil, boom }})
	var e *Error
	if !errors.As(err, &e) || e.Kind != MissingSymbolicResolver {
		t.Fatalf("Encode error = %v, want MissingSymbolicResolver", err)
	}
	if e.Node != ref {
		t.Errorf("error names %v, want the reference", e.Node)
	}
	if !strings.Contains(err.Error(), boom.Error()) {
		t.Errorf("error %q does not carry the resolver message", err)
	}
}

func TestDepthGuard(t *testing.T) {
	tree := nominal(node.KindStructure, "Swift", "Int")
	for range MaxDepth * 4 {
		tree = node.New(node.KindType, tree)
	}
	_, err := Encode(tree, Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != TooComplex {
		t.Fatalf("Encode error = %v, want TooComplex", err)
	}
}

func TestRepeatedSubtreeIsSpelledOnce(t *testing.T) {
	foo := node.New(node.KindType, nominal(node.KindStructure, "Main", "Foo"))
	for n := 2; n <= 5; n++ {
		args := make([]*node.Node, n)
		for i := range args {
			args[i] = foo
		}
		tree := node.New(node.KindType, node.New(node.KindBoundGenericStructure,
			node.New(node.KindType, nominal(node.KindStructure, "Main", "Tuple")),
			node.New(node.KindTypeList, args...)))

		got, err := Encode(tree, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if c := strings.Count(got, "3Foo"); c != 1 {
			t.Errorf("n=%d: %q spells Foo %d times", n, got, c)
		}
		back, err := demangle.Type(got, demangle.Options{})
		if err != nil {
			t.Fatalf("n=%d: decoding %q: %v", n, got, err)
		}
		if !back.Equal(tree) {
			t.Errorf("n=%d: %q decodes to\n%v", n, got, back)
		}
	}
}

func TestPunycodeIdentifier(t *testing.T) {
	tree := nominal(node.KindStructure, "Main", "Straße")
	got, err := Encode(tree, Options{Punycode: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "4Main00") {
		t.Errorf("Encode = %q, want a punycoded identifier", got)
	}
	back, err := demangle.Type(got, demangle.Options{})
	if err != nil {
		t.Fatalf("decoding %q: %v", got, err)
	}
	if !back.Equal(node.New(node.KindType, tree)) {
		t.Errorf("%q decodes to\n%v", got, back)
	}

	raw, err := Encode(tree, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "4Main6StraßeV"; raw != want {
		t.Errorf("Encode without punycode = %q, want %q", raw, want)
	}
}
