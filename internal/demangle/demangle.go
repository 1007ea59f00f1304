// Package demangle turns mangled Swift symbols into node trees.
//
// The grammar is postfix: most operators pop their operands from a name
// stack that earlier operators pushed. The demangler therefore keeps three
// pieces of state besides the input cursor: the name stack, the list of
// nodes that later 'A' operators may refer back to, and the word table used
// to compress identifiers.
package demangle

import (
	"log/slog"
	"math"

	"github.com/skdltmxn/swiftmangle/internal/debug"
	"github.com/skdltmxn/swiftmangle/internal/stream"
	"github.com/skdltmxn/swiftmangle/internal/subst"
	"github.com/skdltmxn/swiftmangle/node"
)

// Resolver resolves an out-of-band symbolic reference. index counts the
// references resolved so far in the current symbol. Returning nil fails
// the decode.
type Resolver func(kind node.SymbolicReferenceKind, directness node.Directness, index int) *node.Node

// Options configure a single decode.
type Options struct {
	Resolver Resolver
	Interner node.Interner
	Logger   *slog.Logger
}

// Symbol decodes a complete symbol, including the "$s" style prefix, or a
// pre-Swift-4 "_T" symbol.
func Symbol(mangled string, opts Options) (*node.Node, error) {
	d := newDemangler(mangled, opts)
	n, err := d.demangleSymbol()
	if err != nil {
		d.trace("decode failed", "input", mangled, "err", err)
		return nil, err
	}
	return n, nil
}

// Type decodes a bare type mangling without prefix.
func Type(mangled string, opts Options) (*node.Node, error) {
	d := newDemangler(mangled, opts)
	n, err := d.demangleType()
	if err != nil {
		d.trace("type decode failed", "input", mangled, "err", err)
		return nil, err
	}
	return n, nil
}

// Auto decodes mangled as a type when isType is set, as a symbol when it
// carries a known prefix and with the pre-Swift-4 grammar otherwise.
func Auto(mangled string, isType bool, opts Options) (*node.Node, error) {
	switch {
	case isType:
		return Type(mangled, opts)
	case PrefixLength(mangled) != 0:
		return Symbol(mangled, opts)
	}
	d := newDemangler(mangled, opts)
	return d.demangleSwift3TopLevelSymbol()
}

var prefixes = []struct {
	text   string
	length int
}{
	{"_T0", 3}, {"_$S", 3}, {"_$s", 3}, {"_$e", 3},
	{"$S", 2}, {"$s", 2}, {"$e", 2},
	{"@__swiftmacro_", 14},
}

// PrefixLength returns the length of the mangling prefix of s, or 0 when
// s does not start with one.
func PrefixLength(s string) int {
	for _, p := range prefixes {
		if len(s) >= len(p.text) && s[:len(p.text)] == p.text {
			return p.length
		}
	}
	return 0
}

// demangler holds parser state.
type demangler struct {
	s *stream.Scanner

	nameStack     []*node.Node
	substitutions []*node.Node
	words         []string

	// The pre-Swift-4.2 "_T0" dialect spells function parameter labels
	// inside the argument tuple.
	oldFunctionTypes bool

	symRefIndex int
	resolver    Resolver
	interner    node.Interner
	log         *slog.Logger
	depth       int
}

const maxDepth = 1024

func newDemangler(mangled string, opts Options) *demangler {
	d := &demangler{
		s:        stream.NewScanner(mangled),
		resolver: opts.Resolver,
		interner: opts.Interner,
		log:      opts.Logger,
	}
	if d.log == nil && debug.Decode() {
		d.log = debug.Logger()
	}
	return d
}

func (d *demangler) trace(msg string, args ...any) {
	if d.log != nil {
		d.log.Debug(msg, args...)
	}
}

func (d *demangler) reset() {
	d.nameStack = d.nameStack[:0]
	d.substitutions = d.substitutions[:0]
	d.words = d.words[:0]
	d.s.Reset()
}

func (d *demangler) fail() error {
	return d.s.Unexpected()
}

// need turns a missing node into the catch-all failure.
func (d *demangler) need(n *node.Node) (*node.Node, error) {
	if n == nil {
		return nil, d.fail()
	}
	return n, nil
}

func (d *demangler) check(ok bool) error {
	if !ok {
		return d.fail()
	}
	return nil
}

func (d *demangler) enter() error {
	d.depth++
	if d.depth > maxDepth {
		return d.s.Fail(stream.TooDeep)
	}
	return nil
}

func (d *demangler) leave() { d.depth-- }

func (d *demangler) readManglingPrefix() error {
	for _, p := range []string{"_T0", "$S", "_$S", "$s", "_$s", "$e", "_$e", "@__swiftmacro_"} {
		if d.s.Conditional(p) {
			return nil
		}
	}
	return d.fail()
}

func (d *demangler) demangleSymbol() (*node.Node, error) {
	d.reset()

	if d.s.Conditional("_Tt") {
		return d.demangleObjCTypeName()
	}
	if d.s.Conditional("_T") {
		d.oldFunctionTypes = true
		if err := d.s.Backtrack(2); err != nil {
			return nil, err
		}
	}

	if err := d.readManglingPrefix(); err != nil {
		return nil, err
	}
	if err := d.parseAndPushNames(); err != nil {
		return nil, err
	}

	suffix := d.popKind(node.KindSuffix)
	children, err := d.popTopLevelChildren()
	if err != nil {
		return nil, err
	}
	if suffix != nil {
		children = append(children, suffix)
	}
	if len(children) == 0 {
		return nil, d.fail()
	}
	return d.intern(node.New(node.KindGlobal, children...)), nil
}

func (d *demangler) demangleType() (*node.Node, error) {
	d.reset()

	if err := d.parseAndPushNames(); err != nil {
		return nil, err
	}
	if n := d.pop(); n != nil {
		return n, nil
	}
	return node.NewText(node.KindSuffix, d.s.Input()), nil
}

func (d *demangler) parseAndPushNames() error {
	for !d.s.AtEnd() {
		n, err := d.demangleOperator()
		if err != nil {
			return err
		}
		d.push(n)
	}
	return nil
}

func (d *demangler) popTopLevelChildren() ([]*node.Node, error) {
	var children []*node.Node
	for {
		attr := d.popIf(node.Kind.IsFunctionAttr)
		if attr == nil {
			break
		}
		if attr.Is(node.KindPartialApplyForwarder, node.KindPartialApplyObjCForwarder) {
			nested, err := d.popTopLevelChildren()
			if err != nil {
				return nil, err
			}
			return append(children, attr.AddingChildren(nested...)), nil
		}
		children = append(children, attr)
	}
	for _, n := range d.nameStack {
		if n.Kind() == node.KindType {
			c, err := d.need(n.FirstChild())
			if err != nil {
				return nil, err
			}
			children = append(children, c)
			continue
		}
		children = append(children, n)
	}
	return children, nil
}

func (d *demangler) demangleSymbolicReference(raw rune) (*node.Node, error) {
	kind, directness, ok := node.SymbolicReferenceFor(byte(raw))
	if !ok || d.resolver == nil {
		return nil, d.s.Fail(stream.RequiredNonOptional)
	}
	resolved := d.resolver(kind, directness, d.symRefIndex)
	if resolved == nil {
		return nil, d.s.Fail(stream.RequiredNonOptional)
	}
	d.symRefIndex++
	if (kind == node.SymRefContext || kind == node.SymRefObjectiveCProtocol) &&
		!resolved.Is(node.KindOpaqueTypeDescriptorSymbolicReference, node.KindOpaqueReturnTypeOf) {
		d.addSubstitution(resolved)
	}
	return resolved, nil
}

func (d *demangler) demangleOperator() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12:
		return d.demangleSymbolicReference(c)
	case 'A':
		return d.demangleMultiSubstitutions()
	case 'B':
		return d.demangleBuiltinType()
	case 'C':
		return d.demangleAnyGenericType(node.KindClass)
	case 'D':
		return d.wrapPopped(node.KindTypeMangling, d.popKind(node.KindType))
	case 'E':
		return d.demangleExtensionContext()
	case 'F':
		return d.demanglePlainFunction()
	case 'G':
		return d.demangleBoundGenericType()
	case 'H':
		return d.demangleConformanceOperator()
	case 'I':
		return d.demangleImplFunctionType()
	case 'K':
		return node.New(node.KindThrowsAnnotation), nil
	case 'L':
		return d.demangleLocalIdentifier()
	case 'M':
		return d.demangleMetatype()
	case 'N':
		return d.wrapPopped(node.KindTypeMetadata, d.popKind(node.KindType))
	case 'O':
		return d.demangleAnyGenericType(node.KindEnum)
	case 'P':
		return d.demangleAnyGenericType(node.KindProtocol)
	case 'Q':
		return d.demangleArchetype()
	case 'R':
		return d.demangleGenericRequirement()
	case 'S':
		return d.demangleStandardSubstitution()
	case 'T':
		return d.demangleThunkOrSpecialization()
	case 'V':
		return d.demangleAnyGenericType(node.KindStructure)
	case 'W':
		return d.demangleWitness()
	case 'X':
		return d.demangleSpecialType()
	case 'Y':
		return d.demangleTypeAnnotation()
	case 'Z':
		return d.wrapPopped(node.KindStatic, d.popIf(node.Kind.IsEntity))
	case 'a':
		return d.demangleAnyGenericType(node.KindTypeAlias)
	case 'c':
		return d.popFunctionType(node.KindFunctionType, false)
	case 'd':
		return node.New(node.KindVariadicMarker), nil
	case 'f':
		return d.demangleFunctionEntity()
	case 'g':
		return d.demangleRetroactiveConformance()
	case 'h':
		return d.typeWithPoppedChild(node.KindShared)
	case 'i':
		return d.demangleSubscript()
	case 'l':
		return d.demangleGenericSignature(false)
	case 'm':
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindMetatype, t), nil
	case 'n':
		return d.typeWithPoppedChild(node.KindOwned)
	case 'o':
		return d.demangleOperatorIdentifier()
	case 'p':
		return d.demangleProtocolListType()
	case 'q':
		idx, err := d.demangleGenericParamIndex()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindType, idx), nil
	case 'r':
		return d.demangleGenericSignature(true)
	case 's':
		return node.NewText(node.KindModule, node.StdlibModule), nil
	case 't':
		return d.popTuple()
	case 'u':
		return d.demangleGenericType()
	case 'v':
		return d.demangleVariable()
	case 'w':
		return d.demangleValueWitness()
	case 'x':
		return node.New(node.KindType, genericParamType(0, 0)), nil
	case 'y':
		return node.New(node.KindEmptyList), nil
	case 'z':
		return d.typeWithPoppedChild(node.KindInOut)
	case '_':
		return node.New(node.KindFirstElementMarker), nil
	case '.':
		if err := d.s.Backtrack(1); err != nil {
			return nil, err
		}
		return node.NewText(node.KindSuffix, d.s.Remainder()), nil
	case '$':
		return d.demangleIntegerType()
	}
	if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}
	return d.demangleIdentifier()
}

func (d *demangler) demangleConformanceOperator() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'A':
		return d.demangleDependentProtocolConformanceAssociated()
	case 'C':
		return d.demangleConcreteProtocolConformance()
	case 'D':
		return d.demangleDependentProtocolConformanceRoot()
	case 'I':
		return d.demangleDependentProtocolConformanceInherited()
	case 'O':
		return d.demangleDependentProtocolConformanceOpaque()
	case 'P':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolConformanceRefInTypeModule, p), nil
	case 'p':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolConformanceRefInProtocolModule, p), nil
	case 'X':
		l, err := d.popAnyProtocolConformanceList()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindPackProtocolConformance, l), nil
	case 'c':
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolConformanceDescriptorRecord, conf), nil
	case 'n':
		return d.wrapPopped(node.KindNominalTypeDescriptorRecord, d.popKind(node.KindType))
	case 'o':
		return d.wrapPopped(node.KindOpaqueTypeDescriptorRecord, d.pop())
	case 'r':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolDescriptorRecord, p), nil
	case 'F':
		return node.New(node.KindAccessibleFunctionRecord), nil
	}
	if err := d.s.Backtrack(2); err != nil {
		return nil, err
	}
	return d.demangleIdentifier()
}

func (d *demangler) demangleTypeAnnotation() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'a':
		return node.New(node.KindAsyncAnnotation), nil
	case 'A':
		return node.New(node.KindIsolatedAnyFunctionType), nil
	case 'b':
		return node.New(node.KindConcurrentFunctionType), nil
	case 'c':
		t, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindGlobalActorFunctionType, t), nil
	case 'C':
		return node.New(node.KindNonIsolatedCallerFunctionType), nil
	case 'i':
		return d.typeWithPoppedChild(node.KindIsolated)
	case 'j':
		return d.demangleDifferentiableFunctionType()
	case 'k':
		return d.typeWithPoppedChild(node.KindNoDerivative)
	case 'K':
		t, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindTypedThrowsAnnotation, t), nil
	case 't':
		return d.typeWithPoppedChild(node.KindCompileTimeLiteral)
	case 'T':
		return node.New(node.KindSendingResultFunctionType), nil
	case 'u':
		return d.typeWithPoppedChild(node.KindSending)
	case 'g':
		return d.typeWithPoppedChild(node.KindConstValue)
	}
	return nil, d.fail()
}

func (d *demangler) demangleNatural() (uint64, bool) {
	return d.s.ConditionalInt()
}

func (d *demangler) demangleIndex() (uint64, error) {
	if d.s.ConditionalRune('_') {
		return 0, nil
	}
	v, ok := d.demangleNatural()
	if !ok || v == math.MaxUint64 {
		return 0, d.fail()
	}
	if err := d.s.MatchRune('_'); err != nil {
		return 0, err
	}
	return v + 1, nil
}

func (d *demangler) demangleIndexAsName() (*node.Node, error) {
	i, err := d.demangleIndex()
	if err != nil {
		return nil, err
	}
	return node.NewIndex(node.KindNumber, i), nil
}

func (d *demangler) demangleMultiSubstitutions() (*node.Node, error) {
	repeatCount := -1
	for {
		c, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch {
		case c == 0:
			return nil, d.fail()
		case stream.IsLower(c):
			n, err := d.pushMultiSubstitutions(repeatCount, int(c-'a'))
			if err != nil {
				return nil, err
			}
			d.push(n)
			repeatCount = -1
		case stream.IsUpper(c):
			return d.pushMultiSubstitutions(repeatCount, int(c-'A'))
		case c == '_':
			return d.need(d.substitutionAt(repeatCount + 27))
		default:
			if err := d.s.Backtrack(1); err != nil {
				return nil, err
			}
			n, ok := d.demangleNatural()
			if !ok || n > subst.MaxRepeatCount {
				return nil, d.fail()
			}
			repeatCount = int(n)
		}
	}
}

func (d *demangler) pushMultiSubstitutions(repeatCount, index int) (*node.Node, error) {
	if repeatCount > subst.MaxRepeatCount {
		return nil, d.fail()
	}
	n, err := d.need(d.substitutionAt(index))
	if err != nil {
		return nil, err
	}
	for ; repeatCount > 1; repeatCount-- {
		d.push(n)
	}
	return n, nil
}

func (d *demangler) demangleStandardSubstitution() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'o':
		return node.NewText(node.KindModule, node.ObjCModule), nil
	case 'C':
		return node.NewText(node.KindModule, node.CModule), nil
	case 'g':
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		optional := node.New(node.KindType, node.New(node.KindBoundGenericEnum,
			node.New(node.KindType, subst.Standard{Kind: node.KindEnum, Name: "Optional"}.Node()),
			node.New(node.KindTypeList, t)))
		d.addSubstitution(optional)
		return optional, nil
	}
	if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}

	repeatCount := 0
	if n, ok := d.demangleNatural(); ok {
		if n > subst.MaxRepeatCount {
			return nil, d.fail()
		}
		repeatCount = int(n)
	}
	concurrency := d.s.ConditionalRune('c')
	c, err = d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	std, ok := subst.Lookup(c, concurrency)
	if !ok {
		return nil, d.fail()
	}
	n := node.New(node.KindType, std.Node())
	for ; repeatCount > 1; repeatCount-- {
		d.push(n)
	}
	return n, nil
}

func (d *demangler) demangleIdentifier() (*node.Node, error) {
	hasWordSubs := false
	isPunycoded := false
	c, err := d.s.ReadFunc(stream.IsDigit)
	if err != nil {
		return nil, err
	}
	if c == '0' {
		next, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		if next == '0' {
			isPunycoded = true
		} else {
			if err := d.s.Backtrack(1); err != nil {
				return nil, err
			}
			hasWordSubs = true
		}
	} else if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}

	var identifier []byte
	for {
		for hasWordSubs && stream.IsLetter(d.s.Peek(0)) {
			c, _ := d.s.ReadScalar()
			var idx int
			if stream.IsLower(c) {
				idx = int(c - 'a')
			} else {
				idx = int(c - 'A')
				hasWordSubs = false
			}
			if idx >= subst.MaxNumWords || idx >= len(d.words) {
				return nil, d.fail()
			}
			identifier = append(identifier, d.words[idx]...)
		}
		if d.s.ConditionalRune('0') {
			break
		}
		numChars, ok := d.demangleNatural()
		if !ok || numChars == 0 {
			return nil, d.fail()
		}
		if isPunycoded {
			d.s.ConditionalRune('_')
		}
		text, err := d.s.ReadN(int(numChars))
		if err != nil {
			return nil, err
		}
		if isPunycoded {
			decoded, err := decodePunycode(text)
			if err != nil {
				return nil, d.s.Fail(stream.PunycodeParse)
			}
			identifier = append(identifier, decoded...)
		} else {
			identifier = append(identifier, text...)
			d.words = subst.CollectWords(text, d.words)
		}
		if !hasWordSubs {
			break
		}
	}
	if len(identifier) == 0 {
		return nil, d.fail()
	}
	n := node.NewText(node.KindIdentifier, string(identifier))
	d.addSubstitution(n)
	return n, nil
}

func (d *demangler) demangleOperatorIdentifier() (*node.Node, error) {
	ident, err := d.need(d.popKind(node.KindIdentifier))
	if err != nil {
		return nil, err
	}
	var op []rune
	for _, c := range ident.TextOrEmpty() {
		if c >= 0x80 {
			op = append(op, c)
			continue
		}
		r, ok := subst.OperatorChar(c)
		if !ok {
			return nil, d.fail()
		}
		op = append(op, r)
	}
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'i':
		return node.NewText(node.KindInfixOperator, string(op)), nil
	case 'p':
		return node.NewText(node.KindPrefixOperator, string(op)), nil
	case 'P':
		return node.NewText(node.KindPostfixOperator, string(op)), nil
	}
	return nil, d.fail()
}

func (d *demangler) demangleLocalIdentifier() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch {
	case c == 'L':
		discriminator, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		name, err := d.need(d.popIf(node.Kind.IsDeclName))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindPrivateDeclName, discriminator, name), nil
	case c == 'l':
		discriminator, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindPrivateDeclName, discriminator), nil
	case (c >= 'a' && c <= 'j') || (c >= 'A' && c <= 'J'):
		entity, err := d.need(d.pop())
		if err != nil {
			return nil, err
		}
		return node.New(node.KindRelatedEntityDeclName, node.NewText(node.KindIdentifier, string(c)), entity), nil
	}
	if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}
	discriminator, err := d.demangleIndexAsName()
	if err != nil {
		return nil, err
	}
	name, err := d.need(d.popIf(node.Kind.IsDeclName))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindLocalDeclName, discriminator, name), nil
}
