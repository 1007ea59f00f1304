package demangle

import (
	"math"
	"strconv"

	"github.com/skdltmxn/swiftmangle/internal/stream"
	"github.com/skdltmxn/swiftmangle/internal/subst"
	"github.com/skdltmxn/swiftmangle/node"
)

// legacy decodes the Swift 3 "_T" grammar. Unlike the current grammar it
// is prefix ordered and recursive descent, so it shares only the scanner
// and the node model with demangler. Its substitution table is the list of
// nominal names and modules seen so far.
type legacy struct {
	s       *stream.Scanner
	names   []*node.Node
	depth   int
	failure func() error
}

func (d *demangler) demangleSwift3TopLevelSymbol() (*node.Node, error) {
	d.reset()
	l := &legacy{s: d.s, failure: d.fail}
	n, err := l.topLevel()
	if err != nil {
		d.trace("legacy decode failed", "input", d.s.Input(), "err", err)
		return nil, err
	}
	return d.intern(n), nil
}

func (l *legacy) fail() error { return l.failure() }

func (l *legacy) enter() error {
	l.depth++
	if l.depth > maxDepth {
		return l.s.Fail(stream.TooDeep)
	}
	return nil
}

func (l *legacy) leave() { l.depth-- }

func (l *legacy) remember(n *node.Node) {
	l.names = append(l.names, n)
}

var legacyTopLevelAttributes = map[rune]node.Kind{
	'o': node.KindObjCAttribute,
	'O': node.KindNonObjCAttribute,
	'D': node.KindDynamicAttribute,
	'd': node.KindDirectMethodReferenceAttribute,
	'v': node.KindVTableAttribute,
}

func (l *legacy) topLevel() (*node.Node, error) {
	if err := l.s.Match("_T"); err != nil {
		return nil, err
	}
	var children []*node.Node
	switch {
	case l.s.Conditional("TS"):
		for {
			attr, err := l.specializedAttribute()
			if err != nil {
				return nil, err
			}
			children = append(children, attr)
			l.names = l.names[:0]
			if !l.s.Conditional("_TTS") {
				break
			}
		}
		if err := l.s.Match("_T"); err != nil {
			return nil, err
		}
	case l.s.Peek(0) == 'T':
		if k, ok := legacyTopLevelAttributes[l.s.Peek(1)]; ok {
			l.s.Skip(2)
			children = append(children, node.New(k))
		}
	}

	global, err := l.global()
	if err != nil {
		return nil, err
	}
	children = append(children, global)
	if rest := l.s.Remainder(); rest != "" {
		children = append(children, node.NewText(node.KindSuffix, rest))
	}
	return node.New(node.KindGlobal, children...), nil
}

var legacyMetadata = map[rune]node.Kind{
	'P': node.KindGenericTypeMetadataPattern,
	'a': node.KindTypeMetadataAccessFunction,
	'L': node.KindTypeMetadataLazyCache,
	'm': node.KindMetaclass,
	'n': node.KindNominalTypeDescriptor,
	'f': node.KindFullTypeMetadata,
}

var legacyWitnessTables = map[rune]node.Kind{
	'P': node.KindProtocolWitnessTable,
	'G': node.KindGenericProtocolWitnessTable,
	'I': node.KindGenericProtocolWitnessTableInstantiationFunction,
	'a': node.KindProtocolWitnessTableAccessor,
}

// wrapType builds kind(type) from the next type production.
func (l *legacy) wrapType(kind node.Kind) (*node.Node, error) {
	t, err := l.typ()
	if err != nil {
		return nil, err
	}
	return node.New(kind, t), nil
}

func (l *legacy) wrapConformance(kind node.Kind) (*node.Node, error) {
	c, err := l.protocolConformance()
	if err != nil {
		return nil, err
	}
	return node.New(kind, c), nil
}

func (l *legacy) global() (*node.Node, error) {
	c1, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	c2, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}

	switch c1 {
	case 'M':
		if k, ok := legacyMetadata[c2]; ok {
			return l.wrapType(k)
		}
		if c2 == 'p' {
			p, err := l.protocolName()
			if err != nil {
				return nil, err
			}
			return node.New(node.KindProtocolDescriptor, p), nil
		}
		if err := l.s.Backtrack(1); err != nil {
			return nil, err
		}
		return l.wrapType(node.KindTypeMetadata)
	case 'P':
		if c2 != 'A' {
			return nil, l.fail()
		}
		kind := node.KindPartialApplyForwarder
		if l.s.ConditionalRune('o') {
			kind = node.KindPartialApplyObjCForwarder
		}
		if !l.s.Conditional("__T") {
			return node.New(kind), nil
		}
		inner, err := l.global()
		if err != nil {
			return nil, err
		}
		return node.New(kind, inner), nil
	case 't':
		if err := l.s.Backtrack(1); err != nil {
			return nil, err
		}
		return l.wrapType(node.KindTypeMangling)
	case 'w':
		c3, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		kind, ok := node.ValueWitnessKindFor(string([]rune{c2, c3}))
		if !ok || kind > node.DestructiveProjectEnumData {
			return nil, l.fail()
		}
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindValueWitness, node.NewIndex(node.KindIndex, uint64(kind)), t), nil
	case 'W':
		return l.witness(c2)
	case 'T':
		switch c2 {
		case 'W':
			conf, err := l.protocolConformance()
			if err != nil {
				return nil, err
			}
			entity, err := l.entity()
			if err != nil {
				return nil, err
			}
			return node.New(node.KindProtocolWitness, conf, entity), nil
		case 'R', 'r':
			kind := node.KindReabstractionThunk
			if c2 == 'R' {
				kind = node.KindReabstractionThunkHelper
			}
			var children []*node.Node
			if l.s.ConditionalRune('G') {
				sig, err := l.genericSignature(false)
				if err != nil {
					return nil, err
				}
				children = append(children, sig)
			}
			for range 2 {
				t, err := l.typ()
				if err != nil {
					return nil, err
				}
				children = append(children, t)
			}
			return node.New(kind, children...), nil
		}
	}
	if err := l.s.Backtrack(2); err != nil {
		return nil, err
	}
	return l.entity()
}

func (l *legacy) witness(c rune) (*node.Node, error) {
	if k, ok := legacyWitnessTables[c]; ok {
		return l.wrapConformance(k)
	}
	switch c {
	case 'V':
		return l.wrapType(node.KindValueWitnessTable)
	case 'v':
		r, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		directness := node.Indirect
		if r == 'd' {
			directness = node.Direct
		}
		entity, err := l.entity()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindFieldOffset, node.NewIndex(node.KindDirectness, uint64(directness)), entity), nil
	case 'l', 'L':
		kind := node.KindLazyProtocolWitnessTableAccessor
		if c == 'L' {
			kind = node.KindLazyProtocolWitnessTableCacheVariable
		}
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		conf, err := l.protocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(kind, t, conf), nil
	case 't', 'T':
		conf, err := l.protocolConformance()
		if err != nil {
			return nil, err
		}
		name, err := l.declName()
		if err != nil {
			return nil, err
		}
		if c == 't' {
			return node.New(node.KindAssociatedTypeMetadataAccessor, conf, name), nil
		}
		p, err := l.protocolName()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAssociatedTypeWitnessTableAccessor, conf, name, p), nil
	}
	return nil, l.fail()
}

func (l *legacy) specializedAttribute() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var children []*node.Node
	if l.s.ConditionalRune('q') {
		children = append(children, node.New(node.KindIsSerialized))
	}
	pass, err := l.s.ReadFunc(stream.IsDigit)
	if err != nil {
		return nil, err
	}
	children = append(children, node.NewIndex(node.KindSpecializationPassID, uint64(pass-'0')))

	switch c {
	case 'r', 'g':
		for !l.s.ConditionalRune('_') {
			t, err := l.typ()
			if err != nil {
				return nil, err
			}
			param := []*node.Node{t}
			for !l.s.ConditionalRune('_') {
				conf, err := l.protocolConformance()
				if err != nil {
					return nil, err
				}
				param = append(param, conf)
			}
			children = append(children, node.New(node.KindGenericSpecializationParam, param...))
		}
		kind := node.KindGenericSpecialization
		if c == 'r' {
			kind = node.KindGenericSpecializationNotReAbstracted
		}
		return node.New(kind, children...), nil
	case 'f':
		for !l.s.ConditionalRune('_') {
			param, err := l.funcSigSpecializationParam()
			if err != nil {
				return nil, err
			}
			children = append(children, param)
		}
		return node.New(node.KindFunctionSignatureSpecialization, children...), nil
	}
	return nil, l.fail()
}

func (l *legacy) funcSigSpecializationParam() (*node.Node, error) {
	var children []*node.Node
	switch {
	case l.s.Conditional("n_"):
	case l.s.Conditional("cp"):
		cp, err := l.funcSigConstantProp()
		if err != nil {
			return nil, err
		}
		children = append(children, cp...)
	case l.s.Conditional("cl"):
		name, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		children = append(children, funcSpecKind(node.FuncSpecClosureProp),
			node.NewText(node.KindFunctionSignatureSpecializationParamPayload, name.TextOrEmpty()))
		for !l.s.ConditionalRune('_') {
			t, err := l.typ()
			if err != nil {
				return nil, err
			}
			children = append(children, t)
		}
	case l.s.Conditional("i_"):
		children = append(children, funcSpecKind(node.FuncSpecBoxToValue))
	case l.s.Conditional("k_"):
		children = append(children, funcSpecKind(node.FuncSpecBoxToStack))
	default:
		var value node.FuncSpecParamKind
		for _, flag := range []struct {
			letter rune
			kind   node.FuncSpecParamKind
		}{
			{'d', node.FuncSpecDead},
			{'g', node.FuncSpecOwnedToGuaranteed},
			{'o', node.FuncSpecGuaranteedToOwned},
			{'s', node.FuncSpecSROA},
		} {
			if l.s.ConditionalRune(flag.letter) {
				value |= flag.kind
			}
		}
		if err := l.s.MatchRune('_'); err != nil {
			return nil, err
		}
		children = append(children, funcSpecKind(value))
	}
	return node.New(node.KindFunctionSignatureSpecializationParam, children...), nil
}

func (l *legacy) funcSigConstantProp() ([]*node.Node, error) {
	payload := func(text string) *node.Node {
		return node.NewText(node.KindFunctionSignatureSpecializationParamPayload, text)
	}
	propKind := func() (node.FuncSpecParamKind, bool) {
		switch {
		case l.s.Conditional("fr"):
			return node.FuncSpecConstantPropFunction, true
		case l.s.ConditionalRune('g'):
			return node.FuncSpecConstantPropGlobal, true
		}
		return 0, false
	}
	if kind, ok := propKind(); ok {
		name, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		if err := l.s.MatchRune('_'); err != nil {
			return nil, err
		}
		return []*node.Node{funcSpecKind(kind), payload(name.TextOrEmpty())}, nil
	}

	switch {
	case l.s.ConditionalRune('i'), l.s.Conditional("fl"):
		kind := node.FuncSpecConstantPropFloat
		if l.s.Peek(-1) == 'i' {
			kind = node.FuncSpecConstantPropInteger
		}
		text, err := l.s.ReadUntil('_')
		if err != nil {
			return nil, err
		}
		if err := l.s.MatchRune('_'); err != nil {
			return nil, err
		}
		return []*node.Node{funcSpecKind(kind), payload(text)}, nil
	case l.s.Conditional("se"):
		var encoding string
		switch {
		case l.s.ConditionalRune('0'):
			encoding = "u8"
		case l.s.ConditionalRune('1'):
			encoding = "u16"
		default:
			return nil, l.fail()
		}
		if err := l.s.MatchRune('v'); err != nil {
			return nil, err
		}
		name, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		if err := l.s.MatchRune('_'); err != nil {
			return nil, err
		}
		return []*node.Node{funcSpecKind(node.FuncSpecConstantPropString), payload(encoding), payload(name.TextOrEmpty())}, nil
	}
	return nil, l.fail()
}

func (l *legacy) protocolConformance() (*node.Node, error) {
	t, err := l.typ()
	if err != nil {
		return nil, err
	}
	p, err := l.protocolName()
	if err != nil {
		return nil, err
	}
	ctx, err := l.context()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindProtocolConformance, t, p, ctx), nil
}

func (l *legacy) protocolName() (*node.Node, error) {
	var name *node.Node
	var err error
	switch {
	case l.s.ConditionalRune('S'):
		sub, err := l.substitution()
		if err != nil {
			return nil, err
		}
		switch sub.Kind() {
		case node.KindProtocol:
			name = sub
		case node.KindModule:
			if name, err = l.protocolNameIn(sub); err != nil {
				return nil, err
			}
		default:
			return nil, l.fail()
		}
	case l.s.ConditionalRune('s'):
		if name, err = l.protocolNameIn(node.NewText(node.KindModule, node.StdlibModule)); err != nil {
			return nil, err
		}
	default:
		if name, err = l.declarationName(node.KindProtocol); err != nil {
			return nil, err
		}
	}
	return node.New(node.KindType, name), nil
}

func (l *legacy) protocolNameIn(ctx *node.Node) (*node.Node, error) {
	name, err := l.declName()
	if err != nil {
		return nil, err
	}
	p := node.New(node.KindProtocol, ctx, name)
	l.remember(p)
	return p, nil
}

func (l *legacy) nominalType() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'S':
		return l.substitution()
	case 'V':
		return l.declarationName(node.KindStructure)
	case 'O':
		return l.declarationName(node.KindEnum)
	case 'C':
		return l.declarationName(node.KindClass)
	case 'P':
		return l.declarationName(node.KindProtocol)
	}
	return nil, l.fail()
}

func (l *legacy) boundGenericArgs(nominal *node.Node) (*node.Node, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.leave()

	parent := nominal.FirstChild()
	if parent == nil {
		return nil, l.fail()
	}
	if !parent.Is(node.KindModule, node.KindFunction, node.KindExtension) {
		bound, err := l.boundGenericArgs(parent)
		if err != nil {
			return nil, err
		}
		if nominal.NumChildren() < 2 {
			return nil, l.fail()
		}
		nominal = node.New(nominal.Kind(), bound, nominal.Child(1))
	}

	var args []*node.Node
	for !l.s.ConditionalRune('_') {
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	if len(args) == 0 {
		return nominal, nil
	}
	var kind node.Kind
	switch nominal.Kind() {
	case node.KindClass:
		kind = node.KindBoundGenericClass
	case node.KindStructure:
		kind = node.KindBoundGenericStructure
	case node.KindEnum:
		kind = node.KindBoundGenericEnum
	default:
		return nil, l.fail()
	}
	return node.New(kind, node.New(node.KindType, nominal), node.New(node.KindTypeList, args...)), nil
}

var legacyAddressors = map[rune][2]node.Kind{
	'O': {node.KindOwningMutableAddressor, node.KindOwningAddressor},
	'o': {node.KindNativeOwningMutableAddressor, node.KindNativeOwningAddressor},
	'p': {node.KindNativePinningMutableAddressor, node.KindNativePinningAddressor},
	'u': {node.KindUnsafeMutableAddressor, node.KindUnsafeAddressor},
}

var legacyAccessors = map[rune]node.Kind{
	'g': node.KindGetter,
	'G': node.KindGlobalGetter,
	's': node.KindSetter,
	'm': node.KindMaterializeForSet,
	'w': node.KindWillSet,
	'W': node.KindDidSet,
}

var legacyUntypedEntities = map[rune]node.Kind{
	'Z': node.KindIsolatedDeallocator,
	'D': node.KindDeallocator,
	'd': node.KindDestructor,
	'e': node.KindIVarInitializer,
	'E': node.KindIVarDestroyer,
}

func (l *legacy) entity() (*node.Node, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.leave()

	isStatic := l.s.ConditionalRune('Z')

	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var basicKind node.Kind
	switch c {
	case 'F':
		basicKind = node.KindFunction
	case 'v':
		basicKind = node.KindVariable
	case 'I':
		basicKind = node.KindInitializer
	case 'i':
		basicKind = node.KindSubscript
	default:
		if err := l.s.Backtrack(1); err != nil {
			return nil, err
		}
		return l.nominalType()
	}

	ctx, err := l.context()
	if err != nil {
		return nil, err
	}

	var (
		kind       node.Kind
		hasType    = true
		name       *node.Node
		wrapEntity bool
	)
	c, err = l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := legacyUntypedEntities[c]; ok {
		kind, hasType = k, false
	} else if k, ok := legacyAccessors[c]; ok {
		kind, wrapEntity = k, true
		if name, err = l.declName(); err != nil {
			return nil, err
		}
	} else {
		switch {
		case c == 'C':
			kind = node.KindAllocator
		case c == 'c':
			kind = node.KindConstructor
		case c == 'a' || c == 'l':
			r, err := l.s.ReadScalar()
			if err != nil {
				return nil, err
			}
			kinds, ok := legacyAddressors[r]
			if !ok {
				return nil, l.fail()
			}
			kind, wrapEntity = kinds[0], true
			if c == 'l' {
				kind = kinds[1]
			}
			if name, err = l.declName(); err != nil {
				return nil, err
			}
		case c == 'U' || c == 'u':
			kind = node.KindExplicitClosure
			if c == 'u' {
				kind = node.KindImplicitClosure
			}
			idx, err := l.index()
			if err != nil {
				return nil, err
			}
			name = node.NewIndex(node.KindNumber, idx)
		case c == 'A' && basicKind == node.KindInitializer:
			kind, hasType = node.KindDefaultArgumentInitializer, false
			idx, err := l.index()
			if err != nil {
				return nil, err
			}
			name = node.NewIndex(node.KindNumber, idx)
		case c == 'i' && basicKind == node.KindInitializer:
			kind, hasType = node.KindInitializer, false
		case basicKind == node.KindInitializer:
			return nil, l.fail()
		default:
			if err := l.s.Backtrack(1); err != nil {
				return nil, err
			}
			kind = basicKind
			if name, err = l.declName(); err != nil {
				return nil, err
			}
		}
	}

	var entity *node.Node
	if wrapEntity {
		isSubscript := false
		switch {
		case name.Is(node.KindIdentifier) && name.TextOrEmpty() == "subscript":
			isSubscript, name = true, nil
		case name.Is(node.KindPrivateDeclName) && name.Child(1).Is(node.KindIdentifier) &&
			name.Child(1).TextOrEmpty() == "subscript":
			isSubscript, name = true, node.New(node.KindPrivateDeclName, name.FirstChild())
		}
		children := []*node.Node{ctx}
		if !isSubscript {
			children = append(children, name)
		}
		if hasType {
			t, err := l.typ()
			if err != nil {
				return nil, err
			}
			children = append(children, t)
		}
		wrapped := node.KindVariable
		if isSubscript {
			children = append(children, name)
			wrapped = node.KindSubscript
		}
		entity = node.New(kind, node.New(wrapped, children...))
	} else {
		children := []*node.Node{ctx, name}
		if hasType {
			t, err := l.typ()
			if err != nil {
				return nil, err
			}
			children = append(children, t)
		}
		entity = node.New(kind, children...)
	}
	if isStatic {
		return node.New(node.KindStatic, entity), nil
	}
	return entity, nil
}

func (l *legacy) declarationName(kind node.Kind) (*node.Node, error) {
	ctx, err := l.context()
	if err != nil {
		return nil, err
	}
	name, err := l.declName()
	if err != nil {
		return nil, err
	}
	n := node.New(kind, ctx, name)
	l.remember(n)
	return n, nil
}

func (l *legacy) context() (*node.Node, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.leave()

	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'E':
		module, err := l.module()
		if err != nil {
			return nil, err
		}
		ctx, err := l.context()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindExtension, module, ctx), nil
	case 'e':
		module, err := l.module()
		if err != nil {
			return nil, err
		}
		sig, err := l.genericSignature(false)
		if err != nil {
			return nil, err
		}
		ctx, err := l.context()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindExtension, module, ctx, sig), nil
	case 'S':
		return l.substitution()
	case 's':
		return node.NewText(node.KindModule, node.StdlibModule), nil
	case 'G':
		nominal, err := l.nominalType()
		if err != nil {
			return nil, err
		}
		return l.boundGenericArgs(nominal)
	case 'F', 'I', 'v', 'P', 'Z', 'C', 'V', 'O':
		if err := l.s.Backtrack(1); err != nil {
			return nil, err
		}
		return l.entity()
	}
	if err := l.s.Backtrack(1); err != nil {
		return nil, err
	}
	return l.module()
}

func (l *legacy) module() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'S':
		return l.substitution()
	case 's':
		return node.NewText(node.KindModule, node.StdlibModule), nil
	}
	if err := l.s.Backtrack(1); err != nil {
		return nil, err
	}
	m, err := l.identifier(node.KindModule)
	if err != nil {
		return nil, err
	}
	l.remember(m)
	return m, nil
}

// legacyStandardTypes is the Swift 3 substitution alphabet.
var legacyStandardTypes = map[rune]subst.Standard{
	'a': {Kind: node.KindStructure, Name: "Array"},
	'b': {Kind: node.KindStructure, Name: "Bool"},
	'c': {Kind: node.KindStructure, Name: "UnicodeScalar"},
	'd': {Kind: node.KindStructure, Name: "Double"},
	'f': {Kind: node.KindStructure, Name: "Float"},
	'i': {Kind: node.KindStructure, Name: "Int"},
	'V': {Kind: node.KindStructure, Name: "UnsafeRawPointer"},
	'v': {Kind: node.KindStructure, Name: "UnsafeMutableRawPointer"},
	'P': {Kind: node.KindStructure, Name: "UnsafePointer"},
	'p': {Kind: node.KindStructure, Name: "UnsafeMutablePointer"},
	'q': {Kind: node.KindEnum, Name: "Optional"},
	'Q': {Kind: node.KindEnum, Name: "ImplicitlyUnwrappedOptional"},
	'R': {Kind: node.KindStructure, Name: "UnsafeBufferPointer"},
	'r': {Kind: node.KindStructure, Name: "UnsafeMutableBufferPointer"},
	'S': {Kind: node.KindStructure, Name: "String"},
	'u': {Kind: node.KindStructure, Name: "UInt"},
}

func (l *legacy) substitution() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'o':
		return node.NewText(node.KindModule, node.ObjCModule), nil
	case 'C':
		return node.NewText(node.KindModule, node.CModule), nil
	}
	if std, ok := legacyStandardTypes[c]; ok {
		return std.Node(), nil
	}
	if err := l.s.Backtrack(1); err != nil {
		return nil, err
	}
	idx, err := l.index()
	if err != nil {
		return nil, err
	}
	if idx >= uint64(len(l.names)) {
		return nil, l.fail()
	}
	return l.names[idx], nil
}

func (l *legacy) genericSignature(pseudo bool) (*node.Node, error) {
	var children []*node.Node
	for {
		c, err := l.s.RequirePeek()
		if err != nil {
			return nil, err
		}
		if c == 'R' || c == 'r' {
			break
		}
		var count uint64
		if !l.s.ConditionalRune('z') {
			idx, err := l.index()
			if err != nil {
				return nil, err
			}
			count = idx + 1
		}
		children = append(children, node.NewIndex(node.KindDependentGenericParamCount, count))
	}
	if len(children) == 0 {
		children = append(children, node.NewIndex(node.KindDependentGenericParamCount, 1))
	}
	if !l.s.ConditionalRune('r') {
		if err := l.s.MatchRune('R'); err != nil {
			return nil, err
		}
		for !l.s.ConditionalRune('r') {
			req, err := l.genericRequirement()
			if err != nil {
				return nil, err
			}
			children = append(children, req)
		}
	}
	kind := node.KindDependentGenericSignature
	if pseudo {
		kind = node.KindDependentPseudogenericSignature
	}
	return node.New(kind, children...), nil
}

func (l *legacy) genericRequirement() (*node.Node, error) {
	constrained, err := l.constrainedType()
	if err != nil {
		return nil, err
	}
	if l.s.ConditionalRune('z') {
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindDependentGenericSameTypeRequirement, constrained, t), nil
	}
	if l.s.ConditionalRune('l') {
		return l.layoutRequirement(constrained)
	}

	c, err := l.s.RequirePeek()
	if err != nil {
		return nil, err
	}
	var constraint *node.Node
	switch c {
	case 'C':
		if constraint, err = l.typ(); err != nil {
			return nil, err
		}
	case 'S':
		l.s.Skip(1)
		sub, err := l.substitution()
		if err != nil {
			return nil, err
		}
		switch sub.Kind() {
		case node.KindProtocol, node.KindClass:
		case node.KindModule:
			if sub, err = l.protocolNameIn(sub); err != nil {
				return nil, err
			}
		default:
			return nil, l.fail()
		}
		constraint = node.New(node.KindType, sub)
	default:
		if constraint, err = l.protocolName(); err != nil {
			return nil, err
		}
	}
	return node.New(node.KindDependentGenericConformanceRequirement, constrained, constraint), nil
}

func (l *legacy) layoutRequirement(constrained *node.Node) (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	children := []*node.Node{constrained, node.NewText(node.KindIdentifier, string(c))}
	switch c {
	case 'U', 'R', 'N', 'T':
	case 'E', 'M', 'e', 'm':
		size, err := l.s.ReadInt()
		if err != nil {
			return nil, err
		}
		children = append(children, node.NewIndex(node.KindNumber, size))
		if c == 'E' || c == 'M' {
			if err := l.s.MatchRune('_'); err != nil {
				return nil, err
			}
			alignment, err := l.s.ReadInt()
			if err != nil {
				return nil, err
			}
			children = append(children, node.NewIndex(node.KindNumber, alignment))
		}
	default:
		return nil, l.fail()
	}
	return node.New(node.KindDependentGenericLayoutRequirement, children...), nil
}

func (l *legacy) constrainedType() (*node.Node, error) {
	switch {
	case l.s.ConditionalRune('w'):
		return l.associatedTypeSimple()
	case l.s.ConditionalRune('W'):
		return l.associatedTypeCompound()
	}
	return l.genericParamIndex()
}

func (l *legacy) associatedTypeSimple() (*node.Node, error) {
	base, err := l.genericParamIndex()
	if err != nil {
		return nil, err
	}
	return l.dependentMemberTypeName(node.New(node.KindType, base))
}

func (l *legacy) associatedTypeCompound() (*node.Node, error) {
	base, err := l.genericParamIndex()
	if err != nil {
		return nil, err
	}
	for !l.s.ConditionalRune('_') {
		if base, err = l.dependentMemberTypeName(node.New(node.KindType, base)); err != nil {
			return nil, err
		}
	}
	return base, nil
}

func (l *legacy) genericParamIndex() (*node.Node, error) {
	switch {
	case l.s.ConditionalRune('d'):
		depth, err := l.index()
		if err != nil {
			return nil, err
		}
		index, err := l.index()
		if err != nil {
			return nil, err
		}
		return genericParamType(depth+1, index), nil
	case l.s.ConditionalRune('x'):
		return genericParamType(0, 0), nil
	}
	index, err := l.index()
	if err != nil {
		return nil, err
	}
	return genericParamType(0, index+1), nil
}

func (l *legacy) dependentMemberTypeName(base *node.Node) (*node.Node, error) {
	var assoc *node.Node
	if l.s.ConditionalRune('S') {
		sub, err := l.substitution()
		if err != nil {
			return nil, err
		}
		assoc = sub
	} else {
		var proto *node.Node
		if l.s.ConditionalRune('P') {
			p, err := l.protocolName()
			if err != nil {
				return nil, err
			}
			proto = p
		}
		ident, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		assoc = node.New(node.KindDependentAssociatedTypeRef, ident, proto)
		l.remember(assoc)
	}
	return node.New(node.KindDependentMemberType, base, assoc), nil
}

func (l *legacy) declName() (*node.Node, error) {
	switch {
	case l.s.ConditionalRune('L'):
		idx, err := l.index()
		if err != nil {
			return nil, err
		}
		ident, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		return node.New(node.KindLocalDeclName, node.NewIndex(node.KindNumber, idx), ident), nil
	case l.s.ConditionalRune('P'):
		discriminator, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		ident, err := l.identifier(node.KindIdentifier)
		if err != nil {
			return nil, err
		}
		return node.New(node.KindPrivateDeclName, discriminator, ident), nil
	}
	return l.identifier(node.KindIdentifier)
}

func (l *legacy) index() (uint64, error) {
	if l.s.ConditionalRune('_') {
		return 0, nil
	}
	v, err := l.s.ReadInt()
	if err != nil {
		return 0, err
	}
	if v == math.MaxUint64 {
		return 0, l.fail()
	}
	if err := l.s.MatchRune('_'); err != nil {
		return 0, err
	}
	return v + 1, nil
}

var legacyFunctionTypes = map[rune]node.Kind{
	'b': node.KindObjCBlock,
	'c': node.KindCFunctionPointer,
	'F': node.KindFunctionType,
	'f': node.KindUncurriedFunctionType,
	'K': node.KindAutoClosureType,
}

var legacyBuiltinTypes = map[rune]string{
	'b': "Builtin.BridgeObject",
	'B': "Builtin.UnsafeValueBuffer",
	'O': "Builtin.UnknownObject",
	'o': "Builtin.NativeObject",
	't': "Builtin.SILToken",
	'p': "Builtin.RawPointer",
	'w': "Builtin.Word",
}

func (l *legacy) typ() (*node.Node, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.leave()

	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := legacyFunctionTypes[c]; ok {
		t, err := l.functionType(k)
		if err != nil {
			return nil, err
		}
		return node.New(node.KindType, t), nil
	}

	var t *node.Node
	switch c {
	case 'B':
		t, err = l.builtinType()
	case 'a':
		t, err = l.declarationName(node.KindTypeAlias)
	case 'C':
		t, err = l.declarationName(node.KindClass)
	case 'V':
		t, err = l.declarationName(node.KindStructure)
	case 'O':
		t, err = l.declarationName(node.KindEnum)
	case 'D':
		t, err = l.wrapType(node.KindDynamicSelf)
	case 'E':
		if err := l.s.Match("RR"); err != nil {
			return nil, err
		}
		t = node.NewText(node.KindErrorType, "")
	case 'G':
		nominal, nerr := l.nominalType()
		if nerr != nil {
			return nil, nerr
		}
		t, err = l.boundGenericArgs(nominal)
	case 'X':
		t, err = l.specialType()
	case 'M':
		t, err = l.wrapType(node.KindMetatype)
	case 'P':
		if l.s.ConditionalRune('M') {
			t, err = l.wrapType(node.KindExistentialMetatype)
			break
		}
		t, err = l.protocolList()
	case 'Q':
		switch {
		case l.s.ConditionalRune('u'):
			t = node.New(node.KindOpaqueReturnType)
		case l.s.ConditionalRune('U'):
			idx, ierr := l.index()
			if ierr != nil {
				return nil, ierr
			}
			t = node.New(node.KindOpaqueReturnType, node.NewIndex(node.KindOpaqueReturnTypeIndex, idx))
		default:
			t, err = l.archetype()
		}
	case 'q':
		t, err = l.genericParamIndex()
	case 'x':
		t = genericParamType(0, 0)
	case 'w':
		t, err = l.associatedTypeSimple()
	case 'W':
		t, err = l.associatedTypeCompound()
	case 'R':
		inner, ierr := l.typ()
		if ierr != nil {
			return nil, ierr
		}
		t = node.New(node.KindInOut, inner.Children()...)
	case 'S':
		t, err = l.substitution()
	case 'T', 't':
		t, err = l.tuple(c == 't')
	case 'u':
		sig, serr := l.genericSignature(false)
		if serr != nil {
			return nil, serr
		}
		inner, ierr := l.typ()
		if ierr != nil {
			return nil, ierr
		}
		t = node.New(node.KindDependentGenericType, sig, inner)
	default:
		return nil, l.fail()
	}
	if err != nil {
		return nil, err
	}
	return node.New(node.KindType, t), nil
}

func (l *legacy) builtinType() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if name, ok := legacyBuiltinTypes[c]; ok {
		return node.NewText(node.KindBuiltinTypeName, name), nil
	}
	switch c {
	case 'f', 'i':
		size, err := l.s.ReadInt()
		if err != nil {
			return nil, err
		}
		if err := l.s.MatchRune('_'); err != nil {
			return nil, err
		}
		prefix := "Builtin.FPIEEE"
		if c == 'i' {
			prefix = "Builtin.Int"
		}
		return node.NewText(node.KindBuiltinTypeName, prefix+strconv.FormatUint(size, 10)), nil
	case 'v':
		elements, err := l.s.ReadInt()
		if err != nil {
			return nil, err
		}
		if err := l.s.MatchRune('B'); err != nil {
			return nil, err
		}
		e, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		var elem string
		switch e {
		case 'p':
			elem = "xRawPointer"
		case 'i', 'f':
			size, err := l.s.ReadInt()
			if err != nil {
				return nil, err
			}
			if err := l.s.MatchRune('_'); err != nil {
				return nil, err
			}
			elem = "xFPIEEE"
			if e == 'i' {
				elem = "xInt"
			}
			elem += strconv.FormatUint(size, 10)
		default:
			return nil, l.fail()
		}
		return node.NewText(node.KindBuiltinTypeName, "Builtin.Vec"+strconv.FormatUint(elements, 10)+elem), nil
	}
	return nil, l.fail()
}

var legacyReferenceStorage = map[rune]node.Kind{
	'b': node.KindSilBoxType,
	'o': node.KindUnowned,
	'u': node.KindUnmanaged,
	'w': node.KindWeak,
}

func (l *legacy) specialType() (*node.Node, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := legacyReferenceStorage[c]; ok {
		return l.wrapType(k)
	}
	switch c {
	case 'B':
		return l.silBox()
	case 'M', 'P':
		kind := node.KindMetatype
		if c == 'P' {
			if !l.s.ConditionalRune('M') {
				return l.protocolList()
			}
			kind = node.KindExistentialMetatype
		}
		r, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		var repr string
		switch r {
		case 't':
			repr = "@thin"
		case 'T':
			repr = "@thick"
		case 'o':
			repr = "@objc_metatype"
		default:
			return nil, l.fail()
		}
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		return node.New(kind, node.NewText(node.KindMetatypeRepresentation, repr), t), nil
	case 'f':
		return l.functionType(node.KindThinFunctionType)
	case 'F':
		return l.implFunctionType()
	}
	return nil, l.fail()
}

func (l *legacy) silBox() (*node.Node, error) {
	var sig *node.Node
	if l.s.ConditionalRune('G') {
		var err error
		if sig, err = l.genericSignature(false); err != nil {
			return nil, err
		}
	}
	var fields []*node.Node
	for !l.s.ConditionalRune('_') {
		c, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		var kind node.Kind
		switch c {
		case 'm':
			kind = node.KindSilBoxMutableField
		case 'i':
			kind = node.KindSilBoxImmutableField
		default:
			return nil, l.fail()
		}
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		fields = append(fields, node.New(kind, t))
	}
	children := []*node.Node{node.New(node.KindSilBoxLayout, fields...)}
	if sig != nil {
		var args []*node.Node
		for !l.s.ConditionalRune('_') {
			t, err := l.typ()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}
		children = append(children, sig, node.New(node.KindTypeList, args...))
	}
	return node.New(node.KindSilBoxTypeWithLayout, children...), nil
}

func (l *legacy) protocolList() (*node.Node, error) {
	var protocols []*node.Node
	for !l.s.ConditionalRune('_') {
		p, err := l.protocolName()
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, p)
	}
	return node.New(node.KindProtocolList, node.New(node.KindTypeList, protocols...)), nil
}

var legacyCallingConventions = map[rune]string{
	'b': "@convention(block)",
	'c': "@convention(c)",
	'm': "@convention(method)",
	'O': "@convention(objc_method)",
	'w': "@convention(witness_method)",
}

func (l *legacy) implFunctionType() (*node.Node, error) {
	callee, err := l.implConvention(node.KindImplConvention)
	if err != nil {
		return nil, err
	}
	children := []*node.Node{node.NewText(node.KindImplConvention, callee)}
	if l.s.ConditionalRune('C') {
		c, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		name, ok := legacyCallingConventions[c]
		if !ok {
			return nil, l.fail()
		}
		children = append(children, node.NewText(node.KindImplFunctionAttribute, name))
	}
	switch {
	case l.s.ConditionalRune('G'):
		sig, err := l.genericSignature(false)
		if err != nil {
			return nil, err
		}
		children = append(children, sig)
	case l.s.ConditionalRune('g'):
		sig, err := l.genericSignature(true)
		if err != nil {
			return nil, err
		}
		children = append(children, sig)
	}
	if err := l.s.MatchRune('_'); err != nil {
		return nil, err
	}
	for _, kind := range []node.Kind{node.KindImplParameter, node.KindImplResult} {
		for !l.s.ConditionalRune('_') {
			p, err := l.implParameterOrResult(kind)
			if err != nil {
				return nil, err
			}
			children = append(children, p)
		}
	}
	return node.New(node.KindImplFunctionType, children...), nil
}

func (l *legacy) implConvention(kind node.Kind) (string, error) {
	c, err := l.s.ReadScalar()
	if err != nil {
		return "", err
	}
	if kind == node.KindImplErrorResult {
		kind = node.KindImplResult
	}
	switch {
	case c == 'a' && kind == node.KindImplResult:
		return "@autoreleased", nil
	case c == 'd' && kind == node.KindImplConvention:
		return "@callee_unowned", nil
	case c == 'd':
		return "@unowned", nil
	case c == 'D' && kind == node.KindImplResult:
		return "@unowned_inner_pointer", nil
	case c == 'g' && kind == node.KindImplParameter:
		return "@guaranteed", nil
	case c == 'e' && kind == node.KindImplParameter:
		return "@deallocating", nil
	case c == 'g' && kind == node.KindImplConvention:
		return "@callee_guaranteed", nil
	case c == 'i' && kind == node.KindImplParameter:
		return "@in", nil
	case c == 'i' && kind == node.KindImplResult:
		return "@out", nil
	case c == 'l' && kind == node.KindImplParameter:
		return "@inout", nil
	case c == 'o' && kind == node.KindImplConvention:
		return "@callee_owned", nil
	case c == 'o':
		return "@owned", nil
	case c == 't' && kind == node.KindImplConvention:
		return "@convention(thin)", nil
	}
	return "", l.fail()
}

func (l *legacy) implParameterOrResult(kind node.Kind) (*node.Node, error) {
	if l.s.ConditionalRune('z') {
		if kind != node.KindImplResult {
			return nil, l.fail()
		}
		kind = node.KindImplErrorResult
	}
	conv, err := l.implConvention(kind)
	if err != nil {
		return nil, err
	}
	t, err := l.typ()
	if err != nil {
		return nil, err
	}
	return node.New(kind, node.NewText(node.KindImplConvention, conv), t), nil
}

func (l *legacy) archetype() (*node.Node, error) {
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer l.leave()

	c, err := l.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var base *node.Node
	switch c {
	case 'Q':
		if base, err = l.archetype(); err != nil {
			return nil, err
		}
	case 'S':
		if base, err = l.substitution(); err != nil {
			return nil, err
		}
	case 's':
		base = node.NewText(node.KindModule, node.StdlibModule)
	default:
		return nil, l.fail()
	}
	ident, err := l.identifier(node.KindIdentifier)
	if err != nil {
		return nil, err
	}
	ref := node.New(node.KindAssociatedTypeRef, base, ident)
	l.remember(ref)
	return ref, nil
}

func (l *legacy) tuple(variadic bool) (*node.Node, error) {
	var elems []*node.Node
	for !l.s.ConditionalRune('_') {
		var children []*node.Node
		c, err := l.s.RequirePeek()
		if err != nil {
			return nil, err
		}
		if stream.IsDigit(c) || c == 'o' {
			name, err := l.identifier(node.KindTupleElementName)
			if err != nil {
				return nil, err
			}
			children = append(children, name)
		}
		t, err := l.typ()
		if err != nil {
			return nil, err
		}
		elems = append(elems, node.New(node.KindTupleElement, append(children, t)...))
	}
	if variadic && len(elems) > 0 {
		last := len(elems) - 1
		elems[last] = elems[last].InsertingChild(node.New(node.KindVariadicMarker), 0)
	}
	return node.New(node.KindTuple, elems...), nil
}

func (l *legacy) functionType(kind node.Kind) (*node.Node, error) {
	var children []*node.Node
	if l.s.ConditionalRune('z') {
		children = append(children, node.New(node.KindThrowsAnnotation))
	}
	args, err := l.typ()
	if err != nil {
		return nil, err
	}
	ret, err := l.typ()
	if err != nil {
		return nil, err
	}
	children = append(children, node.New(node.KindArgumentTuple, args), node.New(node.KindReturnType, ret))
	return node.New(kind, children...), nil
}

// identifier reads a length-prefixed name. An 'X' prefix marks a punycoded
// name and an 'o' prefix an operator, which is only valid where kind is
// the plain Identifier.
func (l *legacy) identifier(kind node.Kind) (*node.Node, error) {
	isPunycode := l.s.ConditionalRune('X')
	isOperator := false
	if l.s.ConditionalRune('o') {
		if kind != node.KindIdentifier {
			return nil, l.fail()
		}
		c, err := l.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch c {
		case 'p':
			kind = node.KindPrefixOperator
		case 'P':
			kind = node.KindPostfixOperator
		case 'i':
			kind = node.KindInfixOperator
		default:
			return nil, l.fail()
		}
		isOperator = true
	}

	n, err := l.s.ReadInt()
	if err != nil {
		return nil, err
	}
	text, err := l.s.ReadN(int(n))
	if err != nil {
		return nil, err
	}
	if isPunycode {
		if text, err = decodePunycode(text); err != nil {
			return nil, l.s.Fail(stream.PunycodeParse)
		}
	}
	if isOperator {
		op := make([]rune, 0, len(text))
		for _, c := range text {
			if c >= 0x80 {
				op = append(op, c)
				continue
			}
			r, ok := subst.OperatorChar(c)
			if !ok {
				return nil, l.fail()
			}
			op = append(op, r)
		}
		text = string(op)
	}
	return node.NewText(kind, text), nil
}
