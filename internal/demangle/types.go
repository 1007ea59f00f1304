package demangle

import (
	"strconv"
	"strings"

	"github.com/skdltmxn/swiftmangle/node"
)

const maxBuiltinTypeSize = 4096

var simpleBuiltinTypes = map[rune]string{
	'b': "Builtin.BridgeObject",
	'B': "Builtin.UnsafeValueBuffer",
	'e': "Builtin.Executor",
	'I': "Builtin.IntLiteral",
	'O': "Builtin.UnknownObject",
	'o': "Builtin.NativeObject",
	'p': "Builtin.RawPointer",
	't': "Builtin.SILToken",
	'w': "Builtin.Word",
	'c': "Builtin.RawUnsafeContinuation",
	'D': "Builtin.DefaultActorStorage",
	'd': "Builtin.NonDefaultDistributedActorStorage",
	'j': "Builtin.Job",
	'P': "Builtin.PackIndex",
}

func (d *demangler) builtinSize() (uint64, error) {
	size, err := d.demangleIndex()
	if err != nil {
		return 0, err
	}
	size--
	if size == 0 || size > maxBuiltinTypeSize {
		return 0, d.fail()
	}
	return size, nil
}

func (d *demangler) demangleBuiltinType() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if name, ok := simpleBuiltinTypes[c]; ok {
		return node.NewBuiltinType(node.KindBuiltinTypeName, name), nil
	}
	switch c {
	case 'f':
		size, err := d.builtinSize()
		if err != nil {
			return nil, err
		}
		return node.NewBuiltinType(node.KindBuiltinTypeName, "Builtin.FPIEEE"+strconv.FormatUint(size, 10)), nil
	case 'i':
		size, err := d.builtinSize()
		if err != nil {
			return nil, err
		}
		return node.NewBuiltinType(node.KindBuiltinTypeName, "Builtin.Int"+strconv.FormatUint(size, 10)), nil
	case 'v':
		elts, err := d.builtinSize()
		if err != nil {
			return nil, err
		}
		elt, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		text, ok := elt.Text()
		if !ok || elt.Kind() != node.KindBuiltinTypeName || !strings.HasPrefix(text, "Builtin.") {
			return nil, d.fail()
		}
		name := "Builtin.Vec" + strconv.FormatUint(elts, 10) + "x" + strings.TrimPrefix(text, "Builtin.")
		return node.NewBuiltinType(node.KindBuiltinTypeName, name), nil
	case 'V':
		element, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		size, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindBuiltinFixedArray, size, element), nil
	}
	return nil, d.fail()
}

func (d *demangler) demangleAnyGenericType(kind node.Kind) (*node.Node, error) {
	name, err := d.need(d.popIf(node.Kind.IsDeclName))
	if err != nil {
		return nil, err
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	t := node.NewType(kind, ctx, name)
	d.addSubstitution(t)
	return t, nil
}

func (d *demangler) demangleExtensionContext() (*node.Node, error) {
	genSig := d.popKind(node.KindDependentGenericSignature)
	module, err := d.need(d.popModule())
	if err != nil {
		return nil, err
	}
	t, err := d.popTypeAndGetAnyGeneric()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindExtension, module, t, genSig), nil
}

// opaqueParentID stands in for the mangling of the declaration that owns
// an opaque return type.
const opaqueParentID = "{ParentId}"

// setOpaqueParent tags every OpaqueReturnType below n with the owning
// declaration. Nested functions, variables and subscripts own their own
// opaque types and are not entered.
func setOpaqueParent(n *node.Node, parentID string) *node.Node {
	if n.Kind() == node.KindOpaqueReturnType {
		if n.LastChild().Is(node.KindOpaqueReturnTypeParent) {
			return n
		}
		return n.AddingChild(node.NewText(node.KindOpaqueReturnTypeParent, parentID))
	}
	if n.Is(node.KindFunction, node.KindVariable, node.KindSubscript) {
		return n
	}
	children := n.Children()
	changed := false
	for i, c := range children {
		nc := setOpaqueParent(c, parentID)
		if nc != c {
			children[i] = nc
			changed = true
		}
	}
	if !changed {
		return n
	}
	return n.WithChildren(children...)
}

func (d *demangler) demanglePlainFunction() (*node.Node, error) {
	genSig := d.popKind(node.KindDependentGenericSignature)
	t, err := d.popFunctionType(node.KindFunctionType, false)
	if err != nil {
		return nil, err
	}
	labels, err := d.popFunctionParamLabels(t)
	if err != nil {
		return nil, err
	}
	if genSig != nil {
		t = node.NewType(node.KindDependentGenericType, genSig, t)
	}
	name, err := d.need(d.popIf(node.Kind.IsDeclName))
	if err != nil {
		return nil, err
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindFunction, ctx, name, labels, setOpaqueParent(t, opaqueParentID)), nil
}

func (d *demangler) demangleRetroactiveConformance() (*node.Node, error) {
	index, err := d.demangleIndexAsName()
	if err != nil {
		return nil, err
	}
	conf, err := d.need(d.popAnyProtocolConformance())
	if err != nil {
		return nil, err
	}
	return node.New(node.KindRetroactiveConformance, index, conf), nil
}

func (d *demangler) demangleBoundGenericType() (*node.Node, error) {
	lists, conformances, err := d.demangleBoundGenerics()
	if err != nil {
		return nil, err
	}
	nominal, err := d.popTypeAndGetAnyGeneric()
	if err != nil {
		return nil, err
	}
	bound, err := d.demangleBoundGenericArgs(nominal, lists, 0)
	if err != nil {
		return nil, err
	}
	if conformances != nil {
		bound = bound.AddingChild(conformances)
	}
	t := node.New(node.KindType, bound)
	d.addSubstitution(t)
	return t, nil
}

func (d *demangler) popRetroactiveConformances() *node.Node {
	var list []*node.Node
	for {
		c := d.popKind(node.KindRetroactiveConformance)
		if c == nil {
			break
		}
		list = append(list, c)
	}
	if len(list) == 0 {
		return nil
	}
	reverse(list)
	return node.New(node.KindTypeList, list...)
}

// demangleBoundGenerics pops one type list per generic nesting level,
// innermost first, plus any retroactive conformances.
func (d *demangler) demangleBoundGenerics() ([]*node.Node, *node.Node, error) {
	conformances := d.popRetroactiveConformances()

	var lists []*node.Node
	for {
		var types []*node.Node
		for {
			t := d.popKind(node.KindType)
			if t == nil {
				break
			}
			types = append(types, t)
		}
		reverse(types)
		lists = append(lists, node.New(node.KindTypeList, types...))

		if d.popKind(node.KindEmptyList) != nil {
			break
		}
		if d.popKind(node.KindFirstElementMarker) == nil {
			return nil, nil, d.fail()
		}
	}
	return lists, conformances, nil
}

func consumesGenericArgs(k node.Kind) bool {
	switch k {
	case node.KindVariable, node.KindSubscript, node.KindImplicitClosure, node.KindExplicitClosure,
		node.KindDefaultArgumentInitializer, node.KindInitializer,
		node.KindPropertyWrapperBackingInitializer, node.KindPropertyWrapperInitFromProjectedValue,
		node.KindStatic:
		return false
	}
	return true
}

func (d *demangler) demangleBoundGenericArgs(nominal *node.Node, lists []*node.Node, index int) (*node.Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	if nominal.Is(node.KindTypeSymbolicReference, node.KindProtocolSymbolicReference) {
		var remaining []*node.Node
		for i := len(lists) - 1; i >= 0; i-- {
			remaining = append(remaining, lists[i].Children()...)
		}
		return node.New(node.KindBoundGenericOtherNominalType,
			node.New(node.KindType, nominal),
			node.New(node.KindTypeList, remaining...)), nil
	}

	context, err := d.need(nominal.FirstChild())
	if err != nil {
		return nil, err
	}
	consumes := consumesGenericArgs(nominal.Kind())
	if index >= len(lists) {
		return nil, d.fail()
	}
	args := lists[index]

	n := nominal
	offset := index
	if consumes {
		offset++
	}
	if offset < len(lists) {
		var parent *node.Node
		if context.Kind() == node.KindExtension {
			extended, err := d.need(context.Child(1))
			if err != nil {
				return nil, err
			}
			bound, err := d.demangleBoundGenericArgs(extended, lists, offset)
			if err != nil {
				return nil, err
			}
			parent = node.New(node.KindExtension, context.FirstChild(), bound, context.Child(2))
		} else {
			if parent, err = d.demangleBoundGenericArgs(context, lists, offset); err != nil {
				return nil, err
			}
		}
		n = nominal.WithChild(0, parent)
	}

	if !consumes || args.NumChildren() == 0 {
		return n, nil
	}

	var kind node.Kind
	switch n.Kind() {
	case node.KindClass:
		kind = node.KindBoundGenericClass
	case node.KindStructure:
		kind = node.KindBoundGenericStructure
	case node.KindEnum:
		kind = node.KindBoundGenericEnum
	case node.KindProtocol:
		kind = node.KindBoundGenericProtocol
	case node.KindOtherNominalType:
		kind = node.KindBoundGenericOtherNominalType
	case node.KindTypeAlias:
		kind = node.KindBoundGenericTypeAlias
	case node.KindFunction, node.KindConstructor:
		return node.New(node.KindBoundGenericFunction, n, args), nil
	default:
		return nil, d.fail()
	}
	return node.New(kind, node.New(node.KindType, n), args), nil
}

var implParamConventions = map[rune]string{
	'i': "@in",
	'c': "@in_constant",
	'l': "@inout",
	'b': "@inout_aliasable",
	'n': "@in_guaranteed",
	'X': "@in_cxx",
	'x': "@owned",
	'g': "@guaranteed",
	'e': "@deallocating",
	'y': "@unowned",
	'v': "@pack_owned",
	'p': "@pack_guaranteed",
	'm': "@pack_inout",
}

var implResultConventions = map[rune]string{
	'r': "@out",
	'o': "@owned",
	'd': "@unowned",
	'u': "@unowned_inner_pointer",
	'a': "@autoreleased",
	'k': "@pack_out",
}

// demangleImplConvention reads one convention letter from table. It returns
// nil, without consuming, when the next scalar is not in the table.
func (d *demangler) demangleImplConvention(kind node.Kind, table map[rune]string) (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	attr, ok := table[c]
	if !ok {
		return nil, d.s.Backtrack(1)
	}
	return node.New(kind, node.NewText(node.KindImplConvention, attr)), nil
}

func (d *demangler) demangleImplResultDifferentiability() *node.Node {
	text := ""
	if d.s.ConditionalRune('w') {
		text = "@noDerivative"
	}
	return node.NewText(node.KindImplParameterResultDifferentiability, text)
}

func (d *demangler) demangleClangType() (*node.Node, error) {
	n, ok := d.demangleNatural()
	if !ok {
		return nil, d.fail()
	}
	text, err := d.s.ReadN(int(n))
	if err != nil {
		return nil, err
	}
	return node.NewText(node.KindClangType, text), nil
}

func (d *demangler) demangleImplFunctionType() (*node.Node, error) {
	var children []*node.Node
	if d.s.ConditionalRune('s') {
		lists, conformances, err := d.demangleBoundGenerics()
		if err != nil {
			return nil, err
		}
		sig, err := d.need(d.popKind(node.KindDependentGenericSignature))
		if err != nil {
			return nil, err
		}
		children = append(children, node.New(node.KindImplPatternSubstitutions, sig, lists[0], conformances))
	}
	if d.s.ConditionalRune('I') {
		lists, conformances, err := d.demangleBoundGenerics()
		if err != nil {
			return nil, err
		}
		children = append(children, node.New(node.KindImplInvocationSubstitutions, lists[0], conformances))
	}

	genSig := d.popKind(node.KindDependentGenericSignature)
	if genSig != nil && d.s.ConditionalRune('P') {
		genSig = genSig.ChangingKind(node.KindDependentPseudogenericSignature)
	}
	if d.s.ConditionalRune('e') {
		children = append(children, node.New(node.KindImplEscaping))
	}
	if d.s.ConditionalRune('A') {
		children = append(children, node.New(node.KindImplErasedIsolation))
	}
	if r := d.s.Peek(0); node.IsDifferentiabilityKind(r) {
		d.s.Skip(1)
		children = append(children, node.NewIndex(node.KindImplDifferentiabilityKind, uint64(r)))
	}

	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var calleeAttr string
	switch c {
	case 'y':
		calleeAttr = "@callee_unowned"
	case 'g':
		calleeAttr = "@callee_guaranteed"
	case 'x':
		calleeAttr = "@callee_owned"
	case 't':
		calleeAttr = "@convention(thin)"
	default:
		return nil, d.fail()
	}
	children = append(children, node.NewText(node.KindImplConvention, calleeAttr))

	conv, err := d.demangleImplFunctionConvention()
	if err != nil {
		return nil, err
	}
	children = append(children, conv)

	switch {
	case d.s.ConditionalRune('A'):
		children = append(children, node.NewText(node.KindImplCoroutineKind, "yield_once"))
	case d.s.ConditionalRune('I'):
		children = append(children, node.NewText(node.KindImplCoroutineKind, "yield_once_2"))
	case d.s.ConditionalRune('G'):
		children = append(children, node.NewText(node.KindImplCoroutineKind, "yield_many"))
	}
	if d.s.ConditionalRune('h') {
		children = append(children, node.NewText(node.KindImplFunctionAttribute, "@Sendable"))
	}
	if d.s.ConditionalRune('H') {
		children = append(children, node.NewText(node.KindImplFunctionAttribute, "@async"))
	}
	if d.s.ConditionalRune('T') {
		children = append(children, node.New(node.KindImplSendingResult))
	}
	children = append(children, genSig)

	numTypesToAdd := 0
	for {
		param, err := d.demangleImplConvention(node.KindImplParameter, implParamConventions)
		if err != nil {
			return nil, err
		}
		if param == nil {
			break
		}
		extra := []*node.Node{d.demangleImplResultDifferentiability()}
		if d.s.ConditionalRune('T') {
			extra = append(extra, node.NewText(node.KindImplParameterSending, "sending"))
		}
		if d.s.ConditionalRune('I') {
			extra = append(extra, node.NewText(node.KindImplParameterIsolated, "isolated"))
		}
		if d.s.ConditionalRune('L') {
			extra = append(extra, node.NewText(node.KindImplParameterImplicitLeading, "sil_implicit_leading_param"))
		}
		children = append(children, param.AddingChildren(extra...))
		numTypesToAdd++
	}
	for {
		result, err := d.demangleImplConvention(node.KindImplResult, implResultConventions)
		if err != nil {
			return nil, err
		}
		if result == nil {
			break
		}
		children = append(children, result.AddingChild(d.demangleImplResultDifferentiability()))
		numTypesToAdd++
	}
	for d.s.ConditionalRune('Y') {
		y, err := d.demangleImplConvention(node.KindImplYield, implParamConventions)
		if err != nil {
			return nil, err
		}
		if y == nil {
			return nil, d.fail()
		}
		children = append(children, y)
		numTypesToAdd++
	}
	if d.s.ConditionalRune('z') {
		e, err := d.demangleImplConvention(node.KindImplErrorResult, implResultConventions)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, d.fail()
		}
		children = append(children, e)
		numTypesToAdd++
	}
	if err := d.s.MatchRune('_'); err != nil {
		return nil, err
	}
	children = compact(children)
	for i := range numTypesToAdd {
		idx := len(children) - i - 1
		if idx < 0 {
			return nil, d.fail()
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		children[idx] = children[idx].AddingChild(t)
	}
	return node.NewType(node.KindImplFunctionType, children...), nil
}

// compact drops nil entries.
func compact(ns []*node.Node) []*node.Node {
	out := ns[:0]
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (d *demangler) demangleImplFunctionConvention() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var name string
	hasClangType := false
	switch c {
	case 'B':
		name = "block"
	case 'C':
		name = "c"
	case 'z':
		next, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch next {
		case 'B':
			name, hasClangType = "block", true
		case 'C':
			name, hasClangType = "c", true
		default:
			return nil, d.s.Backtrack(2)
		}
	case 'M':
		name = "method"
	case 'O':
		name = "objc_method"
	case 'K':
		name = "closure"
	case 'W':
		name = "witness_method"
	default:
		return nil, d.s.Backtrack(1)
	}
	children := []*node.Node{node.NewText(node.KindImplFunctionConventionName, name)}
	if hasClangType {
		ct, err := d.demangleClangType()
		if err != nil {
			return nil, err
		}
		children = append(children, ct)
	}
	return node.New(node.KindImplFunctionConvention, children...), nil
}
