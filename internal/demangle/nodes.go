package demangle

import (
	"github.com/skdltmxn/swiftmangle/internal/punycode"
	"github.com/skdltmxn/swiftmangle/node"
)

func (d *demangler) intern(n *node.Node) *node.Node {
	if d.interner == nil || n == nil {
		return n
	}
	return d.interner.Intern(n)
}

func (d *demangler) push(n *node.Node) {
	d.nameStack = append(d.nameStack, d.intern(n))
}

func (d *demangler) pop() *node.Node {
	if len(d.nameStack) == 0 {
		return nil
	}
	n := d.nameStack[len(d.nameStack)-1]
	d.nameStack[len(d.nameStack)-1] = nil
	d.nameStack = d.nameStack[:len(d.nameStack)-1]
	return n
}

func (d *demangler) top() *node.Node {
	if len(d.nameStack) == 0 {
		return nil
	}
	return d.nameStack[len(d.nameStack)-1]
}

func (d *demangler) popKind(kind node.Kind) *node.Node {
	if t := d.top(); t != nil && t.Kind() == kind {
		return d.pop()
	}
	return nil
}

func (d *demangler) popIf(pred func(node.Kind) bool) *node.Node {
	if t := d.top(); t != nil && pred(t.Kind()) {
		return d.pop()
	}
	return nil
}

func (d *demangler) addSubstitution(n *node.Node) {
	d.substitutions = append(d.substitutions, d.intern(n))
}

func (d *demangler) substitutionAt(i int) *node.Node {
	if i < 0 || i >= len(d.substitutions) {
		return nil
	}
	return d.substitutions[i]
}

// wrapPopped builds kind(child), failing when child is missing.
func (d *demangler) wrapPopped(kind node.Kind, child *node.Node) (*node.Node, error) {
	if child == nil {
		return nil, d.fail()
	}
	return node.New(kind, child), nil
}

// typeWithPoppedChild builds Type(kind(c)) where c is the payload of the
// Type on top of the stack.
func (d *demangler) typeWithPoppedChild(kind node.Kind) (*node.Node, error) {
	c, err := d.popTypeAndGetChild()
	if err != nil {
		return nil, err
	}
	return node.NewType(kind, c), nil
}

func genericParamType(depth, index uint64) *node.Node {
	return node.New(node.KindDependentGenericParamType,
		node.NewIndex(node.KindIndex, depth),
		node.NewIndex(node.KindIndex, index))
}

func decodePunycode(s string) (string, error) {
	return punycode.Decode(s)
}

func (d *demangler) popFunctionType(kind node.Kind, hasClangType bool) (*node.Node, error) {
	var children []*node.Node
	if hasClangType {
		ct, err := d.demangleClangType()
		if err != nil {
			return nil, err
		}
		children = append(children, ct)
	}
	if n := d.popKind(node.KindSendingResultFunctionType); n != nil {
		children = append(children, n)
	}
	if n := d.popIf(func(k node.Kind) bool {
		return k == node.KindGlobalActorFunctionType || k == node.KindIsolatedAnyFunctionType ||
			k == node.KindNonIsolatedCallerFunctionType
	}); n != nil {
		children = append(children, n)
	}
	if n := d.popKind(node.KindDifferentiableFunctionType); n != nil {
		children = append(children, n)
	}
	if n := d.popIf(func(k node.Kind) bool {
		return k == node.KindThrowsAnnotation || k == node.KindTypedThrowsAnnotation
	}); n != nil {
		children = append(children, n)
	}
	if n := d.popKind(node.KindConcurrentFunctionType); n != nil {
		children = append(children, n)
	}
	if n := d.popKind(node.KindAsyncAnnotation); n != nil {
		children = append(children, n)
	}
	args, err := d.popFunctionParams(node.KindArgumentTuple)
	if err != nil {
		return nil, err
	}
	ret, err := d.popFunctionParams(node.KindReturnType)
	if err != nil {
		return nil, err
	}
	children = append(children, args, ret)
	return node.New(node.KindType, node.New(kind, children...)), nil
}

func (d *demangler) popFunctionParams(kind node.Kind) (*node.Node, error) {
	if d.popKind(node.KindEmptyList) != nil {
		return node.New(kind, node.New(node.KindType, node.New(node.KindTuple))), nil
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.New(kind, t), nil
}

func (d *demangler) getLabel(params *node.Node, idx int) (*node.Node, error) {
	if d.oldFunctionTypes {
		param, err := d.need(params.Child(idx))
		if err != nil {
			return nil, err
		}
		if label := param.FirstChildOfKind(node.KindTupleElementName); label != nil {
			return node.NewText(node.KindIdentifier, label.TextOrEmpty()), nil
		}
		return node.New(node.KindFirstElementMarker), nil
	}
	return d.need(d.pop())
}

// Modifiers that may precede the argument tuple of a function type, in
// child order.
var functionTypeModifiers = [][]node.Kind{
	{node.KindSendingResultFunctionType},
	{node.KindGlobalActorFunctionType},
	{node.KindIsolatedAnyFunctionType},
	{node.KindNonIsolatedCallerFunctionType},
	{node.KindDifferentiableFunctionType},
	{node.KindThrowsAnnotation, node.KindTypedThrowsAnnotation},
	{node.KindConcurrentFunctionType},
	{node.KindAsyncAnnotation},
}

func (d *demangler) popFunctionParamLabels(t *node.Node) (*node.Node, error) {
	if !d.oldFunctionTypes && d.popKind(node.KindEmptyList) != nil {
		return node.New(node.KindLabelList), nil
	}
	if t.Kind() != node.KindType {
		return nil, nil
	}

	funcType, err := d.need(t.FirstChild())
	if err != nil {
		return nil, err
	}
	if funcType.Kind() == node.KindDependentGenericType {
		if funcType, err = d.need(funcType.Child(1).FirstChild()); err != nil {
			return nil, err
		}
	}
	if !funcType.Is(node.KindFunctionType, node.KindNoEscapeFunctionType) {
		return nil, nil
	}

	first := 0
	for _, kinds := range functionTypeModifiers {
		if funcType.Child(first).Is(kinds...) {
			first++
		}
	}

	paramType, err := d.need(funcType.Child(first))
	if err != nil {
		return nil, err
	}
	if err := d.check(paramType.Kind() == node.KindArgumentTuple); err != nil {
		return nil, err
	}
	paramsType, err := d.need(paramType.FirstChild())
	if err != nil {
		return nil, err
	}
	if err := d.check(paramsType.Kind() == node.KindType); err != nil {
		return nil, err
	}

	params := paramsType.FirstChild()
	numParams := 1
	if params.Is(node.KindTuple) {
		numParams = params.NumChildren()
	}
	if numParams == 0 {
		return nil, nil
	}

	tuple := paramType.FirstChild().FirstChild()
	if d.oldFunctionTypes && !tuple.Is(node.KindTuple) {
		return node.New(node.KindLabelList), nil
	}

	hasLabels := false
	labels := make([]*node.Node, 0, numParams)
	for i := range numParams {
		label, err := d.getLabel(tuple, i)
		if err != nil {
			return nil, err
		}
		if err := d.check(label.Is(node.KindIdentifier, node.KindFirstElementMarker)); err != nil {
			return nil, err
		}
		labels = append(labels, label)
		hasLabels = hasLabels || label.Kind() != node.KindFirstElementMarker
	}
	if !hasLabels {
		return node.New(node.KindLabelList), nil
	}
	if !d.oldFunctionTypes {
		for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
			labels[i], labels[j] = labels[j], labels[i]
		}
	}
	return node.New(node.KindLabelList, labels...), nil
}

func (d *demangler) popTuple() (*node.Node, error) {
	var elems []*node.Node
	if d.popKind(node.KindEmptyList) == nil {
		for {
			firstElem := d.popKind(node.KindFirstElementMarker) != nil
			var children []*node.Node
			if v := d.popKind(node.KindVariadicMarker); v != nil {
				children = append(children, v)
			}
			if ident := d.popKind(node.KindIdentifier); ident != nil && ident.HasText() {
				children = append(children, node.NewText(node.KindTupleElementName, ident.TextOrEmpty()))
			}
			t, err := d.need(d.popKind(node.KindType))
			if err != nil {
				return nil, err
			}
			children = append(children, t)
			elems = append(elems, node.New(node.KindTupleElement, children...))
			if firstElem {
				break
			}
		}
		reverse(elems)
	}
	return node.New(node.KindType, node.New(node.KindTuple, elems...)), nil
}

func reverse(ns []*node.Node) {
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
}

func (d *demangler) popPack(kind node.Kind) (*node.Node, error) {
	if d.popKind(node.KindEmptyList) != nil {
		return node.New(node.KindType, node.New(node.KindPack)), nil
	}
	var children []*node.Node
	for {
		firstElem := d.popKind(node.KindFirstElementMarker) != nil
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		children = append(children, t)
		if firstElem {
			break
		}
	}
	reverse(children)
	return node.New(node.KindType, node.New(kind, children...)), nil
}

func (d *demangler) popSilPack() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'd':
		return d.popPack(node.KindSilPackDirect)
	case 'i':
		return d.popPack(node.KindSilPackIndirect)
	}
	return nil, d.fail()
}

func (d *demangler) popTypeList() (*node.Node, error) {
	var children []*node.Node
	if d.popKind(node.KindEmptyList) == nil {
		for {
			firstElem := d.popKind(node.KindFirstElementMarker) != nil
			t, err := d.need(d.popKind(node.KindType))
			if err != nil {
				return nil, err
			}
			children = append(children, t)
			if firstElem {
				break
			}
		}
		reverse(children)
	}
	return node.New(node.KindTypeList, children...), nil
}

func (d *demangler) popProtocol() (*node.Node, error) {
	if t := d.popKind(node.KindType); t != nil {
		if err := d.check(t.FirstChild().IsProtocol()); err != nil {
			return nil, err
		}
		return t, nil
	}
	if ref := d.popKind(node.KindProtocolSymbolicReference); ref != nil {
		return ref, nil
	}
	if ref := d.popKind(node.KindObjectiveCProtocolSymbolicReference); ref != nil {
		return ref, nil
	}
	name, err := d.need(d.popIf(node.Kind.IsDeclName))
	if err != nil {
		return nil, err
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	return node.NewType(node.KindProtocol, ctx, name), nil
}

func (d *demangler) popAnyProtocolConformanceList() (*node.Node, error) {
	var children []*node.Node
	if d.popKind(node.KindEmptyList) == nil {
		for {
			firstElem := d.popKind(node.KindFirstElementMarker) != nil
			c, err := d.need(d.popAnyProtocolConformance())
			if err != nil {
				return nil, err
			}
			children = append(children, c)
			if firstElem {
				break
			}
		}
		reverse(children)
	}
	return node.New(node.KindAnyProtocolConformanceList, children...), nil
}

func (d *demangler) popAnyProtocolConformance() *node.Node {
	return d.popIf(func(k node.Kind) bool {
		switch k {
		case node.KindConcreteProtocolConformance, node.KindPackProtocolConformance,
			node.KindDependentProtocolConformanceRoot, node.KindDependentProtocolConformanceInherited,
			node.KindDependentProtocolConformanceAssociated:
			return true
		}
		return false
	})
}

func (d *demangler) demangleRetroactiveProtocolConformanceRef() (*node.Node, error) {
	module, err := d.need(d.popModule())
	if err != nil {
		return nil, err
	}
	proto, err := d.popProtocol()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindProtocolConformanceRefInOtherModule, proto, module), nil
}

func (d *demangler) demangleConcreteProtocolConformance() (*node.Node, error) {
	conditional, err := d.popAnyProtocolConformanceList()
	if err != nil {
		return nil, err
	}
	ref := d.popKind(node.KindProtocolConformanceRefInTypeModule)
	if ref == nil {
		ref = d.popKind(node.KindProtocolConformanceRefInProtocolModule)
	}
	if ref == nil {
		if ref, err = d.demangleRetroactiveProtocolConformanceRef(); err != nil {
			return nil, err
		}
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindConcreteProtocolConformance, t, ref, conditional), nil
}

func (d *demangler) popDependentProtocolConformance() *node.Node {
	return d.popIf(func(k node.Kind) bool {
		switch k {
		case node.KindDependentProtocolConformanceRoot, node.KindDependentProtocolConformanceInherited,
			node.KindDependentProtocolConformanceAssociated:
			return true
		}
		return false
	})
}

func (d *demangler) demangleDependentProtocolConformanceRoot() (*node.Node, error) {
	index, err := d.demangleDependentConformanceIndex()
	if err != nil {
		return nil, err
	}
	proto, err := d.popProtocol()
	if err != nil {
		return nil, err
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentProtocolConformanceRoot, t, proto, index), nil
}

func (d *demangler) demangleDependentProtocolConformanceInherited() (*node.Node, error) {
	index, err := d.demangleDependentConformanceIndex()
	if err != nil {
		return nil, err
	}
	proto, err := d.popProtocol()
	if err != nil {
		return nil, err
	}
	nested, err := d.need(d.popDependentProtocolConformance())
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentProtocolConformanceInherited, nested, proto, index), nil
}

func (d *demangler) popDependentAssociatedConformance() (*node.Node, error) {
	proto, err := d.popProtocol()
	if err != nil {
		return nil, err
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentAssociatedConformance, t, proto), nil
}

func (d *demangler) demangleDependentProtocolConformanceAssociated() (*node.Node, error) {
	index, err := d.demangleDependentConformanceIndex()
	if err != nil {
		return nil, err
	}
	assoc, err := d.popDependentAssociatedConformance()
	if err != nil {
		return nil, err
	}
	nested, err := d.need(d.popDependentProtocolConformance())
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentProtocolConformanceAssociated, nested, assoc, index), nil
}

func (d *demangler) demangleDependentConformanceIndex() (*node.Node, error) {
	index, err := d.demangleIndex()
	if err != nil {
		return nil, err
	}
	if index == 1 {
		return node.New(node.KindUnknownIndex), nil
	}
	return node.NewIndex(node.KindIndex, index-2), nil
}

func (d *demangler) demangleDependentProtocolConformanceOpaque() (*node.Node, error) {
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	conf, err := d.need(d.popDependentProtocolConformance())
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentProtocolConformanceOpaque, conf, t), nil
}

func (d *demangler) popModule() *node.Node {
	if ident := d.popKind(node.KindIdentifier); ident != nil {
		return ident.ChangingKind(node.KindModule)
	}
	return d.popKind(node.KindModule)
}

func (d *demangler) popContext() (*node.Node, error) {
	if mod := d.popModule(); mod != nil {
		return mod, nil
	}
	if t := d.popKind(node.KindType); t != nil {
		c, err := d.need(t.FirstChild())
		if err != nil {
			return nil, err
		}
		if err := d.check(c.Kind().IsContext()); err != nil {
			return nil, err
		}
		return c, nil
	}
	return d.need(d.popIf(node.Kind.IsContext))
}

func (d *demangler) popTypeAndGetChild() (*node.Node, error) {
	t := d.popKind(node.KindType)
	if t == nil {
		return nil, d.fail()
	}
	return d.need(t.FirstChild())
}

func (d *demangler) popTypeAndGetAnyGeneric() (*node.Node, error) {
	c, err := d.popTypeAndGetChild()
	if err != nil {
		return nil, err
	}
	if err := d.check(c.Kind().IsAnyGeneric()); err != nil {
		return nil, err
	}
	return c, nil
}

func (d *demangler) popAssociatedTypeName() (*node.Node, error) {
	var proto *node.Node
	if p := d.popKind(node.KindType); p != nil {
		if err := d.check(p.IsProtocol()); err != nil {
			return nil, err
		}
		proto = p
	} else if p := d.popKind(node.KindProtocolSymbolicReference); p != nil {
		proto = p
	} else {
		proto = d.popKind(node.KindObjectiveCProtocolSymbolicReference)
	}

	id, err := d.need(d.popKind(node.KindIdentifier))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindDependentAssociatedTypeRef, id, proto), nil
}

func (d *demangler) popAssociatedTypePath() (*node.Node, error) {
	var path []*node.Node
	for {
		firstElem := d.popKind(node.KindFirstElementMarker) != nil
		name, err := d.popAssociatedTypeName()
		if err != nil {
			return nil, err
		}
		path = append(path, name)
		if firstElem {
			break
		}
	}
	reverse(path)
	return node.New(node.KindAssocTypePath, path...), nil
}

func (d *demangler) popProtocolConformance() (*node.Node, error) {
	genSig := d.popKind(node.KindDependentGenericSignature)
	module, err := d.need(d.popModule())
	if err != nil {
		return nil, err
	}
	proto, err := d.popProtocol()
	if err != nil {
		return nil, err
	}
	t := d.popKind(node.KindType)
	var ident *node.Node
	if t == nil {
		ident = d.popKind(node.KindIdentifier)
		t = d.popKind(node.KindType)
	}
	if t == nil {
		return nil, d.fail()
	}
	if genSig != nil {
		t = node.NewType(node.KindDependentGenericType, genSig, t)
	}
	return node.New(node.KindProtocolConformance, t, proto, module, ident), nil
}
