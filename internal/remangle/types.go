package remangle

import (
	"strings"

	"github.com/skdltmxn/swiftmangle/node"
)

func (r *remangler) mangleAnyNominalType(n *node.Node, depth int) error {
	if depth > MaxDepth {
		return newError(TooComplex, n)
	}
	if isSpecialized(n) {
		e, found := r.trySubstitution(n, false)
		if found {
			return nil
		}
		unbound := unspecialized(n)
		if unbound == nil {
			return invalid(n, "cannot strip generic arguments")
		}
		if err := r.mangleAnyNominalType(unbound, depth+1); err != nil {
			return err
		}
		sep := byte('y')
		if err := r.mangleGenericArgs(n, &sep, depth+1, false); err != nil {
			return err
		}
		if n.NumChildren() == 3 {
			if err := r.mangleChildren(n.Child(2), depth+1); err != nil {
				return err
			}
		}
		r.appendByte('G')
		r.addSubstitution(e)
		return nil
	}
	switch n.Kind() {
	case node.KindStructure:
		return r.mangleAnyGenericType(n, "V", depth)
	case node.KindEnum:
		return r.mangleAnyGenericType(n, "O", depth)
	case node.KindClass:
		return r.mangleAnyGenericType(n, "C", depth)
	case node.KindOtherNominalType:
		return r.mangleAnyGenericType(n, "XY", depth)
	case node.KindTypeAlias:
		return r.mangleAnyGenericType(n, "a", depth)
	case node.KindTypeSymbolicReference:
		return r.mangleSymbolicReference(n, depth)
	}
	return &Error{Kind: BadNominalTypeKind, Node: n}
}

func (r *remangler) mangleAnyGenericType(n *node.Node, op string, depth int) error {
	e, found := r.trySubstitution(n, false)
	if found {
		return nil
	}
	if err := r.mangleChildren(n, depth+1); err != nil {
		return err
	}
	r.append(op)
	r.addSubstitution(e)
	return nil
}

func (r *remangler) mangleBoundGenericEnum(n *node.Node, depth int) error {
	enum, err := path(n, 0, 0)
	if err != nil {
		return err
	}
	if !enum.Child(0).IsSwiftModule() || !enum.Child(1).Is(node.KindIdentifier) ||
		enum.Child(1).TextOrEmpty() != "Optional" {
		return r.mangleAnyNominalType(n, depth+1)
	}
	e, found := r.trySubstitution(n, false)
	if found {
		return nil
	}
	args, err := child(n, 1)
	if err != nil {
		return err
	}
	if err := r.mangleSingleChild(args, depth+1); err != nil {
		return err
	}
	r.append("Sg")
	r.addSubstitution(e)
	return nil
}

func (r *remangler) mangleBoundGenericFunction(n *node.Node, depth int) error {
	e, found := r.trySubstitution(n, false)
	if found {
		return nil
	}
	fn := unspecialized(n)
	if fn == nil {
		return invalid(n, "cannot strip generic arguments")
	}
	if err := r.mangleFunction(fn, depth+1); err != nil {
		return err
	}
	sep := byte('y')
	if err := r.mangleGenericArgs(n, &sep, depth+1, false); err != nil {
		return err
	}
	r.appendByte('G')
	r.addSubstitution(e)
	return nil
}

// isSpecialized reports whether the context chain of n reaches a bound
// generic type.
func isSpecialized(n *node.Node) bool {
	for n != nil {
		switch n.Kind() {
		case node.KindBoundGenericStructure, node.KindBoundGenericEnum, node.KindBoundGenericClass,
			node.KindBoundGenericOtherNominalType, node.KindBoundGenericTypeAlias,
			node.KindBoundGenericProtocol, node.KindBoundGenericFunction, node.KindConstrainedExistential:
			return true
		case node.KindStructure, node.KindEnum, node.KindClass, node.KindTypeAlias,
			node.KindOtherNominalType, node.KindProtocol:
			n = n.Child(0)
		case node.KindExtension:
			n = n.Child(1)
		default:
			if !isFunctionLike(n.Kind()) {
				return false
			}
			n = n.Child(0)
		}
	}
	return false
}

// isFunctionLike reports declarations whose generic arguments are only
// spelled when the whole substitution map is.
func isFunctionLike(k node.Kind) bool {
	switch k {
	case node.KindFunction, node.KindGetter, node.KindSetter, node.KindWillSet, node.KindDidSet,
		node.KindReadAccessor, node.KindModifyAccessor, node.KindUnsafeAddressor,
		node.KindUnsafeMutableAddressor, node.KindAllocator, node.KindConstructor,
		node.KindDestructor, node.KindVariable, node.KindSubscript, node.KindExplicitClosure,
		node.KindImplicitClosure, node.KindInitializer, node.KindPropertyWrapperBackingInitializer,
		node.KindPropertyWrapperInitFromProjectedValue, node.KindDefaultArgumentInitializer,
		node.KindStatic:
		return true
	}
	return false
}

// unspecialized strips the bound generic wrappers from the context chain
// of n. It returns nil when n has no unspecialized form.
func unspecialized(n *node.Node) *node.Node {
	k := n.Kind()
	switch {
	case isFunctionLike(k), k == node.KindStructure, k == node.KindEnum, k == node.KindClass,
		k == node.KindTypeAlias, k == node.KindOtherNominalType:
		if n.NumChildren() == 0 {
			return nil
		}
		keep := 2
		if isFunctionLike(k) {
			keep = n.NumChildren()
		}
		parent := n.Child(0)
		if isSpecialized(parent) {
			if parent = unspecialized(parent); parent == nil {
				return nil
			}
		}
		children := []*node.Node{parent}
		for i := 1; i < keep && i < n.NumChildren(); i++ {
			children = append(children, n.Child(i))
		}
		return node.New(k, children...)

	case k == node.KindBoundGenericStructure, k == node.KindBoundGenericEnum,
		k == node.KindBoundGenericClass, k == node.KindBoundGenericProtocol,
		k == node.KindBoundGenericOtherNominalType, k == node.KindBoundGenericTypeAlias:
		t := n.Child(0)
		if !t.Is(node.KindType) || t.NumChildren() == 0 {
			return nil
		}
		nominal := t.Child(0)
		if isSpecialized(nominal) {
			return unspecialized(nominal)
		}
		return nominal

	case k == node.KindConstrainedExistential:
		t := n.Child(0)
		if !t.Is(node.KindType) {
			return nil
		}
		return t

	case k == node.KindBoundGenericFunction:
		fn := n.Child(0)
		if !fn.Is(node.KindFunction, node.KindConstructor) {
			return nil
		}
		if isSpecialized(fn) {
			return unspecialized(fn)
		}
		return fn

	case k == node.KindExtension:
		if n.NumChildren() < 2 {
			return nil
		}
		if !isSpecialized(n.Child(1)) {
			return n
		}
		parent := unspecialized(n.Child(1))
		if parent == nil {
			return nil
		}
		return node.New(node.KindExtension, n.Child(0), parent, n.Child(2))
	}
	return nil
}

// consumesGenericArgs reports whether a declaration level owns a generic
// argument list of its own.
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

// mangleGenericArgs writes one argument list per generic level of the
// context chain, outermost first. sep is 'y' before the first list and '_'
// after it.
func (r *remangler) mangleGenericArgs(n *node.Node, sep *byte, depth int, full bool) error {
	if depth > MaxDepth {
		return newError(TooComplex, n)
	}
	emit := func() {
		r.appendByte(*sep)
		*sep = '_'
	}
	k := n.Kind()
	switch {
	case k == node.KindProtocol, k == node.KindStructure, k == node.KindEnum, k == node.KindClass,
		k == node.KindTypeAlias:
		if k == node.KindTypeAlias {
			full = true
		}
		parent, err := child(n, 0)
		if err != nil {
			return err
		}
		if err := r.mangleGenericArgs(parent, sep, depth+1, full); err != nil {
			return err
		}
		emit()

	case isFunctionLike(k):
		if !full {
			return nil
		}
		parent, err := child(n, 0)
		if err != nil {
			return err
		}
		if err := r.mangleGenericArgs(parent, sep, depth+1, full); err != nil {
			return err
		}
		if consumesGenericArgs(k) {
			emit()
		}

	case k == node.KindBoundGenericStructure, k == node.KindBoundGenericEnum,
		k == node.KindBoundGenericClass, k == node.KindBoundGenericProtocol,
		k == node.KindBoundGenericOtherNominalType, k == node.KindBoundGenericTypeAlias:
		if k == node.KindBoundGenericTypeAlias {
			full = true
		}
		parent, err := path(n, 0, 0, 0)
		if err != nil {
			return err
		}
		if err := r.mangleGenericArgs(parent, sep, depth+1, full); err != nil {
			return err
		}
		emit()
		args, err := child(n, 1)
		if err != nil {
			return err
		}
		return r.mangleChildren(args, depth+1)

	case k == node.KindConstrainedExistential:
		emit()
		args, err := child(n, 1)
		if err != nil {
			return err
		}
		return r.mangleChildren(args, depth+1)

	case k == node.KindBoundGenericFunction:
		parent, err := path(n, 0, 0)
		if err != nil {
			return err
		}
		if err := r.mangleGenericArgs(parent, sep, depth+1, true); err != nil {
			return err
		}
		emit()
		args, err := child(n, 1)
		if err != nil {
			return err
		}
		return r.mangleChildren(args, depth+1)

	case k == node.KindExtension:
		parent, err := child(n, 1)
		if err != nil {
			return err
		}
		return r.mangleGenericArgs(parent, sep, depth+1, full)
	}
	return nil
}

func (r *remangler) mangleTypeList(n *node.Node, depth int) error {
	first := true
	for i := range n.NumChildren() {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
		r.listSeparator(&first)
	}
	r.endOfList(first)
	return nil
}

// mangleArgumentTuple writes a parameter or result type; an empty tuple
// is spelled "y".
func (r *remangler) mangleArgumentTuple(n *node.Node, depth int) error {
	c, err := child(n, 0)
	if err != nil {
		return err
	}
	c = skipType(c)
	if c.Is(node.KindTuple) && c.NumChildren() == 0 {
		r.appendByte('y')
		return nil
	}
	return r.mangle(c, depth+1)
}

func (r *remangler) mangleFunction(n *node.Node, depth int) error {
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	labels, err := child(n, 2)
	if err != nil {
		return err
	}
	typeSlot := 2
	if labels.Is(node.KindLabelList) {
		typeSlot = 3
	} else {
		labels = nil
	}
	fnType, err := path(n, typeSlot, 0)
	if err != nil {
		return err
	}
	var sig *node.Node
	if fnType.Is(node.KindDependentGenericType) {
		sig = fnType.Child(0)
		if fnType, err = path(fnType, 1, 0); err != nil {
			return err
		}
	}
	if labels == nil {
		fnType, labels = liftTupleLabels(fnType)
	}
	if labels != nil {
		if err := r.mangleLabelList(labels, depth+1); err != nil {
			return err
		}
	}
	if err := r.mangleChildrenReversed(fnType, depth+1); err != nil {
		return err
	}
	if sig != nil {
		if err := r.mangle(sig, depth+1); err != nil {
			return err
		}
	}
	r.appendByte('F')
	return nil
}

// liftTupleLabels builds the label list for a function type that has
// none. The Swift 3 grammar spells argument labels inside the parameter
// tuple; they move into the list, with '_' for an unlabelled parameter, and
// the tuple loses its element names. Parameters without any label get an
// empty list. A function without parameters gets no list at all.
func liftTupleLabels(fnType *node.Node) (*node.Node, *node.Node) {
	argIdx := -1
	for i, c := range fnType.Children() {
		if c.Is(node.KindArgumentTuple) {
			argIdx = i
			break
		}
	}
	if argIdx < 0 {
		return fnType, nil
	}
	params := fnType.Child(argIdx).FirstChild()
	tuple := skipType(params)
	if !tuple.Is(node.KindTuple) {
		if params == nil {
			return fnType, nil
		}
		return fnType, node.New(node.KindLabelList)
	}
	if tuple.NumChildren() == 0 {
		return fnType, nil
	}
	named := false
	labels := make([]*node.Node, 0, tuple.NumChildren())
	elems := make([]*node.Node, 0, tuple.NumChildren())
	for _, e := range tuple.Children() {
		label := node.New(node.KindFirstElementMarker)
		var kept []*node.Node
		for _, c := range e.Children() {
			if !c.Is(node.KindTupleElementName) {
				kept = append(kept, c)
				continue
			}
			if text := c.TextOrEmpty(); text != "" {
				label = node.NewText(node.KindIdentifier, text)
				named = true
			}
		}
		labels = append(labels, label)
		elems = append(elems, e.WithChildren(kept...))
	}
	if !named {
		return fnType, node.New(node.KindLabelList)
	}
	stripped := tuple.WithChildren(elems...)
	if params != tuple {
		stripped = params.WithChild(0, stripped)
	}
	args := fnType.Child(argIdx).WithChild(0, stripped)
	return fnType.WithChild(argIdx, args), node.New(node.KindLabelList, labels...)
}

func (r *remangler) mangleLabelList(n *node.Node, depth int) error {
	if n.NumChildren() == 0 {
		r.appendByte('y')
		return nil
	}
	return r.mangleChildren(n, depth+1)
}

func (r *remangler) mangleAbstractStorage(n *node.Node, code string, depth int) error {
	if n == nil {
		return invalid(nil, "accessor without storage declaration")
	}
	if err := r.mangleChildren(n, depth+1); err != nil {
		return err
	}
	switch n.Kind() {
	case node.KindSubscript:
		r.appendByte('i')
	case node.KindVariable:
		r.appendByte('v')
	default:
		return invalid(n, "not a storage declaration")
	}
	r.append(code)
	return nil
}

func (r *remangler) mangleModule(n *node.Node) error {
	name, ok := n.Text()
	if !ok {
		return invalid(n, "module without name")
	}
	switch name {
	case node.StdlibModule:
		r.appendByte('s')
	case node.ObjCModule:
		r.append("So")
	case node.CModule:
		r.append("SC")
	default:
		return r.mangleIdentifier(n)
	}
	return nil
}

func (r *remangler) mangleExtension(n *node.Node, depth int) error {
	if n.NumChildren() < 2 {
		return invalid(n, "extension needs a module and an extended type")
	}
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	if n.NumChildren() == 3 {
		if err := r.mangleChild(n, 2, depth+1); err != nil {
			return err
		}
	}
	r.appendByte('E')
	return nil
}

var builtinCodes = map[string]string{
	"Builtin.BridgeObject":                      "b",
	"Builtin.UnsafeValueBuffer":                 "B",
	"Builtin.UnknownObject":                     "O",
	"Builtin.NativeObject":                      "o",
	"Builtin.RawPointer":                        "p",
	"Builtin.RawUnsafeContinuation":             "c",
	"Builtin.Job":                               "j",
	"Builtin.DefaultActorStorage":               "D",
	"Builtin.NonDefaultDistributedActorStorage": "d",
	"Builtin.Executor":                          "e",
	"Builtin.SILToken":                          "t",
	"Builtin.IntLiteral":                        "I",
	"Builtin.Word":                              "w",
	"Builtin.PackIndex":                         "P",
}

func (r *remangler) mangleBuiltinTypeName(n *node.Node) error {
	name, ok := n.Text()
	if !ok {
		return invalid(n, "builtin type without name")
	}
	r.appendByte('B')
	if code, ok := builtinCodes[name]; ok {
		r.append(code)
		return nil
	}
	if w, ok := strings.CutPrefix(name, "Builtin.Int"); ok {
		r.append("i" + w + "_")
		return nil
	}
	if w, ok := strings.CutPrefix(name, "Builtin.FPIEEE"); ok {
		r.append("f" + w + "_")
		return nil
	}
	vec, ok := strings.CutPrefix(name, "Builtin.Vec")
	if !ok {
		return newError(UnexpectedBuiltinType, n)
	}
	count, elem, ok := strings.Cut(vec, "x")
	if !ok {
		return newError(UnexpectedBuiltinVectorType, n)
	}
	switch {
	case elem == "RawPointer":
		r.appendByte('p')
	case strings.HasPrefix(elem, "FPIEEE"):
		r.append("f" + strings.TrimPrefix(elem, "FPIEEE") + "_")
	case strings.HasPrefix(elem, "Int"):
		r.append("i" + strings.TrimPrefix(elem, "Int") + "_")
	default:
		return newError(UnexpectedBuiltinVectorType, n)
	}
	r.append("Bv" + count + "_")
	return nil
}

func (r *remangler) mangleProtocolList(protocols, superclass *node.Node, anyObject bool, depth int) error {
	list, err := child(protocols, 0)
	if err != nil {
		return err
	}
	first := true
	for i := range list.NumChildren() {
		if err := r.manglePureProtocol(list.Child(i), depth+1); err != nil {
			return err
		}
		r.listSeparator(&first)
	}
	r.endOfList(first)
	switch {
	case superclass != nil:
		if err := r.mangle(superclass, depth+1); err != nil {
			return err
		}
		r.append("Xc")
	case anyObject:
		r.append("Xl")
	default:
		r.appendByte('p')
	}
	return nil
}

// manglePureProtocol writes a protocol without its "P" operator, as used
// in protocol lists and requirements.
func (r *remangler) manglePureProtocol(n *node.Node, depth int) error {
	if n == nil {
		return invalid(nil, "missing protocol")
	}
	proto := skipType(n)
	if r.mangleStandardSubstitution(proto) {
		return nil
	}
	return r.mangleChildren(proto, depth+1)
}

func (r *remangler) mangleMetatype(n *node.Node, op, repOp string, depth int) error {
	if n.FirstChild().Is(node.KindMetatypeRepresentation) {
		if err := r.mangleChild(n, 1, depth+1); err != nil {
			return err
		}
		r.append(repOp)
		return r.mangleChild(n, 0, depth+1)
	}
	if err := r.mangleSingleChild(n, depth+1); err != nil {
		return err
	}
	r.append(op)
	return nil
}

func (r *remangler) mangleMetatypeRepresentation(n *node.Node) error {
	switch n.TextOrEmpty() {
	case "@thin":
		r.appendByte('t')
	case "@thick":
		r.appendByte('T')
	case "@objc_metatype":
		r.appendByte('o')
	default:
		return invalid(n, "unknown metatype representation %q", n.TextOrEmpty())
	}
	return nil
}

func (r *remangler) mangleSILBoxTypeWithLayout(n *node.Node, depth int) error {
	layout, err := child(n, 0)
	if err != nil {
		return err
	}
	fields := make([]*node.Node, 0, layout.NumChildren())
	for _, f := range layout.Children() {
		t, err := child(f, 0)
		if err != nil {
			return err
		}
		if f.Is(node.KindSilBoxMutableField) {
			inner, err := child(t, 0)
			if err != nil {
				return err
			}
			t = node.New(node.KindType, node.New(node.KindInOut, inner))
		}
		fields = append(fields, t)
	}
	if err := r.mangleTypeList(node.New(node.KindTypeList, fields...), depth+1); err != nil {
		return err
	}
	if n.NumChildren() == 3 {
		if err := r.mangleTypeList(n.Child(2), depth+1); err != nil {
			return err
		}
		if err := r.mangleChild(n, 1, depth+1); err != nil {
			return err
		}
		r.append("XX")
		return nil
	}
	r.append("Xx")
	return nil
}
