package demangle

import (
	"github.com/skdltmxn/swiftmangle/node"
)

// Function type flavours spelled after 'X'.
var specialFunctionTypes = map[rune]node.Kind{
	'E': node.KindNoEscapeFunctionType,
	'A': node.KindEscapingAutoClosureType,
	'f': node.KindThinFunctionType,
	'K': node.KindAutoClosureType,
	'U': node.KindUncurriedFunctionType,
	'L': node.KindEscapingObjCBlock,
	'B': node.KindObjCBlock,
	'C': node.KindCFunctionPointer,
}

// Reference storage and box types spelled after 'X' that wrap one Type.
var specialWrappedTypes = map[rune]node.Kind{
	'o': node.KindUnowned,
	'u': node.KindUnmanaged,
	'w': node.KindWeak,
	'b': node.KindSilBoxType,
	'D': node.KindDynamicSelf,
	'p': node.KindExistentialMetatype,
}

func (d *demangler) demangleSpecialType() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := specialFunctionTypes[c]; ok {
		return d.popFunctionType(k, false)
	}
	if k, ok := specialWrappedTypes[c]; ok {
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(k, t), nil
	}

	switch c {
	case 'g', 'G':
		return d.demangleExtendedExistentialShape(c)
	case 'j':
		return d.demangleSymbolicExtendedExistentialType()
	case 'z':
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'B':
			return d.popFunctionType(node.KindObjCBlock, true)
		case 'C':
			return d.popFunctionType(node.KindCFunctionPointer, true)
		}
		return nil, d.fail()
	case 'M', 'm':
		repr, err := d.demangleMetatypeRepresentation()
		if err != nil {
			return nil, err
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		kind := node.KindMetatype
		if c == 'm' {
			kind = node.KindExistentialMetatype
		}
		return node.NewType(kind, repr, t), nil
	case 'P':
		reqs, err := d.demangleConstrainedExistentialRequirementList()
		if err != nil {
			return nil, err
		}
		base, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindConstrainedExistential, base, reqs), nil
	case 'c':
		superclass, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		protocols, err := d.demangleProtocolList()
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindProtocolListWithClass, protocols, superclass), nil
	case 'l':
		protocols, err := d.demangleProtocolList()
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindProtocolListWithAnyObject, protocols), nil
	case 'X', 'x':
		return d.demangleSILBox(c == 'X')
	case 'Y':
		return d.demangleAnyGenericType(node.KindOtherNominalType)
	case 'Z':
		types, err := d.popTypeList()
		if err != nil {
			return nil, err
		}
		name, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		parent, err := d.popContext()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAnonymousContext, name, parent, types), nil
	case 'e':
		return node.NewType(node.KindErrorType), nil
	case 'S':
		return d.demangleSugaredType()
	}
	return nil, d.fail()
}

func (d *demangler) demangleSugaredType() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'q', 'a', 'p':
		kind := node.KindSugaredOptional
		switch c {
		case 'a':
			kind = node.KindSugaredArray
		case 'p':
			kind = node.KindSugaredParen
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(kind, t), nil
	case 'D':
		value, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		key, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindSugaredDictionary, key, value), nil
	case 'A':
		element, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		count, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindSugaredInlineArray, count, element), nil
	}
	return nil, d.fail()
}

func (d *demangler) demangleSILBox(withSignature bool) (*node.Node, error) {
	var sig, genericArgs *node.Node
	if withSignature {
		var err error
		if sig, err = d.need(d.popKind(node.KindDependentGenericSignature)); err != nil {
			return nil, err
		}
		if genericArgs, err = d.popTypeList(); err != nil {
			return nil, err
		}
	}
	fieldTypes, err := d.popTypeList()
	if err != nil {
		return nil, err
	}
	fields := make([]*node.Node, 0, fieldTypes.NumChildren())
	for _, field := range fieldTypes.Children() {
		if err := d.check(field.Kind() == node.KindType); err != nil {
			return nil, err
		}
		if inout := field.FirstChild(); inout.Is(node.KindInOut) {
			inner, err := d.need(inout.FirstChild())
			if err != nil {
				return nil, err
			}
			fields = append(fields, node.New(node.KindSilBoxMutableField, node.New(node.KindType, inner)))
			continue
		}
		fields = append(fields, node.New(node.KindSilBoxImmutableField, field))
	}
	layout := node.New(node.KindSilBoxLayout, fields...)
	return node.NewType(node.KindSilBoxTypeWithLayout, layout, sig, genericArgs), nil
}

func (d *demangler) demangleSymbolicExtendedExistentialType() (*node.Node, error) {
	conformances := d.popRetroactiveConformances()
	var args []*node.Node
	for t := d.popKind(node.KindType); t != nil; t = d.popKind(node.KindType) {
		args = append(args, t)
	}
	reverse(args)
	shape, err := d.need(d.popIf(func(k node.Kind) bool {
		return k == node.KindUniqueExtendedExistentialTypeShapeSymbolicReference ||
			k == node.KindNonUniqueExtendedExistentialTypeShapeSymbolicReference
	}))
	if err != nil {
		return nil, err
	}
	return node.NewType(node.KindSymbolicExtendedExistentialType, shape, node.New(node.KindTypeList, args...), conformances), nil
}

func (d *demangler) demangleExtendedExistentialShape(c rune) (*node.Node, error) {
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	var sig *node.Node
	if c == 'G' {
		sig = d.popKind(node.KindDependentGenericSignature)
	}
	return node.New(node.KindExtendedExistentialTypeShape, sig, t), nil
}

var accessorKinds = map[rune]node.Kind{
	'm': node.KindMaterializeForSet,
	's': node.KindSetter,
	'g': node.KindGetter,
	'G': node.KindGlobalGetter,
	'w': node.KindWillSet,
	'W': node.KindDidSet,
	'r': node.KindReadAccessor,
	'y': node.KindRead2Accessor,
	'M': node.KindModifyAccessor,
	'x': node.KindModify2Accessor,
	'i': node.KindInitAccessor,
}

var mutableAddressors = map[rune]node.Kind{
	'O': node.KindOwningMutableAddressor,
	'o': node.KindNativeOwningMutableAddressor,
	'p': node.KindNativePinningMutableAddressor,
	'u': node.KindUnsafeMutableAddressor,
}

var addressors = map[rune]node.Kind{
	'O': node.KindOwningAddressor,
	'o': node.KindNativeOwningAddressor,
	'p': node.KindNativePinningAddressor,
	'u': node.KindUnsafeAddressor,
}

func (d *demangler) demangleAccessor(child *node.Node) (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := accessorKinds[c]; ok {
		return node.New(k, child), nil
	}
	var table map[rune]node.Kind
	switch c {
	case 'p':
		return child, nil
	case 'a':
		table = mutableAddressors
	case 'l':
		table = addressors
	default:
		return nil, d.fail()
	}
	r, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	k, ok := table[r]
	if !ok {
		return nil, d.fail()
	}
	return node.New(k, child), nil
}

type entityArgs int

const (
	entityArgsNone entityArgs = iota
	entityArgsIndex
	entityArgsTypeAndIndex
	entityArgsTypeAndMaybePrivateName
)

var functionEntities = map[rune]struct {
	args entityArgs
	kind node.Kind
}{
	'D': {entityArgsNone, node.KindDeallocator},
	'd': {entityArgsNone, node.KindDestructor},
	'Z': {entityArgsNone, node.KindIsolatedDeallocator},
	'E': {entityArgsNone, node.KindIVarDestroyer},
	'e': {entityArgsNone, node.KindIVarInitializer},
	'i': {entityArgsNone, node.KindInitializer},
	'C': {entityArgsTypeAndMaybePrivateName, node.KindAllocator},
	'c': {entityArgsTypeAndMaybePrivateName, node.KindConstructor},
	'U': {entityArgsTypeAndIndex, node.KindExplicitClosure},
	'u': {entityArgsTypeAndIndex, node.KindImplicitClosure},
	'A': {entityArgsIndex, node.KindDefaultArgumentInitializer},
	'P': {entityArgsNone, node.KindPropertyWrapperBackingInitializer},
	'W': {entityArgsNone, node.KindPropertyWrapperInitFromProjectedValue},
}

func (d *demangler) demangleFunctionEntity() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'm':
		return d.demangleEntity(node.KindMacro)
	case 'M':
		return d.demangleMacroExpansion()
	case 'p':
		return d.demangleEntity(node.KindGenericTypeParamDecl)
	}
	entry, ok := functionEntities[c]
	if !ok {
		return nil, d.fail()
	}

	var children []*node.Node
	switch entry.args {
	case entityArgsIndex:
		index, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		children = append(children, index)
	case entityArgsTypeAndIndex:
		index, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		children = append(children, index, t)
	case entityArgsTypeAndMaybePrivateName:
		privateName := d.popKind(node.KindPrivateDeclName)
		paramType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		labels, err := d.popFunctionParamLabels(paramType)
		if err != nil {
			return nil, err
		}
		children = append(children, labels, paramType, privateName)
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	return node.New(entry.kind, append([]*node.Node{ctx}, children...)...), nil
}

func (d *demangler) demangleEntity(kind node.Kind) (*node.Node, error) {
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	labels, err := d.popFunctionParamLabels(t)
	if err != nil {
		return nil, err
	}
	name, err := d.need(d.popIf(node.Kind.IsDeclName))
	if err != nil {
		return nil, err
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	return node.New(kind, ctx, name, labels, setOpaqueParent(t, opaqueParentID)), nil
}

func (d *demangler) demangleVariable() (*node.Node, error) {
	v, err := d.demangleEntity(node.KindVariable)
	if err != nil {
		return nil, err
	}
	return d.demangleAccessor(v)
}

func (d *demangler) demangleSubscript() (*node.Node, error) {
	privateName := d.popKind(node.KindPrivateDeclName)
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	labels, err := d.popFunctionParamLabels(t)
	if err != nil {
		return nil, err
	}
	ctx, err := d.popContext()
	if err != nil {
		return nil, err
	}
	sub := node.New(node.KindSubscript, ctx, labels, setOpaqueParent(t, opaqueParentID), privateName)
	return d.demangleAccessor(sub)
}

func (d *demangler) demangleProtocolList() (*node.Node, error) {
	var protocols []*node.Node
	if d.popKind(node.KindEmptyList) == nil {
		for {
			firstElem := d.popKind(node.KindFirstElementMarker) != nil
			p, err := d.popProtocol()
			if err != nil {
				return nil, err
			}
			protocols = append(protocols, p)
			if firstElem {
				break
			}
		}
		reverse(protocols)
	}
	return node.New(node.KindProtocolList, node.New(node.KindTypeList, protocols...)), nil
}

func (d *demangler) demangleProtocolListType() (*node.Node, error) {
	l, err := d.demangleProtocolList()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindType, l), nil
}

func (d *demangler) demangleConstrainedExistentialRequirementList() (*node.Node, error) {
	var reqs []*node.Node
	for {
		firstElem := d.popKind(node.KindFirstElementMarker) != nil
		req, err := d.need(d.popIf(node.Kind.IsRequirement))
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
		if firstElem {
			break
		}
	}
	reverse(reqs)
	return node.New(node.KindConstrainedExistentialRequirementList, reqs...), nil
}

func (d *demangler) demangleGenericSignature(hasParamCounts bool) (*node.Node, error) {
	var children []*node.Node
	if hasParamCounts {
		for !d.s.ConditionalRune('l') {
			var count uint64
			if !d.s.ConditionalRune('z') {
				idx, err := d.demangleIndex()
				if err != nil {
					return nil, err
				}
				count = idx + 1
			}
			children = append(children, node.NewIndex(node.KindDependentGenericParamCount, count))
		}
	} else {
		children = append(children, node.NewIndex(node.KindDependentGenericParamCount, 1))
	}
	var reqs []*node.Node
	for req := d.popIf(node.Kind.IsRequirement); req != nil; req = d.popIf(node.Kind.IsRequirement) {
		reqs = append(reqs, req)
	}
	reverse(reqs)
	return node.New(node.KindDependentGenericSignature, append(children, reqs...)...), nil
}

type requirementConstraint int

const (
	constraintProtocol requirementConstraint = iota
	constraintBaseClass
	constraintSameType
	constraintSameShape
	constraintLayout
	constraintPackMarker
	constraintInverse
	constraintValueMarker
)

type requirementSubject int

const (
	subjectGeneric requirementSubject = iota
	subjectAssoc
	subjectCompoundAssoc
	subjectSubstitution
)

var genericRequirements = map[rune]struct {
	constraint requirementConstraint
	subject    requirementSubject
}{
	'V': {constraintValueMarker, subjectGeneric},
	'v': {constraintPackMarker, subjectGeneric},
	'c': {constraintBaseClass, subjectAssoc},
	'C': {constraintBaseClass, subjectCompoundAssoc},
	'b': {constraintBaseClass, subjectGeneric},
	'B': {constraintBaseClass, subjectSubstitution},
	't': {constraintSameType, subjectAssoc},
	'T': {constraintSameType, subjectCompoundAssoc},
	's': {constraintSameType, subjectGeneric},
	'S': {constraintSameType, subjectSubstitution},
	'm': {constraintLayout, subjectAssoc},
	'M': {constraintLayout, subjectCompoundAssoc},
	'l': {constraintLayout, subjectGeneric},
	'L': {constraintLayout, subjectSubstitution},
	'p': {constraintProtocol, subjectAssoc},
	'P': {constraintProtocol, subjectCompoundAssoc},
	'Q': {constraintProtocol, subjectSubstitution},
	'h': {constraintSameShape, subjectGeneric},
	'i': {constraintInverse, subjectGeneric},
	'I': {constraintInverse, subjectSubstitution},
}

func (d *demangler) demangleGenericRequirement() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	entry, ok := genericRequirements[c]
	if !ok {
		entry.constraint, entry.subject = constraintProtocol, subjectGeneric
		if err := d.s.Backtrack(1); err != nil {
			return nil, err
		}
	}
	var inverseKind *node.Node
	if entry.constraint == constraintInverse {
		if inverseKind, err = d.demangleIndexAsName(); err != nil {
			return nil, err
		}
	}

	var subject *node.Node
	switch entry.subject {
	case subjectGeneric:
		idx, err := d.demangleGenericParamIndex()
		if err != nil {
			return nil, err
		}
		subject = node.New(node.KindType, idx)
	case subjectAssoc, subjectCompoundAssoc:
		idx, err := d.demangleGenericParamIndex()
		if err != nil {
			return nil, err
		}
		if entry.subject == subjectAssoc {
			subject, err = d.demangleAssociatedTypeSimple(idx)
		} else {
			subject, err = d.demangleAssociatedTypeCompound(idx)
		}
		if err != nil {
			return nil, err
		}
		d.addSubstitution(subject)
	case subjectSubstitution:
		if subject, err = d.need(d.popKind(node.KindType)); err != nil {
			return nil, err
		}
	}

	switch entry.constraint {
	case constraintValueMarker:
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindDependentGenericParamValueMarker, subject, t), nil
	case constraintPackMarker:
		return node.New(node.KindDependentGenericParamPackMarker, subject), nil
	case constraintProtocol:
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindDependentGenericConformanceRequirement, subject, p), nil
	case constraintInverse:
		return node.New(node.KindDependentGenericInverseConformanceRequirement, subject, inverseKind), nil
	case constraintBaseClass, constraintSameType, constraintSameShape:
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		kind := node.KindDependentGenericConformanceRequirement
		switch entry.constraint {
		case constraintSameType:
			kind = node.KindDependentGenericSameTypeRequirement
		case constraintSameShape:
			kind = node.KindDependentGenericSameShapeRequirement
		}
		return node.New(kind, subject, t), nil
	}
	return d.demangleLayoutRequirement(subject)
}

func (d *demangler) demangleLayoutRequirement(subject *node.Node) (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	children := []*node.Node{subject, node.NewText(node.KindIdentifier, string(c))}
	switch c {
	case 'U', 'R', 'N', 'C', 'D', 'T', 'B':
	case 'E', 'M':
		size, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		alignment, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		children = append(children, size, alignment)
	case 'e', 'm', 'S':
		size, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		children = append(children, size)
	default:
		return nil, d.fail()
	}
	return node.New(node.KindDependentGenericLayoutRequirement, children...), nil
}

func (d *demangler) demangleGenericType() (*node.Node, error) {
	sig, err := d.need(d.popKind(node.KindDependentGenericSignature))
	if err != nil {
		return nil, err
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.NewType(node.KindDependentGenericType, sig, t), nil
}

func (d *demangler) demangleValueWitness() (*node.Node, error) {
	code, err := d.s.ReadN(2)
	if err != nil {
		return nil, err
	}
	kind, ok := node.ValueWitnessKindFor(code)
	if !ok {
		return nil, d.fail()
	}
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	return node.New(node.KindValueWitness, node.NewIndex(node.KindIndex, uint64(kind)), t), nil
}

var macroExpansions = map[rune]struct {
	kind                   node.Kind
	attached, freestanding bool
}{
	'a': {node.KindAccessorAttachedMacroExpansion, true, false},
	'r': {node.KindMemberAttributeAttachedMacroExpansion, true, false},
	'm': {node.KindMemberAttachedMacroExpansion, true, false},
	'p': {node.KindPeerAttachedMacroExpansion, true, false},
	'c': {node.KindConformanceAttachedMacroExpansion, true, false},
	'b': {node.KindBodyAttachedMacroExpansion, true, false},
	'f': {node.KindFreestandingMacroExpansion, false, true},
	'u': {node.KindMacroExpansionUniqueName, false, false},
}

func (d *demangler) demangleMacroExpansion() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if c == 'X' {
		line, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		col, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		buffer, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		module, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindMacroExpansionLoc, module, buffer,
			node.NewIndex(node.KindIndex, line), node.NewIndex(node.KindIndex, col)), nil
	}
	entry, ok := macroExpansions[c]
	if !ok {
		return nil, d.fail()
	}

	macroName, err := d.need(d.popKind(node.KindIdentifier))
	if err != nil {
		return nil, err
	}
	var privateDiscriminator, attachedName *node.Node
	if entry.freestanding {
		privateDiscriminator = d.popKind(node.KindPrivateDeclName)
	}
	if entry.attached {
		attachedName = d.popIf(node.Kind.IsDeclName)
	}
	ctx := d.popIf(node.Kind.IsMacroExpansion)
	if ctx == nil {
		if ctx, err = d.popContext(); err != nil {
			return nil, err
		}
	}
	discriminator, err := d.demangleIndexAsName()
	if err != nil {
		return nil, err
	}
	return node.New(entry.kind, ctx, attachedName, macroName, discriminator, privateDiscriminator), nil
}

func (d *demangler) demangleIntegerType() (*node.Node, error) {
	kind := node.KindInteger
	if d.s.ConditionalRune('n') {
		kind = node.KindNegativeInteger
	}
	v, err := d.demangleIndex()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindType, node.NewIndex(kind, v)), nil
}

// demangleObjCTypeName decodes the "_Tt" runtime names of Swift classes
// and protocols exposed to Objective-C.
func (d *demangler) demangleObjCTypeName() (*node.Node, error) {
	var typeChild *node.Node
	switch {
	case d.s.ConditionalRune('C'):
		module, err := d.objCTypeNameModule()
		if err != nil {
			return nil, err
		}
		name, err := d.demangleIdentifier()
		if err != nil {
			return nil, err
		}
		typeChild = node.New(node.KindClass, module, name)
	case d.s.ConditionalRune('P'):
		module, err := d.objCTypeNameModule()
		if err != nil {
			return nil, err
		}
		name, err := d.demangleIdentifier()
		if err != nil {
			return nil, err
		}
		typeChild = node.New(node.KindProtocolList, node.New(node.KindTypeList,
			node.NewType(node.KindProtocol, module, name)))
		if err := d.s.MatchRune('_'); err != nil {
			return nil, err
		}
	default:
		return nil, d.fail()
	}
	if err := d.check(d.s.AtEnd()); err != nil {
		return nil, err
	}
	return d.intern(node.New(node.KindGlobal, node.New(node.KindTypeMangling, node.New(node.KindType, typeChild)))), nil
}

func (d *demangler) objCTypeNameModule() (*node.Node, error) {
	if d.s.ConditionalRune('s') {
		return node.NewText(node.KindModule, node.StdlibModule), nil
	}
	ident, err := d.demangleIdentifier()
	if err != nil {
		return nil, err
	}
	return ident.ChangingKind(node.KindModule), nil
}
