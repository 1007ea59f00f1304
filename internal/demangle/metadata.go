package demangle

import "github.com/skdltmxn/swiftmangle/node"

// Metadata operators ('M' prefix) that wrap the Type on top of the stack.
var metatypeOfType = map[rune]node.Kind{
	'a': node.KindTypeMetadataAccessFunction,
	'b': node.KindCanonicalSpecializedGenericTypeMetadataAccessFunction,
	'B': node.KindReflectionMetadataBuiltinDescriptor,
	'D': node.KindTypeMetadataDemanglingCache,
	'd': node.KindTypeMetadataDemanglingCache,
	'R': node.KindTypeMetadataMangledNameRef,
	'f': node.KindFullTypeMetadata,
	'F': node.KindReflectionMetadataFieldDescriptor,
	'i': node.KindTypeMetadataInstantiationFunction,
	'I': node.KindTypeMetadataInstantiationCache,
	'l': node.KindTypeMetadataSingletonInitializationCache,
	'L': node.KindTypeMetadataLazyCache,
	'm': node.KindMetaclass,
	'M': node.KindCanonicalSpecializedGenericMetaclass,
	'n': node.KindNominalTypeDescriptor,
	'N': node.KindNoncanonicalSpecializedGenericTypeMetadata,
	'o': node.KindClassMetadataBaseOffset,
	'P': node.KindGenericTypeMetadataPattern,
	'r': node.KindTypeMetadataCompletionFunction,
	's': node.KindObjCResilientClassStub,
	't': node.KindFullObjCResilientClassStub,
	'u': node.KindMethodLookupFunction,
	'U': node.KindObjCMetadataUpdateFunction,
	'z': node.KindCanonicalPrespecializedGenericTypeCachingOnceToken,
}

// Metadata operators that wrap whatever is on top of the stack.
var metatypeOfAny = map[rune]node.Kind{
	'g': node.KindOpaqueTypeDescriptorAccessor,
	'h': node.KindOpaqueTypeDescriptorAccessorImpl,
	'j': node.KindOpaqueTypeDescriptorAccessorKey,
	'J': node.KindNoncanonicalSpecializedGenericTypeMetadataCache,
	'k': node.KindOpaqueTypeDescriptorAccessorVar,
	'K': node.KindMetadataInstantiationCache,
	'q': node.KindUniquable,
	'Q': node.KindOpaqueTypeDescriptor,
}

func (d *demangler) demangleMetatype() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := metatypeOfType[c]; ok {
		return d.wrapPopped(k, d.popKind(node.KindType))
	}
	if k, ok := metatypeOfAny[c]; ok {
		return d.wrapPopped(k, d.pop())
	}
	switch c {
	case 'A':
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindReflectionMetadataAssocTypeDescriptor, conf), nil
	case 'c':
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolConformanceDescriptor, conf), nil
	case 'C':
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		if err := d.check(t.FirstChild() != nil && t.FirstChild().Kind().IsAnyGeneric()); err != nil {
			return nil, err
		}
		return node.New(node.KindReflectionMetadataSuperclassDescriptor, t.FirstChild()), nil
	case 'p':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolDescriptor, p), nil
	case 'S':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolSelfConformanceDescriptor, p), nil
	case 'V':
		return d.wrapPopped(node.KindPropertyDescriptor, d.popIf(node.Kind.IsEntity))
	case 'X':
		return d.demanglePrivateContextDescriptor()
	}
	return nil, d.fail()
}

func (d *demangler) demanglePrivateContextDescriptor() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'E':
		ctx, err := d.popContext()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindExtensionDescriptor, ctx), nil
	case 'M':
		return d.wrapPopped(node.KindModuleDescriptor, d.popModule())
	case 'Y':
		discriminator, err := d.need(d.pop())
		if err != nil {
			return nil, err
		}
		ctx, err := d.popContext()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAnonymousDescriptor, ctx, discriminator), nil
	case 'X':
		ctx, err := d.popContext()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAnonymousDescriptor, ctx), nil
	case 'A':
		path, err := d.popAssociatedTypePath()
		if err != nil {
			return nil, err
		}
		base, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAssociatedTypeGenericParamRef, base, path), nil
	}
	return nil, d.fail()
}

func (d *demangler) demangleArchetype() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'a':
		ident, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		arch, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		assoc := node.NewType(node.KindAssociatedTypeRef, arch, ident)
		d.addSubstitution(assoc)
		return assoc, nil
	case 'O':
		ctx, err := d.popContext()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindOpaqueReturnTypeOf, ctx), nil
	case 'o':
		index, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		lists, conformances, err := d.demangleBoundGenerics()
		if err != nil {
			return nil, err
		}
		name, err := d.need(d.pop())
		if err != nil {
			return nil, err
		}
		reverse(lists)
		opaque := node.New(node.KindType, node.New(node.KindOpaqueType,
			name,
			node.NewIndex(node.KindIndex, index),
			node.New(node.KindTypeList, lists...),
			conformances))
		d.addSubstitution(opaque)
		return opaque, nil
	case 'r':
		return node.NewType(node.KindOpaqueReturnType), nil
	case 'R':
		index, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindOpaqueReturnType, node.NewIndex(node.KindOpaqueReturnTypeIndex, index)), nil
	case 'x', 'X', 'y', 'Y', 'z', 'Z':
		var base *node.Node
		switch c {
		case 'y', 'Y':
			if base, err = d.demangleGenericParamIndex(); err != nil {
				return nil, err
			}
		case 'z', 'Z':
			base = genericParamType(0, 0)
		}
		var t *node.Node
		if c == 'x' || c == 'y' || c == 'z' {
			t, err = d.demangleAssociatedTypeSimple(base)
		} else {
			t, err = d.demangleAssociatedTypeCompound(base)
		}
		if err != nil {
			return nil, err
		}
		d.addSubstitution(t)
		return t, nil
	case 'p':
		count, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		pattern, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindPackExpansion, pattern, count), nil
	case 'e':
		pack, err := d.popTypeAndGetChild()
		if err != nil {
			return nil, err
		}
		level, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		return node.NewType(node.KindPackElement, pack, node.NewIndex(node.KindPackElementLevel, level)), nil
	case 'P':
		return d.popPack(node.KindPack)
	case 'S':
		return d.popSilPack()
	}
	return nil, d.fail()
}

// demangleAssociatedTypeSimple builds base.Name. A nil index means the
// base is the Type on top of the stack.
func (d *demangler) demangleAssociatedTypeSimple(index *node.Node) (*node.Node, error) {
	name, err := d.popAssociatedTypeName()
	if err != nil {
		return nil, err
	}
	base, err := d.associatedTypeBase(index)
	if err != nil {
		return nil, err
	}
	return node.NewType(node.KindDependentMemberType, base, name), nil
}

func (d *demangler) demangleAssociatedTypeCompound(index *node.Node) (*node.Node, error) {
	var names []*node.Node
	for {
		firstElem := d.popKind(node.KindFirstElementMarker) != nil
		name, err := d.popAssociatedTypeName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if firstElem {
			break
		}
	}
	base, err := d.associatedTypeBase(index)
	if err != nil {
		return nil, err
	}
	for i := len(names) - 1; i >= 0; i-- {
		base = node.NewType(node.KindDependentMemberType, base, names[i])
	}
	return base, nil
}

func (d *demangler) associatedTypeBase(index *node.Node) (*node.Node, error) {
	if index != nil {
		return node.New(node.KindType, index), nil
	}
	return d.need(d.popKind(node.KindType))
}

func (d *demangler) demangleGenericParamIndex() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'd':
		depth, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		index, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		return genericParamType(depth+1, index), nil
	case 'z':
		return genericParamType(0, 0), nil
	case 's':
		return node.New(node.KindConstrainedExistentialSelf), nil
	}
	if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}
	index, err := d.demangleIndex()
	if err != nil {
		return nil, err
	}
	return genericParamType(0, index+1), nil
}

func (d *demangler) demangleMetatypeRepresentation() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	switch c {
	case 't':
		return node.NewText(node.KindMetatypeRepresentation, "@thin"), nil
	case 'T':
		return node.NewText(node.KindMetatypeRepresentation, "@thick"), nil
	case 'o':
		return node.NewText(node.KindMetatypeRepresentation, "@objc_metatype"), nil
	}
	return nil, d.fail()
}

// Witness-table operators ('W' prefix) that wrap a popped conformance.
var witnessOfConformance = map[rune]node.Kind{
	'P': node.KindProtocolWitnessTable,
	'p': node.KindProtocolWitnessTablePattern,
	'G': node.KindGenericProtocolWitnessTable,
	'I': node.KindGenericProtocolWitnessTableInstantiationFunction,
	'r': node.KindResilientProtocolWitnessTable,
	'a': node.KindProtocolWitnessTableAccessor,
}

// Outlined value operations ("WO" prefix) over a type and optional
// signature.
var outlinedOperations = map[rune]node.Kind{
	'C': node.KindOutlinedInitializeWithCopyNoValueWitness,
	'D': node.KindOutlinedAssignWithTakeNoValueWitness,
	'F': node.KindOutlinedAssignWithCopyNoValueWitness,
	'H': node.KindOutlinedDestroyNoValueWitness,
	'y': node.KindOutlinedCopy,
	'e': node.KindOutlinedConsume,
	'r': node.KindOutlinedRetain,
	's': node.KindOutlinedRelease,
	'b': node.KindOutlinedInitializeWithTake,
	'c': node.KindOutlinedInitializeWithCopy,
	'd': node.KindOutlinedAssignWithTake,
	'f': node.KindOutlinedAssignWithCopy,
	'h': node.KindOutlinedDestroy,
	'g': node.KindOutlinedEnumGetTag,
}

func (d *demangler) demangleWitness() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := witnessOfConformance[c]; ok {
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(k, conf), nil
	}
	switch c {
	case 'C':
		return d.wrapPopped(node.KindEnumCase, d.popIf(node.Kind.IsEntity))
	case 'V':
		return d.wrapPopped(node.KindValueWitnessTable, d.popKind(node.KindType))
	case 'v':
		var directness node.Directness
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'd':
			directness = node.Direct
		case 'i':
			directness = node.Indirect
		default:
			return nil, d.fail()
		}
		entity, err := d.need(d.popIf(node.Kind.IsEntity))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindFieldOffset, node.NewIndex(node.KindDirectness, uint64(directness)), entity), nil
	case 'S':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolSelfConformanceWitnessTable, p), nil
	case 'l', 'L':
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		kind := node.KindLazyProtocolWitnessTableAccessor
		if c == 'L' {
			kind = node.KindLazyProtocolWitnessTableCacheVariable
		}
		return node.New(kind, t, conf), nil
	case 't':
		name, err := d.need(d.popIf(node.Kind.IsDeclName))
		if err != nil {
			return nil, err
		}
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAssociatedTypeMetadataAccessor, conf, name), nil
	case 'T':
		protoType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		path, err := d.popAssociatedTypePath()
		if err != nil {
			return nil, err
		}
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAssociatedTypeWitnessTableAccessor, conf, path, protoType), nil
	case 'b':
		protoType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindBaseWitnessTableAccessor, conf, protoType), nil
	case 'O':
		return d.demangleOutlinedOperation()
	case 'Z', 'z':
		var decls []*node.Node
		for d.popKind(node.KindFirstElementMarker) != nil {
			ident, err := d.need(d.popIf(node.Kind.IsDeclName))
			if err != nil {
				return nil, err
			}
			decls = append(decls, ident)
		}
		ctx, err := d.popContext()
		if err != nil {
			return nil, err
		}
		kind := node.KindGlobalVariableOnceToken
		if c == 'Z' {
			kind = node.KindGlobalVariableOnceFunction
		}
		return node.New(kind, ctx, node.New(node.KindGlobalVariableOnceDeclList, decls...)), nil
	case 'J':
		return d.demangleDifferentiabilityWitness()
	}
	return nil, d.fail()
}

func (d *demangler) demangleOutlinedOperation() (*node.Node, error) {
	sig := d.popKind(node.KindDependentGenericSignature)
	t, err := d.need(d.popKind(node.KindType))
	if err != nil {
		return nil, err
	}
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := outlinedOperations[c]; ok {
		return node.New(k, t, sig), nil
	}
	switch c {
	case 'B':
		inner, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindOutlinedInitializeWithTakeNoValueWitness, inner,
			d.popKind(node.KindDependentGenericSignature)), nil
	case 'i', 'j':
		caseIndex, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		kind := node.KindOutlinedEnumTagStore
		if c == 'j' {
			kind = node.KindOutlinedEnumProjectDataForLoad
		}
		return node.New(kind, t, sig, caseIndex), nil
	}
	return nil, d.fail()
}
