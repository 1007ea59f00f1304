package remangle

import "github.com/skdltmxn/swiftmangle/node"

// dispatch handles the kinds whose spelling is not a plain table entry.
func (r *remangler) dispatch(n *node.Node, depth int) error {
	switch n.Kind() {
	case node.KindGlobal:
		return r.mangleGlobal(n, depth)
	case node.KindSuffix:
		r.append(n.TextOrEmpty())
		return nil
	case node.KindIdentifier, node.KindTupleElementName:
		return r.mangleIdentifier(n)
	case node.KindPrefixOperator:
		return r.mangleOperator(n, "op")
	case node.KindPostfixOperator:
		return r.mangleOperator(n, "oP")
	case node.KindInfixOperator:
		return r.mangleOperator(n, "oi")
	case node.KindModule:
		return r.mangleModule(n)

	case node.KindStructure, node.KindClass, node.KindEnum, node.KindOtherNominalType,
		node.KindTypeAlias, node.KindBoundGenericStructure, node.KindBoundGenericClass,
		node.KindBoundGenericOtherNominalType, node.KindBoundGenericTypeAlias,
		node.KindBoundGenericProtocol:
		return r.mangleAnyNominalType(n, depth)
	case node.KindBoundGenericEnum:
		return r.mangleBoundGenericEnum(n, depth)
	case node.KindBoundGenericFunction:
		return r.mangleBoundGenericFunction(n, depth)
	case node.KindProtocol:
		return r.mangleAnyGenericType(n, "P", depth)

	case node.KindTypeList:
		return r.mangleTypeList(n, depth)
	case node.KindTuple:
		if err := r.mangleTypeList(n, depth); err != nil {
			return err
		}
		r.appendByte('t')
		return nil
	case node.KindArgumentTuple, node.KindReturnType:
		return r.mangleArgumentTuple(n, depth)
	case node.KindLabelList:
		return r.mangleLabelList(n, depth)
	case node.KindFunction:
		return r.mangleFunction(n, depth)
	case node.KindVariable, node.KindSubscript:
		return r.mangleAbstractStorage(n, "p", depth)
	case node.KindExtension:
		return r.mangleExtension(n, depth)
	case node.KindPrivateDeclName:
		return r.manglePrivateDeclName(n, depth)
	case node.KindLocalDeclName:
		return r.mangleLocalDeclName(n, depth)
	case node.KindRelatedEntityDeclName:
		return r.mangleRelatedEntityDeclName(n, depth)
	case node.KindAnonymousContext:
		return r.mangleAnonymousContext(n, depth)
	case node.KindExplicitClosure:
		return r.mangleClosure(n, "fU", depth)
	case node.KindImplicitClosure:
		return r.mangleClosure(n, "fu", depth)
	case node.KindDefaultArgumentInitializer:
		return r.mangleInterleaved(n, depth, 0, "fA", 1)

	case node.KindBuiltinTypeName:
		return r.mangleBuiltinTypeName(n)
	case node.KindMetatype:
		return r.mangleMetatype(n, "m", "XM", depth)
	case node.KindExistentialMetatype:
		return r.mangleMetatype(n, "Xp", "Xm", depth)
	case node.KindMetatypeRepresentation:
		return r.mangleMetatypeRepresentation(n)
	case node.KindProtocolList:
		return r.mangleProtocolList(n, nil, false, depth)
	case node.KindProtocolListWithClass:
		pl, err := child(n, 0)
		if err != nil {
			return err
		}
		sc, err := child(n, 1)
		if err != nil {
			return err
		}
		return r.mangleProtocolList(pl, sc, false, depth)
	case node.KindProtocolListWithAnyObject:
		pl, err := child(n, 0)
		if err != nil {
			return err
		}
		return r.mangleProtocolList(pl, nil, true, depth)
	case node.KindSilBoxTypeWithLayout:
		return r.mangleSILBoxTypeWithLayout(n, depth)
	case node.KindCFunctionPointer:
		return r.mangleClangFunction(n, "XC", "XzC", depth)
	case node.KindObjCBlock:
		return r.mangleClangFunction(n, "XB", "XzB", depth)
	case node.KindClangType:
		r.appendUint(uint64(len(n.TextOrEmpty())))
		r.append(n.TextOrEmpty())
		return nil
	case node.KindSugaredOptional:
		return r.mangleSugar(n, "XSq", depth)
	case node.KindSugaredArray:
		return r.mangleSugar(n, "XSa", depth)
	case node.KindSugaredParen:
		return r.mangleSugar(n, "XSp", depth)
	case node.KindSugaredDictionary:
		return r.mangleSugar(n, "XSD", depth)
	case node.KindSugaredInlineArray:
		return r.mangleSugar(n, "XSA", depth)
	case node.KindConstrainedExistential:
		return r.mangleSugar(n, "XP", depth)
	case node.KindConstrainedExistentialRequirementList:
		first := true
		for i := range n.NumChildren() {
			if err := r.mangle(n.Child(i), depth+1); err != nil {
				return err
			}
			r.listSeparator(&first)
		}
		return nil
	case node.KindExtendedExistentialTypeShape:
		return r.mangleExtendedExistentialTypeShape(n, depth)
	case node.KindSymbolicExtendedExistentialType:
		return r.mangleSymbolicExtendedExistentialType(n, depth)
	case node.KindPack:
		if err := r.mangleTypeList(n, depth); err != nil {
			return err
		}
		r.append("QP")
		return nil
	case node.KindSilPackDirect:
		if err := r.mangleTypeList(n, depth); err != nil {
			return err
		}
		r.append("Qsd")
		return nil
	case node.KindSilPackIndirect:
		if err := r.mangleTypeList(n, depth); err != nil {
			return err
		}
		r.append("QSi")
		return nil
	case node.KindPackElement:
		return r.mangleInterleaved(n, depth, 0, "Qe", 1)
	case node.KindPackElementLevel, node.KindNumber:
		return r.mangleNodeIndex(n)
	case node.KindInteger:
		r.append("$")
		return r.mangleNodeIndex(n)
	case node.KindNegativeInteger:
		// The payload holds the magnitude.
		r.append("$n")
		return r.mangleNodeIndex(n)
	case node.KindIndexSubset:
		r.append(n.TextOrEmpty())
		return nil
	case node.KindDifferentiableFunctionType:
		code, err := differentiabilityCode(n, node.IsDifferentiabilityKind)
		if err != nil {
			return err
		}
		r.append("Yj")
		r.appendByte(code)
		return nil
	case node.KindAutoDiffFunctionKind:
		code, err := differentiabilityCode(n, node.IsAutoDiffFunctionKind)
		if err != nil {
			return err
		}
		r.appendByte(code)
		return nil
	case node.KindImplDifferentiabilityKind:
		code, err := differentiabilityCode(n, node.IsDifferentiabilityKind)
		if err != nil {
			return err
		}
		r.appendByte(code)
		return nil
	case node.KindDroppedArgument:
		idx, ok := n.Index()
		if !ok {
			return invalid(n, "dropped argument without index")
		}
		r.appendByte('t')
		if idx > 0 {
			r.appendUint(idx - 1)
		}
		return nil
	case node.KindUniquable:
		return r.mangleInterleaved(n, depth, 0, "Mq")

	case node.KindDependentGenericParamType:
		return r.mangleDependentGenericParamType(n)
	case node.KindDependentMemberType:
		return r.mangleDependentMemberType(n, depth)
	case node.KindDependentAssociatedTypeRef:
		c, err := child(n, 0)
		if err != nil {
			return err
		}
		if err := r.mangleIdentifier(c); err != nil {
			return err
		}
		if n.NumChildren() > 1 {
			return r.mangleChild(n, 1, depth+1)
		}
		return nil
	case node.KindDependentGenericSignature, node.KindDependentPseudogenericSignature:
		return r.mangleGenericSignature(n, depth)
	case node.KindDependentGenericConformanceRequirement:
		return r.mangleConformanceRequirement(n, depth)
	case node.KindDependentGenericSameTypeRequirement:
		return r.mangleSameTypeRequirement(n, depth)
	case node.KindDependentGenericSameShapeRequirement:
		return r.mangleSameShapeRequirement(n, depth)
	case node.KindDependentGenericLayoutRequirement:
		return r.mangleLayoutRequirement(n, depth)
	case node.KindDependentGenericInverseConformanceRequirement:
		return r.mangleInverseConformanceRequirement(n, depth)
	case node.KindDependentGenericParamPackMarker:
		p, err := path(n, 0, 0)
		if err != nil {
			return err
		}
		r.append("Rv")
		return r.mangleParamIndex(p, "", "z")
	case node.KindDependentGenericParamValueMarker:
		if err := r.mangleTypeChild(n, 1, depth); err != nil {
			return err
		}
		p, err := path(n, 0, 0)
		if err != nil {
			return err
		}
		r.append("RV")
		return r.mangleParamIndex(p, "", "z")
	case node.KindAssociatedTypeRef:
		return r.mangleAnyGenericType(n, "Qa", depth)
	case node.KindAssocTypePath:
		first := true
		for i := range n.NumChildren() {
			if err := r.mangle(n.Child(i), depth+1); err != nil {
				return err
			}
			r.listSeparator(&first)
		}
		return nil
	case node.KindAssociatedTypeGenericParamRef:
		if err := r.mangleTypeChild(n, 0, depth); err != nil {
			return err
		}
		if err := r.mangleChild(n, 1, depth+1); err != nil {
			return err
		}
		r.append("MXA")
		return nil

	case node.KindOpaqueType:
		return r.mangleOpaqueType(n, depth)
	case node.KindOpaqueReturnType:
		if c := n.FirstChild(); c.Is(node.KindOpaqueReturnTypeIndex) {
			idx, ok := c.Index()
			if !ok {
				return invalid(c, "opaque return type without ordinal")
			}
			r.append("QR")
			r.mangleIndex(idx)
			return nil
		}
		r.append("Qr")
		return nil
	case node.KindOpaqueReturnTypeOf:
		return r.mangleInterleaved(n, depth, 0, "QO")
	case node.KindOpaqueReturnTypeIndex, node.KindOpaqueReturnTypeParent:
		return newError(BadNodeKind, n)
	case node.KindMacroExpansionLoc:
		return r.mangleMacroExpansionLoc(n, depth)
	case node.KindMacroExpansionUniqueName:
		return r.mangleMacroExpansion(n, "fMu", depth)
	case node.KindFreestandingMacroExpansion:
		return r.mangleMacroExpansion(n, "fMf", depth)

	case node.KindProtocolConformance:
		return r.mangleProtocolConformance(n, depth)
	case node.KindConcreteProtocolConformance:
		return r.mangleConcreteProtocolConformance(n, depth)
	case node.KindPackProtocolConformance:
		c, err := child(n, 0)
		if err != nil {
			return err
		}
		if err := r.mangleAnyProtocolConformanceList(c, depth); err != nil {
			return err
		}
		r.append("HX")
		return nil
	case node.KindAnyProtocolConformanceList:
		return r.mangleAnyProtocolConformanceList(n, depth)
	case node.KindDependentProtocolConformanceRoot, node.KindDependentProtocolConformanceInherited,
		node.KindDependentProtocolConformanceAssociated, node.KindDependentProtocolConformanceOpaque:
		return r.mangleDependentProtocolConformance(n, depth)
	case node.KindDependentAssociatedConformance:
		if err := r.mangleTypeChild(n, 0, depth); err != nil {
			return err
		}
		return r.manglePureProtocol(n.Child(1), depth+1)
	case node.KindRetroactiveConformance:
		return r.mangleRetroactiveConformance(n, depth)
	case node.KindProtocolConformanceDescriptor:
		return r.mangleConformanceOf(n, "Mc", depth)
	case node.KindProtocolConformanceDescriptorRecord:
		return r.mangleConformanceOf(n, "Hc", depth)
	case node.KindProtocolConformanceRefInTypeModule:
		return r.manglePureProtocolThen(n, 0, "HP", depth)
	case node.KindProtocolConformanceRefInProtocolModule:
		return r.manglePureProtocolThen(n, 0, "Hp", depth)
	case node.KindProtocolConformanceRefInOtherModule:
		if err := r.manglePureProtocol(n.Child(0), depth+1); err != nil {
			return err
		}
		return r.mangleChild(n, 1, depth+1)
	case node.KindProtocolDescriptor:
		return r.manglePureProtocolThen(n, 0, "Mp", depth)
	case node.KindProtocolDescriptorRecord:
		return r.manglePureProtocolThen(n, 0, "Hr", depth)
	case node.KindProtocolRequirementsBaseDescriptor:
		return r.manglePureProtocolThen(n, 0, "TL", depth)
	case node.KindProtocolSelfConformanceDescriptor:
		return r.manglePureProtocolThen(n, 0, "MS", depth)
	case node.KindProtocolSelfConformanceWitnessTable:
		return r.manglePureProtocolThen(n, 0, "WS", depth)
	case node.KindBaseConformanceDescriptor:
		if err := r.mangleChild(n, 0, depth+1); err != nil {
			return err
		}
		return r.manglePureProtocolThen(n, 1, "Tb", depth)
	case node.KindAssociatedConformanceDescriptor:
		return r.mangleAssociatedConformance(n, "Tn", depth)
	case node.KindDefaultAssociatedConformanceAccessor:
		return r.mangleAssociatedConformance(n, "TN", depth)
	case node.KindValueWitness:
		return r.mangleValueWitness(n, depth)
	case node.KindFieldOffset:
		return r.mangleInterleaved(n, depth, 1, "Wv", 0)
	case node.KindDirectness:
		return r.mangleDirectness(n)
	case node.KindAnonymousDescriptor:
		if err := r.mangleChild(n, 0, depth+1); err != nil {
			return err
		}
		if n.NumChildren() == 1 {
			r.append("MXX")
			return nil
		}
		if err := r.mangleIdentifier(n.Child(1)); err != nil {
			return err
		}
		r.append("MXY")
		return nil
	case node.KindExtensionDescriptor:
		return r.mangleInterleaved(n, depth, 0, "MXE")
	case node.KindModuleDescriptor:
		return r.mangleInterleaved(n, depth, 0, "MXM")

	case node.KindOutlinedVariable, node.KindOutlinedReadOnlyObject:
		idx, ok := n.Index()
		if !ok {
			return invalid(n, "missing index")
		}
		r.append("Tv")
		r.mangleIndex(idx)
		if n.Is(node.KindOutlinedReadOnlyObject) {
			r.appendByte('r')
		}
		return nil
	case node.KindOutlinedBridgedMethod:
		r.append("Te" + n.TextOrEmpty() + "_")
		return nil
	case node.KindOutlinedEnumProjectDataForLoad:
		return r.mangleOutlinedEnum(n, "WOj", depth)
	case node.KindOutlinedEnumTagStore:
		return r.mangleOutlinedEnum(n, "WOi", depth)
	case node.KindObjCAsyncCompletionHandlerImpl:
		if err := r.mangleChild(n, 0, depth+1); err != nil {
			return err
		}
		if err := r.mangleChild(n, 1, depth+1); err != nil {
			return err
		}
		if n.NumChildren() == 4 {
			if err := r.mangleChild(n, 3, depth+1); err != nil {
				return err
			}
		}
		r.append("Tz")
		return r.mangleChild(n, 2, depth+1)
	case node.KindAsyncAwaitResumePartialFunction:
		r.append("TQ")
		return r.mangleChild(n, 0, depth+1)
	case node.KindAsyncSuspendResumePartialFunction:
		r.append("TY")
		return r.mangleChild(n, 0, depth+1)
	case node.KindGlobalVariableOnceDeclList:
		for i := range n.NumChildren() {
			if err := r.mangle(n.Child(i), depth+1); err != nil {
				return err
			}
			r.appendByte('_')
		}
		return nil

	case node.KindGenericSpecialization:
		return r.mangleGenericSpecialization(n, "g", depth)
	case node.KindGenericSpecializationPrespecialized:
		return r.mangleGenericSpecialization(n, "s", depth)
	case node.KindGenericSpecializationNotReAbstracted:
		return r.mangleGenericSpecialization(n, "G", depth)
	case node.KindGenericSpecializationInResilienceDomain:
		return r.mangleGenericSpecialization(n, "B", depth)
	case node.KindInlinedGenericFunction:
		return r.mangleGenericSpecialization(n, "i", depth)
	case node.KindGenericPartialSpecialization:
		return r.mangleGenericPartialSpecialization(n, "Tp", depth)
	case node.KindGenericPartialSpecializationNotReAbstracted:
		return r.mangleGenericPartialSpecialization(n, "TP", depth)
	case node.KindFunctionSignatureSpecialization:
		return r.mangleFunctionSignatureSpecialization(n, depth)
	case node.KindFunctionSignatureSpecializationParam,
		node.KindFunctionSignatureSpecializationReturn:
		return r.mangleFunctionSignatureSpecializationParam(n)
	case node.KindSpecializationPassID:
		idx, ok := n.Index()
		if !ok {
			return invalid(n, "specialization pass without id")
		}
		r.appendUint(idx)
		return nil

	case node.KindImplFunctionType:
		return r.mangleImplFunctionType(n, depth)
	case node.KindImplConvention:
		return r.mangleImplConvention(n)
	case node.KindImplFunctionConvention:
		return r.mangleImplFunctionConvention(n, depth)
	case node.KindImplParameterResultDifferentiability:
		return r.mangleImplDifferentiability(n)
	case node.KindImplParameterSending, node.KindImplParameterIsolated,
		node.KindImplParameterImplicitLeading:
		return r.mangleImplParameterFlag(n)
	case node.KindImplSendingResult:
		r.appendByte('T')
		return r.mangleChildren(n, depth+1)
	case node.KindImplParameter, node.KindImplResult:
		return invalid(n, "impl parameter outside a function type")

	case node.KindAutoDiffFunction:
		return r.mangleAutoDiffFunction(n, "TJ", false, depth)
	case node.KindAutoDiffDerivativeVTableThunk:
		return r.mangleAutoDiffFunction(n, "TJV", false, depth)
	case node.KindAutoDiffSubsetParametersThunk:
		return r.mangleAutoDiffFunction(n, "TJS", true, depth)
	case node.KindDifferentiabilityWitness:
		return r.mangleDifferentiabilityWitness(n, depth)
	case node.KindAutoDiffSelfReorderingReabstractionThunk:
		return r.mangleSelfReorderingThunk(n, depth)

	case node.KindKeyPathGetterThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "TK", depth)
	case node.KindKeyPathSetterThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "Tk", depth)
	case node.KindKeyPathEqualsThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "TH", depth)
	case node.KindKeyPathHashThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "Th", depth)
	case node.KindKeyPathAppliedMethodThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "TkMA", depth)
	case node.KindKeyPathUnappliedMethodThunkHelper:
		return r.mangleKeyPathThunkHelper(n, "Tkmu", depth)

	case node.KindTypeSymbolicReference, node.KindProtocolSymbolicReference,
		node.KindObjectiveCProtocolSymbolicReference, node.KindOpaqueTypeDescriptorSymbolicReference,
		node.KindUniqueExtendedExistentialTypeShapeSymbolicReference,
		node.KindNonUniqueExtendedExistentialTypeShapeSymbolicReference:
		return r.mangleSymbolicReference(n, depth)
	}
	return newError(UnsupportedNodeKind, n)
}

// mangleInterleaved writes the children named by the int parts and the
// literal operators named by the string parts, in order.
func (r *remangler) mangleInterleaved(n *node.Node, depth int, parts ...any) error {
	for _, p := range parts {
		switch p := p.(type) {
		case int:
			if err := r.mangleChild(n, p, depth+1); err != nil {
				return err
			}
		case string:
			r.append(p)
		}
	}
	return nil
}

// mangleTypeChild writes the i-th child, which must be a Type.
func (r *remangler) mangleTypeChild(n *node.Node, i, depth int) error {
	c, err := child(n, i)
	if err != nil {
		return err
	}
	if !c.Is(node.KindType) {
		return invalid(c, "expected a type")
	}
	return r.mangle(c, depth+1)
}

func (r *remangler) mangleNodeIndex(n *node.Node) error {
	idx, ok := n.Index()
	if !ok {
		return invalid(n, "missing index")
	}
	r.mangleIndex(idx)
	return nil
}

// differentiabilityCode returns the scalar a differentiability payload is
// spelled with, failing unless valid accepts it.
func differentiabilityCode(n *node.Node, valid func(rune) bool) (byte, error) {
	idx, ok := n.Index()
	if !ok || idx > 0x7f || !valid(rune(idx)) {
		return 0, newError(InvalidDifferentiability, n)
	}
	return byte(idx), nil
}
