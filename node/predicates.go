package node

// IsDeclName reports kinds that can name a declaration.
func (k Kind) IsDeclName() bool {
	switch k {
	case KindIdentifier, KindLocalDeclName, KindPrivateDeclName, KindRelatedEntityDeclName,
		KindPrefixOperator, KindPostfixOperator, KindInfixOperator,
		KindTypeSymbolicReference, KindProtocolSymbolicReference, KindObjectiveCProtocolSymbolicReference:
		return true
	}
	return false
}

// IsContext reports kinds that may appear as the context of a declaration.
func (k Kind) IsContext() bool {
	switch k {
	case KindAllocator, KindAnonymousContext, KindAutoDiffFunction, KindClass, KindConstructor,
		KindCurryThunk, KindDeallocator, KindDefaultArgumentInitializer, KindDestructor, KindDidSet,
		KindDispatchThunk, KindEnum, KindExplicitClosure, KindExtension, KindFunction,
		KindGetter, KindGlobalGetter, KindIVarInitializer, KindIVarDestroyer, KindImplicitClosure,
		KindInitializer, KindInitAccessor, KindIsolatedDeallocator, KindMaterializeForSet,
		KindModifyAccessor, KindModify2Accessor, KindModule, KindNativeOwningAddressor,
		KindNativeOwningMutableAddressor, KindNativePinningAddressor, KindNativePinningMutableAddressor,
		KindOpaqueReturnTypeOf, KindOtherNominalType, KindOwningAddressor, KindOwningMutableAddressor,
		KindPropertyWrapperBackingInitializer, KindPropertyWrapperInitFromProjectedValue, KindProtocol,
		KindProtocolSymbolicReference, KindReadAccessor, KindRead2Accessor, KindSetter, KindStatic,
		KindStructure, KindSubscript, KindTypeSymbolicReference, KindTypeAlias, KindUnsafeAddressor,
		KindUnsafeMutableAddressor, KindVariable, KindWillSet:
		return true
	}
	return false
}

// IsAnyGeneric reports nominal kinds that may carry generic arguments.
func (k Kind) IsAnyGeneric() bool {
	switch k {
	case KindStructure, KindClass, KindEnum, KindProtocol, KindProtocolSymbolicReference,
		KindOtherNominalType, KindTypeAlias, KindTypeSymbolicReference,
		KindObjectiveCProtocolSymbolicReference:
		return true
	}
	return false
}

// IsEntity reports Type or any context kind.
func (k Kind) IsEntity() bool {
	return k == KindType || k.IsContext()
}

// IsRequirement reports generic-signature requirement kinds.
func (k Kind) IsRequirement() bool {
	switch k {
	case KindDependentGenericParamPackMarker, KindDependentGenericParamValueMarker,
		KindDependentGenericSameTypeRequirement, KindDependentGenericSameShapeRequirement,
		KindDependentGenericLayoutRequirement, KindDependentGenericConformanceRequirement,
		KindDependentGenericInverseConformanceRequirement:
		return true
	}
	return false
}

// IsFunctionAttr reports attributes that prefix an entity at the top level
// of a symbol (specializations, thunks and similar).
func (k Kind) IsFunctionAttr() bool {
	switch k {
	case KindFunctionSignatureSpecialization, KindGenericSpecialization,
		KindGenericSpecializationPrespecialized, KindInlinedGenericFunction,
		KindGenericSpecializationNotReAbstracted, KindGenericPartialSpecialization,
		KindGenericPartialSpecializationNotReAbstracted, KindGenericSpecializationInResilienceDomain,
		KindObjCAttribute, KindNonObjCAttribute, KindDynamicAttribute,
		KindDirectMethodReferenceAttribute, KindVTableAttribute, KindPartialApplyForwarder,
		KindPartialApplyObjCForwarder, KindOutlinedVariable, KindOutlinedReadOnlyObject,
		KindOutlinedBridgedMethod, KindMergedFunction, KindDistributedThunk, KindDistributedAccessor,
		KindDynamicallyReplaceableFunctionImpl, KindDynamicallyReplaceableFunctionKey,
		KindDynamicallyReplaceableFunctionVar, KindAsyncFunctionPointer,
		KindAsyncAwaitResumePartialFunction, KindAsyncSuspendResumePartialFunction,
		KindAccessibleFunctionRecord, KindBackDeploymentThunk, KindBackDeploymentFallback,
		KindHasSymbolQuery, KindCoroFunctionPointer, KindDefaultOverride:
		return true
	}
	return false
}

// IsMacroExpansion reports macro expansion kinds.
func (k Kind) IsMacroExpansion() bool {
	switch k {
	case KindAccessorAttachedMacroExpansion, KindMemberAttributeAttachedMacroExpansion,
		KindFreestandingMacroExpansion, KindMemberAttachedMacroExpansion,
		KindPeerAttachedMacroExpansion, KindConformanceAttachedMacroExpansion,
		KindExtensionAttachedMacroExpansion, KindBodyAttachedMacroExpansion,
		KindMacroExpansionLoc:
		return true
	}
	return false
}

// IsExistentialType reports existential type kinds.
func (k Kind) IsExistentialType() bool {
	switch k {
	case KindExistentialMetatype, KindProtocolList, KindProtocolListWithClass, KindProtocolListWithAnyObject:
		return true
	}
	return false
}

// IsOperator reports operator identifier kinds.
func (k Kind) IsOperator() bool {
	switch k {
	case KindInfixOperator, KindPrefixOperator, KindPostfixOperator:
		return true
	}
	return false
}

// IsProtocol reports whether n is a Type whose child names a protocol.
func (n *Node) IsProtocol() bool {
	if n == nil {
		return false
	}
	switch n.kind {
	case KindType:
		return n.FirstChild().IsProtocol()
	case KindProtocol, KindProtocolSymbolicReference, KindObjectiveCProtocolSymbolicReference:
		return true
	}
	return false
}

// IsSwiftModule reports a Module node named "Swift".
func (n *Node) IsSwiftModule() bool {
	return n.Is(KindModule) && n.payload == PayloadText && n.text == StdlibModule
}
