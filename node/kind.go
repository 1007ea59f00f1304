package node

import "strconv"

// Kind identifies the grammar production a Node instantiates.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindAccessibleFunctionRecord
	KindAccessorAttachedMacroExpansion
	KindAccessorFunctionReference
	KindAllocator
	KindAnonymousContext
	KindAnonymousDescriptor
	KindAnyProtocolConformanceList
	KindArgumentTuple
	KindAssociatedConformanceDescriptor
	KindAssociatedType
	KindAssociatedTypeDescriptor
	KindAssociatedTypeGenericParamRef
	KindAssociatedTypeMetadataAccessor
	KindAssociatedTypeRef
	KindAssociatedTypeWitnessTableAccessor
	KindAssocTypePath
	KindAsyncAnnotation
	KindAsyncAwaitResumePartialFunction
	KindAsyncFunctionPointer
	KindAsyncRemoved
	KindAsyncSuspendResumePartialFunction
	KindAutoClosureType
	KindAutoDiffDerivativeVTableThunk
	KindAutoDiffFunction
	KindAutoDiffFunctionKind
	KindAutoDiffSelfReorderingReabstractionThunk
	KindAutoDiffSubsetParametersThunk
	KindBackDeploymentFallback
	KindBackDeploymentThunk
	KindBaseConformanceDescriptor
	KindBaseWitnessTableAccessor
	KindBodyAttachedMacroExpansion
	KindBoundGenericClass
	KindBoundGenericEnum
	KindBoundGenericFunction
	KindBoundGenericOtherNominalType
	KindBoundGenericProtocol
	KindBoundGenericStructure
	KindBoundGenericTypeAlias
	KindBuiltinFixedArray
	KindBuiltinTupleType
	KindBuiltinTypeName
	KindCanonicalPrespecializedGenericTypeCachingOnceToken
	KindCanonicalSpecializedGenericMetaclass
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction
	KindCFunctionPointer
	KindClangType
	KindClass
	KindClassMetadataBaseOffset
	KindCompileTimeConst
	KindCompileTimeLiteral
	KindConcreteProtocolConformance
	KindConcurrentFunctionType
	KindConformanceAttachedMacroExpansion
	KindConstrainedExistential
	KindConstrainedExistentialRequirementList
	KindConstrainedExistentialSelf
	KindConstructor
	KindConstValue
	KindCoroFunctionPointer
	KindCoroutineContinuationPrototype
	KindCurryThunk
	KindDeallocator
	KindDeclContext
	KindDefaultArgumentInitializer
	KindDefaultAssociatedConformanceAccessor
	KindDefaultAssociatedTypeMetadataAccessor
	KindDefaultOverride
	KindDependentAssociatedConformance
	KindDependentAssociatedTypeRef
	KindDependentGenericConformanceRequirement
	KindDependentGenericInverseConformanceRequirement
	KindDependentGenericLayoutRequirement
	KindDependentGenericParamCount
	KindDependentGenericParamPackMarker
	KindDependentGenericParamType
	KindDependentGenericParamValueMarker
	KindDependentGenericSameShapeRequirement
	KindDependentGenericSameTypeRequirement
	KindDependentGenericSignature
	KindDependentGenericType
	KindDependentMemberType
	KindDependentProtocolConformanceAssociated
	KindDependentProtocolConformanceInherited
	KindDependentProtocolConformanceOpaque
	KindDependentProtocolConformanceRoot
	KindDependentPseudogenericSignature
	KindDestructor
	KindDidSet
	KindDifferentiabilityWitness
	KindDifferentiableFunctionType
	KindDirectMethodReferenceAttribute
	KindDirectness
	KindDispatchThunk
	KindDistributedAccessor
	KindDistributedThunk
	KindDroppedArgument
	KindDynamicallyReplaceableFunctionImpl
	KindDynamicallyReplaceableFunctionKey
	KindDynamicallyReplaceableFunctionVar
	KindDynamicAttribute
	KindDynamicSelf
	KindEmptyList
	KindEnum
	KindEnumCase
	KindErrorType
	KindEscapingAutoClosureType
	KindEscapingObjCBlock
	KindExistentialMetatype
	KindExplicitClosure
	KindExtendedExistentialTypeShape
	KindExtension
	KindExtensionAttachedMacroExpansion
	KindExtensionDescriptor
	KindFieldOffset
	KindFirstElementMarker
	KindFreestandingMacroExpansion
	KindFullObjCResilientClassStub
	KindFullTypeMetadata
	KindFunction
	KindFunctionSignatureSpecialization
	KindFunctionSignatureSpecializationParam
	KindFunctionSignatureSpecializationParamKind
	KindFunctionSignatureSpecializationParamPayload
	KindFunctionSignatureSpecializationReturn
	KindFunctionType
	KindGenericPartialSpecialization
	KindGenericPartialSpecializationNotReAbstracted
	KindGenericProtocolWitnessTable
	KindGenericProtocolWitnessTableInstantiationFunction
	KindGenericSpecialization
	KindGenericSpecializationInResilienceDomain
	KindGenericSpecializationNotReAbstracted
	KindGenericSpecializationParam
	KindGenericSpecializationPrespecialized
	KindGenericTypeMetadataPattern
	KindGenericTypeParamDecl
	KindGetter
	KindGlobal
	KindGlobalActorFunctionType
	KindGlobalGetter
	KindGlobalVariableOnceDeclList
	KindGlobalVariableOnceFunction
	KindGlobalVariableOnceToken
	KindHasSymbolQuery
	KindIdentifier
	KindImplConvention
	KindImplCoroutineKind
	KindImplDifferentiabilityKind
	KindImplErasedIsolation
	KindImplErrorResult
	KindImplEscaping
	KindImplFunctionAttribute
	KindImplFunctionConvention
	KindImplFunctionConventionName
	KindImplFunctionType
	KindImplicitClosure
	KindImplInvocationSubstitutions
	KindImplParameter
	KindImplParameterImplicitLeading
	KindImplParameterIsolated
	KindImplParameterResultDifferentiability
	KindImplParameterSending
	KindImplPatternSubstitutions
	KindImplResult
	KindImplSendingResult
	KindImplYield
	KindIndex
	KindIndexSubset
	KindInfixOperator
	KindInitAccessor
	KindInitializer
	KindInlinedGenericFunction
	KindInOut
	KindInteger
	KindIsolated
	KindIsolatedAnyFunctionType
	KindIsolatedDeallocator
	KindIsSerialized
	KindIVarDestroyer
	KindIVarInitializer
	KindKeyPathAppliedMethodThunkHelper
	KindKeyPathEqualsThunkHelper
	KindKeyPathGetterThunkHelper
	KindKeyPathHashThunkHelper
	KindKeyPathSetterThunkHelper
	KindKeyPathUnappliedMethodThunkHelper
	KindLabelList
	KindLazyProtocolWitnessTableAccessor
	KindLazyProtocolWitnessTableCacheVariable
	KindLocalDeclName
	KindMacro
	KindMacroExpansionLoc
	KindMacroExpansionUniqueName
	KindMaterializeForSet
	KindMemberAttachedMacroExpansion
	KindMemberAttributeAttachedMacroExpansion
	KindMergedFunction
	KindMetaclass
	KindMetadataInstantiationCache
	KindMetatype
	KindMetatypeRepresentation
	KindMethodDescriptor
	KindMethodLookupFunction
	KindModify2Accessor
	KindModifyAccessor
	KindModule
	KindModuleDescriptor
	KindNativeOwningAddressor
	KindNativeOwningMutableAddressor
	KindNativePinningAddressor
	KindNativePinningMutableAddressor
	KindNegativeInteger
	KindNoDerivative
	KindNoEscapeFunctionType
	KindNominalTypeDescriptor
	KindNominalTypeDescriptorRecord
	KindNoncanonicalSpecializedGenericTypeMetadata
	KindNoncanonicalSpecializedGenericTypeMetadataCache
	KindNonIsolatedCallerFunctionType
	KindNonObjCAttribute
	KindNonUniqueExtendedExistentialTypeShapeSymbolicReference
	KindNumber
	KindObjCAsyncCompletionHandlerImpl
	KindObjCAttribute
	KindObjCBlock
	KindObjCMetadataUpdateFunction
	KindObjCResilientClassStub
	KindObjectiveCProtocolSymbolicReference
	KindOpaqueReturnType
	KindOpaqueReturnTypeIndex
	KindOpaqueReturnTypeOf
	KindOpaqueReturnTypeParent
	KindOpaqueType
	KindOpaqueTypeDescriptor
	KindOpaqueTypeDescriptorAccessor
	KindOpaqueTypeDescriptorAccessorImpl
	KindOpaqueTypeDescriptorAccessorKey
	KindOpaqueTypeDescriptorAccessorVar
	KindOpaqueTypeDescriptorRecord
	KindOpaqueTypeDescriptorSymbolicReference
	KindOtherNominalType
	KindOutlinedAssignWithCopy
	KindOutlinedAssignWithCopyNoValueWitness
	KindOutlinedAssignWithTake
	KindOutlinedAssignWithTakeNoValueWitness
	KindOutlinedBridgedMethod
	KindOutlinedConsume
	KindOutlinedCopy
	KindOutlinedDestroy
	KindOutlinedDestroyNoValueWitness
	KindOutlinedEnumGetTag
	KindOutlinedEnumProjectDataForLoad
	KindOutlinedEnumTagStore
	KindOutlinedInitializeWithCopy
	KindOutlinedInitializeWithCopyNoValueWitness
	KindOutlinedInitializeWithTake
	KindOutlinedInitializeWithTakeNoValueWitness
	KindOutlinedReadOnlyObject
	KindOutlinedRelease
	KindOutlinedRetain
	KindOutlinedVariable
	KindOwned
	KindOwningAddressor
	KindOwningMutableAddressor
	KindPack
	KindPackElement
	KindPackElementLevel
	KindPackExpansion
	KindPackProtocolConformance
	KindPartialApplyForwarder
	KindPartialApplyObjCForwarder
	KindPeerAttachedMacroExpansion
	KindPostfixOperator
	KindPredefinedObjCAsyncCompletionHandlerImpl
	KindPrefixOperator
	KindPrivateDeclName
	KindPropertyDescriptor
	KindPropertyWrapperBackingInitializer
	KindPropertyWrapperInitFromProjectedValue
	KindProtocol
	KindProtocolConformance
	KindProtocolConformanceDescriptor
	KindProtocolConformanceDescriptorRecord
	KindProtocolConformanceRefInOtherModule
	KindProtocolConformanceRefInProtocolModule
	KindProtocolConformanceRefInTypeModule
	KindProtocolDescriptor
	KindProtocolDescriptorRecord
	KindProtocolList
	KindProtocolListWithAnyObject
	KindProtocolListWithClass
	KindProtocolRequirementsBaseDescriptor
	KindProtocolSelfConformanceDescriptor
	KindProtocolSelfConformanceWitness
	KindProtocolSelfConformanceWitnessTable
	KindProtocolSymbolicReference
	KindProtocolWitness
	KindProtocolWitnessTable
	KindProtocolWitnessTableAccessor
	KindProtocolWitnessTablePattern
	KindReabstractionThunk
	KindReabstractionThunkHelper
	KindReabstractionThunkHelperWithGlobalActor
	KindReabstractionThunkHelperWithSelf
	KindRead2Accessor
	KindReadAccessor
	KindReflectionMetadataAssocTypeDescriptor
	KindReflectionMetadataBuiltinDescriptor
	KindReflectionMetadataFieldDescriptor
	KindReflectionMetadataSuperclassDescriptor
	KindRelatedEntityDeclName
	KindResilientProtocolWitnessTable
	KindRetroactiveConformance
	KindReturnType
	KindSending
	KindSendingResultFunctionType
	KindSetter
	KindShared
	KindSilBoxImmutableField
	KindSilBoxLayout
	KindSilBoxMutableField
	KindSilBoxType
	KindSilBoxTypeWithLayout
	KindSilPackDirect
	KindSilPackIndirect
	KindSilThunkHopToMainActorIfNeeded
	KindSilThunkIdentity
	KindSpecializationPassID
	KindStatic
	KindStructure
	KindSubscript
	KindSuffix
	KindSugaredArray
	KindSugaredDictionary
	KindSugaredInlineArray
	KindSugaredOptional
	KindSugaredParen
	KindSymbolicExtendedExistentialType
	KindThinFunctionType
	KindThrowsAnnotation
	KindTuple
	KindTupleElement
	KindTupleElementName
	KindType
	KindTypeAlias
	KindTypedThrowsAnnotation
	KindTypeList
	KindTypeMangling
	KindTypeMetadata
	KindTypeMetadataAccessFunction
	KindTypeMetadataCompletionFunction
	KindTypeMetadataDemanglingCache
	KindTypeMetadataInstantiationCache
	KindTypeMetadataInstantiationFunction
	KindTypeMetadataLazyCache
	KindTypeMetadataMangledNameRef
	KindTypeMetadataSingletonInitializationCache
	KindTypeSymbolicReference
	KindUncurriedFunctionType
	KindUniquable
	KindUniqueExtendedExistentialTypeShapeSymbolicReference
	KindUnknownIndex
	KindUnmanaged
	KindUnowned
	KindUnsafeAddressor
	KindUnsafeMutableAddressor
	KindValueWitness
	KindValueWitnessTable
	KindVariable
	KindVariadicMarker
	KindVTableAttribute
	KindVTableThunk
	KindWeak
	KindWillSet

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:                                                "Unknown",
	KindAccessibleFunctionRecord:                               "AccessibleFunctionRecord",
	KindAccessorAttachedMacroExpansion:                         "AccessorAttachedMacroExpansion",
	KindAccessorFunctionReference:                              "AccessorFunctionReference",
	KindAllocator:                                              "Allocator",
	KindAnonymousContext:                                       "AnonymousContext",
	KindAnonymousDescriptor:                                    "AnonymousDescriptor",
	KindAnyProtocolConformanceList:                             "AnyProtocolConformanceList",
	KindArgumentTuple:                                          "ArgumentTuple",
	KindAssociatedConformanceDescriptor:                        "AssociatedConformanceDescriptor",
	KindAssociatedType:                                         "AssociatedType",
	KindAssociatedTypeDescriptor:                               "AssociatedTypeDescriptor",
	KindAssociatedTypeGenericParamRef:                          "AssociatedTypeGenericParamRef",
	KindAssociatedTypeMetadataAccessor:                         "AssociatedTypeMetadataAccessor",
	KindAssociatedTypeRef:                                      "AssociatedTypeRef",
	KindAssociatedTypeWitnessTableAccessor:                     "AssociatedTypeWitnessTableAccessor",
	KindAssocTypePath:                                          "AssocTypePath",
	KindAsyncAnnotation:                                        "AsyncAnnotation",
	KindAsyncAwaitResumePartialFunction:                        "AsyncAwaitResumePartialFunction",
	KindAsyncFunctionPointer:                                   "AsyncFunctionPointer",
	KindAsyncRemoved:                                           "AsyncRemoved",
	KindAsyncSuspendResumePartialFunction:                      "AsyncSuspendResumePartialFunction",
	KindAutoClosureType:                                        "AutoClosureType",
	KindAutoDiffDerivativeVTableThunk:                          "AutoDiffDerivativeVTableThunk",
	KindAutoDiffFunction:                                       "AutoDiffFunction",
	KindAutoDiffFunctionKind:                                   "AutoDiffFunctionKind",
	KindAutoDiffSelfReorderingReabstractionThunk:               "AutoDiffSelfReorderingReabstractionThunk",
	KindAutoDiffSubsetParametersThunk:                          "AutoDiffSubsetParametersThunk",
	KindBackDeploymentFallback:                                 "BackDeploymentFallback",
	KindBackDeploymentThunk:                                    "BackDeploymentThunk",
	KindBaseConformanceDescriptor:                              "BaseConformanceDescriptor",
	KindBaseWitnessTableAccessor:                               "BaseWitnessTableAccessor",
	KindBodyAttachedMacroExpansion:                             "BodyAttachedMacroExpansion",
	KindBoundGenericClass:                                      "BoundGenericClass",
	KindBoundGenericEnum:                                       "BoundGenericEnum",
	KindBoundGenericFunction:                                   "BoundGenericFunction",
	KindBoundGenericOtherNominalType:                           "BoundGenericOtherNominalType",
	KindBoundGenericProtocol:                                   "BoundGenericProtocol",
	KindBoundGenericStructure:                                  "BoundGenericStructure",
	KindBoundGenericTypeAlias:                                  "BoundGenericTypeAlias",
	KindBuiltinFixedArray:                                      "BuiltinFixedArray",
	KindBuiltinTupleType:                                       "BuiltinTupleType",
	KindBuiltinTypeName:                                        "BuiltinTypeName",
	KindCanonicalPrespecializedGenericTypeCachingOnceToken:     "CanonicalPrespecializedGenericTypeCachingOnceToken",
	KindCanonicalSpecializedGenericMetaclass:                   "CanonicalSpecializedGenericMetaclass",
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction:  "CanonicalSpecializedGenericTypeMetadataAccessFunction",
	KindCFunctionPointer:                                       "CFunctionPointer",
	KindClangType:                                              "ClangType",
	KindClass:                                                  "Class",
	KindClassMetadataBaseOffset:                                "ClassMetadataBaseOffset",
	KindCompileTimeConst:                                       "CompileTimeConst",
	KindCompileTimeLiteral:                                     "CompileTimeLiteral",
	KindConcreteProtocolConformance:                            "ConcreteProtocolConformance",
	KindConcurrentFunctionType:                                 "ConcurrentFunctionType",
	KindConformanceAttachedMacroExpansion:                      "ConformanceAttachedMacroExpansion",
	KindConstrainedExistential:                                 "ConstrainedExistential",
	KindConstrainedExistentialRequirementList:                  "ConstrainedExistentialRequirementList",
	KindConstrainedExistentialSelf:                             "ConstrainedExistentialSelf",
	KindConstructor:                                            "Constructor",
	KindConstValue:                                             "ConstValue",
	KindCoroFunctionPointer:                                    "CoroFunctionPointer",
	KindCoroutineContinuationPrototype:                         "CoroutineContinuationPrototype",
	KindCurryThunk:                                             "CurryThunk",
	KindDeallocator:                                            "Deallocator",
	KindDeclContext:                                            "DeclContext",
	KindDefaultArgumentInitializer:                             "DefaultArgumentInitializer",
	KindDefaultAssociatedConformanceAccessor:                   "DefaultAssociatedConformanceAccessor",
	KindDefaultAssociatedTypeMetadataAccessor:                  "DefaultAssociatedTypeMetadataAccessor",
	KindDefaultOverride:                                        "DefaultOverride",
	KindDependentAssociatedConformance:                         "DependentAssociatedConformance",
	KindDependentAssociatedTypeRef:                             "DependentAssociatedTypeRef",
	KindDependentGenericConformanceRequirement:                 "DependentGenericConformanceRequirement",
	KindDependentGenericInverseConformanceRequirement:          "DependentGenericInverseConformanceRequirement",
	KindDependentGenericLayoutRequirement:                      "DependentGenericLayoutRequirement",
	KindDependentGenericParamCount:                             "DependentGenericParamCount",
	KindDependentGenericParamPackMarker:                        "DependentGenericParamPackMarker",
	KindDependentGenericParamType:                              "DependentGenericParamType",
	KindDependentGenericParamValueMarker:                       "DependentGenericParamValueMarker",
	KindDependentGenericSameShapeRequirement:                   "DependentGenericSameShapeRequirement",
	KindDependentGenericSameTypeRequirement:                    "DependentGenericSameTypeRequirement",
	KindDependentGenericSignature:                              "DependentGenericSignature",
	KindDependentGenericType:                                   "DependentGenericType",
	KindDependentMemberType:                                    "DependentMemberType",
	KindDependentProtocolConformanceAssociated:                 "DependentProtocolConformanceAssociated",
	KindDependentProtocolConformanceInherited:                  "DependentProtocolConformanceInherited",
	KindDependentProtocolConformanceOpaque:                     "DependentProtocolConformanceOpaque",
	KindDependentProtocolConformanceRoot:                       "DependentProtocolConformanceRoot",
	KindDependentPseudogenericSignature:                        "DependentPseudogenericSignature",
	KindDestructor:                                             "Destructor",
	KindDidSet:                                                 "DidSet",
	KindDifferentiabilityWitness:                               "DifferentiabilityWitness",
	KindDifferentiableFunctionType:                             "DifferentiableFunctionType",
	KindDirectMethodReferenceAttribute:                         "DirectMethodReferenceAttribute",
	KindDirectness:                                             "Directness",
	KindDispatchThunk:                                          "DispatchThunk",
	KindDistributedAccessor:                                    "DistributedAccessor",
	KindDistributedThunk:                                       "DistributedThunk",
	KindDroppedArgument:                                        "DroppedArgument",
	KindDynamicallyReplaceableFunctionImpl:                     "DynamicallyReplaceableFunctionImpl",
	KindDynamicallyReplaceableFunctionKey:                      "DynamicallyReplaceableFunctionKey",
	KindDynamicallyReplaceableFunctionVar:                      "DynamicallyReplaceableFunctionVar",
	KindDynamicAttribute:                                       "DynamicAttribute",
	KindDynamicSelf:                                            "DynamicSelf",
	KindEmptyList:                                              "EmptyList",
	KindEnum:                                                   "Enum",
	KindEnumCase:                                               "EnumCase",
	KindErrorType:                                              "ErrorType",
	KindEscapingAutoClosureType:                                "EscapingAutoClosureType",
	KindEscapingObjCBlock:                                      "EscapingObjCBlock",
	KindExistentialMetatype:                                    "ExistentialMetatype",
	KindExplicitClosure:                                        "ExplicitClosure",
	KindExtendedExistentialTypeShape:                           "ExtendedExistentialTypeShape",
	KindExtension:                                              "Extension",
	KindExtensionAttachedMacroExpansion:                        "ExtensionAttachedMacroExpansion",
	KindExtensionDescriptor:                                    "ExtensionDescriptor",
	KindFieldOffset:                                            "FieldOffset",
	KindFirstElementMarker:                                     "FirstElementMarker",
	KindFreestandingMacroExpansion:                             "FreestandingMacroExpansion",
	KindFullObjCResilientClassStub:                             "FullObjCResilientClassStub",
	KindFullTypeMetadata:                                       "FullTypeMetadata",
	KindFunction:                                               "Function",
	KindFunctionSignatureSpecialization:                        "FunctionSignatureSpecialization",
	KindFunctionSignatureSpecializationParam:                   "FunctionSignatureSpecializationParam",
	KindFunctionSignatureSpecializationParamKind:               "FunctionSignatureSpecializationParamKind",
	KindFunctionSignatureSpecializationParamPayload:            "FunctionSignatureSpecializationParamPayload",
	KindFunctionSignatureSpecializationReturn:                  "FunctionSignatureSpecializationReturn",
	KindFunctionType:                                           "FunctionType",
	KindGenericPartialSpecialization:                           "GenericPartialSpecialization",
	KindGenericPartialSpecializationNotReAbstracted:            "GenericPartialSpecializationNotReAbstracted",
	KindGenericProtocolWitnessTable:                            "GenericProtocolWitnessTable",
	KindGenericProtocolWitnessTableInstantiationFunction:       "GenericProtocolWitnessTableInstantiationFunction",
	KindGenericSpecialization:                                  "GenericSpecialization",
	KindGenericSpecializationInResilienceDomain:                "GenericSpecializationInResilienceDomain",
	KindGenericSpecializationNotReAbstracted:                   "GenericSpecializationNotReAbstracted",
	KindGenericSpecializationParam:                             "GenericSpecializationParam",
	KindGenericSpecializationPrespecialized:                    "GenericSpecializationPrespecialized",
	KindGenericTypeMetadataPattern:                             "GenericTypeMetadataPattern",
	KindGenericTypeParamDecl:                                   "GenericTypeParamDecl",
	KindGetter:                                                 "Getter",
	KindGlobal:                                                 "Global",
	KindGlobalActorFunctionType:                                "GlobalActorFunctionType",
	KindGlobalGetter:                                           "GlobalGetter",
	KindGlobalVariableOnceDeclList:                             "GlobalVariableOnceDeclList",
	KindGlobalVariableOnceFunction:                             "GlobalVariableOnceFunction",
	KindGlobalVariableOnceToken:                                "GlobalVariableOnceToken",
	KindHasSymbolQuery:                                         "HasSymbolQuery",
	KindIdentifier:                                             "Identifier",
	KindImplConvention:                                         "ImplConvention",
	KindImplCoroutineKind:                                      "ImplCoroutineKind",
	KindImplDifferentiabilityKind:                              "ImplDifferentiabilityKind",
	KindImplErasedIsolation:                                    "ImplErasedIsolation",
	KindImplErrorResult:                                        "ImplErrorResult",
	KindImplEscaping:                                           "ImplEscaping",
	KindImplFunctionAttribute:                                  "ImplFunctionAttribute",
	KindImplFunctionConvention:                                 "ImplFunctionConvention",
	KindImplFunctionConventionName:                             "ImplFunctionConventionName",
	KindImplFunctionType:                                       "ImplFunctionType",
	KindImplicitClosure:                                        "ImplicitClosure",
	KindImplInvocationSubstitutions:                            "ImplInvocationSubstitutions",
	KindImplParameter:                                          "ImplParameter",
	KindImplParameterImplicitLeading:                           "ImplParameterImplicitLeading",
	KindImplParameterIsolated:                                  "ImplParameterIsolated",
	KindImplParameterResultDifferentiability:                   "ImplParameterResultDifferentiability",
	KindImplParameterSending:                                   "ImplParameterSending",
	KindImplPatternSubstitutions:                               "ImplPatternSubstitutions",
	KindImplResult:                                             "ImplResult",
	KindImplSendingResult:                                      "ImplSendingResult",
	KindImplYield:                                              "ImplYield",
	KindIndex:                                                  "Index",
	KindIndexSubset:                                            "IndexSubset",
	KindInfixOperator:                                          "InfixOperator",
	KindInitAccessor:                                           "InitAccessor",
	KindInitializer:                                            "Initializer",
	KindInlinedGenericFunction:                                 "InlinedGenericFunction",
	KindInOut:                                                  "InOut",
	KindInteger:                                                "Integer",
	KindIsolated:                                               "Isolated",
	KindIsolatedAnyFunctionType:                                "IsolatedAnyFunctionType",
	KindIsolatedDeallocator:                                    "IsolatedDeallocator",
	KindIsSerialized:                                           "IsSerialized",
	KindIVarDestroyer:                                          "IVarDestroyer",
	KindIVarInitializer:                                        "IVarInitializer",
	KindKeyPathAppliedMethodThunkHelper:                        "KeyPathAppliedMethodThunkHelper",
	KindKeyPathEqualsThunkHelper:                               "KeyPathEqualsThunkHelper",
	KindKeyPathGetterThunkHelper:                               "KeyPathGetterThunkHelper",
	KindKeyPathHashThunkHelper:                                 "KeyPathHashThunkHelper",
	KindKeyPathSetterThunkHelper:                               "KeyPathSetterThunkHelper",
	KindKeyPathUnappliedMethodThunkHelper:                      "KeyPathUnappliedMethodThunkHelper",
	KindLabelList:                                              "LabelList",
	KindLazyProtocolWitnessTableAccessor:                       "LazyProtocolWitnessTableAccessor",
	KindLazyProtocolWitnessTableCacheVariable:                  "LazyProtocolWitnessTableCacheVariable",
	KindLocalDeclName:                                          "LocalDeclName",
	KindMacro:                                                  "Macro",
	KindMacroExpansionLoc:                                      "MacroExpansionLoc",
	KindMacroExpansionUniqueName:                               "MacroExpansionUniqueName",
	KindMaterializeForSet:                                      "MaterializeForSet",
	KindMemberAttachedMacroExpansion:                           "MemberAttachedMacroExpansion",
	KindMemberAttributeAttachedMacroExpansion:                  "MemberAttributeAttachedMacroExpansion",
	KindMergedFunction:                                         "MergedFunction",
	KindMetaclass:                                              "Metaclass",
	KindMetadataInstantiationCache:                             "MetadataInstantiationCache",
	KindMetatype:                                               "Metatype",
	KindMetatypeRepresentation:                                 "MetatypeRepresentation",
	KindMethodDescriptor:                                       "MethodDescriptor",
	KindMethodLookupFunction:                                   "MethodLookupFunction",
	KindModify2Accessor:                                        "Modify2Accessor",
	KindModifyAccessor:                                         "ModifyAccessor",
	KindModule:                                                 "Module",
	KindModuleDescriptor:                                       "ModuleDescriptor",
	KindNativeOwningAddressor:                                  "NativeOwningAddressor",
	KindNativeOwningMutableAddressor:                           "NativeOwningMutableAddressor",
	KindNativePinningAddressor:                                 "NativePinningAddressor",
	KindNativePinningMutableAddressor:                          "NativePinningMutableAddressor",
	KindNegativeInteger:                                        "NegativeInteger",
	KindNoDerivative:                                           "NoDerivative",
	KindNoEscapeFunctionType:                                   "NoEscapeFunctionType",
	KindNominalTypeDescriptor:                                  "NominalTypeDescriptor",
	KindNominalTypeDescriptorRecord:                            "NominalTypeDescriptorRecord",
	KindNoncanonicalSpecializedGenericTypeMetadata:             "NoncanonicalSpecializedGenericTypeMetadata",
	KindNoncanonicalSpecializedGenericTypeMetadataCache:        "NoncanonicalSpecializedGenericTypeMetadataCache",
	KindNonIsolatedCallerFunctionType:                          "NonIsolatedCallerFunctionType",
	KindNonObjCAttribute:                                       "NonObjCAttribute",
	KindNonUniqueExtendedExistentialTypeShapeSymbolicReference: "NonUniqueExtendedExistentialTypeShapeSymbolicReference",
	KindNumber:                                                 "Number",
	KindObjCAsyncCompletionHandlerImpl:                         "ObjCAsyncCompletionHandlerImpl",
	KindObjCAttribute:                                          "ObjCAttribute",
	KindObjCBlock:                                              "ObjCBlock",
	KindObjCMetadataUpdateFunction:                             "ObjCMetadataUpdateFunction",
	KindObjCResilientClassStub:                                 "ObjCResilientClassStub",
	KindObjectiveCProtocolSymbolicReference:                    "ObjectiveCProtocolSymbolicReference",
	KindOpaqueReturnType:                                       "OpaqueReturnType",
	KindOpaqueReturnTypeIndex:                                  "OpaqueReturnTypeIndex",
	KindOpaqueReturnTypeOf:                                     "OpaqueReturnTypeOf",
	KindOpaqueReturnTypeParent:                                 "OpaqueReturnTypeParent",
	KindOpaqueType:                                             "OpaqueType",
	KindOpaqueTypeDescriptor:                                   "OpaqueTypeDescriptor",
	KindOpaqueTypeDescriptorAccessor:                           "OpaqueTypeDescriptorAccessor",
	KindOpaqueTypeDescriptorAccessorImpl:                       "OpaqueTypeDescriptorAccessorImpl",
	KindOpaqueTypeDescriptorAccessorKey:                        "OpaqueTypeDescriptorAccessorKey",
	KindOpaqueTypeDescriptorAccessorVar:                        "OpaqueTypeDescriptorAccessorVar",
	KindOpaqueTypeDescriptorRecord:                             "OpaqueTypeDescriptorRecord",
	KindOpaqueTypeDescriptorSymbolicReference:                  "OpaqueTypeDescriptorSymbolicReference",
	KindOtherNominalType:                                       "OtherNominalType",
	KindOutlinedAssignWithCopy:                                 "OutlinedAssignWithCopy",
	KindOutlinedAssignWithCopyNoValueWitness:                   "OutlinedAssignWithCopyNoValueWitness",
	KindOutlinedAssignWithTake:                                 "OutlinedAssignWithTake",
	KindOutlinedAssignWithTakeNoValueWitness:                   "OutlinedAssignWithTakeNoValueWitness",
	KindOutlinedBridgedMethod:                                  "OutlinedBridgedMethod",
	KindOutlinedConsume:                                        "OutlinedConsume",
	KindOutlinedCopy:                                           "OutlinedCopy",
	KindOutlinedDestroy:                                        "OutlinedDestroy",
	KindOutlinedDestroyNoValueWitness:                          "OutlinedDestroyNoValueWitness",
	KindOutlinedEnumGetTag:                                     "OutlinedEnumGetTag",
	KindOutlinedEnumProjectDataForLoad:                         "OutlinedEnumProjectDataForLoad",
	KindOutlinedEnumTagStore:                                   "OutlinedEnumTagStore",
	KindOutlinedInitializeWithCopy:                             "OutlinedInitializeWithCopy",
	KindOutlinedInitializeWithCopyNoValueWitness:               "OutlinedInitializeWithCopyNoValueWitness",
	KindOutlinedInitializeWithTake:                             "OutlinedInitializeWithTake",
	KindOutlinedInitializeWithTakeNoValueWitness:               "OutlinedInitializeWithTakeNoValueWitness",
	KindOutlinedReadOnlyObject:                                 "OutlinedReadOnlyObject",
	KindOutlinedRelease:                                        "OutlinedRelease",
	KindOutlinedRetain:                                         "OutlinedRetain",
	KindOutlinedVariable:                                       "OutlinedVariable",
	KindOwned:                                                  "Owned",
	KindOwningAddressor:                                        "OwningAddressor",
	KindOwningMutableAddressor:                                 "OwningMutableAddressor",
	KindPack:                                                   "Pack",
	KindPackElement:                                            "PackElement",
	KindPackElementLevel:                                       "PackElementLevel",
	KindPackExpansion:                                          "PackExpansion",
	KindPackProtocolConformance:                                "PackProtocolConformance",
	KindPartialApplyForwarder:                                  "PartialApplyForwarder",
	KindPartialApplyObjCForwarder:                              "PartialApplyObjCForwarder",
	KindPeerAttachedMacroExpansion:                             "PeerAttachedMacroExpansion",
	KindPostfixOperator:                                        "PostfixOperator",
	KindPredefinedObjCAsyncCompletionHandlerImpl:               "PredefinedObjCAsyncCompletionHandlerImpl",
	KindPrefixOperator:                                         "PrefixOperator",
	KindPrivateDeclName:                                        "PrivateDeclName",
	KindPropertyDescriptor:                                     "PropertyDescriptor",
	KindPropertyWrapperBackingInitializer:                      "PropertyWrapperBackingInitializer",
	KindPropertyWrapperInitFromProjectedValue:                  "PropertyWrapperInitFromProjectedValue",
	KindProtocol:                                               "Protocol",
	KindProtocolConformance:                                    "ProtocolConformance",
	KindProtocolConformanceDescriptor:                          "ProtocolConformanceDescriptor",
	KindProtocolConformanceDescriptorRecord:                    "ProtocolConformanceDescriptorRecord",
	KindProtocolConformanceRefInOtherModule:                    "ProtocolConformanceRefInOtherModule",
	KindProtocolConformanceRefInProtocolModule:                 "ProtocolConformanceRefInProtocolModule",
	KindProtocolConformanceRefInTypeModule:                     "ProtocolConformanceRefInTypeModule",
	KindProtocolDescriptor:                                     "ProtocolDescriptor",
	KindProtocolDescriptorRecord:                               "ProtocolDescriptorRecord",
	KindProtocolList:                                           "ProtocolList",
	KindProtocolListWithAnyObject:                              "ProtocolListWithAnyObject",
	KindProtocolListWithClass:                                  "ProtocolListWithClass",
	KindProtocolRequirementsBaseDescriptor:                     "ProtocolRequirementsBaseDescriptor",
	KindProtocolSelfConformanceDescriptor:                      "ProtocolSelfConformanceDescriptor",
	KindProtocolSelfConformanceWitness:                         "ProtocolSelfConformanceWitness",
	KindProtocolSelfConformanceWitnessTable:                    "ProtocolSelfConformanceWitnessTable",
	KindProtocolSymbolicReference:                              "ProtocolSymbolicReference",
	KindProtocolWitness:                                        "ProtocolWitness",
	KindProtocolWitnessTable:                                   "ProtocolWitnessTable",
	KindProtocolWitnessTableAccessor:                           "ProtocolWitnessTableAccessor",
	KindProtocolWitnessTablePattern:                            "ProtocolWitnessTablePattern",
	KindReabstractionThunk:                                     "ReabstractionThunk",
	KindReabstractionThunkHelper:                               "ReabstractionThunkHelper",
	KindReabstractionThunkHelperWithGlobalActor:                "ReabstractionThunkHelperWithGlobalActor",
	KindReabstractionThunkHelperWithSelf:                       "ReabstractionThunkHelperWithSelf",
	KindRead2Accessor:                                          "Read2Accessor",
	KindReadAccessor:                                           "ReadAccessor",
	KindReflectionMetadataAssocTypeDescriptor:                  "ReflectionMetadataAssocTypeDescriptor",
	KindReflectionMetadataBuiltinDescriptor:                    "ReflectionMetadataBuiltinDescriptor",
	KindReflectionMetadataFieldDescriptor:                      "ReflectionMetadataFieldDescriptor",
	KindReflectionMetadataSuperclassDescriptor:                 "ReflectionMetadataSuperclassDescriptor",
	KindRelatedEntityDeclName:                                  "RelatedEntityDeclName",
	KindResilientProtocolWitnessTable:                          "ResilientProtocolWitnessTable",
	KindRetroactiveConformance:                                 "RetroactiveConformance",
	KindReturnType:                                             "ReturnType",
	KindSending:                                                "Sending",
	KindSendingResultFunctionType:                              "SendingResultFunctionType",
	KindSetter:                                                 "Setter",
	KindShared:                                                 "Shared",
	KindSilBoxImmutableField:                                   "SilBoxImmutableField",
	KindSilBoxLayout:                                           "SilBoxLayout",
	KindSilBoxMutableField:                                     "SilBoxMutableField",
	KindSilBoxType:                                             "SilBoxType",
	KindSilBoxTypeWithLayout:                                   "SilBoxTypeWithLayout",
	KindSilPackDirect:                                          "SilPackDirect",
	KindSilPackIndirect:                                        "SilPackIndirect",
	KindSilThunkHopToMainActorIfNeeded:                         "SilThunkHopToMainActorIfNeeded",
	KindSilThunkIdentity:                                       "SilThunkIdentity",
	KindSpecializationPassID:                                   "SpecializationPassID",
	KindStatic:                                                 "Static",
	KindStructure:                                              "Structure",
	KindSubscript:                                              "Subscript",
	KindSuffix:                                                 "Suffix",
	KindSugaredArray:                                           "SugaredArray",
	KindSugaredDictionary:                                      "SugaredDictionary",
	KindSugaredInlineArray:                                     "SugaredInlineArray",
	KindSugaredOptional:                                        "SugaredOptional",
	KindSugaredParen:                                           "SugaredParen",
	KindSymbolicExtendedExistentialType:                        "SymbolicExtendedExistentialType",
	KindThinFunctionType:                                       "ThinFunctionType",
	KindThrowsAnnotation:                                       "ThrowsAnnotation",
	KindTuple:                                                  "Tuple",
	KindTupleElement:                                           "TupleElement",
	KindTupleElementName:                                       "TupleElementName",
	KindType:                                                   "Type",
	KindTypeAlias:                                              "TypeAlias",
	KindTypedThrowsAnnotation:                                  "TypedThrowsAnnotation",
	KindTypeList:                                               "TypeList",
	KindTypeMangling:                                           "TypeMangling",
	KindTypeMetadata:                                           "TypeMetadata",
	KindTypeMetadataAccessFunction:                             "TypeMetadataAccessFunction",
	KindTypeMetadataCompletionFunction:                         "TypeMetadataCompletionFunction",
	KindTypeMetadataDemanglingCache:                            "TypeMetadataDemanglingCache",
	KindTypeMetadataInstantiationCache:                         "TypeMetadataInstantiationCache",
	KindTypeMetadataInstantiationFunction:                      "TypeMetadataInstantiationFunction",
	KindTypeMetadataLazyCache:                                  "TypeMetadataLazyCache",
	KindTypeMetadataMangledNameRef:                             "TypeMetadataMangledNameRef",
	KindTypeMetadataSingletonInitializationCache:               "TypeMetadataSingletonInitializationCache",
	KindTypeSymbolicReference:                                  "TypeSymbolicReference",
	KindUncurriedFunctionType:                                  "UncurriedFunctionType",
	KindUniquable:                                              "Uniquable",
	KindUniqueExtendedExistentialTypeShapeSymbolicReference:    "UniqueExtendedExistentialTypeShapeSymbolicReference",
	KindUnknownIndex:                                           "UnknownIndex",
	KindUnmanaged:                                              "Unmanaged",
	KindUnowned:                                                "Unowned",
	KindUnsafeAddressor:                                        "UnsafeAddressor",
	KindUnsafeMutableAddressor:                                 "UnsafeMutableAddressor",
	KindValueWitness:                                           "ValueWitness",
	KindValueWitnessTable:                                      "ValueWitnessTable",
	KindVariable:                                               "Variable",
	KindVariadicMarker:                                         "VariadicMarker",
	KindVTableAttribute:                                        "VTableAttribute",
	KindVTableThunk:                                            "VTableThunk",
	KindWeak:                                                   "Weak",
	KindWillSet:                                                "WillSet",
}

// String returns the production name with a leading capital, e.g. "BoundGenericStructure".
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var kindsByName map[string]Kind

func init() {
	kindsByName = make(map[string]Kind, numKinds)
	for k := KindUnknown + 1; k < numKinds; k++ {
		kindsByName[kindNames[k]] = k
	}
}

// ParseKind returns the Kind whose String form is name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, numKinds-1)
	for k := KindUnknown + 1; k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}
