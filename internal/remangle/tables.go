package remangle

import "github.com/skdltmxn/swiftmangle/node"

// Kinds whose mangling is their only child followed by a fixed operator.
var singleChildCodes = map[node.Kind]string{
	node.KindType:                         "",
	node.KindDeclContext:                  "",
	node.KindInOut:                        "z",
	node.KindShared:                       "h",
	node.KindOwned:                        "n",
	node.KindWeak:                         "Xw",
	node.KindUnowned:                      "Xo",
	node.KindUnmanaged:                    "Xu",
	node.KindDynamicSelf:                  "XD",
	node.KindSilBoxType:                   "Xb",
	node.KindStatic:                       "Z",
	node.KindEnumCase:                     "WC",
	node.KindProtocolWitnessTable:         "WP",
	node.KindProtocolWitnessTableAccessor: "Wa",
	node.KindValueWitnessTable:            "WV",
	node.KindProtocolWitnessTablePattern:  "Wp",
	node.KindGenericProtocolWitnessTable:  "WG",
	node.KindGenericProtocolWitnessTableInstantiationFunction:      "WI",
	node.KindResilientProtocolWitnessTable:                         "Wr",
	node.KindProtocolSelfConformanceWitness:                        "TS",
	node.KindTypeMetadata:                                          "N",
	node.KindTypeMetadataAccessFunction:                            "Ma",
	node.KindFullTypeMetadata:                                      "Mf",
	node.KindNominalTypeDescriptor:                                 "Mn",
	node.KindNominalTypeDescriptorRecord:                           "Hn",
	node.KindTypeMetadataCompletionFunction:                        "Mr",
	node.KindTypeMetadataDemanglingCache:                           "MD",
	node.KindTypeMetadataInstantiationCache:                        "MI",
	node.KindTypeMetadataInstantiationFunction:                     "Mi",
	node.KindTypeMetadataSingletonInitializationCache:              "Ml",
	node.KindClassMetadataBaseOffset:                               "Mo",
	node.KindGenericTypeMetadataPattern:                            "MP",
	node.KindMethodDescriptor:                                      "Tq",
	node.KindPropertyDescriptor:                                    "MV",
	node.KindOpaqueTypeDescriptor:                                  "MQ",
	node.KindOpaqueTypeDescriptorAccessor:                          "Mg",
	node.KindOpaqueTypeDescriptorAccessorImpl:                      "Mh",
	node.KindOpaqueTypeDescriptorAccessorKey:                       "Mj",
	node.KindOpaqueTypeDescriptorAccessorVar:                       "Mk",
	node.KindOpaqueTypeDescriptorRecord:                            "Ho",
	node.KindCurryThunk:                                            "Tc",
	node.KindDispatchThunk:                                         "Tj",
	node.KindCompileTimeConst:                                      "Yt",
	node.KindConstValue:                                            "Yg",
	node.KindCompileTimeLiteral:                                    "Yt",
	node.KindTypeMetadataMangledNameRef:                            "MR",
	node.KindIsolated:                                              "Yi",
	node.KindNoDerivative:                                          "Yk",
	node.KindSending:                                               "Yu",
	node.KindFullObjCResilientClassStub:                            "Mt",
	node.KindObjCResilientClassStub:                                "Ms",
	node.KindObjCMetadataUpdateFunction:                            "MU",
	node.KindIVarDestroyer:                                         "fE",
	node.KindIVarInitializer:                                       "fe",
	node.KindMetadataInstantiationCache:                            "MK",
	node.KindMethodLookupFunction:                                  "Mu",
	node.KindNoncanonicalSpecializedGenericTypeMetadataCache:       "MJ",
	node.KindSilThunkIdentity:                                      "TTI",
	node.KindReflectionMetadataBuiltinDescriptor:                   "MB",
	node.KindReflectionMetadataFieldDescriptor:                     "MF",
	node.KindReflectionMetadataAssocTypeDescriptor:                 "MA",
	node.KindReflectionMetadataSuperclassDescriptor:                "MC",
	node.KindCanonicalSpecializedGenericTypeMetadataAccessFunction: "Mb",
	node.KindNoncanonicalSpecializedGenericTypeMetadata:            "MN",
	node.KindCanonicalPrespecializedGenericTypeCachingOnceToken:    "Mz",
}

// Kinds whose mangling is all children in order followed by an operator.
var childrenCodes = map[node.Kind]string{
	node.KindMetaclass:                                "Mm",
	node.KindTypeMetadataLazyCache:                    "ML",
	node.KindInitializer:                              "fi",
	node.KindProtocolWitness:                          "TW",
	node.KindAssociatedTypeDescriptor:                 "Tl",
	node.KindAssociatedTypeMetadataAccessor:           "Wt",
	node.KindBaseWitnessTableAccessor:                 "Wb",
	node.KindGenericTypeParamDecl:                     "fp",
	node.KindDestructor:                               "fd",
	node.KindAllocator:                                "fC",
	node.KindConstructor:                              "fc",
	node.KindOutlinedCopy:                             "WOy",
	node.KindOutlinedConsume:                          "WOe",
	node.KindOutlinedRetain:                           "WOr",
	node.KindOutlinedRelease:                          "WOs",
	node.KindOutlinedDestroy:                          "WOh",
	node.KindOutlinedInitializeWithTake:               "WOb",
	node.KindOutlinedInitializeWithCopy:               "WOc",
	node.KindOutlinedAssignWithTake:                   "WOd",
	node.KindOutlinedAssignWithCopy:                   "WOf",
	node.KindOutlinedEnumGetTag:                       "WOg",
	node.KindOutlinedDestroyNoValueWitness:            "WOH",
	node.KindOutlinedInitializeWithCopyNoValueWitness: "WOC",
	node.KindOutlinedAssignWithTakeNoValueWitness:     "WOD",
	node.KindOutlinedAssignWithCopyNoValueWitness:     "WOF",
	node.KindOutlinedInitializeWithTakeNoValueWitness: "WOB",
	node.KindPackExpansion:                            "Qp",
	node.KindMacro:                                    "fm",
	node.KindAccessorAttachedMacroExpansion:           "fMa",
	node.KindMemberAttributeAttachedMacroExpansion:    "fMA",
	node.KindMemberAttachedMacroExpansion:             "fMm",
	node.KindPeerAttachedMacroExpansion:               "fMp",
	node.KindConformanceAttachedMacroExpansion:        "fMc",
	node.KindExtensionAttachedMacroExpansion:          "fMe",
	node.KindBodyAttachedMacroExpansion:               "fMb",
	node.KindReabstractionThunkHelperWithGlobalActor:  "TU",
	node.KindBuiltinFixedArray:                        "BV",
	node.KindCoroutineContinuationPrototype:           "TC",
	node.KindDeallocator:                              "fD",
	node.KindIsolatedDeallocator:                      "fZ",
	node.KindGlobalActorFunctionType:                  "Yc",
	node.KindGlobalVariableOnceFunction:               "WZ",
	node.KindGlobalVariableOnceToken:                  "Wz",
	node.KindTypedThrowsAnnotation:                    "YK",
	node.KindVTableThunk:                              "TV",
	node.KindPropertyWrapperBackingInitializer:        "fP",
	node.KindPropertyWrapperInitFromProjectedValue:    "fW",
	node.KindDefaultAssociatedTypeMetadataAccessor:    "TM",
	node.KindAssociatedTypeWitnessTableAccessor:       "WT",
	node.KindPredefinedObjCAsyncCompletionHandlerImpl: "TZ",
	node.KindLazyProtocolWitnessTableAccessor:         "Wl",
	node.KindLazyProtocolWitnessTableCacheVariable:    "WL",
	node.KindCanonicalSpecializedGenericMetaclass:     "MM",
	node.KindTypeMangling:                             "D",
	node.KindSilThunkHopToMainActorIfNeeded:           "TTH",
}

// Kinds whose mangling is their children last to first followed by an
// operator.
var reversedCodes = map[node.Kind]string{
	node.KindReabstractionThunk:               "Tr",
	node.KindReabstractionThunkHelper:         "TR",
	node.KindReabstractionThunkHelperWithSelf: "Ty",
	node.KindPartialApplyForwarder:            "TA",
	node.KindPartialApplyObjCForwarder:        "Ta",
	node.KindDependentGenericType:             "u",
	node.KindFunctionType:                     "c",
	node.KindUncurriedFunctionType:            "c",
	node.KindThinFunctionType:                 "Xf",
	node.KindNoEscapeFunctionType:             "XE",
	node.KindAutoClosureType:                  "XK",
	node.KindEscapingAutoClosureType:          "XA",
	node.KindEscapingObjCBlock:                "XL",
	node.KindTupleElement:                     "",
}

// Kinds spelled by a fixed operator alone.
var fixedCodes = map[node.Kind]string{
	node.KindThrowsAnnotation:                   "K",
	node.KindAsyncAnnotation:                    "Ya",
	node.KindErrorType:                          "Xe",
	node.KindEmptyList:                          "y",
	node.KindFirstElementMarker:                 "_",
	node.KindVariadicMarker:                     "d",
	node.KindAccessibleFunctionRecord:           "HF",
	node.KindAsyncFunctionPointer:               "Tu",
	node.KindAsyncRemoved:                       "a",
	node.KindBackDeploymentFallback:             "TwB",
	node.KindBackDeploymentThunk:                "Twb",
	node.KindBuiltinTupleType:                   "BT",
	node.KindConcurrentFunctionType:             "Yb",
	node.KindConstrainedExistentialSelf:         "s",
	node.KindCoroFunctionPointer:                "Twc",
	node.KindDefaultOverride:                    "Twd",
	node.KindDirectMethodReferenceAttribute:     "Td",
	node.KindDynamicAttribute:                   "TD",
	node.KindHasSymbolQuery:                     "TwS",
	node.KindImplErasedIsolation:                "A",
	node.KindImplEscaping:                       "e",
	node.KindIsSerialized:                       "q",
	node.KindIsolatedAnyFunctionType:            "YA",
	node.KindMergedFunction:                     "Tm",
	node.KindNonIsolatedCallerFunctionType:      "YC",
	node.KindNonObjCAttribute:                   "TO",
	node.KindObjCAttribute:                      "To",
	node.KindSendingResultFunctionType:          "YT",
	node.KindDistributedAccessor:                "TF",
	node.KindDistributedThunk:                   "TE",
	node.KindDynamicallyReplaceableFunctionImpl: "TI",
	node.KindDynamicallyReplaceableFunctionKey:  "Tx",
	node.KindDynamicallyReplaceableFunctionVar:  "TX",
}

// Accessor kinds: the storage declaration they wrap, its storage marker
// and the accessor operator.
var accessorCodes = map[node.Kind]string{
	node.KindGetter:                        "g",
	node.KindSetter:                        "s",
	node.KindDidSet:                        "W",
	node.KindWillSet:                       "w",
	node.KindReadAccessor:                  "r",
	node.KindModifyAccessor:                "M",
	node.KindGlobalGetter:                  "G",
	node.KindInitAccessor:                  "i",
	node.KindMaterializeForSet:             "m",
	node.KindModify2Accessor:               "x",
	node.KindRead2Accessor:                 "y",
	node.KindNativeOwningAddressor:         "lo",
	node.KindNativeOwningMutableAddressor:  "ao",
	node.KindNativePinningAddressor:        "lp",
	node.KindNativePinningMutableAddressor: "aP",
	node.KindOwningAddressor:               "lO",
	node.KindOwningMutableAddressor:        "aO",
	node.KindUnsafeAddressor:               "lu",
	node.KindUnsafeMutableAddressor:        "au",
}

// Kinds that only occur inside other productions and have no spelling of
// their own.
var unsupported = map[node.Kind]struct{}{
	node.KindAccessorFunctionReference:                   {},
	node.KindIndex:                                       {},
	node.KindUnknownIndex:                                {},
	node.KindSilBoxLayout:                                {},
	node.KindSilBoxMutableField:                          {},
	node.KindSilBoxImmutableField:                        {},
	node.KindVTableAttribute:                             {},
	node.KindGenericSpecializationParam:                  {},
	node.KindDependentGenericParamCount:                  {},
	node.KindImplYield:                                   {},
	node.KindImplErrorResult:                             {},
	node.KindImplCoroutineKind:                           {},
	node.KindImplFunctionAttribute:                       {},
	node.KindImplFunctionConventionName:                  {},
	node.KindImplPatternSubstitutions:                    {},
	node.KindImplInvocationSubstitutions:                 {},
	node.KindFunctionSignatureSpecializationParamKind:    {},
	node.KindFunctionSignatureSpecializationParamPayload: {},
	node.KindAssociatedType:                              {},
}
