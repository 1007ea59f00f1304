package node

// SymbolicReferenceKind says what an out-of-band symbolic reference points at.
type SymbolicReferenceKind uint8

const (
	// SymRefContext references a context descriptor (the unapplied generic context).
	SymRefContext SymbolicReferenceKind = iota
	// SymRefAccessorFunction references an accessor function that produces the entity.
	SymRefAccessorFunction
	// SymRefUniqueExtendedExistentialTypeShape references a unique extended existential shape.
	SymRefUniqueExtendedExistentialTypeShape
	// SymRefNonUniqueExtendedExistentialTypeShape references a non-unique extended existential shape.
	SymRefNonUniqueExtendedExistentialTypeShape
	// SymRefObjectiveCProtocol references an Objective-C protocol record.
	SymRefObjectiveCProtocol
)

func (k SymbolicReferenceKind) String() string {
	switch k {
	case SymRefContext:
		return "context"
	case SymRefAccessorFunction:
		return "accessorFunctionReference"
	case SymRefUniqueExtendedExistentialTypeShape:
		return "uniqueExtendedExistentialTypeShape"
	case SymRefNonUniqueExtendedExistentialTypeShape:
		return "nonUniqueExtendedExistentialTypeShape"
	case SymRefObjectiveCProtocol:
		return "objectiveCProtocol"
	}
	return "unknown"
}

// Directness says whether a symbolic reference is stored directly or
// through an indirection slot.
type Directness uint8

const (
	Direct Directness = iota
	Indirect
)

func (d Directness) String() string {
	if d == Indirect {
		return "indirect"
	}
	return "direct"
}

// SymbolicReferenceFor maps a control byte (1 to 12) of the mangling to its
// reference kind and directness.
func SymbolicReferenceFor(b byte) (SymbolicReferenceKind, Directness, bool) {
	switch b {
	case 0x01:
		return SymRefContext, Direct, true
	case 0x02:
		return SymRefContext, Indirect, true
	case 0x09:
		return SymRefAccessorFunction, Direct, true
	case 0x0A:
		return SymRefUniqueExtendedExistentialTypeShape, Indirect, true
	case 0x0B:
		return SymRefNonUniqueExtendedExistentialTypeShape, Direct, true
	case 0x0C:
		return SymRefObjectiveCProtocol, Direct, true
	}
	return 0, 0, false
}

// ControlByte is the inverse of SymbolicReferenceFor.
func ControlByte(kind SymbolicReferenceKind, d Directness) (byte, bool) {
	for b := byte(1); b <= 0x0C; b++ {
		if k, dd, ok := SymbolicReferenceFor(b); ok && k == kind && dd == d {
			return b, true
		}
	}
	return 0, false
}

// IsSymbolicReference reports kinds that stand in for an out-of-band reference.
func (k Kind) IsSymbolicReference() bool {
	switch k {
	case KindTypeSymbolicReference, KindProtocolSymbolicReference,
		KindObjectiveCProtocolSymbolicReference, KindOpaqueTypeDescriptorSymbolicReference,
		KindUniqueExtendedExistentialTypeShapeSymbolicReference,
		KindNonUniqueExtendedExistentialTypeShapeSymbolicReference:
		return true
	}
	return false
}
