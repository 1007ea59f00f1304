package node

import "strconv"

// FuncSpecParamKind is the index payload of a
// FunctionSignatureSpecializationParamKind node. The low values are
// exclusive kinds; the high values are flags that may be combined.
type FuncSpecParamKind uint64

const (
	FuncSpecConstantPropFunction FuncSpecParamKind = 0
	FuncSpecConstantPropGlobal   FuncSpecParamKind = 1
	FuncSpecConstantPropInteger  FuncSpecParamKind = 2
	FuncSpecConstantPropFloat    FuncSpecParamKind = 3
	FuncSpecConstantPropString   FuncSpecParamKind = 4
	FuncSpecClosureProp          FuncSpecParamKind = 5
	FuncSpecBoxToValue           FuncSpecParamKind = 6
	FuncSpecBoxToStack           FuncSpecParamKind = 7
	FuncSpecInOutToOut           FuncSpecParamKind = 8
	FuncSpecConstantPropKeyPath  FuncSpecParamKind = 9

	FuncSpecDead                 FuncSpecParamKind = 64
	FuncSpecOwnedToGuaranteed    FuncSpecParamKind = 128
	FuncSpecSROA                 FuncSpecParamKind = 256
	FuncSpecGuaranteedToOwned    FuncSpecParamKind = 512
	FuncSpecExistentialToGeneric FuncSpecParamKind = 1024

	// FuncSpecKindMask selects the exclusive kind from a combined value.
	FuncSpecKindMask FuncSpecParamKind = 63
)

// ValueWitnessKind is the index payload of a ValueWitness node.
type ValueWitnessKind uint64

const (
	AllocateBuffer ValueWitnessKind = iota
	AssignWithCopy
	AssignWithTake
	DeallocateBuffer
	Destroy
	DestroyArray
	DestroyBuffer
	InitializeBufferWithCopyOfBuffer
	InitializeBufferWithCopy
	InitializeWithCopy
	InitializeBufferWithTake
	InitializeWithTake
	ProjectBuffer
	InitializeBufferWithTakeOfBuffer
	InitializeArrayWithCopy
	InitializeArrayWithTakeFrontToBack
	InitializeArrayWithTakeBackToFront
	StoreExtraInhabitant
	GetExtraInhabitantIndex
	GetEnumTag
	DestructiveProjectEnumData
	DestructiveInjectEnumTag
	GetEnumTagSinglePayload
	StoreEnumTagSinglePayload
)

var valueWitnessCodes = [...]string{
	AllocateBuffer:                     "al",
	AssignWithCopy:                     "ca",
	AssignWithTake:                     "ta",
	DeallocateBuffer:                   "de",
	Destroy:                            "xx",
	DestroyArray:                       "Xx",
	DestroyBuffer:                      "XX",
	InitializeBufferWithCopyOfBuffer:   "CP",
	InitializeBufferWithCopy:           "Cp",
	InitializeWithCopy:                 "cp",
	InitializeBufferWithTake:           "Tk",
	InitializeWithTake:                 "tk",
	ProjectBuffer:                      "pr",
	InitializeBufferWithTakeOfBuffer:   "TK",
	InitializeArrayWithCopy:            "Cc",
	InitializeArrayWithTakeFrontToBack: "Tt",
	InitializeArrayWithTakeBackToFront: "tT",
	StoreExtraInhabitant:               "xs",
	GetExtraInhabitantIndex:            "xg",
	GetEnumTag:                         "ug",
	DestructiveProjectEnumData:         "up",
	DestructiveInjectEnumTag:           "ui",
	GetEnumTagSinglePayload:            "et",
	StoreEnumTagSinglePayload:          "st",
}

// Code returns the two-letter mangling of the witness.
func (k ValueWitnessKind) Code() (string, bool) {
	if int(k) >= len(valueWitnessCodes) {
		return "", false
	}
	return valueWitnessCodes[k], true
}

// ValueWitnessKindFor parses a two-letter witness code.
func ValueWitnessKindFor(code string) (ValueWitnessKind, bool) {
	for k, c := range valueWitnessCodes {
		if c == code {
			return ValueWitnessKind(k), true
		}
	}
	return 0, false
}

// GenericParamName returns the display name of a generic parameter. The
// index is spelled in base 26 with the least significant letter first, and
// a non-zero depth is appended.
func GenericParamName(depth, index uint64) string {
	var name []byte
	for {
		name = append(name, byte('A'+index%26))
		index /= 26
		if index == 0 {
			break
		}
	}
	s := string(name)
	if depth != 0 {
		s += strconv.FormatUint(depth, 10)
	}
	return s
}

// IsDifferentiabilityKind reports the scalars that spell a function's
// differentiability: forward, reverse, normal and linear. They are the
// index payloads of DifferentiableFunctionType and
// ImplDifferentiabilityKind nodes.
func IsDifferentiabilityKind(r rune) bool {
	return r == 'f' || r == 'r' || r == 'd' || r == 'l'
}

// IsAutoDiffFunctionKind reports the scalars naming a derivative: JVP, VJP,
// differential and pullback.
func IsAutoDiffFunctionKind(r rune) bool {
	return r == 'f' || r == 'r' || r == 'd' || r == 'p'
}
