package demangle

import (
	"github.com/skdltmxn/swiftmangle/internal/stream"
	"github.com/skdltmxn/swiftmangle/node"
)

// Thunk operators ('T' prefix) that wrap the entity on top of the stack.
var thunkOfEntity = map[rune]node.Kind{
	'c': node.KindCurryThunk,
	'j': node.KindDispatchThunk,
	'q': node.KindMethodDescriptor,
	'S': node.KindProtocolSelfConformanceWitness,
}

// Thunk operators that stand alone and attach to the following entity at
// the top level.
var thunkMarkers = map[rune]node.Kind{
	'o': node.KindObjCAttribute,
	'O': node.KindNonObjCAttribute,
	'D': node.KindDynamicAttribute,
	'd': node.KindDirectMethodReferenceAttribute,
	'E': node.KindDistributedThunk,
	'F': node.KindDistributedAccessor,
	'a': node.KindPartialApplyObjCForwarder,
	'A': node.KindPartialApplyForwarder,
	'm': node.KindMergedFunction,
	'X': node.KindDynamicallyReplaceableFunctionVar,
	'x': node.KindDynamicallyReplaceableFunctionKey,
	'I': node.KindDynamicallyReplaceableFunctionImpl,
	'u': node.KindAsyncFunctionPointer,
}

var genericSpecializations = map[rune]node.Kind{
	'g': node.KindGenericSpecialization,
	'G': node.KindGenericSpecializationNotReAbstracted,
	'B': node.KindGenericSpecializationInResilienceDomain,
	's': node.KindGenericSpecializationPrespecialized,
	'i': node.KindInlinedGenericFunction,
}

func (d *demangler) demangleThunkOrSpecialization() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if k, ok := thunkOfEntity[c]; ok {
		return d.wrapPopped(k, d.popIf(node.Kind.IsEntity))
	}
	if k, ok := thunkMarkers[c]; ok {
		return node.New(k), nil
	}
	if k, ok := genericSpecializations[c]; ok {
		return d.demangleGenericSpecialization(k, nil)
	}

	switch c {
	case 'T':
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'I':
			return d.wrapPopped(node.KindSilThunkIdentity, d.popIf(node.Kind.IsEntity))
		case 'H':
			return d.wrapPopped(node.KindSilThunkHopToMainActorIfNeeded, d.popIf(node.Kind.IsEntity))
		}
		return nil, d.fail()
	case 'Y', 'Q':
		index, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		if c == 'Y' {
			return node.New(node.KindAsyncSuspendResumePartialFunction, index), nil
		}
		return node.New(node.KindAsyncAwaitResumePartialFunction, index), nil
	case 'C':
		return d.wrapPopped(node.KindCoroutineContinuationPrototype, d.popKind(node.KindType))
	case 'z', 'Z':
		flagMode, err := d.demangleIndexAsName()
		if err != nil {
			return nil, err
		}
		sig := d.popKind(node.KindDependentGenericSignature)
		resultType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		implType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		kind := node.KindPredefinedObjCAsyncCompletionHandlerImpl
		if c == 'z' {
			kind = node.KindObjCAsyncCompletionHandlerImpl
		}
		return node.New(kind, implType, resultType, flagMode, sig), nil
	case 'V':
		base, err := d.need(d.popIf(node.Kind.IsEntity))
		if err != nil {
			return nil, err
		}
		derived, err := d.need(d.popIf(node.Kind.IsEntity))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindVTableThunk, derived, base), nil
	case 'W':
		entity, err := d.need(d.popIf(node.Kind.IsEntity))
		if err != nil {
			return nil, err
		}
		conf, err := d.popProtocolConformance()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolWitness, conf, entity), nil
	case 'R', 'r', 'y':
		return d.demangleReabstractionThunk(c)
	case 't':
		return d.demangleGenericSpecializationWithDroppedArguments()
	case 'P', 'p':
		kind := node.KindGenericPartialSpecialization
		if c == 'P' {
			kind = node.KindGenericPartialSpecializationNotReAbstracted
		}
		spec, err := d.demangleSpecAttributes(kind, false)
		if err != nil {
			return nil, err
		}
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return spec.AddingChild(node.New(node.KindGenericSpecializationParam, t)), nil
	case 'f':
		return d.demangleFunctionSpecialization()
	case 'K', 'k':
		return d.demangleKeyPathAccessorThunk(c)
	case 'H', 'h':
		return d.demangleKeyPathComparisonThunk(c)
	case 'l':
		name, err := d.popAssociatedTypeName()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindAssociatedTypeDescriptor, name), nil
	case 'L':
		p, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindProtocolRequirementsBaseDescriptor, p), nil
	case 'M':
		name, err := d.popAssociatedTypeName()
		if err != nil {
			return nil, err
		}
		return node.New(node.KindDefaultAssociatedTypeMetadataAccessor, name), nil
	case 'n', 'N':
		requirement, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		path, err := d.popAssociatedTypePath()
		if err != nil {
			return nil, err
		}
		protoType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		kind := node.KindAssociatedConformanceDescriptor
		if c == 'N' {
			kind = node.KindDefaultAssociatedConformanceAccessor
		}
		return node.New(kind, protoType, path, requirement), nil
	case 'b':
		requirement, err := d.popProtocol()
		if err != nil {
			return nil, err
		}
		protoType, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		return node.New(node.KindBaseConformanceDescriptor, protoType, requirement), nil
	case 'v':
		index, err := d.demangleIndex()
		if err != nil {
			return nil, err
		}
		if d.s.ConditionalRune('r') {
			return node.NewIndex(node.KindOutlinedReadOnlyObject, index), nil
		}
		return node.NewIndex(node.KindOutlinedVariable, index), nil
	case 'e':
		params, err := d.demangleBridgedMethodParams()
		if err != nil {
			return nil, err
		}
		return node.NewText(node.KindOutlinedBridgedMethod, params), nil
	case 'U':
		globalActor, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		reabstraction, err := d.need(d.pop())
		if err != nil {
			return nil, err
		}
		return node.New(node.KindReabstractionThunkHelperWithGlobalActor, reabstraction, globalActor), nil
	case 'J':
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'S':
			return d.demangleAutoDiffSubsetParametersThunk()
		case 'O':
			return d.demangleAutoDiffSelfReorderingReabstractionThunk()
		case 'V':
			return d.demangleAutoDiffFunctionOrSimpleThunk(node.KindAutoDiffDerivativeVTableThunk)
		}
		if err := d.s.Backtrack(1); err != nil {
			return nil, err
		}
		return d.demangleAutoDiffFunctionOrSimpleThunk(node.KindAutoDiffFunction)
	case 'w':
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'b':
			return node.New(node.KindBackDeploymentThunk), nil
		case 'B':
			return node.New(node.KindBackDeploymentFallback), nil
		case 'c':
			return node.New(node.KindCoroFunctionPointer), nil
		case 'd':
			return node.New(node.KindDefaultOverride), nil
		case 'S':
			return node.New(node.KindHasSymbolQuery), nil
		}
		return nil, d.fail()
	}
	return nil, d.fail()
}

func (d *demangler) demangleReabstractionThunk(c rune) (*node.Node, error) {
	kind := node.KindReabstractionThunk
	switch c {
	case 'R':
		kind = node.KindReabstractionThunkHelper
	case 'y':
		kind = node.KindReabstractionThunkHelperWithSelf
	}
	children := []*node.Node{d.popKind(node.KindDependentGenericSignature)}
	count := 2
	if kind == node.KindReabstractionThunkHelperWithSelf {
		count = 3
	}
	for range count {
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		children = append(children, t)
	}
	return node.New(kind, children...), nil
}

func (d *demangler) demangleKeyPathAccessorThunk(c rune) (*node.Node, error) {
	var kind node.Kind
	switch {
	case d.s.Conditional("mu"):
		kind = node.KindKeyPathUnappliedMethodThunkHelper
	case d.s.Conditional("MA"):
		kind = node.KindKeyPathAppliedMethodThunkHelper
	case c == 'K':
		kind = node.KindKeyPathGetterThunkHelper
	default:
		kind = node.KindKeyPathSetterThunkHelper
	}
	isSerialized := d.s.ConditionalRune('q')

	var types []*node.Node
	for {
		t := d.popKind(node.KindType)
		if t == nil {
			break
		}
		types = append(types, t)
	}

	n, err := d.need(d.pop())
	if err != nil {
		return nil, err
	}
	var children []*node.Node
	if n.Kind() == node.KindDependentGenericSignature {
		decl, err := d.need(d.pop())
		if err != nil {
			return nil, err
		}
		children = append(children, decl, n)
	} else {
		children = append(children, n)
	}
	reverse(types)
	children = append(children, types...)
	if isSerialized {
		children = append(children, node.New(node.KindIsSerialized))
	}
	return node.New(kind, children...), nil
}

func (d *demangler) demangleKeyPathComparisonThunk(c rune) (*node.Node, error) {
	kind := node.KindKeyPathHashThunkHelper
	if c == 'H' {
		kind = node.KindKeyPathEqualsThunkHelper
	}
	isSerialized := d.s.ConditionalRune('q')

	n, err := d.need(d.pop())
	if err != nil {
		return nil, err
	}
	var genSig *node.Node
	var types []*node.Node
	switch n.Kind() {
	case node.KindDependentGenericSignature:
		genSig = n
	case node.KindType:
		types = append(types, n)
	default:
		return nil, d.fail()
	}
	for t := d.pop(); t != nil; t = d.pop() {
		if err := d.check(t.Kind() == node.KindType); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	reverse(types)
	children := append(types, genSig)
	if isSerialized {
		children = append(children, node.New(node.KindIsSerialized))
	}
	return node.New(kind, children...), nil
}

// popAll empties the name stack, oldest first.
func (d *demangler) popAll() []*node.Node {
	var children []*node.Node
	for n := d.pop(); n != nil; n = d.pop() {
		children = append(children, n)
	}
	reverse(children)
	return children
}

func (d *demangler) demangleAutoDiffFunctionOrSimpleThunk(kind node.Kind) (*node.Node, error) {
	children := d.popAll()
	tail, err := d.demangleAutoDiffTail(false)
	if err != nil {
		return nil, err
	}
	return node.New(kind, append(children, tail...)...), nil
}

func (d *demangler) demangleAutoDiffSubsetParametersThunk() (*node.Node, error) {
	children := d.popAll()
	tail, err := d.demangleAutoDiffTail(true)
	if err != nil {
		return nil, err
	}
	return node.New(node.KindAutoDiffSubsetParametersThunk, append(children, tail...)...), nil
}

// demangleAutoDiffTail reads a function kind followed by the parameter and
// result index subsets, and optionally the "to" parameter subset.
func (d *demangler) demangleAutoDiffTail(withToParams bool) ([]*node.Node, error) {
	kind, err := d.demangleAutoDiffFunctionKind()
	if err != nil {
		return nil, err
	}
	out := []*node.Node{kind}
	terminators := "pr"
	if withToParams {
		terminators = "prP"
	}
	for _, term := range terminators {
		subset, err := d.demangleIndexSubset()
		if err != nil {
			return nil, err
		}
		if err := d.s.MatchRune(term); err != nil {
			return nil, err
		}
		out = append(out, subset)
	}
	return out, nil
}

func (d *demangler) demangleAutoDiffSelfReorderingReabstractionThunk() (*node.Node, error) {
	var children []*node.Node
	if sig := d.popKind(node.KindDependentGenericSignature); sig != nil {
		children = append(children, sig)
	}
	for range 2 {
		t, err := d.need(d.popKind(node.KindType))
		if err != nil {
			return nil, err
		}
		children = append(children, t)
	}
	reverse(children)
	kind, err := d.demangleAutoDiffFunctionKind()
	if err != nil {
		return nil, err
	}
	return node.New(node.KindAutoDiffSelfReorderingReabstractionThunk, append(children, kind)...), nil
}

func (d *demangler) demangleAutoDiffFunctionKind() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if !node.IsAutoDiffFunctionKind(c) {
		return nil, d.fail()
	}
	return node.NewIndex(node.KindAutoDiffFunctionKind, uint64(c)), nil
}

func (d *demangler) demangleDifferentiabilityWitness() (*node.Node, error) {
	genSig := d.popKind(node.KindDependentGenericSignature)
	children := d.popAll()
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if !node.IsDifferentiabilityKind(c) {
		return nil, d.fail()
	}
	children = append(children, node.NewIndex(node.KindIndex, uint64(c)))
	for _, term := range "pr" {
		subset, err := d.demangleIndexSubset()
		if err != nil {
			return nil, err
		}
		if err := d.s.MatchRune(term); err != nil {
			return nil, err
		}
		children = append(children, subset)
	}
	return node.New(node.KindDifferentiabilityWitness, append(children, genSig)...), nil
}

func (d *demangler) demangleIndexSubset() (*node.Node, error) {
	subset := d.s.ReadWhile(func(r rune) bool { return r == 'S' || r == 'U' })
	if subset == "" {
		return nil, d.fail()
	}
	return node.NewText(node.KindIndexSubset, subset), nil
}

func (d *demangler) demangleDifferentiableFunctionType() (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	if !node.IsDifferentiabilityKind(c) {
		return nil, d.fail()
	}
	return node.NewIndex(node.KindDifferentiableFunctionType, uint64(c)), nil
}

func (d *demangler) demangleBridgedMethodParams() (string, error) {
	if d.s.ConditionalRune('_') {
		return "", nil
	}
	kind, err := d.s.ReadScalar()
	if err != nil {
		return "", err
	}
	switch kind {
	case 'o', 'p', 'a', 'm':
	default:
		return "", nil
	}
	params := []rune{kind}
	for !d.s.ConditionalRune('_') {
		c, err := d.s.ReadScalar()
		if err != nil {
			return "", err
		}
		if c != 'n' && c != 'b' && c != 'g' {
			return "", d.fail()
		}
		params = append(params, c)
	}
	return string(params), nil
}

func (d *demangler) demangleGenericSpecialization(kind node.Kind, dropped []*node.Node) (*node.Node, error) {
	spec, err := d.demangleSpecAttributes(kind, false)
	if err != nil {
		return nil, err
	}
	spec = spec.AddingChildren(dropped...)
	list, err := d.popTypeList()
	if err != nil {
		return nil, err
	}
	params := make([]*node.Node, 0, list.NumChildren())
	for _, t := range list.Children() {
		params = append(params, node.New(node.KindGenericSpecializationParam, t))
	}
	return spec.AddingChildren(params...), nil
}

func (d *demangler) demangleGenericSpecializationWithDroppedArguments() (*node.Node, error) {
	if err := d.s.Backtrack(1); err != nil {
		return nil, err
	}
	var dropped []*node.Node
	for d.s.ConditionalRune('t') {
		var index uint64
		if n, ok := d.demangleNatural(); ok {
			index = n + 1
		}
		dropped = append(dropped, node.NewIndex(node.KindDroppedArgument, index))
	}
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var kind node.Kind
	switch c {
	case 'g':
		kind = node.KindGenericSpecialization
	case 'G':
		kind = node.KindGenericSpecializationNotReAbstracted
	case 'B':
		kind = node.KindGenericSpecializationInResilienceDomain
	default:
		return nil, d.fail()
	}
	return d.demangleGenericSpecialization(kind, dropped)
}

// carriesPayload reports the parameter kinds whose payload is an
// identifier pushed before the specialization.
func carriesPayload(k node.FuncSpecParamKind) bool {
	switch k {
	case node.FuncSpecConstantPropFunction, node.FuncSpecConstantPropGlobal, node.FuncSpecConstantPropString,
		node.FuncSpecConstantPropKeyPath, node.FuncSpecClosureProp:
		return true
	}
	return false
}

func (d *demangler) demangleFunctionSpecialization() (*node.Node, error) {
	spec, err := d.demangleSpecAttributes(node.KindFunctionSignatureSpecialization, true)
	if err != nil {
		return nil, err
	}
	children := spec.Children()
	for !d.s.ConditionalRune('_') {
		param, err := d.demangleFuncSpecParam(node.KindFunctionSignatureSpecializationParam)
		if err != nil {
			return nil, err
		}
		children = append(children, param)
	}
	if !d.s.ConditionalRune('n') {
		ret, err := d.demangleFuncSpecParam(node.KindFunctionSignatureSpecializationReturn)
		if err != nil {
			return nil, err
		}
		children = append(children, ret)
	}

	// Payloads were pushed in parameter order, so they are popped back to
	// front.
	for i := len(children) - 1; i >= 0; i-- {
		param := children[i]
		if param.Kind() != node.KindFunctionSignatureSpecializationParam {
			continue
		}
		kindNode := param.FirstChild()
		if kindNode == nil {
			continue
		}
		raw, ok := kindNode.Index()
		if !ok || kindNode.Kind() != node.KindFunctionSignatureSpecializationParamKind {
			return nil, d.fail()
		}
		paramKind := node.FuncSpecParamKind(raw)
		if !carriesPayload(paramKind) {
			continue
		}
		end := param.NumChildren()
		for t := d.popKind(node.KindType); t != nil; t = d.popKind(node.KindType) {
			if paramKind != node.FuncSpecClosureProp && paramKind != node.FuncSpecConstantPropKeyPath {
				return nil, d.fail()
			}
			param = param.InsertingChild(t, end)
		}
		name, err := d.need(d.popKind(node.KindIdentifier))
		if err != nil {
			return nil, err
		}
		text := name.TextOrEmpty()
		if paramKind == node.FuncSpecConstantPropString && len(text) > 0 && text[0] == '_' {
			text = text[1:]
		}
		children[i] = param.InsertingChild(node.NewText(node.KindFunctionSignatureSpecializationParamPayload, text), end)
	}
	if id, ok := spec.Index(); ok {
		return node.NewIndex(node.KindFunctionSignatureSpecialization, id, children...), nil
	}
	return node.New(node.KindFunctionSignatureSpecialization, children...), nil
}

func funcSpecKind(k node.FuncSpecParamKind) *node.Node {
	return node.NewIndex(node.KindFunctionSignatureSpecializationParamKind, uint64(k))
}

// funcSpecFlags ORs in the flags spelled by the optional letters that
// follow a parameter kind, in the order they may appear.
func (d *demangler) funcSpecFlags(value node.FuncSpecParamKind, letters string) node.FuncSpecParamKind {
	for _, l := range letters {
		if !d.s.ConditionalRune(l) {
			continue
		}
		switch l {
		case 'D':
			value |= node.FuncSpecDead
		case 'G':
			value |= node.FuncSpecOwnedToGuaranteed
		case 'O':
			value |= node.FuncSpecGuaranteedToOwned
		case 'X':
			value |= node.FuncSpecSROA
		}
	}
	return value
}

func (d *demangler) demangleFuncSpecParam(kind node.Kind) (*node.Node, error) {
	c, err := d.s.ReadScalar()
	if err != nil {
		return nil, err
	}
	var children []*node.Node
	switch c {
	case 'n':
	case 'c':
		children = append(children, funcSpecKind(node.FuncSpecClosureProp))
	case 'p':
		r, err := d.s.ReadScalar()
		if err != nil {
			return nil, err
		}
		switch r {
		case 'f':
			children = append(children, funcSpecKind(node.FuncSpecConstantPropFunction))
		case 'g':
			children = append(children, funcSpecKind(node.FuncSpecConstantPropGlobal))
		case 'i':
			children = append(children, funcSpecKind(node.FuncSpecConstantPropInteger))
		case 'd':
			children = append(children, funcSpecKind(node.FuncSpecConstantPropFloat))
		case 's':
			e, err := d.s.ReadScalar()
			if err != nil {
				return nil, err
			}
			var encoding string
			switch e {
			case 'b':
				encoding = "u8"
			case 'w':
				encoding = "u16"
			case 'c':
				encoding = "objc"
			default:
				return nil, d.fail()
			}
			children = append(children,
				funcSpecKind(node.FuncSpecConstantPropString),
				node.NewText(node.KindFunctionSignatureSpecializationParamPayload, encoding))
		case 'k':
			children = append(children, funcSpecKind(node.FuncSpecConstantPropKeyPath))
		default:
			return nil, d.fail()
		}
	case 'e':
		children = append(children, funcSpecKind(d.funcSpecFlags(node.FuncSpecExistentialToGeneric, "DGOX")))
	case 'd':
		children = append(children, funcSpecKind(d.funcSpecFlags(node.FuncSpecDead, "GOX")))
	case 'g':
		children = append(children, funcSpecKind(d.funcSpecFlags(node.FuncSpecOwnedToGuaranteed, "X")))
	case 'o':
		children = append(children, funcSpecKind(d.funcSpecFlags(node.FuncSpecGuaranteedToOwned, "X")))
	case 'x':
		children = append(children, funcSpecKind(node.FuncSpecSROA))
	case 'i':
		children = append(children, funcSpecKind(node.FuncSpecBoxToValue))
	case 's':
		children = append(children, funcSpecKind(node.FuncSpecBoxToStack))
	case 'r':
		children = append(children, funcSpecKind(node.FuncSpecInOutToOut))
	default:
		return nil, d.fail()
	}
	return node.New(kind, children...), nil
}

func (d *demangler) demangleSpecAttributes(kind node.Kind, uniqueID bool) (*node.Node, error) {
	var children []*node.Node
	if d.s.ConditionalRune('q') {
		children = append(children, node.New(node.KindIsSerialized))
	}
	if d.s.ConditionalRune('a') {
		children = append(children, node.New(node.KindAsyncRemoved))
	}
	pass, err := d.s.ReadFunc(stream.IsDigit)
	if err != nil {
		return nil, err
	}
	children = append(children, node.NewIndex(node.KindSpecializationPassID, uint64(pass-'0')))
	if uniqueID {
		if id, ok := d.demangleNatural(); ok {
			return node.NewIndex(kind, id, children...), nil
		}
	}
	return node.New(kind, children...), nil
}
