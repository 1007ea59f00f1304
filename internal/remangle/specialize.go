package remangle

import "github.com/skdltmxn/swiftmangle/node"

func (r *remangler) mangleGenericSpecialization(n *node.Node, code string, depth int) error {
	first := true
	for _, c := range n.Children() {
		if !c.Is(node.KindGenericSpecializationParam) {
			continue
		}
		if err := r.mangleChild(c, 0, depth+1); err != nil {
			return err
		}
		r.listSeparator(&first)
	}
	r.appendByte('T')
	for _, c := range n.Children() {
		if !c.Is(node.KindDroppedArgument) {
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	r.append(code)
	for _, c := range n.Children() {
		if c.Is(node.KindGenericSpecializationParam, node.KindDroppedArgument) {
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *remangler) mangleGenericPartialSpecialization(n *node.Node, code string, depth int) error {
	if p := n.FirstChildOfKind(node.KindGenericSpecializationParam); p != nil {
		if err := r.mangleChild(p, 0, depth+1); err != nil {
			return err
		}
	}
	r.append(code)
	for _, c := range n.Children() {
		if c.Is(node.KindGenericSpecializationParam) {
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// funcSpecKindOf returns the raw kind value of a specialization parameter.
func funcSpecKindOf(param *node.Node) (node.FuncSpecParamKind, bool) {
	raw, ok := param.FirstChild().Index()
	return node.FuncSpecParamKind(raw), ok
}

func (r *remangler) mangleFunctionSignatureSpecialization(n *node.Node, depth int) error {
	// Payloads are written ahead of the attribute, in parameter order.
	for _, param := range n.Children() {
		if !param.Is(node.KindFunctionSignatureSpecializationParam) || param.NumChildren() == 0 {
			continue
		}
		kind, ok := funcSpecKindOf(param)
		if !ok {
			continue
		}
		switch kind {
		case node.FuncSpecConstantPropFunction, node.FuncSpecConstantPropGlobal:
			if err := r.manglePayload(param, 1); err != nil {
				return err
			}
		case node.FuncSpecConstantPropString:
			text, err := child(param, 2)
			if err != nil {
				return err
			}
			s := text.TextOrEmpty()
			if s != "" && (isDigit(rune(s[0])) || s[0] == '_') {
				text = node.NewText(node.KindIdentifier, "_"+s)
			}
			if err := r.mangleIdentifier(text); err != nil {
				return err
			}
		case node.FuncSpecClosureProp, node.FuncSpecConstantPropKeyPath:
			if err := r.manglePayload(param, 1); err != nil {
				return err
			}
			for i := 2; i < param.NumChildren(); i++ {
				if err := r.mangleTypeChild(param, i, depth); err != nil {
					return err
				}
			}
		}
	}

	r.append("Tf")
	returned := false
	for _, c := range n.Children() {
		if c.Is(node.KindFunctionSignatureSpecializationReturn) {
			r.appendByte('_')
			returned = true
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
		if c.Is(node.KindSpecializationPassID) {
			if id, ok := n.Index(); ok {
				r.appendUint(id)
			}
		}
	}
	if !returned {
		r.append("_n")
	}
	return nil
}

// manglePayload writes the i-th child of a specialization parameter as an
// identifier.
func (r *remangler) manglePayload(param *node.Node, i int) error {
	c, err := child(param, i)
	if err != nil {
		return err
	}
	if _, ok := c.Text(); !ok {
		return invalid(c, "payload without text")
	}
	return r.mangleIdentifier(c)
}

var stringEncodings = map[string]byte{"u8": 'b', "u16": 'w', "objc": 'c'}

func (r *remangler) mangleFunctionSignatureSpecializationParam(n *node.Node) error {
	if n.NumChildren() == 0 {
		r.appendByte('n')
		return nil
	}
	kind, ok := funcSpecKindOf(n)
	if !ok {
		return invalid(n, "specialization parameter without kind")
	}
	switch kind {
	case node.FuncSpecConstantPropFunction:
		r.append("pf")
	case node.FuncSpecConstantPropGlobal:
		r.append("pg")
	case node.FuncSpecConstantPropInteger, node.FuncSpecConstantPropFloat:
		text, ok := n.Child(1).Text()
		if !ok {
			return invalid(n, "constant without value")
		}
		if kind == node.FuncSpecConstantPropInteger {
			r.append("pi" + text)
		} else {
			r.append("pd" + text)
		}
	case node.FuncSpecConstantPropString:
		enc, ok := stringEncodings[n.Child(1).TextOrEmpty()]
		if !ok {
			return invalid(n, "unknown string encoding %q", n.Child(1).TextOrEmpty())
		}
		r.append("ps")
		r.appendByte(enc)
	case node.FuncSpecConstantPropKeyPath:
		r.append("pk")
	case node.FuncSpecClosureProp:
		r.appendByte('c')
	case node.FuncSpecBoxToValue:
		r.appendByte('i')
	case node.FuncSpecBoxToStack:
		r.appendByte('s')
	case node.FuncSpecInOutToOut:
		r.appendByte('r')
	case node.FuncSpecSROA:
		r.appendByte('x')
	default:
		r.mangleFuncSpecFlags(kind)
	}
	return nil
}

func (r *remangler) mangleFuncSpecFlags(kind node.FuncSpecParamKind) {
	has := func(f node.FuncSpecParamKind) bool { return kind&f != 0 }
	switch {
	case has(node.FuncSpecExistentialToGeneric):
		r.appendByte('e')
		if has(node.FuncSpecDead) {
			r.appendByte('D')
		}
		if has(node.FuncSpecOwnedToGuaranteed) {
			r.appendByte('G')
		}
		if has(node.FuncSpecGuaranteedToOwned) {
			r.appendByte('O')
		}
	case has(node.FuncSpecDead):
		r.appendByte('d')
		if has(node.FuncSpecOwnedToGuaranteed) {
			r.appendByte('G')
		}
		if has(node.FuncSpecGuaranteedToOwned) {
			r.appendByte('O')
		}
	case has(node.FuncSpecOwnedToGuaranteed):
		r.appendByte('g')
	case has(node.FuncSpecGuaranteedToOwned):
		r.appendByte('o')
	}
	if has(node.FuncSpecSROA) {
		r.appendByte('X')
	}
}

// mangleAutoDiffFunction writes the original function, op, the kind and
// the parameter and result index subsets. Subset thunks add the target
// parameter subset.
func (r *remangler) mangleAutoDiffFunction(n *node.Node, op string, subset bool, depth int) error {
	i := 0
	for ; i < n.NumChildren() && !n.Child(i).Is(node.KindAutoDiffFunctionKind); i++ {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
	}
	r.append(op)
	parts := []any{i, i + 1, "p", i + 2, "r"}
	if subset {
		parts = append(parts, i+3, "P")
	}
	return r.mangleInterleaved(n, depth, parts...)
}

func (r *remangler) mangleDifferentiabilityWitness(n *node.Node, depth int) error {
	i := 0
	for ; i < n.NumChildren() && !n.Child(i).Is(node.KindIndex); i++ {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
	}
	if last := n.LastChild(); last.Is(node.KindDependentGenericSignature) {
		if err := r.mangle(last, depth+1); err != nil {
			return err
		}
	}
	if n.Child(i) == nil {
		return invalid(n, "differentiability witness without kind")
	}
	code, err := differentiabilityCode(n.Child(i), node.IsDifferentiabilityKind)
	if err != nil {
		return err
	}
	r.append("WJ")
	r.appendByte(code)
	return r.mangleInterleaved(n, depth, i+1, "p", i+2, "r")
}

func (r *remangler) mangleSelfReorderingThunk(n *node.Node, depth int) error {
	if n.NumChildren() < 3 {
		return invalid(n, "reordering thunk needs 3 children")
	}
	if err := r.mangleInterleaved(n, depth, 0, 1); err != nil {
		return err
	}
	i := 2
	if n.Child(i).Is(node.KindDependentGenericSignature) {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
		i++
	}
	return r.mangleInterleaved(n, depth, "TJO", i)
}

func (r *remangler) mangleKeyPathThunkHelper(n *node.Node, op string, depth int) error {
	for _, c := range n.Children() {
		if c.Is(node.KindIsSerialized) {
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	r.append(op)
	for _, c := range n.Children() {
		if !c.Is(node.KindIsSerialized) {
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
