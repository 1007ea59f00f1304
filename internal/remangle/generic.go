package remangle

import "github.com/skdltmxn/swiftmangle/node"

func (r *remangler) mangleDependentGenericParamType(n *node.Node) error {
	d, dok := n.Child(0).Index()
	i, iok := n.Child(1).Index()
	if n.NumChildren() != 2 || !dok || !iok {
		return invalid(n, "generic parameter needs a depth and an index")
	}
	if d == 0 && i == 0 {
		r.appendByte('x')
		return nil
	}
	r.appendByte('q')
	return r.mangleParamIndex(n, "", "z")
}

// mangleParamIndex writes the position of a generic parameter. prefix
// precedes any non-zero position; zeroOp stands for the first parameter of
// the outermost level.
func (r *remangler) mangleParamIndex(n *node.Node, prefix, zeroOp string) error {
	if n.Is(node.KindConstrainedExistentialSelf) {
		r.appendByte('s')
		return nil
	}
	if n.NumChildren() < 2 {
		return invalid(n, "generic parameter needs a depth and an index")
	}
	d, dok := n.Child(0).Index()
	i, iok := n.Child(1).Index()
	if !dok || !iok {
		return invalid(n, "generic parameter needs a depth and an index")
	}
	switch {
	case d != 0:
		r.append(prefix + "d")
		r.mangleIndex(d - 1)
		r.mangleIndex(i)
	case i != 0:
		r.append(prefix)
		r.mangleIndex(i - 1)
	default:
		r.append(zeroOp)
	}
	return nil
}

// mangleConstrainedType writes the base and member path of a requirement
// subject. It returns the number of member names written, or -1 when the
// whole subject was a substitution or a concrete type, together with the
// generic parameter the path starts at.
func (r *remangler) mangleConstrainedType(n *node.Node, depth int) (int, *node.Node, error) {
	if depth > MaxDepth {
		return 0, nil, newError(TooComplex, n)
	}
	if n.Is(node.KindType) {
		n = n.FirstChild()
	}
	if n == nil {
		return 0, nil, invalid(nil, "missing constrained type")
	}
	e, found := r.trySubstitution(n, false)
	if found {
		return -1, nil, nil
	}

	var chain []*node.Node
	for n.Is(node.KindDependentMemberType) {
		member, err := child(n, 1)
		if err != nil {
			return 0, nil, err
		}
		chain = append(chain, member)
		if n, err = path(n, 0, 0); err != nil {
			return 0, nil, err
		}
	}

	base := n
	if !n.Is(node.KindDependentGenericParamType, node.KindConstrainedExistentialSelf) {
		if err := r.mangle(n, depth+1); err != nil {
			return 0, nil, err
		}
		if len(chain) == 0 {
			return -1, nil, nil
		}
		base = nil
	}

	for i := len(chain) - 1; i >= 0; i-- {
		if err := r.mangle(chain[i], depth+1); err != nil {
			return 0, nil, err
		}
		if i == len(chain)-1 && len(chain) > 1 {
			r.appendByte('_')
		}
	}
	if len(chain) > 0 {
		r.addSubstitution(e)
	}
	return len(chain), base, nil
}

func (r *remangler) mangleDependentMemberType(n *node.Node, depth int) error {
	members, base, err := r.mangleConstrainedType(n, depth+1)
	if err != nil {
		return err
	}
	switch members {
	case -1:
		return nil
	case 0:
		return newError(InvalidDependentMemberType, n)
	case 1:
		r.appendByte('Q')
		if base == nil {
			r.appendByte('x')
			return nil
		}
		return r.mangleParamIndex(base, "y", "z")
	}
	r.appendByte('Q')
	if base == nil {
		r.appendByte('X')
		return nil
	}
	return r.mangleParamIndex(base, "Y", "Z")
}

// mangleRequirementOp writes the requirement operator chosen by the member
// count, then the parameter index unless the subject was a substitution.
func (r *remangler) mangleRequirementOp(members int, base *node.Node, ops [4]string) error {
	switch members {
	case -1:
		r.append(ops[0])
		return nil
	case 0:
		r.append(ops[1])
	case 1:
		r.append(ops[2])
	default:
		r.append(ops[3])
	}
	if base == nil {
		return nil
	}
	return r.mangleParamIndex(base, "", "z")
}

func (r *remangler) mangleConformanceRequirement(n *node.Node, depth int) error {
	if n.NumChildren() != 2 {
		return invalid(n, "conformance requirement needs 2 children")
	}
	constraint := n.Child(1)
	if constraint.FirstChild().Is(node.KindProtocol) {
		if err := r.manglePureProtocol(constraint, depth+1); err != nil {
			return err
		}
		members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
		if err != nil {
			return err
		}
		if members >= 0 && base == nil {
			return invalid(n, "requirement subject is not generic")
		}
		return r.mangleRequirementOp(members, base, [4]string{"RQ", "R", "Rp", "RP"})
	}
	if err := r.mangle(constraint, depth+1); err != nil {
		return err
	}
	members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
	if err != nil {
		return err
	}
	return r.mangleRequirementOp(members, base, [4]string{"RB", "Rb", "Rc", "RC"})
}

func (r *remangler) mangleSameTypeRequirement(n *node.Node, depth int) error {
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
	if err != nil {
		return err
	}
	return r.mangleRequirementOp(members, base, [4]string{"RS", "Rs", "Rt", "RT"})
}

func (r *remangler) mangleSameShapeRequirement(n *node.Node, depth int) error {
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
	if err != nil {
		return err
	}
	if members != 0 || base == nil {
		return invalid(n, "same-shape requirement on a member type")
	}
	r.append("Rh")
	return r.mangleParamIndex(base, "", "z")
}

func (r *remangler) mangleLayoutRequirement(n *node.Node, depth int) error {
	if n.NumChildren() < 2 {
		return invalid(n, "layout requirement needs at least 2 children")
	}
	members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
	if err != nil {
		return err
	}
	if err := r.mangleRequirementOp(members, base, [4]string{"RL", "Rl", "Rm", "RM"}); err != nil {
		return err
	}
	layout := n.Child(1)
	text, _ := layout.Text()
	if !layout.Is(node.KindIdentifier) || len(text) != 1 {
		return invalid(n, "layout kind must be a single letter")
	}
	r.append(text)
	for i := 2; i < n.NumChildren() && i < 4; i++ {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *remangler) mangleInverseConformanceRequirement(n *node.Node, depth int) error {
	if n.NumChildren() != 2 {
		return invalid(n, "inverse requirement needs 2 children")
	}
	inverse, ok := n.Child(1).Index()
	if !ok {
		return invalid(n.Child(1), "missing inverse kind")
	}
	members, base, err := r.mangleConstrainedType(n.Child(0), depth+1)
	if err != nil {
		return err
	}
	switch members {
	case -1:
		r.append("RI")
		r.mangleIndex(inverse)
		return nil
	case 0:
		r.append("Ri")
	case 1:
		r.append("Rj")
	default:
		r.append("RJ")
	}
	r.mangleIndex(inverse)
	if base == nil {
		return nil
	}
	return r.mangleParamIndex(base, "", "z")
}

// mangleGenericSignature writes the requirements, then the parameter
// counts per level. A single level with one parameter is just "l".
func (r *remangler) mangleGenericSignature(n *node.Node, depth int) error {
	counts := 0
	for i, c := range n.Children() {
		if c.Is(node.KindDependentGenericParamCount) {
			counts = i + 1
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
	}
	if counts == 1 {
		if c, _ := n.Child(0).Index(); c == 1 {
			r.appendByte('l')
			return nil
		}
	}
	r.appendByte('r')
	for i := range counts {
		if c, _ := n.Child(i).Index(); c > 0 {
			r.mangleIndex(c - 1)
		} else {
			r.appendByte('z')
		}
	}
	r.appendByte('l')
	return nil
}
