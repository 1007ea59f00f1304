package remangle

import "github.com/skdltmxn/swiftmangle/node"

func (r *remangler) mangleProtocolConformance(n *node.Node, depth int) error {
	if n.NumChildren() < 3 {
		return invalid(n, "conformance needs a type, a protocol and a module")
	}
	ty := skipType(n.Child(0))
	var sig *node.Node
	if ty.Is(node.KindDependentGenericType) {
		sig = ty.Child(0)
		ty = ty.Child(1)
	}
	if err := r.mangle(ty, depth+1); err != nil {
		return err
	}
	if n.NumChildren() == 4 {
		if err := r.mangleChild(n, 3, depth+1); err != nil {
			return err
		}
	}
	if err := r.manglePureProtocol(n.Child(1), depth+1); err != nil {
		return err
	}
	if err := r.mangleChild(n, 2, depth+1); err != nil {
		return err
	}
	if sig != nil {
		return r.mangle(sig, depth+1)
	}
	return nil
}

// mangleConformanceOf writes a descriptor of the conformance held by the
// first child.
func (r *remangler) mangleConformanceOf(n *node.Node, op string, depth int) error {
	c, err := child(n, 0)
	if err != nil {
		return err
	}
	if err := r.mangleProtocolConformance(c, depth+1); err != nil {
		return err
	}
	r.append(op)
	return nil
}

func (r *remangler) mangleConcreteProtocolConformance(n *node.Node, depth int) error {
	if err := r.mangleTypeChild(n, 0, depth); err != nil {
		return err
	}
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	if n.NumChildren() > 2 {
		if err := r.mangleAnyProtocolConformanceList(n.Child(2), depth+1); err != nil {
			return err
		}
	} else {
		r.appendByte('y')
	}
	r.append("HC")
	return nil
}

func (r *remangler) mangleAnyProtocolConformance(n *node.Node, depth int) error {
	switch kindOf(n) {
	case node.KindConcreteProtocolConformance, node.KindPackProtocolConformance,
		node.KindDependentProtocolConformanceRoot, node.KindDependentProtocolConformanceInherited,
		node.KindDependentProtocolConformanceAssociated, node.KindDependentProtocolConformanceOpaque:
		return r.mangle(n, depth+1)
	}
	return nil
}

func (r *remangler) mangleAnyProtocolConformanceList(n *node.Node, depth int) error {
	first := true
	for i := range n.NumChildren() {
		if err := r.mangleAnyProtocolConformance(n.Child(i), depth+1); err != nil {
			return err
		}
		r.listSeparator(&first)
	}
	r.endOfList(first)
	return nil
}

func (r *remangler) mangleDependentProtocolConformance(n *node.Node, depth int) error {
	if n.Is(node.KindDependentProtocolConformanceOpaque) {
		if err := r.mangleAnyProtocolConformance(n.Child(0), depth+1); err != nil {
			return err
		}
		if err := r.mangleTypeChild(n, 1, depth); err != nil {
			return err
		}
		r.append("HO")
		return nil
	}
	if n.NumChildren() < 3 {
		return invalid(n, "dependent conformance needs 3 children")
	}
	var op string
	switch n.Kind() {
	case node.KindDependentProtocolConformanceRoot:
		if err := r.mangleTypeChild(n, 0, depth); err != nil {
			return err
		}
		if err := r.manglePureProtocol(n.Child(1), depth+1); err != nil {
			return err
		}
		op = "HD"
	case node.KindDependentProtocolConformanceInherited:
		if err := r.mangleAnyProtocolConformance(n.Child(0), depth+1); err != nil {
			return err
		}
		if err := r.manglePureProtocol(n.Child(1), depth+1); err != nil {
			return err
		}
		op = "HI"
	default:
		if err := r.mangleAnyProtocolConformance(n.Child(0), depth+1); err != nil {
			return err
		}
		if err := r.mangleChild(n, 1, depth+1); err != nil {
			return err
		}
		op = "HA"
	}
	r.append(op)
	// Index 0 is reserved for an unknown position and 1 for an absent one.
	if idx, ok := n.Child(2).Index(); ok {
		r.mangleIndex(idx + 2)
	} else {
		r.mangleIndex(1)
	}
	return nil
}

func (r *remangler) mangleRetroactiveConformance(n *node.Node, depth int) error {
	if n.NumChildren() < 2 {
		return invalid(n, "retroactive conformance needs 2 children")
	}
	if err := r.mangleAnyProtocolConformance(n.Child(1), depth+1); err != nil {
		return err
	}
	r.appendByte('g')
	if idx, ok := n.Child(0).Index(); ok {
		r.mangleIndex(idx)
	}
	return nil
}

// manglePureProtocolThen writes the protocol held by the i-th child
// followed by op.
func (r *remangler) manglePureProtocolThen(n *node.Node, i int, op string, depth int) error {
	p, err := child(n, i)
	if err != nil {
		return err
	}
	if err := r.manglePureProtocol(p, depth+1); err != nil {
		return err
	}
	r.append(op)
	return nil
}

func (r *remangler) mangleAssociatedConformance(n *node.Node, op string, depth int) error {
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	return r.manglePureProtocolThen(n, 2, op, depth)
}

func (r *remangler) mangleValueWitness(n *node.Node, depth int) error {
	idx, ok := n.Child(0).Index()
	if !ok {
		return invalid(n, "value witness without kind")
	}
	code, ok := node.ValueWitnessKind(idx).Code()
	if !ok {
		return invalid(n, "unknown value witness kind %d", idx)
	}
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	r.append("w" + code)
	return nil
}

func (r *remangler) mangleDirectness(n *node.Node) error {
	idx, ok := n.Index()
	if !ok {
		return invalid(n, "missing directness")
	}
	switch node.Directness(idx) {
	case node.Direct:
		r.appendByte('d')
	case node.Indirect:
		r.appendByte('i')
	default:
		return invalid(n, "unknown directness %d", idx)
	}
	return nil
}
