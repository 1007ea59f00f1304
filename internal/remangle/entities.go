package remangle

import "github.com/skdltmxn/swiftmangle/node"

// globalSuffixed lists symbol attributes the demangler reads after the
// entity they apply to.
var globalSuffixed = map[node.Kind]bool{
	node.KindFunctionSignatureSpecialization:             true,
	node.KindGenericSpecialization:                       true,
	node.KindGenericSpecializationPrespecialized:         true,
	node.KindGenericSpecializationNotReAbstracted:        true,
	node.KindGenericSpecializationInResilienceDomain:     true,
	node.KindInlinedGenericFunction:                      true,
	node.KindGenericPartialSpecialization:                true,
	node.KindGenericPartialSpecializationNotReAbstracted: true,
	node.KindOutlinedBridgedMethod:                       true,
	node.KindOutlinedVariable:                            true,
	node.KindOutlinedReadOnlyObject:                      true,
	node.KindObjCAttribute:                               true,
	node.KindNonObjCAttribute:                            true,
	node.KindDynamicAttribute:                            true,
	node.KindVTableAttribute:                             true,
	node.KindDirectMethodReferenceAttribute:              true,
	node.KindMergedFunction:                              true,
	node.KindDistributedThunk:                            true,
	node.KindDistributedAccessor:                         true,
	node.KindDynamicallyReplaceableFunctionKey:           true,
	node.KindDynamicallyReplaceableFunctionImpl:          true,
	node.KindDynamicallyReplaceableFunctionVar:           true,
	node.KindAsyncFunctionPointer:                        true,
	node.KindAsyncAwaitResumePartialFunction:             true,
	node.KindAsyncSuspendResumePartialFunction:           true,
	node.KindAccessibleFunctionRecord:                    true,
	node.KindBackDeploymentThunk:                         true,
	node.KindBackDeploymentFallback:                      true,
	node.KindHasSymbolQuery:                              true,
	node.KindCoroFunctionPointer:                         true,
	node.KindDefaultOverride:                             true,
}

// mangleGlobal writes the symbol prefix and the top-level children. The
// attributes in globalSuffixed come first in the tree but are spelled
// after the next entity, innermost first. Attributes with no entity after
// them are an error.
func (r *remangler) mangleGlobal(n *node.Node, depth int) error {
	r.append("_$s")
	pending := false
	for i, c := range n.Children() {
		if globalSuffixed[c.Kind()] {
			pending = true
			continue
		}
		if err := r.mangle(c, depth+1); err != nil {
			return err
		}
		if !pending {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if err := r.mangle(n.Child(j), depth+1); err != nil {
				return err
			}
		}
		pending = false
	}
	if pending {
		return invalid(n, "symbol attribute %v is not followed by an entity", n.LastChild().Kind())
	}
	return nil
}

func (r *remangler) manglePrivateDeclName(n *node.Node, depth int) error {
	if err := r.mangleChildrenReversed(n, depth+1); err != nil {
		return err
	}
	if n.NumChildren() == 1 {
		r.append("Ll")
	} else {
		r.append("LL")
	}
	return nil
}

func (r *remangler) mangleLocalDeclName(n *node.Node, depth int) error {
	return r.mangleInterleaved(n, depth, 1, "L", 0)
}

func (r *remangler) mangleRelatedEntityDeclName(n *node.Node, depth int) error {
	if err := r.mangleChild(n, 1, depth+1); err != nil {
		return err
	}
	text, _ := n.Child(0).Text()
	if len(text) != 1 {
		return invalid(n, "related entity kind must be a single letter")
	}
	r.append("L" + text)
	return nil
}

func (r *remangler) mangleAnonymousContext(n *node.Node, depth int) error {
	if err := r.mangleInterleaved(n, depth, 1, 0); err != nil {
		return err
	}
	if n.NumChildren() >= 3 {
		if err := r.mangleTypeList(n.Child(2), depth+1); err != nil {
			return err
		}
	} else {
		r.appendByte('y')
	}
	r.append("XZ")
	return nil
}

func (r *remangler) mangleClosure(n *node.Node, op string, depth int) error {
	return r.mangleInterleaved(n, depth, 0, 2, op, 1)
}

// mangleClangFunction writes a C function pointer or block type. A leading
// ClangType child is spelled after the operator.
func (r *remangler) mangleClangFunction(n *node.Node, op, clangOp string, depth int) error {
	clang := n.FirstChild()
	if !clang.Is(node.KindClangType) {
		if err := r.mangleChildrenReversed(n, depth+1); err != nil {
			return err
		}
		r.append(op)
		return nil
	}
	for i := n.NumChildren() - 1; i >= 1; i-- {
		if err := r.mangle(n.Child(i), depth+1); err != nil {
			return err
		}
	}
	r.append(clangOp)
	return r.mangle(clang, depth+1)
}

// mangleSugar writes the children in order followed by op.
func (r *remangler) mangleSugar(n *node.Node, op string, depth int) error {
	if n.NumChildren() == 0 {
		return missingChild(n, 0)
	}
	if err := r.mangleChildren(n, depth+1); err != nil {
		return err
	}
	r.append(op)
	return nil
}

func (r *remangler) mangleExtendedExistentialTypeShape(n *node.Node, depth int) error {
	switch n.NumChildren() {
	case 1:
		return r.mangleInterleaved(n, depth, 0, "Xg")
	case 2:
		return r.mangleInterleaved(n, depth, 0, 1, "XG")
	}
	return invalid(n, "shape needs a type and an optional signature")
}

func (r *remangler) mangleSymbolicExtendedExistentialType(n *node.Node, depth int) error {
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	args, err := child(n, 1)
	if err != nil {
		return err
	}
	if err := r.mangleChildren(args, depth+1); err != nil {
		return err
	}
	if n.NumChildren() > 2 {
		return r.mangleChildren(n.Child(2), depth+1)
	}
	return nil
}

func (r *remangler) mangleOpaqueType(n *node.Node, depth int) error {
	e, found := r.trySubstitution(n, false)
	if found {
		return nil
	}
	if n.NumChildren() < 3 {
		return invalid(n, "opaque type needs a descriptor, an index and arguments")
	}
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	for i, level := range n.Child(2).Children() {
		if i == 0 {
			r.appendByte('y')
		} else {
			r.appendByte('_')
		}
		if err := r.mangleChildren(level, depth+1); err != nil {
			return err
		}
	}
	if n.NumChildren() >= 4 {
		if err := r.mangleChildren(n.Child(3), depth+1); err != nil {
			return err
		}
	}
	idx, ok := n.Child(1).Index()
	if !ok {
		return invalid(n, "opaque type without ordinal")
	}
	r.append("Qo")
	r.mangleIndex(idx)
	r.addSubstitution(e)
	return nil
}

func (r *remangler) mangleMacroExpansionLoc(n *node.Node, depth int) error {
	if err := r.mangleInterleaved(n, depth, 0, 1, "fMX"); err != nil {
		return err
	}
	line, lok := n.Child(2).Index()
	col, cok := n.Child(3).Index()
	if !lok || !cok {
		return invalid(n, "macro location needs a line and a column")
	}
	r.mangleIndex(line)
	r.mangleIndex(col)
	return nil
}

// mangleMacroExpansion writes a macro expansion name: the context, an
// optional private discriminator, the macro name, op and the discriminator
// index.
func (r *remangler) mangleMacroExpansion(n *node.Node, op string, depth int) error {
	if err := r.mangleChild(n, 0, depth+1); err != nil {
		return err
	}
	if n.NumChildren() > 3 {
		if err := r.mangleChild(n, 3, depth+1); err != nil {
			return err
		}
	}
	return r.mangleInterleaved(n, depth, 1, op, 2)
}

func (r *remangler) mangleOutlinedEnum(n *node.Node, op string, depth int) error {
	last := n.NumChildren() - 1
	if last < 1 || last > 2 {
		return invalid(n, "outlined enum operation needs 2 or 3 children")
	}
	for i := range last {
		if err := r.mangleChild(n, i, depth+1); err != nil {
			return err
		}
	}
	r.append(op)
	return r.mangleNodeIndex(n.Child(last))
}

// mangleSymbolicReference encodes the tree a symbolic reference stands
// for. The reference itself has no textual spelling.
func (r *remangler) mangleSymbolicReference(n *node.Node, depth int) error {
	if r.resolver == nil {
		return newError(MissingSymbolicResolver, n)
	}
	repl, err := r.resolver(n)
	if err != nil {
		return &Error{Kind: MissingSymbolicResolver, Node: n, Message: err.Error()}
	}
	if repl == nil {
		return newError(MissingSymbolicResolver, n)
	}
	r.trace("resolved symbolic reference", "kind", n.Kind(), "to", repl.Kind())
	return r.mangle(repl, depth+1)
}
