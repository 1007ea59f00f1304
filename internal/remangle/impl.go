package remangle

import "github.com/skdltmxn/swiftmangle/node"

var (
	calleeConventions = map[string]byte{
		"@callee_unowned":    'y',
		"@callee_guaranteed": 'g',
		"@callee_owned":      'x',
		"@convention(thin)":  't',
	}
	functionConventions = map[string]byte{
		"block":          'B',
		"c":              'C',
		"method":         'M',
		"objc_method":    'O',
		"closure":        'K',
		"witness_method": 'W',
	}
	coroutineKinds = map[string]byte{
		"yield_once":   'A',
		"yield_once_2": 'I',
		"yield_many":   'G',
	}
	functionAttributes = map[string]byte{
		"@Sendable": 'h',
		"@async":    'H',
	}
	paramConventions = map[string]byte{
		"@in":              'i',
		"@inout":           'l',
		"@inout_aliasable": 'b',
		"@in_guaranteed":   'n',
		"@in_cxx":          'X',
		"@in_constant":     'c',
		"@owned":           'x',
		"@guaranteed":      'g',
		"@deallocating":    'e',
		"@unowned":         'y',
		"@pack_guaranteed": 'p',
		"@pack_owned":      'v',
		"@pack_inout":      'm',
	}
	resultConventions = map[string]byte{
		"@out":                   'r',
		"@owned":                 'o',
		"@unowned":               'd',
		"@unowned_inner_pointer": 'u',
		"@autoreleased":          'a',
		"@pack_out":              'k',
	}
	parameterFlags = map[node.Kind]struct {
		text string
		code byte
	}{
		node.KindImplParameterSending:         {"sending", 'T'},
		node.KindImplParameterIsolated:        {"isolated", 'I'},
		node.KindImplParameterImplicitLeading: {"sil_implicit_leading_param", 'L'},
	}
)

// mangleImplFunctionType writes a SIL function type. All component types
// come first, then the generic signature and substitutions, then "I" and
// the conventions in the order the demangler expects them.
func (r *remangler) mangleImplFunctionType(n *node.Node, depth int) error {
	var sig, pattern, invocation *node.Node
	pseudo := false
	for _, c := range n.Children() {
		switch c.Kind() {
		case node.KindImplParameter, node.KindImplResult, node.KindImplYield, node.KindImplErrorResult:
			if c.NumChildren() < 2 {
				return invalid(c, "impl parameter needs a convention and a type")
			}
			if err := r.mangle(c.LastChild(), depth+1); err != nil {
				return err
			}
		case node.KindDependentPseudogenericSignature:
			pseudo = true
			sig = c
		case node.KindDependentGenericSignature:
			sig = c
		case node.KindImplPatternSubstitutions:
			pattern = c
		case node.KindImplInvocationSubstitutions:
			invocation = c
		}
	}
	if sig != nil {
		if err := r.mangle(sig, depth+1); err != nil {
			return err
		}
	}
	if invocation != nil {
		r.appendByte('y')
		args, err := child(invocation, 0)
		if err != nil {
			return err
		}
		if err := r.mangleChildren(args, depth+1); err != nil {
			return err
		}
		if invocation.NumChildren() >= 2 {
			if err := r.mangleRetroactiveConformance(invocation.Child(1), depth+1); err != nil {
				return err
			}
		}
	}
	if pattern != nil {
		if err := r.mangleChild(pattern, 0, depth+1); err != nil {
			return err
		}
		r.appendByte('y')
		args, err := child(pattern, 1)
		if err != nil {
			return err
		}
		if err := r.mangleChildren(args, depth+1); err != nil {
			return err
		}
		if conf := pattern.Child(2); conf != nil {
			if conf.Is(node.KindTypeList) {
				err = r.mangleChildren(conf, depth+1)
			} else {
				err = r.mangleRetroactiveConformance(conf, depth+1)
			}
			if err != nil {
				return err
			}
		}
	}

	r.appendByte('I')
	if pattern != nil {
		r.appendByte('s')
	}
	if invocation != nil {
		r.appendByte('I')
	}
	if pseudo {
		r.appendByte('P')
	}

	for _, c := range n.Children() {
		if err := r.mangleImplComponent(c, depth); err != nil {
			return err
		}
	}
	r.appendByte('_')
	return nil
}

func (r *remangler) mangleImplComponent(c *node.Node, depth int) error {
	switch c.Kind() {
	case node.KindImplDifferentiabilityKind:
		code, err := differentiabilityCode(c, node.IsDifferentiabilityKind)
		if err != nil {
			return err
		}
		r.appendByte(code)
	case node.KindImplEscaping:
		r.appendByte('e')
	case node.KindImplErasedIsolation:
		r.appendByte('A')
	case node.KindImplSendingResult:
		r.appendByte('T')
	case node.KindImplConvention:
		return r.mangleImplConvention(c)
	case node.KindImplFunctionConvention:
		return r.mangleImplFunctionConvention(c, depth)
	case node.KindImplCoroutineKind:
		code, ok := coroutineKinds[c.TextOrEmpty()]
		if !ok {
			return invalid(c, "unknown coroutine kind %q", c.TextOrEmpty())
		}
		r.appendByte(code)
	case node.KindImplFunctionAttribute:
		code, ok := functionAttributes[c.TextOrEmpty()]
		if !ok {
			return invalid(c, "unknown function attribute %q", c.TextOrEmpty())
		}
		r.appendByte(code)
	case node.KindImplYield:
		r.appendByte('Y')
		return r.mangleImplParameter(c)
	case node.KindImplParameter:
		return r.mangleImplParameter(c)
	case node.KindImplErrorResult:
		r.appendByte('z')
		return r.mangleImplResult(c)
	case node.KindImplResult:
		return r.mangleImplResult(c)
	}
	return nil
}

func (r *remangler) mangleImplConvention(n *node.Node) error {
	code, ok := calleeConventions[n.TextOrEmpty()]
	if !ok {
		return newError(InvalidCallingConvention, n)
	}
	r.appendByte(code)
	return nil
}

func (r *remangler) mangleImplFunctionConvention(n *node.Node, depth int) error {
	code, ok := functionConventions[n.FirstChild().TextOrEmpty()]
	if !ok {
		return invalid(n, "unknown function convention %q", n.FirstChild().TextOrEmpty())
	}
	if clang := n.Child(1); (code == 'B' || code == 'C') && clang.Is(node.KindClangType) {
		r.appendByte('z')
		r.appendByte(code)
		return r.mangle(clang, depth+1)
	}
	r.appendByte(code)
	return nil
}

func (r *remangler) mangleImplParameter(n *node.Node) error {
	code, ok := paramConventions[n.FirstChild().TextOrEmpty()]
	if !ok {
		return newError(InvalidImplParameterConvention, n)
	}
	r.appendByte(code)
	for i := 1; i < n.NumChildren()-1; i++ {
		c := n.Child(i)
		var err error
		if c.Is(node.KindImplParameterResultDifferentiability) {
			err = r.mangleImplDifferentiability(c)
		} else {
			err = r.mangleImplParameterFlag(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *remangler) mangleImplResult(n *node.Node) error {
	code, ok := resultConventions[n.FirstChild().TextOrEmpty()]
	if !ok {
		return newError(InvalidImplParameterConvention, n.FirstChild())
	}
	r.appendByte(code)
	switch n.NumChildren() {
	case 3:
		return r.mangleImplDifferentiability(n.Child(1))
	case 4:
		if err := r.mangleImplDifferentiability(n.Child(1)); err != nil {
			return err
		}
		return r.mangleImplParameterFlag(n.Child(2))
	}
	return nil
}

func (r *remangler) mangleImplDifferentiability(n *node.Node) error {
	switch n.TextOrEmpty() {
	case "":
	case "@noDerivative":
		r.appendByte('w')
	default:
		return newError(InvalidDifferentiability, n)
	}
	return nil
}

func (r *remangler) mangleImplParameterFlag(n *node.Node) error {
	f, ok := parameterFlags[kindOf(n)]
	if !ok || n.TextOrEmpty() != f.text {
		return invalid(n, "unknown parameter attribute")
	}
	r.appendByte(f.code)
	return nil
}
