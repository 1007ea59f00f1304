package remangle

import (
	"strconv"

	"github.com/skdltmxn/swiftmangle/internal/punycode"
	"github.com/skdltmxn/swiftmangle/internal/subst"
	"github.com/skdltmxn/swiftmangle/node"
)

func (r *remangler) mangleIdentifier(n *node.Node) error {
	text, ok := n.Text()
	if !ok {
		return invalid(n, "identifier without text")
	}
	e, found := r.trySubstitution(n, true)
	if found {
		return nil
	}
	if n.Kind().IsOperator() {
		text = subst.TranslateOperator(text)
	}
	r.mangleIdentText(text)
	r.addSubstitution(e)
	return nil
}

func (r *remangler) mangleOperator(n *node.Node, suffix string) error {
	if err := r.mangleIdentifier(n); err != nil {
		return err
	}
	r.append(suffix)
	return nil
}

// wordRepl replaces the word starting at pos with words[idx].
type wordRepl struct {
	pos int
	idx int
}

// mangleIdentText writes an identifier, reusing words from earlier
// identifiers: "0" introduces a mix of literal chunks "<len><chars>" and
// word letters, lowercase except for the last one.
func (r *remangler) mangleIdentText(ident string) {
	if r.punycode && punycode.NeedsEncoding(ident) {
		if enc, err := punycode.Encode(ident, true); err == nil {
			r.append("00" + strconv.Itoa(len(enc)))
			if enc != "" && (isDigit(rune(enc[0])) || enc[0] == '_') {
				r.appendByte('_')
			}
			r.append(enc)
			return
		}
	}

	rs := []rune(ident)
	var repls []wordRepl

	start := -1
	for pos := 0; pos <= len(rs); pos++ {
		var ch, prev rune
		if pos < len(rs) {
			ch = rs[pos]
		}
		if pos > 0 {
			prev = rs[pos-1]
		}
		if start >= 0 && subst.IsWordEnd(ch, prev) {
			word := string(rs[start:pos])
			idx := -1
			for i, w := range r.words {
				if w == word {
					idx = i
					break
				}
			}
			switch {
			case idx >= 0:
				repls = append(repls, wordRepl{pos: start, idx: idx})
			case pos-start >= 2 && len(r.words) < subst.MaxNumWords:
				r.words = append(r.words, word)
			}
			start = -1
		}
		if start < 0 && subst.IsWordStart(ch) {
			start = pos
		}
	}

	if len(repls) > 0 {
		r.appendByte('0')
	}
	repls = append(repls, wordRepl{pos: len(rs), idx: -1})

	pos := 0
	for i, repl := range repls {
		if pos < repl.pos {
			r.append(strconv.Itoa(repl.pos - pos))
			// A chunk cannot start with a digit; "X" stands in for it.
			if isDigit(rs[pos]) {
				r.appendByte('X')
			} else {
				r.buf.WriteRune(rs[pos])
			}
			for _, c := range rs[pos+1 : repl.pos] {
				r.buf.WriteRune(c)
			}
			pos = repl.pos
		}
		if repl.idx < 0 {
			continue
		}
		pos += len([]rune(r.words[repl.idx]))
		if i < len(repls)-2 {
			r.appendByte(byte('a' + repl.idx))
			continue
		}
		r.appendByte(byte('A' + repl.idx))
		if pos == len(rs) {
			r.appendByte('0')
		}
	}
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
