package subst

import "strconv"

// Buffer is the output the encoder writes to. *bytes.Buffer satisfies it.
type Buffer interface {
	Len() int
	Bytes() []byte
	Truncate(n int)
	WriteString(s string) (int, error)
}

// Merger folds consecutive substitutions into one: "AaAb" becomes "AaB" and
// "SiSi" becomes "S2i".
type Merger struct {
	lastPos      int
	lastSize     int
	lastNum      int
	lastStandard bool
}

// Clear forgets the previous substitution.
func (m *Merger) Clear() { m.lastNum = 0 }

// TryMerge merges subst into the substitution that ends buf, if there is
// one. It returns false when the caller must write "A"+subst or "S"+subst
// itself.
func (m *Merger) TryMerge(buf Buffer, subst string, standard bool) bool {
	n := buf.Len()
	if m.lastNum > 0 && m.lastNum < MaxRepeatCount &&
		n == m.lastPos+m.lastSize && m.lastStandard == standard {
		b := buf.Bytes()
		last := b[n-m.lastSize:]
		for len(last) > 0 && isDigit(rune(last[0])) {
			last = last[1:]
		}
		lastSubst := string(last)

		if lastSubst != subst && !standard {
			// "AB" followed by "C" becomes "AbC".
			lower := lastSubst[len(lastSubst)-1] - 'A' + 'a'
			buf.Truncate(n - 1)
			buf.WriteString(string(rune(lower)) + subst)
			m.lastPos = n
			m.lastNum = 1
			m.lastSize = 1
			return true
		}
		if lastSubst == subst {
			m.lastNum++
			buf.Truncate(m.lastPos)
			buf.WriteString(strconv.Itoa(m.lastNum) + subst)
			m.lastSize = buf.Len() - m.lastPos
			return true
		}
	}

	m.lastPos = n + 1
	m.lastSize = len(subst)
	m.lastNum = 1
	m.lastStandard = standard
	return false
}
