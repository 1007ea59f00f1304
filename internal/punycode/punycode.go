// Package punycode implements the Swift flavour of RFC 3492 used for
// non-ASCII identifiers in mangled names. It differs from the RFC in two
// ways: '_' delimits the basic code points, and digits 26 to 35 are spelled
// 'A' to 'J' instead of '0' to '9'.
package punycode

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalid is returned when the input is not valid Swift punycode.
var ErrInvalid = errors.New("punycode: invalid encoding")

const (
	base        = 36
	tmin        = 1
	tmax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
	delimiter   = '_'

	// ASCII characters that may not appear in a symbol are shifted into
	// this range before encoding when mapNonSymbolChars is set.
	nonSymbolBase = 0xD800
	nonSymbolEnd  = 0xD880
)

// NeedsEncoding reports whether s contains a scalar that cannot appear in a
// mangled identifier as-is.
func NeedsEncoding(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !isValidSymbolStart(r) {
				return true
			}
			continue
		}
		if !isValidSymbolChar(r) {
			return true
		}
	}
	return false
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

func isValidSymbolStart(r rune) bool { return isLetter(r) || r == '_' || r == '$' }
func isValidSymbolChar(r rune) bool  { return isValidSymbolStart(r) || isDigit(r) }

func isValidScalar(v int) bool {
	if v >= nonSymbolBase && v < nonSymbolEnd {
		return true
	}
	return v <= 0xD7FF || (v >= 0xE000 && v <= 0x10FFFF)
}

// Encode punycode-encodes s. With mapNonSymbolChars, ASCII characters that
// are not valid symbol characters are escaped as well, so the result can be
// embedded in a mangled name.
func Encode(s string, mapNonSymbolChars bool) (string, error) {
	points := make([]int, 0, len(s))
	for _, r := range s {
		v := int(r)
		if v < 0x80 {
			if mapNonSymbolChars && !isValidSymbolChar(r) {
				v += nonSymbolBase
			}
		} else if !isValidScalar(v) {
			return "", ErrInvalid
		}
		points = append(points, v)
	}
	return encodePoints(points)
}

func encodePoints(points []int) (string, error) {
	var out strings.Builder
	n := initialN
	delta := 0
	bias := initialBias

	h := 0
	for _, c := range points {
		if c < 0x80 {
			h++
			out.WriteByte(byte(c))
		}
	}
	b := h
	if b > 0 {
		out.WriteByte(delimiter)
	}

	const maxInt = int(^uint(0) >> 1)
	for h < len(points) {
		m := 0x10FFFF
		for _, c := range points {
			if c >= n && c < m {
				m = c
			}
		}
		if (m - n) > (maxInt-delta)/(h+1) {
			return "", ErrInvalid
		}
		delta += (m - n) * (h + 1)
		n = m

		for _, c := range points {
			if c < n {
				if delta == maxInt {
					return "", ErrInvalid
				}
				delta++
			}
			if c == n {
				q := delta
				for k := base; ; k += base {
					t := k - bias
					if k <= bias {
						t = tmin
					} else if k >= bias+tmax {
						t = tmax
					}
					if q < t {
						break
					}
					out.WriteByte(digit(t + (q-t)%(base-t)))
					q = (q - t) / (base - t)
				}
				out.WriteByte(digit(q))
				bias = adapt(delta, h+1, h == b)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}
	return out.String(), nil
}

func digit(d int) byte {
	if d < 26 {
		return byte('a' + d)
	}
	return byte('A' + d - 26)
}

func adapt(delta, numPoints int, first bool) int {
	if first {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((base-tmin)*tmax)/2 {
		delta /= base - tmin
		k += base
	}
	return k + ((base-tmin+1)*delta)/(delta+skew)
}

// Decode reverses Encode. Scalars in the escape range are mapped back to
// ASCII.
func Decode(s string) (string, error) {
	input := []rune(s)
	var output []rune
	pos := 0
	if ipos := lastIndex(input, delimiter); ipos >= 0 {
		output = append(output, input[:ipos]...)
		pos = ipos + 1
	}

	n := initialN
	i := 0
	bias := initialBias
	for pos < len(input) {
		oldi := i
		w := 1
		for k := base; ; k += base {
			if pos >= len(input) {
				return "", ErrInvalid
			}
			c := input[pos]
			var d int
			switch {
			case c >= 'a':
				d = int(c - 'a')
			case c >= 'A':
				d = int(c-'A') + tmax
			default:
				return "", ErrInvalid
			}
			pos++

			i += d * w
			t := max(min(k-bias, tmax), tmin)
			if d < t {
				break
			}
			w *= base - t
		}

		delta := (i - oldi) / 2
		if oldi == 0 {
			delta = (i - oldi) / damp
		}
		delta += delta / (len(output) + 1)
		k := 0
		for delta > 455 {
			delta /= base - 1
			k += base
		}
		bias = k + (base*delta)/(delta+base+2)

		n += i / (len(output) + 1)
		i %= len(output) + 1
		if i < 0 || n < 0 {
			return "", ErrInvalid
		}
		v := n
		if v >= nonSymbolBase && v < nonSymbolEnd {
			v -= nonSymbolBase
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			r = '.'
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = r
		i++
	}
	return string(output), nil
}

func lastIndex(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
