package subst

import "strings"

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsWordStart reports whether r may begin a substitution word.
func IsWordStart(r rune) bool {
	return !isDigit(r) && r != '_' && r != 0
}

// IsWordEnd reports whether r, following prev, terminates the current word.
func IsWordEnd(r, prev rune) bool {
	if r == '_' || r == 0 {
		return true
	}
	return !isUpper(prev) && isUpper(r)
}

// CollectWords appends the words found in a literal identifier chunk to
// words and returns the result. Words shorter than two scalars are not
// recorded and the table never grows past MaxNumWords.
func CollectWords(chunk string, words []string) []string {
	var word []rune
	inWord := false
	for _, c := range chunk {
		if !inWord {
			if IsWordStart(c) && len(words) < MaxNumWords {
				word = append(word[:0], c)
				inWord = true
			}
			continue
		}
		if c == '_' || (!isUpper(word[len(word)-1]) && isUpper(c)) {
			if len(word) >= 2 {
				words = append(words, string(word))
			}
			inWord = IsWordStart(c) && len(words) < MaxNumWords
			word = append(word[:0], c)
			continue
		}
		word = append(word, c)
	}
	if inWord && len(word) >= 2 {
		words = append(words, string(word))
	}
	return words
}

const operatorTable = "& @/= >    <*!|+?%-~   ^ ."

// TranslateOperatorChar maps an operator character to the letter used in
// mangled operator names. Other characters pass through.
func TranslateOperatorChar(r rune) rune {
	if r < 0x80 && r != ' ' {
		if i := strings.IndexRune(operatorTable, r); i >= 0 {
			return rune('a' + i)
		}
	}
	return r
}

// TranslateOperator applies TranslateOperatorChar to every scalar of op.
func TranslateOperator(op string) string {
	return strings.Map(TranslateOperatorChar, op)
}

// OperatorChar reverses TranslateOperatorChar for a lowercase letter.
func OperatorChar(letter rune) (rune, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	r := rune(operatorTable[letter-'a'])
	return r, r != ' '
}
