package textwidth

import "strings"

// TokenKind distinguishes printable text from embedded styling codes.
type TokenKind int

const (
	// TokenLiteral is a run of printable text.
	TokenLiteral TokenKind = iota
	// TokenStyleCode is one terminal escape sequence (CSI, OSC, or a short
	// ESC sequence). Style codes occupy zero columns.
	TokenStyleCode
)

// Token is one run of a tokenized string.
type Token struct {
	Kind TokenKind
	Text string
}

const esc = 0x1b

// Tokenize splits s into alternating literal and style-code tokens.
// Concatenating the token texts reproduces s exactly. An escape sequence
// left unterminated at the end of the input is still consumed as a style
// code: a real terminal would swallow it without drawing anything.
func Tokenize(s string) []Token {
	if !strings.ContainsRune(s, rune(esc)) {
		if s == "" {
			return nil
		}
		return []Token{{Kind: TokenLiteral, Text: s}}
	}

	var tokens []Token
	literalStart := 0
	i := 0
	for i < len(s) {
		if s[i] != esc {
			i++
			continue
		}
		if literalStart < i {
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: s[literalStart:i]})
		}
		end := escapeEnd(s, i)
		tokens = append(tokens, Token{Kind: TokenStyleCode, Text: s[i:end]})
		i = end
		literalStart = end
	}
	if literalStart < len(s) {
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: s[literalStart:]})
	}
	return tokens
}

// escapeEnd returns the index just past the escape sequence starting at
// s[start], which must be ESC.
func escapeEnd(s string, start int) int {
	j := start + 1
	if j >= len(s) {
		return len(s)
	}
	switch s[j] {
	case '[':
		// CSI: parameter and intermediate bytes, then a final byte in
		// 0x40-0x7E.
		j++
		for j < len(s) {
			if s[j] >= 0x40 && s[j] <= 0x7e {
				return j + 1
			}
			j++
		}
		return len(s)
	case ']':
		// OSC: terminated by BEL or by ST (ESC \).
		j++
		for j < len(s) {
			if s[j] == 0x07 {
				return j + 1
			}
			if s[j] == esc && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2
			}
			j++
		}
		return len(s)
	default:
		// Two-byte sequence such as ESC ( or ESC M.
		return j + 1
	}
}

// Strip removes every style code from s, leaving only printable text.
func Strip(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 1 && tokens[0].Kind == TokenLiteral {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, t := range tokens {
		if t.Kind == TokenLiteral {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}
