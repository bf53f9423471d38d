package expr

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType represents token type
type TokenType int

const (
	// TokenNumber numeric literal
	TokenNumber TokenType = iota
	// TokenString quoted string literal, value already unescaped
	TokenString
	// TokenIdent bare identifier: boolean literal or function name
	TokenIdent
	// TokenField field reference, value is the trimmed inner name
	TokenField
	// TokenOperator infix or prefix operator symbol
	TokenOperator
	// TokenLParen left parenthesis
	TokenLParen
	// TokenRParen right parenthesis
	TokenRParen
	// TokenComma argument separator
	TokenComma
)

// Token is one lexical token with its source position.
type Token struct {
	// Type token type
	Type TokenType
	// Value token text; strings are unescaped, fields are trimmed
	Value string
	// Pos byte offset in the source
	Pos int
}

// tokenize breaks a formula string into tokens in a single forward pass.
// Field references are enclosed in braces; their trimmed inner text becomes
// the token value. String literals support one level of backslash escapes.
func tokenize(src string) ([]Token, error) {
	var tokens []Token
	i := 0

	for i < len(src) {
		ch := src[i]

		if unicode.IsSpace(rune(ch)) {
			i++
			continue
		}

		// Field reference: {Name}
		if ch == '{' {
			start := i
			i++
			for i < len(src) && src[i] != '}' {
				i++
			}
			if i >= len(src) {
				return nil, fmt.Errorf("unterminated field reference at position %d", start)
			}
			name := strings.TrimSpace(src[start+1 : i])
			if name == "" {
				return nil, fmt.Errorf("empty field reference at position %d", start)
			}
			i++ // closing brace
			tokens = append(tokens, Token{Type: TokenField, Value: name, Pos: start})
			continue
		}

		// String literal with single-level escapes
		if ch == '\'' || ch == '"' {
			quote := ch
			start := i
			i++
			var sb strings.Builder
			closed := false
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					switch src[i+1] {
					case 'n':
						sb.WriteByte('\n')
					case 't':
						sb.WriteByte('\t')
					default:
						sb.WriteByte(src[i+1])
					}
					i += 2
					continue
				}
				if src[i] == quote {
					closed = true
					i++
					break
				}
				sb.WriteByte(src[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated string starting at position %d", start)
			}
			tokens = append(tokens, Token{Type: TokenString, Value: sb.String(), Pos: start})
			continue
		}

		// Number: digits with an optional single decimal point
		if isDigit(ch) || (ch == '.' && i+1 < len(src) && isDigit(src[i+1])) {
			start := i
			hasDot := ch == '.'
			i++
			for i < len(src) && (isDigit(src[i]) || (src[i] == '.' && !hasDot)) {
				if src[i] == '.' {
					hasDot = true
				}
				i++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Value: src[start:i], Pos: start})
			continue
		}

		// Identifier: boolean literal or function name
		if isLetter(ch) || ch == '_' {
			start := i
			i++
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i]) || src[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{Type: TokenIdent, Value: src[start:i], Pos: start})
			continue
		}

		// Two-character comparison operators first
		if i+1 < len(src) {
			two := src[i : i+2]
			if two == "!=" || two == "<=" || two == ">=" {
				tokens = append(tokens, Token{Type: TokenOperator, Value: two, Pos: i})
				i += 2
				continue
			}
		}

		switch ch {
		case '+', '-', '*', '/', '%', '^', '&', '=', '<', '>', '!':
			tokens = append(tokens, Token{Type: TokenOperator, Value: string(ch), Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: i})
			i++
		case ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", ch, i)
		}
	}

	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
