package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// ParseResult carries the outcome of parsing one formula source string.
type ParseResult struct {
	// Source the formula text that was parsed
	Source string
	// AST root node, nil when parsing failed
	AST *Node
	// Dependencies field names referenced in the source, first-occurrence
	// order, duplicates collapsed
	Dependencies []string
	// Valid whether parsing succeeded
	Valid bool
	// Error parse error message, empty when valid
	Error string
}

// clone returns a result sharing the immutable AST but carrying a fresh
// dependency slice, so one caller's mutation never reaches another's.
func (r *ParseResult) clone() *ParseResult {
	cp := *r
	cp.Dependencies = make([]string, len(r.Dependencies))
	copy(cp.Dependencies, r.Dependencies)
	return &cp
}

// Parse tokenizes and parses a formula into an AST using precedence
// climbing, single pass, no backtracking. This is the uncached entry point;
// engines normally go through Parser.Parse.
func Parse(source string) *ParseResult {
	result := &ParseResult{Source: source, Dependencies: []string{}}

	tokens, err := tokenize(source)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if len(tokens) == 0 {
		result.Error = "empty formula"
		return result
	}

	p := &parser{tokens: tokens}
	root, err := p.parseComparison()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		result.Error = fmt.Sprintf("unexpected token %q at position %d", t.Value, t.Pos)
		return result
	}

	seen := make(map[string]bool)
	collectFields(root, seen, &result.Dependencies)
	result.AST = root
	result.Valid = true
	return result
}

// parser is a recursive-descent parser over the token list. Precedence,
// lowest binding first: comparison, add/sub/concat, mul/div/mod, power
// (right-associative), unary, primary.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseComparison() (*Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.Type != TokenOperator || !isComparisonOp(t.Value) {
			return left, nil
		}
		p.pos++
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Node{Type: NodeBinary, Op: t.Value, Left: left, Right: right}
	}
}

func (p *parser) parseAdditive() (*Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.Type != TokenOperator || (t.Value != "+" && t.Value != "-" && t.Value != "&") {
			return left, nil
		}
		p.pos++
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Node{Type: NodeBinary, Op: t.Value, Left: left, Right: right}
	}
}

func (p *parser) parseMultiplicative() (*Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.Type != TokenOperator || (t.Value != "*" && t.Value != "/" && t.Value != "%") {
			return left, nil
		}
		p.pos++
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &Node{Type: NodeBinary, Op: t.Value, Left: left, Right: right}
	}
}

// parsePower is right-associative: 2^3^2 parses as 2^(3^2).
func (p *parser) parsePower() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	t, ok := p.peek()
	if !ok || t.Type != TokenOperator || t.Value != "^" {
		return left, nil
	}
	p.pos++
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &Node{Type: NodeBinary, Op: "^", Left: left, Right: right}, nil
}

func (p *parser) parseUnary() (*Node, error) {
	t, ok := p.peek()
	if ok && t.Type == TokenOperator && (t.Value == "-" || t.Value == "+" || t.Value == "!") {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{Type: NodeUnary, Op: t.Value, Left: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of formula")
	}

	switch t.Type {
	case TokenNumber:
		p.pos++
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d", t.Value, t.Pos)
		}
		return &Node{Type: NodeLiteral, Literal: types.Number(f)}, nil

	case TokenString:
		p.pos++
		return &Node{Type: NodeLiteral, Literal: types.Text(t.Value)}, nil

	case TokenField:
		p.pos++
		return &Node{Type: NodeField, Name: t.Value}, nil

	case TokenIdent:
		return p.parseIdent(t)

	case TokenLParen:
		p.pos++
		inner, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.Type != TokenRParen {
			return nil, fmt.Errorf("missing closing parenthesis for group at position %d", t.Pos)
		}
		p.pos++
		return inner, nil

	default:
		return nil, fmt.Errorf("unexpected token %q at position %d", t.Value, t.Pos)
	}
}

// parseIdent handles bare identifiers: recognized boolean literals, or a
// function call when a parenthesis follows. Anything else is a parse error —
// unquoted text is not valid formula syntax.
func (p *parser) parseIdent(t Token) (*Node, error) {
	switch strings.ToLower(t.Value) {
	case "true":
		p.pos++
		return &Node{Type: NodeLiteral, Literal: types.Bool(true)}, nil
	case "false":
		p.pos++
		return &Node{Type: NodeLiteral, Literal: types.Bool(false)}, nil
	}

	if p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Type == TokenLParen {
		p.pos += 2 // name and opening parenthesis
		args, err := p.parseCallArgs(t)
		if err != nil {
			return nil, err
		}
		return &Node{Type: NodeCall, Name: t.Value, Args: args}, nil
	}

	return nil, fmt.Errorf("unknown identifier %q at position %d", t.Value, t.Pos)
}

// parseCallArgs parses a comma-separated argument list; the caller has
// already consumed the opening parenthesis.
func (p *parser) parseCallArgs(name Token) ([]*Node, error) {
	args := []*Node{}

	if t, ok := p.peek(); ok && t.Type == TokenRParen {
		p.pos++
		return args, nil
	}

	for {
		arg, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		t, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("missing closing parenthesis in call to %s at position %d", name.Value, name.Pos)
		}
		switch t.Type {
		case TokenComma:
			p.pos++
		case TokenRParen:
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("unexpected token %q in arguments of %s at position %d", t.Value, name.Value, t.Pos)
		}
	}
}

func isComparisonOp(op string) bool {
	switch op {
	case "=", "!=", "<", ">", "<=", ">=":
		return true
	default:
		return false
	}
}
