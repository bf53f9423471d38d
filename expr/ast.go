package expr

import "github.com/clovenbradshaw-ctrl/fieldformula/types"

// NodeType discriminates AST node variants.
type NodeType int

const (
	// NodeLiteral constant value
	NodeLiteral NodeType = iota
	// NodeField field reference, e.g. {Amount}
	NodeField
	// NodeCall function call, e.g. IF(a, b, c)
	NodeCall
	// NodeUnary prefix operator, e.g. -x or !x
	NodeUnary
	// NodeBinary infix operator, e.g. a + b
	NodeBinary
)

// Node is one AST node. Nodes are immutable once parsed and owned by the
// ParseResult that created them; the evaluator never mutates them, which is
// what makes cached results shareable across evaluations.
type Node struct {
	// Type node variant
	Type NodeType
	// Literal constant payload for NodeLiteral
	Literal types.Value
	// Name field name for NodeField, function name for NodeCall
	Name string
	// Op operator symbol for NodeUnary and NodeBinary
	Op string
	// Left binary left operand, also the unary operand
	Left *Node
	// Right binary right operand
	Right *Node
	// Args call arguments
	Args []*Node
}

// collectFields walks the tree and appends field names in first-occurrence
// order, collapsing duplicates.
func collectFields(n *Node, seen map[string]bool, order *[]string) {
	if n == nil {
		return
	}
	if n.Type == NodeField && !seen[n.Name] {
		seen[n.Name] = true
		*order = append(*order, n.Name)
	}
	collectFields(n.Left, seen, order)
	collectFields(n.Right, seen, order)
	for _, arg := range n.Args {
		collectFields(arg, seen, order)
	}
}
