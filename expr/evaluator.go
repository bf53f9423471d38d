package expr

import (
	"fmt"
	"strings"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/operators"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Provenance describes how a derived value came to be, for hosts that render
// or audit computed fields.
type Provenance struct {
	// Method always "derived" for formula results
	Method string
	// Formula the defining source text
	Formula string
	// Dependencies field names the formula reads
	Dependencies []string
}

// EvaluationResult is the outcome of evaluating one formula against one
// record. Evaluation never panics; failures surface here with Success=false.
type EvaluationResult struct {
	// Value computed value, NULL on failure
	Value types.Value
	// Dependencies field names the formula reads
	Dependencies []string
	// Provenance derived-context record for display
	Provenance Provenance
	// Success whether evaluation completed
	Success bool
	// Error failure message, empty on success
	Error string
}

// EvaluateParsed walks a parse result against a record under the given NULL
// regime. Invalid parses fail without touching the record.
func EvaluateParsed(res *ParseResult, record map[string]interface{}, mode coerce.Mode) *EvaluationResult {
	out := &EvaluationResult{
		Value:        types.Null(),
		Dependencies: res.Dependencies,
		Provenance: Provenance{
			Method:       "derived",
			Formula:      res.Source,
			Dependencies: res.Dependencies,
		},
	}

	if !res.Valid {
		out.Error = res.Error
		return out
	}

	v, err := evaluateNode(res.AST, record, mode)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Value = v
	out.Success = true
	return out
}

// evaluateNode evaluates one AST node. The walk is a single synchronous
// pass; the record is never mutated and neither is the tree.
func evaluateNode(n *Node, record map[string]interface{}, mode coerce.Mode) (types.Value, error) {
	if n == nil {
		return types.Null(), fmt.Errorf("nil expression node")
	}

	switch n.Type {
	case NodeLiteral:
		return n.Literal, nil

	case NodeField:
		// Absent fields resolve to NULL: missing data is not a malformed
		// formula. Multi-observation cells resolve once, here.
		raw, ok := record[n.Name]
		if !ok {
			return types.Null(), nil
		}
		return types.ResolveField(raw), nil

	case NodeUnary:
		return evaluateUnary(n, record, mode)

	case NodeBinary:
		return evaluateBinary(n, record, mode)

	case NodeCall:
		return evaluateCall(n, record, mode)
	}

	return types.Null(), fmt.Errorf("unknown node type: %d", n.Type)
}

func evaluateUnary(n *Node, record map[string]interface{}, mode coerce.Mode) (types.Value, error) {
	operand, err := evaluateNode(n.Left, record, mode)
	if err != nil {
		return types.Null(), err
	}

	ctx := &operators.Context{Record: record, Mode: mode}
	switch n.Op {
	case "-":
		return operators.Execute("NEGATE", ctx, []types.Value{operand})
	case "!":
		return operators.Execute("NOT", ctx, []types.Value{operand})
	case "+":
		// Unary plus asserts a numeric reading without changing sign.
		if mode == coerce.ModeCodd && (operand.IsAbsent() || operand.IsUnknown()) {
			return types.Null(), nil
		}
		return coerce.ToNumber(operand, mode), nil
	default:
		return types.Null(), fmt.Errorf("unknown unary operator: %s", n.Op)
	}
}

// evaluateBinary evaluates both operands — infix operators never
// short-circuit — then dispatches to the registry operator bound to the
// symbol. The operator implementation applies the active NULL regime.
func evaluateBinary(n *Node, record map[string]interface{}, mode coerce.Mode) (types.Value, error) {
	left, err := evaluateNode(n.Left, record, mode)
	if err != nil {
		return types.Null(), err
	}
	right, err := evaluateNode(n.Right, record, mode)
	if err != nil {
		return types.Null(), err
	}

	d, ok := operators.BySymbol(n.Op)
	if !ok {
		return types.Null(), fmt.Errorf("unknown operator: %s", n.Op)
	}
	return d.Evaluate(&operators.Context{Record: record, Mode: mode}, []types.Value{left, right})
}

// evaluateCall dispatches a function call. IF, AND and OR are special-cased
// for short-circuit evaluation: the untaken branch and the arguments after a
// determining operand are never evaluated. Every other operator evaluates
// its arguments eagerly.
func evaluateCall(n *Node, record map[string]interface{}, mode coerce.Mode) (types.Value, error) {
	switch strings.ToUpper(n.Name) {
	case "IF":
		return evaluateIf(n, record, mode)
	case "AND":
		return evaluateShortCircuit(n, record, mode, false)
	case "OR":
		return evaluateShortCircuit(n, record, mode, true)
	}

	d, ok := operators.Get(n.Name)
	if !ok {
		return types.Null(), fmt.Errorf("unknown function: %s", n.Name)
	}
	if err := d.ValidateArgCount(len(n.Args)); err != nil {
		return types.Null(), err
	}

	args := make([]types.Value, len(n.Args))
	for i, arg := range n.Args {
		v, err := evaluateNode(arg, record, mode)
		if err != nil {
			return types.Null(), err
		}
		args[i] = v
	}
	return d.Evaluate(&operators.Context{Record: record, Mode: mode}, args)
}

// evaluateIf evaluates the condition and then only the selected branch.
func evaluateIf(n *Node, record map[string]interface{}, mode coerce.Mode) (types.Value, error) {
	if len(n.Args) < 2 || len(n.Args) > 3 {
		return types.Null(), fmt.Errorf("IF requires 2 or 3 arguments, got %d", len(n.Args))
	}

	cond, err := evaluateNode(n.Args[0], record, mode)
	if err != nil {
		return types.Null(), err
	}

	// False, NULL and UNKNOWN all select the else branch.
	if cond.IsTruthy() {
		return evaluateNode(n.Args[1], record, mode)
	}
	if len(n.Args) == 3 {
		return evaluateNode(n.Args[2], record, mode)
	}
	return types.Null(), nil
}

// evaluateShortCircuit runs AND/OR left to right, stopping at the first
// determining operand: a falsy value for AND, a truthy one for OR. Under the
// Codd regime an absent or UNKNOWN operand is not determining; it taints the
// outcome to UNKNOWN unless a determining operand appears later.
func evaluateShortCircuit(n *Node, record map[string]interface{}, mode coerce.Mode, isOr bool) (types.Value, error) {
	if len(n.Args) < 2 {
		return types.Null(), fmt.Errorf("%s requires at least 2 arguments, got %d", strings.ToUpper(n.Name), len(n.Args))
	}

	sawUnknown := false
	for _, arg := range n.Args {
		v, err := evaluateNode(arg, record, mode)
		if err != nil {
			return types.Null(), err
		}

		if mode == coerce.ModeCodd && (v.IsAbsent() || v.IsUnknown()) {
			sawUnknown = true
			continue
		}
		if v.IsTruthy() == isOr {
			return types.Bool(isOr), nil
		}
	}

	if sawUnknown {
		return types.Unknown(), nil
	}
	return types.Bool(!isOr), nil
}
