package operators

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// numericBinary wraps a float64 operation into an EvalFunc with the regime's
// NULL handling: under Codd an absent operand propagates to NULL, under
// legacy it coerces to 0 first.
func numericBinary(f func(ctx *Context, a, b float64) (types.Value, error)) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown() ||
			args[1].IsAbsent() || args[1].IsUnknown()) {
			return types.Null(), nil
		}
		a := coerce.ToNumber(args[0], ctx.Mode)
		b := coerce.ToNumber(args[1], ctx.Mode)
		if a.IsAbsent() || b.IsAbsent() {
			// Codd sentinel from an unparseable coercion
			return types.Null(), nil
		}
		return f(ctx, a.Num(), b.Num())
	}
}

// numericUnary is numericBinary's one-argument counterpart.
func numericUnary(f func(ctx *Context, a float64) (types.Value, error)) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown()) {
			return types.Null(), nil
		}
		a := coerce.ToNumber(args[0], ctx.Mode)
		if a.IsAbsent() {
			return types.Null(), nil
		}
		return f(ctx, a.Num())
	}
}

// looseEqual is the comparison-operator notion of equality: numeric when
// both sides have a numeric reading, otherwise type-aware structural
// equality with a final fallback to text comparison for mixed scalars.
func looseEqual(a, b types.Value) bool {
	if an, bn, ok := numericPair(a, b); ok {
		return an == bn
	}
	if a.Kind() == b.Kind() {
		return a.Equal(b)
	}
	return a.String() == b.String()
}

// compareOrder returns -1, 0 or 1 for ordered comparison. Both sides are
// compared numerically when possible, as dates when both are dates, and as
// text otherwise.
func compareOrder(a, b types.Value) int {
	if an, bn, ok := numericPair(a, b); ok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	if a.Kind() == types.KindDate && b.Kind() == types.KindDate {
		switch {
		case a.Time().Before(b.Time()):
			return -1
		case a.Time().After(b.Time()):
			return 1
		default:
			return 0
		}
	}
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// numericPair extracts float64 readings from both values when both have a
// natural one (numbers, booleans, dates, numeric text).
func numericPair(a, b types.Value) (float64, float64, bool) {
	an, aok := numericReading(a)
	bn, bok := numericReading(b)
	return an, bn, aok && bok
}

func numericReading(v types.Value) (float64, bool) {
	switch v.Kind() {
	case types.KindNumber:
		return v.Num(), true
	case types.KindBool:
		if v.Boolean() {
			return 1, true
		}
		return 0, true
	case types.KindDate:
		return float64(v.Time().UnixMilli()), true
	case types.KindText:
		n := coerce.ToNumber(v, coerce.ModeCodd)
		if n.IsAbsent() {
			return 0, false
		}
		return n.Num(), true
	default:
		return 0, false
	}
}

// flattenArgs expands collection arguments in place, the aggregate-operator
// convention: SUM(list) and SUM(a, b, c) behave alike.
func flattenArgs(args []types.Value) []types.Value {
	out := make([]types.Value, 0, len(args))
	for _, a := range args {
		if a.Kind() == types.KindCollection {
			out = append(out, a.Items()...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

// triValue reads a value as a Kleene truth operand: absent values and
// UNKNOWN both rank as unknown.
func triValue(v types.Value) (truth bool, known bool) {
	if v.IsAbsent() || v.IsUnknown() {
		return false, false
	}
	return v.IsTruthy(), true
}

// triAnd implements Kleene AND: a determining false wins over unknown.
func triAnd(args []types.Value) types.Value {
	sawUnknown := false
	for _, a := range args {
		truth, known := triValue(a)
		if known && !truth {
			return types.Bool(false)
		}
		if !known {
			sawUnknown = true
		}
	}
	if sawUnknown {
		return types.Unknown()
	}
	return types.Bool(true)
}

// triOr implements Kleene OR: a determining true wins over unknown.
func triOr(args []types.Value) types.Value {
	sawUnknown := false
	for _, a := range args {
		truth, known := triValue(a)
		if known && truth {
			return types.Bool(true)
		}
		if !known {
			sawUnknown = true
		}
	}
	if sawUnknown {
		return types.Unknown()
	}
	return types.Bool(false)
}

// triNot implements Kleene NOT: unknown stays unknown.
func triNot(v types.Value) types.Value {
	truth, known := triValue(v)
	if !known {
		return types.Unknown()
	}
	return types.Bool(!truth)
}

// valuePtr is a convenience for descriptor identity/absorbing elements.
func valuePtr(v types.Value) *types.Value { return &v }
