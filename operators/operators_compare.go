package operators

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// comparison wraps an ordering predicate with the regime's NULL handling:
// under Codd a comparison over an absent operand yields UNKNOWN, under
// legacy absent operands coerce to a zero value matched to the other side.
func comparison(pred func(a, b types.Value) bool) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		a, b := args[0], args[1]

		if ctx.Mode == coerce.ModeCodd {
			if a.IsAbsent() || a.IsUnknown() || b.IsAbsent() || b.IsUnknown() {
				return types.Unknown(), nil
			}
			return types.Bool(pred(a, b)), nil
		}

		a = legacyZeroFill(a, b)
		b = legacyZeroFill(b, a)
		return types.Bool(pred(a, b)), nil
	}
}

// legacyZeroFill substitutes the type-appropriate zero for an absent operand,
// matching the kind of its counterpart.
func legacyZeroFill(v, counterpart types.Value) types.Value {
	if !v.IsAbsent() && !v.IsUnknown() {
		return v
	}
	switch counterpart.Kind() {
	case types.KindText:
		return types.Text("")
	case types.KindBool:
		return types.Bool(false)
	case types.KindCollection:
		return types.Collection()
	default:
		return types.Number(0)
	}
}

func registerComparisonOperators() {
	mustRegister(&Descriptor{
		ID:          "EQUALS",
		DisplayName: "equals",
		Symbol:      "=",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Commutative,
		InverseID:   "NOT_EQUALS",
		Evaluate:    comparison(looseEqual),
		Examples: []Example{
			{Args: []types.Value{types.Number(3), types.Number(3)}, Want: types.Bool(true)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "NOT_EQUALS",
		DisplayName: "not equals",
		Symbol:      "!=",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Commutative,
		InverseID:   "EQUALS",
		Evaluate: comparison(func(a, b types.Value) bool {
			return !looseEqual(a, b)
		}),
	})

	mustRegister(&Descriptor{
		ID:          "LESS_THAN",
		DisplayName: "less than",
		Symbol:      "<",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return compareOrder(a, b) < 0
		}),
	})

	mustRegister(&Descriptor{
		ID:          "GREATER_THAN",
		DisplayName: "greater than",
		Symbol:      ">",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return compareOrder(a, b) > 0
		}),
	})

	mustRegister(&Descriptor{
		ID:          "LESS_EQUAL",
		DisplayName: "less than or equal",
		Symbol:      "<=",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return compareOrder(a, b) <= 0
		}),
	})

	mustRegister(&Descriptor{
		ID:          "GREATER_EQUAL",
		DisplayName: "greater than or equal",
		Symbol:      ">=",
		Category:    CategoryComparison,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return compareOrder(a, b) >= 0
		}),
	})
}
