package operators

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// The null family is exact in both regimes: these operators exist precisely
// so formulas can reason about absence without regime-dependent coercion.

func registerNullOperators() {
	mustRegister(&Descriptor{
		ID:          "IS_DISTINCT",
		DisplayName: "is distinct from",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Commutative,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			a, b := args[0], args[1]
			if a.IsAbsent() && b.IsAbsent() {
				return types.Bool(false), nil
			}
			if a.IsAbsent() || b.IsAbsent() {
				return types.Bool(true), nil
			}
			return types.Bool(!looseEqual(a, b)), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Null(), types.Null()}, Want: types.Bool(false)},
			{Args: []types.Value{types.Null(), types.Number(5)}, Want: types.Bool(true)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "NULL_EQ",
		DisplayName: "null-safe equals",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Commutative,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			a, b := args[0], args[1]
			if a.IsAbsent() && b.IsAbsent() {
				return types.Bool(true), nil
			}
			if a.IsAbsent() || b.IsAbsent() {
				return types.Bool(false), nil
			}
			return types.Bool(looseEqual(a, b)), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "NULL_IF",
		DisplayName: "null if equal",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindAny,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if looseEqual(args[0], args[1]) {
				return types.Null(), nil
			}
			return args[0], nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "COALESCE",
		DisplayName: "first present value",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny},
		OutputType:  types.KindAny,
		MinArgs:     1,
		MaxArgs:     -1,
		Properties:  Associative | Idempotent,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			for _, a := range args {
				if !a.IsAbsent() && !a.IsUnknown() {
					return a, nil
				}
			}
			return types.Null(), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "A_MARK",
		DisplayName: "applicable-but-unknown mark",
		Category:    CategoryNull,
		OutputType:  types.KindNull,
		MinArgs:     0,
		MaxArgs:     0,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return types.AMark(), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "I_MARK",
		DisplayName: "inapplicable mark",
		Category:    CategoryNull,
		OutputType:  types.KindNull,
		MinArgs:     0,
		MaxArgs:     0,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return types.IMark(), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "SUM_TRACKED",
		DisplayName: "sum with absence counts",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindCollection,
		MinArgs:     1,
		MaxArgs:     -1,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			value, present, absent := trackedFold(args)
			return types.Collection(value, types.Number(float64(present)), types.Number(float64(absent))), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "AVG_TRACKED",
		DisplayName: "average with absence counts",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindCollection,
		MinArgs:     1,
		MaxArgs:     -1,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			value, present, absent := trackedFold(args)
			if present > 0 {
				value = types.Number(value.Num() / float64(present))
			}
			return types.Collection(value, types.Number(float64(present)), types.Number(float64(absent))), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "COUNT_TRACKED",
		DisplayName: "count with absence counts",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny},
		OutputType:  types.KindCollection,
		MinArgs:     1,
		MaxArgs:     -1,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			_, present, absent := trackedFold(args)
			return types.Collection(types.Number(float64(present)),
				types.Number(float64(present)), types.Number(float64(absent))), nil
		},
	})
}

// trackedFold sums the present inputs and counts present vs absent ones.
// An all-absent input yields a NULL value component.
func trackedFold(args []types.Value) (value types.Value, present, absent int) {
	sum := 0.0
	for _, a := range flattenArgs(args) {
		if a.IsAbsent() || a.IsUnknown() {
			absent++
			continue
		}
		sum += coerce.ToNumber(a, coerce.ModeLegacy).Num()
		present++
	}
	if present == 0 {
		return types.Null(), present, absent
	}
	return types.Number(sum), present, absent
}
