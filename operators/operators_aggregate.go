package operators

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Aggregate operators flatten collection arguments and skip absent inputs,
// the SQL aggregate convention. The NULL-tracking variants in the null
// family report how many inputs were skipped.

func registerAggregateOperators() {
	mustRegister(&Descriptor{
		ID:          "SUM",
		DisplayName: "sum",
		Category:    CategoryAggregate,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     -1,
		Properties:  Associative | Commutative,
		Identity:    valuePtr(types.Number(0)),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			sum, count := 0.0, 0
			for _, a := range flattenArgs(args) {
				if a.IsAbsent() || a.IsUnknown() {
					continue
				}
				sum += coerce.ToNumber(a, coerce.ModeLegacy).Num()
				count++
			}
			if count == 0 {
				return types.Null(), nil
			}
			return types.Number(sum), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "AVG",
		DisplayName: "average",
		Category:    CategoryAggregate,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     -1,
		Properties:  Commutative,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			sum, count := 0.0, 0
			for _, a := range flattenArgs(args) {
				if a.IsAbsent() || a.IsUnknown() {
					continue
				}
				sum += coerce.ToNumber(a, coerce.ModeLegacy).Num()
				count++
			}
			if count == 0 {
				return types.Null(), nil
			}
			return types.Number(sum / float64(count)), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "MIN",
		DisplayName: "minimum",
		Category:    CategoryAggregate,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return pickExtreme(args, -1), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "MAX",
		DisplayName: "maximum",
		Category:    CategoryAggregate,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return pickExtreme(args, 1), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Number(3), types.Number(7)}, Want: types.Number(7)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "COUNT",
		DisplayName: "count",
		Category:    CategoryAggregate,
		InputTypes:  []types.Kind{types.KindAny},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     -1,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			n := 0
			for _, a := range flattenArgs(args) {
				if a.IsAbsent() || a.IsUnknown() {
					continue
				}
				n++
			}
			return types.Number(float64(n)), nil
		},
	})
}

// pickExtreme returns the extreme element by compareOrder; direction 1 keeps
// the larger element, -1 the smaller. Absent inputs are skipped; if nothing
// remains the result is NULL.
func pickExtreme(args []types.Value, direction int) types.Value {
	var best types.Value
	found := false
	for _, a := range flattenArgs(args) {
		if a.IsAbsent() || a.IsUnknown() {
			continue
		}
		if !found || compareOrder(a, best)*direction > 0 {
			best = a
			found = true
		}
	}
	if !found {
		return types.Null()
	}
	return best
}
