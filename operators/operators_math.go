package operators

import (
	"fmt"
	"math"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

func registerMathOperators() {
	mustRegister(&Descriptor{
		ID:          "ADD",
		DisplayName: "add",
		Symbol:      "+",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Associative | Commutative,
		Identity:    valuePtr(types.Number(0)),
		InverseID:   "SUBTRACT",
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			return types.Number(a + b), nil
		}),
		Examples: []Example{
			{Args: []types.Value{types.Number(1000), types.Number(-700)}, Want: types.Number(300)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "SUBTRACT",
		DisplayName: "subtract",
		Symbol:      "-",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		InverseID:   "ADD",
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			return types.Number(a - b), nil
		}),
		Examples: []Example{
			{Args: []types.Value{types.Number(1000), types.Number(700)}, Want: types.Number(300)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "MULTIPLY",
		DisplayName: "multiply",
		Symbol:      "*",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Associative | Commutative | Distributive,
		Identity:    valuePtr(types.Number(1)),
		Absorbing:   valuePtr(types.Number(0)),
		InverseID:   "DIVIDE",
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			return types.Number(a * b), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "DIVIDE",
		DisplayName: "divide",
		Symbol:      "/",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		InverseID:   "MULTIPLY",
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			if b == 0 {
				if ctx.Mode == coerce.ModeCodd {
					return types.Null(), nil
				}
				return types.Null(), fmt.Errorf("division by zero")
			}
			return types.Number(a / b), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "MOD",
		DisplayName: "modulo",
		Symbol:      "%",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			if b == 0 {
				if ctx.Mode == coerce.ModeCodd {
					return types.Null(), nil
				}
				return types.Null(), fmt.Errorf("modulo by zero")
			}
			return types.Number(math.Mod(a, b)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "POWER",
		DisplayName: "power",
		Symbol:      "^",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber, types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: numericBinary(func(ctx *Context, a, b float64) (types.Value, error) {
			return types.Number(math.Pow(a, b)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "NEGATE",
		DisplayName: "negate",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Involutory,
		InverseID:   "NEGATE",
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			return types.Number(-a), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "ABS",
		DisplayName: "absolute value",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Idempotent,
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			return types.Number(math.Abs(a)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "ROUND",
		DisplayName: "round",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			return types.Number(math.Round(a)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "FLOOR",
		DisplayName: "floor",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			return types.Number(math.Floor(a)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "CEIL",
		DisplayName: "ceiling",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			return types.Number(math.Ceil(a)), nil
		}),
	})

	mustRegister(&Descriptor{
		ID:          "SQRT",
		DisplayName: "square root",
		Category:    CategoryMath,
		InputTypes:  []types.Kind{types.KindNumber},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: numericUnary(func(ctx *Context, a float64) (types.Value, error) {
			if a < 0 {
				return types.Null(), fmt.Errorf("sqrt of negative number")
			}
			return types.Number(math.Sqrt(a)), nil
		}),
	})
}

// mustRegister registers a built-in descriptor; a failure here is a
// programming error in the built-in catalog.
func mustRegister(d *Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}
