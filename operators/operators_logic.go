package operators

import (
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// The AND, OR and IF registry entries hold the eager evaluation rule used by
// pipeline composition; when these names appear inside a formula, the
// evaluator intercepts them for short-circuit argument evaluation instead.

func registerLogicOperators() {
	mustRegister(&Descriptor{
		ID:          "AND",
		DisplayName: "logical and",
		Category:    CategoryLogic,
		InputTypes:  []types.Kind{types.KindBool, types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Identity:    valuePtr(types.Bool(true)),
		Absorbing:   valuePtr(types.Bool(false)),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd {
				return triAnd(args), nil
			}
			for _, a := range args {
				if !a.IsTruthy() {
					return types.Bool(false), nil
				}
			}
			return types.Bool(true), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "OR",
		DisplayName: "logical or",
		Category:    CategoryLogic,
		InputTypes:  []types.Kind{types.KindBool, types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Identity:    valuePtr(types.Bool(false)),
		Absorbing:   valuePtr(types.Bool(true)),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd {
				return triOr(args), nil
			}
			for _, a := range args {
				if a.IsTruthy() {
					return types.Bool(true), nil
				}
			}
			return types.Bool(false), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "NOT",
		DisplayName: "logical not",
		Category:    CategoryLogic,
		InputTypes:  []types.Kind{types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Involutory,
		InverseID:   "NOT",
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd {
				return triNot(args[0]), nil
			}
			return types.Bool(!args[0].IsTruthy()), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "IF",
		DisplayName: "conditional branch",
		Category:    CategoryLogic,
		InputTypes:  []types.Kind{types.KindBool, types.KindAny, types.KindAny},
		OutputType:  types.KindAny,
		MinArgs:     2,
		MaxArgs:     3,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			// A non-true condition (false, absent or UNKNOWN) selects the
			// else branch; a missing else branch yields NULL.
			if args[0].IsTruthy() {
				return args[1], nil
			}
			if len(args) == 3 {
				return args[2], nil
			}
			return types.Null(), nil
		},
	})

	// Kleene three-valued connectives, exact in both regimes.
	mustRegister(&Descriptor{
		ID:          "TRI_AND",
		DisplayName: "three-valued and",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindBool, types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Identity:    valuePtr(types.Bool(true)),
		Absorbing:   valuePtr(types.Bool(false)),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return triAnd(args), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Bool(false), types.Unknown()}, Want: types.Bool(false)},
			{Args: []types.Value{types.Bool(true), types.Unknown()}, Want: types.Unknown()},
		},
	})

	mustRegister(&Descriptor{
		ID:          "TRI_OR",
		DisplayName: "three-valued or",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindBool, types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     -1,
		Properties:  Associative | Commutative | Idempotent,
		Identity:    valuePtr(types.Bool(false)),
		Absorbing:   valuePtr(types.Bool(true)),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return triOr(args), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Bool(true), types.Unknown()}, Want: types.Bool(true)},
		},
	})

	mustRegister(&Descriptor{
		ID:          "TRI_NOT",
		DisplayName: "three-valued not",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindBool},
		OutputType:  types.KindBool,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Involutory,
		InverseID:   "TRI_NOT",
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return triNot(args[0]), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Unknown()}, Want: types.Unknown()},
		},
	})

	mustRegister(&Descriptor{
		ID:          "TRI_EQ",
		DisplayName: "three-valued equals",
		Category:    CategoryNull,
		InputTypes:  []types.Kind{types.KindAny, types.KindAny},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Properties:  Commutative,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			a, b := args[0], args[1]
			if a.IsAbsent() || a.IsUnknown() || b.IsAbsent() || b.IsUnknown() {
				return types.Unknown(), nil
			}
			return types.Bool(looseEqual(a, b)), nil
		},
	})
}
