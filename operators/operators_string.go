package operators

import (
	"strings"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// textUnary wraps a string transform with the regime's NULL handling: absent
// input propagates to NULL under Codd and reads as "" under legacy.
func textUnary(f func(s string) types.Value) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown()) {
			return types.Null(), nil
		}
		t := coerce.ToText(args[0], ctx.Mode)
		if t.IsAbsent() {
			return types.Null(), nil
		}
		return f(t.Str()), nil
	}
}

func registerStringOperators() {
	mustRegister(&Descriptor{
		ID:          "CONCAT",
		DisplayName: "concatenate",
		Symbol:      "&",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindText},
		OutputType:  types.KindText,
		MinArgs:     2,
		MaxArgs:     -1,
		Properties:  Associative,
		Identity:    valuePtr(types.Text("")),
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			// Absent pieces concatenate as empty text in both regimes; this
			// is joining, not arithmetic, so NULL does not poison the result.
			var sb strings.Builder
			for _, a := range args {
				if a.IsAbsent() || a.IsUnknown() {
					continue
				}
				sb.WriteString(coerce.ToText(a, coerce.ModeLegacy).Str())
			}
			return types.Text(sb.String()), nil
		},
		Examples: []Example{
			{Args: []types.Value{types.Text("a"), types.Text("b")}, Want: types.Text("ab")},
		},
	})

	mustRegister(&Descriptor{
		ID:          "UPPER",
		DisplayName: "upper case",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText},
		OutputType:  types.KindText,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Idempotent,
		Evaluate: textUnary(func(s string) types.Value {
			return types.Text(strings.ToUpper(s))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "LOWER",
		DisplayName: "lower case",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText},
		OutputType:  types.KindText,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Idempotent,
		Evaluate: textUnary(func(s string) types.Value {
			return types.Text(strings.ToLower(s))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "TRIM",
		DisplayName: "trim",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText},
		OutputType:  types.KindText,
		MinArgs:     1,
		MaxArgs:     1,
		Properties:  Idempotent,
		Evaluate: textUnary(func(s string) types.Value {
			return types.Text(strings.TrimSpace(s))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "LEN",
		DisplayName: "length",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: textUnary(func(s string) types.Value {
			return types.Number(float64(len([]rune(s))))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "SUBSTRING",
		DisplayName: "substring",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindNumber, types.KindNumber},
		OutputType:  types.KindText,
		MinArgs:     2,
		MaxArgs:     3,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown()) {
				return types.Null(), nil
			}
			runes := []rune(coerce.ToText(args[0], ctx.Mode).Str())
			start := int(coerce.ToNumber(args[1], coerce.ModeLegacy).Num())
			if start < 0 {
				start = 0
			}
			if start > len(runes) {
				start = len(runes)
			}
			end := len(runes)
			if len(args) == 3 {
				n := int(coerce.ToNumber(args[2], coerce.ModeLegacy).Num())
				if n < 0 {
					n = 0
				}
				if start+n < end {
					end = start + n
				}
			}
			return types.Text(string(runes[start:end])), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "REPLACE",
		DisplayName: "replace",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindText, types.KindText},
		OutputType:  types.KindText,
		MinArgs:     3,
		MaxArgs:     3,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown()) {
				return types.Null(), nil
			}
			s := coerce.ToText(args[0], ctx.Mode).Str()
			old := coerce.ToText(args[1], coerce.ModeLegacy).Str()
			repl := coerce.ToText(args[2], coerce.ModeLegacy).Str()
			return types.Text(strings.ReplaceAll(s, old, repl)), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "CONTAINS",
		DisplayName: "contains",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindText},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return strings.Contains(a.String(), b.String())
		}),
	})

	mustRegister(&Descriptor{
		ID:          "STARTS_WITH",
		DisplayName: "starts with",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindText},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return strings.HasPrefix(a.String(), b.String())
		}),
	})

	mustRegister(&Descriptor{
		ID:          "ENDS_WITH",
		DisplayName: "ends with",
		Category:    CategoryString,
		InputTypes:  []types.Kind{types.KindText, types.KindText},
		OutputType:  types.KindBool,
		MinArgs:     2,
		MaxArgs:     2,
		Evaluate: comparison(func(a, b types.Value) bool {
			return strings.HasSuffix(a.String(), b.String())
		}),
	})
}
