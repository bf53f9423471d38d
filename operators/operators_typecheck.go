package operators

import "github.com/clovenbradshaw-ctrl/fieldformula/types"

// typeTest builds a boolean operator over a kind predicate. Type tests are
// exact in both regimes: they inspect the value, they never coerce it.
func typeTest(pred func(v types.Value) bool) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		return types.Bool(pred(args[0])), nil
	}
}

func registerTypeCheckOperators() {
	tests := []struct {
		id, name string
		pred     func(v types.Value) bool
	}{
		{"IS_NULL", "is null", func(v types.Value) bool { return v.IsAbsent() }},
		{"IS_NOT_NULL", "is not null", func(v types.Value) bool { return !v.IsAbsent() }},
		{"IS_NUMERIC", "is numeric", func(v types.Value) bool { return v.Kind() == types.KindNumber }},
		{"IS_STRING", "is string", func(v types.Value) bool { return v.Kind() == types.KindText }},
		{"IS_BOOL", "is boolean", func(v types.Value) bool { return v.Kind() == types.KindBool }},
		{"IS_DATE", "is date", func(v types.Value) bool { return v.Kind() == types.KindDate }},
		{"IS_ARRAY", "is collection", func(v types.Value) bool { return v.Kind() == types.KindCollection }},
		{"IS_UNKNOWN", "is unknown", func(v types.Value) bool { return v.IsUnknown() }},
		{"IS_A_MARK", "is applicable mark", func(v types.Value) bool { return v.Mark() == types.MarkApplicable }},
		{"IS_I_MARK", "is inapplicable mark", func(v types.Value) bool { return v.Mark() == types.MarkInapplicable }},
	}

	for _, t := range tests {
		mustRegister(&Descriptor{
			ID:          t.id,
			DisplayName: t.name,
			Category:    CategoryTypeCheck,
			InputTypes:  []types.Kind{types.KindAny},
			OutputType:  types.KindBool,
			MinArgs:     1,
			MaxArgs:     1,
			Evaluate:    typeTest(t.pred),
		})
	}
}
