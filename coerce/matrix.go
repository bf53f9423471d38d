package coerce

import "github.com/clovenbradshaw-ctrl/fieldformula/types"

// matrix lists the declared coercion paths the chain validator may rely on.
// Only total, never-surprising conversions are declared here: number→text is
// safe, but text→number is not (it can hit the unparseable sentinel), so a
// text output never satisfies a numeric input when chaining operators.
var matrix = map[types.Kind][]types.Kind{
	types.KindNumber:  {types.KindText, types.KindBool, types.KindDate},
	types.KindBool:    {types.KindText, types.KindNumber},
	types.KindDate:    {types.KindText, types.KindNumber},
	types.KindText:    {},
	types.KindNull:    {},
	types.KindUnknown: {types.KindBool},
}

// Allowed reports whether a declared coercion path exists from one kind to
// another. Identical kinds and a target of KindAny are always allowed, and
// every kind may be lifted into a collection by wrapping.
func Allowed(from, to types.Kind) bool {
	if from == to || to == types.KindAny {
		return true
	}
	if to == types.KindCollection {
		return true
	}
	for _, k := range matrix[from] {
		if k == to {
			return true
		}
	}
	return false
}
