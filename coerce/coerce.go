package coerce

import (
	"time"

	"github.com/spf13/cast"

	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// Mode selects the NULL-handling regime for coercion and evaluation.
type Mode int

const (
	// ModeCodd three-valued logic: absent operands propagate, comparisons
	// over absence yield UNKNOWN. This is the default regime.
	ModeCodd Mode = iota
	// ModeLegacy backward-compatibility regime: absent operands coerce to a
	// type-appropriate zero value before the operation runs.
	ModeLegacy
)

// String returns string representation of a mode
func (m Mode) String() string {
	if m == ModeLegacy {
		return "legacy"
	}
	return "codd"
}

// ToNumber converts any value to a number. The conversion is total: text
// that does not parse as a number becomes 0 in legacy mode and NULL in Codd
// mode; absent input follows the same split. Dates convert to Unix
// milliseconds, collections to their length.
func ToNumber(v types.Value, mode Mode) types.Value {
	switch v.Kind() {
	case types.KindNumber:
		return v
	case types.KindBool:
		if v.Boolean() {
			return types.Number(1)
		}
		return types.Number(0)
	case types.KindText:
		if f, err := cast.ToFloat64E(v.Str()); err == nil {
			return types.Number(f)
		}
		return sentinel(mode)
	case types.KindDate:
		return types.Number(float64(v.Time().UnixMilli()))
	case types.KindCollection:
		return types.Number(float64(v.Len()))
	default:
		// NULL, marks and UNKNOWN
		return sentinel(mode)
	}
}

// sentinel is the defined fallback for conversions that have no numeric
// reading: 0 under the legacy regime, NULL under Codd.
func sentinel(mode Mode) types.Value {
	if mode == ModeLegacy {
		return types.Number(0)
	}
	return types.Null()
}

// ToText converts any value to text. Absent input becomes the empty string
// in legacy mode and stays NULL in Codd mode.
func ToText(v types.Value, mode Mode) types.Value {
	switch v.Kind() {
	case types.KindText:
		return v
	case types.KindNumber:
		return types.Text(cast.ToString(v.Num()))
	case types.KindBool:
		return types.Text(cast.ToString(v.Boolean()))
	case types.KindDate, types.KindCollection:
		return types.Text(v.String())
	default:
		if mode == ModeLegacy {
			return types.Text("")
		}
		return types.Null()
	}
}

// ToBoolean converts any value to a boolean via truthiness. The strings
// accepted by strconv ("true", "1", ...) map to their boolean reading first.
// Absent input becomes false in legacy mode and stays NULL in Codd mode.
func ToBoolean(v types.Value, mode Mode) types.Value {
	switch v.Kind() {
	case types.KindBool:
		return v
	case types.KindText:
		if b, err := cast.ToBoolE(v.Str()); err == nil {
			return types.Bool(b)
		}
		return types.Bool(v.IsTruthy())
	case types.KindNumber, types.KindDate, types.KindCollection:
		return types.Bool(v.IsTruthy())
	default:
		if mode == ModeLegacy {
			return types.Bool(false)
		}
		return types.Null()
	}
}

// ToDate converts any value to a date. Numbers are read as Unix
// milliseconds, text is parsed with the usual layouts; unparseable text and
// absent input become the zero time in legacy mode and NULL in Codd mode.
func ToDate(v types.Value, mode Mode) types.Value {
	switch v.Kind() {
	case types.KindDate:
		return v
	case types.KindNumber:
		return types.Date(time.UnixMilli(int64(v.Num())).UTC())
	case types.KindText:
		if t, err := cast.ToTimeE(v.Str()); err == nil {
			return types.Date(t)
		}
		return dateSentinel(mode)
	default:
		return dateSentinel(mode)
	}
}

func dateSentinel(mode Mode) types.Value {
	if mode == ModeLegacy {
		return types.Date(time.Unix(0, 0).UTC())
	}
	return types.Null()
}

// ToCollection converts any value to a collection. Scalars wrap into a
// one-element collection; absent input becomes the empty collection in
// legacy mode and stays NULL in Codd mode.
func ToCollection(v types.Value, mode Mode) types.Value {
	switch v.Kind() {
	case types.KindCollection:
		return v
	case types.KindNull, types.KindUnknown:
		if mode == ModeLegacy {
			return types.Collection()
		}
		return types.Null()
	default:
		return types.Collection(v)
	}
}
