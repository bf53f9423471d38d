package operators

import (
	"fmt"
	"strings"
	"time"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

// dateUnary wraps a date extraction with the regime's NULL handling.
func dateUnary(f func(t time.Time) types.Value) EvalFunc {
	return func(ctx *Context, args []types.Value) (types.Value, error) {
		if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[0].IsUnknown()) {
			return types.Null(), nil
		}
		d := coerce.ToDate(args[0], ctx.Mode)
		if d.IsAbsent() {
			return types.Null(), nil
		}
		return f(d.Time()), nil
	}
}

func registerDateTimeOperators() {
	mustRegister(&Descriptor{
		ID:          "NOW",
		DisplayName: "current date and time",
		Category:    CategoryDateTime,
		OutputType:  types.KindDate,
		MinArgs:     0,
		MaxArgs:     0,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return types.Date(time.Now()), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "TODAY",
		DisplayName: "current date",
		Category:    CategoryDateTime,
		OutputType:  types.KindDate,
		MinArgs:     0,
		MaxArgs:     0,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			y, m, d := time.Now().Date()
			return types.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "YEAR",
		DisplayName: "year",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Year()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "MONTH",
		DisplayName: "month",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Month()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "DAY",
		DisplayName: "day of month",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Day()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "HOUR",
		DisplayName: "hour",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Hour()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "MINUTE",
		DisplayName: "minute",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Minute()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "SECOND",
		DisplayName: "second",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate},
		OutputType:  types.KindNumber,
		MinArgs:     1,
		MaxArgs:     1,
		Evaluate: dateUnary(func(t time.Time) types.Value {
			return types.Number(float64(t.Second()))
		}),
	})

	mustRegister(&Descriptor{
		ID:          "DATE_ADD",
		DisplayName: "date add",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate, types.KindNumber, types.KindText},
		OutputType:  types.KindDate,
		MinArgs:     2,
		MaxArgs:     3,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[1].IsAbsent()) {
				return types.Null(), nil
			}
			d := coerce.ToDate(args[0], ctx.Mode)
			if d.IsAbsent() {
				return types.Null(), nil
			}
			n := int(coerce.ToNumber(args[1], coerce.ModeLegacy).Num())
			unit := "days"
			if len(args) == 3 {
				unit = strings.ToLower(coerce.ToText(args[2], coerce.ModeLegacy).Str())
			}
			t, err := addUnits(d.Time(), n, unit)
			if err != nil {
				return types.Null(), err
			}
			return types.Date(t), nil
		},
	})

	mustRegister(&Descriptor{
		ID:          "DATE_DIFF",
		DisplayName: "date difference",
		Category:    CategoryDateTime,
		InputTypes:  []types.Kind{types.KindDate, types.KindDate, types.KindText},
		OutputType:  types.KindNumber,
		MinArgs:     2,
		MaxArgs:     3,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			if ctx.Mode == coerce.ModeCodd && (args[0].IsAbsent() || args[1].IsAbsent()) {
				return types.Null(), nil
			}
			a := coerce.ToDate(args[0], ctx.Mode)
			b := coerce.ToDate(args[1], ctx.Mode)
			if a.IsAbsent() || b.IsAbsent() {
				return types.Null(), nil
			}
			unit := "days"
			if len(args) == 3 {
				unit = strings.ToLower(coerce.ToText(args[2], coerce.ModeLegacy).Str())
			}
			n, err := diffUnits(a.Time(), b.Time(), unit)
			if err != nil {
				return types.Null(), err
			}
			return types.Number(n), nil
		},
	})
}

func addUnits(t time.Time, n int, unit string) (time.Time, error) {
	switch unit {
	case "years", "year":
		return t.AddDate(n, 0, 0), nil
	case "months", "month":
		return t.AddDate(0, n, 0), nil
	case "days", "day":
		return t.AddDate(0, 0, n), nil
	case "hours", "hour":
		return t.Add(time.Duration(n) * time.Hour), nil
	case "minutes", "minute":
		return t.Add(time.Duration(n) * time.Minute), nil
	case "seconds", "second":
		return t.Add(time.Duration(n) * time.Second), nil
	default:
		return time.Time{}, fmt.Errorf("unknown date unit: %s", unit)
	}
}

func diffUnits(a, b time.Time, unit string) (float64, error) {
	d := a.Sub(b)
	switch unit {
	case "days", "day":
		return d.Hours() / 24, nil
	case "hours", "hour":
		return d.Hours(), nil
	case "minutes", "minute":
		return d.Minutes(), nil
	case "seconds", "second":
		return d.Seconds(), nil
	default:
		return 0, fmt.Errorf("unknown date unit: %s", unit)
	}
}
