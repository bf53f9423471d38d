package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which member of the value universe a Value holds.
type Kind int

const (
	// KindNull absent value (including Codd A/I marks)
	KindNull Kind = iota
	// KindNumber float64 number
	KindNumber
	// KindText string
	KindText
	// KindBool boolean
	KindBool
	// KindDate point in time
	KindDate
	// KindCollection ordered list of values
	KindCollection
	// KindUnknown three-valued logic UNKNOWN, produced by comparisons over absent operands
	KindUnknown
	// KindAny matches every kind, used only in operator signatures
	KindAny
)

// String returns string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindCollection:
		return "collection"
	case KindUnknown:
		return "unknown"
	case KindAny:
		return "any"
	default:
		return "invalid"
	}
}

// Mark distinguishes Codd's two absence markers from a plain NULL.
type Mark int

const (
	// MarkNone plain NULL, no marker attached
	MarkNone Mark = iota
	// MarkApplicable A-mark: applicable but presently unknown
	MarkApplicable
	// MarkInapplicable I-mark: inapplicable to this entity
	MarkInapplicable
)

// String returns string representation of a mark
func (m Mark) String() string {
	switch m {
	case MarkApplicable:
		return "A-mark"
	case MarkInapplicable:
		return "I-mark"
	default:
		return "none"
	}
}

// Value is the tagged union over {number, text, boolean, date, collection, null}.
// The zero Value is plain NULL. Values are immutable; all mutation happens by
// constructing new values.
type Value struct {
	kind  Kind
	mark  Mark
	num   float64
	text  string
	b     bool
	date  time.Time
	items []Value
}

// Null returns the plain NULL value.
func Null() Value {
	return Value{kind: KindNull}
}

// AMark returns an applicable-but-unknown absence marker.
func AMark() Value {
	return Value{kind: KindNull, mark: MarkApplicable}
}

// IMark returns an inapplicable absence marker.
func IMark() Value {
	return Value{kind: KindNull, mark: MarkInapplicable}
}

// Unknown returns the three-valued logic UNKNOWN truth value.
func Unknown() Value {
	return Value{kind: KindUnknown}
}

// Number wraps a float64.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text wraps a string.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Date wraps a point in time.
func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

// Collection wraps an ordered list of values. The slice is copied so the
// caller cannot mutate the value afterwards.
func Collection(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindCollection, items: cp}
}

// Kind reports which member of the universe this value holds.
func (v Value) Kind() Kind { return v.kind }

// Mark reports the absence marker carried by a NULL value, MarkNone otherwise.
func (v Value) Mark() Mark {
	if v.kind != KindNull {
		return MarkNone
	}
	return v.mark
}

// IsAbsent reports whether the value is NULL, an A-mark or an I-mark.
func (v Value) IsAbsent() bool { return v.kind == KindNull }

// IsUnknown reports whether the value is the 3VL UNKNOWN.
func (v Value) IsUnknown() bool { return v.kind == KindUnknown }

// Num returns the numeric payload; zero when the value is not a number.
func (v Value) Num() float64 { return v.num }

// Str returns the text payload; empty when the value is not text.
func (v Value) Str() string { return v.text }

// Boolean returns the boolean payload; false when the value is not a boolean.
func (v Value) Boolean() bool { return v.b }

// Time returns the date payload; the zero time when the value is not a date.
func (v Value) Time() time.Time { return v.date }

// Items returns a copy of the collection payload; nil for non-collections.
func (v Value) Items() []Value {
	if v.kind != KindCollection {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Len returns the collection length, 0 for non-collections.
func (v Value) Len() int { return len(v.items) }

// IsTruthy reports whether the value counts as true in a boolean context.
// NULL, the absence marks and UNKNOWN are never truthy.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindText:
		return v.text != ""
	case KindDate:
		return !v.date.IsZero()
	case KindCollection:
		return len(v.items) > 0
	default:
		return false
	}
}

// Equal reports strict, type-aware equality. Two NULLs are equal only when
// they carry the same marker; UNKNOWN equals UNKNOWN. This is structural
// equality for the simplifier, not SQL comparison semantics.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return v.mark == o.mark
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.date.Equal(o.date)
	case KindCollection:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the value for display and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		if v.mark != MarkNone {
			return v.mark.String()
		}
		return "null"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.date.Format(time.RFC3339)
	case KindCollection:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = it.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("invalid(%d)", int(v.kind))
	}
}
