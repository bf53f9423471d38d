package types

import "time"

// FromAny converts a raw Go value, as found in externally supplied records,
// into a Value. Unrecognized types fall back to NULL rather than erroring so
// that record resolution stays total.
func FromAny(raw interface{}) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case time.Time:
		return Date(x)
	case []Value:
		return Collection(x...)
	case []interface{}:
		items := make([]Value, len(x))
		for i, it := range x {
			items[i] = FromAny(it)
		}
		return Value{kind: KindCollection, items: items}
	default:
		return Null()
	}
}

// ToAny converts a Value back into a plain Go value, the shape the
// expression bridge and host callers work with. NULL and the absence marks
// become nil; UNKNOWN also maps to nil since Go has no third truth value.
func ToAny(v Value) interface{} {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.b
	case KindDate:
		return v.date
	case KindCollection:
		out := make([]interface{}, len(v.items))
		for i, it := range v.items {
			out[i] = ToAny(it)
		}
		return out
	default:
		return nil
	}
}
