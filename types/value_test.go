package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"a-mark", AMark(), KindNull},
		{"i-mark", IMark(), KindNull},
		{"unknown", Unknown(), KindUnknown},
		{"number", Number(3.5), KindNumber},
		{"text", Text("hi"), KindText},
		{"bool", Bool(true), KindBool},
		{"date", Date(time.Now()), KindDate},
		{"collection", Collection(Number(1)), KindCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
		})
	}
}

func TestMarksAreDistinguishedFromPlainNull(t *testing.T) {
	assert.True(t, Null().IsAbsent())
	assert.True(t, AMark().IsAbsent())
	assert.True(t, IMark().IsAbsent())

	assert.Equal(t, MarkNone, Null().Mark())
	assert.Equal(t, MarkApplicable, AMark().Mark())
	assert.Equal(t, MarkInapplicable, IMark().Mark())

	// Structural equality keeps the marks apart.
	assert.True(t, Null().Equal(Null()))
	assert.False(t, Null().Equal(AMark()))
	assert.False(t, AMark().Equal(IMark()))

	// A mark on a non-null value is impossible.
	assert.Equal(t, MarkNone, Number(1).Mark())
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nonzero number", Number(2), true},
		{"zero", Number(0), false},
		{"nonempty text", Text("x"), true},
		{"empty text", Text(""), false},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"null", Null(), false},
		{"unknown", Unknown(), false},
		{"empty collection", Collection(), false},
		{"nonempty collection", Collection(Null()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.IsTruthy())
		})
	}
}

func TestCollectionIsolation(t *testing.T) {
	src := []Value{Number(1), Number(2)}
	v := Collection(src...)

	src[0] = Number(99)
	assert.Equal(t, float64(1), v.Items()[0].Num(), "constructor must copy")

	items := v.Items()
	items[1] = Number(99)
	assert.Equal(t, float64(2), v.Items()[1].Num(), "accessor must copy")
}

func TestFromAny(t *testing.T) {
	assert.Equal(t, Number(5), FromAny(5))
	assert.Equal(t, Number(5.5), FromAny(5.5))
	assert.Equal(t, Number(5), FromAny(int64(5)))
	assert.Equal(t, Text("x"), FromAny("x"))
	assert.Equal(t, Bool(true), FromAny(true))
	assert.Equal(t, Null(), FromAny(nil))
	assert.Equal(t, KindCollection, FromAny([]interface{}{1, "a"}).Kind())

	// Unrecognized types degrade to NULL, not panic.
	assert.Equal(t, Null(), FromAny(struct{}{}))
}

func TestToAnyRoundTrip(t *testing.T) {
	assert.Equal(t, 3.0, ToAny(Number(3)))
	assert.Equal(t, "s", ToAny(Text("s")))
	assert.Equal(t, true, ToAny(Bool(true)))
	assert.Nil(t, ToAny(Null()))
	assert.Nil(t, ToAny(Unknown()))
}

func TestObservationCellResolve(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty cell resolves to null", func(t *testing.T) {
		assert.Equal(t, Null(), NewObservationCell().Resolve())
	})

	t.Run("most recent wins", func(t *testing.T) {
		cell := NewObservationCell()
		cell.Add(Number(1), base)
		cell.Add(Number(3), base.Add(2*time.Hour))
		cell.Add(Number(2), base.Add(time.Hour))
		assert.Equal(t, Number(3), cell.Resolve())
	})

	t.Run("equal timestamps break by insertion order", func(t *testing.T) {
		cell := NewObservationCell()
		cell.Add(Number(1), base)
		cell.Add(Number(2), base)
		assert.Equal(t, Number(2), cell.Resolve())
	})
}

func TestResolveField(t *testing.T) {
	cell := NewObservationCell()
	cell.Add(Text("new"), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, Text("new"), ResolveField(cell))
	assert.Equal(t, Number(7), ResolveField(7))
	assert.Equal(t, Text("raw"), ResolveField("raw"))
	assert.Equal(t, Null(), ResolveField(nil))
}
