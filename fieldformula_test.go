package fieldformula

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovenbradshaw-ctrl/fieldformula/chain"
	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

func TestEngineDefaults(t *testing.T) {
	e := New(WithDiscardLogger())
	assert.Equal(t, coerce.ModeCodd, e.Mode())
	assert.Equal(t, 0, e.CacheLen())
}

func TestEngineEvaluate(t *testing.T) {
	e := New(WithDiscardLogger())
	record := map[string]interface{}{"Revenue": 1000, "Cost": 700}

	res := e.Evaluate("{Revenue} - {Cost}", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(300), res.Value)
	assert.Equal(t, []string{"Revenue", "Cost"}, res.Dependencies)
	assert.Equal(t, "derived", res.Provenance.Method)
}

func TestEngineNullRegimes(t *testing.T) {
	record := map[string]interface{}{"A": nil, "B": 5}

	codd := New(WithDiscardLogger())
	legacy := New(WithLegacyNulls(), WithDiscardLogger())

	t.Run("arithmetic over null", func(t *testing.T) {
		res := codd.Evaluate("{A} + {B}", record)
		require.True(t, res.Success)
		assert.Equal(t, types.Null(), res.Value)

		res = legacy.Evaluate("{A} + {B}", record)
		assert.Equal(t, types.Number(5), res.Value)
	})

	t.Run("comparison over null", func(t *testing.T) {
		res := codd.Evaluate("{A} = {Missing}", record)
		assert.Equal(t, types.Unknown(), res.Value)

		res = legacy.Evaluate("{A} = {Missing}", record)
		assert.Equal(t, types.Bool(true), res.Value)
	})

	t.Run("division by zero", func(t *testing.T) {
		zeros := map[string]interface{}{"N": 10, "D": 0}

		res := legacy.Evaluate("{N} / {D}", zeros)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "division by zero")

		res = codd.Evaluate("{N} / {D}", zeros)
		require.True(t, res.Success)
		assert.Equal(t, types.Null(), res.Value)
	})
}

func TestEngineShortCircuit(t *testing.T) {
	e := New(WithLegacyNulls(), WithDiscardLogger())
	record := map[string]interface{}{"X": 1}

	res := e.Evaluate("IF(true, {X}, {X} / 0)", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(1), res.Value)

	res = e.Evaluate("AND(false, {X} / 0 > 1)", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Bool(false), res.Value)
}

func TestEngineCaching(t *testing.T) {
	e := New(WithCacheCapacity(2), WithDiscardLogger())

	e.Evaluate("{A} + 1", nil)
	e.Evaluate("{A} + 1", nil)
	assert.Equal(t, 1, e.CacheLen())

	e.Evaluate("{B} + 1", nil)
	e.Evaluate("{C} + 1", nil)
	assert.Equal(t, 2, e.CacheLen())

	t.Run("invalid formulas are not cached", func(t *testing.T) {
		before := e.CacheLen()
		res := e.Evaluate("1 +", nil)
		assert.False(t, res.Success)
		assert.Equal(t, before, e.CacheLen())
	})

	t.Run("parse results own their dependencies", func(t *testing.T) {
		first := e.Parse("{X} + {Y}")
		first.Dependencies[0] = "mutated"
		second := e.Parse("{X} + {Y}")
		assert.Equal(t, []string{"X", "Y"}, second.Dependencies)
	})
}

func TestEngineObservationCells(t *testing.T) {
	e := New(WithDiscardLogger())

	cell := types.NewObservationCell()
	cell.Add(types.Number(98.6), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	cell.Add(types.Number(99.1), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	res := e.Evaluate("{Temp} > 99", map[string]interface{}{"Temp": cell})
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Bool(true), res.Value, "latest observation wins")
}

func TestEngineChainAccessor(t *testing.T) {
	record := map[string]interface{}{"Base": 10}
	steps := []chain.Step{
		{OperatorID: "DIVIDE", Args: []chain.StepArg{
			chain.Literal(types.Number(1)), chain.Literal(types.Number(0)),
		}},
	}

	codd := New(WithDiscardLogger())
	assert.True(t, codd.Chain().CanChain("ADD", "CONCAT").Valid)

	got, err := codd.Chain().Run(steps, record)
	require.NoError(t, err)
	assert.Equal(t, types.Null(), got, "codd engine's validator inherits its regime")

	legacy := New(WithLegacyNulls(), WithDiscardLogger())
	_, err = legacy.Chain().Run(steps, record)
	assert.Error(t, err, "legacy engine's validator inherits its regime")

	trace, err := codd.Chain().Trace([]chain.Step{
		{OperatorID: "ADD", Args: []chain.StepArg{
			chain.Literal(types.Number(40)), chain.Literal(types.Number(2)),
		}},
	}, record)
	require.NoError(t, err)
	assert.Equal(t, types.Number(42), trace[0].Result)
}

func TestEngineBridgeAccessor(t *testing.T) {
	e := New(WithDiscardLogger())
	require.NotNil(t, e.Bridge())

	out, err := e.Bridge().EvaluateExpression("2 * 3", nil, e.Mode())
	require.NoError(t, err)
	assert.Equal(t, 6, out)
}

func TestEngineEvaluateRaw(t *testing.T) {
	e := New(WithDiscardLogger())
	record := map[string]interface{}{"price": 100.0, "qty": 3.0}

	out, err := e.EvaluateRaw("price * qty", record)
	require.NoError(t, err)
	assert.Equal(t, 300.0, out)

	out, err = e.EvaluateRaw(`UPPER("go")`, record)
	require.NoError(t, err)
	assert.Equal(t, "GO", out)

	_, err = e.EvaluateRaw("1 +", record)
	assert.Error(t, err)
}

func TestEngineConcurrentEvaluation(t *testing.T) {
	e := New(WithDiscardLogger())
	record := map[string]interface{}{"A": 2, "B": 3}

	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- true }()
			for i := 0; i < 50; i++ {
				res := e.Evaluate("{A} * {B} + 1", record)
				assert.Equal(t, types.Number(7), res.Value)
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
