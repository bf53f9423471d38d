package expr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

func evalCodd(t *testing.T, src string, record map[string]interface{}) *EvaluationResult {
	t.Helper()
	return EvaluateParsed(Parse(src), record, coerce.ModeCodd)
}

func evalLegacy(t *testing.T, src string, record map[string]interface{}) *EvaluationResult {
	t.Helper()
	return EvaluateParsed(Parse(src), record, coerce.ModeLegacy)
}

func TestEvaluateArithmetic(t *testing.T) {
	record := map[string]interface{}{"A": 1000, "B": 700}

	res := evalCodd(t, "{A} - {B}", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(300), res.Value)
	assert.Equal(t, []string{"A", "B"}, res.Dependencies)
	assert.Equal(t, "derived", res.Provenance.Method)
	assert.Equal(t, "{A} - {B}", res.Provenance.Formula)

	res = evalCodd(t, "2 + 3 * 4", nil)
	assert.Equal(t, types.Number(14), res.Value)

	res = evalCodd(t, "2 ^ 3 ^ 2", nil)
	assert.Equal(t, types.Number(512), res.Value)

	res = evalCodd(t, "-{A}", record)
	assert.Equal(t, types.Number(-1000), res.Value)
}

func TestEvaluateNullRegimes(t *testing.T) {
	record := map[string]interface{}{"A": nil, "B": 5}

	t.Run("codd arithmetic propagates null", func(t *testing.T) {
		res := evalCodd(t, "{A} + {B}", record)
		require.True(t, res.Success)
		assert.Equal(t, types.Null(), res.Value)
	})

	t.Run("legacy arithmetic zero-fills", func(t *testing.T) {
		res := evalLegacy(t, "{A} + {B}", record)
		assert.Equal(t, types.Number(5), res.Value)
	})

	t.Run("codd comparison yields unknown", func(t *testing.T) {
		res := evalCodd(t, "{A} = {B}", record)
		assert.Equal(t, types.Unknown(), res.Value)
	})

	t.Run("legacy null equals null", func(t *testing.T) {
		res := evalLegacy(t, "{A} = {Missing}", record)
		assert.Equal(t, types.Bool(true), res.Value)
	})

	t.Run("missing field resolves to null, not an error", func(t *testing.T) {
		res := evalCodd(t, "{Missing} * 2", record)
		require.True(t, res.Success)
		assert.Equal(t, types.Null(), res.Value)
	})
}

func TestEvaluateDivision(t *testing.T) {
	record := map[string]interface{}{"A": 10, "B": 0}

	res := evalLegacy(t, "{A} / {B}", record)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "division by zero")
	assert.Equal(t, types.Null(), res.Value)

	res = evalCodd(t, "{A} / {B}", record)
	require.True(t, res.Success)
	assert.Equal(t, types.Null(), res.Value)
}

func TestEvaluateStringsAndConcat(t *testing.T) {
	record := map[string]interface{}{"First": "Ada", "Last": "Lovelace", "Mid": nil}

	res := evalCodd(t, `{First} & ' ' & {Last}`, record)
	assert.Equal(t, types.Text("Ada Lovelace"), res.Value)

	res = evalCodd(t, `{First} & {Mid} & {Last}`, record)
	assert.Equal(t, types.Text("AdaLovelace"), res.Value)

	res = evalCodd(t, `UPPER({First})`, record)
	assert.Equal(t, types.Text("ADA"), res.Value)
}

func TestEvaluateComparisonChain(t *testing.T) {
	record := map[string]interface{}{"Qty": 12, "Price": 100.0}

	res := evalCodd(t, "{Qty} > 10", record)
	assert.Equal(t, types.Bool(true), res.Value)

	res = evalCodd(t, "IF({Qty} > 10, {Price} * 0.9, {Price})", record)
	assert.Equal(t, types.Number(90), res.Value)
}

func TestEvaluateIfShortCircuit(t *testing.T) {
	record := map[string]interface{}{"X": 1}

	// The untaken branch would divide by zero; it must never run.
	res := evalLegacy(t, "IF(true, {X}, {X} / 0)", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(1), res.Value)

	res = evalLegacy(t, "IF(false, {X} / 0, {X})", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(1), res.Value)

	t.Run("unknown condition selects else", func(t *testing.T) {
		res := evalCodd(t, "IF({Missing} > 1, 'yes', 'no')", record)
		assert.Equal(t, types.Text("no"), res.Value)
	})

	t.Run("missing else yields null", func(t *testing.T) {
		res := evalCodd(t, "IF(false, 1)", record)
		assert.Equal(t, types.Null(), res.Value)
	})
}

func TestEvaluateAndOrShortCircuit(t *testing.T) {
	record := map[string]interface{}{"X": 1}

	// A determining first operand stops evaluation before the poisoned one.
	res := evalLegacy(t, "AND(false, {X} / 0 > 1)", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Bool(false), res.Value)

	res = evalLegacy(t, "OR(true, {X} / 0 > 1)", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Bool(true), res.Value)

	t.Run("codd unknown taints undetermined AND", func(t *testing.T) {
		res := evalCodd(t, "AND(true, {Missing} > 1)", record)
		assert.Equal(t, types.Unknown(), res.Value)
	})

	t.Run("codd determining operand beats unknown", func(t *testing.T) {
		res := evalCodd(t, "AND({Missing} > 1, false)", record)
		assert.Equal(t, types.Bool(false), res.Value)

		res = evalCodd(t, "OR({Missing} > 1, true)", record)
		assert.Equal(t, types.Bool(true), res.Value)
	})

	t.Run("legacy treats unknown as falsy", func(t *testing.T) {
		res := evalLegacy(t, "AND(true, {Missing} = 1)", record)
		// Legacy comparison zero-fills, so {Missing} = 1 is plain false.
		assert.Equal(t, types.Bool(false), res.Value)
	})
}

func TestEvaluateObservationCells(t *testing.T) {
	cell := types.NewObservationCell()
	cell.Add(types.Number(10), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cell.Add(types.Number(20), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	record := map[string]interface{}{"Reading": cell}
	res := evalCodd(t, "{Reading} * 2", record)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, types.Number(40), res.Value, "most recent observation wins")
}

func TestEvaluateFailures(t *testing.T) {
	t.Run("invalid parse fails without touching the record", func(t *testing.T) {
		res := EvaluateParsed(Parse("1 +"), nil, coerce.ModeCodd)
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.Equal(t, types.Null(), res.Value)
	})

	t.Run("unknown function", func(t *testing.T) {
		res := evalCodd(t, "NOPE(1)", nil)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "unknown function")
	})

	t.Run("wrong arity", func(t *testing.T) {
		res := evalCodd(t, "SUBSTRING('x')", nil)
		assert.False(t, res.Success)
	})
}
