package operators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovenbradshaw-ctrl/fieldformula/coerce"
	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

func TestExprBridgeEvaluatesAgainstRecord(t *testing.T) {
	bridge := GetExprBridge()
	record := map[string]interface{}{"price": 100.0, "qty": 3.0}

	out, err := bridge.EvaluateExpression("price * qty", record, coerce.ModeCodd)
	require.NoError(t, err)
	assert.Equal(t, 300.0, out)
}

func TestExprBridgeExposesOperators(t *testing.T) {
	bridge := GetExprBridge()

	out, err := bridge.EvaluateExpression(`UPPER("abc")`, nil, coerce.ModeCodd)
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	out, err = bridge.EvaluateExpression("ADD(1000, -700)", nil, coerce.ModeCodd)
	require.NoError(t, err)
	assert.Equal(t, 300.0, out)
}

func TestExprBridgeCompileError(t *testing.T) {
	_, err := GetExprBridge().EvaluateExpression("1 +", nil, coerce.ModeCodd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile failed")
}

func TestExprBridgeResolvesObservationCells(t *testing.T) {
	cell := types.NewObservationCell()
	cell.Add(types.Number(1), mustTime(t, "2024-01-01"))
	cell.Add(types.Number(2), mustTime(t, "2025-01-01"))

	record := map[string]interface{}{"reading": cell}
	out, err := GetExprBridge().EvaluateExpression("reading + 1", record, coerce.ModeCodd)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out)
}

func TestExprOperatorEscapeHatch(t *testing.T) {
	record := map[string]interface{}{"a": 2.0, "b": 3.0}
	got, err := Execute("EXPR", &Context{Record: record, Mode: coerce.ModeCodd},
		[]types.Value{types.Text("a + b")})
	require.NoError(t, err)
	assert.Equal(t, types.Number(5), got)

	_, err = Execute("EXPR", &Context{}, []types.Value{types.Number(1)})
	require.Error(t, err)
}
