package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovenbradshaw-ctrl/fieldformula/types"
)

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	d := &Descriptor{
		ID:       "add",
		Category: CategoryMath,
		MinArgs:  2, MaxArgs: 2,
		OutputType: types.KindNumber,
		Evaluate: func(ctx *Context, args []types.Value) (types.Value, error) {
			return types.Null(), nil
		},
	}
	require.NoError(t, r.Register(d))
	assert.Equal(t, "ADD", d.ID, "ids are canonicalized to upper case")

	dup := &Descriptor{
		ID:       "ADD",
		Category: CategoryMath,
		MinArgs:  2, MaxArgs: 2,
		Evaluate: d.Evaluate,
	}
	assert.Error(t, r.Register(dup))
}

func TestRegisterRequiresEvaluate(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Descriptor{ID: "X", Category: CategoryMath})
	assert.Error(t, err)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	d, ok := Get("add")
	require.True(t, ok)
	assert.Equal(t, "ADD", d.ID)

	_, ok = Get("NO_SUCH_OPERATOR")
	assert.False(t, ok)
}

func TestBySymbol(t *testing.T) {
	tests := []struct {
		symbol string
		id     string
	}{
		{"+", "ADD"},
		{"-", "SUBTRACT"},
		{"*", "MULTIPLY"},
		{"/", "DIVIDE"},
		{"%", "MOD"},
		{"^", "POWER"},
		{"&", "CONCAT"},
		{"=", "EQUALS"},
		{"!=", "NOT_EQUALS"},
		{"<", "LESS_THAN"},
		{">", "GREATER_THAN"},
		{"<=", "LESS_EQUAL"},
		{">=", "GREATER_EQUAL"},
	}

	for _, tt := range tests {
		d, ok := BySymbol(tt.symbol)
		require.True(t, ok, "symbol %s", tt.symbol)
		assert.Equal(t, tt.id, d.ID)
	}
}

func TestCategoriesEnumeration(t *testing.T) {
	cats := Categories()
	assert.Contains(t, cats, CategoryMath)
	assert.Contains(t, cats, CategoryNull)

	// Enumeration is restartable and stable.
	assert.Equal(t, ByCategory(CategoryMath), ByCategory(CategoryMath))

	for _, d := range ByCategory(CategoryNull) {
		assert.Equal(t, CategoryNull, d.Category)
	}
}

func TestValidateArgCount(t *testing.T) {
	d, _ := Get("IF")
	assert.Error(t, d.ValidateArgCount(1))
	assert.NoError(t, d.ValidateArgCount(2))
	assert.NoError(t, d.ValidateArgCount(3))
	assert.Error(t, d.ValidateArgCount(4))

	sum, _ := Get("SUM")
	assert.NoError(t, sum.ValidateArgCount(50), "variadic has no upper bound")
	assert.True(t, sum.Variadic())
}

func TestExecuteUnknownOperator(t *testing.T) {
	_, err := Execute("NOPE", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlgebraicDeclarations(t *testing.T) {
	add, _ := Get("ADD")
	require.NotNil(t, add.Identity)
	assert.Equal(t, types.Number(0), *add.Identity)
	assert.Equal(t, "SUBTRACT", add.InverseID)
	assert.True(t, add.Properties.Has(Associative|Commutative))

	mul, _ := Get("MULTIPLY")
	require.NotNil(t, mul.Absorbing)
	assert.Equal(t, types.Number(0), *mul.Absorbing)

	max, _ := Get("MAX")
	assert.True(t, max.Properties.Has(Idempotent))

	neg, _ := Get("NEGATE")
	assert.True(t, neg.Properties.Has(Involutory))
	assert.Equal(t, "NEGATE", neg.InverseID)
}

func TestExamplesHold(t *testing.T) {
	for id, d := range ListAll() {
		for i, ex := range d.Examples {
			got, err := Execute(id, &Context{}, ex.Args)
			require.NoError(t, err, "%s example %d", id, i)
			assert.True(t, ex.Want.Equal(got), "%s example %d: want %s, got %s", id, i, ex.Want, got)
		}
	}
}
