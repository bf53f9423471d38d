package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{
			"arithmetic with field",
			"{Price} * 2",
			[]Token{
				{Type: TokenField, Value: "Price", Pos: 0},
				{Type: TokenOperator, Value: "*", Pos: 8},
				{Type: TokenNumber, Value: "2", Pos: 10},
			},
		},
		{
			"field names are trimmed",
			"{ Unit Price }",
			[]Token{{Type: TokenField, Value: "Unit Price", Pos: 0}},
		},
		{
			"two-char operators win over single",
			"1<=2!=3>=4",
			[]Token{
				{Type: TokenNumber, Value: "1", Pos: 0},
				{Type: TokenOperator, Value: "<=", Pos: 1},
				{Type: TokenNumber, Value: "2", Pos: 3},
				{Type: TokenOperator, Value: "!=", Pos: 4},
				{Type: TokenNumber, Value: "3", Pos: 6},
				{Type: TokenOperator, Value: ">=", Pos: 7},
				{Type: TokenNumber, Value: "4", Pos: 9},
			},
		},
		{
			"decimal number",
			"3.14",
			[]Token{{Type: TokenNumber, Value: "3.14", Pos: 0}},
		},
		{
			"leading-dot number",
			".5 + 1",
			[]Token{
				{Type: TokenNumber, Value: ".5", Pos: 0},
				{Type: TokenOperator, Value: "+", Pos: 3},
				{Type: TokenNumber, Value: "1", Pos: 5},
			},
		},
		{
			"call with comma",
			"IF(true, 1)",
			[]Token{
				{Type: TokenIdent, Value: "IF", Pos: 0},
				{Type: TokenLParen, Value: "(", Pos: 2},
				{Type: TokenIdent, Value: "true", Pos: 3},
				{Type: TokenComma, Value: ",", Pos: 7},
				{Type: TokenNumber, Value: "1", Pos: 9},
				{Type: TokenRParen, Value: ")", Pos: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenize(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeStrings(t *testing.T) {
	got, err := tokenize(`'it''s'`)
	require.NoError(t, err)
	// Adjacent quotes end one string and start the next.
	require.Len(t, got, 2)

	got, err = tokenize(`"a\nb\t\"c"`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, TokenString, got[0].Type)
	assert.Equal(t, "a\nb\t\"c", got[0].Value)

	got, err = tokenize(`'single' & "double"`)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "single", got[0].Value)
	assert.Equal(t, "double", got[2].Value)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unterminated field", "{Price", "unterminated field reference"},
		{"empty field", "{ }", "empty field reference"},
		{"unterminated string", "'abc", "unterminated string"},
		{"stray character", "1 # 2", "unexpected character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
