package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambda-feedback/mathy/models"
)

func TestParseValue_Kinds(t *testing.T) {
	tests := map[string]models.Kind{
		`null`:      models.KindNull,
		`true`:      models.KindBool,
		`1.5`:       models.KindNumber,
		`"x"`:       models.KindString,
		` [1, 2] `:  models.KindArray,
		`{"a": 1}`:  models.KindObject,
		"\n[]\n":    models.KindArray,
		`[[], {}]`:  models.KindArray,
		`-0.25e+10`: models.KindNumber,
	}

	for input, kind := range tests {
		t.Run(input, func(t *testing.T) {
			value, err := models.ParseValue([]byte(input))
			require.NoError(t, err)
			assert.Equal(t, kind, value.Kind)
		})
	}
}

func TestParseValue_Nested(t *testing.T) {
	value, err := models.ParseValue([]byte(`[1, "two", null, {"k": [false]}]`))
	require.NoError(t, err)

	require.Len(t, value.Array, 4)
	assert.Equal(t, models.KindNumber, value.Array[0].Kind)
	assert.Equal(t, "two", value.Array[1].String)
	assert.Equal(t, models.KindNull, value.Array[2].Kind)
	assert.Equal(t, models.KindBool, value.Array[3].Object["k"].Array[0].Kind)
}

func TestParseValue_Invalid(t *testing.T) {
	for _, input := range []string{``, `not json{`, `[1,`, `[1] [2]`, `{"a":1} x`, `NaN`} {
		t.Run(input, func(t *testing.T) {
			_, err := models.ParseValue([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestValue_Float(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{`3`, 3},
		{`-2.5`, -2.5},
		{`1e3`, 1000},
		{`true`, 1},
		{`false`, 0},
		{`"4"`, 4},
		{`" 4.5 "`, 4.5},
		{`"+.5"`, 0.5},
		{`"5."`, 5},
		{`"1_000"`, 1000},
		{`"2E-2"`, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, err := models.ParseValue([]byte(tt.input))
			require.NoError(t, err)

			f, ok := value.Float()
			require.True(t, ok)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestValue_Float_NotANumber(t *testing.T) {
	inputs := []string{
		`null`, `[]`, `[1]`, `{}`, `"x"`, `""`, `"1_"`, `"_1"`, `"1__0"`,
		`"0x10"`, `"inf"`, `"nan"`, `"1e999"`, `1e999`, `"1.2.3"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			value, err := models.ParseValue([]byte(input))
			require.NoError(t, err)

			_, ok := value.Float()
			assert.False(t, ok)
		})
	}
}
