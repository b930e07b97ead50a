package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

func TestRequiredFieldsCheck(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		missing string
	}{
		{name: "complete", payload: Payload{"name": "Banana", "calories": float64(105)}},
		{name: "empty body", payload: Payload{}, missing: "name"},
		{name: "name checked first", payload: Payload{"calories": float64(0)}, missing: "name"},
		{name: "missing calories", payload: Payload{"name": "Banana"}, missing: "calories"},
		{name: "zero calories is falsy", payload: Payload{"name": "Water", "calories": float64(0)}, missing: "calories"},
		{name: "empty name is falsy", payload: Payload{"name": "", "calories": float64(10)}, missing: "name"},
		{name: "null name", payload: Payload{"name": nil, "calories": float64(10)}, missing: "name"},
		{name: "false name", payload: Payload{"name": false, "calories": float64(10)}, missing: "name"},
		{name: "string zero is present", payload: Payload{"name": "Water", "calories": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := foodFields.Check(tt.payload)
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
			assert.Equal(t,
				`Expected format: { name: <String>, calories: <Integer> }. You're missing a "`+tt.missing+`" property.`,
				apperrors.MessageOf(err))
		})
	}
}

func TestIntField(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    int
		wantErr bool
	}{
		{name: "json number", value: float64(250), want: 250},
		{name: "json.Number", value: json.Number("42"), want: 42},
		{name: "numeric string", value: " 120 ", want: 120},
		{name: "fractional", value: 12.5, wantErr: true},
		{name: "word", value: "lots", wantErr: true},
		{name: "bool", value: true, wantErr: true},
		{name: "object", value: map[string]interface{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intField(Payload{"calories": tt.value}, "calories")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrorTypeInput, apperrors.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringField(t *testing.T) {
	got, err := stringField(Payload{"name": float64(7)}, "name")
	require.NoError(t, err)
	assert.Equal(t, "7", got)

	_, err = stringField(Payload{"name": []interface{}{"a"}}, "name")
	assert.Error(t, err)
}
