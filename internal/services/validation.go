package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

// Payload is a decoded request body (JSON object or urlencoded form)
type Payload map[string]interface{}

// RequiredFields describes the presence check of one resource body
type RequiredFields struct {
	Format string   // expected body shape shown to the client
	Fields []string // checked in order, first miss wins
}

var (
	foodFields = RequiredFields{
		Format: "{ name: <String>, calories: <Integer> }",
		Fields: []string{"name", "calories"},
	}
	dayFields = RequiredFields{
		Format: "{ goal: <Integer> }",
		Fields: []string{"goal"},
	}
	mealFields = RequiredFields{
		Format: "{ meal_type: <String> }",
		Fields: []string{"meal_type"},
	}
)

// Check returns a validation error naming the first field that is absent
// or falsy (null, false, 0, "").
func (r RequiredFields) Check(p Payload) error {
	for _, field := range r.Fields {
		if !truthy(p[field]) {
			return apperrors.NewValidationError(fmt.Sprintf(
				"Expected format: %s. You're missing a %q property.", r.Format, field)).
				WithContext("field", field)
		}
	}
	return nil
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// stringField renders a scalar body value as text
func stringField(p Payload, field string) (string, error) {
	switch t := p[field].(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", apperrors.NewInputError(fmt.Sprintf("Invalid value for %q", field)).
			WithContext("field", field)
	}
}

// intField accepts integral numbers and numeric strings
func intField(p Payload, field string) (int, error) {
	invalid := apperrors.NewInputError(fmt.Sprintf("Invalid value for %q: expected an integer", field)).
		WithContext("field", field)

	switch t := p[field].(type) {
	case float64:
		if t != math.Trunc(t) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0, invalid
		}
		return int(t), nil
	case json.Number:
		v, err := strconv.ParseInt(t.String(), 10, 32)
		if err != nil {
			return 0, invalid
		}
		return int(v), nil
	case int:
		return t, nil
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(t), 10, 32)
		if err != nil {
			return 0, invalid
		}
		return int(v), nil
	default:
		return 0, invalid
	}
}
