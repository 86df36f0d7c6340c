// internal/common/validation/validator_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budgetSchema = `{
	"type": "object",
	"properties": {
		"total_trip_cost": {"type": "number"},
		"currency": {"type": "string"}
	},
	"required": ["total_trip_cost", "currency"]
}`

func TestValidator_RegisterAndValidate(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Register("budget", budgetSchema))
	assert.True(t, v.Has("budget"))
	assert.False(t, v.Has("other"))

	res, err := v.Validate("budget", []byte(`{"total_trip_cost": 4200, "currency": "USD"}`))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.ErrorSummary())
}

func TestValidator_ReportsFieldErrors(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Register("budget", budgetSchema))

	res, err := v.Validate("budget", []byte(`{"total_trip_cost": "a lot"}`))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Errors)

	summary := res.ErrorSummary()
	assert.Contains(t, summary, "total_trip_cost")
	assert.Contains(t, summary, "currency")
}

func TestValidator_UnregisteredSchema(t *testing.T) {
	v := NewValidator()

	_, err := v.Validate("missing", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestValidator_BadSchemaRejected(t *testing.T) {
	v := NewValidator()

	err := v.Register("broken", `{"type": ["not valid`)
	require.Error(t, err)
}
