package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payment-admin/internal/params"
)

func TestValidateFilters_DropsFalsyValues(t *testing.T) {
	filters := map[string]interface{}{
		"status":   "success",
		"utr":      "",
		"verified": false,
		"amount":   0,
		"agent":    nil,
	}

	cleaned, err := params.ValidateFilters(filters)

	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "success"}, cleaned)
}

func TestValidateFilters_Idempotent(t *testing.T) {
	filters := map[string]interface{}{
		"status": "failed",
		"uuid":   "2b7e1c1e-9e1a-4c2f-8f3a-1d2e3f4a5b6c",
		"amount": "250.50",
		"empty":  "",
	}

	once, err := params.ValidateFilters(filters)
	assert.NoError(t, err)

	twice, err := params.ValidateFilters(once)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestValidateFilters_UUID(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		valid bool
	}{
		{"canonical", "2b7e1c1e-9e1a-4c2f-8f3a-1d2e3f4a5b6c", true},
		{"uppercase", "2B7E1C1E-9E1A-4C2F-8F3A-1D2E3F4A5B6C", true},
		{"missing segment", "2b7e1c1e-9e1a-4c2f-8f3a", false},
		{"not hex", "zzzz1c1e-9e1a-4c2f-8f3a-1d2e3f4a5b6c", false},
		{"bad variant", "2b7e1c1e-9e1a-4c2f-0f3a-1d2e3f4a5b6c", false},
		{"not a string", 42, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := params.ValidateFilters(map[string]interface{}{"uuid": tc.value})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, params.ErrInvalidUUID)
			}
		})
	}
}

func TestValidateFilters_ID(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		valid bool
	}{
		{"int", 7, true},
		{"numeric string", "1234", true},
		{"whole float", float64(12), true},
		{"fractional float", 12.5, false},
		{"text", "abc", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := params.ValidateFilters(map[string]interface{}{"id": tc.value})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, params.ErrInvalidID)
			}
		})
	}
}

func TestValidateFilters_Amount(t *testing.T) {
	_, err := params.ValidateFilters(map[string]interface{}{"amount": "199.99"})
	assert.NoError(t, err)

	_, err = params.ValidateFilters(map[string]interface{}{"amount": "lots"})
	assert.ErrorIs(t, err, params.ErrInvalidAmount)
}

func TestValidateFilters_DoesNotMutateInput(t *testing.T) {
	filters := map[string]interface{}{
		"status": "success",
		"utr":    "",
	}

	_, err := params.ValidateFilters(filters)

	assert.NoError(t, err)
	assert.Len(t, filters, 2)
}
