package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KushalwithK/valid8r/pkg/validator"
)

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		patch func(*validator.AddressConfig)
		rules []string
	}{
		{name: "valid", value: "123 Main Street, Apt #4."},
		{name: "too short", value: "Ab", rules: []string{"minLen"}},
		{name: "lower case word", value: "123 main Street", rules: []string{"properCapitalization"}},
		{name: "unlisted character", value: "12 Main St!", rules: []string{"allowedSpChars"}},
		{name: "consecutive spaces", value: "12  Main Street", rules: []string{"noConsecutiveSpaces"}},
		{
			name:  "no special characters",
			value: "12 Main St.",
			patch: func(c *validator.AddressConfig) { c.AllowedSpChars = validator.CharFlag(false) },
			rules: []string{"allowedSpChars"},
		},
		{
			name:  "any special character",
			value: "12 Main St!",
			patch: func(c *validator.AddressConfig) { c.AllowedSpChars = validator.CharFlag(true) },
		},
		{
			name:  "capitalization off",
			value: "12 main street",
			patch: func(c *validator.AddressConfig) { c.ProperCapitalization = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validator.DefaultAddressConfig()
			cfg.Safe = true
			if tt.patch != nil {
				tt.patch(&cfg)
			}

			res, err := validator.ValidateAddress(tt.value, cfg)
			require.NoError(t, err)
			assert.Equal(t, len(tt.rules) == 0, res.Valid, "report: %v", res.Errors)
			if len(tt.rules) > 0 {
				assert.Equal(t, tt.rules, res.Errors.Rules())
			}
		})
	}
}

func TestValidateAddress_Messages(t *testing.T) {
	t.Parallel()

	cfg := validator.DefaultAddressConfig()
	cfg.Safe = true

	res, err := validator.ValidateAddress("12 Main St!", cfg)
	require.NoError(t, err)
	assert.Equal(t,
		"Address contains invalid characters. Only alphanumeric characters and # or , or . are allowed.",
		res.Errors.Get("allowedSpChars"))

	cfg.AllowedSpChars = validator.CharFlag(false)
	res, err = validator.ValidateAddress("12 Main St.", cfg)
	require.NoError(t, err)
	assert.Equal(t, "No Special Characters are allowed!", res.Errors.Get("allowedSpChars"))
}
