package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KushalwithK/valid8r/pkg/validator"
)

func TestValidateIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		patch func(*validator.IPConfig)
		rules []string
	}{
		{name: "public v4", value: "8.8.8.8"},
		{name: "full v6", value: "2001:0db8:85a3:0000:0000:8a2e:0370:7334"},
		{name: "private v4", value: "192.168.1.1", rules: []string{"allowPrivate"}},
		{
			name:  "private v4 allowed",
			value: "192.168.1.1",
			patch: func(c *validator.IPConfig) { c.AllowPrivate = true },
		},
		{name: "loopback v4", value: "127.0.0.1", rules: []string{"allowLoopback"}},
		{
			name:  "loopback allowed",
			value: "127.0.0.1",
			patch: func(c *validator.IPConfig) { c.AllowLoopback = true },
		},
		{name: "octet out of range", value: "999.1.1.1", rules: []string{"format"}},
		{name: "garbage", value: "localhost", rules: []string{"format"}},
		{name: "compressed v6 loopback", value: "::1", rules: []string{"format", "allowLoopback"}},
		{
			name:  "v6 when v4 required",
			value: "2001:0db8:85a3:0000:0000:8a2e:0370:7334",
			patch: func(c *validator.IPConfig) { c.Version = validator.IPv4 },
			rules: []string{"version"},
		},
		{
			name:  "v4 when v6 required",
			value: "8.8.8.8",
			patch: func(c *validator.IPConfig) { c.Version = validator.IPv6 },
			rules: []string{"version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validator.DefaultIPConfig()
			cfg.Safe = true
			if tt.patch != nil {
				tt.patch(&cfg)
			}

			res, err := validator.ValidateIP(tt.value, cfg)
			require.NoError(t, err)
			assert.Equal(t, len(tt.rules) == 0, res.Valid, "report: %v", res.Errors)
			if len(tt.rules) > 0 {
				assert.Equal(t, tt.rules, res.Errors.Rules())
			}
		})
	}
}

func TestValidateIP_Raises(t *testing.T) {
	t.Parallel()

	_, err := validator.ValidateIP("192.168.1.1", validator.DefaultIPConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrIPValidationFailed)
	assert.Equal(t, `{"allowPrivate":"Private IP addresses are not allowed."}`, err.Error())
}
