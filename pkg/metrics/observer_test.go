package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KushalwithK/valid8r/pkg/metrics"
	"github.com/KushalwithK/valid8r/pkg/validator"
)

func TestObserver_CountsOutcomes(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := metrics.NewObserver(reg, "valid8r")
	require.NoError(t, err)

	v := validator.New(validator.WithObserver(obs))
	_, _ = v.IP("8.8.8.8")
	_, _ = v.IP("192.168.1.1")
	_, _ = v.IP("127.0.0.1")
	_, _ = v.Password("pass")

	expected := `
# HELP valid8r_validations_total Number of validation calls by domain and outcome.
# TYPE valid8r_validations_total counter
valid8r_validations_total{domain="ip",outcome="invalid"} 2
valid8r_validations_total{domain="ip",outcome="valid"} 1
valid8r_validations_total{domain="password",outcome="invalid"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "valid8r_validations_total"))

	expected = `
# HELP valid8r_rule_failures_total Number of reported rule failures by domain and rule key.
# TYPE valid8r_rule_failures_total counter
valid8r_rule_failures_total{domain="ip",rule="allowLoopback"} 1
valid8r_rule_failures_total{domain="ip",rule="allowPrivate"} 1
valid8r_rule_failures_total{domain="password",rule="minLen"} 1
valid8r_rule_failures_total{domain="password",rule="requireUpper"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "valid8r_rule_failures_total"))
}

func TestObserver_SafeModeIsCounted(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs := metrics.MustNewObserver(reg, "test")

	v := validator.New(validator.WithObserver(obs))
	res, err := v.Username("jo", func(c *validator.UsernameConfig) { c.Safe = true })
	require.NoError(t, err)
	require.False(t, res.Valid)

	count, err := testutil.GatherAndCount(reg, "test_rule_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewObserver_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := metrics.NewObserver(reg, "dup")
	require.NoError(t, err)

	_, err = metrics.NewObserver(reg, "dup")
	assert.ErrorIs(t, err, metrics.ErrRegisterCollector)

	assert.Panics(t, func() { metrics.MustNewObserver(reg, "dup") })
}
