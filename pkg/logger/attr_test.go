package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KushalwithK/valid8r/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("defaults", slog.String("domain", "name"), slog.Int("min_len", 6))
	require.Equal(t, "defaults", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "domain", g[0].Key)
	assert.Equal(t, "min_len", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestValidationAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"domain", logger.Domain("email"), "domain", "email"},
		{"rule", logger.Rule("minLen"), "rule", "minLen"},
		{"policy", logger.Policy("throw-all"), "policy", "throw-all"},
		{"valid", logger.Valid(false), "valid", false},
		{"path", logger.Path("defaults.yaml"), "path", "defaults.yaml"},
		{"component", logger.Component("validator"), "component", "validator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestRules(t *testing.T) {
	attr := logger.Rules([]string{"minLen", "format"})
	require.Equal(t, "rules", attr.Key)
	assert.Equal(t, []string{"minLen", "format"}, attr.Value.Any())

	empty := logger.Rules(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}
