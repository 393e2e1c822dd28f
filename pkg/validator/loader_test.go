package validator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KushalwithK/valid8r/pkg/validator"
)

func TestSetDefaults_PartialMerge(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.SetDefaults(map[validator.Domain]map[string]any{
		validator.DomainEmail: {"allowedDomains": []string{"*.com"}},
		validator.DomainName:  {"minLen": 2, "throwErrorsAs": "throw-first"},
	}, nil)
	require.NoError(t, err)

	email := v.EmailConfig()
	assert.Equal(t, []string{"*.com"}, email.AllowedDomains)
	assert.Equal(t, 254, email.MaxLen, "absent options keep their value")
	assert.True(t, email.NoSpChars)

	name := v.NameConfig()
	assert.Equal(t, 2, name.MinLen)
	assert.Equal(t, validator.ThrowFirst, name.ThrowErrorsAs)
	assert.Equal(t, 99, name.MaxLen)

	res, err := v.Email("a@b.com")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	_, err = v.Email("a@b.org")
	require.Error(t, err)
	assert.Equal(t, []string{"allowedDomains"}, validator.ExtractReport(err).Rules())
}

func TestSetDefaults_CharSetOptions(t *testing.T) {
	t.Parallel()

	v := validator.New()

	require.NoError(t, v.SetDefaults(map[validator.Domain]map[string]any{
		validator.DomainPassword: {"requireSpChars": []any{"@", "#"}},
		validator.DomainAddress:  {"allowedSpChars": false},
	}, nil))

	assert.Equal(t, validator.CharList("@", "#"), v.PasswordConfig().RequireSpChars)
	assert.Equal(t, validator.CharFlag(false), v.AddressConfig().AllowedSpChars)

	require.NoError(t, v.SetDefaults(map[validator.Domain]map[string]any{
		validator.DomainPassword: {"requireSpChars": validator.CharFlag(true)},
	}, nil))
	assert.Equal(t, validator.CharFlag(true), v.PasswordConfig().RequireSpChars)
}

func TestSetDefaults_Messages(t *testing.T) {
	t.Parallel()

	v := validator.New()

	err := v.SetDefaults(
		map[validator.Domain]map[string]any{
			validator.DomainPassword: {
				"messages": map[string]any{
					"minLen":       "Use {minLen} or more characters.",
					"requireUpper": "Add a capital letter.",
				},
			},
		},
		map[validator.Domain]validator.Messages{
			validator.DomainPassword: {"requireUpper": "Capital letter needed."},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, validator.Messages{
		"minLen":       "Use {minLen} or more characters.",
		"requireUpper": "Capital letter needed.",
	}, v.PasswordConfig().Messages)

	res, err := v.Password("pass", func(c *validator.PasswordConfig) { c.Safe = true })
	require.NoError(t, err)
	assert.Equal(t, "Use 8 or more characters.", res.Errors.Get("minLen"))
	assert.Equal(t, "Capital letter needed.", res.Errors.Get("requireUpper"))

	require.NoError(t, v.SetDefaults(nil, map[validator.Domain]validator.Messages{
		validator.DomainPassword: {"minLen": "Longer, please."},
	}))
	assert.Equal(t, "Longer, please.", v.PasswordConfig().Messages["minLen"])
	assert.Equal(t, "Capital letter needed.", v.PasswordConfig().Messages["requireUpper"], "earlier overrides survive")
}

func TestSetDefaults_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  map[validator.Domain]map[string]any
	}{
		{"unknown option", map[validator.Domain]map[string]any{validator.DomainEmail: {"maxLength": 10}}},
		{"unknown domain", map[validator.Domain]map[string]any{"zipcode": {"minLen": 1}}},
		{"wrong type", map[validator.Domain]map[string]any{validator.DomainEmail: {"minLen": "six"}}},
		{"bad policy", map[validator.Domain]map[string]any{validator.DomainIP: {"throwErrorsAs": "throw-some"}}},
		{"min above max", map[validator.Domain]map[string]any{validator.DomainName: {"minLen": 100}}},
		{"negative length", map[validator.Domain]map[string]any{validator.DomainUsername: {"minLen": -1}}},
		{"bad ip version", map[validator.Domain]map[string]any{validator.DomainIP: {"version": "v5"}}},
		{"bad date format", map[validator.Domain]map[string]any{validator.DomainDate: {"format": "YYYY/MM/DD"}}},
		{"bad custom regex", map[validator.Domain]map[string]any{validator.DomainUsername: {"customRegex": "[a-"}}},
		{"empty disposable", map[validator.Domain]map[string]any{validator.DomainEmail: {"customDisposables": []string{""}}}},
		{"messages not a map", map[validator.Domain]map[string]any{validator.DomainEmail: {"messages": "nope"}}},
		{"message not a string", map[validator.Domain]map[string]any{validator.DomainEmail: {"messages": map[string]any{"format": 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()

			err := v.SetDefaults(tt.cfg, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidConfig)

			assert.Equal(t, validator.DefaultEmailConfig(), v.EmailConfig())
			assert.Equal(t, validator.DefaultNameConfig(), v.NameConfig())
			assert.Equal(t, validator.DefaultIPConfig(), v.IPConfig())
			assert.Equal(t, validator.DefaultUsernameConfig(), v.UsernameConfig())
			assert.Equal(t, validator.DefaultDateConfig(), v.DateConfig())
		})
	}
}

func TestSetDefaults_AtomicAcrossDomains(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.SetDefaults(map[validator.Domain]map[string]any{
		validator.DomainEmail: {"minLen": 3},
		validator.DomainIP:    {"version": "v7"},
	}, nil)
	require.ErrorIs(t, err, validator.ErrInvalidConfig)
	assert.Equal(t, 6, v.EmailConfig().MinLen, "valid domains are not applied when another fails")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "defaults.yaml", `
email:
  allowedDomains: ["*.com"]
  messages:
    allowedDomains: "Only {allowedDomains} addresses are accepted."
password:
  minLen: 12
  requireSpChars: ["!", "?"]
ip:
  throwErrorsAs: throw-first
  safe: true
`)
		v := validator.New()
		require.NoError(t, v.LoadFile(context.Background(), path))

		assert.Equal(t, []string{"*.com"}, v.EmailConfig().AllowedDomains)
		assert.Equal(t, 12, v.PasswordConfig().MinLen)
		assert.Equal(t, validator.CharList("!", "?"), v.PasswordConfig().RequireSpChars)
		assert.Equal(t, validator.ThrowFirst, v.IPConfig().ThrowErrorsAs)
		assert.True(t, v.IPConfig().Safe)

		_, err := v.Email("a@b.org")
		require.Error(t, err)
		assert.Equal(t, "Only *.com addresses are accepted.", validator.ExtractReport(err).Get("allowedDomains"))
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "defaults.json", `{
			"username": {"minLen": 5, "allowSpecialChars": ["."]},
			"date": {"format": "DD-MM-YYYY"}
		}`)
		v := validator.New()
		require.NoError(t, v.LoadFile(context.Background(), path))

		assert.Equal(t, 5, v.UsernameConfig().MinLen)
		assert.Equal(t, validator.CharList("."), v.UsernameConfig().AllowSpecialChars)
		assert.Equal(t, validator.LayoutDMY, v.DateConfig().Format)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "defaults.toml", "[email]\n")
		err := validator.New().LoadFile(context.Background(), path)
		assert.ErrorIs(t, err, validator.ErrUnsupportedFile)
	})

	t.Run("missing file", func(t *testing.T) {
		err := validator.New().LoadFile(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, validator.ErrFailedToReadFile)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeFile(t, "defaults.json", `{"email": `)
		err := validator.New().LoadFile(context.Background(), path)
		assert.ErrorIs(t, err, validator.ErrFailedToParseFile)
	})

	t.Run("unknown domain", func(t *testing.T) {
		path := writeFile(t, "defaults.yaml", "zipcode:\n  minLen: 5\n")
		err := validator.New().LoadFile(context.Background(), path)
		assert.ErrorIs(t, err, validator.ErrFailedToParseFile)
		assert.ErrorIs(t, err, validator.ErrUnknownDomain)
	})

	t.Run("domain is not a mapping", func(t *testing.T) {
		path := writeFile(t, "defaults.yaml", "email: true\n")
		err := validator.New().LoadFile(context.Background(), path)
		assert.ErrorIs(t, err, validator.ErrFailedToParseFile)
	})

	t.Run("invalid values leave defaults untouched", func(t *testing.T) {
		path := writeFile(t, "defaults.yml", "email:\n  minLen: 500\n")
		v := validator.New()
		err := v.LoadFile(context.Background(), path)
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		assert.Equal(t, 6, v.EmailConfig().MinLen)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := writeFile(t, "defaults.yaml", "email:\n  minLen: 3\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		v := validator.New()
		err := v.LoadFile(ctx, path)
		assert.ErrorIs(t, err, validator.ErrLoadingFileCancelled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 6, v.EmailConfig().MinLen)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VALID8R_TEST_EMAIL_MIN_LEN", "3")
	t.Setenv("VALID8R_TEST_EMAIL_ALLOWED_DOMAINS", "*.com,*.io")
	t.Setenv("VALID8R_TEST_PASSWORD_REQUIRE_SP_CHARS", "!,?")
	t.Setenv("VALID8R_TEST_NAME_THROW_ERRORS_AS", "throw-last")
	t.Setenv("VALID8R_TEST_IP_SAFE", "true")

	v := validator.New()
	require.NoError(t, v.LoadEnv("VALID8R_TEST_"))

	email := v.EmailConfig()
	assert.Equal(t, 3, email.MinLen)
	assert.Equal(t, 254, email.MaxLen)
	assert.Equal(t, []string{"*.com", "*.io"}, email.AllowedDomains)
	assert.Equal(t, validator.CharList("!", "?"), v.PasswordConfig().RequireSpChars)
	assert.Equal(t, validator.ThrowLast, v.NameConfig().ThrowErrorsAs)
	assert.True(t, v.IPConfig().Safe)
	assert.Equal(t, validator.DefaultUsernameConfig(), v.UsernameConfig())
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("VALID8R_BAD_EMAIL_MIN_LEN", "six")

		v := validator.New()
		err := v.LoadEnv("VALID8R_BAD_")
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		assert.Equal(t, 6, v.EmailConfig().MinLen)
	})

	t.Run("fails validation", func(t *testing.T) {
		t.Setenv("VALID8R_RANGE_IP_VERSION", "v5")

		v := validator.New()
		err := v.LoadEnv("VALID8R_RANGE_")
		assert.ErrorIs(t, err, validator.ErrInvalidConfig)
		assert.Equal(t, validator.IPAny, v.IPConfig().Version)
	})
}
