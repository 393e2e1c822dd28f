package validator

import (
	"strings"
	"unicode/utf8"
)

// PasswordConfig configures ValidatePassword.
type PasswordConfig struct {
	Common `yaml:",inline"`

	MinLen              int     `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen              int     `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	RequireSpChars      CharSet `yaml:"requireSpChars" json:"requireSpChars" env:"REQUIRE_SP_CHARS"`
	RequireNum          bool    `yaml:"requireNum" json:"requireNum" env:"REQUIRE_NUM"`
	RequireUpper        bool    `yaml:"requireUpper" json:"requireUpper" env:"REQUIRE_UPPER"`
	RequireLower        bool    `yaml:"requireLower" json:"requireLower" env:"REQUIRE_LOWER"`
	NoConsecutiveSpaces bool    `yaml:"noConsecutiveSpaces" json:"noConsecutiveSpaces" env:"NO_CONSECUTIVE_SPACES"`
}

func (c PasswordConfig) clone() PasswordConfig {
	c.Common = c.Common.clone()
	c.RequireSpChars = c.RequireSpChars.clone()
	return c
}

// ValidatePassword checks password composition.
func ValidatePassword(password string, cfg PasswordConfig) (Result, error) {
	return Apply(cfg.options(DomainPassword), passwordRules(password, cfg)...)
}

func passwordRules(password string, cfg PasswordConfig) []Rule {
	length := utf8.RuneCountInString(password)

	spRule := Rule{
		Key: "requireSpChars",
		Check: func() bool {
			return !cfg.RequireSpChars.Enabled || specialCharRegex.MatchString(password)
		},
		Message: "Password must include at least one special character (excluding spaces).",
	}
	if sp := cfg.RequireSpChars; sp.IsList() {
		spRule.Check = func() bool { return patterns.match(`[`+sp.class()+`]`, password) }
		spRule.Message = "Password must include at least one of the following special characters: {allowedSpChars}"
		spRule.Values = map[string]any{"allowedSpChars": strings.Join(sp.Chars, ", ")}
	}

	return []Rule{
		{
			Key:     "minLen",
			Check:   func() bool { return length >= cfg.MinLen },
			Message: "Password must be at least {minLen} characters long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return length <= cfg.MaxLen },
			Message: "Password must not exceed {maxLen} characters.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		spRule,
		{
			Key:     "requireNum",
			Check:   func() bool { return !cfg.RequireNum || digitRegex.MatchString(password) },
			Message: "Password must include at least one numeric character.",
		},
		{
			Key:     "requireUpper",
			Check:   func() bool { return !cfg.RequireUpper || uppercaseRegex.MatchString(password) },
			Message: "Password must include at least one uppercase letter.",
		},
		{
			Key:     "requireLower",
			Check:   func() bool { return !cfg.RequireLower || lowercaseRegex.MatchString(password) },
			Message: "Password must include at least one lowercase letter.",
		},
		{
			Key:     "noConsecutiveSpaces",
			Check:   func() bool { return !cfg.NoConsecutiveSpaces || !consecutiveSpacesRegex.MatchString(password) },
			Message: "Password must not contain consecutive spaces.",
		},
	}
}
