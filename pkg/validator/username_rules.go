package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	underscoreRegex = regexp.MustCompile(`_`)
	spaceRegex      = regexp.MustCompile(`\s`)
)

// UsernameConfig configures ValidateUsername.
type UsernameConfig struct {
	Common `yaml:",inline"`

	MinLen            int     `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen            int     `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	AllowNumbers      bool    `yaml:"allowNumbers" json:"allowNumbers" env:"ALLOW_NUMBERS"`
	AllowUnderscores  bool    `yaml:"allowUnderscores" json:"allowUnderscores" env:"ALLOW_UNDERSCORES"`
	AllowDashes       bool    `yaml:"allowDashes" json:"allowDashes" env:"ALLOW_DASHES"`
	AllowSpecialChars CharSet `yaml:"allowSpecialChars" json:"allowSpecialChars" env:"ALLOW_SPECIAL_CHARS"`
	AllowSpaces       bool    `yaml:"allowSpaces" json:"allowSpaces" env:"ALLOW_SPACES"`
	AllowUppercase    bool    `yaml:"allowUppercase" json:"allowUppercase" env:"ALLOW_UPPERCASE"`
	// CustomRegex is an RE2 pattern the whole username must match.
	CustomRegex string `yaml:"customRegex" json:"customRegex,omitempty" env:"CUSTOM_REGEX" validate:"omitempty,regexp"`
}

func (c UsernameConfig) clone() UsernameConfig {
	c.Common = c.Common.clone()
	c.AllowSpecialChars = c.AllowSpecialChars.clone()
	return c
}

// allowedPattern builds the expression a username must fully match, one
// character range per enabled option. Lower case letters are always allowed.
func (c UsernameConfig) allowedPattern() string {
	var b strings.Builder
	b.WriteString("^[")
	if c.AllowUppercase {
		b.WriteString("A-Z")
	}
	b.WriteString("a-z")
	if c.AllowNumbers {
		b.WriteString("0-9")
	}
	if c.AllowUnderscores {
		b.WriteString("_")
	}
	if c.AllowDashes {
		b.WriteString(`\-`)
	}
	if c.AllowSpaces {
		b.WriteString(`\s`)
	}
	switch sp := c.AllowSpecialChars; {
	case sp.IsList():
		b.WriteString(sp.class())
	case sp.Enabled:
		b.WriteString(`\W`)
	}
	b.WriteString("]+$")
	return b.String()
}

// ValidateUsername checks a username. Each character option both extends the
// allowed pattern and flags the characters it forbids.
func ValidateUsername(username string, cfg UsernameConfig) (Result, error) {
	return Apply(cfg.options(DomainUsername), usernameRules(username, cfg)...)
}

func usernameRules(username string, cfg UsernameConfig) []Rule {
	length := utf8.RuneCountInString(username)
	sp := cfg.AllowSpecialChars

	return []Rule{
		{
			Key:     "minLen",
			Check:   func() bool { return length >= cfg.MinLen },
			Message: "Username must be at least {minLen} characters long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return length <= cfg.MaxLen },
			Message: "Username must not exceed {maxLen} characters.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		{
			Key:     "allowUppercase",
			Check:   func() bool { return cfg.AllowUppercase || !uppercaseRegex.MatchString(username) },
			Message: "Username cannot include uppercase letters.",
		},
		{
			Key:     "allowNumbers",
			Check:   func() bool { return cfg.AllowNumbers || !digitRegex.MatchString(username) },
			Message: "Username contains invalid numbers.",
		},
		{
			Key:     "allowUnderscores",
			Check:   func() bool { return cfg.AllowUnderscores || !underscoreRegex.MatchString(username) },
			Message: "Username contains invalid underscores.",
		},
		{
			Key:     "allowDashes",
			Check:   func() bool { return cfg.AllowDashes || !strings.Contains(username, "-") },
			Message: "Username contains invalid dashes.",
		},
		{
			Key:     "allowSpaces",
			Check:   func() bool { return cfg.AllowSpaces || !spaceRegex.MatchString(username) },
			Message: "Username cannot include spaces.",
		},
		{
			Key: "allowSpecialChars",
			Check: func() bool {
				if sp.Enabled && !sp.IsList() {
					return true
				}
				return !patterns.match(`[^A-Za-z0-9_\-\s`+sp.class()+`]`, username)
			},
			Message: "Username cannot contain special characters.",
		},
		{
			Key:     "format",
			Check:   func() bool { return patterns.match(cfg.allowedPattern(), username) },
			Message: "Username's format is invalid!",
		},
		{
			Key:     "customRegex",
			Check:   func() bool { return cfg.CustomRegex == "" || patterns.match(cfg.CustomRegex, username) },
			Message: "Username does not match the required format.",
			Values:  map[string]any{"format": cfg.CustomRegex},
		},
	}
}
