package validator

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// AddressConfig configures ValidateAddress.
type AddressConfig struct {
	Common `yaml:",inline"`

	MinLen               int     `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen               int     `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	AllowedSpChars       CharSet `yaml:"allowedSpChars" json:"allowedSpChars" env:"ALLOWED_SP_CHARS"`
	ProperCapitalization bool    `yaml:"properCapitalization" json:"properCapitalization" env:"PROPER_CAPITALIZATION"`
	NoConsecutiveSpaces  bool    `yaml:"noConsecutiveSpaces" json:"noConsecutiveSpaces" env:"NO_CONSECUTIVE_SPACES"`
}

func (c AddressConfig) clone() AddressConfig {
	c.Common = c.Common.clone()
	c.AllowedSpChars = c.AllowedSpChars.clone()
	return c
}

// ValidateAddress checks a postal address. AllowedSpChars set to false
// rejects every special character, a list rejects characters outside it and
// true accepts any.
func ValidateAddress(address string, cfg AddressConfig) (Result, error) {
	return Apply(cfg.options(DomainAddress), addressRules(address, cfg)...)
}

func addressRules(address string, cfg AddressConfig) []Rule {
	length := utf8.RuneCountInString(address)
	sp := cfg.AllowedSpChars

	return []Rule{
		{
			Key:     "minLen",
			Check:   func() bool { return length >= cfg.MinLen },
			Message: "Address must be at least {minLen} characters long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return length <= cfg.MaxLen },
			Message: "Address must not exceed {maxLen} characters.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		{
			Key:     "allowedSpChars",
			Check:   func() bool { return sp.IsList() || sp.Enabled || !specialCharRegex.MatchString(address) },
			Message: "No Special Characters are allowed!",
		},
		{
			Key: "allowedSpChars",
			Check: func() bool {
				return !sp.IsList() || !patterns.match(`[^a-zA-Z0-9\s`+sp.class()+`]`, address)
			},
			Message: "Address contains invalid characters. Only alphanumeric characters and {allowedSpChars} are allowed.",
			Values:  map[string]any{"allowedSpChars": strings.Join(sp.Chars, " or ")},
		},
		{
			Key: "properCapitalization",
			Check: func() bool {
				return !cfg.ProperCapitalization || !slices.ContainsFunc(whitespaceRegex.Split(address, -1), func(w string) bool {
					return !IsProperlyCapitalized(w)
				})
			},
			Message: "Each word in the address must be properly capitalized.",
		},
		{
			Key:     "noConsecutiveSpaces",
			Check:   func() bool { return !cfg.NoConsecutiveSpaces || !consecutiveSpacesRegex.MatchString(address) },
			Message: "Address must not contain consecutive spaces.",
		},
	}
}
