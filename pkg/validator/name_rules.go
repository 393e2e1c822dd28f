package validator

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// NameConfig configures ValidateName.
type NameConfig struct {
	Common `yaml:",inline"`

	OnlyFirst           bool `yaml:"onlyFirst" json:"onlyFirst" env:"ONLY_FIRST"`
	FirstLast           bool `yaml:"firstLast" json:"firstLast" env:"FIRST_LAST"`
	FullNameWithMiddle  bool `yaml:"fullNameWithMiddle" json:"fullNameWithMiddle" env:"FULL_NAME_WITH_MIDDLE"`
	NoSpChars           bool `yaml:"noSpChars" json:"noSpChars" env:"NO_SP_CHARS"`
	MinLen              int  `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen              int  `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	MinLenPerWord       int  `yaml:"minLenPerWord" json:"minLenPerWord" env:"MIN_LEN_PER_WORD" validate:"gte=0"`
	MaxLenPerWord       int  `yaml:"maxLenPerWord" json:"maxLenPerWord" env:"MAX_LEN_PER_WORD" validate:"gte=0,gtefield=MinLenPerWord"`
	AllowNumbers        bool `yaml:"allowNumbers" json:"allowNumbers" env:"ALLOW_NUMBERS"`
	ProperCapitalized   bool `yaml:"properCapitalized" json:"properCapitalized" env:"PROPER_CAPITALIZED"`
	NoLeadingSpaces     bool `yaml:"noLeadingSpaces" json:"noLeadingSpaces" env:"NO_LEADING_SPACES"`
	NoTrailingSpaces    bool `yaml:"noTrailingSpaces" json:"noTrailingSpaces" env:"NO_TRAILING_SPACES"`
	NoConsecutiveSpaces bool `yaml:"noConsecutiveSpaces" json:"noConsecutiveSpaces" env:"NO_CONSECUTIVE_SPACES"`
}

func (c NameConfig) clone() NameConfig {
	c.Common = c.Common.clone()
	return c
}

// ValidateName checks a personal name. Lengths are counted in characters of
// the raw value; word and content checks run on the trimmed value.
func ValidateName(name string, cfg NameConfig) (Result, error) {
	return Apply(cfg.options(DomainName), nameRules(name, cfg)...)
}

func nameRules(name string, cfg NameConfig) []Rule {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)

	words := strings.Fields(trimmed)
	if len(words) == 0 {
		words = []string{""}
	}

	return []Rule{
		{
			Key:     "minLen",
			Check:   func() bool { return length >= cfg.MinLen },
			Message: "Name should be at least {minLen} characters long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return length <= cfg.MaxLen },
			Message: "Name must not exceed {maxLen} characters.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		{
			Key:     "onlyFirst",
			Check:   func() bool { return !cfg.OnlyFirst || len(words) <= 1 },
			Message: "Only a first name is allowed.",
		},
		{
			Key:     "firstLast",
			Check:   func() bool { return !cfg.FirstLast || len(words) >= 2 },
			Message: "Name must include both first and last names.",
		},
		{
			Key:     "fullNameWithMiddle",
			Check:   func() bool { return !cfg.FullNameWithMiddle || len(words) >= 3 },
			Message: "Name must include first, middle and last name.",
		},
		{
			Key:     "noSpChars",
			Check:   func() bool { return !cfg.NoSpChars || !specialCharRegex.MatchString(trimmed) },
			Message: "Name should not contain any special characters.",
		},
		{
			Key: "minLenPerWord",
			Check: func() bool {
				return !slices.ContainsFunc(words, func(w string) bool {
					return utf8.RuneCountInString(w) < cfg.MinLenPerWord
				})
			},
			Message: "Each word must be at least {minLenPerWord} characters long.",
			Values:  map[string]any{"minLenPerWord": cfg.MinLenPerWord},
		},
		{
			Key: "maxLenPerWord",
			Check: func() bool {
				return !slices.ContainsFunc(words, func(w string) bool {
					return utf8.RuneCountInString(w) > cfg.MaxLenPerWord
				})
			},
			Message: "Each word must not exceed {maxLenPerWord} characters.",
			Values:  map[string]any{"maxLenPerWord": cfg.MaxLenPerWord},
		},
		{
			Key:     "allowNumbers",
			Check:   func() bool { return cfg.AllowNumbers || !digitRegex.MatchString(trimmed) },
			Message: "Name should not contain numbers.",
		},
		{
			Key: "properCapitalized",
			Check: func() bool {
				return !cfg.ProperCapitalized || !slices.ContainsFunc(words, func(w string) bool {
					return !IsProperlyCapitalized(w)
				})
			},
			Message: "Each word must be properly capitalized.",
		},
		{
			Key:     "noLeadingSpaces",
			Check:   func() bool { return !cfg.NoLeadingSpaces || !strings.HasPrefix(name, " ") },
			Message: "Name should not have leading spaces.",
		},
		{
			Key:     "noTrailingSpaces",
			Check:   func() bool { return !cfg.NoTrailingSpaces || !strings.HasSuffix(name, " ") },
			Message: "Name should not have trailing spaces.",
		},
		{
			Key:     "noConsecutiveSpaces",
			Check:   func() bool { return !cfg.NoConsecutiveSpaces || !consecutiveSpacesRegex.MatchString(trimmed) },
			Message: "Name should not contain consecutive spaces.",
		},
	}
}
