package validator

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

var (
	phoneSanitizeRegex    = regexp.MustCompile(`[^+\d\s]`)
	phoneCountryCodeRegex = regexp.MustCompile(`^\+\d+`)
	phoneCharsRegex       = regexp.MustCompile(`^[+\d\s\-()]+$`)
	parenthesesRegex      = regexp.MustCompile(`[()]`)
)

// CallingCodes returns every country calling code known to the phone number
// metadata, formatted as "+N" and sorted numerically.
var CallingCodes = sync.OnceValue(func() []string {
	seen := make(map[int]struct{})
	for region := range phonenumbers.GetSupportedRegions() {
		if code := phonenumbers.GetCountryCodeForRegion(region); code > 0 {
			seen[code] = struct{}{}
		}
	}

	codes := make([]int, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	slices.SortFunc(codes, cmp.Compare[int])

	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = "+" + strconv.Itoa(code)
	}
	return out
})

// PhoneConfig configures ValidatePhone.
type PhoneConfig struct {
	Common `yaml:",inline"`

	AllowDashes         bool     `yaml:"allowDashes" json:"allowDashes" env:"ALLOW_DASHES"`
	AllowParentheses    bool     `yaml:"allowParentheses" json:"allowParentheses" env:"ALLOW_PARENTHESES"`
	MinLen              int      `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen              int      `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	AllowedCountryCodes []string `yaml:"allowedCountryCodes" json:"allowedCountryCodes" env:"ALLOWED_COUNTRY_CODES" validate:"dive,required"`
	RequireCountryCode  bool     `yaml:"requireCountryCode" json:"requireCountryCode" env:"REQUIRE_COUNTRY_CODE"`
}

func (c PhoneConfig) clone() PhoneConfig {
	c.Common = c.Common.clone()
	c.AllowedCountryCodes = slices.Clone(c.AllowedCountryCodes)
	return c
}

// countryCodes expands a leading "*" entry into every known calling code.
func (c PhoneConfig) countryCodes() []string {
	if len(c.AllowedCountryCodes) > 0 && c.AllowedCountryCodes[0] == "*" {
		return CallingCodes()
	}
	return c.AllowedCountryCodes
}

// ValidatePhone checks a phone number. When a country code is required the
// number is parsed in international form; length bounds then apply to the
// national significant number and are skipped if parsing failed.
func ValidatePhone(phone string, cfg PhoneConfig) (Result, error) {
	return Apply(cfg.options(DomainPhone), phoneRules(phone, cfg)...)
}

func phoneRules(phone string, cfg PhoneConfig) []Rule {
	sanitized := phoneSanitizeRegex.ReplaceAllString(phone, "")
	allowedCodes := cfg.countryCodes()

	parsed, parseErr := phonenumbers.Parse(phone, "")
	parsedOK := parseErr == nil

	countryCode := phoneCountryCodeRegex.FindString(sanitized)
	if parsedOK {
		countryCode = "+" + strconv.Itoa(int(parsed.GetCountryCode()))
	}

	// Length is measured on the national number when it can be extracted.
	lengthKnown := true
	length := utf8.RuneCountInString(phone)
	if cfg.RequireCountryCode {
		lengthKnown = parsedOK
		if parsedOK {
			length = len(phonenumbers.GetNationalSignificantNumber(parsed))
		}
	}

	return []Rule{
		{
			Key:     "requireCountryCode",
			Check:   func() bool { return !cfg.RequireCountryCode || strings.HasPrefix(sanitized, "+") },
			Message: "Phone number must include a country code (e.g., +1, +91).",
		},
		{
			Key: "allowedCountryCodes",
			Check: func() bool {
				return !cfg.RequireCountryCode || slices.Contains(allowedCodes, countryCode)
			},
			Message: "Phone number must start with one of the allowed country codes: {allowedCountryCodes}.",
			Values:  map[string]any{"allowedCountryCodes": allowedCodes},
		},
		{
			Key:     "allowDashes",
			Check:   func() bool { return cfg.AllowDashes || !strings.Contains(phone, "-") },
			Message: "Dashes are not valid in phone number.",
		},
		{
			Key:     "allowParentheses",
			Check:   func() bool { return cfg.AllowParentheses || !parenthesesRegex.MatchString(phone) },
			Message: "Parentheses are not valid in phone number.",
		},
		{
			Key:     "format",
			Check:   func() bool { return phoneCharsRegex.MatchString(phone) },
			Message: "Phone number contains invalid characters. Only digits, spaces, dashes, and parentheses are allowed.",
		},
		{
			Key:     "minLen",
			Check:   func() bool { return !lengthKnown || length >= cfg.MinLen },
			Message: "Phone number must be at least {minLen} digits long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return !lengthKnown || length <= cfg.MaxLen },
			Message: "Phone number must not exceed {maxLen} digits.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		{
			Key: "format",
			Check: func() bool {
				return !cfg.RequireCountryCode || (parsedOK && phonenumbers.IsValidNumber(parsed))
			},
			Message: "Phone number is invalid, only spaces, digits, dashes and parentheses are allowed!",
		},
	}
}
