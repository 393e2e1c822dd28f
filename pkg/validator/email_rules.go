package validator

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const emailSpecialChars = `!#$%^&*()+=\[\]{};':"\\|,<>/?`

var (
	emailFormatRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	emailSpecialCharRegex = regexp.MustCompile(`[` + emailSpecialChars + `]`)
	emailEdgeRegex        = regexp.MustCompile(`^[` + emailSpecialChars + `@.]|[` + emailSpecialChars + `@.]$`)
	emailBeforeAtRegex    = regexp.MustCompile(`([` + emailSpecialChars + `@.])@`)
	emailAfterAtRegex     = regexp.MustCompile(`@([` + emailSpecialChars + `@.])`)
	leadingDigitRegex     = regexp.MustCompile(`^\d`)
	trailingDigitRegex    = regexp.MustCompile(`\d$`)

	// Known disposable mailbox providers
	disposableDomains = []string{
		"10minutemail.com",
		"mailinator.com",
		"temp-mail.org",
		"guerrillamail.com",
		"yopmail.com",
		"throwawaymail.com",
		"trashmail.com",
		"getnada.com",
		"maildrop.cc",
		"fakeinbox.com",
		"mintemail.com",
		"moakt.com",
		"mytrashmail.com",
		"spambog.com",
		"mailcatch.com",
		"dispostable.com",
		"spamgourmet.com",
		"temporary-mail.net",
		"mailsac.com",
		"mail.tm",
	}
)

// EmailConfig configures ValidateEmail.
type EmailConfig struct {
	Common `yaml:",inline"`

	NoSpChars         bool     `yaml:"noSpChars" json:"noSpChars" env:"NO_SP_CHARS"`
	StartWithNum      bool     `yaml:"startWithNum" json:"startWithNum" env:"START_WITH_NUM"`
	EndWithNum        bool     `yaml:"endWithNum" json:"endWithNum" env:"END_WITH_NUM"`
	MinLen            int      `yaml:"minLen" json:"minLen" env:"MIN_LEN" validate:"gte=0"`
	MaxLen            int      `yaml:"maxLen" json:"maxLen" env:"MAX_LEN" validate:"gte=0,gtefield=MinLen"`
	AllowedDomains    []string `yaml:"allowedDomains" json:"allowedDomains" env:"ALLOWED_DOMAINS"`
	CustomDisposables []string `yaml:"customDisposables" json:"customDisposables" env:"CUSTOM_DISPOSABLES" validate:"dive,required"`
	AllowDisposables  bool     `yaml:"allowDisposables" json:"allowDisposables" env:"ALLOW_DISPOSABLES"`
	NoLeading         bool     `yaml:"noLeading" json:"noLeading" env:"NO_LEADING"`
	NoTrailing        bool     `yaml:"noTrailing" json:"noTrailing" env:"NO_TRAILING"`
	CaseSensitive     bool     `yaml:"caseSensitive" json:"caseSensitive" env:"CASE_SENSITIVE"`
}

func (c EmailConfig) clone() EmailConfig {
	c.Common = c.Common.clone()
	c.AllowedDomains = slices.Clone(c.AllowedDomains)
	c.CustomDisposables = slices.Clone(c.CustomDisposables)
	return c
}

// ValidateEmail checks an email address.
func ValidateEmail(email string, cfg EmailConfig) (Result, error) {
	return Apply(cfg.options(DomainEmail), emailRules(email, cfg)...)
}

func emailRules(email string, cfg EmailConfig) []Rule {
	length := utf8.RuneCountInString(email)
	domain := emailDomain(email)

	edge := emailEdgeRegex.FindString(email)
	beforeAt := emailBeforeAtRegex.FindStringSubmatch(email)
	afterAt := emailAfterAtRegex.FindStringSubmatch(email)
	special := emailSpecialCharRegex.FindString(email)

	return []Rule{
		// noSpChars is reported by four detectors sharing one key.
		{
			Key:     "noSpChars",
			Check:   func() bool { return !cfg.NoSpChars || edge == "" },
			Message: "The email must not start or end with special characters. Found: '{found}'.",
			Values:  map[string]any{"found": edge},
		},
		{
			Key:     "noSpChars",
			Check:   func() bool { return !cfg.NoSpChars || beforeAt == nil },
			Message: "The email must not contain special characters immediately before '@'. Found: '{found}'.",
			Values:  map[string]any{"found": submatch(beforeAt)},
		},
		{
			Key:     "noSpChars",
			Check:   func() bool { return !cfg.NoSpChars || afterAt == nil },
			Message: "The email must not contain special characters immediately after '@'. Found: '{found}'.",
			Values:  map[string]any{"found": submatch(afterAt)},
		},
		{
			Key:     "noSpChars",
			Check:   func() bool { return !cfg.NoSpChars || special == "" },
			Message: "Email should not contain any sp. characters other than {allowedSpChars}, found {encounteredSpChar}.",
			Values:  map[string]any{"allowedSpChars": ". and @", "encounteredSpChar": special},
		},
		{
			Key:     "format",
			Check:   func() bool { return emailFormatRegex.MatchString(email) },
			Message: "Invalid Email Format.",
		},
		{
			Key:     "minLen",
			Check:   func() bool { return length >= cfg.MinLen },
			Message: "Email must be at least {minLen} characters long.",
			Values:  map[string]any{"minLen": cfg.MinLen},
		},
		{
			Key:     "maxLen",
			Check:   func() bool { return length <= cfg.MaxLen },
			Message: "Email must not exceed {maxLen} characters.",
			Values:  map[string]any{"maxLen": cfg.MaxLen},
		},
		{
			Key:     "startWithNum",
			Check:   func() bool { return cfg.StartWithNum || !leadingDigitRegex.MatchString(email) },
			Message: "Email should not start with a number.",
		},
		{
			Key:     "endWithNum",
			Check:   func() bool { return cfg.EndWithNum || !trailingDigitRegex.MatchString(email) },
			Message: "Email should not end with a number.",
		},
		{
			Key:     "allowedDomains",
			Check:   func() bool { return len(cfg.AllowedDomains) > 0 },
			Message: "No Domain Names are allowed, either allow all or select domains",
		},
		{
			Key:     "allowedDomains",
			Check: func() bool {
				return len(cfg.AllowedDomains) == 0 || domain == "" || domainAllowed(domain, cfg.AllowedDomains)
			},
			Message: "Email's domain must be one of: {allowedDomains}",
			Values:  map[string]any{"allowedDomains": cfg.AllowedDomains},
		},
		{
			Key: "allowDisposables",
			Check: func() bool {
				return cfg.AllowDisposables || domain == "" ||
					slices.Contains(cfg.AllowedDomains, domain) ||
					!isDisposable(domain, cfg.CustomDisposables)
			},
			Message: "Disposable email addresses are not allowed.",
		},
		{
			Key:     "noLeading",
			Check:   func() bool { return !cfg.NoLeading || !strings.HasPrefix(email, " ") },
			Message: "Email should not have leading spaces.",
		},
		{
			Key:     "noTrailing",
			Check:   func() bool { return !cfg.NoTrailing || !strings.HasSuffix(email, " ") },
			Message: "Email should not have trailing spaces.",
		},
		{
			Key:     "caseSensitive",
			Check:   func() bool { return !cfg.CaseSensitive || isLower(email) },
			Message: "Email should be in lowercase.",
		},
	}
}

// emailDomain returns the lower cased segment after the first "@".
func emailDomain(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

// domainAllowed matches domain against an allow-list supporting "*",
// "*.suffix" and "prefix.*" entries.
func domainAllowed(domain string, allowed []string) bool {
	return slices.ContainsFunc(allowed, func(pattern string) bool {
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "*."):
			return strings.HasSuffix(domain, pattern[1:])
		case strings.HasSuffix(pattern, ".*"):
			return strings.HasPrefix(domain, pattern[:len(pattern)-2])
		}
		return domain == pattern
	})
}

func isDisposable(domain string, custom []string) bool {
	match := func(d string) bool { return strings.EqualFold(d, domain) }
	return slices.ContainsFunc(disposableDomains, match) || slices.ContainsFunc(custom, match)
}

func submatch(m []string) string {
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
