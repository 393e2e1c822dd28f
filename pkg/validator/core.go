package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// Domain names one of the supported input families.
type Domain string

const (
	DomainName     Domain = "name"
	DomainEmail    Domain = "email"
	DomainPhone    Domain = "phone"
	DomainAddress  Domain = "address"
	DomainPassword Domain = "password"
	DomainIP       Domain = "ip"
	DomainUsername Domain = "username"
	DomainDate     Domain = "date"
	DomainCard     Domain = "card"
)

// Domains returns every supported domain in a stable order.
func Domains() []Domain {
	return []Domain{
		DomainName, DomainEmail, DomainPhone, DomainAddress, DomainPassword,
		DomainIP, DomainUsername, DomainDate, DomainCard,
	}
}

// ParseDomain converts a textual domain name into a Domain.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// Err returns the sentinel error raised when validation in this domain fails.
func (d Domain) Err() error {
	switch d {
	case DomainName:
		return ErrNameValidationFailed
	case DomainEmail:
		return ErrEmailValidationFailed
	case DomainPhone:
		return ErrPhoneValidationFailed
	case DomainAddress:
		return ErrAddressValidationFailed
	case DomainPassword:
		return ErrPasswordValidationFailed
	case DomainIP:
		return ErrIPValidationFailed
	case DomainUsername:
		return ErrUsernameValidationFailed
	case DomainDate:
		return ErrDateValidationFailed
	case DomainCard:
		return ErrCardValidationFailed
	}
	return ErrValidationFailed
}

// ValidationError is a single failed rule together with its resolved message.
type ValidationError struct {
	Rule    string
	Message string
}

// Report is the keyed set of failures produced by one validation call.
// Keys are unique; the slice order is the order in which rules first failed.
type Report []ValidationError

// set records message under rule, replacing the message in place when the
// rule already failed earlier in the run.
func (r *Report) set(rule, message string) {
	for i := range *r {
		if (*r)[i].Rule == rule {
			(*r)[i].Message = message
			return
		}
	}
	*r = append(*r, ValidationError{Rule: rule, Message: message})
}

func (r Report) Has(rule string) bool {
	for _, e := range r {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

// Get returns the message recorded for rule, or an empty string.
func (r Report) Get(rule string) string {
	for _, e := range r {
		if e.Rule == rule {
			return e.Message
		}
	}
	return ""
}

// Rules returns the failed rule keys in report order.
func (r Report) Rules() []string {
	rules := make([]string, 0, len(r))
	for _, e := range r {
		rules = append(rules, e.Rule)
	}
	return rules
}

func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// Map returns the report as a plain rule → message map.
func (r Report) Map() map[string]string {
	if r == nil {
		return nil
	}
	m := make(map[string]string, len(r))
	for _, e := range r {
		m[e.Rule] = e.Message
	}
	return m
}

// MarshalJSON encodes the report as a JSON object preserving report order.
func (r Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Rule)
		if err != nil {
			return nil, err
		}
		msg, err := json.Marshal(e.Message)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msg)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the outcome of a validation call that did not raise.
// Errors is nil when Valid is true.
type Result struct {
	Valid  bool   `json:"valid"`
	Errors Report `json:"errors"`
}

// Rule represents a single validation rule. Check reports whether the input
// passes; when it does not, Message is resolved against the configured
// overrides and Values, and recorded under Key.
type Rule struct {
	Key     string
	Check   func() bool
	Message string
	Values  map[string]any
}

// Options carries the cross-cutting settings of one pipeline run.
type Options struct {
	Domain   Domain
	Policy   Policy
	Safe     bool
	Messages Messages
}

// Apply executes every rule in declaration order and finalizes the report
// according to the configured policy. Rules are never short-circuited.
func Apply(opts Options, rules ...Rule) (Result, error) {
	acc := NewAccumulator(opts.Policy, opts.Safe)

	for _, rule := range rules {
		if rule.Check == nil || rule.Check() {
			continue
		}
		acc.Record(rule.Key, Resolve(rule.Key, rule.Message, opts.Messages, rule.Values))
	}

	return acc.Finalize(opts.Domain)
}

// Common holds the options shared by every domain configuration.
type Common struct {
	ThrowErrorsAs Policy   `yaml:"throwErrorsAs" json:"throwErrorsAs" env:"THROW_ERRORS_AS" validate:"omitempty,oneof=throw-first throw-last throw-all"`
	Safe          bool     `yaml:"safe" json:"safe" env:"SAFE"`
	Messages      Messages `yaml:"-" json:"messages,omitempty"`
}

// SetMessage overrides the template of a single rule.
func (c *Common) SetMessage(rule, template string) {
	if c.Messages == nil {
		c.Messages = make(Messages)
	}
	c.Messages[rule] = template
}

func (c Common) options(d Domain) Options {
	return Options{
		Domain:   d,
		Policy:   c.ThrowErrorsAs,
		Safe:     c.Safe,
		Messages: c.Messages,
	}
}

func (c Common) clone() Common {
	c.Messages = maps.Clone(c.Messages)
	return c
}

func defaultCommon() Common {
	return Common{ThrowErrorsAs: ThrowAll}
}

// ExtractReport returns the report carried by a validation error, or nil.
func ExtractReport(err error) Report {
	if err == nil {
		return nil
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr.Report
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verr *Error
	return errors.As(err, &verr)
}
