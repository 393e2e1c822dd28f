package validator

import (
	"fmt"
	"strings"
)

// Policy selects which recorded failures survive a validation run.
type Policy string

const (
	// ThrowFirst keeps only the first failing rule.
	ThrowFirst Policy = "throw-first"
	// ThrowLast keeps only the most recent failing rule.
	ThrowLast Policy = "throw-last"
	// ThrowAll keeps every failing rule.
	ThrowAll Policy = "throw-all"
)

// ParsePolicy converts a textual policy name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.TrimSpace(strings.ToLower(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known policies.
func (p Policy) Valid() bool {
	switch p {
	case ThrowFirst, ThrowLast, ThrowAll:
		return true
	}
	return false
}

// orDefault treats the zero policy as ThrowAll, the builtin default.
func (p Policy) orDefault() Policy {
	if p == "" {
		return ThrowAll
	}
	return p
}

func (p Policy) String() string {
	return string(p)
}

// UnmarshalText implements encoding.TextUnmarshaler so policies can be read
// from environment variables.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
