package validator

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// Messages maps a rule key to a message template. Templates may contain
// {placeholder} tokens that are replaced with runtime values.
type Messages map[string]string

// Clone returns a copy of m.
func (m Messages) Clone() Messages {
	return maps.Clone(m)
}

// Merge returns a new set where every template in over replaces the one in m.
// Neither input is modified.
func (m Messages) Merge(over Messages) Messages {
	if len(m) == 0 && len(over) == 0 {
		return m.Clone()
	}
	merged := make(Messages, len(m)+len(over))
	maps.Copy(merged, m)
	maps.Copy(merged, over)
	return merged
}

// Regex to find named placeholders in the form {name}
var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// Format substitutes every {name} token in tmpl with the stringified value of
// values[name]. Tokens without a value are kept verbatim. Substitution is a
// single pass over tmpl, so braces inside substituted values are left alone.
func Format(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := values[name]; ok {
			return stringify(val)
		}
		return match
	})
}

// Resolve picks the override template for key, falling back to the builtin
// template, and formats it with values.
func Resolve(key, fallback string, overrides Messages, values map[string]any) string {
	tmpl := fallback
	if override, ok := overrides[key]; ok {
		tmpl = override
	}
	return Format(tmpl, values)
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
