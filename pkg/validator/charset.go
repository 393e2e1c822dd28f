package validator

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CharSet is an option that is either a plain toggle or an explicit list of
// special characters. A non-nil Chars slice means the list form is in use.
type CharSet struct {
	Enabled bool
	Chars   []string
}

// CharFlag returns the toggle form of a CharSet.
func CharFlag(enabled bool) CharSet {
	return CharSet{Enabled: enabled}
}

// CharList returns the list form of a CharSet.
func CharList(chars ...string) CharSet {
	if chars == nil {
		chars = []string{}
	}
	return CharSet{Enabled: true, Chars: chars}
}

// IsList reports whether the set carries an explicit character list.
func (c CharSet) IsList() bool {
	return c.Chars != nil
}

func (c CharSet) clone() CharSet {
	c.Chars = slices.Clone(c.Chars)
	return c
}

// class returns the list characters escaped for use inside a regexp
// character class.
func (c CharSet) class() string {
	var b strings.Builder
	for _, s := range c.Chars {
		for _, r := range s {
			if r < 0x80 && !isASCIIAlnum(r) && r != ' ' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c CharSet) String() string {
	if c.IsList() {
		return strings.Join(c.Chars, ",")
	}
	return strconv.FormatBool(c.Enabled)
}

// UnmarshalYAML accepts a boolean or a sequence of strings.
func (c *CharSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("character set must be a boolean or a list: %w", err)
		}
		*c = CharFlag(enabled)
		return nil
	case yaml.SequenceNode:
		var chars []string
		if err := node.Decode(&chars); err != nil {
			return fmt.Errorf("character set must be a boolean or a list: %w", err)
		}
		*c = CharList(chars...)
		return nil
	}
	return fmt.Errorf("character set must be a boolean or a list, got %s", node.Tag)
}

func (c CharSet) MarshalYAML() (any, error) {
	if c.IsList() {
		return c.Chars, nil
	}
	return c.Enabled, nil
}

// UnmarshalText reads "true", "false" or a comma separated character list,
// the form used by environment variables.
func (c *CharSet) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if enabled, err := strconv.ParseBool(s); err == nil {
		*c = CharFlag(enabled)
		return nil
	}
	if s == "" {
		*c = CharList()
		return nil
	}
	*c = CharList(strings.Split(s, ",")...)
	return nil
}

func (c CharSet) MarshalJSON() ([]byte, error) {
	if c.IsList() {
		return json.Marshal(c.Chars)
	}
	return json.Marshal(c.Enabled)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
