package validator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KushalwithK/valid8r/pkg/config"
	"github.com/KushalwithK/valid8r/pkg/logger"
)

// messagesKey is the document key holding message overrides of a domain.
const messagesKey = "messages"

// SetDefaults merges partial configuration and message overrides into the
// stored defaults of each named domain. Options absent from a partial keep
// their current value; message templates are merged key by key. A partial may
// also carry its own "messages" mapping.
//
// The merged configuration is validated before it replaces the current one,
// so a failed call leaves the defaults unchanged.
func (v *Validator) SetDefaults(cfg map[Domain]map[string]any, messages map[Domain]Messages) error {
	staged := v.defaults.clone()
	domains := sortedDomains(cfg, messages)

	for _, domain := range domains {
		target, common, err := staged.lookup(domain)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}

		partial, overrides, err := splitMessages(cfg[domain])
		if err != nil {
			return errors.Join(ErrInvalidConfig, fmt.Errorf("%s: %w", domain, err))
		}
		if err := mergePartial(target, partial); err != nil {
			return errors.Join(ErrInvalidConfig, fmt.Errorf("%s: %w", domain, err))
		}

		common.Messages = common.Messages.Merge(overrides).Merge(messages[domain])
	}

	if err := v.check(&staged); err != nil {
		return err
	}

	v.defaults = staged
	v.logger.Info("validator defaults updated", logger.Component("validator"), slog.Any("domains", domains))
	return nil
}

// LoadFile reads a YAML or JSON document keyed by domain name and merges it
// like SetDefaults:
//
//	email:
//	  allowedDomains: ["*.com"]
//	  messages:
//	    allowedDomains: "Only {allowedDomains} addresses are accepted."
func (v *Validator) LoadFile(ctx context.Context, path string) error {
	decode, err := documentDecoder(path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return errors.Join(ErrFailedToReadFile, readErr)
	}

	var doc map[string]any
	if err := decode(content, &doc); err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	cfg := make(map[Domain]map[string]any, len(doc))
	for name, raw := range doc {
		domain, err := ParseDomain(name)
		if err != nil {
			return errors.Join(ErrFailedToParseFile, err)
		}
		partial, ok := raw.(map[string]any)
		if !ok {
			return errors.Join(ErrFailedToParseFile,
				fmt.Errorf("invalid structure for domain %q: expected map, got %T", name, raw))
		}
		cfg[domain] = partial
	}

	if err := v.SetDefaults(cfg, nil); err != nil {
		return err
	}

	v.logger.InfoContext(ctx, "validator defaults loaded from file", logger.Path(path))
	return nil
}

// LoadEnv merges environment variables into the stored defaults. Variable
// names are prefix + DOMAIN_ + OPTION, for example VALID8R_EMAIL_MIN_LEN.
// Variables that are not set leave the corresponding option untouched.
func (v *Validator) LoadEnv(prefix string) error {
	staged := v.defaults.clone()
	if err := config.Merge(&staged, prefix); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	if err := v.check(&staged); err != nil {
		return err
	}

	v.defaults = staged
	v.logger.Info("validator defaults loaded from environment", logger.Component("validator"))
	return nil
}

// check validates every domain configuration in d.
func (v *Validator) check(d *domainDefaults) error {
	for _, domain := range Domains() {
		target, _, err := d.lookup(domain)
		if err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		if err := v.checker.Struct(target); err != nil {
			return errors.Join(ErrInvalidConfig, fmt.Errorf("%s: %w", domain, err))
		}
	}
	return nil
}

// mergePartial decodes partial on top of target. The partial is re-encoded
// as YAML so option names, nested lists and boolean-or-list options follow
// the same rules as defaults files. Unknown option names are rejected.
func mergePartial(target any, partial map[string]any) error {
	if len(partial) == 0 {
		return nil
	}

	data, err := yaml.Marshal(partial)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(target)
}

// splitMessages separates the "messages" entry from the option values of a
// partial configuration.
func splitMessages(partial map[string]any) (map[string]any, Messages, error) {
	raw, ok := partial[messagesKey]
	if !ok {
		return partial, nil, nil
	}

	rest := maps.Clone(partial)
	delete(rest, messagesKey)

	var out Messages
	switch m := raw.(type) {
	case nil:
	case Messages:
		out = m.Clone()
	case map[string]string:
		out = Messages(maps.Clone(m))
	case map[string]any:
		out = make(Messages, len(m))
		for rule, tmpl := range m {
			s, ok := tmpl.(string)
			if !ok {
				return nil, nil, fmt.Errorf("message for rule %q must be a string, got %T", rule, tmpl)
			}
			out[rule] = s
		}
	default:
		return nil, nil, fmt.Errorf("messages must be a map, got %T", raw)
	}

	return rest, out, nil
}

// documentDecoder picks a decoder based on the file extension.
func documentDecoder(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return yaml.Unmarshal, nil
	case "json":
		return json.Unmarshal, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
}

// sortedDomains returns the domains named in either map in a stable order.
func sortedDomains(cfg map[Domain]map[string]any, messages map[Domain]Messages) []Domain {
	seen := make(map[Domain]struct{}, len(cfg)+len(messages))
	for d := range cfg {
		seen[d] = struct{}{}
	}
	for d := range messages {
		seen[d] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}
