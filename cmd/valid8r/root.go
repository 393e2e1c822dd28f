package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KushalwithK/valid8r/pkg/logger"
	"github.com/KushalwithK/valid8r/pkg/metrics"
	"github.com/KushalwithK/valid8r/pkg/validator"
)

// errInvalidInput is returned in safe mode when the value failed validation.
var errInvalidInput = errors.New("input is invalid")

// commandKey carries the domain subcommand name for log records.
type commandKey struct{}

type flags struct {
	defaultsFile string
	set          []string
	messages     []string
	safe         bool
	policy       string
	metrics      bool

	expires string
	cvv     string
	holder  string
}

func newRootCmd(cfg Config, out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "valid8r",
		Short:         "Validate names, emails, phone numbers and other user input",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&f.defaultsFile, "defaults", cfg.DefaultsFile, "YAML or JSON file with per-domain defaults")
	pf.StringArrayVar(&f.set, "set", nil, "override an option as key=value, the value is read as YAML")
	pf.StringArrayVar(&f.messages, "message", nil, "override a rule message as rule=template")
	pf.BoolVar(&f.safe, "safe", false, "report failures in the result instead of failing")
	pf.StringVar(&f.policy, "policy", "", "error policy: throw-first, throw-last or throw-all")
	pf.BoolVar(&f.metrics, "metrics", false, "print validation counters to stderr")

	for _, domain := range validator.Domains() {
		root.AddCommand(newDomainCmd(domain, cfg, f, out, errOut))
	}

	return root
}

func newDomainCmd(domain validator.Domain, cfg Config, f *flags, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(domain) + " <value>",
		Short: "Validate a " + string(domain) + " value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.WithValue(cmd.Context(), commandKey{}, string(domain))
			return runValidation(ctx, domain, args[0], cfg, f, out, errOut)
		},
	}

	if domain == validator.DomainCard {
		cmd.Use = "card <number>"
		cmd.Short = "Validate payment card details"
		cmd.Flags().StringVar(&f.expires, "expires", "", "expiry month as YYYY-MM")
		cmd.Flags().StringVar(&f.cvv, "cvv", "", "card verification value")
		cmd.Flags().StringVar(&f.holder, "holder", "", "card holder name")
	}

	return cmd
}

func runValidation(ctx context.Context, domain validator.Domain, value string, cfg Config, f *flags, out, errOut io.Writer) error {
	log, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}

	opts := []validator.Option{validator.WithLogger(log)}

	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		obs, err := metrics.NewObserver(reg, "valid8r")
		if err != nil {
			return err
		}
		opts = append(opts, validator.WithObserver(obs))
	}

	v := validator.New(opts...)
	if err := configure(ctx, v, domain, cfg, f); err != nil {
		return err
	}

	res, verr := validate(v, domain, value, f)
	if verr != nil {
		if !validator.IsValidationError(verr) {
			return verr
		}
		res = validator.Result{Valid: false, Errors: validator.ExtractReport(verr)}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if reg != nil {
		if err := writeMetrics(errOut, reg); err != nil {
			return err
		}
	}

	switch {
	case verr != nil:
		return verr
	case !res.Valid:
		return errInvalidInput
	}
	return nil
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextValue("command", commandKey{}),
	), nil
}

// configure layers defaults in order: defaults file, environment, then the
// --set, --safe, --policy and --message flags.
func configure(ctx context.Context, v *validator.Validator, domain validator.Domain, cfg Config, f *flags) error {
	if f.defaultsFile != "" {
		if err := v.LoadFile(ctx, f.defaultsFile); err != nil {
			return err
		}
	}
	if cfg.EnvPrefix != "" {
		if err := v.LoadEnv(cfg.EnvPrefix); err != nil {
			return err
		}
	}

	partial, err := parseAssignments(f.set)
	if err != nil {
		return err
	}
	if f.safe {
		partial["safe"] = true
	}
	if f.policy != "" {
		policy, err := validator.ParsePolicy(f.policy)
		if err != nil {
			return err
		}
		partial["throwErrorsAs"] = policy.String()
	}

	messages, err := parseMessages(f.messages)
	if err != nil {
		return err
	}

	return v.SetDefaults(
		map[validator.Domain]map[string]any{domain: partial},
		map[validator.Domain]validator.Messages{domain: messages},
	)
}

// parseAssignments reads key=value pairs. Values are decoded as YAML so
// numbers, booleans and flow lists keep their type; anything YAML rejects,
// such as a bare "*", is kept as a string.
func parseAssignments(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, err := splitPair(pair)
		if err != nil {
			return nil, err
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		out[key] = value
	}
	return out, nil
}

func parseMessages(pairs []string) (validator.Messages, error) {
	out := make(validator.Messages, len(pairs))
	for _, pair := range pairs {
		rule, tmpl, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		out[rule] = tmpl
	}
	return out, nil
}

func splitPair(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid assignment %q: expected key=value", pair)
	}
	return key, value, nil
}

func validate(v *validator.Validator, domain validator.Domain, value string, f *flags) (validator.Result, error) {
	switch domain {
	case validator.DomainName:
		return v.Name(value)
	case validator.DomainEmail:
		return v.Email(value)
	case validator.DomainPhone:
		return v.Phone(value)
	case validator.DomainAddress:
		return v.Address(value)
	case validator.DomainPassword:
		return v.Password(value)
	case validator.DomainIP:
		return v.IP(value)
	case validator.DomainUsername:
		return v.Username(value)
	case validator.DomainDate:
		return v.Date(value)
	case validator.DomainCard:
		expires, err := parseExpiry(f.expires)
		if err != nil {
			return validator.Result{}, err
		}
		return v.Card(validator.Card{
			Number:         value,
			ExpirationDate: expires,
			CVV:            f.cvv,
			CardHolderName: f.holder,
		})
	}
	return validator.Result{}, fmt.Errorf("%w: %q", validator.ErrUnknownDomain, domain)
}

// parseExpiry returns the last instant of the YYYY-MM month. An empty value
// yields the zero time, which fails the expiry rule.
func parseExpiry(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	month, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --expires %q: expected YYYY-MM", s)
	}
	return month.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
