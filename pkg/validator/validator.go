package validator

import (
	"log/slog"
	"regexp"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/KushalwithK/valid8r/pkg/logger"
)

// Validator holds the per-domain defaults every validation call starts from.
//
// Defaults are written by SetDefaults, LoadFile and LoadEnv and read by the
// domain methods. A Validator performs no locking: finish configuring it
// before sharing it between goroutines.
type Validator struct {
	defaults domainDefaults
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
	checker  *playground.Validate
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for configuration changes and failed
// validations. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithObserver registers an observer notified after every validation call.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observer = o
		}
	}
}

// WithClock overrides the time source used by date and card rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New returns a Validator seeded with the builtin defaults of every domain.
func New(opts ...Option) *Validator {
	v := &Validator{
		defaults: builtinDefaults(),
		logger:   logger.NewNop(),
		observer: nopObserver{},
		now:      time.Now,
		checker:  newConfigChecker(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func newConfigChecker() *playground.Validate {
	checker := playground.New(playground.WithRequiredStructEnabled())
	_ = checker.RegisterValidation("regexp", func(fl playground.FieldLevel) bool {
		_, err := regexp.Compile(fl.Field().String())
		return err == nil
	})
	return checker
}

func (v *Validator) NameConfig() NameConfig         { return v.defaults.Name.clone() }
func (v *Validator) EmailConfig() EmailConfig       { return v.defaults.Email.clone() }
func (v *Validator) PhoneConfig() PhoneConfig       { return v.defaults.Phone.clone() }
func (v *Validator) AddressConfig() AddressConfig   { return v.defaults.Address.clone() }
func (v *Validator) PasswordConfig() PasswordConfig { return v.defaults.Password.clone() }
func (v *Validator) IPConfig() IPConfig             { return v.defaults.IP.clone() }
func (v *Validator) UsernameConfig() UsernameConfig { return v.defaults.Username.clone() }
func (v *Validator) DateConfig() DateConfig         { return v.defaults.Date.clone() }
func (v *Validator) CardConfig() CardConfig         { return v.defaults.Card.clone() }

// Name validates a personal name against the stored defaults. Patches adjust
// a private copy of the configuration for this call only.
func (v *Validator) Name(value string, patches ...func(*NameConfig)) (Result, error) {
	return run(v, DomainName, v.NameConfig(), patches, func(cfg NameConfig) (Result, error) {
		return ValidateName(value, cfg)
	})
}

func (v *Validator) Email(value string, patches ...func(*EmailConfig)) (Result, error) {
	return run(v, DomainEmail, v.EmailConfig(), patches, func(cfg EmailConfig) (Result, error) {
		return ValidateEmail(value, cfg)
	})
}

func (v *Validator) Phone(value string, patches ...func(*PhoneConfig)) (Result, error) {
	return run(v, DomainPhone, v.PhoneConfig(), patches, func(cfg PhoneConfig) (Result, error) {
		return ValidatePhone(value, cfg)
	})
}

func (v *Validator) Address(value string, patches ...func(*AddressConfig)) (Result, error) {
	return run(v, DomainAddress, v.AddressConfig(), patches, func(cfg AddressConfig) (Result, error) {
		return ValidateAddress(value, cfg)
	})
}

func (v *Validator) Password(value string, patches ...func(*PasswordConfig)) (Result, error) {
	return run(v, DomainPassword, v.PasswordConfig(), patches, func(cfg PasswordConfig) (Result, error) {
		return ValidatePassword(value, cfg)
	})
}

func (v *Validator) IP(value string, patches ...func(*IPConfig)) (Result, error) {
	return run(v, DomainIP, v.IPConfig(), patches, func(cfg IPConfig) (Result, error) {
		return ValidateIP(value, cfg)
	})
}

func (v *Validator) Username(value string, patches ...func(*UsernameConfig)) (Result, error) {
	return run(v, DomainUsername, v.UsernameConfig(), patches, func(cfg UsernameConfig) (Result, error) {
		return ValidateUsername(value, cfg)
	})
}

// Date validates a calendar date. Future and past checks use the configured clock.
func (v *Validator) Date(value string, patches ...func(*DateConfig)) (Result, error) {
	return run(v, DomainDate, v.DateConfig(), patches, func(cfg DateConfig) (Result, error) {
		return validateDate(value, cfg, v.now())
	})
}

// Card validates payment card details. Expiry is compared with the configured clock.
func (v *Validator) Card(card Card, patches ...func(*CardConfig)) (Result, error) {
	return run(v, DomainCard, v.CardConfig(), patches, func(cfg CardConfig) (Result, error) {
		return validateCard(card, cfg, v.now())
	})
}

func run[C any](v *Validator, domain Domain, cfg C, patches []func(*C), validate func(C) (Result, error)) (Result, error) {
	for _, patch := range patches {
		if patch != nil {
			patch(&cfg)
		}
	}

	res, err := validate(cfg)
	v.finish(domain, res, err)
	return res, err
}

// finish reports the outcome of one call to the logger and observer.
func (v *Validator) finish(domain Domain, res Result, err error) {
	report := res.Errors
	if err != nil {
		report = ExtractReport(err)
	}

	v.observer.ObserveValidation(domain, report)

	if !report.IsEmpty() {
		v.logger.Debug("validation failed",
			logger.Domain(string(domain)),
			logger.Rules(report.Rules()),
			logger.Valid(false),
		)
	}
}
