package validator

import (
	"strconv"
	"strings"
	"time"
)

// Supported literal date layouts.
const (
	LayoutYMD = "YYYY-MM-DD"
	LayoutDMY = "DD-MM-YYYY"
	LayoutMDY = "MM-DD-YYYY"
)

// DateConfig configures ValidateDate. MinDate and MaxDate use the same layout
// as the validated value.
type DateConfig struct {
	Common `yaml:",inline"`

	Format           string `yaml:"format" json:"format" env:"FORMAT" validate:"oneof=YYYY-MM-DD DD-MM-YYYY MM-DD-YYYY"`
	MinDate          string `yaml:"minDate" json:"minDate,omitempty" env:"MIN_DATE"`
	MaxDate          string `yaml:"maxDate" json:"maxDate,omitempty" env:"MAX_DATE"`
	AllowFutureDates bool   `yaml:"allowFutureDates" json:"allowFutureDates" env:"ALLOW_FUTURE_DATES"`
	AllowPastDates   bool   `yaml:"allowPastDates" json:"allowPastDates" env:"ALLOW_PAST_DATES"`
	RequireLeapYear  bool   `yaml:"requireLeapYear" json:"requireLeapYear" env:"REQUIRE_LEAP_YEAR"`
}

func (c DateConfig) clone() DateConfig {
	c.Common = c.Common.clone()
	return c
}

// ValidateDate checks a calendar date written in cfg.Format. Range and
// relative checks are skipped when the date itself does not parse.
func ValidateDate(date string, cfg DateConfig) (Result, error) {
	return validateDate(date, cfg, time.Now())
}

func validateDate(date string, cfg DateConfig, now time.Time) (Result, error) {
	return Apply(cfg.options(DomainDate), dateRules(date, cfg, now)...)
}

func dateRules(date string, cfg DateConfig, now time.Time) []Rule {
	loc := now.Location()
	parsed, ok := ParseDate(date, cfg.Format, loc)
	minDate, minOK := ParseDate(cfg.MinDate, cfg.Format, loc)
	maxDate, maxOK := ParseDate(cfg.MaxDate, cfg.Format, loc)

	return []Rule{
		{
			Key:     "format",
			Check:   func() bool { return ok },
			Message: "Date format is invalid.",
			Values:  map[string]any{"format": cfg.Format},
		},
		{
			Key:     "minDate",
			Check:   func() bool { return cfg.MinDate == "" || minOK },
			Message: "Invalid minimum date format. Expected {format}.",
			Values:  map[string]any{"format": cfg.Format},
		},
		{
			Key:     "maxDate",
			Check:   func() bool { return cfg.MaxDate == "" || maxOK },
			Message: "Invalid maximum date format. Expected {format}.",
			Values:  map[string]any{"format": cfg.Format},
		},
		{
			Key:     "minDate",
			Check:   func() bool { return !ok || !minOK || !parsed.Before(minDate) },
			Message: "Date is earlier than the minimum allowed date.",
			Values:  map[string]any{"minDate": cfg.MinDate},
		},
		{
			Key:     "maxDate",
			Check:   func() bool { return !ok || !maxOK || !parsed.After(maxDate) },
			Message: "Date is later than the maximum allowed date.",
			Values:  map[string]any{"maxDate": cfg.MaxDate},
		},
		{
			Key:     "allowFutureDates",
			Check:   func() bool { return cfg.AllowFutureDates || !ok || !parsed.After(now) },
			Message: "Future dates are not allowed.",
		},
		{
			Key:     "allowPastDates",
			Check:   func() bool { return cfg.AllowPastDates || !ok || !parsed.Before(now) },
			Message: "Past dates are not allowed.",
		},
		{
			Key:     "requireLeapYear",
			Check:   func() bool { return !cfg.RequireLeapYear || !ok || IsLeapYear(parsed.Year()) },
			Message: "Date is not in a leap year.",
		},
	}
}

// ParseDate reads value in one of the literal layouts and returns midnight of
// that day in loc. Day and month must be two digits and the year four.
// Impossible dates such as 2023-02-29 are rejected.
func ParseDate(value, layout string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var ys, ms, ds string
	switch layout {
	case LayoutYMD:
		ys, ms, ds = parts[0], parts[1], parts[2]
	case LayoutDMY:
		ds, ms, ys = parts[0], parts[1], parts[2]
	case LayoutMDY:
		ms, ds, ys = parts[0], parts[1], parts[2]
	default:
		return time.Time{}, false
	}

	if len(ms) != 2 || len(ds) != 2 || len(ys) != 4 {
		return time.Time{}, false
	}

	year, yerr := atoiDigits(ys)
	month, merr := atoiDigits(ms)
	day, derr := atoiDigits(ds)
	if yerr != nil || merr != nil || derr != nil {
		return time.Time{}, false
	}
	if year == 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	// time.Date normalizes overflow, so a changed component means the day
	// does not exist in that month.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

// atoiDigits parses s, accepting ASCII digits only.
func atoiDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
