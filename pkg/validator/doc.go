// Package validator checks user-supplied values in nine input families
// (name, email, phone, address, password, ip, username, date and card)
// against per-domain configurable rule sets, collecting keyed, templated
// error messages.
//
// Every domain is a list of Rule values evaluated in declaration order by
// Apply. Rules never short-circuit: each one runs, and failures are handed to
// an Accumulator that keeps the first, the last or all of them depending on
// the configured Policy. The final decision is made once, at the end of the
// run: a valid input yields Result{Valid: true}; an invalid one either yields
// Result{Valid: false, Errors: report} in safe mode or an *Error otherwise.
//
// # Architecture
//
// Each source file groups the rules of one domain (`name_rules.go`,
// `email_rules.go`, ...) next to its configuration type and a Default*Config
// constructor. The stateless ValidateX functions take a configuration value
// directly; the Validator type keeps mutable per-domain defaults and exposes
// one method per domain that starts from a copy of those defaults.
//
// Core building blocks:
//   - Rule         – key, check, message template and placeholder values
//   - Accumulator  – applies the retention policy and raise-or-return decision
//   - Report       – ordered rule → message pairs, one entry per key
//   - Messages     – per-rule template overrides with {placeholder} tokens
//   - CharSet      – options that are either a toggle or an explicit list
//
// # Usage
//
//	v := validator.New(validator.WithLogger(log))
//	if err := v.LoadFile(ctx, "valid8r.yaml"); err != nil {
//	    return err
//	}
//
//	res, err := v.Email(input, func(c *validator.EmailConfig) {
//	    c.AllowedDomains = []string{"*.com"}
//	    c.Safe = true
//	})
//	if err != nil {
//	    return err
//	}
//	if !res.Valid {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Rule, e.Message)
//	    }
//	}
//
// Defaults can also be changed programmatically with SetDefaults or read from
// prefixed environment variables with LoadEnv (VALID8R_EMAIL_MIN_LEN, ...).
// A merge that fails configuration validation leaves the defaults untouched.
//
// # Error Handling
//
// *Error unwraps to ErrValidationFailed and to the sentinel of its domain, so
//
//	errors.Is(err, validator.ErrEmailValidationFailed)
//
// identifies the failing domain. ExtractReport returns the keyed failures.
// Under throw-first and throw-last Error() returns the single message; under
// throw-all it returns the whole report as a JSON object.
//
// Configuration problems are reported with ErrInvalidConfig,
// ErrUnsupportedFile, ErrFailedToReadFile and ErrFailedToParseFile.
//
// # Concurrency
//
// The ValidateX functions are safe for concurrent use. A Validator performs no
// locking; configure it before sharing it between goroutines.
package validator
