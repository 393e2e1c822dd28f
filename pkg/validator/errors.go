package validator

import (
	"encoding/json"
	"errors"
)

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is wrapped by every domain-specific validation failure.
	ErrValidationFailed = errors.New("validation failed")

	ErrNameValidationFailed     = errors.New("name validation failed")
	ErrEmailValidationFailed    = errors.New("email validation failed")
	ErrPhoneValidationFailed    = errors.New("phone validation failed")
	ErrAddressValidationFailed  = errors.New("address validation failed")
	ErrPasswordValidationFailed = errors.New("password validation failed")
	ErrIPValidationFailed       = errors.New("ip validation failed")
	ErrUsernameValidationFailed = errors.New("username validation failed")
	ErrDateValidationFailed     = errors.New("date validation failed")
	ErrCardValidationFailed     = errors.New("card validation failed")
)

// Configuration errors returned by the defaults store.
var (
	// ErrInvalidPolicy is returned when a policy name is not recognized.
	ErrInvalidPolicy = errors.New("invalid error reporting policy")

	// ErrUnknownDomain is returned when a domain name is not recognized.
	ErrUnknownDomain = errors.New("unknown validation domain")

	// ErrInvalidConfig is returned when merged defaults fail validation or cannot be decoded.
	ErrInvalidConfig = errors.New("invalid validator configuration")

	// ErrUnsupportedFile is returned when a defaults file has an unknown extension.
	ErrUnsupportedFile = errors.New("unsupported defaults file format")

	ErrFailedToReadFile     = errors.New("failed to read defaults file")
	ErrFailedToParseFile    = errors.New("failed to parse defaults file")
	ErrLoadingFileCancelled = errors.New("defaults file loading cancelled")
)

// Error is returned by a validation call that fails while safe mode is off.
// It unwraps to ErrValidationFailed and to the sentinel of its domain.
type Error struct {
	Domain Domain
	Policy Policy
	Report Report
}

// Error returns the single surviving message for throw-first and throw-last,
// or the whole report serialized as a JSON object for throw-all.
func (e *Error) Error() string {
	if len(e.Report) == 0 {
		return e.Domain.Err().Error()
	}

	switch e.Policy {
	case ThrowFirst, ThrowLast:
		return e.Report[0].Message
	}

	payload, err := json.Marshal(e.Report)
	if err != nil {
		return e.Domain.Err().Error()
	}
	return string(payload)
}

func (e *Error) Unwrap() []error {
	return []error{ErrValidationFailed, e.Domain.Err()}
}
