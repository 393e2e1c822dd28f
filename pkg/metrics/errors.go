package metrics

import "errors"

// ErrRegisterCollector is returned when a counter cannot be registered,
// typically because another observer already uses the same namespace.
var ErrRegisterCollector = errors.New("failed to register metrics collector")
