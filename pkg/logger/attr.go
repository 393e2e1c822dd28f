package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Domain records the validation domain under the key "domain".
func Domain(name string) slog.Attr {
	return slog.String("domain", name)
}

// Rule records a rule key under the key "rule".
func Rule(key string) slog.Attr {
	return slog.String("rule", key)
}

// Rules records the failed rule keys under the key "rules".
// If keys is empty, it returns an empty Attr.
func Rules(keys []string) slog.Attr {
	if len(keys) == 0 {
		return slog.Attr{}
	}
	return slog.Any("rules", keys)
}

// Policy records the error reporting policy under the key "policy".
func Policy(name string) slog.Attr {
	return slog.String("policy", name)
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
