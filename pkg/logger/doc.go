// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. These options
// select the output format (text or json), the minimum level, static
// attributes applied to every record and ContextExtractor callbacks that pull
// attributes from a context value each time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with ContextHandler, which runs the registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors in attr.go (Domain, Rule, Rules, Policy, Error, ...)
// keep attribute naming consistent between the validator and the CLI.
// NewNop returns a logger that discards everything; it is what a validator
// uses when no logger is supplied.
//
// # Usage
//
//	import "github.com/KushalwithK/valid8r/pkg/logger"
//
//	func main() {
//	    level, _ := logger.ParseLevel("debug")
//	    log := logger.New(
//	        logger.WithDevelopment("valid8r"),
//	        logger.WithLevel(level),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Debug("validation failed",
//	        logger.Domain("email"),
//	        logger.Rules([]string{"format", "minLen"}),
//	    )
//	}
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, so calls like
//
//	log.Info("defaults loaded", logger.Error(err))
//
// need no additional nil check.
package logger
