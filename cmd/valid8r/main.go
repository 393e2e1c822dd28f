// Command valid8r validates a single value from the command line and prints
// the result as JSON.
//
//	valid8r email user@example.com --set 'allowedDomains=["*.com"]'
//	valid8r card 4532015112830366 --expires 2027-05 --cvv 123 --holder "John Smith"
//
// The exit code is 0 for valid input, 1 for invalid input and 2 for usage or
// configuration errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/KushalwithK/valid8r/pkg/config"
	"github.com/KushalwithK/valid8r/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "valid8r: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and maps the outcome to an exit code.
func run(ctx context.Context, cfg Config, args []string, out, errOut io.Writer) int {
	cmd := newRootCmd(cfg, out, errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitValid
	case errors.Is(err, errInvalidInput):
		return exitInvalid
	case validator.IsValidationError(err):
		fmt.Fprintf(errOut, "valid8r: %v\n", err)
		return exitInvalid
	}

	fmt.Fprintf(errOut, "valid8r: %v\n", err)
	return exitUsage
}
