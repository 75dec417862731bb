// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payreport/pkg/loader"
	"payreport/pkg/report"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
// Its cause has already been logged when it is returned.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the validated command line.
type Options struct {
	Report string
	Files  []string
}

// NewRootCmd builds the payreport command. Reports go to stdout; every
// diagnostic goes through logger.
func NewRootCmd(stdout io.Writer, logger *zap.Logger) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "payreport --report TYPE FILE...",
		Short: "Build employee payout reports from CSV files",
		Long: `payreport reads one or more comma-separated files with a header row,
computes hours_worked * rate for every employee and prints the result grouped
by department with subtotals and a grand total.

The rate is taken from the first of these columns present in a file:
hourly_rate, rate, salary.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return Run(stdout, logger, *opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)

	cmd.Flags().StringVar(&opts.Report, "report", "",
		"report type (one of: "+strings.Join(report.Types(), ", ")+")")
	if err := cmd.MarkFlagRequired("report"); err != nil {
		panic(err)
	}

	return cmd
}

// Run validates the report type, loads the files and writes the report.
// The report type is checked before any file is opened.
func Run(stdout io.Writer, logger *zap.Logger, opts Options) error {
	generate, err := report.Lookup(opts.Report)
	if err != nil {
		logger.Error("unsupported report type",
			zap.String("report", opts.Report),
			zap.Strings("supported", report.Types()),
		)
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	// Per-file failures are already logged by the loader and never fatal.
	records, _ := loader.New(logger).Load(opts.Files)

	if err := generate(stdout, records); err != nil {
		logger.Error("failed to write report", zap.Error(err))
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	return nil
}

// Execute runs the command for args and returns the process exit code.
// Argument errors are printed to stderr and map to ExitUsage.
func Execute(args []string, stdout, stderr io.Writer, logger *zap.Logger) int {
	cmd := NewRootCmd(stdout, logger)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	return ExitUsage
}
