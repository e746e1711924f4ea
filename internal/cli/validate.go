package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/deps"
)

// ValidationResult holds the outcome of validating a deps file.
type ValidationResult struct {
	Valid        bool   `json:"valid"`
	Dependencies int    `json:"dependencies"`
	Error        string `json:"error,omitempty"`
	Line         int    `json:"line,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deps-file>",
		Short: "Validate a dependency file without evaluating it",
		Long: `Validate a compact-notation dependency file.

Checks every non-blank line for well-formed notation and reports the
first malformed line. Faster feedback than running a full evaluation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, depsPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	content, err := readAll(depsPath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read deps file", err)
	}

	decoded, err := deps.DecodeAll(content)
	if err != nil {
		result := ValidationResult{
			Valid:        false,
			Dependencies: len(decoded),
			Error:        err.Error(),
		}
		var decodeErr *deps.DecodeError
		if errors.As(err, &decodeErr) {
			result.Line = decodeErr.Line
		}
		return outputValidationFailure(formatter, result)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(ValidationResult{Valid: true, Dependencies: len(decoded)}); err != nil {
			return err
		}
		return nil
	}
	fmt.Fprintf(formatter.Writer, "✓ %d dependenc(ies) valid\n", len(decoded))
	return nil
}

func outputValidationFailure(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeBadDeps, result.Error, result)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed: %s", result.Error))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", ErrCodeBadDeps, result.Error)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed: %s", result.Error))
}
