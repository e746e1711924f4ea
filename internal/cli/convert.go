package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/eventlog"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Output string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <log>",
		Short: "Convert a text event log to XES",
		Long: `Convert a plain-text event log to an XES document.

Each input line is one trace of comma-separated activities; a ":N"
suffix repeats the trace N times. Generated traces carry fresh case
identifiers and synthetic, strictly increasing timestamps.

Example:
  loglens convert traces.txt -o traces.xes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runConvert(opts *ConvertOptions, logPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	content, err := readAll(logPath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read event log", err)
	}

	weighted, err := eventlog.ParseWeighted(content)
	if err != nil {
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to parse event log", err)
	}

	slog.Debug("converting to XES", "traces", len(weighted))
	xes := eventlog.GenerateXES(weighted)

	if opts.Output == "" {
		_, err = cmd.OutOrStdout().Write([]byte(xes))
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to write XES", err)
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, []byte(xes), 0o644); err != nil {
		_ = formatter.Error(ErrCodeWrite, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to write XES", err)
	}
	formatter.VerboseLog("Wrote %s", opts.Output)
	return nil
}
