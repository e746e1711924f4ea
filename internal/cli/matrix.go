package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/analysis"
	"github.com/loglens/loglens/internal/classify"
	"github.com/loglens/loglens/internal/eventlog"
	"github.com/loglens/loglens/internal/matrix"
)

// MatrixOptions holds flags for the matrix command.
type MatrixOptions struct {
	*RootOptions
	Input                InputOptions
	ProfilePath          string
	TemporalThreshold    float64
	ExistentialThreshold float64
	CellWidth            int
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatrixOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "matrix <log>",
		Short: "Build the dependency matrix of an event log",
		Long: `Build the pairwise activity dependency matrix of an event log.

Every ordered activity pair is classified for its temporal ordering and
existential co-occurrence relation. The report includes the rendered
matrix, variant statistics, prefix-automaton entropy, and the
relationship type histogram.

Example:
  loglens matrix traces.txt
  loglens matrix events.db --query "SELECT case_id, activity FROM audit ORDER BY ts"
  loglens matrix log.xes --temporal-threshold 0.8 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input.Format, "input", FormatAuto, "input format (auto|text|xes|sqlite)")
	cmd.Flags().StringVar(&opts.Input.Query, "query", "", "event query for sqlite input (case_id, activity columns)")
	cmd.Flags().StringVar(&opts.ProfilePath, "profile", "", "path to a CUE analysis profile")
	cmd.Flags().Float64Var(&opts.TemporalThreshold, "temporal-threshold", 1.0, "evidence share required for a temporal relation")
	cmd.Flags().Float64Var(&opts.ExistentialThreshold, "existential-threshold", 1.0, "evidence share required for an existential relation")
	cmd.Flags().IntVar(&opts.CellWidth, "cell-width", 0, "rendered matrix column width (0 = default)")

	return cmd
}

func runMatrix(opts *MatrixOptions, logPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	profile, err := resolveProfile(opts, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeBadProfile, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load profile", err)
	}

	log, err := loadLog(cmd, logPath, profile.Input, formatter)
	if err != nil {
		return err
	}

	slog.Debug("building matrix",
		"activities", len(log.Activities()),
		"traces", len(log.Traces),
		"temporal_threshold", profile.TemporalThreshold,
		"existential_threshold", profile.ExistentialThreshold)

	report := analysis.Run(log, classify.New(), matrix.Options{
		TemporalThreshold:    profile.TemporalThreshold,
		ExistentialThreshold: profile.ExistentialThreshold,
		CellWidth:            profile.CellWidth,
	})

	if opts.Format == "json" {
		return formatter.Success(report)
	}
	return formatter.Success(report.Render())
}

// resolveProfile merges the profile file (if any) with explicit flags;
// a flag set on the command line wins over the file.
func resolveProfile(opts *MatrixOptions, cmd *cobra.Command) (Profile, error) {
	profile := DefaultProfile()
	if opts.ProfilePath != "" {
		loaded, err := LoadProfile(opts.ProfilePath)
		if err != nil {
			return Profile{}, err
		}
		profile = loaded
	}

	if cmd.Flags().Changed("temporal-threshold") {
		profile.TemporalThreshold = opts.TemporalThreshold
	}
	if cmd.Flags().Changed("existential-threshold") {
		profile.ExistentialThreshold = opts.ExistentialThreshold
	}
	if cmd.Flags().Changed("cell-width") {
		profile.CellWidth = opts.CellWidth
	}
	if cmd.Flags().Changed("input") {
		profile.Input.Format = opts.Input.Format
	}
	if cmd.Flags().Changed("query") {
		profile.Input.Query = opts.Input.Query
	}
	return profile, nil
}

// loadLog reads the event log and maps failures onto exit codes:
// unreadable input is a command error, an empty log an analysis
// failure.
func loadLog(cmd *cobra.Command, path string, input InputOptions, formatter *OutputFormatter) (*eventlog.Log, error) {
	log, err := ReadLog(cmd.Context(), path, input)
	if err != nil {
		if errors.Is(err, eventlog.ErrNoTraces) {
			_ = formatter.Error(ErrCodeEmptyLog, err.Error(), nil)
			return nil, WrapExitError(ExitFailure, "empty event log", err)
		}
		_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "failed to read event log", err)
	}
	formatter.VerboseLog("Loaded %d trace(s), %d activit(ies) from %s",
		len(log.Traces), len(log.Activities()), path)
	return log, nil
}
