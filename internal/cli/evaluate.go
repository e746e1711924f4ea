package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/classify"
	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/eval"
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions
	Input InputOptions
}

// EvaluateResult is the JSON payload of the evaluate command. Accuracy
// fields are omitted entirely when the hypothesis set was empty.
type EvaluateResult struct {
	Score               eval.Score `json:"score"`
	NoData              bool       `json:"no_data"`
	TemporalAccuracy    *float64   `json:"temporal_accuracy,omitempty"`
	ExistentialAccuracy *float64   `json:"existential_accuracy,omitempty"`
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate <log> <deps-file>",
		Short: "Score a hypothesis dependency set against a log",
		Long: `Score a hypothesis dependency set against the dependencies actually
discoverable from an event log.

The deps file holds one dependency per line in compact notation, e.g.

  a,b:d,f i,b
  b,c:d,f e
  b,d:-,- ne

Discovery runs at exact thresholds and pairs are matched unordered, so
a hypothesis stated as (a,b) scores identically to one stated as (b,a).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input.Format, "input", FormatAuto, "input format (auto|text|xes|sqlite)")
	cmd.Flags().StringVar(&opts.Input.Query, "query", "", "event query for sqlite input (case_id, activity columns)")

	return cmd
}

func runEvaluate(opts *EvaluateOptions, logPath, depsPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	log, err := loadLog(cmd, logPath, opts.Input, formatter)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(depsPath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read deps file", err)
	}

	hypotheses, err := deps.DecodeAll(string(content))
	if err != nil {
		_ = formatter.Error(ErrCodeBadDeps, err.Error(), nil)
		return WrapExitError(ExitFailure, "malformed dependency notation", err)
	}

	slog.Debug("evaluating hypotheses", "count", len(hypotheses))

	score := eval.Evaluate(hypotheses, log, classify.New())

	result := EvaluateResult{Score: score, NoData: score.NoData()}
	if ratio, ok := score.TemporalAccuracy(); ok {
		result.TemporalAccuracy = &ratio
	}
	if ratio, ok := score.ExistentialAccuracy(); ok {
		result.ExistentialAccuracy = &ratio
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(renderEvaluate(result))
}

func renderEvaluate(r EvaluateResult) string {
	if r.NoData {
		return "no hypotheses to evaluate"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "temporal:    %d/%d correct (%.4f)\n",
		r.Score.CorrectTemporal, r.Score.TotalTemporal, *r.TemporalAccuracy)
	fmt.Fprintf(&b, "existential: %d/%d correct (%.4f)",
		r.Score.CorrectExistential, r.Score.TotalExistential, *r.ExistentialAccuracy)
	return b.String()
}
