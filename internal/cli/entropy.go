package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/epa"
)

// EntropyOptions holds flags for the entropy command.
type EntropyOptions struct {
	*RootOptions
	Input InputOptions
}

// EntropyResult is the JSON payload of the entropy command.
type EntropyResult struct {
	States         int         `json:"states"`
	Transitions    int         `json:"transitions"`
	Partitions     int         `json:"partitions"`
	PartitionSizes map[int]int `json:"partition_sizes"`
	Metrics        epa.Metrics `json:"metrics"`
}

// NewEntropyCommand creates the entropy command.
func NewEntropyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EntropyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "entropy <log>",
		Short: "Measure variant entropy of an event log",
		Long: `Build the extended prefix automaton of an event log and report its
variant entropy.

Traces sharing a prefix share automaton states; each branch point opens
a new partition. Entropy measures how states disperse over partitions:
zero for a single variant, growing with branching structure.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntropy(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Input.Format, "input", FormatAuto, "input format (auto|text|xes|sqlite)")
	cmd.Flags().StringVar(&opts.Input.Query, "query", "", "event query for sqlite input (case_id, activity columns)")

	return cmd
}

func runEntropy(opts *EntropyOptions, logPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	log, err := loadLog(cmd, logPath, opts.Input, formatter)
	if err != nil {
		return err
	}

	automaton := epa.FromLog(log)
	sizes := automaton.PartitionSizes()

	slog.Debug("automaton built",
		"states", automaton.StateCount(),
		"transitions", automaton.TransitionCount(),
		"partitions", len(sizes))

	result := EntropyResult{
		States:         automaton.StateCount(),
		Transitions:    automaton.TransitionCount(),
		Partitions:     len(sizes),
		PartitionSizes: sizes,
		Metrics:        automaton.EntropyMetrics(),
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(renderEntropy(result))
}

func renderEntropy(r EntropyResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#states: %d\n", r.States)
	fmt.Fprintf(&b, "#transitions: %d\n", r.Transitions)
	fmt.Fprintf(&b, "#partitions: %d\n", r.Partitions)

	partitions := make([]int, 0, len(r.PartitionSizes))
	for p := range r.PartitionSizes {
		partitions = append(partitions, p)
	}
	sort.Ints(partitions)
	for _, p := range partitions {
		fmt.Fprintf(&b, "partition %d: %d state(s)\n", p, r.PartitionSizes[p])
	}

	fmt.Fprintf(&b, "variant entropy: %.4f\n", r.Metrics.VariantEntropy)
	fmt.Fprintf(&b, "normalized variant entropy: %.4f", r.Metrics.NormalizedVariantEntropy)
	return b.String()
}
