package harness

import (
	"fmt"
	"math"

	"github.com/loglens/loglens/internal/analysis"
	"github.com/loglens/loglens/internal/classify"
	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/eval"
	"github.com/loglens/loglens/internal/eventlog"
	"github.com/loglens/loglens/internal/matrix"
)

// entropyDelta is the tolerance for comparing entropy expectations
// stated to four decimal places.
const entropyDelta = 1e-4

// Outcome is the full pipeline result for one scenario.
type Outcome struct {
	// Report is the analysis of the scenario log.
	Report *analysis.Report

	// Canonical is the discovered dependency set, one record per
	// unordered activity pair.
	Canonical []deps.Dependency

	// Score evaluates the scenario's expected dependencies against the
	// canonical set.
	Score eval.Score
}

// Run executes the full pipeline for a scenario with the default
// classifier: parse the log, build the matrix and entropy report,
// discover the canonical dependency set, and score the scenario's
// expected dependencies against it.
func Run(sc *Scenario) (*Outcome, error) {
	log, err := eventlog.ParseText(sc.Log)
	if err != nil {
		return nil, fmt.Errorf("harness: scenario %q: %w", sc.Name, err)
	}

	oracle := classify.New()
	report := analysis.Run(log, oracle, matrix.Options{
		ExistentialThreshold: sc.existentialThreshold(),
		TemporalThreshold:    sc.temporalThreshold(),
	})

	expected, err := deps.DecodeAll(sc.Expect.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("harness: scenario %q: expected dependencies: %w", sc.Name, err)
	}

	return &Outcome{
		Report:    report,
		Canonical: eval.Discover(log, oracle),
		Score:     eval.Evaluate(expected, log, oracle),
	}, nil
}

// Verify checks the outcome against the scenario's expectations and
// returns every violation found, one message per failed check.
func Verify(sc *Scenario, out *Outcome) []string {
	var failures []string

	expected, err := deps.DecodeAll(sc.Expect.Dependencies)
	if err != nil {
		return []string{fmt.Sprintf("expected dependencies unparseable: %v", err)}
	}

	if len(out.Canonical) != len(expected) {
		failures = append(failures, fmt.Sprintf(
			"canonical set size = %d, want %d", len(out.Canonical), len(expected)))
	}

	// The expected set is exactly the canonical set, so every record
	// must score as correct on both axes.
	if out.Score.CorrectTemporal != out.Score.TotalTemporal {
		failures = append(failures, fmt.Sprintf(
			"temporal matches = %d/%d, want full marks",
			out.Score.CorrectTemporal, out.Score.TotalTemporal))
	}
	if out.Score.CorrectExistential != out.Score.TotalExistential {
		failures = append(failures, fmt.Sprintf(
			"existential matches = %d/%d, want full marks",
			out.Score.CorrectExistential, out.Score.TotalExistential))
	}

	for key, want := range sc.Expect.RelationshipCounts {
		if got := out.Report.Matrix.Metrics.RelationshipCounts[key]; got != want {
			failures = append(failures, fmt.Sprintf(
				"relationship count %q = %d, want %d", key, got, want))
		}
	}

	if want := sc.Expect.VariantEntropy; want != nil {
		if got := out.Report.Entropy.VariantEntropy; math.Abs(got-*want) > entropyDelta {
			failures = append(failures, fmt.Sprintf(
				"variant entropy = %.4f, want %.4f", got, *want))
		}
	}
	if want := sc.Expect.NormalizedVariantEntropy; want != nil {
		if got := out.Report.Entropy.NormalizedVariantEntropy; math.Abs(got-*want) > entropyDelta {
			failures = append(failures, fmt.Sprintf(
				"normalized variant entropy = %.4f, want %.4f", got, *want))
		}
	}

	return failures
}
