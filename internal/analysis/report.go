// Package analysis bundles the full analysis of one event log: the
// dependency matrix with its metrics, variant statistics, and the
// prefix-automaton entropy measures.
package analysis

import (
	"fmt"
	"strings"

	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/epa"
	"github.com/loglens/loglens/internal/eventlog"
	"github.com/loglens/loglens/internal/matrix"
)

// Report is the aggregated result of analyzing one log.
type Report struct {
	// Matrix is the rendered dependency matrix and its metrics.
	Matrix *matrix.Result `json:"matrix"`

	// Relations is the total cell count n² of the matrix.
	Relations int `json:"relations"`

	// TraceCount is the number of traces in the log.
	TraceCount int `json:"trace_count"`

	// VariantCount is the number of distinct activity sequences.
	VariantCount int `json:"variant_count"`

	// MaxVariantFrequency is the share of traces belonging to the most
	// frequent variant.
	MaxVariantFrequency float64 `json:"max_variant_frequency"`

	// Entropy holds the prefix-automaton entropy measures.
	Entropy epa.Metrics `json:"entropy"`
}

// Run analyzes the log in one pass: matrix construction via the
// classifier, variant counting, and automaton entropy.
func Run(log *eventlog.Log, classifier deps.Classifier, opts matrix.Options) *Report {
	result := matrix.Build(log, classifier, opts)

	variants := log.Variants()
	maxFreq := 0
	for _, n := range variants {
		if n > maxFreq {
			maxFreq = n
		}
	}
	maxVariantFrequency := 0.0
	if len(log.Traces) > 0 {
		maxVariantFrequency = float64(maxFreq) / float64(len(log.Traces))
	}

	automaton := epa.FromLog(log)

	n := result.Metrics.TotalActivities
	return &Report{
		Matrix:              result,
		Relations:           n * n,
		TraceCount:          len(log.Traces),
		VariantCount:        len(variants),
		MaxVariantFrequency: maxVariantFrequency,
		Entropy:             automaton.EntropyMetrics(),
	}
}

// Render produces the human-readable report: the matrix followed by
// the aggregate statistics and the relationship histogram.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(r.Matrix.Rendered)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#relations: %d\n", r.Relations)
	fmt.Fprintf(&b, "#traces: %d\n", r.TraceCount)
	fmt.Fprintf(&b, "#variants: %d\n", r.VariantCount)
	fmt.Fprintf(&b, "max. variant frequency / #traces: %.4f\n", r.MaxVariantFrequency)
	fmt.Fprintf(&b, "variant entropy: %.4f\n", r.Entropy.VariantEntropy)
	fmt.Fprintf(&b, "normalized variant entropy: %.4f\n", r.Entropy.NormalizedVariantEntropy)

	if summary := r.Matrix.Metrics.RelationshipSummary(); summary != "" {
		b.WriteString("\nRelationship type frequencies:\n")
		b.WriteString(summary)
	}
	return b.String()
}
