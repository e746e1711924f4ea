// Package matrix builds the pairwise dependency matrix of an event log
// and its aggregate metrics.
//
// The builder enumerates every ordered activity pair over the log's
// deduplicated, lexicographically sorted activity set, asks the
// classification oracle for the pair's temporal and existential
// relations, and renders the results as a fixed-width text matrix.
// Counters are over ordered pairs: (a,b) and (b,a) are classified and
// counted independently. The evaluator owns the canonical unordered
// view.
package matrix

import (
	"strings"

	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/eventlog"
)

// DefaultCellWidth is the default rendered column width.
const DefaultCellWidth = 15

// diagonalCell is the placeholder for (a,a) cells; a pair cannot depend
// on itself and the classifier is never asked about one.
const diagonalCell = "self"

// Options configure matrix construction.
type Options struct {
	// ExistentialThreshold is passed to the existential classification,
	// in [0,1].
	ExistentialThreshold float64

	// TemporalThreshold is passed to the temporal classification, in [0,1].
	TemporalThreshold float64

	// CellWidth is the rendered column width; 0 means DefaultCellWidth.
	CellWidth int
}

// Result is a built matrix: the rendered text, the dependency records
// in enumeration order, and the aggregate metrics.
type Result struct {
	Rendered     string
	Dependencies []deps.Dependency
	Metrics      Metrics
}

// Classify runs the per-ordered-pair classification over the log's
// activity set and returns the records in enumeration order, (n²−n)
// records for n activities. The classifier is never invoked with
// from == to.
func Classify(log *eventlog.Log, classifier deps.Classifier, existentialThreshold, temporalThreshold float64) []deps.Dependency {
	activities := log.Activities()
	traces := log.Traces

	out := make([]deps.Dependency, 0, len(activities)*(len(activities)-1))
	for _, from := range activities {
		for _, to := range activities {
			if from == to {
				continue
			}
			temporal := classifier.Temporal(from, to, traces, temporalThreshold)
			existential := classifier.Existential(from, to, traces, existentialThreshold)
			out = append(out, deps.New(from, to, temporal, existential))
		}
	}
	return out
}

// Build constructs the dependency matrix of the log.
func Build(log *eventlog.Log, classifier deps.Classifier, opts Options) *Result {
	width := opts.CellWidth
	if width == 0 {
		width = DefaultCellWidth
	}

	activities := log.Activities()
	records := Classify(log, classifier, opts.ExistentialThreshold, opts.TemporalThreshold)

	metrics := newMetrics(len(activities))
	for _, d := range records {
		metrics.update(d)
	}

	var b strings.Builder
	b.Grow((len(activities) + 1) * (len(activities) + 1) * width)

	pad := func(s string) {
		b.WriteString(s)
		for i := len(s); i < width; i++ {
			b.WriteByte(' ')
		}
	}

	// Header row: one leading blank column, then the activity names.
	pad(" ")
	for _, activity := range activities {
		pad(activity)
	}
	b.WriteByte('\n')

	next := 0
	for _, from := range activities {
		pad(from)
		for _, to := range activities {
			if from == to {
				pad(diagonalCell)
				continue
			}
			pad(records[next].String())
			next++
		}
		b.WriteByte('\n')
	}

	return &Result{
		Rendered:     b.String(),
		Dependencies: records,
		Metrics:      metrics,
	}
}
