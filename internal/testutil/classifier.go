package testutil

import (
	"fmt"

	"github.com/loglens/loglens/internal/deps"
)

// TableClassifier implements deps.Classifier from a fixed relation
// table instead of trace evidence.
//
// This enables deterministic tests of the matrix builder and evaluator
// without depending on any real classification algorithm. The table is
// keyed by ordered pair; a lookup miss on (from, to) falls back to the
// mirrored entry (to, from) with directions flipped, matching how a
// real classifier describes the same underlying fact from both sides.
//
// Traces and thresholds are ignored, so the classifier is trivially
// pure, deterministic, and threshold-monotone.
type TableClassifier struct {
	relations map[[2]string]deps.Dependency
}

// NewTableClassifier builds a classifier from compact-notation lines,
// one relation per line. Panics on malformed input; tables are test
// fixtures written by hand.
func NewTableClassifier(notation string) *TableClassifier {
	records, err := deps.DecodeAll(notation)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad classifier table: %v", err))
	}

	relations := make(map[[2]string]deps.Dependency, len(records))
	for _, d := range records {
		relations[[2]string{d.From, d.To}] = d
	}
	return &TableClassifier{relations: relations}
}

// Temporal implements deps.Classifier.
func (c *TableClassifier) Temporal(from, to string, _ [][]string, _ float64) *deps.TemporalDependency {
	if d, ok := c.relations[[2]string{from, to}]; ok {
		return d.Temporal
	}
	if d, ok := c.relations[[2]string{to, from}]; ok && d.Temporal != nil {
		return deps.NewTemporal(from, to, d.Temporal.Kind, flipTemporal(d.Temporal.Direction))
	}
	return nil
}

// Existential implements deps.Classifier.
func (c *TableClassifier) Existential(from, to string, _ [][]string, _ float64) *deps.ExistentialDependency {
	if d, ok := c.relations[[2]string{from, to}]; ok {
		return d.Existential
	}
	if d, ok := c.relations[[2]string{to, from}]; ok && d.Existential != nil {
		return deps.NewExistential(from, to, d.Existential.Kind, flipExistential(d.Existential.Direction))
	}
	return nil
}

func flipTemporal(d deps.TemporalDirection) deps.TemporalDirection {
	if d == deps.TemporalForward {
		return deps.TemporalBackward
	}
	return deps.TemporalForward
}

func flipExistential(d deps.ExistentialDirection) deps.ExistentialDirection {
	switch d {
	case deps.ExistentialForward:
		return deps.ExistentialBackward
	case deps.ExistentialBackward:
		return deps.ExistentialForward
	default:
		return deps.ExistentialBoth
	}
}
