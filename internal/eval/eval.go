// Package eval scores a hypothesis set of dependencies against what is
// actually discoverable from an event log.
//
// Discovery runs at threshold 1.0 — exact evidence, not noise-tolerant
// — and is canonicalized into one record per unordered activity pair
// before matching, so a hypothesis stated as (a,b) scores identically
// to one stated as (b,a).
package eval

import (
	"sort"

	"github.com/loglens/loglens/internal/deps"
	"github.com/loglens/loglens/internal/eventlog"
	"github.com/loglens/loglens/internal/matrix"
)

// exactThreshold is the discovery threshold for evaluation: a relation
// is reported only with full supporting evidence.
const exactThreshold = 1.0

// Score is the evaluation result. Totals always equal the hypothesis
// set size; unmatched hypothesis pairs score 0 on both axes but still
// count toward the totals.
type Score struct {
	CorrectTemporal    int `json:"correct_temporal"`
	TotalTemporal      int `json:"total_temporal"`
	CorrectExistential int `json:"correct_existential"`
	TotalExistential   int `json:"total_existential"`
}

// NoData reports whether the hypothesis set was empty, in which case
// accuracy ratios are undefined and must not be computed.
func (s Score) NoData() bool {
	return s.TotalTemporal == 0
}

// TemporalAccuracy returns the temporal hit ratio. ok is false when
// the score carries no data.
func (s Score) TemporalAccuracy() (ratio float64, ok bool) {
	if s.NoData() {
		return 0, false
	}
	return float64(s.CorrectTemporal) / float64(s.TotalTemporal), true
}

// ExistentialAccuracy returns the existential hit ratio. ok is false
// when the score carries no data.
func (s Score) ExistentialAccuracy() (ratio float64, ok bool) {
	if s.NoData() {
		return 0, false
	}
	return float64(s.CorrectExistential) / float64(s.TotalExistential), true
}

// Discover runs the per-ordered-pair classification at threshold 1.0
// and canonicalizes the result into an undirected set: the records are
// sorted by (from, to) and a record is kept only if neither its pair
// nor the reversed pair has been kept before. For k activities the
// result has exactly k·(k−1)/2 records, one per unordered pair.
func Discover(log *eventlog.Log, classifier deps.Classifier) []deps.Dependency {
	records := matrix.Classify(log, classifier, exactThreshold, exactThreshold)

	sort.Slice(records, func(i, j int) bool {
		if records[i].From != records[j].From {
			return records[i].From < records[j].From
		}
		return records[i].To < records[j].To
	})

	seen := make(map[[2]string]struct{}, len(records)/2)
	canonical := make([]deps.Dependency, 0, len(records)/2)
	for _, d := range records {
		if _, ok := seen[[2]string{d.From, d.To}]; ok {
			continue
		}
		if _, ok := seen[[2]string{d.To, d.From}]; ok {
			continue
		}
		seen[[2]string{d.From, d.To}] = struct{}{}
		canonical = append(canonical, d)
	}
	return canonical
}

// Evaluate scores the hypothesis set against the log's canonical
// discovered dependencies.
//
// Temporal scoring requires full structural equality. Existential
// scoring ignores direction when both sides carry the same symmetric
// kind (Equivalence, NegatedEquivalence, Or — direction adds no
// information there) and otherwise requires full structural equality,
// with both-absent counting as correct.
func Evaluate(hypotheses []deps.Dependency, log *eventlog.Log, classifier deps.Classifier) Score {
	canonical := Discover(log, classifier)

	score := Score{
		TotalTemporal:    len(hypotheses),
		TotalExistential: len(hypotheses),
	}

	for _, h := range hypotheses {
		actual, ok := findPair(canonical, h.From, h.To)
		if !ok {
			continue
		}

		if h.Temporal.Equal(actual.Temporal) {
			score.CorrectTemporal++
		}
		if existentialMatches(h.Existential, actual.Existential) {
			score.CorrectExistential++
		}
	}
	return score
}

// findPair locates the canonical record covering the unordered pair;
// at most one match exists by construction.
func findPair(canonical []deps.Dependency, from, to string) (deps.Dependency, bool) {
	for _, d := range canonical {
		if d.SamePair(from, to) {
			return d, true
		}
	}
	return deps.Dependency{}, false
}

func existentialMatches(expected, actual *deps.ExistentialDependency) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	switch expected.Kind {
	case deps.Equivalence, deps.NegatedEquivalence, deps.Or:
		return expected.Kind == actual.Kind
	default:
		return expected.Equal(actual)
	}
}
