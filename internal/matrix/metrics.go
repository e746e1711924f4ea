package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loglens/loglens/internal/deps"
)

// Metrics aggregates classification results over all ordered pairs.
type Metrics struct {
	// TotalActivities is the size of the deduplicated activity set.
	TotalActivities int `json:"total_activities"`

	// FullIndependences counts ordered pairs with neither relation.
	FullIndependences int `json:"full_independences"`

	// PureExistences counts ordered pairs with no temporal relation.
	// Full independence implies pure existence, so FullIndependences
	// never exceeds this.
	PureExistences int `json:"pure_existences"`

	// EventualEquivalences counts ordered pairs that are existentially
	// equivalent and temporally eventual.
	EventualEquivalences int `json:"eventual_equivalences"`

	// DirectEquivalences counts ordered pairs that are existentially
	// equivalent and temporally direct.
	DirectEquivalences int `json:"direct_equivalences"`

	// RelationshipCounts histograms ordered pairs by their
	// "(temporalKind, existentialKind)" combination, absent relations
	// keyed as "none". Values sum to n²−n.
	RelationshipCounts map[string]int `json:"relationship_counts"`
}

func newMetrics(totalActivities int) Metrics {
	return Metrics{
		TotalActivities:    totalActivities,
		RelationshipCounts: make(map[string]int),
	}
}

func (m *Metrics) update(d deps.Dependency) {
	temporal := "none"
	if d.Temporal != nil {
		temporal = d.Temporal.Kind.String()
	} else {
		m.PureExistences++
	}

	existential := "none"
	if d.Existential != nil {
		existential = d.Existential.Kind.String()
	} else if d.Temporal == nil {
		m.FullIndependences++
	}

	m.RelationshipCounts[fmt.Sprintf("(%s, %s)", temporal, existential)]++

	if d.Existential != nil && d.Existential.Kind == deps.Equivalence && d.Temporal != nil {
		switch d.Temporal.Kind {
		case deps.Eventual:
			m.EventualEquivalences++
		case deps.Direct:
			m.DirectEquivalences++
		}
	}
}

// RelationshipSummary renders the histogram one "(t, e): n" line per
// combination, sorted by key for stable output.
func (m Metrics) RelationshipSummary() string {
	keys := make([]string, 0, len(m.RelationshipCounts))
	for k := range m.RelationshipCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %d\n", k, m.RelationshipCounts[k])
	}
	return b.String()
}
