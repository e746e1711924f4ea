package eventlog

import (
	"sort"
	"strings"
)

// Trace is one ordered sequence of activity labels for a single case.
type Trace = []string

// Log is an ordered collection of traces.
type Log struct {
	Traces []Trace
}

// New creates a log over the given traces.
func New(traces []Trace) *Log {
	return &Log{Traces: traces}
}

// Empty reports whether the log contains no traces.
func (l *Log) Empty() bool {
	return len(l.Traces) == 0
}

// Activities returns the deduplicated activity set of the log in
// lexicographic order. The total order makes every downstream pair
// enumeration deterministic.
func (l *Log) Activities() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, trace := range l.Traces {
		for _, activity := range trace {
			if _, ok := seen[activity]; ok {
				continue
			}
			seen[activity] = struct{}{}
			out = append(out, activity)
		}
	}
	sort.Strings(out)
	return out
}

// Variants returns the distinct activity sequences of the log with
// their frequencies. The key is the comma-joined trace.
func (l *Log) Variants() map[string]int {
	variants := make(map[string]int)
	for _, trace := range l.Traces {
		variants[strings.Join(trace, ",")]++
	}
	return variants
}
