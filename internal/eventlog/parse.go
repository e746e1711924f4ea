package eventlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNoTraces indicates that an input contained no usable traces.
var ErrNoTraces = errors.New("eventlog: no traces in input")

// WeightedTrace pairs a trace with a repeat count, as written in the
// plain-text format's optional ":N" suffix.
type WeightedTrace struct {
	Trace     Trace
	Frequency int
}

// ParseText parses the plain-text trace format into a log: one trace
// per line, comma-separated activity labels, blank lines ignored. A
// ":N" suffix repeats the trace N times.
func ParseText(text string) (*Log, error) {
	weighted, err := ParseWeighted(text)
	if err != nil {
		return nil, err
	}

	var traces []Trace
	for _, wt := range weighted {
		for i := 0; i < wt.Frequency; i++ {
			traces = append(traces, wt.Trace)
		}
	}
	return New(traces), nil
}

// ParseWeighted parses the plain-text trace format without expanding
// frequencies. Used by the XES exporter, which repeats traces itself.
func ParseWeighted(text string) ([]WeightedTrace, error) {
	var out []WeightedTrace
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tracePart := line
		frequency := 1
		if idx := strings.LastIndex(line, ":"); idx >= 0 {
			freqPart := strings.TrimSpace(line[idx+1:])
			n, err := strconv.Atoi(freqPart)
			if err != nil {
				return nil, fmt.Errorf("eventlog: line %d: invalid frequency %q: %w", i+1, freqPart, err)
			}
			if n < 1 {
				return nil, fmt.Errorf("eventlog: line %d: frequency must be positive, got %d", i+1, n)
			}
			tracePart = line[:idx]
			frequency = n
		}

		trace := splitActivities(tracePart)
		if len(trace) == 0 {
			continue
		}
		out = append(out, WeightedTrace{Trace: trace, Frequency: frequency})
	}

	if len(out) == 0 {
		return nil, ErrNoTraces
	}
	return out, nil
}

// splitActivities splits a comma-separated activity list, dropping
// empty entries (trailing commas are common in hand-written logs) and
// NFC-normalizing each label.
func splitActivities(s string) Trace {
	var trace Trace
	for _, raw := range strings.Split(s, ",") {
		activity := strings.TrimSpace(raw)
		if activity == "" {
			continue
		}
		trace = append(trace, norm.NFC.String(activity))
	}
	return trace
}
