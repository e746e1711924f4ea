// Package epa builds extended prefix automata over event logs and
// derives entropy-based complexity metrics from them.
//
// The automaton compresses a log's traces into a shared-prefix state
// machine: identical prefixes across cases land on the same states, and
// each state carries a partition id approximating the trace variant it
// belongs to. Divergence (branching) opens a fresh partition; straight
// line extension inherits the parent's, so the partition histogram
// tracks behavioral diversity rather than trace length.
package epa

import (
	"fmt"
	"sort"

	"github.com/loglens/loglens/internal/eventlog"
)

// RootID is the synthetic id of the distinguished root state.
const RootID = "root"

// Event is one activity occurrence within a case.
type Event struct {
	Case     string
	Activity string
}

// State is an automaton state. The root state has Partition 0, meaning
// no partition; every other state belongs to a partition >= 1.
type State struct {
	Partition int
	Events    map[Event]struct{}
}

type transitionKey struct {
	Source   string
	Activity string
}

// Automaton is an extended prefix automaton. Transitions form a
// deterministic partial function of (source state, activity label):
// at most one transition leaves any state on a given label, enforced
// by construction.
type Automaton struct {
	States      map[string]*State
	transitions map[transitionKey]string
	activities  map[string]struct{}
}

func newAutomaton() *Automaton {
	return &Automaton{
		States: map[string]*State{
			RootID: {Events: make(map[Event]struct{})},
		},
		transitions: make(map[transitionKey]string),
		activities:  make(map[string]struct{}),
	}
}

// Build constructs the automaton from activity occurrences in log
// order. For each occurrence it follows the existing transition from
// the case's current state when one exists (the prefix-sharing step),
// and otherwise creates a new state whose partition is assigned by the
// branching rules.
func Build(events []Event) *Automaton {
	a := newAutomaton()

	maxPartition := 0
	outgoing := make(map[string]int)
	lastAt := make(map[string]string)

	for _, event := range events {
		source, ok := lastAt[event.Case]
		if !ok {
			source = RootID
		}

		key := transitionKey{Source: source, Activity: event.Activity}
		target, ok := a.transitions[key]
		if !ok {
			var partition int
			switch {
			case source == RootID:
				partition = 1
			case outgoing[source] > 0:
				// A reused branch point always opens a fresh class.
				partition = maxPartition + 1
			default:
				// Linear extension inherits the parent's class.
				partition = a.States[source].Partition
			}
			if partition > maxPartition {
				maxPartition = partition
			}

			target = fmt.Sprintf("s%d", len(a.States))
			a.States[target] = &State{
				Partition: partition,
				Events:    make(map[Event]struct{}),
			}
			a.transitions[key] = target
			outgoing[source]++
			a.activities[event.Activity] = struct{}{}
		}

		a.States[target].Events[event] = struct{}{}
		lastAt[event.Case] = target
	}

	return a
}

// FromLog builds the automaton from a log, assigning each trace a
// synthetic case id by position.
func FromLog(log *eventlog.Log) *Automaton {
	var events []Event
	for i, trace := range log.Traces {
		caseID := fmt.Sprintf("case_%d", i)
		for _, activity := range trace {
			events = append(events, Event{Case: caseID, Activity: activity})
		}
	}
	return Build(events)
}

// StateCount returns the number of states including the root.
func (a *Automaton) StateCount() int {
	return len(a.States)
}

// Target returns the state reached from source on the given activity
// label, if the transition exists.
func (a *Automaton) Target(source, activity string) (string, bool) {
	target, ok := a.transitions[transitionKey{Source: source, Activity: activity}]
	return target, ok
}

// TransitionCount returns the number of transitions.
func (a *Automaton) TransitionCount() int {
	return len(a.transitions)
}

// Activities returns the automaton's activity labels in lexicographic
// order.
func (a *Automaton) Activities() []string {
	out := make([]string, 0, len(a.activities))
	for activity := range a.activities {
		out = append(out, activity)
	}
	sort.Strings(out)
	return out
}

// PartitionSizes returns the histogram of states by partition id. The
// root is excluded, since it belongs to no partition.
func (a *Automaton) PartitionSizes() map[int]int {
	sizes := make(map[int]int)
	for id, state := range a.States {
		if id == RootID {
			continue
		}
		sizes[state.Partition]++
	}
	return sizes
}
