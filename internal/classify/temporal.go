package classify

import "github.com/loglens/loglens/internal/deps"

// orderingVote is one trace's evidence about the ordering of a pair.
type orderingVote int

const (
	voteMixed orderingVote = iota
	voteForward
	voteBackward
)

// classifyTemporal derives the ordering relation of (from, to) from
// the traces containing both activities.
//
// Each such trace votes forward when every occurrence of from precedes
// every occurrence of to, backward for the reverse, and abstains when
// the occurrences interleave. The winning direction must be supported
// by at least threshold of the voting-eligible traces; ties go to
// forward. The relation is Direct when every winning vote is adjacent
// (the trailing occurrence of the leader immediately precedes the
// first occurrence of the follower), Eventual otherwise.
func classifyTemporal(from, to string, traces [][]string, threshold float64) *deps.TemporalDependency {
	var relevant, forward, backward int
	var forwardAdjacent, backwardAdjacent int

	for _, trace := range traces {
		fromLast, fromFirst := -1, -1
		toLast, toFirst := -1, -1
		for i, activity := range trace {
			switch activity {
			case from:
				if fromFirst < 0 {
					fromFirst = i
				}
				fromLast = i
			case to:
				if toFirst < 0 {
					toFirst = i
				}
				toLast = i
			}
		}
		if fromFirst < 0 || toFirst < 0 {
			continue
		}
		relevant++

		switch {
		case fromLast < toFirst:
			forward++
			if toFirst == fromLast+1 {
				forwardAdjacent++
			}
		case toLast < fromFirst:
			backward++
			if fromFirst == toLast+1 {
				backwardAdjacent++
			}
		}
	}

	if relevant == 0 {
		return nil
	}

	votes, adjacent, direction := forward, forwardAdjacent, deps.TemporalForward
	if backward > forward {
		votes, adjacent, direction = backward, backwardAdjacent, deps.TemporalBackward
	}

	if float64(votes)/float64(relevant) < threshold || votes == 0 {
		return nil
	}

	kind := deps.Eventual
	if adjacent == votes {
		kind = deps.Direct
	}
	return deps.NewTemporal(from, to, kind, direction)
}
