package classify

import "github.com/loglens/loglens/internal/deps"

// classifyExistential derives the co-occurrence relation of (from, to)
// from trace-level presence patterns over the whole log.
//
// Each candidate kind has a support fraction over all traces:
//
//	Equivalence        both present or both absent
//	Implication (f/b)  from ⇒ to, resp. to ⇒ from
//	NegatedEquivalence exactly one present
//	Nand               not both present
//	Or                 at least one present
//
// The strongest kind whose support meets the threshold wins, in the
// order above; the weaker kinds are implied by the stronger ones, so
// the order reports the most informative relation. Implication
// direction ties go to forward. Pairs where one activity never occurs
// report nothing; their implications would hold vacuously.
func classifyExistential(from, to string, traces [][]string, threshold float64) *deps.ExistentialDependency {
	total := len(traces)
	if total == 0 {
		return nil
	}

	var nFrom, nTo, nBoth, nEither int
	for _, trace := range traces {
		hasFrom, hasTo := false, false
		for _, activity := range trace {
			if activity == from {
				hasFrom = true
			} else if activity == to {
				hasTo = true
			}
			if hasFrom && hasTo {
				break
			}
		}
		if hasFrom {
			nFrom++
		}
		if hasTo {
			nTo++
		}
		if hasFrom && hasTo {
			nBoth++
		}
		if hasFrom || hasTo {
			nEither++
		}
	}

	if nFrom == 0 || nTo == 0 {
		return nil
	}

	meets := func(supporting int) bool {
		return float64(supporting)/float64(total) >= threshold
	}

	// from ⇒ to fails only in traces with from but not to.
	implForward := total - (nFrom - nBoth)
	implBackward := total - (nTo - nBoth)

	switch {
	case meets(nBoth + (total - nEither)):
		return deps.NewExistential(from, to, deps.Equivalence, deps.ExistentialBoth)
	case meets(implForward) && implForward >= implBackward:
		return deps.NewExistential(from, to, deps.Implication, deps.ExistentialForward)
	case meets(implBackward):
		return deps.NewExistential(from, to, deps.Implication, deps.ExistentialBackward)
	case meets(nEither - nBoth):
		return deps.NewExistential(from, to, deps.NegatedEquivalence, deps.ExistentialBoth)
	case meets(total - nBoth):
		return deps.NewExistential(from, to, deps.Nand, deps.ExistentialBoth)
	case meets(nEither):
		return deps.NewExistential(from, to, deps.Or, deps.ExistentialBoth)
	default:
		return nil
	}
}
