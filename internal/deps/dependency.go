package deps

// Dependency is the atomic unit of the dependency matrix: one ordered
// activity pair with its (possibly absent) temporal and existential
// relations. A record with neither relation is a valid independent pair.
//
// Records are immutable once produced by the matrix builder.
type Dependency struct {
	From        string
	To          string
	Temporal    *TemporalDependency
	Existential *ExistentialDependency
}

// New creates a dependency record for the pair (from, to).
func New(from, to string, temporal *TemporalDependency, existential *ExistentialDependency) Dependency {
	return Dependency{From: from, To: to, Temporal: temporal, Existential: existential}
}

// Independent reports whether the pair has neither relation.
func (d Dependency) Independent() bool {
	return d.Temporal == nil && d.Existential == nil
}

// SamePair reports whether the record covers the same unordered activity
// pair as (from, to).
func (d Dependency) SamePair(from, to string) bool {
	return (d.From == from && d.To == to) || (d.From == to && d.To == from)
}

// String renders the record for a matrix cell: the temporal and
// existential representations joined by a comma, a dash standing in for
// an absent side, or the literal "None" when both are absent.
func (d Dependency) String() string {
	switch {
	case d.Temporal != nil && d.Existential != nil:
		return d.Temporal.String() + "," + d.Existential.String()
	case d.Temporal != nil:
		return d.Temporal.String() + ",-"
	case d.Existential != nil:
		return "-," + d.Existential.String()
	default:
		return "None"
	}
}
