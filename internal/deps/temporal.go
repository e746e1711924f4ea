package deps

// TemporalKind distinguishes the two ordering relations.
type TemporalKind int

const (
	// Direct is adjacency-based precedence: the leading activity is
	// immediately followed by the other.
	Direct TemporalKind = iota + 1
	// Eventual is non-adjacent precedence: the leading activity is
	// eventually followed by the other.
	Eventual
)

// String returns the metrics name of the kind ("direct", "eventual").
func (k TemporalKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Eventual:
		return "eventual"
	default:
		return "unknown"
	}
}

// Code returns the compact-notation code of the kind.
func (k TemporalKind) Code() string {
	switch k {
	case Direct:
		return "d"
	case Eventual:
		return "e"
	default:
		return "?"
	}
}

// TemporalDirection indicates which endpoint of a temporal relation leads.
// It never swaps the stored endpoints.
type TemporalDirection int

const (
	// TemporalForward means From leads To.
	TemporalForward TemporalDirection = iota + 1
	// TemporalBackward means To leads From.
	TemporalBackward
)

// Code returns the compact-notation code of the direction.
func (d TemporalDirection) Code() string {
	switch d {
	case TemporalForward:
		return "f"
	case TemporalBackward:
		return "b"
	default:
		return "?"
	}
}

// TemporalDependency is an ordering relation between two activities.
type TemporalDependency struct {
	From      string
	To        string
	Kind      TemporalKind
	Direction TemporalDirection
}

// NewTemporal creates a temporal dependency record.
func NewTemporal(from, to string, kind TemporalKind, dir TemporalDirection) *TemporalDependency {
	return &TemporalDependency{From: from, To: to, Kind: kind, Direction: dir}
}

// Equal reports full structural equality (endpoints, kind, direction).
// Both-nil counts as equal.
func (t *TemporalDependency) Equal(other *TemporalDependency) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return *t == *other
}

// String renders the relation in compact notation, e.g. "d,f".
func (t *TemporalDependency) String() string {
	return t.Kind.Code() + "," + t.Direction.Code()
}
