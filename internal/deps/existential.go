package deps

// ExistentialKind distinguishes the co-occurrence relations.
type ExistentialKind int

const (
	// Implication: occurrence of one activity implies the other.
	// Asymmetric; carries Forward or Backward.
	Implication ExistentialKind = iota + 1
	// Equivalence: the activities always co-occur. Symmetric.
	Equivalence
	// NegatedEquivalence: the activities never co-occur. Symmetric.
	NegatedEquivalence
	// Nand: the activities never appear together. Symmetric.
	Nand
	// Or: at least one of the activities appears. Symmetric.
	Or
)

// String returns the metrics name of the kind.
func (k ExistentialKind) String() string {
	switch k {
	case Implication:
		return "implication"
	case Equivalence:
		return "equivalence"
	case NegatedEquivalence:
		return "negated equivalence"
	case Nand:
		return "nand"
	case Or:
		return "or"
	default:
		return "unknown"
	}
}

// Code returns the compact-notation code of the kind.
func (k ExistentialKind) Code() string {
	switch k {
	case Implication:
		return "i"
	case Equivalence:
		return "e"
	case NegatedEquivalence:
		return "ne"
	case Nand:
		return "n"
	case Or:
		return "o"
	default:
		return "?"
	}
}

// Symmetric reports whether direction carries no information for the kind.
func (k ExistentialKind) Symmetric() bool {
	switch k {
	case Equivalence, NegatedEquivalence, Nand, Or:
		return true
	default:
		return false
	}
}

// ExistentialDirection indicates which way an existential relation points.
type ExistentialDirection int

const (
	// ExistentialForward: From implies To.
	ExistentialForward ExistentialDirection = iota + 1
	// ExistentialBackward: To implies From.
	ExistentialBackward
	// ExistentialBoth: the relation holds both ways. Conventional for
	// symmetric kinds.
	ExistentialBoth
)

// Code returns the compact-notation code of the direction.
func (d ExistentialDirection) Code() string {
	switch d {
	case ExistentialForward:
		return "f"
	case ExistentialBackward:
		return "b"
	case ExistentialBoth:
		return "both"
	default:
		return "?"
	}
}

// ExistentialDependency is a co-occurrence relation between two activities.
type ExistentialDependency struct {
	From      string
	To        string
	Kind      ExistentialKind
	Direction ExistentialDirection
}

// NewExistential creates an existential dependency record.
func NewExistential(from, to string, kind ExistentialKind, dir ExistentialDirection) *ExistentialDependency {
	return &ExistentialDependency{From: from, To: to, Kind: kind, Direction: dir}
}

// Equal reports full structural equality (endpoints, kind, direction).
// Both-nil counts as equal.
func (e *ExistentialDependency) Equal(other *ExistentialDependency) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	return *e == *other
}

// String renders the relation in compact notation, e.g. "i,b".
// A Both direction emits no direction token: "e" rather than "e,both".
func (e *ExistentialDependency) String() string {
	if e.Direction == ExistentialBoth {
		return e.Kind.Code()
	}
	return e.Kind.Code() + "," + e.Direction.Code()
}
