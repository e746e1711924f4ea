package deps

// Classifier is the pairwise classification oracle the matrix builder
// and evaluator depend on.
//
// Both methods are pure and deterministic. threshold is the minimum
// fraction of supporting evidence, in [0,1], required to report a
// relation instead of nil; raising it never grows the set of reported
// relations. Each call returns at most one relation. Callers never pass
// from == to.
//
// Classifying the forward pair (from, to) and the reversed pair
// (to, from) may yield two complementary descriptions of the same
// underlying fact; reconciling them into one canonical record is the
// evaluator's job, not the classifier's.
type Classifier interface {
	// Temporal classifies the ordering relation of the pair over the
	// traces, or returns nil when support is below the threshold.
	Temporal(from, to string, traces [][]string, threshold float64) *TemporalDependency

	// Existential classifies the co-occurrence relation of the pair over
	// the traces, or returns nil when support is below the threshold.
	Existential(from, to string, traces [][]string, threshold float64) *ExistentialDependency
}
