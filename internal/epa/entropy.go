package epa

import "math"

// Metrics holds the entropy measures derived from a finished automaton.
type Metrics struct {
	VariantEntropy           float64 `json:"variant_entropy"`
	NormalizedVariantEntropy float64 `json:"normalized_variant_entropy"`
}

// baseline returns S, the state count with the root excluded once the
// automaton has grown past it.
func (a *Automaton) baseline() float64 {
	s := math.Max(float64(len(a.States)), 1)
	if s > 1 {
		s--
	}
	return s
}

// VariantEntropy computes the dispersion of states over partitions:
//
//	S*log10(S) - sum over partitions of size*log10(size)
//
// The computation is pure and idempotent over the finished automaton.
func (a *Automaton) VariantEntropy() float64 {
	s := a.baseline()

	var sum float64
	for _, size := range a.PartitionSizes() {
		f := float64(size)
		sum += f * math.Log10(f)
	}

	return s*math.Log10(s) - sum
}

// NormalizedVariantEntropy scales VariantEntropy into [0,1] by the
// maximum S*log10(S). It is 0 when the normalizing term is 0, i.e.
// when the automaton has at most one state beyond the root.
func (a *Automaton) NormalizedVariantEntropy() float64 {
	s := a.baseline()
	denom := s * math.Log10(s)
	if denom == 0 {
		return 0
	}
	return a.VariantEntropy() / denom
}

// EntropyMetrics bundles both measures.
func (a *Automaton) EntropyMetrics() Metrics {
	return Metrics{
		VariantEntropy:           a.VariantEntropy(),
		NormalizedVariantEntropy: a.NormalizedVariantEntropy(),
	}
}
