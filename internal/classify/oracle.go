package classify

import "github.com/loglens/loglens/internal/deps"

// Oracle implements deps.Classifier over raw trace evidence. The zero
// value is ready to use; the type is stateless.
type Oracle struct{}

// New returns the default classification oracle.
func New() Oracle {
	return Oracle{}
}

// Temporal implements deps.Classifier.
func (Oracle) Temporal(from, to string, traces [][]string, threshold float64) *deps.TemporalDependency {
	return classifyTemporal(from, to, traces, threshold)
}

// Existential implements deps.Classifier.
func (Oracle) Existential(from, to string, traces [][]string, threshold float64) *deps.ExistentialDependency {
	return classifyExistential(from, to, traces, threshold)
}
