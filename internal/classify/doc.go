// Package classify provides the default pairwise classification
// oracle.
//
// The core packages depend only on the deps.Classifier contract; this
// package is one implementation of it, derived from per-trace evidence.
// Temporal classification votes per trace on the ordering of the two
// activities; existential classification counts trace-level
// co-occurrence patterns and reports the strongest relation kind whose
// support meets the threshold.
//
// Both functions are pure and deterministic, report at most one
// relation per call, and never grow their result set when the
// threshold is raised. The harness package pins the exact behavior
// against a reference corpus of logs and expected dependency sets.
package classify
