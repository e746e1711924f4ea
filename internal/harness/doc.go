// Package harness runs conformance scenarios against the analysis
// pipeline.
//
// A scenario is a YAML file pairing an event log with the dependencies
// and metrics the pipeline is expected to discover from it. Scenarios
// pin down the classification oracle's behavior against a reference
// corpus — the contract is defined by these fixtures, not by prose —
// and golden files capture the full rendered report for byte-exact
// regression comparison.
//
// To regenerate golden files after an intentional change:
//
//	go test ./internal/harness -update
package harness
