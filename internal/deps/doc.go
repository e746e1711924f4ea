// Package deps defines the dependency record model shared by the matrix
// builder and the evaluator, plus the compact textual notation used for
// fixtures and reports.
//
// A Dependency describes one ordered activity pair along two independent
// axes:
//   - Temporal: ordering between the activities (Direct adjacency or
//     Eventual precedence) with a leading direction.
//   - Existential: co-occurrence between the activities (Implication,
//     Equivalence, NegatedEquivalence, Nand, Or) with a direction;
//     symmetric kinds conventionally carry Both.
//
// Either axis may be absent. A pair with neither relation is independent
// and renders as "None".
//
// The compact notation is line-oriented and tokenized on commas, colons,
// and spaces:
//
//	from,to:temporalCode,temporalDir existentialCode[,existentialDir]
//
// Writing a Both-direction existential relation emits no direction token;
// reading no token yields Both. Decode failures are recoverable
// *DecodeError values identifying the offending field, never panics.
package deps
