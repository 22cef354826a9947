// Package comply applies fixed minimum-dimension and connectivity
// thresholds to measurements and graph facts, yielding immutable pass/fail
// verdicts with ordered reasons.
package comply
