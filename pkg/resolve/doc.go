// Package resolve looks up named numeric quantities on model elements:
// direct attributes first, then declared property sets, then quantity sets.
// Absence is a first-class result, never an error.
package resolve
