// Package report renders analysis results into the tabular Excel summary
// consumed by reviewers: one row per category with passing/failing counts,
// failing element IDs and reasons.
package report
