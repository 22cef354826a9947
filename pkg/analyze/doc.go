// Package analyze orchestrates one compliance run over a frozen model
// snapshot: geometry extraction, dimension estimation, connectivity, and
// enclosure, evaluated into per-category verdicts.
package analyze
