// Package spatial answers proximity questions over element bounding boxes:
// storey-scoped nearby search backed by an R-tree, and the directional
// probe strips used by enclosure checks.
package spatial
