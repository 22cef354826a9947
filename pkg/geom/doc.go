// Package geom provides unit normalization, axis-aligned 2D bounding boxes,
// and vertex/centroid extraction from raw element geometry, memoized per
// analysis run.
package geom
