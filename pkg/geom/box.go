package geom

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Box2 is an axis-aligned bounding box over the horizontal plane, in
// millimeters. Degenerate (zero-area) boxes are valid values: a box built
// from a single vertex has Min == Max.
type Box2 struct {
	Min v2.Vec
	Max v2.Vec
}

// NewBox2 builds a box from explicit extents.
func NewBox2(minX, minY, maxX, maxY float64) Box2 {
	return Box2{
		Min: v2.Vec{X: minX, Y: minY},
		Max: v2.Vec{X: maxX, Y: maxY},
	}
}

// Degenerate reports whether the box has zero area.
func (b Box2) Degenerate() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Extents returns the (dx, dy) size of the box.
func (b Box2) Extents() v2.Vec {
	return v2.Vec{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y}
}

// Center returns the box midpoint.
func (b Box2) Center() v2.Vec {
	return v2.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Expand grows the box by m on all four sides. Negative m shrinks it.
func (b Box2) Expand(m float64) Box2 {
	return NewBox2(b.Min.X-m, b.Min.Y-m, b.Max.X+m, b.Max.Y+m)
}

// Union returns the smallest box covering both b and o.
func (b Box2) Union(o Box2) Box2 {
	return NewBox2(
		min(b.Min.X, o.Min.X),
		min(b.Min.Y, o.Min.Y),
		max(b.Max.X, o.Max.X),
		max(b.Max.Y, o.Max.Y),
	)
}

// ContainsPoint reports whether (x, y) lies inside the box expanded by
// margin on all sides.
func (b Box2) ContainsPoint(x, y, margin float64) bool {
	return x >= b.Min.X-margin && x <= b.Max.X+margin &&
		y >= b.Min.Y-margin && y <= b.Max.Y+margin
}

// Overlaps reports whether a and b intersect after each is expanded by
// margin. The test is symmetric in a and b and monotone in margin.
func Overlaps(a, b Box2, margin float64) bool {
	return !(a.Max.X < b.Min.X-margin || b.Max.X < a.Min.X-margin ||
		a.Max.Y < b.Min.Y-margin || b.Max.Y < a.Min.Y-margin)
}
