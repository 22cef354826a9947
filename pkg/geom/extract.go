package geom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"egress/pkg/model"
)

// extraction is the memoized result of reducing one element's geometry.
type extraction struct {
	verts    []v3.Vec
	box      Box2
	hasBox   bool
	centroid v3.Vec
}

// Extractor pulls raw coordinate data from element representations and
// reduces it to millimeter-normalized vertex sets, 2D bounding boxes and
// centroids. Results are memoized per element for the duration of one
// analysis run; entries are written at most once per key, so recomputation
// is idempotent. An Extractor must not be shared across runs on different
// models.
type Extractor struct {
	scale float64
	memo  map[model.ElementID]*extraction
}

// NewExtractor creates an extractor for one analysis run over m.
func NewExtractor(m model.Model) *Extractor {
	return &Extractor{
		scale: m.UnitScale(),
		memo:  make(map[model.ElementID]*extraction),
	}
}

func (e *Extractor) extract(el model.Element) *extraction {
	id := el.Ref().ID
	if got, ok := e.memo[id]; ok {
		return got
	}

	ex := &extraction{}
	raw := el.Representation().Vertices()
	if len(raw) > 0 {
		ex.verts = make([]v3.Vec, len(raw))
		minX, minY := 0.0, 0.0
		maxX, maxY := 0.0, 0.0
		var sum v3.Vec
		for i, p := range raw {
			v := v3.Vec{X: p.X * e.scale, Y: p.Y * e.scale, Z: p.Z * e.scale}
			ex.verts[i] = v
			if i == 0 {
				minX, maxX = v.X, v.X
				minY, maxY = v.Y, v.Y
			} else {
				minX = min(minX, v.X)
				maxX = max(maxX, v.X)
				minY = min(minY, v.Y)
				maxY = max(maxY, v.Y)
			}
			sum.X += v.X
			sum.Y += v.Y
			sum.Z += v.Z
		}
		n := float64(len(ex.verts))
		ex.centroid = v3.Vec{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
		ex.box = NewBox2(minX, minY, maxX, maxY)
		ex.hasBox = true
	}

	e.memo[id] = ex
	return ex
}

// Vertices returns the element's vertex set normalized to millimeters.
// An element without extractable geometry yields an empty sequence;
// callers must treat that as unknown, never as the origin.
func (e *Extractor) Vertices(el model.Element) []v3.Vec {
	return e.extract(el).verts
}

// Box returns the horizontal-plane bounding box of the element's vertices.
// The second result is false when no vertices are extractable.
func (e *Extractor) Box(el model.Element) (Box2, bool) {
	ex := e.extract(el)
	return ex.box, ex.hasBox
}

// Centroid returns the arithmetic mean of the element's vertices.
// The second result is false when no vertices are extractable.
func (e *Extractor) Centroid(el model.Element) (v3.Vec, bool) {
	ex := e.extract(el)
	return ex.centroid, ex.hasBox
}
