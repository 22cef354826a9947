package enclose

import (
	"egress/pkg/geom"
	"egress/pkg/model"
	"egress/pkg/spatial"
)

// Probe defaults in mm: how far a strip reaches into the flight's box and
// how far it searches outward for walls.
const (
	DefaultSideMargin   = 300.0
	DefaultSearchExpand = 500.0
)

// Record is the enclosure verdict for one stair flight. FullyEnclosed is
// true exactly when all four sides found a wall. GeometryKnown false means
// the flight's bounding box was unextractable; such flights are reported
// as a distinct failure, never silently skipped.
type Record struct {
	Flight        model.Ref
	Sides         []spatial.Side
	FullyEnclosed bool
	GeometryKnown bool
}

// Missing returns the sides where no wall was found, in probe order.
func (r Record) Missing() []spatial.Side {
	found := make(map[spatial.Side]bool, len(r.Sides))
	for _, s := range r.Sides {
		found[s] = true
	}
	var out []spatial.Side
	for _, s := range []spatial.Side{spatial.SideWest, spatial.SideEast, spatial.SideSouth, spatial.SideNorth} {
		if !found[s] {
			out = append(out, s)
		}
	}
	return out
}

// Verifier tests wall presence around flight bounding boxes using the four
// directional probe strips over a wall index.
type Verifier struct {
	ext          *geom.Extractor
	walls        *spatial.Index
	sideMargin   float64
	searchExpand float64
}

// NewVerifier creates a verifier over the run's wall index. Non-positive
// probe parameters fall back to the defaults.
func NewVerifier(ext *geom.Extractor, walls *spatial.Index, sideMargin, searchExpand float64) *Verifier {
	if sideMargin <= 0 {
		sideMargin = DefaultSideMargin
	}
	if searchExpand <= 0 {
		searchExpand = DefaultSearchExpand
	}
	return &Verifier{ext: ext, walls: walls, sideMargin: sideMargin, searchExpand: searchExpand}
}

// Flight verifies one stair flight.
func (v *Verifier) Flight(fl model.Element) Record {
	rec := Record{Flight: fl.Ref()}
	box, ok := v.ext.Box(fl)
	if !ok {
		return rec
	}
	rec.GeometryKnown = true
	rec.Sides = v.sidesFound(box, fl.Ref().Storey)
	rec.FullyEnclosed = len(rec.Sides) == 4
	return rec
}

// sidesFound probes the four strips around box for same-storey walls. A
// side counts as found if any wall box overlaps its strip.
func (v *Verifier) sidesFound(box geom.Box2, storey model.StoreyID) []spatial.Side {
	var sides []spatial.Side
	for _, strip := range spatial.ProbeStrips(box, v.sideMargin, v.searchExpand) {
		if len(v.walls.Nearby(strip.Box, storey, 0)) > 0 {
			sides = append(sides, strip.Side)
		}
	}
	return sides
}
