package measure

import (
	"math"

	"egress/pkg/geom"
	"egress/pkg/model"
	"egress/pkg/resolve"
)

// Unknown is the failure sentinel for dimensions that could not be derived.
const Unknown = -1.0

// Source records where an estimate came from.
type Source int

const (
	SourceGeometry Source = iota
	SourceProperty
	SourceNone
)

func (s Source) String() string {
	switch s {
	case SourceGeometry:
		return "geometry"
	case SourceProperty:
		return "property"
	case SourceNone:
		return "none"
	default:
		return "unknown"
	}
}

// Estimate is a best-effort width/length for an element. Source == SourceNone
// implies both dimensions are the Unknown sentinel; a derived dimension is
// always non-negative.
type Estimate struct {
	Width  float64
	Length float64
	Source Source
}

// Known reports whether the estimate carries a usable width.
func (e Estimate) Known() bool {
	return e.Source != SourceNone
}

func none() Estimate {
	return Estimate{Width: Unknown, Length: Unknown, Source: SourceNone}
}

// Candidate property names per element kind. Lowercase; matched by
// substring against set entries.
var (
	doorWidthNames   = []string{"overallwidth", "clearwidth", "doorwidth", "width"}
	flightWidthNames = []string{"actual run width", "actualrunwidth", "run width", "clearwidth", "width", "tread"}
	spaceWidthNames  = []string{"clearwidth", "width"}
)

// Estimator derives element dimensions. Raw geometry is ground truth when
// present, because declared properties in source models are frequently
// absent or wrong; properties are the fallback of last resort. Quick mode
// inverts this: properties are tried first and geometry extraction is
// skipped entirely.
type Estimator struct {
	m     model.Model
	ext   *geom.Extractor
	quick bool
}

// NewEstimator creates an estimator for one run. ext must be the run's
// shared extractor so repeated estimates stay O(1) and bit-identical.
func NewEstimator(m model.Model, ext *geom.Extractor, quick bool) *Estimator {
	return &Estimator{m: m, ext: ext, quick: quick}
}

// Dimensions estimates width and length for the element according to its
// kind's fallback policy.
func (es *Estimator) Dimensions(el model.Element) Estimate {
	switch el.Ref().Kind {
	case model.KindDoor:
		return es.door(el)
	case model.KindStairFlight:
		return es.flight(el)
	default:
		return es.space(el)
	}
}

// space: width is the smaller horizontal extent, length the larger.
// Property fallback solves the rectangle with the declared area and
// perimeter when direct width properties are missing.
func (es *Estimator) space(el model.Element) Estimate {
	prop := func() Estimate {
		if w, ok := resolve.Numeric(el, spaceWidthNames); ok {
			return Estimate{Width: w, Length: Unknown, Source: SourceProperty}
		}
		if w, l, ok := rectangleFromAreaPerimeter(el); ok {
			return Estimate{Width: w, Length: l, Source: SourceProperty}
		}
		return none()
	}

	if es.quick {
		return prop()
	}
	if box, ok := es.ext.Box(el); ok {
		ex := box.Extents()
		w, l := min(ex.X, ex.Y), max(ex.X, ex.Y)
		if w > 0 {
			return Estimate{Width: w, Length: l, Source: SourceGeometry}
		}
	}
	return prop()
}

// door: the leaf's long horizontal extent runs along the wall, so the
// larger extent is the clear width. The opening the door fills is preferred
// over the leaf itself when the model records one.
func (es *Estimator) door(el model.Element) Estimate {
	prop := func() Estimate {
		if w, ok := resolve.Numeric(el, doorWidthNames); ok {
			return Estimate{Width: w, Length: Unknown, Source: SourceProperty}
		}
		return none()
	}

	if es.quick {
		return prop()
	}
	target := el
	if op, ok := el.Opening(); ok {
		if opEl, found := es.m.Element(op.ID); found {
			if _, has := es.ext.Box(opEl); has {
				target = opEl
			}
		}
	}
	if box, ok := es.ext.Box(target); ok {
		ex := box.Extents()
		w, l := max(ex.X, ex.Y), min(ex.X, ex.Y)
		if w > 0 {
			return Estimate{Width: w, Length: l, Source: SourceGeometry}
		}
	}
	return prop()
}

// flight: the run is longer than it is wide, so the smaller horizontal
// extent is the clear width.
func (es *Estimator) flight(el model.Element) Estimate {
	prop := func() Estimate {
		if w, ok := resolve.Numeric(el, flightWidthNames); ok {
			return Estimate{Width: w, Length: Unknown, Source: SourceProperty}
		}
		return none()
	}

	if es.quick {
		return prop()
	}
	if box, ok := es.ext.Box(el); ok {
		ex := box.Extents()
		w, l := min(ex.X, ex.Y), max(ex.X, ex.Y)
		if w > 0 {
			return Estimate{Width: w, Length: l, Source: SourceGeometry}
		}
	}
	return prop()
}

// rectangleFromAreaPerimeter recovers width and length of a rectangular
// space from declared Area and Perimeter quantities: with semi-perimeter s,
// width solves w^2 - s*w + A = 0.
func rectangleFromAreaPerimeter(el model.Element) (width, length float64, ok bool) {
	area, okA := resolve.NumericRaw(el, []string{"area"})
	per, okP := resolve.NumericRaw(el, []string{"perimeter"})
	if !okA || !okP || area <= 0 || per <= 0 {
		return 0, 0, false
	}

	// Magnitude heuristics as elsewhere: large areas are mm^2, large
	// perimeters are mm.
	if area > 1000 {
		area /= 1_000_000.0 // mm^2 -> m^2
	}
	if per > 100 {
		per /= 1000.0 // mm -> m
	}

	s := per / 2.0
	disc := s*s - 4*area
	if disc < 0 {
		disc = 0
	}
	w := (s - math.Sqrt(disc)) / 2.0
	if w <= 0 {
		return 0, 0, false
	}
	return w * 1000.0, (area / w) * 1000.0, true
}
