package comply

import (
	"fmt"
	"strings"

	"egress/pkg/enclose"
	"egress/pkg/measure"
	"egress/pkg/model"
)

// Minimum clear widths in mm.
const (
	DoorMinWidth     = 800.0
	FlightMinWidth   = 1000.0
	CorridorMinWidth = 1300.0
)

// Category names the compliance rule family a verdict belongs to.
type Category int

const (
	CategoryDoor Category = iota
	CategoryCorridor
	CategoryStair
	CategoryFlight
	CategoryStaircase
)

func (c Category) String() string {
	switch c {
	case CategoryDoor:
		return "doors"
	case CategoryCorridor:
		return "corridors"
	case CategoryStair:
		return "stairs"
	case CategoryFlight:
		return "stair-flights"
	case CategoryStaircase:
		return "staircases"
	default:
		return "unknown"
	}
}

// Verdict is the immutable outcome of evaluating one element. Reasons
// accumulate every failing predicate in a fixed check order (width, then
// linkage, then enclosure), so reports are deterministic across runs.
// Warnings are reasons that annotate without failing the element.
type Verdict struct {
	Element      model.Ref
	Name         string
	Category     Category
	Passed       bool
	Reasons      []string
	Warnings     []string
	Measurements map[string]float64
}

// Thresholds are the width cutoffs applied by an Evaluator.
type Thresholds struct {
	DoorWidth     float64
	FlightWidth   float64
	CorridorWidth float64
}

// DefaultThresholds returns the BR18-style minimums.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DoorWidth:     DoorMinWidth,
		FlightWidth:   FlightMinWidth,
		CorridorWidth: CorridorMinWidth,
	}
}

// Evaluator applies thresholds. Each check is independent and
// non-short-circuiting: an element failing width is still separately
// reported for linkage or enclosure.
type Evaluator struct {
	t Thresholds
}

// NewEvaluator creates an evaluator; zero thresholds take the defaults.
func NewEvaluator(t Thresholds) *Evaluator {
	d := DefaultThresholds()
	if t.DoorWidth <= 0 {
		t.DoorWidth = d.DoorWidth
	}
	if t.FlightWidth <= 0 {
		t.FlightWidth = d.FlightWidth
	}
	if t.CorridorWidth <= 0 {
		t.CorridorWidth = d.CorridorWidth
	}
	return &Evaluator{t: t}
}

// widthReason returns the failing width predicate, or "" when width passes.
func widthReason(est measure.Estimate, minWidth float64) string {
	if !est.Known() {
		return "width unknown (geometry unavailable, no matching property)"
	}
	if est.Width < minWidth {
		return fmt.Sprintf("width %.0fmm < %.0fmm", est.Width, minWidth)
	}
	return ""
}

func measurements(est measure.Estimate) map[string]float64 {
	m := make(map[string]float64)
	if est.Known() {
		m["width_mm"] = est.Width
		if est.Length >= 0 {
			m["length_mm"] = est.Length
		}
	}
	return m
}

// Door evaluates a door's clear opening width. spaces is the number of
// spaces the door was associated with; more than two is a modeling anomaly
// that annotates the verdict without failing it.
func (ev *Evaluator) Door(ref model.Ref, name string, est measure.Estimate, spaces int) Verdict {
	v := Verdict{
		Element:      ref,
		Name:         name,
		Category:     CategoryDoor,
		Measurements: measurements(est),
	}
	if r := widthReason(est, ev.t.DoorWidth); r != "" {
		v.Reasons = append(v.Reasons, r)
	}
	if spaces > 2 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("anomaly: door associates with %d spaces", spaces))
	}
	v.Passed = len(v.Reasons) == 0
	return v
}

// Corridor evaluates a corridor's width and its linkage to a stair.
func (ev *Evaluator) Corridor(ref model.Ref, name string, est measure.Estimate, linked bool) Verdict {
	v := Verdict{
		Element:      ref,
		Name:         name,
		Category:     CategoryCorridor,
		Measurements: measurements(est),
	}
	if r := widthReason(est, ev.t.CorridorWidth); r != "" {
		v.Reasons = append(v.Reasons, r)
	}
	if !linked {
		v.Reasons = append(v.Reasons, "does not link to a stair via doors")
	}
	v.Passed = len(v.Reasons) == 0
	return v
}

// StairWidth evaluates a stair flight's clear width.
func (ev *Evaluator) StairWidth(ref model.Ref, name string, est measure.Estimate) Verdict {
	v := Verdict{
		Element:      ref,
		Name:         name,
		Category:     CategoryStair,
		Measurements: measurements(est),
	}
	if r := widthReason(est, ev.t.FlightWidth); r != "" {
		v.Reasons = append(v.Reasons, r)
	}
	v.Passed = len(v.Reasons) == 0
	return v
}

// FlightEnclosure evaluates a stair flight's four-side enclosure record.
func (ev *Evaluator) FlightEnclosure(name string, rec enclose.Record) Verdict {
	v := Verdict{
		Element:      rec.Flight,
		Name:         name,
		Category:     CategoryFlight,
		Measurements: map[string]float64{"sides_found": float64(len(rec.Sides))},
	}
	switch {
	case !rec.GeometryKnown:
		v.Reasons = append(v.Reasons, "geometry unavailable")
	case !rec.FullyEnclosed:
		v.Reasons = append(v.Reasons, fmt.Sprintf("not enclosed: missing %s", joinSides(rec.Missing())))
	}
	v.Passed = len(v.Reasons) == 0
	return v
}

// StaircaseGroup evaluates a staircase group record. The verdict references
// the group's first flight since a group has no element of its own.
func (ev *Evaluator) StaircaseGroup(rec enclose.GroupRecord) Verdict {
	v := Verdict{
		Name:         fmt.Sprintf("Staircase %s (%s)", rec.StairID, rec.Strategy),
		Category:     CategoryStaircase,
		Measurements: map[string]float64{"flights": float64(len(rec.Flights))},
	}
	if len(rec.Flights) > 0 {
		v.Element = rec.Flights[0]
	}
	switch {
	case !rec.GeometryKnown && rec.Strategy == enclose.StrategyUnionPerimeter:
		v.Reasons = append(v.Reasons, "geometry unavailable")
	case !rec.Enclosed && rec.Strategy == enclose.StrategyEveryFlight:
		v.Reasons = append(v.Reasons, fmt.Sprintf("%d of %d flights not individually enclosed", len(rec.OpenFlights), len(rec.Flights)))
	case !rec.Enclosed:
		v.Reasons = append(v.Reasons, fmt.Sprintf("perimeter not enclosed: missing %s", joinSides(rec.MissingSides)))
	}
	v.Passed = len(v.Reasons) == 0
	return v
}

func joinSides[S fmt.Stringer](sides []S) string {
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
