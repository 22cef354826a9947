package enclose

import (
	"regexp"
	"strings"

	"egress/pkg/geom"
	"egress/pkg/model"
	"egress/pkg/spatial"
)

// stairIDPattern pulls the numeric staircase identifier out of flight names
// like "Assembled Stair:Stair:1282665 Run 2".
var stairIDPattern = regexp.MustCompile(`Stair:\s*(\d+)`)

// FlightGroup is the set of flights sharing one staircase identifier.
type FlightGroup struct {
	StairID   string
	Flights   []model.Element
	RunLabels []string
}

// StandardThreeRun reports whether the group carries the expected
// Run 1 / Run 2 / Run 3 labeling.
func (g FlightGroup) StandardThreeRun() bool {
	tokens := make(map[string]bool)
	for _, rl := range g.RunLabels {
		fields := strings.Fields(strings.ReplaceAll(rl, ":", " "))
		if len(fields) > 0 {
			tokens[fields[0]] = true
		}
	}
	return tokens["1"] && tokens["2"] && tokens["3"]
}

// GroupFlights groups flights by the staircase identifier parsed from their
// names, in first-seen order. Flights with unparseable names are returned
// separately as anomalies, not dropped.
func GroupFlights(flights []model.Element) ([]FlightGroup, []model.Ref) {
	var order []string
	byID := make(map[string]*FlightGroup)
	var unparsed []model.Ref

	for _, fl := range flights {
		name := fl.Name()
		matches := stairIDPattern.FindAllStringSubmatch(name, -1)
		if len(matches) == 0 {
			unparsed = append(unparsed, fl.Ref())
			continue
		}
		id := matches[len(matches)-1][1]

		g, ok := byID[id]
		if !ok {
			g = &FlightGroup{StairID: id}
			byID[id] = g
			order = append(order, id)
		}
		g.Flights = append(g.Flights, fl)

		label := "unknown"
		if i := strings.Index(name, "Run"); i >= 0 {
			if trimmed := strings.TrimSpace(name[i+len("Run"):]); trimmed != "" {
				label = trimmed
			}
		}
		g.RunLabels = append(g.RunLabels, label)
	}

	out := make([]FlightGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out, unparsed
}

// Strategy selects how a staircase group is judged enclosed. Real models
// can fail one strategy while passing the other, so both are retained as
// independent checks.
type Strategy int

const (
	// StrategyEveryFlight: the group is enclosed only if every member
	// flight is individually enclosed.
	StrategyEveryFlight Strategy = iota

	// StrategyUnionPerimeter: the group is enclosed if the union of all
	// member boxes has walls on its outer perimeter.
	StrategyUnionPerimeter
)

func (s Strategy) String() string {
	switch s {
	case StrategyEveryFlight:
		return "every-flight"
	case StrategyUnionPerimeter:
		return "union-perimeter"
	default:
		return "unknown"
	}
}

// GroupRecord is the enclosure verdict for one staircase group.
type GroupRecord struct {
	StairID       string
	Strategy      Strategy
	Flights       []model.Ref
	Enclosed      bool
	GeometryKnown bool

	// OpenFlights lists members that failed individually
	// (StrategyEveryFlight only).
	OpenFlights []model.Ref

	// MissingSides lists uncovered perimeter sides
	// (StrategyUnionPerimeter only).
	MissingSides []spatial.Side
}

// Group verifies a staircase group under the given strategy.
func (v *Verifier) Group(g FlightGroup, s Strategy) GroupRecord {
	rec := GroupRecord{StairID: g.StairID, Strategy: s}
	for _, fl := range g.Flights {
		rec.Flights = append(rec.Flights, fl.Ref())
	}

	switch s {
	case StrategyUnionPerimeter:
		var union geom.Box2
		haveBox := false
		for _, fl := range g.Flights {
			box, ok := v.ext.Box(fl)
			if !ok {
				continue
			}
			if !haveBox {
				union = box
				haveBox = true
			} else {
				union = union.Union(box)
			}
		}
		if !haveBox {
			return rec
		}
		rec.GeometryKnown = true
		// A staircase spans storeys, so the perimeter probe searches
		// walls on all levels.
		sides := v.sidesFound(union, "")
		rec.Enclosed = len(sides) == 4
		found := make(map[spatial.Side]bool, len(sides))
		for _, sd := range sides {
			found[sd] = true
		}
		for _, sd := range []spatial.Side{spatial.SideWest, spatial.SideEast, spatial.SideSouth, spatial.SideNorth} {
			if !found[sd] {
				rec.MissingSides = append(rec.MissingSides, sd)
			}
		}
		return rec

	default: // StrategyEveryFlight
		rec.GeometryKnown = true
		rec.Enclosed = len(g.Flights) > 0
		for _, fl := range g.Flights {
			fr := v.Flight(fl)
			if !fr.GeometryKnown {
				rec.GeometryKnown = false
			}
			if !fr.FullyEnclosed {
				rec.Enclosed = false
				rec.OpenFlights = append(rec.OpenFlights, fl.Ref())
			}
		}
		return rec
	}
}
