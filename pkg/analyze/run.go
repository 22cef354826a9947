package analyze

import (
	"errors"
	"fmt"
	"log/slog"

	"egress/pkg/comply"
	"egress/pkg/enclose"
	"egress/pkg/geom"
	"egress/pkg/measure"
	"egress/pkg/model"
	"egress/pkg/spatial"
	"egress/pkg/topo"
)

// ErrEmptyModel aborts a run when the model-access layer provides none of
// the element kinds the analysis measures. Every lesser failure degrades
// per element instead.
var ErrEmptyModel = errors.New("analyze: model has no spaces, doors or stair flights")

// Options configure one analysis run. The zero value is usable.
type Options struct {
	// Quick skips geometry extraction in the dimension estimator and
	// relies on declared properties only. Connectivity and enclosure are
	// unaffected.
	Quick bool

	// DoorMargin is the door→space association tolerance in mm
	// (default topo.DefaultDoorMargin).
	DoorMargin float64

	// SideMargin and SearchExpand tune the enclosure probe strips
	// (defaults enclose.DefaultSideMargin / DefaultSearchExpand).
	SideMargin   float64
	SearchExpand float64

	// Thresholds override the default width minimums.
	Thresholds comply.Thresholds

	// Classifier overrides the default name-token space classifier.
	Classifier topo.Classifier

	// GroupStrategies selects the staircase-group enclosure strategies to
	// run. Empty runs both.
	GroupStrategies []enclose.Strategy

	Logger *slog.Logger
}

// Results are the verdicts of one run, grouped per category in a stable
// order. Re-running on an unchanged snapshot produces identical Results.
type Results struct {
	Doors      []comply.Verdict
	Corridors  []comply.Verdict
	Stairs     []comply.Verdict
	Flights    []comply.Verdict
	Staircases []comply.Verdict
}

// Run performs one single-threaded pass over the model snapshot.
func Run(m model.Model, opts Options) (*Results, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	cls := opts.Classifier
	if cls == nil {
		cls = topo.DefaultClassifier()
	}
	doorMargin := opts.DoorMargin
	if doorMargin <= 0 {
		doorMargin = topo.DefaultDoorMargin
	}
	strategies := opts.GroupStrategies
	if len(strategies) == 0 {
		strategies = []enclose.Strategy{enclose.StrategyEveryFlight, enclose.StrategyUnionPerimeter}
	}

	spaces := m.Elements(model.KindSpace)
	doors := m.Elements(model.KindDoor)
	flights := m.Elements(model.KindStairFlight)
	if len(spaces) == 0 && len(doors) == 0 && len(flights) == 0 {
		return nil, ErrEmptyModel
	}

	ext := geom.NewExtractor(m)
	est := measure.NewEstimator(m, ext, opts.Quick)
	ev := comply.NewEvaluator(opts.Thresholds)

	log.Info("analysis started",
		"spaces", len(spaces), "doors", len(doors), "flights", len(flights),
		"quick", opts.Quick)

	graph := topo.Build(m, ext, cls, doorMargin)
	walls := spatial.NewIndex(ext, m.Elements(model.KindWall))
	verifier := enclose.NewVerifier(ext, walls, opts.SideMargin, opts.SearchExpand)

	res := &Results{}

	// Corridors: width and stair linkage.
	for _, sp := range spaces {
		if cls.Classify(sp.Name()) != topo.SpaceCorridor {
			continue
		}
		dims := est.Dimensions(sp)
		linked := graph.ReachesStair(sp.Ref().ID)
		res.Corridors = append(res.Corridors, ev.Corridor(sp.Ref(), sp.Name(), dims, linked))
	}

	// Doors: width; association count annotates anomalies.
	for _, d := range doors {
		dims := est.Dimensions(d)
		assoc := graph.DoorSpaces(d.Ref().ID)
		v := ev.Door(d.Ref(), d.Name(), dims, len(assoc))
		for _, w := range v.Warnings {
			log.Warn("door anomaly", "door", d.Ref().ID, "detail", w)
		}
		res.Doors = append(res.Doors, v)
	}

	// Stair flights: width, then enclosure. Unparseable staircase naming
	// annotates the enclosure verdict.
	groups, unparsed := enclose.GroupFlights(flights)
	unparsedSet := make(map[model.ElementID]bool, len(unparsed))
	for _, ref := range unparsed {
		unparsedSet[ref.ID] = true
	}
	for _, fl := range flights {
		res.Stairs = append(res.Stairs, ev.StairWidth(fl.Ref(), fl.Name(), est.Dimensions(fl)))

		v := ev.FlightEnclosure(fl.Name(), verifier.Flight(fl))
		if unparsedSet[fl.Ref().ID] {
			v.Warnings = append(v.Warnings, "anomaly: staircase identifier unparseable from name")
		}
		res.Flights = append(res.Flights, v)
	}

	// Staircase groups under each selected strategy.
	for _, g := range groups {
		for _, s := range strategies {
			res.Staircases = append(res.Staircases, ev.StaircaseGroup(verifier.Group(g, s)))
		}
	}

	log.Info("analysis finished",
		"corridors", len(res.Corridors),
		"doors", len(res.Doors),
		"flights", len(res.Flights),
		"staircases", len(res.Staircases))

	return res, nil
}

// Summary aggregates one category for the report layer.
type Summary struct {
	Category comply.Category
	Passing  int
	Failing  int
	Failures []Failure
}

// Failure is one failing element with its accumulated reasons.
type Failure struct {
	Element model.Ref
	Name    string
	Reason  string
}

// Categories summarizes the results in fixed report order.
func (r *Results) Categories() []Summary {
	groups := []struct {
		cat      comply.Category
		verdicts []comply.Verdict
	}{
		{comply.CategoryDoor, r.Doors},
		{comply.CategoryCorridor, r.Corridors},
		{comply.CategoryStair, r.Stairs},
		{comply.CategoryFlight, r.Flights},
		{comply.CategoryStaircase, r.Staircases},
	}

	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		s := Summary{Category: g.cat}
		for _, v := range g.verdicts {
			if v.Passed {
				s.Passing++
				continue
			}
			s.Failing++
			s.Failures = append(s.Failures, Failure{
				Element: v.Element,
				Name:    v.Name,
				Reason:  joinReasons(v),
			})
		}
		out = append(out, s)
	}
	return out
}

func joinReasons(v comply.Verdict) string {
	reason := ""
	for i, r := range v.Reasons {
		if i > 0 {
			reason += "; "
		}
		reason += r
	}
	for _, w := range v.Warnings {
		if reason != "" {
			reason += "; "
		}
		reason += w
	}
	if reason == "" {
		reason = fmt.Sprintf("failed %s check", v.Category)
	}
	return reason
}
