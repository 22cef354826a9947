package analyze

import (
	"io"
	"log/slog"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egress/pkg/comply"
	"egress/pkg/model"
)

func boxFaces(x1, y1, x2, y2 float64) *model.Representation {
	return &model.Representation{Faces: [][]v3.Vec{{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2},
	}}}
}

func el(id string, kind model.Kind, name string, x1, y1, x2, y2 float64) *model.Elem {
	return &model.Elem{
		ElemRef:  model.Ref{ID: model.ElementID(id), Kind: kind, Storey: "00"},
		ElemName: name,
		Geometry: boxFaces(x1, y1, x2, y2),
	}
}

// buildingFixture is a small single-storey model, authored in meters:
//
//   - Corridor 0.1 (1.5m wide) links through the entrance door to the
//     stairwell; it passes.
//   - Hallway B (1.2m wide) has no doors; it fails width and linkage.
//   - Entrance door clears 0.9m; the service door only 0.7m.
//   - Stair:7 Run 1 (1.1m) is walled on all four sides; Run 2 (0.9m) is
//     missing its west wall; the union of both runs is fully walled.
//   - The maintenance ladder has no staircase identifier and no geometry.
func buildingFixture() *model.Snapshot {
	snap := model.NewSnapshot(1000)
	for _, e := range []*model.Elem{
		el("corr-a", model.KindSpace, "Corridor 0.1", 0, 0, 8, 1.5),
		el("corr-b", model.KindSpace, "Hallway B", 0, 5, 8, 6.2),
		el("stair-sp", model.KindSpace, "Stairwell", 8.2, 0, 11, 3),
		el("d-main", model.KindDoor, "Entrance", 8.1, 0.3, 8.3, 1.2),
		el("d-svc", model.KindDoor, "Service door", 2, 1.4, 2.7, 1.6),

		el("f-1", model.KindStairFlight, "Stair:7 Run 1", 20, 0, 21.1, 4),
		el("f-2", model.KindStairFlight, "Stair:7 Run 2", 30, 0, 30.9, 4),

		el("w-1w", model.KindWall, "", 19.8, 0.4, 20, 3.6),
		el("w-1e", model.KindWall, "", 21.1, 0.4, 21.3, 3.6),
		el("w-1s", model.KindWall, "", 20.4, -0.2, 20.8, 0),
		el("w-1n", model.KindWall, "", 20.4, 4, 20.8, 4.2),
		el("w-2e", model.KindWall, "", 30.9, 0.4, 31.1, 3.6),
		el("w-2s", model.KindWall, "", 30.4, -0.2, 30.8, 0),
		el("w-2n", model.KindWall, "", 30.4, 4, 30.8, 4.2),
	} {
		snap.Add(e)
	}
	snap.Add(&model.Elem{
		ElemRef:  model.Ref{ID: "f-ladder", Kind: model.KindStairFlight, Storey: "00"},
		ElemName: "Maintenance ladder",
	})
	return snap
}

func quietOpts() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func verdictByID(t *testing.T, vs []comply.Verdict, id model.ElementID) comply.Verdict {
	t.Helper()
	for _, v := range vs {
		if v.Element.ID == id {
			return v
		}
	}
	t.Fatalf("no verdict for %s", id)
	return comply.Verdict{}
}

func TestRunFullBuilding(t *testing.T) {
	res, err := Run(buildingFixture(), quietOpts())
	require.NoError(t, err)

	// Doors.
	require.Len(t, res.Doors, 2)
	assert.True(t, verdictByID(t, res.Doors, "d-main").Passed)
	svc := verdictByID(t, res.Doors, "d-svc")
	assert.False(t, svc.Passed)
	assert.Equal(t, "width 700mm < 800mm", svc.Reasons[0])

	// Corridors. The stairwell is a stair space, not a corridor, so it is
	// not a width subject.
	require.Len(t, res.Corridors, 2)
	assert.True(t, verdictByID(t, res.Corridors, "corr-a").Passed)
	b := verdictByID(t, res.Corridors, "corr-b")
	assert.False(t, b.Passed)
	require.Len(t, b.Reasons, 2)
	assert.Equal(t, "width 1200mm < 1300mm", b.Reasons[0])
	assert.Equal(t, "does not link to a stair via doors", b.Reasons[1])

	// Flight widths.
	require.Len(t, res.Stairs, 3)
	assert.True(t, verdictByID(t, res.Stairs, "f-1").Passed)
	assert.False(t, verdictByID(t, res.Stairs, "f-2").Passed)
	assert.False(t, verdictByID(t, res.Stairs, "f-ladder").Passed)

	// Flight enclosure.
	require.Len(t, res.Flights, 3)
	assert.True(t, verdictByID(t, res.Flights, "f-1").Passed)
	f2 := verdictByID(t, res.Flights, "f-2")
	assert.False(t, f2.Passed)
	assert.Equal(t, "not enclosed: missing west", f2.Reasons[0])
	ladder := verdictByID(t, res.Flights, "f-ladder")
	assert.False(t, ladder.Passed)
	assert.Equal(t, "geometry unavailable", ladder.Reasons[0])
	require.Len(t, ladder.Warnings, 1)
	assert.Contains(t, ladder.Warnings[0], "unparseable")

	// Staircase group 7, both strategies: every-flight fails on Run 2,
	// union-perimeter passes because the combined footprint is walled.
	require.Len(t, res.Staircases, 2)
	assert.False(t, res.Staircases[0].Passed)
	assert.Equal(t, "Staircase 7 (every-flight)", res.Staircases[0].Name)
	assert.True(t, res.Staircases[1].Passed)
	assert.Equal(t, "Staircase 7 (union-perimeter)", res.Staircases[1].Name)
}

func TestRunDeterministic(t *testing.T) {
	r1, err := Run(buildingFixture(), quietOpts())
	require.NoError(t, err)
	r2, err := Run(buildingFixture(), quietOpts())
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "rerunning an unchanged snapshot must be bit-identical")
}

func TestRunEmptyModel(t *testing.T) {
	_, err := Run(model.NewSnapshot(1), quietOpts())
	assert.ErrorIs(t, err, ErrEmptyModel)

	// Walls alone are not analyzable subjects.
	snap := model.NewSnapshot(1)
	snap.Add(el("w-1", model.KindWall, "", 0, 0, 1000, 200))
	_, err = Run(snap, quietOpts())
	assert.ErrorIs(t, err, ErrEmptyModel)
}

func TestRunQuickMode(t *testing.T) {
	snap := model.NewSnapshot(1000)
	d := el("d-1", model.KindDoor, "Entrance", 0, 0, 0.9, 0.1)
	d.Attributes = map[string]float64{"OverallWidth": 0.7}
	snap.Add(d)

	opts := quietOpts()
	res, err := Run(snap, opts)
	require.NoError(t, err)
	assert.True(t, res.Doors[0].Passed, "geometry says 900mm")

	opts.Quick = true
	res, err = Run(snap, opts)
	require.NoError(t, err)
	assert.False(t, res.Doors[0].Passed, "quick mode trusts the declared 700mm")
}

func TestCategoriesSummary(t *testing.T) {
	res, err := Run(buildingFixture(), quietOpts())
	require.NoError(t, err)

	sums := res.Categories()
	require.Len(t, sums, 5)
	assert.Equal(t, comply.CategoryDoor, sums[0].Category)
	assert.Equal(t, 1, sums[0].Passing)
	assert.Equal(t, 1, sums[0].Failing)

	assert.Equal(t, comply.CategoryCorridor, sums[1].Category)
	require.Len(t, sums[1].Failures, 1)
	assert.Equal(t, model.ElementID("corr-b"), sums[1].Failures[0].Element.ID)
	assert.Equal(t,
		"width 1200mm < 1300mm; does not link to a stair via doors",
		sums[1].Failures[0].Reason)

	assert.Equal(t, comply.CategoryStair, sums[2].Category)
	assert.Equal(t, 1, sums[2].Passing)
	assert.Equal(t, 2, sums[2].Failing)

	assert.Equal(t, comply.CategoryFlight, sums[3].Category)
	assert.Equal(t, 2, sums[3].Failing)

	assert.Equal(t, comply.CategoryStaircase, sums[4].Category)
	assert.Equal(t, 1, sums[4].Passing)
	assert.Equal(t, 1, sums[4].Failing)
}
