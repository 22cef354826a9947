package geom

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egress/pkg/model"
)

func boxElement(id string, faces [][]v3.Vec) *model.Elem {
	return &model.Elem{
		ElemRef:  model.Ref{ID: model.ElementID(id), Kind: model.KindSpace, Storey: "00"},
		Geometry: &model.Representation{Faces: faces},
	}
}

func TestExtractorScalesToMillimeters(t *testing.T) {
	snap := model.NewSnapshot(1000) // model authored in meters
	el := boxElement("sp-1", [][]v3.Vec{{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}})
	snap.Add(el)

	ext := NewExtractor(snap)
	box, ok := ext.Box(el)
	require.True(t, ok)
	assert.Equal(t, NewBox2(0, 0, 2000, 1000), box)

	c, ok := ext.Centroid(el)
	require.True(t, ok)
	assert.Equal(t, 1000.0, c.X)
	assert.Equal(t, 500.0, c.Y)

	verts := ext.Vertices(el)
	require.Len(t, verts, 4)
	assert.Equal(t, v3.Vec{X: 2000, Y: 0, Z: 0}, verts[1])
}

func TestExtractorMissingGeometry(t *testing.T) {
	snap := model.NewSnapshot(1)
	el := &model.Elem{ElemRef: model.Ref{ID: "sp-bare", Kind: model.KindSpace}}
	snap.Add(el)

	ext := NewExtractor(snap)
	assert.Empty(t, ext.Vertices(el))

	_, ok := ext.Box(el)
	assert.False(t, ok, "missing geometry must yield the no-box sentinel, not a zero box")

	_, ok = ext.Centroid(el)
	assert.False(t, ok, "missing geometry must yield an unknown centroid, not the origin")
}

func TestExtractorSingleVertexDegenerateBox(t *testing.T) {
	snap := model.NewSnapshot(1)
	el := boxElement("pt", [][]v3.Vec{{{X: 5, Y: 7, Z: 0}}})
	snap.Add(el)

	ext := NewExtractor(snap)
	box, ok := ext.Box(el)
	require.True(t, ok)
	assert.True(t, box.Degenerate())
	assert.Equal(t, NewBox2(5, 7, 5, 7), box)
}

func TestExtractorMemoizes(t *testing.T) {
	snap := model.NewSnapshot(1000)
	el := boxElement("sp-memo", [][]v3.Vec{{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 4, Z: 5},
	}})
	snap.Add(el)

	ext := NewExtractor(snap)
	first, ok1 := ext.Box(el)
	second, ok2 := ext.Box(el)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second, "repeated queries must be bit-identical")

	v1 := ext.Vertices(el)
	v2 := ext.Vertices(el)
	require.NotEmpty(t, v1)
	assert.Equal(t, &v1[0], &v2[0], "repeated queries must hit the memoized entry")
}
