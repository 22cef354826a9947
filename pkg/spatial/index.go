package spatial

import (
	"github.com/dhconnelly/rtreego"

	"egress/pkg/geom"
	"egress/pkg/model"
)

// degeneratePad keeps zero-extent boxes insertable and searchable: the
// R-tree requires strictly positive rectangle lengths, but degenerate
// boxes are valid inputs here.
const degeneratePad = 1e-6

// Entry pairs an indexed element with its bounding box.
type Entry struct {
	Element model.Element
	Box     geom.Box2
}

type item struct {
	entry Entry
	rect  rtreego.Rect
	seq   int // insertion sequence, keeps query results deterministic
}

func (it *item) Bounds() rtreego.Rect {
	return it.rect
}

func rectOf(b geom.Box2) rtreego.Rect {
	ex := b.Extents()
	dx, dy := ex.X, ex.Y
	if dx <= 0 {
		dx = degeneratePad
	}
	if dy <= 0 {
		dy = degeneratePad
	}
	r, err := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y}, []float64{dx, dy})
	if err != nil {
		// Lengths are forced positive above; NewRect cannot fail.
		panic(err)
	}
	return r
}

// Index is a spatial index over elements with extractable bounding boxes,
// bucketed per storey. Elements without geometry are silently absent: they
// can never satisfy a proximity query.
type Index struct {
	byStorey map[model.StoreyID]*rtreego.Rtree
	all      *rtreego.Rtree
	size     int
}

// NewIndex builds an index over the candidate set, deriving boxes through
// the run's shared extractor.
func NewIndex(ext *geom.Extractor, candidates []model.Element) *Index {
	ix := &Index{
		byStorey: make(map[model.StoreyID]*rtreego.Rtree),
		all:      rtreego.NewTree(2, 2, 16),
	}
	for _, el := range candidates {
		box, ok := ext.Box(el)
		if !ok {
			continue
		}
		it := &item{
			entry: Entry{Element: el, Box: box},
			rect:  rectOf(box),
			seq:   ix.size,
		}
		ix.size++
		ix.all.Insert(it)

		storey := el.Ref().Storey
		tree, ok := ix.byStorey[storey]
		if !ok {
			tree = rtreego.NewTree(2, 2, 16)
			ix.byStorey[storey] = tree
		}
		tree.Insert(it)
	}
	return ix
}

// Size returns the number of indexed elements.
func (ix *Index) Size() int {
	return ix.size
}

// Nearby returns all indexed entries whose box overlaps the query box after
// margin expansion, restricted to the given storey. A wall one floor above
// must never satisfy an enclosure check, so the whole-model tree is
// consulted only when the query element's storey is unknown. Results are
// in index insertion order.
func (ix *Index) Nearby(query geom.Box2, storey model.StoreyID, margin float64) []Entry {
	tree := ix.all
	if storey != "" {
		tree = ix.byStorey[storey]
		if tree == nil {
			return nil
		}
	}

	hits := tree.SearchIntersect(rectOf(query.Expand(margin + degeneratePad)))
	found := make([]*item, 0, len(hits))
	for _, h := range hits {
		it := h.(*item)
		// The padded rect search is conservative; confirm on the real boxes.
		if geom.Overlaps(query, it.entry.Box, margin) {
			found = append(found, it)
		}
	}

	// R-tree traversal order depends on split history; restore insertion order.
	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && found[j].seq < found[j-1].seq; j-- {
			found[j], found[j-1] = found[j-1], found[j]
		}
	}

	out := make([]Entry, len(found))
	for i, it := range found {
		out[i] = it.entry
	}
	return out
}
