package topo

import (
	"egress/pkg/geom"
	"egress/pkg/model"
	"egress/pkg/spatial"
)

// DefaultDoorMargin is the tolerance, in mm, used when associating a door
// with the spaces it touches.
const DefaultDoorMargin = 500.0

// neighbor is one undirected edge endpoint, labeled with the door that
// induced it.
type neighbor struct {
	space model.ElementID
	door  model.ElementID
}

// Graph is the frozen space-adjacency graph of one analysis run. Nodes are
// the spaces classified Corridor or Stair; edges are induced by doors.
// It is never mutated after Build returns; queries are read-only.
type Graph struct {
	refs  map[model.ElementID]model.Ref
	kinds map[model.ElementID]SpaceKind
	nodes []model.ElementID // enumeration order
	adj   map[model.ElementID][]neighbor

	doorSpaces map[model.ElementID][]model.ElementID
}

// Build runs door→space association over the model and assembles the
// adjacency graph. ext must be the run's shared extractor and cls decides
// which spaces become nodes. A nil cls uses DefaultClassifier.
func Build(m model.Model, ext *geom.Extractor, cls Classifier, margin float64) *Graph {
	if cls == nil {
		cls = DefaultClassifier()
	}
	if margin < 0 {
		margin = DefaultDoorMargin
	}

	g := &Graph{
		refs:       make(map[model.ElementID]model.Ref),
		kinds:      make(map[model.ElementID]SpaceKind),
		adj:        make(map[model.ElementID][]neighbor),
		doorSpaces: make(map[model.ElementID][]model.ElementID),
	}

	var nodes []model.Element
	for _, sp := range m.Elements(model.KindSpace) {
		kind := cls.Classify(sp.Name())
		if kind == SpaceOther {
			continue
		}
		id := sp.Ref().ID
		g.refs[id] = sp.Ref()
		g.kinds[id] = kind
		g.nodes = append(g.nodes, id)
		nodes = append(nodes, sp)
	}

	// Door association searches the whole node set: storey scoping is not
	// applied here because a 2D box already confines the match, and split-
	// level models legitimately have doors whose storey tag differs from
	// the space's.
	index := spatial.NewIndex(ext, nodes)

	for _, door := range m.Elements(model.KindDoor) {
		doorID := door.Ref().ID
		spaces := g.associate(m, ext, index, door, margin)
		if len(spaces) == 0 {
			continue
		}
		g.doorSpaces[doorID] = spaces

		// Every pair of spaces sharing the door gets one undirected edge.
		for i := 0; i < len(spaces); i++ {
			for j := i + 1; j < len(spaces); j++ {
				g.addEdge(spaces[i], spaces[j], doorID)
			}
		}
	}

	return g
}

// associate returns the node spaces the door geometrically touches, in a
// deterministic order: centroid containment first, then door-box overlap,
// then opening-box overlap, each tier in space enumeration order.
func (g *Graph) associate(m model.Model, ext *geom.Extractor, index *spatial.Index, door model.Element, margin float64) []model.ElementID {
	var out []model.ElementID
	seen := make(map[model.ElementID]bool)
	add := func(entries []spatial.Entry) {
		for _, e := range entries {
			id := e.Element.Ref().ID
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}

	// The opening cut through the wall locates the passage more reliably
	// than the leaf; prefer it when the model records one.
	var opening model.Element
	if opRef, ok := door.Opening(); ok {
		if opEl, found := m.Element(opRef.ID); found {
			opening = opEl
		}
	}

	centroidSource := door
	if opening != nil {
		if _, ok := ext.Centroid(opening); ok {
			centroidSource = opening
		}
	}
	if c, ok := ext.Centroid(centroidSource); ok {
		point := geom.NewBox2(c.X, c.Y, c.X, c.Y)
		add(index.Nearby(point, "", margin))
	}

	if box, ok := ext.Box(door); ok {
		add(index.Nearby(box, "", margin))
	}
	if opening != nil {
		if box, ok := ext.Box(opening); ok {
			add(index.Nearby(box, "", margin))
		}
	}

	return out
}

func (g *Graph) addEdge(a, b model.ElementID, door model.ElementID) {
	for _, nb := range g.adj[a] {
		if nb.space == b && nb.door == door {
			return
		}
	}
	g.adj[a] = append(g.adj[a], neighbor{space: b, door: door})
	g.adj[b] = append(g.adj[b], neighbor{space: a, door: door})
}

// Nodes returns the graph's space references in enumeration order.
func (g *Graph) Nodes() []model.Ref {
	out := make([]model.Ref, len(g.nodes))
	for i, id := range g.nodes {
		out[i] = g.refs[id]
	}
	return out
}

// KindOf returns the classification of a node space, or SpaceOther for
// spaces that are not graph nodes.
func (g *Graph) KindOf(id model.ElementID) SpaceKind {
	return g.kinds[id]
}

// DoorSpaces returns the spaces associated with a door, in association
// order. A door legitimately touches one or two spaces; more than two is a
// modeling anomaly, and all associations are kept so the report can
// surface it.
func (g *Graph) DoorSpaces(door model.ElementID) []model.ElementID {
	return g.doorSpaces[door]
}

// Degree returns the number of edges incident to a node.
func (g *Graph) Degree(id model.ElementID) int {
	return len(g.adj[id])
}

// ReachesStair reports whether any stair space is reachable from the given
// corridor, directly or transitively through other corridor spaces.
// Traversal is breadth-first in edge insertion order, so results are
// deterministic; visited marking guarantees termination on cycles. A node
// with zero edges is simply not linked.
func (g *Graph) ReachesStair(corridor model.ElementID) bool {
	if g.kinds[corridor] != SpaceCorridor {
		return false
	}

	visited := map[model.ElementID]bool{corridor: true}
	queue := []model.ElementID{corridor}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, nb := range g.adj[current] {
			if visited[nb.space] {
				continue
			}
			visited[nb.space] = true
			switch g.kinds[nb.space] {
			case SpaceStair:
				return true
			case SpaceCorridor:
				queue = append(queue, nb.space)
			}
		}
	}
	return false
}
