package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"gopkg.in/yaml.v3"
)

// Snapshot is an in-memory Model. It is the fixture implementation used by
// the CLI and the tests; production deployments substitute their own
// model-access layer behind the Model interface.
type Snapshot struct {
	scale   float64
	byKind  map[Kind][]Element
	byID    map[ElementID]Element
	ordered []Element
}

var _ Model = (*Snapshot)(nil)

// NewSnapshot creates an empty snapshot with the given unit scale.
func NewSnapshot(unitScale float64) *Snapshot {
	if unitScale <= 0 {
		unitScale = 1
	}
	return &Snapshot{
		scale:  unitScale,
		byKind: make(map[Kind][]Element),
		byID:   make(map[ElementID]Element),
	}
}

// Add registers an element. Insertion order is the enumeration order.
func (s *Snapshot) Add(el Element) {
	ref := el.Ref()
	s.byKind[ref.Kind] = append(s.byKind[ref.Kind], el)
	s.byID[ref.ID] = el
	s.ordered = append(s.ordered, el)
}

// Elements returns all elements of the given kind in insertion order.
func (s *Snapshot) Elements(kind Kind) []Element {
	return s.byKind[kind]
}

// Element looks up an element by ID.
func (s *Snapshot) Element(id ElementID) (Element, bool) {
	el, ok := s.byID[id]
	return el, ok
}

// UnitScale returns the multiplier converting raw coordinates to mm.
func (s *Snapshot) UnitScale() float64 {
	return s.scale
}

// Elem is the concrete element type stored in a Snapshot.
type Elem struct {
	ElemRef     Ref
	ElemName    string
	Attributes  map[string]float64
	PropSets    []PropertySet
	QuantSets   []QuantitySet
	Geometry    *Representation
	FillsRef    Ref
	HasFillsRef bool
}

var _ Element = (*Elem)(nil)

func (e *Elem) Ref() Ref     { return e.ElemRef }
func (e *Elem) Name() string { return e.ElemName }

func (e *Elem) Attribute(name string) (float64, bool) {
	for k, v := range e.Attributes {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return 0, false
}

func (e *Elem) PropertySets() []PropertySet   { return e.PropSets }
func (e *Elem) QuantitySets() []QuantitySet   { return e.QuantSets }
func (e *Elem) Representation() *Representation { return e.Geometry }

func (e *Elem) Opening() (Ref, bool) {
	return e.FillsRef, e.HasFillsRef
}

// snapshotFile is the YAML schema of a snapshot document.
type snapshotFile struct {
	UnitScale float64           `yaml:"unit_scale"`
	Elements  []snapshotElement `yaml:"elements"`
}

type snapshotElement struct {
	ID           string             `yaml:"id"`
	Kind         string             `yaml:"kind"`
	Storey       string             `yaml:"storey"`
	Name         string             `yaml:"name"`
	Attributes   map[string]float64 `yaml:"attributes"`
	PropertySets []PropertySet      `yaml:"property_sets"`
	QuantitySets []QuantitySet      `yaml:"quantity_sets"`
	Faces        [][][]float64      `yaml:"faces"`
	Opening      string             `yaml:"opening"`
}

// LoadSnapshot reads a YAML snapshot document.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var doc snapshotFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("model: decode snapshot: %w", err)
	}

	snap := NewSnapshot(doc.UnitScale)
	for i, se := range doc.Elements {
		if se.ID == "" {
			return nil, fmt.Errorf("model: element %d has no id", i)
		}
		kind, err := ParseKind(se.Kind)
		if err != nil {
			return nil, fmt.Errorf("model: element %q: %w", se.ID, err)
		}

		el := &Elem{
			ElemRef: Ref{
				ID:     ElementID(se.ID),
				Kind:   kind,
				Storey: StoreyID(se.Storey),
			},
			ElemName:   se.Name,
			Attributes: se.Attributes,
			PropSets:   se.PropertySets,
			QuantSets:  se.QuantitySets,
		}
		if se.Opening != "" {
			el.FillsRef = Ref{ID: ElementID(se.Opening), Kind: KindOpening, Storey: el.ElemRef.Storey}
			el.HasFillsRef = true
		}
		if len(se.Faces) > 0 {
			rep := &Representation{}
			for _, face := range se.Faces {
				loop := make([]v3.Vec, 0, len(face))
				for _, pt := range face {
					var v v3.Vec
					if len(pt) > 0 {
						v.X = pt[0]
					}
					if len(pt) > 1 {
						v.Y = pt[1]
					}
					if len(pt) > 2 {
						v.Z = pt[2]
					}
					loop = append(loop, v)
				}
				rep.Faces = append(rep.Faces, loop)
			}
			el.Geometry = rep
		}
		snap.Add(el)
	}
	return snap, nil
}

// LoadSnapshotFile reads a YAML snapshot from disk.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open snapshot: %w", err)
	}
	defer f.Close()
	return LoadSnapshot(f)
}
