package model

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Kind enumerates the element kinds the analysis consumes.
type Kind int

const (
	KindSpace Kind = iota
	KindDoor
	KindWall
	KindStairFlight
	KindOpening
)

func (k Kind) String() string {
	switch k {
	case KindSpace:
		return "space"
	case KindDoor:
		return "door"
	case KindWall:
		return "wall"
	case KindStairFlight:
		return "stair-flight"
	case KindOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name (as used in snapshot files) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "space":
		return KindSpace, nil
	case "door":
		return KindDoor, nil
	case "wall":
		return KindWall, nil
	case "stair-flight":
		return KindStairFlight, nil
	case "opening":
		return KindOpening, nil
	default:
		return 0, fmt.Errorf("model: unknown element kind %q", s)
	}
}

// ElementID is the model-global identifier of an element.
type ElementID string

// StoreyID identifies the building level containing an element.
type StoreyID string

// Ref is an immutable reference to a model element. Refs are read from the
// model and passed around; the analysis never constructs new elements.
type Ref struct {
	ID     ElementID
	Kind   Kind
	Storey StoreyID
}

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

func (r Ref) String() string {
	return fmt.Sprintf("%s[%s]", r.Kind, r.ID)
}

// NamedValue is a single named numeric entry of a property or quantity set.
// Entries keep their declared order so lookups are deterministic.
type NamedValue struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// PropertySet is a named group of declared properties attached to an element.
type PropertySet struct {
	Name  string       `yaml:"name"`
	Props []NamedValue `yaml:"props"`
}

// QuantitySet is a named group of derived quantities attached to an element.
type QuantitySet struct {
	Name       string       `yaml:"name"`
	Quantities []NamedValue `yaml:"quantities"`
}

// Representation is the raw geometry of an element: faces, each a loop of
// 3D points in model units. Absence of geometry is a nil Representation.
type Representation struct {
	Faces [][]v3.Vec
}

// Vertices returns all face-loop points flattened into one sequence,
// in face order. The result may be empty.
func (r *Representation) Vertices() []v3.Vec {
	if r == nil {
		return nil
	}
	var verts []v3.Vec
	for _, face := range r.Faces {
		verts = append(verts, face...)
	}
	return verts
}

// Element is one typed building element exposed by the model-access layer.
type Element interface {
	// Ref returns the element's immutable reference.
	Ref() Ref

	// Name returns the element's name string, possibly empty.
	Name() string

	// Attribute looks up a direct scalar attribute by name,
	// case-insensitively. The value is in model-declared units.
	Attribute(name string) (float64, bool)

	// PropertySets returns the attached property sets in declared order.
	PropertySets() []PropertySet

	// QuantitySets returns the attached quantity sets in declared order.
	QuantitySets() []QuantitySet

	// Representation returns the raw geometry, or nil when the element
	// has none.
	Representation() *Representation

	// Opening returns the opening element this element fills (doors sit
	// in wall openings), if the model records one.
	Opening() (Ref, bool)
}

// Model is a frozen snapshot of a parsed building model.
type Model interface {
	// Elements enumerates all elements of the given kind in a stable order.
	Elements(kind Kind) []Element

	// Element looks up an element by ID.
	Element(id ElementID) (Element, bool)

	// UnitScale is the multiplier converting raw geometry coordinates to
	// millimeters (1000 for models authored in meters).
	UnitScale() float64
}
