package topo

import "strings"

// SpaceKind is the derived circulation classification of a space. It is a
// projection of the space's name, recomputed deterministically on every
// run, never a stored fact.
type SpaceKind int

const (
	SpaceOther SpaceKind = iota
	SpaceCorridor
	SpaceStair
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceCorridor:
		return "corridor"
	case SpaceStair:
		return "stair"
	default:
		return "other"
	}
}

// Classifier decides what circulation role a space name implies. Name-token
// matching is heuristic and brittle across naming conventions, so the
// strategy is pluggable; graph and compliance logic only see SpaceKind.
type Classifier interface {
	Classify(name string) SpaceKind
}

// TokenClassifier classifies by case-insensitive token containment.
type TokenClassifier struct {
	StairTokens    []string
	CorridorTokens []string
}

// DefaultClassifier returns the token sets observed in real models.
func DefaultClassifier() *TokenClassifier {
	return &TokenClassifier{
		StairTokens:    []string{"stair"},
		CorridorTokens: []string{"hallway", "corridor", "passage", "circulation"},
	}
}

// Classify implements Classifier. Stair tokens win over corridor tokens.
func (c *TokenClassifier) Classify(name string) SpaceKind {
	lower := strings.ToLower(name)
	for _, t := range c.StairTokens {
		if strings.Contains(lower, t) {
			return SpaceStair
		}
	}
	for _, t := range c.CorridorTokens {
		if strings.Contains(lower, t) {
			return SpaceCorridor
		}
	}
	return SpaceOther
}
