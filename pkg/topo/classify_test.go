package topo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClassifier(t *testing.T) {
	cls := DefaultClassifier()
	cases := []struct {
		name string
		want SpaceKind
	}{
		{"Hallway 2.01", SpaceCorridor},
		{"CORRIDOR EAST", SpaceCorridor},
		{"Main passage", SpaceCorridor},
		{"Circulation zone B", SpaceCorridor},
		{"Stairwell North", SpaceStair},
		{"Assembled Stair:Stair:1282665 Run 2", SpaceStair},
		{"Office 12", SpaceOther},
		{"Elevator Lobby", SpaceOther},
		{"", SpaceOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cls.Classify(tc.name), "Classify(%q)", tc.name)
	}
}

func TestStairTokenWinsOverCorridor(t *testing.T) {
	cls := DefaultClassifier()
	assert.Equal(t, SpaceStair, cls.Classify("Stair corridor"))
}

func TestCustomTokens(t *testing.T) {
	cls := &TokenClassifier{
		StairTokens:    []string{"trappe"},
		CorridorTokens: []string{"gang"},
	}
	assert.Equal(t, SpaceStair, cls.Classify("Trapperum 3"))
	assert.Equal(t, SpaceCorridor, cls.Classify("Gangareal"))
	assert.Equal(t, SpaceOther, cls.Classify("Hallway"), "default tokens do not apply")
}
