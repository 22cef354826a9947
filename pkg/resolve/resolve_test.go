package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"egress/pkg/model"
)

func TestNumericDirectAttributeWins(t *testing.T) {
	el := &model.Elem{
		Attributes: map[string]float64{"OverallWidth": 0.9},
		PropSets: []model.PropertySet{{
			Name:  "Pset_DoorCommon",
			Props: []model.NamedValue{{Name: "OverallWidth", Value: 0.7}},
		}},
	}

	got, ok := Numeric(el, []string{"overallwidth", "width"})
	assert.True(t, ok)
	assert.Equal(t, 900.0, got, "attribute tier must win over property sets")
}

func TestNumericPropertySetSubstringMatch(t *testing.T) {
	el := &model.Elem{
		PropSets: []model.PropertySet{{
			Name:  "Dimensions",
			Props: []model.NamedValue{{Name: "Actual Run Width", Value: 1.2}},
		}},
	}

	got, ok := Numeric(el, []string{"run width"})
	assert.True(t, ok)
	assert.Equal(t, 1200.0, got)
}

func TestNumericQuantitySetIsLastTier(t *testing.T) {
	el := &model.Elem{
		QuantSets: []model.QuantitySet{{
			Name:       "Qto_SpaceBaseQuantities",
			Quantities: []model.NamedValue{{Name: "NetWidth", Value: 1500}},
		}},
	}

	got, ok := Numeric(el, []string{"width"})
	assert.True(t, ok)
	assert.Equal(t, 1500.0, got, "values above the cutoff are already mm")
}

func TestNumericZeroIsNotFound(t *testing.T) {
	el := &model.Elem{
		Attributes: map[string]float64{"Width": 0},
		PropSets: []model.PropertySet{{
			Props: []model.NamedValue{{Name: "Width", Value: 0}},
		}},
	}

	_, ok := Numeric(el, []string{"width"})
	assert.False(t, ok, "zero placeholders must be treated as absent")
}

func TestNumericAbsenceIsNotAnError(t *testing.T) {
	el := &model.Elem{}
	got, ok := Numeric(el, []string{"width", "overallwidth"})
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestNumericRawSkipsUnitNormalization(t *testing.T) {
	el := &model.Elem{
		QuantSets: []model.QuantitySet{{
			Quantities: []model.NamedValue{{Name: "GrossFloorArea", Value: 42.5}},
		}},
	}

	got, ok := NumericRaw(el, []string{"area"})
	assert.True(t, ok)
	assert.Equal(t, 42.5, got)
}
