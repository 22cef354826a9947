package resolve

import (
	"strings"

	"egress/pkg/geom"
	"egress/pkg/model"
)

// Numeric resolves a named numeric quantity on an element, returned in
// millimeters. Candidate names are tried in order; the first tier that
// matches wins:
//
//  1. direct scalar attributes (case-insensitive exact name),
//  2. entries across all attached property sets,
//  3. entries across all attached quantity sets,
//
// where set entries match any candidate name case-insensitively by
// substring. Zero values are treated as not found: real models use 0 as a
// "not filled in" placeholder.
func Numeric(el model.Element, names []string) (float64, bool) {
	v, ok := NumericRaw(el, names)
	if !ok {
		return 0, false
	}
	return geom.ToMillimeters(v), true
}

// NumericRaw resolves through the same three tiers but returns the value
// as declared, without unit normalization. Callers that need non-length
// quantities (areas, ratios) normalize themselves.
func NumericRaw(el model.Element, names []string) (float64, bool) {
	for _, n := range names {
		if v, ok := el.Attribute(n); ok && v != 0 {
			return v, true
		}
	}

	for _, ps := range el.PropertySets() {
		for _, p := range ps.Props {
			if p.Value != 0 && matchesAny(p.Name, names) {
				return p.Value, true
			}
		}
	}

	for _, qs := range el.QuantitySets() {
		for _, q := range qs.Quantities {
			if q.Value != 0 && matchesAny(q.Name, names) {
				return q.Value, true
			}
		}
	}

	return 0, false
}

func matchesAny(name string, candidates []string) bool {
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if strings.Contains(lower, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
