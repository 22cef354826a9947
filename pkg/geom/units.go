package geom

// metersCutoff separates meter-valued scalars from millimeter-valued ones.
// Declared properties in real models carry either unit without saying which;
// no circulation dimension is plausibly between 100 mm and 100 m.
const metersCutoff = 100.0

// ToMillimeters normalizes a scalar dimension to millimeters. Values at or
// below the cutoff are assumed meters and scaled by 1000.
func ToMillimeters(v float64) float64 {
	if v > metersCutoff {
		return v
	}
	return v * 1000.0
}
