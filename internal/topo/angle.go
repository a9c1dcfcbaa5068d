package topo

// Full-circle moduli of the fixed-point angle fields.
const (
	FullCircle     = 65536 // azimuth, inclination, declination, projection
	FullCircleRoll = 256   // roll
)

// Degrees converts a raw fixed-point angle to degrees for the given
// full-circle modulus. The conversion neither clamps nor wraps; callers
// attach the compass convention where one applies.
func Degrees(raw int16, fullCircle int) float64 {
	return float64(raw) * 360.0 / float64(fullCircle)
}

// compass folds a normalized angle into the [0,360) compass range. Inputs
// come from Degrees with the fine modulus and therefore lie in [-180,180).
func compass(deg float64) float64 {
	if deg < 0 {
		return deg + 360
	}
	return deg
}
