package sphere

import "math"

// Direction is an azimuth/elevation pair in radians. Azimuth is
// unconstrained (sin/cos absorb any real value); elevation is
// conventionally kept inside (-89°, +89°) by interactive callers, but
// the conversion below is total over all finite inputs.
type Direction struct {
	Az, El float64
}

// Deg converts degrees to radians.
func Deg(d float64) float64 {
	return d * math.Pi / 180.0
}

// ToDeg converts radians to degrees.
func ToDeg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// AzElVector converts an azimuth/elevation pair (radians) to a unit
// vector in the N-E-Up frame:
//
//	x = cos(el)·cos(az)
//	y = cos(el)·sin(az)
//	z = sin(el)
//
// The result is renormalized against floating-point drift.
func AzElVector(az, el float64) Vec3 {
	ce := math.Cos(el)
	v := Vec3{
		X: ce * math.Cos(az),
		Y: ce * math.Sin(az),
		Z: math.Sin(el),
	}
	return v.Normalize()
}

// Vector converts the direction to a unit vector.
func (d Direction) Vector() Vec3 {
	return AzElVector(d.Az, d.El)
}
