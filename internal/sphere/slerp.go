package sphere

import "math"

// slerpEpsilon is the angle below which two unit vectors are treated as
// coincident; dividing by sin(theta) there would blow up.
const slerpEpsilon = 1e-9

// SlerpUnit interpolates between two unit vectors along their
// great-circle arc. t=0 yields a, t=1 yields b; intermediate results
// stay on the unit sphere because the weights rotate rather than
// linearly blend.
func SlerpUnit(a, b Vec3, t float64) Vec3 {
	theta := math.Acos(clampCos(a.Dot(b)))
	if theta < slerpEpsilon {
		return a
	}
	s := math.Sin(theta)
	w0 := math.Sin((1-t)*theta) / s
	w1 := math.Sin(t*theta) / s
	return a.Scale(w0).Add(b.Scale(w1))
}
