package sphere

import "math"

// clampCos keeps a cosine value inside the acos domain. Rounding can
// push a·b fractionally past ±1 for near-parallel unit vectors.
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// AngleBetween returns the central angle between two unit vectors, in
// [0, π]. This is the general, frame-agnostic derivation of the
// great-circle angle.
func AngleBetween(a, b Vec3) float64 {
	return math.Acos(clampCos(a.Dot(b)))
}

// AngleAnalytic returns the same great-circle angle from the raw
// azimuth/elevation pairs via the spherical law of cosines:
//
//	cos J = sin(elT)·sin(elR) + cos(elT)·cos(elR)·cos(azT − azR)
//
// It is computed independently of AngleBetween on purpose: the whole
// point of the visualizer is showing that both derivations agree.
func AngleAnalytic(azT, elT, azR, elR float64) float64 {
	cosJ := math.Sin(elT)*math.Sin(elR) +
		math.Cos(elT)*math.Cos(elR)*math.Cos(azT-azR)
	return math.Acos(clampCos(cosJ))
}
