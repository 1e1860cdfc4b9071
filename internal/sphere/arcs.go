package sphere

import "math"

// Default subdivision counts for the arc samplers, matching the visual
// density the renderer was tuned for.
const (
	DefaultAzimuthSteps     = 64
	DefaultElevationSteps   = 32
	DefaultGreatCircleSteps = 64
)

// Arc sample radii sit marginally above the unit sphere so the arcs do
// not z-fight with the wireframe surface.
const (
	ArcRadius         = 1.001
	GreatCircleRadius = 1.002
)

// AzimuthArc samples the horizon arc from az0 to az1 at elevation 0.
// The sweep is signed: az1 < az0 walks in the negative direction. The
// returned polyline has steps+1 points at radius ArcRadius.
func AzimuthArc(az0, az1 float64, steps int) []Vec3 {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a := az0 + (az1-az0)*t
		pts = append(pts, Vec3{
			X: ArcRadius * math.Cos(a),
			Y: ArcRadius * math.Sin(a),
		})
	}
	return pts
}

// ElevationArc samples the meridian arc at a fixed azimuth from
// elevation 0 up (or down) to el. The returned polyline has steps+1
// points at radius ArcRadius.
func ElevationArc(az, el float64, steps int) []Vec3 {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, AzElVector(az, el*t).Scale(ArcRadius))
	}
	return pts
}

// GreatCircleArc samples the shortest great-circle path between two
// unit vectors via SlerpUnit. This is the arc that visually represents
// the angle J. The returned polyline has steps+1 points at radius
// GreatCircleRadius.
func GreatCircleArc(a, b Vec3, steps int) []Vec3 {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, SlerpUnit(a, b, t).Scale(GreatCircleRadius))
	}
	return pts
}

// Wireframe samples the reference sphere as latitude and longitude
// polylines. segAz meridians and segEl-1 parallels are produced; each
// polyline is closed over its own sweep.
func Wireframe(radius float64, segAz, segEl int) [][]Vec3 {
	if segAz < 2 {
		segAz = 2
	}
	if segEl < 2 {
		segEl = 2
	}
	lines := make([][]Vec3, 0, segAz+segEl-1)

	// Parallels (fixed polar angle, full azimuth sweep).
	for i := 1; i < segEl; i++ {
		polar := float64(i) / float64(segEl) * math.Pi
		z := radius * math.Cos(polar)
		r := radius * math.Sin(polar)
		ring := make([]Vec3, 0, segAz+1)
		for k := 0; k <= segAz; k++ {
			a := float64(k) / float64(segAz) * 2 * math.Pi
			ring = append(ring, Vec3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z})
		}
		lines = append(lines, ring)
	}

	// Meridians (fixed azimuth, pole to pole).
	for k := 0; k < segAz; k++ {
		a := float64(k) / float64(segAz) * 2 * math.Pi
		ca, sa := math.Cos(a), math.Sin(a)
		mer := make([]Vec3, 0, segEl+1)
		for i := 0; i <= segEl; i++ {
			polar := float64(i) / float64(segEl) * math.Pi
			sp := math.Sin(polar)
			mer = append(mer, Vec3{
				X: radius * sp * ca,
				Y: radius * sp * sa,
				Z: radius * math.Cos(polar),
			})
		}
		lines = append(lines, mer)
	}

	return lines
}
