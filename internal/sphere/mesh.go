package sphere

import "math"

// perpendicular returns an arbitrary unit vector orthogonal to d.
// Crossing against the axis d is least aligned with keeps the result
// well conditioned.
func perpendicular(d Vec3) Vec3 {
	ref := Vec3{X: 1}
	if math.Abs(d.X) > math.Abs(d.Y) {
		ref = Vec3{Y: 1}
	}
	return d.Cross(ref).Normalize()
}

// Cone generates a triangle fan approximating a cone from a base ring
// around base to the tip. Used for arrow heads. The result holds
// segments triangles, three vertices each.
func Cone(base, tip Vec3, radius float64, segments int) []Vec3 {
	if segments < 3 {
		segments = 3
	}
	axis := tip.Sub(base)
	if axis.Norm() < 1e-9 {
		return nil
	}
	dir := axis.Normalize()
	u := perpendicular(dir)
	w := dir.Cross(u)

	tris := make([]Vec3, 0, segments*3)
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		p0 := base.Add(u.Scale(radius * math.Cos(a0))).Add(w.Scale(radius * math.Sin(a0)))
		p1 := base.Add(u.Scale(radius * math.Cos(a1))).Add(w.Scale(radius * math.Sin(a1)))
		tris = append(tris, p0, p1, tip)
	}
	return tris
}

// Arrow produces the shaft endpoints and head triangles for a 3D arrow
// from start to end. headLen caps at a quarter of the arrow length so
// short arrows keep a visible shaft.
func Arrow(start, end Vec3, thickness float64) (shaft [2]Vec3, head []Vec3) {
	shaft = [2]Vec3{start, end}
	dir := end.Sub(start)
	length := dir.Norm()
	if length < 1e-4 {
		return shaft, nil
	}
	n := dir.Scale(1 / length)
	headLen := math.Min(0.25*length, 0.5)
	headRad := thickness * 2
	base := end.Add(n.Scale(-headLen))
	return shaft, Cone(base, end, headRad*0.5, 12)
}

// Ball generates a low-poly triangle mesh of a sphere around center,
// for the small point markers at the vector tips.
func Ball(center Vec3, radius float64, segAz, segEl int) []Vec3 {
	if segAz < 3 {
		segAz = 3
	}
	if segEl < 2 {
		segEl = 2
	}
	at := func(i, k int) Vec3 {
		polar := float64(i) / float64(segEl) * math.Pi
		a := float64(k) / float64(segAz) * 2 * math.Pi
		sp := math.Sin(polar)
		return center.Add(Vec3{
			X: radius * sp * math.Cos(a),
			Y: radius * sp * math.Sin(a),
			Z: radius * math.Cos(polar),
		})
	}

	tris := make([]Vec3, 0, segAz*segEl*6)
	for i := 0; i < segEl; i++ {
		for k := 0; k < segAz; k++ {
			p00 := at(i, k)
			p01 := at(i, k+1)
			p10 := at(i+1, k)
			p11 := at(i+1, k+1)
			if i < segEl-1 {
				tris = append(tris, p00, p10, p11)
			}
			if i > 0 {
				tris = append(tris, p00, p11, p01)
			}
		}
	}
	return tris
}
