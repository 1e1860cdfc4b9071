package sphere

import (
	"math"
	"testing"
)

func TestConeTriangleCount(t *testing.T) {
	tris := Cone(Vec3{}, Vec3{Z: 1}, 0.1, 12)
	if len(tris) != 12*3 {
		t.Errorf("expected %d vertices, got %d", 12*3, len(tris))
	}
}

func TestConeDegenerateAxis(t *testing.T) {
	p := Vec3{X: 0.3, Y: 0.3, Z: 0.3}
	if tris := Cone(p, p, 0.1, 12); tris != nil {
		t.Errorf("zero-length cone produced %d vertices", len(tris))
	}
}

func TestConeBaseRingRadius(t *testing.T) {
	const radius = 0.05
	base := Vec3{Z: 0.8}
	tip := Vec3{Z: 1.0}
	tris := Cone(base, tip, radius, 8)
	// Every first and second vertex of a triangle lies on the base ring.
	for i := 0; i < len(tris); i += 3 {
		for _, p := range []Vec3{tris[i], tris[i+1]} {
			if d := math.Abs(p.Sub(base).Norm() - radius); d > 1e-9 {
				t.Errorf("base vertex %+v is %v from axis, want %v", p, p.Sub(base).Norm(), radius)
			}
		}
		if tris[i+2] != tip {
			t.Errorf("apex vertex = %+v, want %+v", tris[i+2], tip)
		}
	}
}

func TestArrowShaftAndHead(t *testing.T) {
	start := Vec3{}
	end := AzElVector(Deg(40), Deg(25))
	shaft, head := Arrow(start, end, 0.05)

	if shaft[0] != start || shaft[1] != end {
		t.Errorf("shaft = %+v, want start/end", shaft)
	}
	if len(head) == 0 || len(head)%3 != 0 {
		t.Errorf("head has %d vertices, want a non-empty multiple of 3", len(head))
	}
	// Apex of every head triangle is the arrow tip.
	for i := 2; i < len(head); i += 3 {
		if head[i] != end {
			t.Errorf("head apex = %+v, want %+v", head[i], end)
		}
	}
}

func TestArrowDegenerate(t *testing.T) {
	p := Vec3{X: 1}
	_, head := Arrow(p, p, 0.05)
	if head != nil {
		t.Errorf("degenerate arrow produced a head with %d vertices", len(head))
	}
}

func TestBallVerticesOnRadius(t *testing.T) {
	center := Vec3{X: 1, Y: -2, Z: 0.5}
	const radius = 0.02
	tris := Ball(center, radius, 8, 6)
	if len(tris) == 0 || len(tris)%3 != 0 {
		t.Fatalf("ball has %d vertices, want a non-empty multiple of 3", len(tris))
	}
	for i, p := range tris {
		if d := math.Abs(p.Sub(center).Norm() - radius); d > 1e-9 {
			t.Errorf("vertex %d is %v from center, want %v", i, p.Sub(center).Norm(), radius)
		}
	}
}

func TestPerpendicularIsOrthogonal(t *testing.T) {
	dirs := []Vec3{
		{X: 1}, {Y: 1}, {Z: 1},
		AzElVector(Deg(40), Deg(25)),
		AzElVector(Deg(-100), Deg(-60)),
	}
	for _, d := range dirs {
		p := perpendicular(d)
		if dot := math.Abs(d.Dot(p)); dot > 1e-9 {
			t.Errorf("perpendicular(%+v) not orthogonal: dot = %v", d, dot)
		}
		if n := math.Abs(p.Norm() - 1); n > 1e-9 {
			t.Errorf("perpendicular(%+v) norm = %v, want 1", d, p.Norm())
		}
	}
}
