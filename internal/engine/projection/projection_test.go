package projection

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/azel-sphere/pkg/math"
)

func TestOriginProjectsToCenter(t *testing.T) {
	view := math.LookAt(
		math.Vec3{X: 3, Y: 0, Z: 0},
		math.Vec3{},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)
	proj := math.Perspective(gomath.Pi/3, 16.0/9.0, 0.1, 100)
	viewProj := proj.Mul(view)

	p, ok := WorldToScreen(math.Vec3{}, viewProj, 1280, 720)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if gomath.Abs(float64(p.X-640)) > 1 || gomath.Abs(float64(p.Y-360)) > 1 {
		t.Errorf("expected origin near (640, 360), got (%v, %v)", p.X, p.Y)
	}
}

func TestPointBehindCameraHidden(t *testing.T) {
	view := math.LookAt(
		math.Vec3{X: 3, Y: 0, Z: 0},
		math.Vec3{},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)
	proj := math.Perspective(gomath.Pi/3, 1, 0.1, 100)
	viewProj := proj.Mul(view)

	// The camera at x=3 looks toward -x, so x=10 is behind it
	_, ok := WorldToScreen(math.Vec3{X: 10}, viewProj, 800, 600)
	if ok {
		t.Error("point behind camera should not be visible")
	}
}

func TestAboveCenterProjectsHigher(t *testing.T) {
	view := math.LookAt(
		math.Vec3{X: 3, Y: 0, Z: 0},
		math.Vec3{},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)
	proj := math.Perspective(gomath.Pi/3, 1, 0.1, 100)
	viewProj := proj.Mul(view)

	center, ok1 := WorldToScreen(math.Vec3{}, viewProj, 800, 600)
	above, ok2 := WorldToScreen(math.Vec3{Z: 0.5}, viewProj, 800, 600)
	if !ok1 || !ok2 {
		t.Fatal("both points should be visible")
	}

	// Screen Y grows downward, so a point above the center lands at smaller Y
	if above.Y >= center.Y {
		t.Errorf("expected above.Y < center.Y, got %v >= %v", above.Y, center.Y)
	}
}
