package sphere

import (
	"math"
	"testing"
)

func TestAngleBetweenBasics(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}

	if got := AngleBetween(x, x); got != 0 {
		t.Errorf("angle(x,x) = %v, want 0", got)
	}
	if got := AngleBetween(x, y); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("angle(x,y) = %v, want π/2", got)
	}
	if got := AngleBetween(z, z.Scale(-1)); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("angle(z,-z) = %v, want π", got)
	}
}

func TestAngleBetweenSymmetricAndBounded(t *testing.T) {
	dirs := []Direction{
		{Deg(0), Deg(0)},
		{Deg(40), Deg(25)},
		{Deg(10), Deg(5)},
		{Deg(-120), Deg(80)},
		{Deg(200), Deg(-45)},
	}
	for _, da := range dirs {
		for _, db := range dirs {
			a, b := da.Vector(), db.Vector()
			ab := AngleBetween(a, b)
			ba := AngleBetween(b, a)
			if ab < 0 || ab > math.Pi {
				t.Errorf("angle out of [0, π]: %v", ab)
			}
			if math.Abs(ab-ba) > 1e-12 {
				t.Errorf("angle not symmetric: %v vs %v", ab, ba)
			}
		}
	}
}

// The two derivations of J must agree for any pair of direction inputs.
// 1e-3 degrees is far looser than float64 achieves; the margin covers
// ill-conditioned near-antipodal pairs.
func TestAngleDerivationsAgree(t *testing.T) {
	for azT := -180.0; azT <= 180.0; azT += 36.0 {
		for elT := -85.0; elT <= 85.0; elT += 17.0 {
			for azR := -180.0; azR <= 180.0; azR += 45.0 {
				for elR := -85.0; elR <= 85.0; elR += 21.25 {
					aT, eT := Deg(azT), Deg(elT)
					aR, eR := Deg(azR), Deg(elR)
					dot := AngleBetween(AzElVector(aT, eT), AzElVector(aR, eR))
					trig := AngleAnalytic(aT, eT, aR, eR)
					if diff := math.Abs(ToDeg(dot - trig)); diff > 1e-3 {
						t.Errorf("derivations disagree at T=(%v,%v) R=(%v,%v): dot=%v° trig=%v°",
							azT, elT, azR, elR, ToDeg(dot), ToDeg(trig))
					}
				}
			}
		}
	}
}

func TestAngleReferenceScenario(t *testing.T) {
	// T=(40°, 25°), R=(10°, 5°): the default pose of the visualizer.
	aT, eT := Deg(40), Deg(25)
	aR, eR := Deg(10), Deg(5)

	dot := ToDeg(AngleBetween(AzElVector(aT, eT), AzElVector(aR, eR)))
	trig := ToDeg(AngleAnalytic(aT, eT, aR, eR))

	if math.Abs(dot-trig) > 0.005 {
		t.Errorf("J derivations differ: dot=%.3f° trig=%.3f°", dot, trig)
	}
	// cos J = sin25·sin5 + cos25·cos5·cos30 ≈ 0.81875 → J ≈ 35.04°.
	if math.Abs(dot-35.04) > 0.05 {
		t.Errorf("J = %.3f°, want ≈35.04°", dot)
	}
}

func TestAngleIdenticalDirections(t *testing.T) {
	aT, eT := Deg(123.4), Deg(-37.2)
	dot := AngleBetween(AzElVector(aT, eT), AzElVector(aT, eT))
	trig := AngleAnalytic(aT, eT, aT, eT)
	if math.Abs(dot) > 1e-7 {
		t.Errorf("dot J = %v, want 0", dot)
	}
	if math.Abs(trig) > 1e-7 {
		t.Errorf("analytic J = %v, want 0", trig)
	}
}

func TestAngleAntipodalPoles(t *testing.T) {
	// (0°, 90°) against (0°, −90°): straight through the sphere.
	dot := AngleBetween(AzElVector(0, Deg(90)), AzElVector(0, Deg(-90)))
	trig := AngleAnalytic(0, Deg(90), 0, Deg(-90))
	if math.Abs(ToDeg(dot)-180) > 1e-6 {
		t.Errorf("dot J = %v°, want 180°", ToDeg(dot))
	}
	if math.Abs(ToDeg(trig)-180) > 1e-6 {
		t.Errorf("analytic J = %v°, want 180°", ToDeg(trig))
	}
}

func TestClampCosGuardsOvershoot(t *testing.T) {
	// Parallel unit vectors whose dot product rounds past 1 must not
	// produce NaN from acos.
	v := AzElVector(Deg(33), Deg(44))
	if got := AngleBetween(v, v); math.IsNaN(got) {
		t.Error("AngleBetween(v, v) returned NaN")
	}
	if got := math.Acos(clampCos(1.0000000000000002)); got != 0 {
		t.Errorf("clamped acos = %v, want 0", got)
	}
}
