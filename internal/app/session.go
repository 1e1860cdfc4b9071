// Package app wires the window, input, camera and renderers into the
// interactive visualizer loop.
package app

import (
	"github.com/Faultbox/azel-sphere/internal/config"
	"github.com/Faultbox/azel-sphere/internal/sphere"
)

// elevation stays inside the open interval so the direction never
// degenerates at the poles
const maxElevationDeg = 89.0

// Controls is the per-frame snapshot of the direction keys.
type Controls struct {
	TargetAzPos, TargetAzNeg bool
	TargetElPos, TargetElNeg bool
	RollAzPos, RollAzNeg     bool
	RollElPos, RollElNeg     bool
	Reset                    bool
}

// Session holds the two adjustable directions, in degrees. Degrees are
// the interaction currency; conversion to radians happens only at the
// geometry boundary.
type Session struct {
	TargetAz, TargetEl float64
	RollAz, RollEl     float64

	keyRate float64 // deg/s
	initial [4]float64
}

// NewSession creates a session seeded from the scene configuration.
func NewSession(cfg config.SceneConfig) *Session {
	s := &Session{
		keyRate: cfg.KeyRate,
		initial: [4]float64{cfg.TargetAz, cfg.TargetEl, cfg.RollAz, cfg.RollEl},
	}
	s.Reset()
	return s
}

// Reset restores the initial directions.
func (s *Session) Reset() {
	s.TargetAz = s.initial[0]
	s.TargetEl = s.initial[1]
	s.RollAz = s.initial[2]
	s.RollEl = s.initial[3]
}

// Update advances the directions by the held keys. dt is in seconds.
func (s *Session) Update(c Controls, dt float64) {
	if c.Reset {
		s.Reset()
		return
	}

	step := s.keyRate * dt

	if c.TargetAzPos {
		s.TargetAz += step
	}
	if c.TargetAzNeg {
		s.TargetAz -= step
	}
	if c.TargetElPos {
		s.TargetEl += step
	}
	if c.TargetElNeg {
		s.TargetEl -= step
	}

	if c.RollAzPos {
		s.RollAz += step
	}
	if c.RollAzNeg {
		s.RollAz -= step
	}
	if c.RollElPos {
		s.RollEl += step
	}
	if c.RollElNeg {
		s.RollEl -= step
	}

	s.TargetEl = clampElevation(s.TargetEl)
	s.RollEl = clampElevation(s.RollEl)
}

// Target returns the target direction in radians.
func (s *Session) Target() sphere.Direction {
	return sphere.Direction{Az: sphere.Deg(s.TargetAz), El: sphere.Deg(s.TargetEl)}
}

// Roll returns the roll-axis direction in radians.
func (s *Session) Roll() sphere.Direction {
	return sphere.Direction{Az: sphere.Deg(s.RollAz), El: sphere.Deg(s.RollEl)}
}

// Angle returns the great-circle angle J between the two directions,
// in radians, derived from the unit vectors.
func (s *Session) Angle() float64 {
	return sphere.AngleBetween(s.Target().Vector(), s.Roll().Vector())
}

// AngleCheck returns J derived independently via the spherical law of
// cosines. Displayed next to Angle as a cross-check.
func (s *Session) AngleCheck() float64 {
	t, r := s.Target(), s.Roll()
	return sphere.AngleAnalytic(t.Az, t.El, r.Az, r.El)
}

func clampElevation(el float64) float64 {
	if el > maxElevationDeg {
		return maxElevationDeg
	}
	if el < -maxElevationDeg {
		return -maxElevationDeg
	}
	return el
}
