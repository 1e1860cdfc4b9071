// Package camera provides the orbit camera used to view the unit sphere.
package camera

import (
	gomath "math"

	"github.com/Faultbox/azel-sphere/pkg/math"
)

// OrbitCamera orbits around a center point in a Z-up world.
//
// Yaw rotates around the world Z axis, pitch tilts toward the poles.
// Zoom changes the field of view rather than the distance, so the
// sphere always fills a comparable portion of the frame.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle (radians)
	Yaw      float32 // Horizontal angle (radians)

	// Field of view, degrees
	FOV    float32
	MinFOV float32
	MaxFOV float32

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	DragSensitivity float32
	ZoomStep        float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        3.5,
		Pitch:           0.45,
		Yaw:             0.8,
		FOV:             60,
		MinFOV:          20,
		MaxFOV:          90,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.003,
		ZoomStep:        2.0,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	x := c.Distance * cp * float32(gomath.Cos(float64(c.Yaw)))
	y := c.Distance * cp * float32(gomath.Sin(float64(c.Yaw)))
	z := c.Distance * float32(gomath.Sin(float64(c.Pitch)))

	return math.Vec3{
		X: c.CenterX + x,
		Y: c.CenterY + y,
		Z: c.CenterZ + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	pos := c.Position()
	center := math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
	up := math.Vec3{X: 0, Y: 0, Z: 1}
	return math.LookAt(pos, center, up)
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV*gomath.Pi/180, aspect, 0.1, 100)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom narrows or widens the field of view based on wheel delta.
// Positive delta (wheel up) zooms in.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.FOV -= delta * c.ZoomStep
	if c.FOV < c.MinFOV {
		c.FOV = c.MinFOV
	}
	if c.FOV > c.MaxFOV {
		c.FOV = c.MaxFOV
	}
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.CenterX = x
	c.CenterY = y
	c.CenterZ = z
}
