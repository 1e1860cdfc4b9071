// Package projection maps world-space points to screen coordinates,
// used to anchor HUD labels next to 3D scene features.
package projection

import (
	"github.com/Faultbox/azel-sphere/pkg/math"
)

// WorldToScreen projects a world-space point through the combined
// view-projection matrix into pixel coordinates with the origin in the
// top-left corner. The second return value is false when the point is
// behind the camera or outside the clip volume.
func WorldToScreen(point math.Vec3, viewProj math.Mat4, width, height int) (math.Vec2, bool) {
	clip := viewProj.MulVec4(math.Vec4{point.X, point.Y, point.Z, 1})

	if clip[3] <= 0 {
		return math.Vec2{}, false
	}

	// Perspective divide to NDC
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	ndcZ := clip[2] / clip[3]

	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 || ndcZ < -1 || ndcZ > 1 {
		return math.Vec2{}, false
	}

	// NDC to pixels, flipping Y for the top-left origin
	sx := (ndcX + 1) * 0.5 * float32(width)
	sy := (1 - ndcY) * 0.5 * float32(height)

	return math.Vec2{X: sx, Y: sy}, true
}
