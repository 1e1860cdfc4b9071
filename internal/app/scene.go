package app

import (
	gomath "math"

	"github.com/Faultbox/azel-sphere/internal/config"
	"github.com/Faultbox/azel-sphere/internal/engine/renderer"
	"github.com/Faultbox/azel-sphere/internal/sphere"
	"github.com/Faultbox/azel-sphere/pkg/math"
)

// Scene colors.
var (
	colorSphere  = renderer.Color{R: 1, G: 0.63, B: 0.1, A: 0.18}
	colorEquator = renderer.Color{R: 1, G: 0.63, B: 0.1, A: 0.7}
	colorAxis    = renderer.Color{R: 0.92, G: 0.92, B: 0.92, A: 1}
	colorUp      = renderer.Color{R: 0.25, G: 0.85, B: 0.3, A: 1}
	colorTarget  = renderer.Color{R: 0.4, G: 0.75, B: 1, A: 1}
	colorRoll    = renderer.Color{R: 1, G: 0.63, B: 0.1, A: 1}
	colorJArc    = renderer.Color{R: 0.98, G: 0.9, B: 0.2, A: 1}
)

const (
	axisLength      = 1.2
	arrowThickness  = 0.012
	markerOffset    = 1.05
	markerRadius    = 0.02
	labelAnchorDist = 1.15
)

// Scene assembles the per-frame 3D geometry of the visualizer: the
// reference sphere, the frame axes, the two direction arrows and the
// arcs that decompose and connect them.
type Scene struct {
	cfg config.SceneConfig

	// Static wireframe, sampled once.
	wireframe [][]math.Vec3
}

// NewScene precomputes the static geometry.
func NewScene(cfg config.SceneConfig) *Scene {
	s := &Scene{cfg: cfg}
	for _, line := range sphere.Wireframe(1, cfg.SphereSegAz, cfg.SphereSegEl) {
		s.wireframe = append(s.wireframe, toRenderLine(line))
	}
	return s
}

// Build queues the frame's geometry on the renderer.
func (s *Scene) Build(r *renderer.Renderer, target, roll sphere.Direction) {
	// Reference sphere
	for _, line := range s.wireframe {
		r.AddPolyline(line, colorSphere)
	}

	// Frame axes: N at azimuth 0, E at azimuth 90; Up gets a full
	// arrow since it anchors the elevation reading
	origin := math.Vec3{}
	r.AddLine(origin, math.Vec3{X: axisLength}, colorAxis)
	r.AddLine(origin, math.Vec3{Y: axisLength}, colorAxis)
	s.addArrow(r, sphere.Vec3{Z: axisLength}, colorUp)

	// Horizon circle at elevation 0
	equator := sphere.AzimuthArc(0, 2*gomath.Pi, s.cfg.SphereSegAz*2)
	r.AddPolyline(toRenderLine(equator), colorEquator)

	t := target.Vector()
	v := roll.Vector()

	// Azimuth and elevation decomposition arcs for both directions
	s.addDirectionArcs(r, target, colorTarget)
	s.addDirectionArcs(r, roll, colorRoll)

	// Great-circle arc between the two directions
	gc := sphere.GreatCircleArc(t, v, s.cfg.GreatCircleSteps)
	r.AddPolyline(toRenderLine(gc), colorJArc)

	// Direction arrows with tip markers
	s.addArrow(r, t, colorTarget)
	s.addMarker(r, t, colorTarget)
	s.addArrow(r, v, colorRoll)
	s.addMarker(r, v, colorRoll)
}

// addDirectionArcs draws the azimuth sweep along the horizon and the
// elevation sweep up the meridian, both at a faded tint.
func (s *Scene) addDirectionArcs(r *renderer.Renderer, d sphere.Direction, c renderer.Color) {
	faded := renderer.Color{R: c.R, G: c.G, B: c.B, A: 0.55}

	az := sphere.AzimuthArc(0, d.Az, s.cfg.AzimuthSteps)
	r.AddPolyline(toRenderLine(az), faded)

	el := sphere.ElevationArc(d.Az, d.El, s.cfg.ElevationSteps)
	r.AddPolyline(toRenderLine(el), faded)
}

// addArrow draws an arrow from the origin: line shaft plus cone head.
func (s *Scene) addArrow(r *renderer.Renderer, v sphere.Vec3, c renderer.Color) {
	shaft, head := sphere.Arrow(sphere.Vec3{}, v, arrowThickness)
	r.AddLine(toRender(shaft[0]), toRender(shaft[1]), c)
	if head != nil {
		r.AddTriangles(toRenderLine(head), c)
	}
}

// addMarker draws the small ball floating just past a direction's tip.
func (s *Scene) addMarker(r *renderer.Renderer, v sphere.Vec3, c renderer.Color) {
	marker := sphere.Ball(v.Scale(markerOffset), markerRadius, 10, 6)
	r.AddTriangles(toRenderLine(marker), c)
}

// Label is a HUD annotation anchored to a world-space point.
type Label struct {
	Text   string
	Anchor math.Vec3
	Color  renderer.Color
}

// Labels returns the annotations for the current directions.
func (s *Scene) Labels(target, roll sphere.Direction) []Label {
	t := target.Vector()
	v := roll.Vector()
	mid := sphere.SlerpUnit(t, v, 0.5).Scale(1.1)

	return []Label{
		{Text: "T", Anchor: toRender(t.Scale(labelAnchorDist)), Color: colorTarget},
		{Text: "R", Anchor: toRender(v.Scale(labelAnchorDist)), Color: colorRoll},
		{Text: "N (AZ=0°)", Anchor: math.Vec3{X: axisLength + 0.05}, Color: colorAxis},
		{Text: "E (AZ=90°)", Anchor: math.Vec3{Y: axisLength + 0.05}, Color: colorAxis},
		{Text: "Up", Anchor: math.Vec3{Z: axisLength + 0.05}, Color: colorUp},
		{Text: "j", Anchor: toRender(mid), Color: colorJArc},
	}
}

func toRender(v sphere.Vec3) math.Vec3 {
	return math.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRenderLine(pts []sphere.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(pts))
	for i, p := range pts {
		out[i] = toRender(p)
	}
	return out
}
