package app

import (
	"fmt"

	"github.com/Faultbox/azel-sphere/internal/engine/projection"
	"github.com/Faultbox/azel-sphere/internal/engine/renderer"
	"github.com/Faultbox/azel-sphere/internal/engine/ui2d"
	"github.com/Faultbox/azel-sphere/internal/sphere"
	"github.com/Faultbox/azel-sphere/pkg/math"
)

const (
	hudScale    = 2.0
	hudPadding  = 10.0
	hudLineGap  = 4.0
	labelScale  = 1.5
	controlHint = "A/D W/S: target   J/L I/K: roll axis   R: reset   drag: orbit   wheel: zoom   Esc: quit"
)

// HUD draws the readout panel, the controls hint and the projected
// scene labels on the 2D overlay.
type HUD struct {
	ShowFPS bool
}

// Draw queues the full overlay for one frame. viewProj is the matrix
// the 3D scene was rendered with; it anchors the labels.
func (h *HUD) Draw(ui *ui2d.Renderer, s *Session, labels []Label, viewProj math.Mat4, fps int) {
	lines := []struct {
		text  string
		color ui2d.Color
	}{
		{fmt.Sprintf("Target T:    Az=%.1f°  El=%.1f°", s.TargetAz, s.TargetEl), toUIColor(colorTarget)},
		{fmt.Sprintf("Roll axis R: Az=%.1f°  El=%.1f°", s.RollAz, s.RollEl), toUIColor(colorRoll)},
		{fmt.Sprintf("J(T,R) = %.3f°  (check: %.3f°)",
			sphere.ToDeg(s.Angle()), sphere.ToDeg(s.AngleCheck())), ui2d.ColorHighlight},
	}
	if h.ShowFPS {
		lines = append(lines, struct {
			text  string
			color ui2d.Color
		}{fmt.Sprintf("FPS: %d", fps), ui2d.ColorTextDim})
	}

	// Readout panel, top-left
	var panelW, panelH float32
	for _, l := range lines {
		w, lh := ui.MeasureText(l.text, hudScale)
		if w > panelW {
			panelW = w
		}
		panelH += lh + hudLineGap
	}
	panelW += 2 * hudPadding
	panelH += 2*hudPadding - hudLineGap

	ui.DrawPanel(hudPadding, hudPadding, panelW, panelH, ui2d.ColorPanelBg, ui2d.ColorPanelBorder)

	y := float32(hudPadding) + hudPadding
	for _, l := range lines {
		ui.DrawText(hudPadding+hudPadding, y, l.text, hudScale, l.color)
		_, lh := ui.MeasureText(l.text, hudScale)
		y += lh + hudLineGap
	}

	// Controls hint, bottom-left
	screenW, screenH := ui.GetScreenSize()
	_, hintH := ui.MeasureText(controlHint, hudScale)
	ui.DrawText(hudPadding, float32(screenH)-hintH-hudPadding, controlHint, hudScale, ui2d.ColorTextDim)

	// Projected scene labels
	for _, l := range labels {
		pos, visible := projection.WorldToScreen(l.Anchor, viewProj, screenW, screenH)
		if !visible {
			continue
		}
		ui.DrawText(pos.X+4, pos.Y-4, l.Text, labelScale, toUIColor(l.Color))
	}
}

func toUIColor(c renderer.Color) ui2d.Color {
	return ui2d.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
