package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/azel-sphere/internal/config"
	"github.com/Faultbox/azel-sphere/internal/engine/camera"
	"github.com/Faultbox/azel-sphere/internal/engine/input"
	"github.com/Faultbox/azel-sphere/internal/engine/renderer"
	"github.com/Faultbox/azel-sphere/internal/engine/ui2d"
	"github.com/Faultbox/azel-sphere/internal/engine/window"
	"github.com/Faultbox/azel-sphere/internal/logger"
)

// App is the visualizer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera

	session *Session
	scene   *Scene
	hud     *HUD

	fps int
}

// New creates the visualizer. The window and both renderers are
// initialized here; the GL context must not exist beforehand.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing visualizer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{cfg: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      "Azimuth/Elevation Sphere",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		MSAA:   cfg.Graphics.MSAA,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.ui, err = ui2d.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.NewOrbitCamera()
	a.camera.Distance = float32(cfg.Camera.Distance)
	a.camera.FOV = float32(cfg.Camera.FOV)
	a.camera.MinFOV = float32(cfg.Camera.MinFOV)
	a.camera.MaxFOV = float32(cfg.Camera.MaxFOV)
	a.camera.DragSensitivity = float32(cfg.Camera.DragSensitivity)

	a.session = NewSession(cfg.Scene)
	a.scene = NewScene(cfg.Scene)
	a.hud = &HUD{ShowFPS: cfg.Graphics.ShowFPS}

	logger.Info("visualizer initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(event.Width, event.Height)
				a.ui.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
				}
			case input.EventMouseMove:
				if a.input.IsButtonHeld(sdl.BUTTON_LEFT) {
					a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
				}
			case input.EventMouseWheel:
				a.camera.HandleZoom(float32(event.WheelY))
			}
		}

		// 2. Update directions from held keys
		a.session.Update(a.controls(), dt)

		// 3. Render
		a.render()

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.fps = frameCount
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up all resources.
func (a *App) Close() {
	logger.Info("closing visualizer")

	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// controls snapshots the held direction keys.
func (a *App) controls() Controls {
	return Controls{
		TargetAzPos: a.input.IsKeyHeld(sdl.SCANCODE_D),
		TargetAzNeg: a.input.IsKeyHeld(sdl.SCANCODE_A),
		TargetElPos: a.input.IsKeyHeld(sdl.SCANCODE_W),
		TargetElNeg: a.input.IsKeyHeld(sdl.SCANCODE_S),
		RollAzPos:   a.input.IsKeyHeld(sdl.SCANCODE_L),
		RollAzNeg:   a.input.IsKeyHeld(sdl.SCANCODE_J),
		RollElPos:   a.input.IsKeyHeld(sdl.SCANCODE_I),
		RollElNeg:   a.input.IsKeyHeld(sdl.SCANCODE_K),
		Reset:       a.input.IsKeyPressed(sdl.SCANCODE_R),
	}
}

// render draws the 3D scene and the HUD overlay.
func (a *App) render() {
	width, height := a.window.GetSize()
	aspect := float32(width) / float32(height)

	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(aspect)
	viewProj := proj.Mul(view)

	target := a.session.Target()
	roll := a.session.Roll()

	a.renderer.Begin(viewProj)
	a.scene.Build(a.renderer, target, roll)
	a.renderer.End()

	a.ui.Begin()
	a.hud.Draw(a.ui, a.session, a.scene.Labels(target, roll), viewProj, a.fps)
	a.ui.End()
}
