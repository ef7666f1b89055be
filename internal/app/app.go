// Package app runs the viewer: window, simulation and scene in one frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/assets"
	"github.com/Faultbox/ripple/internal/config"
	"github.com/Faultbox/ripple/internal/engine/camera"
	"github.com/Faultbox/ripple/internal/engine/debug"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/picking"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/engine/scene"
	"github.com/Faultbox/ripple/internal/engine/water"
	"github.com/Faultbox/ripple/internal/engine/window"
	"github.com/Faultbox/ripple/internal/logger"
)

// cubeBounds is the world-space box of the unit cube.
var cubeBounds = picking.NewAABB(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})

// App is the viewer instance.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	assets   *assets.Manager

	sim    *water.Simulation
	camera *camera.Camera
	drag   camera.DragTracker
	grid   picking.GridPlane

	screenshots *debug.Capture
	heightmaps  *debug.Capture
	wantShot    bool

	stats *statsCounter
}

// New creates the window, GL state, simulation and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("grid", cfg.Simulation.GridSize),
		zap.Float32("damping", cfg.Simulation.Damping),
	)

	sim, err := water.NewSimulation(cfg.Simulation.GridSize, solverFromConfig(cfg.Simulation))
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	a.sim = sim

	a.assets = newAssetManager(cfg.Assets.Dirs, a.log)
	cubeTextures, err := loadCubeTextures(a.assets, cfg.Scene.CubeTextures)
	if err != nil {
		return nil, err
	}

	skyColor, err := renderer.HSVColor(cfg.Scene.Sky.Hue, cfg.Scene.Sky.Saturation, cfg.Scene.Sky.Value, 1)
	if err != nil {
		return nil, fmt.Errorf("sky colour: %w", err)
	}
	w := cfg.Scene.Water
	waterColor, err := renderer.HSVColor(w.Hue, w.Saturation, w.Value, w.Alpha)
	if err != nil {
		return nil, fmt.Errorf("water colour: %w", err)
	}

	// Window first: it creates the GL context the renderer needs.
	a.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbWidth,
		Height:     fbHeight,
		DepthTest:  cfg.Graphics.DepthTest,
		ClearColor: skyColor,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = scene.New(scene.Config{
		GridSize:     cfg.Simulation.GridSize,
		WaterColor:   waterColor,
		Light:        lighting.NewDirectional(cfg.Scene.Light.Azimuth, cfg.Scene.Light.Elevation),
		CubeTextures: cubeTextures,
	})
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.input = input.New()
	a.camera = newCamera(cfg.Camera)
	a.grid = picking.NewGridPlane(cfg.Simulation.GridSize, a.scene.WaterModel())
	a.screenshots = debug.NewCapture(cfg.Debug.ScreenshotDir, "ripple")
	a.heightmaps = debug.NewCapture(cfg.Debug.ScreenshotDir, "heightmap")
	a.stats = newStatsCounter(cfg.Simulation.StatsInterval)

	a.log.Info("viewer initialized")
	return a, nil
}

func solverFromConfig(c config.SimulationConfig) water.Solver {
	return water.Solver{
		Stiffness:  c.Stiffness,
		ForceLimit: c.ForceLimit,
		TimeStep:   c.TimeStep,
		Damping:    c.Damping,
	}
}

func newCamera(c config.CameraConfig) *camera.Camera {
	cam := camera.New(mgl32.Vec3(c.Position), c.Yaw, c.Pitch)
	cam.MovementSpeed = c.Speed
	cam.MouseSensitivity = c.Sensitivity
	cam.Zoom = c.Zoom
	return cam
}

// Run starts the frame loop and returns when the window is closed or ESC is
// pressed.
func (a *App) Run() error {
	a.running = true
	lastTime := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.updateCamera(dt)

		// Exactly one solver step per rendered frame.
		a.sim.Advance()
		if err := a.scene.Upload(a.sim.CurrentFieldImage()); err != nil {
			return fmt.Errorf("upload height field: %w", err)
		}

		a.render()
		a.window.SwapBuffers()

		if fps, due := a.stats.tick(now); due {
			a.logStats(fps)
		}
	}

	return nil
}

func (a *App) render() {
	width, height := a.renderer.Size()
	view := a.camera.ViewMatrix()
	projection := a.camera.ProjectionMatrix(renderer.Aspect(width, height))

	a.renderer.Begin()
	a.scene.Draw(view, projection)
	a.renderer.End()

	// Read back before the swap so the capture matches what is shown.
	if a.wantShot {
		a.wantShot = false
		a.saveScreenshot(width, height)
	}
}

func (a *App) logStats(fps float64) {
	s := a.sim.Stats()
	a.log.Info("simulation",
		zap.Uint64("frame", s.Frame),
		zap.Float64("sum", s.Sum),
		zap.Float32("min", s.Min),
		zap.Float32("max", s.Max),
		zap.Float64("kinetic", s.KineticEnergy),
		zap.Float64("fps", fps),
	)
}

// Close releases all resources in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
}
