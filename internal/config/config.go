// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scene      SceneConfig      `yaml:"scene"`
	Camera     CameraConfig     `yaml:"camera"`
	Assets     AssetsConfig     `yaml:"assets"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	DepthTest  bool   `yaml:"depth_test"`
}

// SimulationConfig holds wave solver settings.
type SimulationConfig struct {
	GridSize      int           `yaml:"grid_size"`
	Stiffness     float32       `yaml:"stiffness"`
	ForceLimit    float32       `yaml:"force_limit"`
	TimeStep      float32       `yaml:"time_step"`
	Damping       float32       `yaml:"damping"` // 1.0 = undamped
	StatsInterval time.Duration `yaml:"stats_interval"`
}

// HSV is a colour in hue (degrees), saturation and value (0-1).
type HSV struct {
	Hue        float64 `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`
}

// WaterColor is the water tint with opacity.
type WaterColor struct {
	HSV   `yaml:",inline"`
	Alpha float32 `yaml:"alpha"`
}

// LightConfig positions the directional light.
type LightConfig struct {
	Azimuth   float32 `yaml:"azimuth"`   // Degrees around Y
	Elevation float32 `yaml:"elevation"` // Degrees above the horizon
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	CubeTextures []string    `yaml:"cube_textures"` // Empty entries use a generated checker
	Sky          HSV         `yaml:"sky"`
	Water        WaterColor  `yaml:"water"`
	Light        LightConfig `yaml:"light"`
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
}

// AssetsConfig holds asset search directories.
type AssetsConfig struct {
	Dirs []string `yaml:"dirs"` // Searched in reverse order, last = highest priority
}

// DebugConfig holds debug capture settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Ripple",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			DepthTest:  true,
		},
		Simulation: SimulationConfig{
			GridSize:      128,
			Stiffness:     2.0,
			ForceLimit:    0.3,
			TimeStep:      0.16,
			Damping:       1.0,
			StatsInterval: time.Second,
		},
		Scene: SceneConfig{
			Sky:   HSV{Hue: 180, Saturation: 0.667, Value: 0.75},
			Water: WaterColor{HSV: HSV{Hue: 200, Saturation: 0.6, Value: 0.8}, Alpha: 0.85},
			Light: LightConfig{Azimuth: 30, Elevation: 50},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
		},
		Assets: AssetsConfig{
			Dirs: []string{".", "assets"},
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would prevent the viewer from starting.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}

	sim := c.Simulation
	if sim.GridSize < 2 {
		return fmt.Errorf("simulation: grid_size must be at least 2, got %d", sim.GridSize)
	}
	if sim.Stiffness <= 0 {
		return fmt.Errorf("simulation: stiffness must be positive, got %v", sim.Stiffness)
	}
	if sim.ForceLimit <= 0 {
		return fmt.Errorf("simulation: force_limit must be positive, got %v", sim.ForceLimit)
	}
	if sim.TimeStep <= 0 {
		return fmt.Errorf("simulation: time_step must be positive, got %v", sim.TimeStep)
	}
	if sim.Damping <= 0 || sim.Damping > 1 {
		return fmt.Errorf("simulation: damping must be in (0, 1], got %v", sim.Damping)
	}

	if c.Camera.Zoom < 1 || c.Camera.Zoom > 45 {
		return fmt.Errorf("camera: zoom must be in [1, 45], got %v", c.Camera.Zoom)
	}
	if c.Scene.Water.Alpha < 0 || c.Scene.Water.Alpha > 1 {
		return fmt.Errorf("scene: water alpha must be in [0, 1], got %v", c.Scene.Water.Alpha)
	}
	return nil
}
