// Package scene renders the textured cube and the simulated water surface.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/engine/lighting"
	"github.com/Faultbox/ripple/internal/engine/texture"
	"github.com/Faultbox/ripple/internal/engine/water"
	"github.com/Faultbox/ripple/internal/logger"
)

// Config contains scene configuration options.
type Config struct {
	GridSize     int
	WaterColor   mgl32.Vec4
	Light        lighting.Directional
	CubeTextures [2]*image.RGBA
}

// Scene owns the cube and water renderers.
type Scene struct {
	config Config

	cube  *CubeRenderer
	water *WaterRenderer
}

// New creates the scene. Requires a current GL context.
func New(cfg Config) (*Scene, error) {
	if cfg.CubeTextures[0] == nil || cfg.CubeTextures[1] == nil {
		return nil, fmt.Errorf("scene: cube textures not set")
	}

	cube, err := NewCubeRenderer(cfg.CubeTextures[0], cfg.CubeTextures[1])
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	wr, err := NewWaterRenderer(cfg.GridSize, cfg.WaterColor, texture.GLBackend{})
	if err != nil {
		cube.Destroy()
		return nil, fmt.Errorf("scene: %w", err)
	}

	logger.Info("scene created",
		zap.Int("grid", cfg.GridSize),
		zap.Int("triangles", 2*(cfg.GridSize-1)*(cfg.GridSize-1)),
	)

	return &Scene{
		config: cfg,
		cube:   cube,
		water:  wr,
	}, nil
}

// Upload pushes the latest height field to the GPU.
func (s *Scene) Upload(img water.FieldImage) error {
	return s.water.Upload(img)
}

// Draw renders the cube, then the translucent water over it.
func (s *Scene) Draw(view, projection mgl32.Mat4) {
	s.cube.Render(view, projection, s.config.Light)
	s.water.Render(view, projection, s.config.Light)
}

// WaterModel returns the model matrix of the water grid.
func (s *Scene) WaterModel() mgl32.Mat4 {
	return s.water.Model()
}

// Close releases all GPU resources.
func (s *Scene) Close() {
	s.water.Destroy()
	s.cube.Destroy()
}
