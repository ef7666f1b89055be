package app

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/engine/camera"
	"github.com/Faultbox/ripple/internal/engine/debug"
	"github.com/Faultbox/ripple/internal/engine/input"
	"github.com/Faultbox/ripple/internal/engine/picking"
	"github.com/Faultbox/ripple/internal/engine/renderer"
	"github.com/Faultbox/ripple/internal/engine/water"
)

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_F12:
				a.wantShot = true
			case sdl.SCANCODE_F11:
				a.saveHeightmap()
			}

		case input.EventMouseDown:
			if event.Button == input.ButtonLeft {
				a.drag.Begin(float32(event.MouseX), float32(event.MouseY))
				a.pick(event.MouseX, event.MouseY)
			}

		case input.EventMouseUp:
			if event.Button == input.ButtonLeft {
				a.drag.End()
			}

		case input.EventMouseMove:
			if dx, dy, ok := a.drag.Move(float32(event.MouseX), float32(event.MouseY)); ok {
				a.camera.ProcessMouseMovement(dx, dy, true)
			}

		case input.EventMouseWheel:
			a.camera.ProcessMouseScroll(event.WheelY)
		}
	}
}

var movementKeys = []struct {
	key sdl.Scancode
	dir camera.Movement
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
}

func (a *App) updateCamera(dt float32) {
	for _, m := range movementKeys {
		if a.input.IsKeyDown(m.key) {
			a.camera.ProcessKeyboard(m.dir, dt)
		}
	}
}

// pick logs what lies under the cursor: the cube, and the water cell under it.
func (a *App) pick(mouseX, mouseY int) {
	winWidth, winHeight := a.window.Size()
	fbWidth, fbHeight := a.renderer.Size()

	view := a.camera.ViewMatrix()
	projection := a.camera.ProjectionMatrix(renderer.Aspect(fbWidth, fbHeight))
	inv := projection.Mul4(view).Inv()
	ray := picking.ScreenToRay(float32(mouseX), float32(mouseY), float32(winWidth), float32(winHeight), inv)

	if t, hit := ray.IntersectAABB(cubeBounds); hit {
		p := ray.At(t)
		a.log.Info("picked cube", zap.Float32s("point", p[:]), zap.Float32("distance", t))
	}

	wp, ok := pickWater(a.grid, a.sim.Field(), ray)
	if !ok {
		a.log.Debug("pick missed water", zap.Int("x", mouseX), zap.Int("y", mouseY))
		return
	}
	a.log.Info("picked water",
		zap.Float32("x", wp.X),
		zap.Float32("z", wp.Z),
		zap.Int("i", wp.I),
		zap.Int("j", wp.J),
		zap.Float32("height", wp.Height),
		zap.Float32("cell_height", wp.CellHeight),
		zap.Float32("velocity", wp.Velocity),
	)
}

// waterPick is the water surface under the cursor.
type waterPick struct {
	X, Z       float32 // Fractional grid coordinates of the hit
	I, J       int     // Nearest cell
	Height     float32 // Interpolated at (X, Z)
	CellHeight float32
	Velocity   float32
}

func pickWater(grid picking.GridPlane, field *water.HeightField, ray picking.Ray) (waterPick, bool) {
	x, z, ok := grid.PickPoint(ray)
	if !ok {
		return waterPick{}, false
	}
	i, j, _ := grid.Cell(x, z)
	return waterPick{
		X:          x,
		Z:          z,
		I:          i,
		J:          j,
		Height:     field.SampleBilinear(x, z),
		CellHeight: field.SampleHeight(i, j),
		Velocity:   field.SampleVelocity(i, j),
	}, true
}

func (a *App) saveScreenshot(width, height int) {
	pixels := debug.ReadFramebuffer(width, height)
	path, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) saveHeightmap() {
	img := a.sim.CurrentFieldImage()
	gray, err := debug.HeightmapImage(img.Width, img.Height, img.Pix)
	if err != nil {
		a.log.Warn("heightmap export failed", zap.Error(err))
		return
	}
	path, err := a.heightmaps.CaptureFromImage(gray)
	if err != nil {
		a.log.Warn("heightmap export failed", zap.Error(err))
		return
	}
	a.log.Info("heightmap saved", zap.String("path", path), zap.Uint64("frame", a.sim.Frame()))
}
