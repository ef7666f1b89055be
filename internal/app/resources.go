package app

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/ripple/internal/assets"
	"github.com/Faultbox/ripple/internal/engine/texture"
)

// Fallback checker colours for the two cube texture slots.
var checkerColors = [2][2]color.RGBA{
	{{200, 200, 200, 255}, {90, 90, 90, 255}},
	{{180, 80, 60, 255}, {110, 50, 40, 255}},
}

const (
	checkerSize  = 256
	checkerCells = 8
)

// newAssetManager registers every existing directory. Missing ones are skipped.
func newAssetManager(dirs []string, log *zap.Logger) *assets.Manager {
	m := assets.NewManager()
	for _, dir := range dirs {
		if err := m.AddDir(dir); err != nil {
			log.Debug("skipping asset dir", zap.String("dir", dir), zap.Error(err))
		}
	}
	return m
}

// loadCubeTextures decodes up to two configured textures. Slots without a path
// get a generated checkerboard; a configured path that fails to load is an
// error.
func loadCubeTextures(m *assets.Manager, paths []string) ([2]*image.RGBA, error) {
	var out [2]*image.RGBA
	for k := range out {
		if k >= len(paths) || paths[k] == "" {
			c := checkerColors[k]
			out[k] = texture.Checker(checkerSize, checkerCells, c[0], c[1])
			continue
		}

		data, err := m.Load(paths[k])
		if err != nil {
			return out, fmt.Errorf("cube texture %d: %w", k+1, err)
		}
		img, err := texture.Decode(data)
		if err != nil {
			return out, fmt.Errorf("cube texture %s: %w", paths[k], err)
		}
		out[k] = img
	}
	return out, nil
}
