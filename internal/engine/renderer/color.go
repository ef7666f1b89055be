package renderer

import (
	"fmt"

	"github.com/crazy3lf/colorconv"
	"github.com/go-gl/mathgl/mgl32"
)

// HSVColor converts hue (degrees, [0,360)), saturation and value ([0,1]) to a
// normalized RGBA colour.
func HSVColor(h, s, v float64, alpha float32) (mgl32.Vec4, error) {
	if h < 0 || h >= 360 || s < 0 || s > 1 || v < 0 || v > 1 {
		return mgl32.Vec4{}, fmt.Errorf("hsv(%g, %g, %g) out of range", h, s, v)
	}
	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("hsv(%g, %g, %g): %w", h, s, v, err)
	}
	return mgl32.Vec4{
		float32(r) / 255,
		float32(g) / 255,
		float32(b) / 255,
		alpha,
	}, nil
}
