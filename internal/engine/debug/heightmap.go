package debug

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// HeightmapImage maps a row-major float field onto 16-bit grayscale, with the
// field minimum at black and maximum at white. A flat field is mid-gray.
// Row j of the field becomes image row j.
func HeightmapImage(width, height int, pix []float32) (*image.Gray16, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("have %d values, need %d", len(pix), width*height)
	}

	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range pix[:width*height] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	span := float64(hi - lo)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			v := pix[j*width+i]
			level := uint16(math.MaxUint16 / 2)
			if span > 0 {
				level = uint16(math.Round(float64(v-lo) / span * math.MaxUint16))
			}
			img.SetGray16(i, j, color.Gray16{Y: level})
		}
	}
	return img, nil
}
