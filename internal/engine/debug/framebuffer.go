package debug

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the back buffer as bottom-up RGBA bytes.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
