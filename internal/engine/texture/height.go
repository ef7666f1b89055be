package texture

import (
	"fmt"

	"go.uber.org/zap"
)

// Backend owns texture storage for HeightTexture.
type Backend interface {
	Create(width, height int32) uint32
	Update(id uint32, width, height int32, pix []float32)
	Delete(id uint32)
}

// HeightTexture is a single persistent float texture that is rewritten every
// frame. The handle is created on the first upload and only recreated when the
// dimensions change.
type HeightTexture struct {
	backend Backend
	id      uint32
	width   int32
	height  int32
}

// NewHeightTexture creates an empty HeightTexture on backend.
func NewHeightTexture(backend Backend) *HeightTexture {
	return &HeightTexture{backend: backend}
}

// Upload writes a width×height row-major field into the texture.
func (t *HeightTexture) Upload(width, height int, pix []float32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("height texture: invalid size %dx%d", width, height)
	}
	if len(pix) < width*height {
		return fmt.Errorf("height texture: have %d texels, need %d", len(pix), width*height)
	}

	w, h := int32(width), int32(height)
	if t.id != 0 && (w != t.width || h != t.height) {
		log().Debug("height texture resized",
			zap.Int32("from", t.width),
			zap.Int32("to", w),
		)
		t.backend.Delete(t.id)
		t.id = 0
	}
	if t.id == 0 {
		t.id = t.backend.Create(w, h)
		t.width, t.height = w, h
	}
	t.backend.Update(t.id, w, h, pix)
	return nil
}

// ID returns the current texture handle, or 0 before the first upload.
func (t *HeightTexture) ID() uint32 {
	return t.id
}

// Size returns the dimensions of the current texture.
func (t *HeightTexture) Size() (width, height int) {
	return int(t.width), int(t.height)
}

// Release deletes the texture. The HeightTexture may be uploaded to again.
func (t *HeightTexture) Release() {
	if t.id != 0 {
		t.backend.Delete(t.id)
		t.id = 0
		t.width, t.height = 0, 0
	}
}
