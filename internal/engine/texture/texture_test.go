package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func twoRowImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{0, 0, 255, 255})
	return img
}

func TestDecodeFlipsRows(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) },
		"bmp": func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf, twoRowImage()); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			// Blue row was at the bottom, so it becomes row 0.
			if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
				t.Errorf("row 0 = %v, want blue", got)
			}
			if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
				t.Errorf("row 1 = %v, want red", got)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestImageToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.SetRGBA(5, 5, color.RGBA{1, 2, 3, 4})

	got := ImageToRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want origin-based 3x2", got.Bounds())
	}
	if c := got.RGBAAt(0, 0); c != (color.RGBA{1, 2, 3, 4}) {
		t.Errorf("pixel = %v, want {1 2 3 4}", c)
	}
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{uint8(y), 0, 0, 255})
	}
	FlipVertical(img)
	for y := 0; y < 3; y++ {
		if got := img.RGBAAt(0, y).R; got != uint8(2-y) {
			t.Errorf("row %d = %d, want %d", y, got, 2-y)
		}
	}
}

func TestChecker(t *testing.T) {
	a := color.RGBA{255, 255, 255, 255}
	b := color.RGBA{0, 0, 0, 255}
	img := Checker(8, 4, a, b)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, a},
		{1, 1, a},
		{2, 0, b},
		{0, 2, b},
		{2, 2, a},
		{7, 0, b},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// fakeBackend tracks live handles without a GL context.
type fakeBackend struct {
	next    uint32
	live    map[uint32][2]int32
	creates int
	updates int
	last    []float32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{live: make(map[uint32][2]int32)}
}

func (f *fakeBackend) Create(w, h int32) uint32 {
	f.next++
	f.creates++
	f.live[f.next] = [2]int32{w, h}
	return f.next
}

func (f *fakeBackend) Update(id uint32, w, h int32, pix []float32) {
	size, ok := f.live[id]
	if !ok {
		panic("update of deleted texture")
	}
	if size != [2]int32{w, h} {
		panic("update with mismatched size")
	}
	f.updates++
	f.last = pix
}

func (f *fakeBackend) Delete(id uint32) {
	if _, ok := f.live[id]; !ok {
		panic("double delete")
	}
	delete(f.live, id)
}

func TestHeightTextureNoHandleGrowth(t *testing.T) {
	backend := newFakeBackend()
	tex := NewHeightTexture(backend)
	pix := make([]float32, 16*16)

	for frame := 0; frame < 1000; frame++ {
		pix[0] = float32(frame)
		if err := tex.Upload(16, 16, pix); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		if len(backend.live) != 1 {
			t.Fatalf("frame %d: %d live textures, want 1", frame, len(backend.live))
		}
	}

	if backend.creates != 1 {
		t.Errorf("creates = %d, want 1", backend.creates)
	}
	if backend.updates != 1000 {
		t.Errorf("updates = %d, want 1000", backend.updates)
	}
	if backend.last[0] != 999 {
		t.Errorf("last upload[0] = %v, want 999", backend.last[0])
	}
}

func TestHeightTextureRecreatesOnResize(t *testing.T) {
	backend := newFakeBackend()
	tex := NewHeightTexture(backend)

	if err := tex.Upload(4, 4, make([]float32, 16)); err != nil {
		t.Fatal(err)
	}
	first := tex.ID()

	if err := tex.Upload(8, 8, make([]float32, 64)); err != nil {
		t.Fatal(err)
	}
	if tex.ID() == first {
		t.Error("expected a new handle after resize")
	}
	if len(backend.live) != 1 {
		t.Errorf("%d live textures after resize, want 1", len(backend.live))
	}
	if w, h := tex.Size(); w != 8 || h != 8 {
		t.Errorf("Size = %dx%d, want 8x8", w, h)
	}
}

func TestHeightTextureRelease(t *testing.T) {
	backend := newFakeBackend()
	tex := NewHeightTexture(backend)

	tex.Release() // no-op before upload
	if err := tex.Upload(2, 2, make([]float32, 4)); err != nil {
		t.Fatal(err)
	}
	tex.Release()
	tex.Release()

	if len(backend.live) != 0 {
		t.Errorf("%d live textures after Release, want 0", len(backend.live))
	}
	if tex.ID() != 0 {
		t.Errorf("ID = %d after Release, want 0", tex.ID())
	}
}

func TestHeightTextureUploadErrors(t *testing.T) {
	tex := NewHeightTexture(newFakeBackend())

	tests := []struct {
		name string
		w, h int
		pix  []float32
	}{
		{"zero width", 0, 4, make([]float32, 16)},
		{"short data", 4, 4, make([]float32, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tex.Upload(tt.w, tt.h, tt.pix); err == nil {
				t.Error("expected error")
			}
		})
	}
	if tex.ID() != 0 {
		t.Error("failed uploads must not create a texture")
	}
}

func TestImageToRGBASubImageStride(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 0, 255})
		}
	}
	sub := src.SubImage(image.Rect(0, 0, 2, 2)).(*image.RGBA)
	if sub.Stride != 16 {
		t.Fatalf("sub-image stride %d, want parent stride 16", sub.Stride)
	}

	out := ImageToRGBA(sub)
	if out == sub {
		t.Fatal("sub-image with a wide stride should be copied")
	}
	if out.Stride != 8 {
		t.Errorf("stride %d, want 8", out.Stride)
	}
	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds %v, want 2x2 at origin", out.Bounds())
	}
	if len(out.Pix) != 16 {
		t.Errorf("pix length %d, want 16", len(out.Pix))
	}
	if got := out.RGBAAt(1, 1); got != (color.RGBA{10, 10, 0, 255}) {
		t.Errorf("pixel (1,1) = %v", got)
	}
}

func TestImageToRGBAPackedPassthrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	if ImageToRGBA(img) != img {
		t.Error("packed RGBA at the origin should be returned as is")
	}
}
