// Package debug provides screenshot and heightmap export utilities.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Capture writes timestamped PNG files into a directory.
type Capture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	seq       int
}

// NewCapture creates a capture handler writing <prefix>_<timestamp>.png files.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// CaptureFromPixels saves bottom-up RGBA pixels read from the framebuffer.
// pixels must hold width*height*4 bytes.
func (c *Capture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := PixelsToImage(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.CaptureFromImage(img)
}

// CaptureFromImage saves img as PNG and returns the file path.
func (c *Capture) CaptureFromImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename returns a unique filename. Captures within the same second get
// a sequence suffix.
func (c *Capture) nextFilename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05")
	name := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	for {
		path := name
		if c.outputDir != "" {
			path = filepath.Join(c.outputDir, name)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		c.seq++
		name = fmt.Sprintf("%s_%s_%d.png", c.prefix, timestamp, c.seq)
	}
}

// PixelsToImage copies bottom-up RGBA rows into a top-down image.
func PixelsToImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}
