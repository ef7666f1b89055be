package lighting

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float32
		elevation float32
		want      mgl32.Vec3
	}{
		{"zenith", 0, 90, mgl32.Vec3{0, 1, 0}},
		{"horizon +Z", 0, 0, mgl32.Vec3{0, 0, 1}},
		{"horizon +X", 90, 0, mgl32.Vec3{1, 0, 0}},
		{"horizon -Z", 180, 0, mgl32.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			if !got.ApproxEqualThreshold(tt.want, 1e-5) {
				t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
			}
		})
	}
}

func TestSunDirectionNormalized(t *testing.T) {
	for az := float32(0); az < 360; az += 37 {
		for el := float32(-80); el <= 90; el += 23 {
			l := SunDirection(az, el).Len()
			if math.Abs(float64(l-1)) > 1e-5 {
				t.Fatalf("SunDirection(%v, %v) length = %v", az, el, l)
			}
		}
	}
}

func TestLambert(t *testing.T) {
	d := NewDirectional(0, 90)

	if got := d.Lambert(mgl32.Vec3{0, 1, 0}); math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("facing light: got %v, want 1", got)
	}
	if got := d.Lambert(mgl32.Vec3{0, -1, 0}); got != 0 {
		t.Errorf("facing away: got %v, want 0", got)
	}
	if got := d.Lambert(mgl32.Vec3{0, 0, 5}); math.Abs(float64(got)) > 1e-5 {
		t.Errorf("perpendicular: got %v, want 0", got)
	}
}
