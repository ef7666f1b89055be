// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SunDirection converts azimuth/elevation angles in degrees to a normalized
// direction vector pointing towards the light. Azimuth rotates around Y starting
// at +Z, elevation is measured up from the horizon.
func SunDirection(azimuth, elevation float32) mgl32.Vec3 {
	az := float64(mgl32.DegToRad(azimuth))
	el := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}.Normalize()
}

// Directional holds the colours of a single directional light.
type Directional struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
}

// NewDirectional creates a white sun light with a soft ambient term.
func NewDirectional(azimuth, elevation float32) Directional {
	return Directional{
		Direction: SunDirection(azimuth, elevation),
		Ambient:   mgl32.Vec3{0.35, 0.35, 0.35},
		Diffuse:   mgl32.Vec3{0.75, 0.75, 0.75},
	}
}

// Lambert returns the diffuse factor for a surface normal.
func (d Directional) Lambert(normal mgl32.Vec3) float32 {
	n := normal.Normalize()
	dot := n.Dot(d.Direction)
	if dot < 0 {
		return 0
	}
	return dot
}
