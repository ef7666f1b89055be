// Package camera provides a free-fly camera for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Zoom limits as field-of-view angles in degrees.
const (
	MinZoom = 1.0
	MaxZoom = 45.0
)

// Projection clip planes.
const (
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Camera is an Euler-angle fly camera. Yaw and pitch are in degrees; yaw -90
// looks down -Z.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32 // World units per second
	MouseSensitivity float32 // Degrees per pixel
	Zoom             float32 // Vertical field of view in degrees
}

// New creates a camera at position looking along yaw/pitch.
func New(position mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
		Zoom:             MaxZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, NearPlane, FarPlane)
}

// ProcessKeyboard moves the camera. dt is the frame time in seconds.
func (c *Camera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse offset in pixels.
// Positive yOffset looks up. Pitch is clamped to ±89° when constrainPitch is set.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89, 89)
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		cos(yaw) * cos(pitch),
		sin(pitch),
		sin(yaw) * cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
