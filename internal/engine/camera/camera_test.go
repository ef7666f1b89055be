package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, -90, 0)

	if !c.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Front = %v, want (0,0,-1)", c.Front)
	}
	if !c.Right.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Right = %v, want (1,0,0)", c.Right)
	}
	if !c.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("Up = %v, want (0,1,0)", c.Up)
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Movement
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 0.5}},
		{Backward, mgl32.Vec3{0, 0, 5.5}},
		{Left, mgl32.Vec3{-2.5, 0, 3}},
		{Right, mgl32.Vec3{2.5, 0, 3}},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{0, 0, 3}, -90, 0)
		c.ProcessKeyboard(tt.dir, 1.0)
		if !c.Position.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("direction %d: Position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestProcessKeyboardScalesWithDt(t *testing.T) {
	a := New(mgl32.Vec3{}, -90, 0)
	b := New(mgl32.Vec3{}, -90, 0)

	a.ProcessKeyboard(Forward, 0.5)
	for i := 0; i < 5; i++ {
		b.ProcessKeyboard(Forward, 0.1)
	}
	if !a.Position.ApproxEqualThreshold(b.Position, 1e-5) {
		t.Errorf("one 0.5s step = %v, five 0.1s steps = %v", a.Position, b.Position)
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, -90, 0)

	c.ProcessMouseMovement(0, 10000, true)
	if c.Pitch != 89 {
		t.Errorf("Pitch = %v, want 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -20000, true)
	if c.Pitch != -89 {
		t.Errorf("Pitch = %v, want -89", c.Pitch)
	}

	c.ProcessMouseMovement(0, 2000, false)
	if c.Pitch != 111 {
		t.Errorf("unconstrained Pitch = %v, want 111", c.Pitch)
	}
}

func TestProcessMouseMovementYaw(t *testing.T) {
	c := New(mgl32.Vec3{}, -90, 0)
	c.ProcessMouseMovement(900, 0, true)

	if !mgl32.FloatEqualThreshold(c.Yaw, 0, 1e-4) {
		t.Fatalf("Yaw = %v, want 0", c.Yaw)
	}
	if !c.Front.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Front = %v, want (1,0,0)", c.Front)
	}
}

func TestProcessMouseScroll(t *testing.T) {
	tests := []struct {
		start  float32
		offset float32
		want   float32
	}{
		{45, 1, 44},
		{45, -1, 45},
		{2, 5, 1},
		{30, -3, 33},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{}, -90, 0)
		c.Zoom = tt.start
		c.ProcessMouseScroll(tt.offset)
		if c.Zoom != tt.want {
			t.Errorf("Zoom %v scroll %v = %v, want %v", tt.start, tt.offset, c.Zoom, tt.want)
		}
	}
}

func TestViewMatrixMapsTargetToNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3}, -90, 0)
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, c.ViewMatrix())

	if !p.ApproxEqualThreshold(mgl32.Vec3{0, 0, -3}, 1e-5) {
		t.Errorf("origin in view space = %v, want (0,0,-3)", p)
	}
}

func TestDragTracker(t *testing.T) {
	var d DragTracker

	if _, _, ok := d.Move(10, 10); ok {
		t.Fatal("Move without drag should not produce an offset")
	}

	d.Begin(100, 100)
	x, y, ok := d.Move(110, 90)
	if !ok || x != 10 || y != 10 {
		t.Errorf("Move = (%v, %v, %v), want (10, 10, true)", x, y, ok)
	}
	x, y, _ = d.Move(105, 95)
	if x != -5 || y != -5 {
		t.Errorf("Move = (%v, %v), want (-5, -5)", x, y)
	}

	d.End()
	if d.Dragging() {
		t.Error("Dragging after End")
	}
	if _, _, ok := d.Move(0, 0); ok {
		t.Error("Move after End should not produce an offset")
	}
}
