package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for k := 0; k < 3; k++ {
		box.Min[k] = min(a[k], b[k])
		box.Max[k] = max(a[k], b[k])
	}
	return box
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box using
// the slab method. Returns the distance to the entry point, or the exit point
// if the ray starts inside the box.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for k := 0; k < 3; k++ {
		if r.Direction[k] == 0 {
			if r.Origin[k] < box.Min[k] || r.Origin[k] > box.Max[k] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[k] - r.Origin[k]) / r.Direction[k]
		t2 := (box.Max[k] - r.Origin[k]) / r.Direction[k]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
