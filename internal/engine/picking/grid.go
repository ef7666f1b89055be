package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GridPlane maps world space onto the cells of an N×N grid drawn with a model
// matrix. Grid vertex (i, j) sits at model-space (i, 0, j).
type GridPlane struct {
	Size  int
	model mgl32.Mat4
	inv   mgl32.Mat4
}

// NewGridPlane creates a GridPlane for an N×N grid drawn with model.
func NewGridPlane(n int, model mgl32.Mat4) GridPlane {
	return GridPlane{Size: n, model: model, inv: model.Inv()}
}

// RestY returns the world-space Y of the undisplaced grid.
func (g GridPlane) RestY() float32 {
	return mgl32.TransformCoordinate(mgl32.Vec3{}, g.model)[1]
}

// WorldToGrid converts a world-space point to fractional grid coordinates.
func (g GridPlane) WorldToGrid(p mgl32.Vec3) (x, z float32) {
	local := mgl32.TransformCoordinate(p, g.inv)
	return local[0], local[2]
}

// Cell returns the nearest grid cell to fractional grid coordinates. ok is
// false when the point lies more than half a cell outside the grid.
func (g GridPlane) Cell(x, z float32) (i, j int, ok bool) {
	i = int(math.Round(float64(x)))
	j = int(math.Round(float64(z)))
	if i < 0 || j < 0 || i >= g.Size || j >= g.Size {
		return 0, 0, false
	}
	return i, j, true
}

// PickPoint intersects a ray with the rest plane of the grid and returns the
// fractional grid coordinates of the hit. ok is false when the ray misses the
// plane or the hit lies more than half a cell outside the grid.
func (g GridPlane) PickPoint(r Ray) (x, z float32, ok bool) {
	wx, wz, hit := r.IntersectPlaneY(g.RestY())
	if !hit {
		return 0, 0, false
	}
	x, z = g.WorldToGrid(mgl32.Vec3{wx, g.RestY(), wz})
	if _, _, inside := g.Cell(x, z); !inside {
		return 0, 0, false
	}
	return x, z, true
}

// Pick returns the grid cell nearest to where the ray hits the rest plane.
func (g GridPlane) Pick(r Ray) (i, j int, ok bool) {
	x, z, hit := g.PickPoint(r)
	if !hit {
		return 0, 0, false
	}
	return g.Cell(x, z)
}
