package scene

import "github.com/go-gl/mathgl/mgl32"

// Cube vertex layout: position (3), uv (2), normal (3).
const (
	CubeStride      = 8
	CubeVertexCount = 36
)

// cubeFace spans a unit cube face from its outward normal and two tangents
// whose cross product equals the normal.
type cubeFace struct {
	normal mgl32.Vec3
	u, v   mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// CubeVertices returns 36 vertices of a unit cube centred on the origin,
// counter-clockwise when seen from outside.
func CubeVertices() []float32 {
	corners := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	order := [6]int{0, 1, 2, 0, 2, 3}

	out := make([]float32, 0, CubeVertexCount*CubeStride)
	for _, f := range cubeFaces {
		for _, k := range order {
			uv := corners[k]
			p := f.normal.Mul(0.5).
				Add(f.u.Mul(uv[0] - 0.5)).
				Add(f.v.Mul(uv[1] - 0.5))
			out = append(out,
				p[0], p[1], p[2],
				uv[0], uv[1],
				f.normal[0], f.normal[1], f.normal[2],
			)
		}
	}
	return out
}
