package water

// VertexStride is the number of float32 values per grid vertex: x, y, z, u, v.
const VertexStride = 5

// GridMesh is the static water surface topology. Vertices sit at integer grid
// coordinates with y = 0; the vertex stage adds the sampled height.
type GridMesh struct {
	Size     int
	Vertices []float32 // VertexStride floats per vertex, vertex (i, j) at j*N + i
	Indices  []uint32  // 6 per quad, (N-1)² quads
}

// BuildGridMesh creates the n×n grid mesh.
func BuildGridMesh(n int) *GridMesh {
	vertices := make([]float32, n*n*VertexStride)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			base := (j*n + i) * VertexStride
			vertices[base+0] = float32(i)
			vertices[base+1] = 0
			vertices[base+2] = float32(j)
			vertices[base+3] = float32(i) / float32(n)
			vertices[base+4] = float32(j) / float32(n)
		}
	}

	quads := (n - 1) * (n - 1)
	indices := make([]uint32, 0, quads*6)
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			a := uint32(j*n + i)         // bottom left
			b := uint32(j*n + i + 1)     // bottom right
			c := uint32((j+1)*n + i + 1) // top right
			d := uint32((j+1)*n + i)     // top left

			indices = append(indices,
				a, b, c,
				a, c, d,
			)
		}
	}

	return &GridMesh{
		Size:     n,
		Vertices: vertices,
		Indices:  indices,
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *GridMesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles in the mesh.
func (m *GridMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
