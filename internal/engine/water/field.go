// Package water provides the water height-field simulation and the grid mesh
// that the renderer displaces with it.
package water

import "math"

// HeightField is an N×N grid of water heights and vertical velocities.
// Buffers are flat and row-major: cell (i, j) lives at index j*N + i.
type HeightField struct {
	n        int
	height   []float32 // Current heights
	next     []float32 // Written by the solver, swapped in after a full pass
	velocity []float32
}

// NewHeightField creates an n×n field initialised with a product-of-sines pattern:
// height(i, j) = sin(i/n·4π)·cos(j/n·4π), velocity = 0.
func NewHeightField(n int) *HeightField {
	if n < 2 {
		panic("water: height field needs at least 2x2 cells")
	}

	f := &HeightField{
		n:        n,
		height:   make([]float32, n*n),
		next:     make([]float32, n*n),
		velocity: make([]float32, n*n),
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			x := float64(i) / float64(n) * 4 * math.Pi
			z := float64(j) / float64(n) * 4 * math.Pi
			f.height[j*n+i] = float32(math.Sin(x) * math.Cos(z))
		}
	}
	copy(f.next, f.height)

	return f
}

// Size returns the grid dimension N.
func (f *HeightField) Size() int {
	return f.n
}

// SampleHeight returns the current height at (i, j).
// Out-of-range indices read the nearest edge cell.
func (f *HeightField) SampleHeight(i, j int) float32 {
	return f.height[f.clampedIndex(i, j)]
}

// SampleVelocity returns the velocity at (i, j) with the same clamping as SampleHeight.
func (f *HeightField) SampleVelocity(i, j int) float32 {
	return f.velocity[f.clampedIndex(i, j)]
}

// SampleBilinear returns the height at fractional grid coordinates (x, z),
// interpolated between the four surrounding cells.
func (f *HeightField) SampleBilinear(x, z float32) float32 {
	maxCoord := float32(f.n - 1)
	x = clampf(x, 0, maxCoord)
	z = clampf(z, 0, maxCoord)

	i0 := int(x)
	j0 := int(z)
	fx := x - float32(i0)
	fz := z - float32(j0)

	// Edge cells replicate, so i0+1 past the border is harmless
	h00 := f.SampleHeight(i0, j0)
	h10 := f.SampleHeight(i0+1, j0)
	h01 := f.SampleHeight(i0, j0+1)
	h11 := f.SampleHeight(i0+1, j0+1)

	south := h00*(1-fx) + h10*fx
	north := h01*(1-fx) + h11*fx
	return south*(1-fz) + north*fz
}

// Heights returns the current height buffer in row-major (j*N + i) order.
// The slice is owned by the field and must not be modified.
func (f *HeightField) Heights() []float32 {
	return f.height
}

// Step advances the field by one solver step. The solver reads only the settled
// current buffer; the result becomes current once every cell has been computed.
func (f *HeightField) Step(s *Solver) {
	s.Advance(f)
	f.swap()
}

func (f *HeightField) swap() {
	f.height, f.next = f.next, f.height
}

// index maps in-range (i, j) to a buffer offset.
func (f *HeightField) index(i, j int) int {
	checkIndex(f.n, i, j)
	return j*f.n + i
}

func (f *HeightField) clampedIndex(i, j int) int {
	return clampi(j, 0, f.n-1)*f.n + clampi(i, 0, f.n-1)
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
