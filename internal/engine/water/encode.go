package water

// Encode packs the current heights into a new tightly packed N×N float32 image,
// row-major with cell (i, j) at j*N + i. Texture coordinate (i/N, j/N) of a grid
// vertex therefore addresses that vertex's own height.
func Encode(f *HeightField) []float32 {
	return EncodeInto(nil, f)
}

// EncodeInto is like Encode but reuses dst when it is large enough.
func EncodeInto(dst []float32, f *HeightField) []float32 {
	size := f.n * f.n
	if cap(dst) < size {
		dst = make([]float32, size)
	}
	dst = dst[:size]
	copy(dst, f.height)
	return dst
}
