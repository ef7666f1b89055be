package water

import "testing"

func TestEncodeFidelity(t *testing.T) {
	n := 16
	f := NewHeightField(n)
	s := DefaultSolver()
	for k := 0; k < 7; k++ {
		f.Step(&s)
	}

	img := Encode(f)
	if len(img) != n*n {
		t.Fatalf("len = %d, want %d", len(img), n*n)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if img[j*n+i] != f.SampleHeight(i, j) {
				t.Fatalf("encode[%d] = %v, want height(%d,%d) = %v", j*n+i, img[j*n+i], i, j, f.SampleHeight(i, j))
			}
		}
	}
}

func TestEncodeIsACopy(t *testing.T) {
	f := NewHeightField(4)
	img := Encode(f)
	img[0] = 42
	if f.SampleHeight(0, 0) == 42 {
		t.Error("modifying the encoded image changed the field")
	}
}

func TestEncodeIntoReusesBuffer(t *testing.T) {
	f := NewHeightField(8)
	buf := make([]float32, 0, 64)

	out := EncodeInto(buf, f)
	if len(out) != 64 {
		t.Fatalf("len = %d, want 64", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("EncodeInto allocated despite sufficient capacity")
	}

	small := make([]float32, 3)
	out = EncodeInto(small, f)
	if len(out) != 64 {
		t.Errorf("len = %d, want 64 after growing", len(out))
	}
}
