package water

import (
	"fmt"
	"math"
)

// FieldImage is a single-channel float image of the current heights, ready for
// upload as an R32F texture.
type FieldImage struct {
	Width  int
	Height int
	Pix    []float32 // Width*Height values, row-major, no padding
}

// Stats summarises the field after the most recent step.
type Stats struct {
	Frame         uint64
	Sum           float64
	Min           float32
	Max           float32
	KineticEnergy float64 // 0.5 * Σ v²
}

// Simulation owns the height field and solver and is the only writer of the field.
// It is not safe for concurrent use; the render loop drives it from one goroutine.
type Simulation struct {
	field  *HeightField
	solver Solver
	frame  uint64
	image  []float32
}

// NewSimulation creates a simulation over an n×n field.
func NewSimulation(n int, solver Solver) (*Simulation, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid size must be at least 2, got %d", n)
	}
	if err := solver.Validate(); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	return &Simulation{
		field:  NewHeightField(n),
		solver: solver,
		image:  make([]float32, n*n),
	}, nil
}

// Advance steps the field exactly once.
func (s *Simulation) Advance() {
	s.field.Step(&s.solver)
	s.frame++
}

// CurrentFieldImage encodes the current heights. The returned Pix is reused by the
// next call and stays valid until then.
func (s *Simulation) CurrentFieldImage() FieldImage {
	s.image = EncodeInto(s.image, s.field)
	return FieldImage{
		Width:  s.field.n,
		Height: s.field.n,
		Pix:    s.image,
	}
}

// Field returns the simulated field for read access.
func (s *Simulation) Field() *HeightField {
	return s.field
}

// Solver returns the solver parameters in use.
func (s *Simulation) Solver() Solver {
	return s.solver
}

// Frame returns how many steps have been taken.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// Stats computes summary values over the whole field.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Frame: s.frame,
		Min:   float32(math.Inf(1)),
		Max:   float32(math.Inf(-1)),
	}
	for idx, h := range s.field.height {
		st.Sum += float64(h)
		if h < st.Min {
			st.Min = h
		}
		if h > st.Max {
			st.Max = h
		}
		v := float64(s.field.velocity[idx])
		st.KineticEnergy += 0.5 * v * v
	}
	return st
}
