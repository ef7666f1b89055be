package water

import "fmt"

// Default solver constants, tuned for a 128×128 grid.
const (
	DefaultStiffness  = 2.0
	DefaultForceLimit = 0.3
	DefaultTimeStep   = 0.16
	DefaultDamping    = 1.0
)

// Solver advances a HeightField with an explicit Euler step of the 2D wave
// equation. The Laplacian force is clamped to ±ForceLimit; the integration is not
// stable without that clamp.
type Solver struct {
	Stiffness  float32 // Laplacian scale
	ForceLimit float32 // Maximum |force| applied per step
	TimeStep   float32 // Fixed step for both velocity and height integration
	Damping    float32 // Velocity multiplier per step, 1 = undamped
}

// DefaultSolver returns the solver used by the viewer.
func DefaultSolver() Solver {
	return Solver{
		Stiffness:  DefaultStiffness,
		ForceLimit: DefaultForceLimit,
		TimeStep:   DefaultTimeStep,
		Damping:    DefaultDamping,
	}
}

// Validate reports parameters that would make the step meaningless.
func (s Solver) Validate() error {
	if s.Stiffness <= 0 {
		return fmt.Errorf("stiffness must be positive, got %v", s.Stiffness)
	}
	if s.ForceLimit <= 0 {
		return fmt.Errorf("force limit must be positive, got %v", s.ForceLimit)
	}
	if s.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive, got %v", s.TimeStep)
	}
	if s.Damping <= 0 || s.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %v", s.Damping)
	}
	return nil
}

// Laplacian returns the scaled discrete Laplacian at (i, j) over the current
// heights. Missing neighbours at the border replicate the edge cell.
func (s *Solver) Laplacian(f *HeightField, i, j int) float32 {
	n := f.n
	h := f.height

	center := h[f.index(i, j)]
	left := center
	if i > 0 {
		left = h[f.index(i-1, j)]
	}
	right := center
	if i < n-1 {
		right = h[f.index(i+1, j)]
	}
	up := center
	if j > 0 {
		up = h[f.index(i, j-1)]
	}
	down := center
	if j < n-1 {
		down = h[f.index(i, j+1)]
	}

	return s.Stiffness * (left + right + up + down - 4*center)
}

// Force clamps a Laplacian value to the solver's force limit.
func (s *Solver) Force(laplacian float32) float32 {
	return clampf(laplacian, -s.ForceLimit, s.ForceLimit)
}

// Advance computes the next heights for every cell into the field's scratch
// buffer and updates velocities. It does not swap buffers; HeightField.Step does.
func (s *Solver) Advance(f *HeightField) {
	n := f.n
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			idx := f.index(i, j)
			force := s.Force(s.Laplacian(f, i, j))

			v := f.velocity[idx] + force*s.TimeStep
			v *= s.Damping
			f.velocity[idx] = v

			f.next[idx] = f.height[idx] + v*s.TimeStep
		}
	}
}
