package movement

import (
	"math"

	"github.com/vovakirdan/wakaman/internal/core"
)

// VelocityStrategy computes the desired velocity for one display frame.
type VelocityStrategy interface {
	ComputeVelocity(axes AxisReader) core.Vec2
}

// VelocityFunc adapts a function to VelocityStrategy.
type VelocityFunc func(axes AxisReader) core.Vec2

// ComputeVelocity calls f.
func (f VelocityFunc) ComputeVelocity(axes AxisReader) core.Vec2 {
	return f(axes)
}

// AxisVelocity moves at MaxSpeed scaled by the raw axis values.
type AxisVelocity struct {
	MaxSpeed float64
}

// ComputeVelocity implements VelocityStrategy.
func (v AxisVelocity) ComputeVelocity(axes AxisReader) core.Vec2 {
	return ReadDirection(axes).Scale(v.MaxSpeed)
}

// Stepper is a fixed-step mover. Update runs once per display frame and
// FixedUpdate once per simulation step.
type Stepper struct {
	strategy VelocityStrategy
	axes     AxisReader
	body     Body
	target   core.Vec2
	move     core.Vec2
}

// NewStepper creates a stepper moving body with the given strategy.
func NewStepper(strategy VelocityStrategy, axes AxisReader, body Body) *Stepper {
	return &Stepper{
		strategy: strategy,
		axes:     axes,
		body:     body,
	}
}

// SetStrategy swaps the velocity strategy.
func (s *Stepper) SetStrategy(strategy VelocityStrategy) {
	s.strategy = strategy
}

// TargetVelocity returns the velocity computed by the last Update.
func (s *Stepper) TargetVelocity() core.Vec2 {
	return s.target
}

// LastMove returns the displacement of the last fixed step, as adjusted by
// any contact correction since.
func (s *Stepper) LastMove() core.Vec2 {
	return s.move
}

// Update resets the target velocity and asks the strategy for a new one.
func (s *Stepper) Update() {
	s.target = core.Vec2{}
	if s.strategy != nil {
		s.target = s.target.Add(s.strategy.ComputeVelocity(s.axes))
	}
}

// FixedUpdate moves the body by targetVelocity*dt and returns the displacement.
func (s *Stepper) FixedUpdate(dt float64) core.Vec2 {
	s.move = s.target.Scale(dt)
	s.body.SetPosition(s.body.Position().Add(s.move))
	return s.move
}

// ResolveContact nudges the body while it keeps overlapping another body.
//
// This is a heuristic for small penetration residue, not a collision solver:
// the last move is quantized to hundredths, then applied with its sign
// flipped on the axis that has input. Vertical input also rounds the final
// position to whole units. The arithmetic is kept as is for existing level
// geometry; do not reuse it for other shapes.
func (s *Stepper) ResolveContact() {
	q := s.move.Scale(100).Round()
	s.move = core.V(q.X/100, q.Y/100)

	if math.Abs(s.axes.Axis(AxisHorizontal)) > 0 {
		p := s.body.Position()
		s.body.SetPosition(core.V(p.X-s.move.X, p.Y+s.move.Y))
	}

	if math.Abs(s.axes.Axis(AxisVertical)) > 0 {
		p := s.body.Position()
		s.body.SetPosition(core.V(p.X+s.move.X, p.Y-s.move.Y).Round())
	}
}
