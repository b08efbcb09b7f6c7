package entity

import "github.com/younwookim/ringfall/internal/domain/polar"

// Position is a point on the disc.
// Angle is kept in [0, 2π) and Radius is non-negative after every physics step.
type Position struct {
	Angle  float64
	Radius float64
}

// XY returns the cartesian position relative to the world center
func (p Position) XY() (x, y float64) {
	return polar.ToCartesian(p.Angle, p.Radius)
}

// Velocity is measured in pixels per scaled frame.
// FloorDrift is the angle carried by a moving floor this frame; it is recomputed
// every step and never integrated on its own.
type Velocity struct {
	Angular    float64
	Radial     float64
	FloorDrift float64
}

// PhysicsFlags disables parts of the physics step for one body
type PhysicsFlags uint8

const (
	IgnoreFloors PhysicsFlags = 1 << iota
	IgnoreCeilings
	IgnoreWalls
	IgnoreGravity
)

// Has reports whether all bits of f are set
func (p PhysicsFlags) Has(f PhysicsFlags) bool {
	return p&f == f
}

// Body is anything the physics step can move.
// Velocity stays exported so collaborators like knockback can write it between steps.
type Body struct {
	Position
	Velocity
	Shape Shape
	Flags PhysicsFlags
}

// NewBody creates a body at the given position
func NewBody(angle, radius float64, shape Shape) *Body {
	return &Body{
		Position: Position{Angle: polar.WrapAngle(angle), Radius: radius},
		Shape:    shape,
	}
}

// Hitbox returns the body's current wedge without any predictive offset
func (b *Body) Hitbox() Hitbox {
	return b.Shape.Hitbox(b.Position, 0)
}

// AngularHalfWidth returns the body's angular half-width at its feet
func (b *Body) AngularHalfWidth() float64 {
	return polar.ScaleWidth(b.Shape.HalfWidth, b.Radius)
}
