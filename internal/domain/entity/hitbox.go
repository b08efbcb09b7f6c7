package entity

import "github.com/younwookim/ringfall/internal/domain/polar"

// Hitsize is one ring slice of a wedge hitbox
type Hitsize struct {
	Radius    float64
	Angle     float64
	HalfWidth float64 // angular half-width in radians
}

// Hitbox is a wedge described by its bottom and top rings.
// Step is an optional ring between the two used as the floor probe, so that an
// actor only snaps onto floors within its step height.
type Hitbox struct {
	Bottom Hitsize
	Top    Hitsize
	Step   *Hitsize
}

// Probe returns the ring used as the upper bound of the floor search
func (h Hitbox) Probe() Hitsize {
	if h.Step != nil {
		return *h.Step
	}
	return h.Top
}

// AngularOverlap reports whether two ring slices overlap in angle
func AngularOverlap(a, b Hitsize) bool {
	return polar.AngleDistance(a.Angle, b.Angle) < a.HalfWidth+b.HalfWidth
}

// HitboxesCollide reports whether two wedges overlap.
// Angular overlap is only tested at the bottom rings.
func HitboxesCollide(a, b Hitbox) bool {
	if a.Bottom.Radius > b.Top.Radius || a.Top.Radius < b.Bottom.Radius {
		return false
	}
	return AngularOverlap(a.Bottom, b.Bottom)
}

// Shape is the physical extent of an actor in pixels.
type Shape struct {
	HalfWidth  float64 // physical half-width
	Height     float64 // feet to head
	StepHeight float64 // optional floor probe height above the feet, 0 = use Height
	Reach      float64 // landing tolerance below the feet
}

// Hitbox builds the wedge for an actor standing at pos. lead is the predictive
// angular offset for the motion still in flight this frame.
func (s Shape) Hitbox(pos Position, lead float64) Hitbox {
	angle := polar.WrapAngle(pos.Angle + lead)
	hb := Hitbox{
		Bottom: s.ring(pos.Radius, angle),
		Top:    s.ring(pos.Radius+s.Height, angle),
	}
	if s.StepHeight > 0 {
		step := s.ring(pos.Radius+s.StepHeight, angle)
		hb.Step = &step
	}
	return hb
}

func (s Shape) ring(radius, angle float64) Hitsize {
	return Hitsize{
		Radius:    radius,
		Angle:     angle,
		HalfWidth: polar.ScaleWidth(s.HalfWidth, radius),
	}
}
