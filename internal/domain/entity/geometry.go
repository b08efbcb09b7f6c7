package entity

import (
	"math"

	"github.com/younwookim/ringfall/internal/domain/polar"
)

// Flat is a floor or ceiling arc at a fixed radius
type Flat struct {
	Radius    float64
	Center    float64
	HalfWidth float64
	Motion    float64 // radians per millisecond

	// Walls bounding the platform this flat belongs to, if any
	LeftWall  *Wall
	RightWall *Wall
}

// NewFlat creates a flat with its center wrapped into [0, 2π)
func NewFlat(radius, center, halfWidth, motion float64) *Flat {
	return &Flat{
		Radius:    radius,
		Center:    polar.WrapAngle(center),
		HalfWidth: halfWidth,
		Motion:    motion,
	}
}

// NewRing creates a full-circle flat
func NewRing(radius, motion float64) *Flat {
	return NewFlat(radius, 0, math.Pi, motion)
}

// Circular reports whether the flat spans the whole circle
func (f *Flat) Circular() bool {
	return f.HalfWidth >= math.Pi
}

// Left returns the wrapped angle of the left edge
func (f *Flat) Left() float64 {
	return polar.WrapAngle(f.Center - f.HalfWidth)
}

// Right returns the wrapped angle of the right edge
func (f *Flat) Right() float64 {
	return polar.WrapAngle(f.Center + f.HalfWidth)
}

// Covers reports whether a ring slice at angle with the given half-width overlaps the flat
func (f *Flat) Covers(angle, halfWidth float64) bool {
	if f.Circular() {
		return true
	}
	return polar.AngleDistance(f.Center, angle) < f.HalfWidth+halfWidth
}

// Offset returns the signed angular offset of angle from the flat center
func (f *Flat) Offset(angle float64) float64 {
	return polar.AngleDelta(f.Center, angle)
}

// Update advances the flat by its own motion
func (f *Flat) Update(dt float64) {
	if f.Motion == 0 {
		return
	}
	f.Center = polar.WrapAngle(f.Center + f.Motion*dt)
}

// Wall is a radial blocking segment at a fixed angle.
// Direction is the side contact applies from: travel toward increasing angle hits
// a Direction -1 wall, travel toward decreasing angle hits a Direction +1 wall.
type Wall struct {
	Angle     float64
	Top       float64
	Bottom    float64
	Direction float64
	Motion    float64

	// Flats capping the wall, if any
	Floor   *Flat
	Ceiling *Flat
}

// NewWall creates a wall, normalizing the angle and radius order
func NewWall(angle, bottom, top, direction, motion float64) *Wall {
	if bottom > top {
		bottom, top = top, bottom
	}
	return &Wall{
		Angle:     polar.WrapAngle(angle),
		Top:       top,
		Bottom:    bottom,
		Direction: polar.Sign(direction),
		Motion:    motion,
	}
}

// Update advances the wall by its own motion
func (w *Wall) Update(dt float64) {
	if w.Motion == 0 {
		return
	}
	w.Angle = polar.WrapAngle(w.Angle + w.Motion*dt)
}

// Endpoints returns the cartesian bottom and top points of the wall
func (w *Wall) Endpoints() (x0, y0, x1, y1 float64) {
	x0, y0 = polar.ToCartesian(w.Angle, w.Bottom)
	x1, y1 = polar.ToCartesian(w.Angle, w.Top)
	return x0, y0, x1, y1
}

// Platform is a solid block bounded by a floor on top, a ceiling underneath and two walls.
type Platform struct {
	Floor     *Flat
	Ceiling   *Flat
	LeftWall  *Wall
	RightWall *Wall
}

// NewPlatform builds a linked platform spanning [bottom, top] in radius
// and center±halfWidth in angle. All four pieces share the same motion.
func NewPlatform(center, halfWidth, bottom, top, motion float64) *Platform {
	if bottom > top {
		bottom, top = top, bottom
	}
	p := &Platform{
		Floor:     NewFlat(top, center, halfWidth, motion),
		Ceiling:   NewFlat(bottom, center, halfWidth, motion),
		LeftWall:  NewWall(center-halfWidth, bottom, top, -1, motion),
		RightWall: NewWall(center+halfWidth, bottom, top, 1, motion),
	}

	for _, f := range []*Flat{p.Floor, p.Ceiling} {
		f.LeftWall = p.LeftWall
		f.RightWall = p.RightWall
	}
	for _, w := range []*Wall{p.LeftWall, p.RightWall} {
		w.Floor = p.Floor
		w.Ceiling = p.Ceiling
	}
	return p
}
