package system

import (
	"math"

	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/domain/polar"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// PhysicsSystem moves bodies around the disc and resolves their contact with
// the level's static geometry. It is the only place positions are integrated.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// ScaledTime converts a frame delta in milliseconds into scaled frames
func (s *PhysicsSystem) ScaledTime(dt float64) float64 {
	return dt / s.config.Kernel.TimeScale
}

// AngularStep returns the angle covered by an angular velocity at a radius over dt
func (s *PhysicsSystem) AngularStep(angular, radius, dt float64) float64 {
	return angular / polar.SafeRadius(radius) * s.ScaledTime(dt) * s.config.Kernel.WalkScale
}

// PredictedHitbox returns the body's wedge with the angular motion still in
// flight this frame already applied.
func (s *PhysicsSystem) PredictedHitbox(body *entity.Body, dt float64) entity.Hitbox {
	lead := s.AngularStep(body.Angular, body.Radius, dt)
	return body.Shape.Hitbox(body.Position, lead)
}

// Step advances one body by dt milliseconds and reports what it touched.
// The search order floor, ceiling, wall is a precedence rule drivers depend on.
func (s *PhysicsSystem) Step(body *entity.Body, dt float64) entity.Contact {
	k := s.config.Kernel
	st := s.ScaledTime(dt)
	hb := s.PredictedHitbox(body, dt)

	var contact entity.Contact

	if body.Radial <= 0 && !body.Flags.Has(entity.IgnoreFloors) {
		contact.Floor = s.findFloor(body, hb, st)
	}

	if body.Radial > 0 && !body.Flags.Has(entity.IgnoreCeilings) {
		contact.Ceiling = s.findCeiling(body, hb, st)
		if contact.Ceiling != nil {
			body.Radial = 0
		}
	}

	if !body.Flags.Has(entity.IgnoreWalls) &&
		(math.Abs(body.Angular) > k.StandThreshold || s.level.WallsInMotion()) {
		contact.Wall = s.findWall(body, hb)
	}

	if contact.Floor != nil {
		s.land(body, contact.Floor, dt)
	} else {
		s.applyGravity(body)
		body.FloorDrift = 0
	}

	// Ceiling wins over the wall bounce
	if contact.Ceiling != nil {
		contact.Wall = nil
	}

	if contact.Wall != nil {
		s.bounce(body, contact.Wall, hb)
	} else {
		body.Angular = polar.Clamp(body.Angular, -k.MaxAngularVelocity, k.MaxAngularVelocity)
	}

	s.integrate(body, dt)

	return contact
}

// findFloor returns the first floor inside the band between the landing reach
// below the feet and the probe ring, overlapping the probe ring in angle.
// Floors are expected not to overlap.
func (s *PhysicsSystem) findFloor(body *entity.Body, hb entity.Hitbox, st float64) *entity.Flat {
	probe := hb.Probe()
	lower := hb.Bottom.Radius - body.Shape.Reach - math.Max(0, -body.Radial*st)
	upper := probe.Radius

	for _, f := range s.level.Floors {
		if f.Radius < lower || f.Radius > upper {
			continue
		}
		if f.Covers(probe.Angle, probe.HalfWidth) {
			return f
		}
	}
	return nil
}

// findCeiling returns the first ceiling between the feet and the head after this frame's rise
func (s *PhysicsSystem) findCeiling(body *entity.Body, hb entity.Hitbox, st float64) *entity.Flat {
	lower := hb.Bottom.Radius
	upper := hb.Top.Radius + body.Radial*st

	for _, c := range s.level.Ceilings {
		if c.Radius < lower || c.Radius > upper {
			continue
		}
		if c.Covers(hb.Top.Angle, hb.Top.HalfWidth) {
			return c
		}
	}
	return nil
}

// findWall returns the first wall the body is travelling into, or any moving
// wall it overlaps. Standing flush on a wall's cap does not count as contact.
func (s *PhysicsSystem) findWall(body *entity.Body, hb entity.Hitbox) *entity.Wall {
	travel := body.Angular + body.FloorDrift

	for _, w := range s.level.Walls {
		if w.Direction*travel >= 0 && w.Motion == 0 {
			continue
		}
		if hb.Bottom.Radius >= w.Top || hb.Top.Radius <= w.Bottom {
			continue
		}
		if polar.AngleDistance(hb.Bottom.Angle, w.Angle) < hb.Bottom.HalfWidth {
			return w
		}
	}
	return nil
}

// land snaps the body onto a floor and picks up the floor's motion
func (s *PhysicsSystem) land(body *entity.Body, floor *entity.Flat, dt float64) {
	body.Radius = floor.Radius
	body.Radial = 0
	body.Angular *= s.config.Kernel.GroundFriction
	body.FloorDrift = floor.Motion * dt
}

// applyGravity pulls an airborne body toward the center
func (s *PhysicsSystem) applyGravity(body *entity.Body) {
	if body.Flags.Has(entity.IgnoreGravity) {
		return
	}

	k := s.config.Kernel
	body.Radial -= k.Gravity
	if k.MaxFallSpeed > 0 && body.Radial < -k.MaxFallSpeed {
		body.Radial = -k.MaxFallSpeed
	}
}

// bounce pushes the body back out of a wall so it rests flush against it
func (s *PhysicsSystem) bounce(body *entity.Body, wall *entity.Wall, hb entity.Hitbox) {
	bounce := s.config.Kernel.WallBounce

	// Velocity into the wall becomes a small bounce away from it
	if body.Angular*wall.Direction <= 0 {
		body.Angular = wall.Direction * math.Min(math.Abs(body.Angular), bounce)
	}

	// A moving floor must not carry the body back into the wall
	if body.FloorDrift*wall.Direction < 0 {
		body.FloorDrift = 0
	}

	body.Angle = polar.WrapAngle(wall.Angle + wall.Direction*hb.Bottom.HalfWidth)
}

// integrate moves the body by its velocity and keeps the position canonical
func (s *PhysicsSystem) integrate(body *entity.Body, dt float64) {
	angle := body.Angle + s.AngularStep(body.Angular, body.Radius, dt) + body.FloorDrift
	radius := body.Radius + body.Radial*s.ScaledTime(dt)

	// Passing through the center comes out on the opposite side
	if radius < 0 {
		radius = -radius
		angle += math.Pi
	}

	body.Angle = polar.WrapAngle(angle)
	body.Radius = radius
}
