package system

import (
	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/domain/polar"
)

// stuckFlags turns off everything but integration while an enemy clings to a wall or ceiling
const stuckFlags = entity.IgnoreFloors | entity.IgnoreCeilings | entity.IgnoreWalls | entity.IgnoreGravity

// CrawlerSystem drives enemies that walk around the whole perimeter of a platform:
// floor, outer wall down, ceiling underneath, the other wall up, and back onto the floor.
type CrawlerSystem struct {
	physics *PhysicsSystem
}

// NewCrawlerSystem creates a new crawler system
func NewCrawlerSystem(physics *PhysicsSystem) *CrawlerSystem {
	return &CrawlerSystem{physics: physics}
}

// Update drives one enemy through a full frame and returns the step's contact
func (s *CrawlerSystem) Update(e *entity.Enemy, dt float64) entity.Contact {
	if e.HitTimer > 0 {
		e.HitTimer -= dt
	}

	s.Drive(e, dt)
	contact := s.physics.Step(&e.Body, dt)
	s.React(e, contact)
	return contact
}

// Drive sets the enemy's velocity and flags for the surface it is stuck to,
// moving it onto the next surface when it reaches an edge.
func (s *CrawlerSystem) Drive(e *entity.Enemy, dt float64) {
	switch e.Surface.Kind {
	case entity.Grounded:
		s.walkFloor(e)
	case entity.OnWall:
		s.climbWall(e)
	case entity.OnCeiling:
		s.walkCeiling(e, dt)
	default:
		e.Flags = 0
	}
}

// React updates the enemy's surface after a physics step
func (s *CrawlerSystem) React(e *entity.Enemy, contact entity.Contact) {
	switch e.Surface.Kind {
	case entity.Airborne:
		if contact.Floor != nil {
			e.Attach(entity.Grounded, contact.Floor, nil, nil)
		}
	case entity.Grounded:
		if contact.Floor == nil {
			e.Detach()
			return
		}
		e.Floor = contact.Floor
		// A wall that is not part of our platform turns us around
		if contact.Wall != nil {
			e.Direction = -e.Direction
		}
	}
}

func (s *CrawlerSystem) walkFloor(e *entity.Enemy) {
	f := e.Floor
	e.Flags = 0
	e.Angular = e.Direction * e.MoveSpeed

	if f == nil || f.Circular() || f.Offset(e.Angle)*e.Direction < f.HalfWidth {
		return
	}

	wall := f.RightWall
	if e.Direction < 0 {
		wall = f.LeftWall
	}
	if wall == nil {
		// Free-standing ledge: turn around at the edge
		e.Direction = -e.Direction
		e.Angular = e.Direction * e.MoveSpeed
		e.Angle = polar.WrapAngle(f.Center - e.Direction*f.HalfWidth)
		return
	}

	e.Attach(entity.OnWall, nil, nil, wall)
	e.Climb = -1
	s.pinToWall(e, wall)
}

func (s *CrawlerSystem) climbWall(e *entity.Enemy) {
	w := e.Wall
	if w == nil {
		e.Detach()
		return
	}

	s.pinToWall(e, w)

	height := e.Shape.Height
	switch {
	case e.Climb < 0 && e.Radius+height <= w.Bottom:
		if w.Ceiling == nil {
			e.Detach()
			return
		}
		// Round the lower corner, hanging with the head against the ceiling
		e.Attach(entity.OnCeiling, nil, w.Ceiling, nil)
		e.Radius = w.Ceiling.Radius - height
		e.Radial = 0
		e.Angle = polar.WrapAngle(w.Angle - w.Direction*e.AngularHalfWidth())
		e.Angular = -e.Direction * e.MoveSpeed
		e.Flags = stuckFlags

	case e.Climb > 0 && e.Radius >= w.Top:
		if w.Floor == nil {
			e.Detach()
			return
		}
		// Round the upper corner onto the floor
		e.Attach(entity.Grounded, w.Floor, nil, nil)
		e.Direction = -w.Direction
		e.Radius = w.Floor.Radius
		e.Radial = 0
		e.Angle = polar.WrapAngle(w.Angle - w.Direction*e.AngularHalfWidth())
		e.Angular = e.Direction * e.MoveSpeed
		e.Flags = 0
	}
}

func (s *CrawlerSystem) walkCeiling(e *entity.Enemy, dt float64) {
	c := e.Ceiling
	if c == nil {
		e.Detach()
		return
	}

	travel := -e.Direction
	e.Flags = stuckFlags
	e.Radial = 0
	e.Radius = c.Radius - e.Shape.Height
	e.Angular = travel * e.MoveSpeed
	// Nothing carries a hanging body along, so follow the ceiling's motion by hand
	e.Angle = polar.WrapAngle(e.Angle + c.Motion*dt)

	if c.Circular() || c.Offset(e.Angle)*travel < c.HalfWidth {
		return
	}

	wall := c.RightWall
	if travel < 0 {
		wall = c.LeftWall
	}
	if wall == nil {
		e.Detach()
		return
	}

	e.Attach(entity.OnWall, nil, nil, wall)
	e.Climb = 1
	s.pinToWall(e, wall)
}

// pinToWall places the enemy flush against the outside face of a wall
func (s *CrawlerSystem) pinToWall(e *entity.Enemy, w *entity.Wall) {
	e.Angular = 0
	e.Radial = e.Climb * e.MoveSpeed
	e.Flags = stuckFlags
	e.Angle = polar.WrapAngle(w.Angle + w.Direction*e.AngularHalfWidth())
}
