package entity

// Enemy is an AI-driven actor. Crawlers walk around the perimeter of a platform,
// so besides its Surface an enemy remembers which flat or wall it is stuck to.
type Enemy struct {
	ID EntityID
	Body
	Active bool

	// Properties
	EnemyType     string
	MaxHealth     int
	Health        int
	ContactDamage int
	MoveSpeed     float64

	// Direction of travel along a floor, +1 toward increasing angle.
	// On a ceiling the enemy moves the opposite way.
	Direction float64
	// Climb is +1 while moving up a wall and -1 while moving down
	Climb float64

	Surface Surface
	Floor   *Flat
	Ceiling *Flat
	Wall    *Wall

	HitTimer float64
}

// NewEnemy creates a new enemy at pos heading in direction
func NewEnemy(id EntityID, enemyType string, pos Position, shape Shape, direction float64) *Enemy {
	if direction == 0 {
		direction = 1
	}
	return &Enemy{
		ID:        id,
		Body:      *NewBody(pos.Angle, pos.Radius, shape),
		Active:    true,
		EnemyType: enemyType,
		Direction: direction,
		Surface:   Surface{Kind: Airborne},
	}
}

// TakeDamage applies damage to the enemy and flashes it for hitFlash ms
func (e *Enemy) TakeDamage(damage int, hitFlash float64) bool {
	e.Health -= damage
	e.HitTimer = hitFlash
	if e.Health <= 0 {
		e.Active = false
	}
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}

// Attach sticks the enemy to a surface, forgetting the previous one
func (e *Enemy) Attach(kind SurfaceKind, floor, ceiling *Flat, wall *Wall) {
	e.Floor, e.Ceiling, e.Wall = floor, ceiling, wall
	e.Surface = Surface{Kind: kind}
	if wall != nil {
		e.Surface.Side = wall.Direction
	}
}

// Detach drops the enemy off whatever it was stuck to
func (e *Enemy) Detach() {
	e.Attach(Airborne, nil, nil, nil)
	e.Flags = 0
}
