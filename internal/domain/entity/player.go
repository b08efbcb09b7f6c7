package entity

// Player is the player-controlled actor
type Player struct {
	Body
	Surface Surface
	Caps    Capability

	Health    int
	MaxHealth int

	FacingRight bool

	// Timers in milliseconds
	CoyoteTimer     float64
	JumpBufferTimer float64
	IframeTimer     float64
	StunTimer       float64
}

// NewPlayer creates a new player standing at spawn
func NewPlayer(spawn Position, shape Shape, maxHealth int) *Player {
	return &Player{
		Body:        *NewBody(spawn.Angle, spawn.Radius, shape),
		Surface:     Surface{Kind: Airborne},
		Health:      maxHealth,
		MaxHealth:   maxHealth,
		FacingRight: true,
	}
}

// OnGround reports whether the last step landed on a floor
func (p *Player) OnGround() bool {
	return p.Surface.Is(Grounded)
}

// IsInvincible returns true if player is currently invincible
func (p *Player) IsInvincible() bool {
	return p.IframeTimer > 0
}

// IsStunned returns true if player is currently stunned
func (p *Player) IsStunned() bool {
	return p.StunTimer > 0
}

// TakeDamage applies damage if not invincible, returns true if dead
func (p *Player) TakeDamage(amount int) bool {
	if p.IsInvincible() {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health == 0
}
