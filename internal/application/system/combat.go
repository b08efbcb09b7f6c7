package system

import (
	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/domain/polar"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// CombatSystem resolves wedge overlaps between the player and enemies
type CombatSystem struct {
	config *config.PhysicsConfig

	// Event callbacks
	OnPlayerHit func(player *entity.Player, enemy *entity.Enemy)
	OnStomp     func(enemy *entity.Enemy, killed bool)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// ResolveContacts checks the player against every active enemy.
// A falling player whose feet are above an enemy's middle stomps it; any other
// overlap hurts the player. Returns true if the player died.
func (s *CombatSystem) ResolveContacts(player *entity.Player, enemies []*entity.Enemy) bool {
	playerBox := player.Hitbox()

	for _, enemy := range enemies {
		if !enemy.IsAlive() {
			continue
		}

		enemyBox := enemy.Hitbox()
		if !entity.HitboxesCollide(playerBox, enemyBox) {
			continue
		}

		if s.canStomp(player, enemyBox) {
			s.stomp(player, enemy)
			continue
		}

		if player.IsInvincible() {
			continue
		}
		if s.damagePlayer(player, enemy) {
			return true
		}
	}
	return false
}

func (s *CombatSystem) canStomp(player *entity.Player, enemyBox entity.Hitbox) bool {
	if player.Caps.Has(entity.NoAttack) || player.Radial >= 0 {
		return false
	}
	middle := (enemyBox.Bottom.Radius + enemyBox.Top.Radius) / 2
	return player.Radius > middle
}

func (s *CombatSystem) stomp(player *entity.Player, enemy *entity.Enemy) {
	stomp := s.config.Combat.Stomp

	killed := enemy.TakeDamage(stomp.Damage, s.config.Combat.HitFlash)
	player.Radial = stomp.Bounce
	player.Surface = entity.Surface{Kind: entity.Airborne}

	if s.OnStomp != nil {
		s.OnStomp(enemy, killed)
	}
}

// damagePlayer hurts the player and knocks it away from the enemy along the circle
func (s *CombatSystem) damagePlayer(player *entity.Player, enemy *entity.Enemy) bool {
	combat := s.config.Combat

	dead := player.TakeDamage(enemy.ContactDamage)
	player.IframeTimer = combat.Iframes
	player.StunTimer = combat.Knockback.StunDuration
	player.Caps = player.Caps.With(entity.NoControl)

	dir := polar.Sign(polar.AngleDelta(enemy.Angle, player.Angle))
	if dir == 0 {
		dir = -enemy.Direction
	}
	player.Angular = dir * combat.Knockback.Force
	player.Radial = combat.Knockback.UpForce
	player.Surface = entity.Surface{Kind: entity.Airborne}

	if s.OnPlayerHit != nil {
		s.OnPlayerHit(player, enemy)
	}
	return dead
}
