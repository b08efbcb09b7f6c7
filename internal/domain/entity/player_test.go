package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(Position{Angle: 1, Radius: 200}, Shape{HalfWidth: 8, Height: 24}, 100)

	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 1.0, p.Angle)
	assert.True(t, p.FacingRight)
	assert.False(t, p.OnGround())
	assert.False(t, p.IsInvincible())
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(Position{Radius: 200}, Shape{}, 20)

	assert.False(t, p.TakeDamage(5))
	assert.Equal(t, 15, p.Health)

	p.IframeTimer = 100
	assert.False(t, p.TakeDamage(50))
	assert.Equal(t, 15, p.Health)

	p.IframeTimer = 0
	assert.True(t, p.TakeDamage(50))
	assert.Equal(t, 0, p.Health)
}

func TestEnemy(t *testing.T) {
	e := NewEnemy(3, "krillna", Position{Angle: 2, Radius: 150}, Shape{HalfWidth: 6}, 0)
	e.Health = 10

	assert.Equal(t, 1.0, e.Direction)
	assert.True(t, e.Surface.Is(Airborne))

	wall := NewWall(1, 100, 200, -1, 0)
	e.Attach(OnWall, nil, nil, wall)
	assert.Equal(t, Surface{Kind: OnWall, Side: -1}, e.Surface)
	assert.Same(t, wall, e.Wall)

	e.Flags = IgnoreGravity
	e.Detach()
	assert.Nil(t, e.Wall)
	assert.Equal(t, PhysicsFlags(0), e.Flags)

	assert.False(t, e.TakeDamage(4, 150))
	assert.Equal(t, 150.0, e.HitTimer)
	assert.True(t, e.TakeDamage(6, 150))
	assert.False(t, e.IsAlive())
}
