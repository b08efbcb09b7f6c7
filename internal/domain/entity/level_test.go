package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_AddPlatform(t *testing.T) {
	l := NewLevel("test", "Test")
	l.AddPlatform(NewPlatform(0, 0.2, 200, 240, 0))

	assert.Len(t, l.Platforms, 1)
	assert.Len(t, l.Floors, 1)
	assert.Len(t, l.Ceilings, 1)
	assert.Len(t, l.Walls, 2)
	assert.False(t, l.WallsInMotion())
}

func TestLevel_UpdateMovesEachPieceOnce(t *testing.T) {
	l := NewLevel("test", "Test")
	shared := NewFlat(300, 0, 0.2, 0.001)
	// Same flat used as a floor and a ceiling
	l.Floors = append(l.Floors, shared)
	l.Ceilings = append(l.Ceilings, shared)
	l.Walls = append(l.Walls, NewWall(1, 100, 200, 1, 0.001))

	l.Update(100)

	assert.InDelta(t, 0.1, shared.Center, 1e-9)
	assert.InDelta(t, 1.1, l.Walls[0].Angle, 1e-9)
	assert.True(t, l.WallsInMotion())
}
