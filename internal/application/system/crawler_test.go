package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ringfall/internal/domain/entity"
)

func createTestCrawler(pos entity.Position, direction float64) *entity.Enemy {
	e := entity.NewEnemy(1, "krillna", pos, entity.Shape{HalfWidth: 6, Height: 10, Reach: 3}, direction)
	e.MoveSpeed = 2
	e.Health = 10
	e.MaxHealth = 10
	return e
}

// runCrawler steps the crawler and returns the sequence of distinct surfaces it visited
func runCrawler(sys *CrawlerSystem, level *entity.Level, e *entity.Enemy, frames int) []entity.SurfaceKind {
	visited := []entity.SurfaceKind{e.Surface.Kind}
	for i := 0; i < frames; i++ {
		level.Update(frame)
		sys.Update(e, frame)
		if visited[len(visited)-1] != e.Surface.Kind {
			visited = append(visited, e.Surface.Kind)
		}
	}
	return visited
}

func TestCrawlerSystem_WalksAroundPlatform(t *testing.T) {
	for _, tt := range []struct {
		name      string
		direction float64
		motion    float64
	}{
		{name: "clockwise", direction: 1},
		{name: "counter clockwise", direction: -1},
		{name: "moving platform", direction: 1, motion: 0.0002},
	} {
		t.Run(tt.name, func(t *testing.T) {
			level := entity.NewLevel("t", "T")
			platform := entity.NewPlatform(1, 0.2, 200, 240, tt.motion)
			level.AddPlatform(platform)
			physics := NewPhysicsSystem(createTestPhysicsConfig(), level)
			sys := NewCrawlerSystem(physics)

			e := createTestCrawler(entity.Position{Angle: 1, Radius: 240}, tt.direction)
			e.Attach(entity.Grounded, platform.Floor, nil, nil)

			visited := runCrawler(sys, level, e, 400)

			require.GreaterOrEqual(t, len(visited), 5, "visited %v", visited)
			assert.Equal(t, []entity.SurfaceKind{
				entity.Grounded, entity.OnWall, entity.OnCeiling, entity.OnWall, entity.Grounded,
			}, visited[:5])
			assert.Equal(t, tt.direction, e.Direction, "back on top heading the same way")
		})
	}
}

func TestCrawlerSystem_HangsUnderCeiling(t *testing.T) {
	level := entity.NewLevel("t", "T")
	platform := entity.NewPlatform(1, 0.2, 200, 240, 0)
	level.AddPlatform(platform)
	sys := NewCrawlerSystem(NewPhysicsSystem(createTestPhysicsConfig(), level))

	e := createTestCrawler(entity.Position{Angle: 1, Radius: 190}, 1)
	e.Attach(entity.OnCeiling, nil, platform.Ceiling, nil)

	sys.Update(e, frame)

	assert.True(t, e.Surface.Is(entity.OnCeiling))
	assert.Equal(t, 190.0, e.Radius)
	assert.Less(t, e.Angle, 1.0, "moves opposite to its floor direction")
}

func TestCrawlerSystem_TurnsAtFreeLedge(t *testing.T) {
	level := entity.NewLevel("t", "T")
	ledge := entity.NewFlat(300, 1, 0.1, 0)
	level.Floors = append(level.Floors, ledge)
	sys := NewCrawlerSystem(NewPhysicsSystem(createTestPhysicsConfig(), level))

	e := createTestCrawler(entity.Position{Angle: 1, Radius: 300}, 1)
	e.Attach(entity.Grounded, ledge, nil, nil)

	turned := false
	for i := 0; i < 200; i++ {
		sys.Update(e, frame)
		require.True(t, e.Surface.Is(entity.Grounded), "fell off at frame %d", i)
		if e.Direction < 0 {
			turned = true
		}
	}
	assert.True(t, turned)
}

func TestCrawlerSystem_TurnsAtForeignWall(t *testing.T) {
	level := entity.NewLevel("t", "T")
	ring := entity.NewRing(150, 0)
	level.Floors = append(level.Floors, ring)
	level.Walls = append(level.Walls, entity.NewWall(1.2, 150, 200, -1, 0))
	sys := NewCrawlerSystem(NewPhysicsSystem(createTestPhysicsConfig(), level))

	e := createTestCrawler(entity.Position{Angle: 1, Radius: 150}, 1)
	e.Attach(entity.Grounded, ring, nil, nil)

	for i := 0; i < 100 && e.Direction > 0; i++ {
		sys.Update(e, frame)
	}

	assert.Equal(t, -1.0, e.Direction)
	assert.Less(t, e.Angle, 1.2)
}

func TestCrawlerSystem_FallsAndLands(t *testing.T) {
	level := entity.NewLevel("t", "T")
	ring := entity.NewRing(150, 0)
	level.Floors = append(level.Floors, ring)
	sys := NewCrawlerSystem(NewPhysicsSystem(createTestPhysicsConfig(), level))

	e := createTestCrawler(entity.Position{Angle: 2, Radius: 180}, 1)

	for i := 0; i < 100 && !e.Surface.Is(entity.Grounded); i++ {
		sys.Update(e, frame)
	}

	assert.True(t, e.Surface.Is(entity.Grounded))
	assert.Same(t, ring, e.Floor)
	assert.Equal(t, 150.0, e.Radius)
}

func TestCrawlerSystem_DropsOffUnlinkedWall(t *testing.T) {
	level := entity.NewLevel("t", "T")
	sys := NewCrawlerSystem(NewPhysicsSystem(createTestPhysicsConfig(), level))

	wall := entity.NewWall(1, 200, 240, 1, 0)
	e := createTestCrawler(entity.Position{Angle: 1, Radius: 185}, 1)
	e.Attach(entity.OnWall, nil, nil, wall)
	e.Climb = -1

	sys.Update(e, frame)

	assert.True(t, e.Surface.Is(entity.Airborne))
	assert.Equal(t, entity.PhysicsFlags(0), e.Flags)
}
