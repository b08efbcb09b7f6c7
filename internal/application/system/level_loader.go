package system

import (
	"math"

	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// motionToRadPerMs converts degrees per second into radians per millisecond
func motionToRadPerMs(degPerSec float64) float64 {
	return degToRad(degPerSec) / 1000
}

// LoadLevel converts a LevelConfig into a Level entity
func LoadLevel(cfg *config.LevelConfig) *entity.Level {
	level := entity.NewLevel(cfg.ID, cfg.Name)
	level.Spawn = entity.Position{
		Angle:  degToRad(cfg.Spawn.AngleDeg),
		Radius: cfg.Spawn.Radius,
	}

	for _, r := range cfg.Rings {
		ring := entity.NewRing(r.Radius, motionToRadPerMs(r.MotionDeg))
		if r.Ceiling {
			level.Ceilings = append(level.Ceilings, ring)
		} else {
			level.Floors = append(level.Floors, ring)
		}
	}

	for _, p := range cfg.Platforms {
		level.AddPlatform(entity.NewPlatform(
			degToRad(p.CenterDeg),
			degToRad(p.HalfWidthDeg),
			p.Bottom,
			p.Top,
			motionToRadPerMs(p.MotionDeg),
		))
	}

	for _, f := range cfg.Floors {
		level.Floors = append(level.Floors, newFlat(f))
	}
	for _, f := range cfg.Ceilings {
		level.Ceilings = append(level.Ceilings, newFlat(f))
	}

	for _, w := range cfg.Walls {
		level.Walls = append(level.Walls, entity.NewWall(
			degToRad(w.AngleDeg),
			w.Bottom,
			w.Top,
			float64(w.Direction),
			motionToRadPerMs(w.MotionDeg),
		))
	}

	for _, e := range cfg.Enemies {
		spawn := entity.Spawn{
			Kind:      e.Type,
			Direction: float64(e.Direction),
			Position: entity.Position{
				Angle:  degToRad(e.Position.AngleDeg),
				Radius: e.Position.Radius,
			},
		}
		if e.Platform > 0 && e.Platform <= len(level.Platforms) {
			spawn.Position = entity.Position{
				Angle:  degToRad(e.AngleDeg),
				Radius: level.Platforms[e.Platform-1].Floor.Radius,
			}
		}
		if spawn.Direction == 0 {
			spawn.Direction = 1
		}
		level.Spawns = append(level.Spawns, spawn)
	}

	return level
}

func newFlat(f config.FlatConfig) *entity.Flat {
	return entity.NewFlat(f.Radius, degToRad(f.CenterDeg), degToRad(f.HalfWidthDeg), motionToRadPerMs(f.MotionDeg))
}
