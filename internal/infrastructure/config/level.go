package config

import (
	"errors"
	"fmt"
)

// LevelConfig is the root config for levels/<name>.yaml.
// Angles are in degrees and motion in degrees per second.
type LevelConfig struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Spawn     PositionConfig   `yaml:"spawn"`
	Platforms []PlatformConfig `yaml:"platforms"`
	Rings     []RingConfig     `yaml:"rings"`
	Floors    []FlatConfig     `yaml:"floors"`
	Ceilings  []FlatConfig     `yaml:"ceilings"`
	Walls     []WallConfig     `yaml:"walls"`
	Enemies   []EnemySpawn     `yaml:"enemies"`
}

type PositionConfig struct {
	AngleDeg float64 `yaml:"angle_deg"`
	Radius   float64 `yaml:"radius"`
}

type PlatformConfig struct {
	CenterDeg    float64 `yaml:"center_deg"`
	HalfWidthDeg float64 `yaml:"half_width_deg"`
	Bottom       float64 `yaml:"bottom"`
	Top          float64 `yaml:"top"`
	MotionDeg    float64 `yaml:"motion_deg"`
}

// RingConfig is a full-circle floor, or a ceiling when Ceiling is set
type RingConfig struct {
	Radius    float64 `yaml:"radius"`
	MotionDeg float64 `yaml:"motion_deg"`
	Ceiling   bool    `yaml:"ceiling"`
}

type FlatConfig struct {
	Radius       float64 `yaml:"radius"`
	CenterDeg    float64 `yaml:"center_deg"`
	HalfWidthDeg float64 `yaml:"half_width_deg"`
	MotionDeg    float64 `yaml:"motion_deg"`
}

type WallConfig struct {
	AngleDeg  float64 `yaml:"angle_deg"`
	Bottom    float64 `yaml:"bottom"`
	Top       float64 `yaml:"top"`
	Direction int     `yaml:"direction"`
	MotionDeg float64 `yaml:"motion_deg"`
}

// EnemySpawn places an enemy. With Platform set (1-based) the enemy starts on
// that platform's floor at AngleDeg; otherwise at Position.
type EnemySpawn struct {
	Type      string         `yaml:"type"`
	Platform  int            `yaml:"platform"`
	AngleDeg  float64        `yaml:"angle_deg"`
	Position  PositionConfig `yaml:"position"`
	Direction int            `yaml:"direction"`
}

// Validate checks the level for geometry that the physics step cannot use
func (c *LevelConfig) Validate() error {
	var errs []error
	if c.Spawn.Radius <= 0 {
		errs = append(errs, fmt.Errorf("spawn radius must be positive, got %v", c.Spawn.Radius))
	}
	for i, p := range c.Platforms {
		if p.Bottom <= 0 || p.Top <= p.Bottom {
			errs = append(errs, fmt.Errorf("platform %d: need 0 < bottom < top, got %v..%v", i+1, p.Bottom, p.Top))
		}
		if p.HalfWidthDeg <= 0 {
			errs = append(errs, fmt.Errorf("platform %d: half width must be positive", i+1))
		}
	}
	for i, r := range c.Rings {
		if r.Radius <= 0 {
			errs = append(errs, fmt.Errorf("ring %d: radius must be positive", i+1))
		}
	}
	for i, f := range append(append([]FlatConfig{}, c.Floors...), c.Ceilings...) {
		if f.Radius <= 0 || f.HalfWidthDeg <= 0 {
			errs = append(errs, fmt.Errorf("flat %d: radius and half width must be positive", i+1))
		}
	}
	for i, w := range c.Walls {
		if w.Direction == 0 {
			errs = append(errs, fmt.Errorf("wall %d: direction must be -1 or 1", i+1))
		}
		if w.Top <= w.Bottom {
			errs = append(errs, fmt.Errorf("wall %d: top must be above bottom", i+1))
		}
	}
	for i, e := range c.Enemies {
		if e.Platform < 0 || e.Platform > len(c.Platforms) {
			errs = append(errs, fmt.Errorf("enemy %d: unknown platform %d", i+1, e.Platform))
		}
	}
	return errors.Join(errs...)
}
