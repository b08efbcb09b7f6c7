package system

import (
	"fmt"

	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// PlayerActor is the actor name reported to observers for the player
const PlayerActor = "player"

// StepObserver is notified after every actor's physics step
type StepObserver interface {
	ObserveStep(frame int, actor string, body *entity.Body, contact entity.Contact)
}

// Simulation owns one level and everything moving in it, and advances them
// together one frame at a time.
type Simulation struct {
	config *config.GameConfig

	Level   *entity.Level
	Player  *entity.Player
	Enemies []*entity.Enemy

	physics  *PhysicsSystem
	input    *InputSystem
	crawlers *CrawlerSystem
	Combat   *CombatSystem

	Observer StepObserver

	frame   int
	elapsed float64
	dead    bool
}

// NewSimulation places the player at the level spawn and every enemy at its spawn point
func NewSimulation(cfg *config.GameConfig, level *entity.Level) (*Simulation, error) {
	physics := NewPhysicsSystem(cfg.Physics, level)

	playerCfg := cfg.Entities.Player
	sim := &Simulation{
		config:   cfg,
		Level:    level,
		Player:   entity.NewPlayer(level.Spawn, shapeFromConfig(playerCfg.Shape), playerCfg.Stats.MaxHealth),
		physics:  physics,
		input:    NewInputSystem(cfg.Physics),
		crawlers: NewCrawlerSystem(physics),
		Combat:   NewCombatSystem(cfg.Physics),
	}

	for i, spawn := range level.Spawns {
		enemyCfg, ok := cfg.Entities.Enemies[spawn.Kind]
		if !ok {
			return nil, fmt.Errorf("spawn %d: unknown enemy type %q", i, spawn.Kind)
		}
		if enemyCfg.AI.Type != "crawler" {
			return nil, fmt.Errorf("spawn %d: unsupported ai type %q", i, enemyCfg.AI.Type)
		}

		enemy := entity.NewEnemy(entity.EntityID(i+1), spawn.Kind, spawn.Position, shapeFromConfig(enemyCfg.Shape), spawn.Direction)
		enemy.MaxHealth = enemyCfg.Stats.MaxHealth
		enemy.Health = enemyCfg.Stats.MaxHealth
		enemy.ContactDamage = enemyCfg.Stats.ContactDamage
		enemy.MoveSpeed = enemyCfg.Stats.MoveSpeed
		sim.Enemies = append(sim.Enemies, enemy)
	}

	return sim, nil
}

func shapeFromConfig(c config.ShapeConfig) entity.Shape {
	return entity.Shape{
		HalfWidth:  c.HalfWidth,
		Height:     c.Height,
		StepHeight: c.StepHeight,
		Reach:      c.Reach,
	}
}

// ClampDelta limits a raw frame delta to [0, maxFrameStep] milliseconds
func (s *Simulation) ClampDelta(raw float64) float64 {
	maxStep := s.config.Physics.Kernel.MaxFrameStep
	switch {
	case raw < 0:
		return 0
	case maxStep > 0 && raw > maxStep:
		return maxStep
	}
	return raw
}

// Frame advances the world by one raw frame delta in milliseconds and returns
// the delta actually simulated. All geometry moves before any actor steps, so
// actors never see each other's half-updated world.
func (s *Simulation) Frame(raw float64, input InputState) float64 {
	dt := s.ClampDelta(raw)
	if dt == 0 {
		return 0
	}

	s.Level.Update(dt)

	if !s.dead {
		s.input.UpdatePlayer(s.Player, input, dt)
		contact := s.physics.Step(&s.Player.Body, dt)
		s.input.React(s.Player, contact)
		s.observe(PlayerActor, &s.Player.Body, contact)
	}

	for _, e := range s.Enemies {
		if !e.IsAlive() {
			continue
		}
		contact := s.crawlers.Update(e, dt)
		s.observe(enemyActor(e), &e.Body, contact)
	}

	if !s.dead && s.Combat.ResolveContacts(s.Player, s.Enemies) {
		s.dead = true
	}

	s.frame++
	s.elapsed += dt
	return dt
}

func (s *Simulation) observe(actor string, body *entity.Body, contact entity.Contact) {
	if s.Observer != nil {
		s.Observer.ObserveStep(s.frame, actor, body, contact)
	}
}

func enemyActor(e *entity.Enemy) string {
	return fmt.Sprintf("%s#%d", e.EnemyType, e.ID)
}

// FrameCount returns the number of frames simulated so far
func (s *Simulation) FrameCount() int {
	return s.frame
}

// Elapsed returns the simulated time in milliseconds
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// PlayerDead reports whether the player has run out of health
func (s *Simulation) PlayerDead() bool {
	return s.dead
}
