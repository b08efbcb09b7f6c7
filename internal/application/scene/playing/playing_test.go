package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ringfall/internal/application/replay"
	"github.com/younwookim/ringfall/internal/application/scene"
	"github.com/younwookim/ringfall/internal/application/state"
	"github.com/younwookim/ringfall/internal/application/system"
	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:  640,
				ScreenHeight: 480,
				Scale:        1,
				Framerate:    60,
				Zoom:         0.5,
			},
			Kernel: config.KernelConfig{
				TimeScale:          16,
				WalkScale:          1,
				Gravity:            0.5,
				GroundFriction:     0.8,
				StandThreshold:     0.05,
				MaxAngularVelocity: 4,
				WallBounce:         0.5,
				MaxFrameStep:       50,
			},
			Movement: config.MovementConfig{Acceleration: 1, AirControl: 0.5, MaxSpeed: 3},
			Jump:     config.JumpConfig{Force: 6, VariableJumpMultiplier: 0.5, CoyoteTime: 100, JumpBuffer: 100},
			Combat: config.CombatConfig{
				Iframes:   500,
				HitFlash:  200,
				Knockback: config.KnockbackConfig{Force: 2, UpForce: 3, StunDuration: 200},
				Stomp:     config.StompConfig{Damage: 10, Bounce: 4},
			},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				Shape: config.ShapeConfig{HalfWidth: 8, Height: 24, Reach: 12},
				Stats: config.PlayerStats{MaxHealth: 10},
			},
			Enemies: map[string]config.EnemyConfig{
				"krillna": {
					Shape: config.ShapeConfig{HalfWidth: 6, Height: 10, Reach: 3},
					Stats: config.EnemyStats{MaxHealth: 30, ContactDamage: 10, MoveSpeed: 2},
					AI:    config.AIConfig{Type: "crawler"},
				},
			},
		},
	}
}

// createTestLevelConfig creates a ground ring with the player spawning on it
func createTestLevelConfig() *config.LevelConfig {
	return &config.LevelConfig{
		ID:    "test",
		Name:  "Test",
		Spawn: config.PositionConfig{AngleDeg: 90, Radius: 150},
		Rings: []config.RingConfig{{Radius: 150}},
	}
}

// withEnemyOnSpawn puts a crawler where the player stands
func withEnemyOnSpawn(cfg *config.LevelConfig) *config.LevelConfig {
	cfg.Enemies = []config.EnemySpawn{
		{Type: "krillna", Position: config.PositionConfig{AngleDeg: 90, Radius: 150}, Direction: 1},
	}
	return cfg
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	p, err := New(createTestConfig(), createTestLevelConfig(), Options{})
	require.NoError(t, err)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 150.0, p.Simulation().Player.Radius)
	assert.Nil(t, p.recorder)
	assert.Equal(t, p.Simulation().Player.Angle, p.camera.focus)
}

func TestNew_UnknownEnemy(t *testing.T) {
	levelCfg := createTestLevelConfig()
	levelCfg.Enemies = []config.EnemySpawn{{Type: "ghost"}}

	_, err := New(createTestConfig(), levelCfg, Options{})

	require.Error(t, err)
}

func TestPlaying_StepRecordsAndFollows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, err := New(createTestConfig(), createTestLevelConfig(), Options{RecordPath: path})
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		p.Step(16, system.InputState{Right: true})
	}

	assert.Equal(t, 20, p.recorder.FrameCount())
	assert.Equal(t, 20, p.Simulation().FrameCount())
	assert.Equal(t, p.Simulation().Player.Angle, p.camera.focus)
	assert.Equal(t, state.StatePlaying, p.State())

	p.OnExit()
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 20)
	assert.Equal(t, "test", data.Level)
}

func TestPlaying_DeathEndsGameAndSavesRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "death.json")
	p, err := New(createTestConfig(), withEnemyOnSpawn(createTestLevelConfig()), Options{RecordPath: path})
	require.NoError(t, err)

	p.Step(16, system.InputState{})

	assert.True(t, p.Simulation().PlayerDead())
	assert.Equal(t, state.StateGameOver, p.State())
	assert.Equal(t, hitstopTicks, p.hitstop)
	assert.Equal(t, 500.0, p.flashTimer)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)
}

func TestPlaying_HitstopFreezesWorld(t *testing.T) {
	p, err := New(createTestConfig(), createTestLevelConfig(), Options{})
	require.NoError(t, err)
	p.hitstop = 2
	p.state = state.StateReplaying
	p.replayer = replay.NewReplayer(replay.ReplayData{Version: replay.Version, Frames: []replay.FrameInput{{DT: 16}}})

	for i := 0; i < 2; i++ {
		next, err := p.Update(16)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, 0, p.Simulation().FrameCount())
}

func TestPlaying_ReplayRunsToEnd(t *testing.T) {
	data := &replay.ReplayData{
		Version: replay.Version,
		Level:   "test",
		Frames: []replay.FrameInput{
			{F: 0, DT: 16, R: true},
			{F: 1, DT: 16, R: true},
			{F: 2, DT: 20, R: true, J: true, JP: true},
		},
	}
	p, err := New(createTestConfig(), createTestLevelConfig(), Options{Replay: data})
	require.NoError(t, err)
	assert.Equal(t, state.StateReplaying, p.State())

	for i := 0; i < 3; i++ {
		_, err := p.Update(16)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.Simulation().FrameCount())
	assert.Equal(t, 52.0, p.Simulation().Elapsed())
	assert.False(t, p.replayDone)

	_, err = p.Update(16)
	require.NoError(t, err)
	assert.True(t, p.replayDone)
	assert.Equal(t, state.StatePaused, p.State())
}

func TestPlaying_Observer(t *testing.T) {
	obs := &countingObserver{}
	p, err := New(createTestConfig(), withEnemyOnSpawn(createTestLevelConfig()), Options{Observer: obs})
	require.NoError(t, err)

	p.Step(16, system.InputState{})

	assert.Equal(t, 2, obs.steps)
}

func TestPlaying_ResetRestoresLevel(t *testing.T) {
	p, err := New(createTestConfig(), withEnemyOnSpawn(createTestLevelConfig()), Options{})
	require.NoError(t, err)

	p.Step(16, system.InputState{})
	require.Equal(t, state.StateGameOver, p.State())

	require.NoError(t, p.reset())

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 10, p.Simulation().Player.Health)
	assert.False(t, p.Simulation().PlayerDead())
	assert.Equal(t, 0, p.hitstop)
}

type countingObserver struct {
	steps int
}

func (o *countingObserver) ObserveStep(int, string, *entity.Body, entity.Contact) {
	o.steps++
}
