// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ringfall/internal/application/replay"
	"github.com/younwookim/ringfall/internal/application/scene"
	"github.com/younwookim/ringfall/internal/application/state"
	"github.com/younwookim/ringfall/internal/application/system"
	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// hitstopTicks is how long the world freezes when the player is hurt
const hitstopTicks = 4

// Options configures optional recording, playback and step observation
type Options struct {
	RecordPath string
	Replay     *replay.ReplayData
	Observer   system.StepObserver
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	levelCfg *config.LevelConfig
	opts     Options

	sim         *system.Simulation
	inputSystem *system.InputSystem
	state       state.GameState
	camera      *camera
	screenW     int
	screenH     int

	// Feedback
	hitstop    int
	flashTimer float64
	stomps     int

	recorder   *replay.Recorder
	replayer   *replay.Replayer
	replayDone bool
}

// New creates a new Playing scene for a level
func New(cfg *config.GameConfig, levelCfg *config.LevelConfig, opts Options) (*Playing, error) {
	display := cfg.Physics.Display
	p := &Playing{
		config:      cfg,
		levelCfg:    levelCfg,
		opts:        opts,
		inputSystem: system.NewInputSystem(cfg.Physics),
		camera:      newCamera(display.ScreenWidth, display.ScreenHeight, display.Zoom),
		screenW:     display.ScreenWidth,
		screenH:     display.ScreenHeight,
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// reset rebuilds the level and simulation from config. Geometry moves during
// play, so a restart needs a fresh level.
func (p *Playing) reset() error {
	sim, err := system.NewSimulation(p.config, system.LoadLevel(p.levelCfg))
	if err != nil {
		return err
	}
	sim.Observer = p.opts.Observer
	sim.Combat.OnPlayerHit = func(_ *entity.Player, _ *entity.Enemy) {
		p.hitstop = hitstopTicks
		p.flashTimer = p.config.Physics.Combat.Iframes
	}
	sim.Combat.OnStomp = func(_ *entity.Enemy, _ bool) {
		p.stomps++
	}

	p.sim = sim
	p.hitstop = 0
	p.flashTimer = 0
	p.stomps = 0
	p.camera.follow(sim.Player.Angle)

	switch {
	case p.opts.Replay != nil:
		p.replayer = replay.NewReplayer(*p.opts.Replay)
		p.replayDone = false
		p.state = state.StateReplaying
	case p.opts.RecordPath != "":
		p.recorder = replay.NewRecorder(p.levelCfg.ID)
		p.state = state.StatePlaying
		log.Printf("Recording enabled: %s", p.opts.RecordPath)
	default:
		p.state = state.StatePlaying
	}
	return nil
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.hitstop > 0 {
		p.hitstop--
		return nil, nil
	}

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		p.Step(dt, p.inputSystem.GetInput())

	case state.StateReplaying:
		p.replayFrame()

	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !p.replayDone {
			p.state = state.StatePlaying
			if p.replayer != nil {
				p.state = state.StateReplaying
			}
		}

	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.saveRecording()
			if err := p.reset(); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil
}

// Step advances the world by one frame of live input
func (p *Playing) Step(dt float64, input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input, dt)
	}
	p.advance(dt, input)
}

func (p *Playing) replayFrame() {
	input, dt, ok := p.replayer.Next()
	if !ok {
		p.replayDone = true
		p.state = state.StatePaused
		log.Printf("Replay finished: %d frames", p.replayer.TotalFrames())
		return
	}
	p.advance(dt, input)
}

func (p *Playing) advance(dt float64, input system.InputState) {
	if p.flashTimer > 0 {
		p.flashTimer -= p.sim.ClampDelta(dt)
	}
	p.sim.Frame(dt, input)
	p.camera.follow(p.sim.Player.Angle)

	if p.sim.PlayerDead() {
		p.state = state.StateGameOver
		p.saveRecording()
	}
}

// saveRecording writes and stops the current recording, if any
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", p.opts.RecordPath, p.recorder.FrameCount())
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}
