package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/ringfall/internal/domain/entity"
	"github.com/younwookim/ringfall/internal/infrastructure/config"
)

// InputSystem turns player input into desired velocity before the physics step
// and updates the player's state from the step's contact afterwards.
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state.
// Left and Right are screen-relative: Right walks toward increasing angle.
type InputState struct {
	Left         bool
	Right        bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:         ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeyW) || inpututil.IsKeyJustReleased(ebiten.KeySpace),
	}
}

// UpdatePlayer sets the player's desired velocity for this frame. dt is in milliseconds.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState, dt float64) {
	s.updateTimers(player, dt)

	if player.Caps.Has(entity.NoControl) {
		return
	}

	s.handleMovement(player, input, dt)
	s.handleJump(player, input)
}

// React updates the player's surface state from a physics step
func (s *InputSystem) React(player *entity.Player, contact entity.Contact) {
	player.Surface = player.Surface.Transition(contact)
}

// updateTimers updates various player timers
func (s *InputSystem) updateTimers(player *entity.Player, dt float64) {
	// Coyote time
	if player.OnGround() {
		player.CoyoteTimer = s.config.Jump.CoyoteTime
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer -= dt
	}

	// Jump buffer
	if player.JumpBufferTimer > 0 {
		player.JumpBufferTimer -= dt
	}

	// Iframes
	if player.IframeTimer > 0 {
		player.IframeTimer -= dt
	}

	// Stun
	if player.StunTimer > 0 {
		player.StunTimer -= dt
		if player.StunTimer <= 0 {
			player.Caps = player.Caps.Without(entity.NoControl)
		}
	}
}

// handleMovement accelerates the player toward the target angular velocity
func (s *InputSystem) handleMovement(player *entity.Player, input InputState, dt float64) {
	target := 0.0
	maxSpeed := s.config.Movement.MaxSpeed
	turn := !player.Caps.Has(entity.NoTurn)

	if input.Left {
		target = -maxSpeed
		if turn {
			player.FacingRight = false
		}
	}
	if input.Right {
		target = maxSpeed
		if turn {
			player.FacingRight = true
		}
	}

	// Without input the floor's friction does the slowing down
	if target == 0 {
		return
	}

	accel := s.config.Movement.Acceleration * dt / s.config.Kernel.TimeScale
	if !player.OnGround() {
		target *= s.config.Movement.AirControl
		accel *= s.config.Movement.AirControl
	}

	if player.Angular < target {
		player.Angular += accel
		if player.Angular > target {
			player.Angular = target
		}
	} else if player.Angular > target {
		player.Angular -= accel
		if player.Angular < target {
			player.Angular = target
		}
	}
}

// handleJump handles jumping
func (s *InputSystem) handleJump(player *entity.Player, input InputState) {
	// Buffer jump input
	if input.JumpPressed {
		player.JumpBufferTimer = s.config.Jump.JumpBuffer
	}

	// Can jump if on ground or has coyote time
	canJump := player.OnGround() || player.CoyoteTimer > 0
	wantsJump := player.JumpBufferTimer > 0

	if canJump && wantsJump {
		player.Radial = s.config.Jump.Force
		player.Surface = entity.Surface{Kind: entity.Airborne}
		player.CoyoteTimer = 0
		player.JumpBufferTimer = 0
	}

	// Variable jump height (release to reduce upward velocity)
	if input.JumpReleased && player.Radial > 0 {
		player.Radial *= s.config.Jump.VariableJumpMultiplier
	}
}
