package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Kernel   KernelConfig   `json:"kernel"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Combat   CombatConfig   `json:"combat"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        int     `json:"scale"`
	Framerate    int     `json:"framerate"`
	Zoom         float64 `json:"zoom"` // world pixels to screen pixels
}

// KernelConfig holds the constants shared by every physics step.
// Velocities are in pixels per scaled frame; times are in milliseconds.
type KernelConfig struct {
	TimeScale          float64 `json:"timeScale"` // ms per scaled frame
	WalkScale          float64 `json:"walkScale"`
	Gravity            float64 `json:"gravity"` // radial velocity lost per airborne step
	GroundFriction     float64 `json:"groundFriction"`
	StandThreshold     float64 `json:"standThreshold"`
	MaxAngularVelocity float64 `json:"maxAngularVelocity"`
	MaxFallSpeed       float64 `json:"maxFallSpeed"` // 0 = unlimited
	WallBounce         float64 `json:"wallBounce"`
	MaxFrameStep       float64 `json:"maxFrameStep"` // raw delta clamp, ms
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
	AirControl   float64 `json:"airControl"`
	MaxSpeed     float64 `json:"maxSpeed"`
}

type JumpConfig struct {
	Force                  float64 `json:"force"`
	VariableJumpMultiplier float64 `json:"variableJumpMultiplier"`
	CoyoteTime             float64 `json:"coyoteTime"` // ms
	JumpBuffer             float64 `json:"jumpBuffer"` // ms
}

type CombatConfig struct {
	Iframes   float64         `json:"iframes"`  // ms
	HitFlash  float64         `json:"hitFlash"` // ms an enemy flashes after taking damage
	Knockback KnockbackConfig `json:"knockback"`
	Stomp     StompConfig     `json:"stomp"`
}

// StompConfig controls landing on an enemy from above
type StompConfig struct {
	Damage int     `json:"damage"`
	Bounce float64 `json:"bounce"` // radial velocity after a stomp
}

type KnockbackConfig struct {
	Force        float64 `json:"force"`
	UpForce      float64 `json:"upForce"`
	StunDuration float64 `json:"stunDuration"` // ms
}
