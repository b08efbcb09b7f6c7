package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type PlayerConfig struct {
	ID    string      `json:"id"`
	Shape ShapeConfig `json:"shape"`
	Stats PlayerStats `json:"stats"`
}

// ShapeConfig is an actor's physical extent in pixels
type ShapeConfig struct {
	HalfWidth  float64 `json:"halfWidth"`
	Height     float64 `json:"height"`
	StepHeight float64 `json:"stepHeight,omitempty"`
	Reach      float64 `json:"reach"`
}

type PlayerStats struct {
	MaxHealth int `json:"maxHealth"`
}

type EnemyConfig struct {
	ID    string      `json:"id"`
	Shape ShapeConfig `json:"shape"`
	Stats EnemyStats  `json:"stats"`
	AI    AIConfig    `json:"ai"`
}

type EnemyStats struct {
	MaxHealth     int     `json:"maxHealth"`
	ContactDamage int     `json:"contactDamage"`
	MoveSpeed     float64 `json:"moveSpeed"`
}

type AIConfig struct {
	Type string `json:"type"` // "crawler"
}
