// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// AsilConfig configures the ASIL matching game.
type AsilConfig struct {
	Car             AsilCar          `yaml:"car"`
	Blocks          AsilBlocks       `yaml:"blocks"`
	Detection       AsilDetection    `yaml:"detection"`
	KeyCooldown     int              `yaml:"key_cooldown_ticks"`
	Functionalities []Functionality  `yaml:"functionalities"`
	Difficulty      DifficultyConfig `yaml:"difficulty"`
}

// AsilCar places the player's car.
type AsilCar struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // rows between car bottom and screen bottom
}

// AsilBlocks sizes and paces the functionality blocks.
type AsilBlocks struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"` // cells per tick
	SpawnEvery int     `yaml:"spawn_every"`
}

// AsilDetection is the band in front of the car where key presses count.
type AsilDetection struct {
	Ahead  int `yaml:"ahead"`
	Behind int `yaml:"behind"`
}

// Functionality is one catalogue entry: a vehicle function and its level.
type Functionality struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

// CanBusConfig configures the CAN bus puzzle.
type CanBusConfig struct {
	BusIDs     map[string]string `yaml:"bus_ids"` // "0x201" -> "headlights"
	Missions   []MissionConfig   `yaml:"missions"`
	LogSize    int               `yaml:"log_size"`
	ErrorTicks int               `yaml:"error_ticks"`
}

// MissionConfig describes a mission: every target field must match.
type MissionConfig struct {
	Description string            `yaml:"description"`
	Target      map[string]string `yaml:"target"`
}

// DinoConfig configures the Dino Runner game.
type DinoConfig struct {
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoPhysics defines physics parameters for Dino Runner.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// DinoObstacles defines cactus size and spawn pacing.
type DinoObstacles struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	InitialSpawnDelay int `yaml:"initial_spawn_delay"`
	MinSpawnDelay     int `yaml:"min_spawn_delay"`
	SpawnStep         int `yaml:"spawn_step"`
}

// DinoPlayer defines player parameters for Dino Runner.
type DinoPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// yield the empty preset, meaning "use the config as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply adjusts a difficulty block for a preset. The empty preset leaves
// it untouched.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
