// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunables of the simulation.
type FlappyConfig struct {
	Playfield  Playfield        `yaml:"playfield"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Playfield is the logical size of the simulated world.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
	RotationGain float64 `yaml:"rotation_gain"`
	RotationMin  float64 `yaml:"rotation_min"`
	RotationMax  float64 `yaml:"rotation_max"`
}

// FlappyObstacles defines pipe geometry and spawn spacing.
type FlappyObstacles struct {
	PipeWidth    float64 `yaml:"pipe_width"`
	SpawnSpacing float64 `yaml:"spawn_spacing"`
	GapSize      float64 `yaml:"gap_size"`
	MinHeight    float64 `yaml:"min_height"`
}

// FlappyPlayer defines the bird's starting position and hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
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
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// Validate reports every tunable that would break the simulation invariants.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height))
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player x %g does not fit a playfield %g wide", c.Player.X, c.Playfield.Width))
	}
	if c.Player.Y <= 0 || c.Player.Y+c.Player.Height >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("player y %g starts outside the playfield", c.Player.Y))
	}
	if c.Physics.PipeSpeed <= 0 {
		errs = append(errs, fmt.Errorf("pipe_speed must be positive, got %g", c.Physics.PipeSpeed))
	}
	if c.Physics.RotationMin > c.Physics.RotationMax {
		errs = append(errs, fmt.Errorf("rotation_min %g exceeds rotation_max %g", c.Physics.RotationMin, c.Physics.RotationMax))
	}
	if c.Obstacles.PipeWidth <= 0 {
		errs = append(errs, fmt.Errorf("pipe_width must be positive, got %g", c.Obstacles.PipeWidth))
	}
	if c.Obstacles.SpawnSpacing <= 0 {
		errs = append(errs, fmt.Errorf("spawn_spacing must be positive, got %g", c.Obstacles.SpawnSpacing))
	}
	if c.Obstacles.GapSize <= c.Player.Height {
		errs = append(errs, fmt.Errorf("gap_size %g must exceed player height %g", c.Obstacles.GapSize, c.Player.Height))
	}
	if c.Obstacles.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("min_height must not be negative, got %g", c.Obstacles.MinHeight))
	}
	if c.Obstacles.GapSize+2*c.Obstacles.MinHeight > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("gap_size %g plus two min_height %g does not fit playfield height %g",
			c.Obstacles.GapSize, c.Obstacles.MinHeight, c.Playfield.Height))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string means "use the config file as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
