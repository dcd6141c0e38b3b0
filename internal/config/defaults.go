package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      0.5,
			JumpImpulse:  -8.0,
			PipeSpeed:    2.0,
			RotationGain: 3.0,
			RotationMin:  -30.0,
			RotationMax:  90.0,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    52,
			SpawnSpacing: 150,
			GapSize:      100,
			MinHeight:    50,
		},
		Player: FlappyPlayer{
			X:      50,
			Y:      288,
			Width:  34,
			Height: 24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     30,
				SpacingReduction: 40,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
