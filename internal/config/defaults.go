package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default snake configuration. It mirrors
// defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Gameplay: GameplayConfig{
			Speed:          10,
			MaxSpeed:       100,
			Area:           30,
			StaticLevel:    false,
			PointsPerApple: 10,
			LevelEvery:     100,
			AppleAttempts:  200,
		},
		Display: DisplayConfig{
			CellWidth: 2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
