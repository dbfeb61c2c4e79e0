// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// Limits enforced by Validate and by the live configuration controls.
const (
	MinSpeed = 1
	MaxSpeed = 100
	MinArea  = 5 // smallest area whose rows (area*2/3) is still >= 3
	MaxArea  = 90
)

// Config contains all configuration for the snake game.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
}

// GameplayConfig defines simulation parameters.
type GameplayConfig struct {
	Speed          int  `yaml:"speed"`     // ticks per second
	MaxSpeed       int  `yaml:"max_speed"` // level-up cap
	Area           int  `yaml:"area"`      // cols = area, rows = area*2/3
	StaticLevel    bool `yaml:"static_level"`
	PointsPerApple int  `yaml:"points_per_apple"`
	LevelEvery     int  `yaml:"level_every"`
	AppleAttempts  int  `yaml:"apple_attempts"`
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	CellWidth int `yaml:"cell_width"` // terminal columns per grid cell
}

// AudioConfig defines sound cue parameters.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // base-2 exponent, see beep effects.Volume
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// SpeedForPreset returns the initial speed for a difficulty preset, or 0 if
// the preset does not change the speed.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 15
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Gameplay.StaticLevel = true
		return
	}
	if speed := SpeedForPreset(preset); speed > 0 {
		cfg.Gameplay.Speed = speed
	}
}

// Validate checks that every value is within its playable range.
func (c Config) Validate() error {
	g := c.Gameplay
	var errs []error

	if g.MaxSpeed < MinSpeed || g.MaxSpeed > MaxSpeed {
		errs = append(errs, fmt.Errorf("max_speed %d out of range [%d, %d]", g.MaxSpeed, MinSpeed, MaxSpeed))
	}
	if g.Speed < MinSpeed || g.Speed > max(g.MaxSpeed, MinSpeed) {
		errs = append(errs, fmt.Errorf("speed %d out of range [%d, %d]", g.Speed, MinSpeed, g.MaxSpeed))
	}
	if g.Area < MinArea || g.Area > MaxArea {
		errs = append(errs, fmt.Errorf("area %d out of range [%d, %d]", g.Area, MinArea, MaxArea))
	}
	if g.PointsPerApple <= 0 {
		errs = append(errs, fmt.Errorf("points_per_apple must be positive, got %d", g.PointsPerApple))
	}
	if g.LevelEvery <= 0 {
		errs = append(errs, fmt.Errorf("level_every must be positive, got %d", g.LevelEvery))
	}
	if g.AppleAttempts <= 0 {
		errs = append(errs, fmt.Errorf("apple_attempts must be positive, got %d", g.AppleAttempts))
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("cell_width %d out of range [1, 4]", c.Display.CellWidth))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
