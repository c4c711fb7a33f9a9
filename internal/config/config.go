// Package config provides YAML-based game configuration loading and
// difficulty presets for Rundash.
package config

import (
	"errors"
	"fmt"
)

// RundashConfig contains all configuration for the Rundash game.
type RundashConfig struct {
	Game     GameInfo       `yaml:"game"`
	Viewport ViewportConfig `yaml:"viewport"`
	Player   PlayerConfig   `yaml:"player"`
	World    WorldConfig    `yaml:"world"`
	Scenery  SceneryConfig  `yaml:"scenery"`
	Input    InputConfig    `yaml:"input"`
}

// GameInfo names the game. Title also namespaces the persisted high score.
type GameInfo struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// ViewportConfig defines how the drawable area is derived from its container.
type ViewportConfig struct {
	Aspect          float64 `yaml:"aspect"`            // height = width * aspect
	MaxHeight       float64 `yaml:"max_height"`        // pixel cap on height
	PixelsPerColumn float64 `yaml:"pixels_per_column"` // terminal cell width in pixels
	PixelsPerRow    float64 `yaml:"pixels_per_row"`    // terminal cell height in pixels
}

// PlayerConfig defines player size and physics.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // pixels per input poll
	JumpPower   float64 `yaml:"jump_power"`   // upward velocity on jump
	Gravity     float64 `yaml:"gravity"`      // velocity added per frame
	StartOffset float64 `yaml:"start_offset"` // spawn distance above the bottom edge
}

// WorldConfig defines entity counts and randomization ranges.
type WorldConfig struct {
	Platforms           int     `yaml:"platforms"`
	PlatformMinWidth    float64 `yaml:"platform_min_width"`
	PlatformWidthJitter float64 `yaml:"platform_width_jitter"`
	PlatformHeight      float64 `yaml:"platform_height"`
	PlatformSpacing     float64 `yaml:"platform_spacing"`
	PlatformBaseOffset  float64 `yaml:"platform_base_offset"`

	Coins     int     `yaml:"coins"`
	CoinSize  float64 `yaml:"coin_size"`
	CoinValue int     `yaml:"coin_value"`

	Obstacles           int     `yaml:"obstacles"`
	ObstacleSize        float64 `yaml:"obstacle_size"`
	ObstacleMinSpeed    float64 `yaml:"obstacle_min_speed"`
	ObstacleSpeedJitter float64 `yaml:"obstacle_speed_jitter"`
	ObstacleRespawnY    float64 `yaml:"obstacle_respawn_y"`
	SpeedMultiplier     float64 `yaml:"speed_multiplier"` // set by difficulty presets
}

// SceneryConfig defines the decorative background.
type SceneryConfig struct {
	Stars                int     `yaml:"stars"`
	Mountains            int     `yaml:"mountains"`
	MountainMinHeight    float64 `yaml:"mountain_min_height"`
	MountainHeightJitter float64 `yaml:"mountain_height_jitter"`
}

// InputConfig defines the held-key poll.
type InputConfig struct {
	PollRate      int `yaml:"poll_rate"`       // polls per second
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // terminal key-repeat window
}

// HighScoreKey returns the persisted key for the game's best score.
func (c RundashConfig) HighScoreKey() string {
	return c.Game.Title + "_highscore"
}

// Validate rejects configurations the simulation cannot run with.
func (c RundashConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	if c.Game.Title == "" {
		errs = append(errs, errors.New("game.title must not be empty"))
	}
	positive("viewport.aspect", c.Viewport.Aspect)
	positive("viewport.max_height", c.Viewport.MaxHeight)
	positive("viewport.pixels_per_column", c.Viewport.PixelsPerColumn)
	positive("viewport.pixels_per_row", c.Viewport.PixelsPerRow)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.gravity", c.Player.Gravity)
	positive("world.platform_height", c.World.PlatformHeight)
	positive("world.coin_size", c.World.CoinSize)
	positive("world.obstacle_size", c.World.ObstacleSize)
	positive("world.speed_multiplier", c.World.SpeedMultiplier)
	nonNegative("world.platforms", c.World.Platforms)
	nonNegative("world.coins", c.World.Coins)
	nonNegative("world.obstacles", c.World.Obstacles)
	nonNegative("scenery.stars", c.Scenery.Stars)
	nonNegative("scenery.mountains", c.Scenery.Mountains)
	if c.Input.PollRate <= 0 {
		errs = append(errs, fmt.Errorf("input.poll_rate must be positive, got %d", c.Input.PollRate))
	}
	nonNegative("input.hold_timeout_ms", c.Input.HoldTimeoutMS)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rundash config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. Empty means "keep the config".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedMultiplierForPreset returns the obstacle speed multiplier for a preset.
func SpeedMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyRundashPreset modifies the config based on a difficulty preset.
func ApplyRundashPreset(cfg *RundashConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.World.SpeedMultiplier = SpeedMultiplierForPreset(preset)
}
