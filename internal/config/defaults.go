package config

import (
	_ "embed"
)

//go:embed defaults/rundash.yaml
var defaultRundashYAML []byte

// DefaultRundashConfig returns the default Rundash configuration.
// It mirrors defaults/rundash.yaml and backs the loader if the embed is unusable.
func DefaultRundashConfig() RundashConfig {
	return RundashConfig{
		Game: GameInfo{
			ID:    "rundash",
			Title: "Sports Rundash",
		},
		Viewport: ViewportConfig{
			Aspect:          0.6,
			MaxHeight:       500,
			PixelsPerColumn: 10,
			PixelsPerRow:    20,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      60,
			Speed:       5,
			JumpPower:   12,
			Gravity:     0.5,
			StartOffset: 100,
		},
		World: WorldConfig{
			Platforms:           10,
			PlatformMinWidth:    150,
			PlatformWidthJitter: 100,
			PlatformHeight:      20,
			PlatformSpacing:     100,
			PlatformBaseOffset:  50,
			Coins:               20,
			CoinSize:            20,
			CoinValue:           100,
			Obstacles:           8,
			ObstacleSize:        30,
			ObstacleMinSpeed:    2,
			ObstacleSpeedJitter: 3,
			ObstacleRespawnY:    -50,
			SpeedMultiplier:     1.0,
		},
		Scenery: SceneryConfig{
			Stars:                50,
			Mountains:            5,
			MountainMinHeight:    50,
			MountainHeightJitter: 70,
		},
		Input: InputConfig{
			PollRate:      60,
			HoldTimeoutMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRundashYAML
}
