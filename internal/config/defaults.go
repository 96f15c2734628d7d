package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/candlelight.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Queue: QueueConfig{
			VisibleSize: 3,
		},
		Timing: TimingConfig{
			LevelComplete: time.Second,
			GameComplete:  time.Second,
			GameOver:      time.Second,
			TutorialStage: time.Second,
			TutorialLevel: 1500 * time.Millisecond,
		},
		FreePlay: FreePlayConfig{
			AutoSave:    true,
			DefaultSlot: "A",
		},
		Settings: SettingsConfig{
			MusicVolume: 0.5,
			SFXVolume:   0.5,
		},
		Server: ServerConfig{
			SSHAddress:  ":23234",
			HTTPAddress: ":8080",
			DBPath:      "~/.candlelight/candlelight.db",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
