// Package config provides YAML-based configuration loading for Candlelight:
// queue preview length, pacing delays, free play saving, default user
// settings and server addresses.
package config

import "time"

// Config is the full Candlelight configuration.
type Config struct {
	Queue    QueueConfig    `yaml:"queue"`
	Timing   TimingConfig   `yaml:"timing"`
	FreePlay FreePlayConfig `yaml:"freeplay"`
	Settings SettingsConfig `yaml:"settings"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Server   ServerConfig   `yaml:"server"`
}

// QueueConfig controls the piece preview.
type QueueConfig struct {
	VisibleSize int `yaml:"visible_size"`
}

// TimingConfig holds the pauses front-ends insert between events. The
// engine itself never waits.
type TimingConfig struct {
	LevelComplete time.Duration `yaml:"level_complete"`
	GameComplete  time.Duration `yaml:"game_complete"`
	GameOver      time.Duration `yaml:"game_over"`
	TutorialStage time.Duration `yaml:"tutorial_stage"` // after an action finishes a tutorial stage
	TutorialLevel time.Duration `yaml:"tutorial_level"` // after a tutorial level is completed
}

// FreePlayConfig controls free play saving.
type FreePlayConfig struct {
	AutoSave    bool   `yaml:"autosave"`
	DefaultSlot string `yaml:"default_slot"`
}

// SettingsConfig are the user settings used until the player changes them.
type SettingsConfig struct {
	MusicVolume     float64 `yaml:"music_volume"`
	SFXVolume       float64 `yaml:"sfx_volume"`
	HasSeenTutorial bool    `yaml:"has_seen_tutorial"`
}

// PuzzleConfig selects the puzzle campaign. An empty LevelsDir uses the
// built-in campaign.
type PuzzleConfig struct {
	LevelsDir string `yaml:"levels_dir"`
}

// ServerConfig holds the defaults for `candlelight serve`.
type ServerConfig struct {
	SSHAddress  string        `yaml:"ssh_address"`
	HTTPAddress string        `yaml:"http_address"`
	DBPath      string        `yaml:"db_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
