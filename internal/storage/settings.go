package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/candlelight/internal/config"
)

// LoadSettings returns the stored user settings, or defaults when none
// were saved yet.
func (s *Store) LoadSettings(defaults config.SettingsConfig) (config.SettingsConfig, error) {
	out := defaults
	var seen int
	err := s.db.QueryRow(
		"SELECT music_volume, sfx_volume, has_seen_tutorial FROM settings WHERE id = 1",
	).Scan(&out.MusicVolume, &out.SFXVolume, &seen)

	if errors.Is(err, sql.ErrNoRows) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	out.HasSeenTutorial = seen != 0
	return out, nil
}

// SaveSettings stores the user settings.
func (s *Store) SaveSettings(cfg config.SettingsConfig) error {
	seen := 0
	if cfg.HasSeenTutorial {
		seen = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO settings (id, music_volume, sfx_volume, has_seen_tutorial) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   music_volume = excluded.music_volume,
		   sfx_volume = excluded.sfx_volume,
		   has_seen_tutorial = excluded.has_seen_tutorial`,
		cfg.MusicVolume, cfg.SFXVolume, seen,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}
