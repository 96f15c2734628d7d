package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/session"
)

// SlotInfo summarizes a free play slot for a load menu.
type SlotInfo struct {
	Slot      string
	Empty     bool
	Level     int
	Score     int
	UpdatedAt time.Time
}

// SaveSlot writes a free play save into a slot, replacing what was there.
func (s *Store) SaveSlot(slot string, sv session.Save) error {
	if !modes.ValidSlot(slot) {
		return fmt.Errorf("storage: unknown slot %q", slot)
	}
	payload, err := sv.Encode()
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO freeplay_slots (slot, payload, level, score, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   payload = excluded.payload,
		   level = excluded.level,
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		slot, string(payload), sv.Level, sv.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}
	return nil
}

// LoadSlot returns the save in a slot. An empty slot or an unreadable
// payload gives nil without an error.
func (s *Store) LoadSlot(slot string) (*session.Save, error) {
	var payload string
	err := s.db.QueryRow(
		"SELECT payload FROM freeplay_slots WHERE slot = ?",
		slot,
	).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}

	return session.DecodeSave([]byte(payload)), nil
}

// ClearSlot empties a slot.
func (s *Store) ClearSlot(slot string) error {
	_, err := s.db.Exec("DELETE FROM freeplay_slots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear slot %s: %w", slot, err)
	}
	return nil
}

// Slots lists every slot in order, empty ones included.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query("SELECT slot, level, score, updated_at FROM freeplay_slots")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	used := make(map[string]SlotInfo)
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Level, &info.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		used[info.Slot] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	infos := make([]SlotInfo, 0, len(modes.Slots))
	for _, slot := range modes.Slots {
		if info, ok := used[slot]; ok {
			infos = append(infos, info)
			continue
		}
		infos = append(infos, SlotInfo{Slot: slot, Empty: true})
	}
	return infos, nil
}
