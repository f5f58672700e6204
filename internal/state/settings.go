package state

import (
	"database/sql"
	"errors"
)

type Settings struct {
	Side        string // "top", "bottom", or "center"
	DragDismiss bool
	SoundVolume float64
}

func getSettings(db *sql.DB) (*Settings, error) {
	row := db.QueryRow(`
		SELECT side, drag_dismiss, sound_volume
		FROM settings WHERE id = 1
	`)

	var s Settings
	err := row.Scan(&s.Side, &s.DragDismiss, &s.SoundVolume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved settings is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func saveSettings(db *sql.DB, s Settings) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, side, drag_dismiss, sound_volume)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			side = excluded.side,
			drag_dismiss = excluded.drag_dismiss,
			sound_volume = excluded.sound_volume
	`, s.Side, s.DragDismiss, s.SoundVolume)

	return err
}
