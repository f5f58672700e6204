package state

import (
	"database/sql"
	"time"

	dbutil "github.com/pveldrane/pill/internal/db"
)

// historyLimit caps how many presentations are retained.
const historyLimit = 50

// HistoryEntry is one recorded toast presentation.
type HistoryEntry struct {
	Preset      string
	Title       string
	Subtitle    string
	Side        string
	PresentedAt time.Time
}

// RecordToast appends a presentation to the history and trims rows
// beyond the retention limit.
func (m *Manager) RecordToast(e HistoryEntry) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO toast_history (preset, title, subtitle, side, presented_at)
			VALUES (?, ?, ?, ?, ?)
		`, e.Preset, e.Title, e.Subtitle, e.Side, e.PresentedAt.Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM toast_history
			WHERE id NOT IN (
				SELECT id FROM toast_history
				ORDER BY presented_at DESC, id DESC
				LIMIT ?
			)
		`, historyLimit)
		return err
	})
}

// RecentToasts returns the newest presentations, newest first.
func (m *Manager) RecentToasts(limit int) ([]HistoryEntry, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	rows, err := m.db.Query(`
		SELECT preset, title, subtitle, side, presented_at
		FROM toast_history
		ORDER BY presented_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var subtitle sql.NullString
		var ts int64
		if err := rows.Scan(&e.Preset, &e.Title, &subtitle, &e.Side, &ts); err != nil {
			return nil, err
		}
		e.Subtitle = dbutil.NullStringValue(subtitle)
		e.PresentedAt = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
