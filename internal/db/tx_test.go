package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE entries (id INTEGER PRIMARY KEY, title TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestWithTx_Success(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO entries (title) VALUES (?)`, "Saved")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countRows(t, db); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	testErr := errors.New("boom")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO entries (title) VALUES (?)`, "Saved"); err != nil {
			return err
		}
		return testErr
	})
	if !errors.Is(err, testErr) {
		t.Fatalf("WithTx error = %v, want %v", err, testErr)
	}

	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 after rollback", got)
	}
}

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("valid = %q, want %q", got, "x")
	}
	if got := NullStringValue(sql.NullString{String: "x", Valid: false}); got != "" {
		t.Errorf("invalid = %q, want empty", got)
	}
}
