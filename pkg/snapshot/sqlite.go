package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot in an SQLite database. The whole
// replacement happens in one transaction, so readers either see the
// old snapshot or the new one, never a mix.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates an SQLite database at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	// Enable WAL mode for concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: fmt.Errorf("set WAL mode: %w", err)}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Path: path, Err: err}
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT sku, stock FROM snapshot")
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()

	snap := make(map[string]int)
	for rows.Next() {
		var sku string
		var stock int
		if err := rows.Scan(&sku, &stock); err != nil {
			return nil, &StorageError{Op: "load", Path: s.path, Err: err}
		}
		snap[sku] = stock
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return snap, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshot"); err != nil {
		_ = tx.Rollback()
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO snapshot (sku, stock, updated_at) VALUES (?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for sku, stock := range snap {
		if _, err := stmt.ExecContext(ctx, sku, stock, now); err != nil {
			_ = tx.Rollback()
			return &StorageError{Op: "save", Path: s.path, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
