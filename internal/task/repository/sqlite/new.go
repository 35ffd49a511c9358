package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	pkgLog "chat-task-manager/pkg/log"
)

// Repository is the SQLite-backed task repository.
type Repository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New opens the database at path, runs migrations, and returns the repository.
func New(l pkgLog.Logger, path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", path, err)
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to enable foreign keys: %w", err)
	}

	r := &Repository{db: db, l: l}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Ping verifies the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}
