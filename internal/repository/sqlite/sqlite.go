// Package sqlite implements repository.Store on an embedded SQLite database.
//
// The database always runs in memory mode: data lives exactly as long as the
// process, like the map-backed store, but queries go through database/sql.
// modernc.org/sqlite is a pure Go translation of SQLite, so no C toolchain is
// needed.
//
// Every ":memory:" connection opens its own private database, so the pool is
// pinned to a single connection. That also serializes writes, which keeps the
// shared id counter consistent without extra locking.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sakif/monkey-intelligence/internal/repository"
)

const memoryDSN = ":memory:"

// DB wraps the sql.DB pool and implements repository.Store.
type DB struct {
	conn *sql.DB
	opts repository.Options
}

var _ repository.Store = (*DB)(nil)

// New opens a fresh in-memory database and creates the schema.
func New(opts repository.Options) (*DB, error) {
	conn, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	// A closed idle connection would take the whole database with it.
	conn.SetConnMaxLifetime(0)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn, opts: opts}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the pool and with it the in-memory database.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the tables. The statements are idempotent.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS id_counter (
			singleton INTEGER PRIMARY KEY CHECK (singleton = 1),
			next_id   INTEGER NOT NULL
		);
		INSERT OR IGNORE INTO id_counter (singleton, next_id) VALUES (1, 1);
	`)
	if err != nil {
		return fmt.Errorf("creating id_counter table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			role     TEXT NOT NULL,
			name     TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// seq keeps insertion order; id is whatever the caller sent unless
	// progress ids are assigned by the store.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS game_progress (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			id           INTEGER NOT NULL DEFAULT 0,
			user_id      INTEGER NOT NULL,
			game_type    TEXT NOT NULL,
			score        INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_game_progress_user_id ON game_progress(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating game_progress table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS lessons (
			id           INTEGER PRIMARY KEY,
			teacher_id   INTEGER NOT NULL,
			title        TEXT NOT NULL,
			content      TEXT NOT NULL DEFAULT '',
			ai_generated BOOLEAN NOT NULL DEFAULT 0,
			created_at   DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_lessons_teacher_id ON lessons(teacher_id);
	`)
	if err != nil {
		return fmt.Errorf("creating lessons table: %w", err)
	}

	return nil
}

// nextID takes the next value of the shared counter inside tx.
func nextID(ctx context.Context, tx *sql.Tx) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`UPDATE id_counter SET next_id = next_id + 1 WHERE singleton = 1 RETURNING next_id - 1`,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("sqlite: advancing id counter: %w", err)
	}
	return id, nil
}

// withTx runs fn in a transaction and commits when it returns nil.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing transaction: %w", err)
	}
	return nil
}
