// Package database is the local key/value store backing the favorites
// list. It is a single SQLite file with a settings table.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Database wraps the SQLite handle.
type Database struct {
	DB   *sql.DB
	path string
}

// Open opens (creating if needed) the store at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Key: path, Err: err}
	}
	// One connection keeps writers from tripping over SQLITE_BUSY. Immediate
	// transactions take the write lock up front so read-modify-write cycles
	// from another process wait instead of failing on upgrade.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Key: path, Err: err}
	}
	d := &Database{DB: db, path: path}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) migrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return &OpError{Op: "migrate", Resource: "database", Err: fmt.Errorf("failed to load migrations: %w", err)}
	}
	driver, err := sqlite3.WithInstance(d.DB, &sqlite3.Config{})
	if err != nil {
		return &OpError{Op: "migrate", Resource: "database", Err: fmt.Errorf("failed to create sqlite driver: %w", err)}
	}
	// m.Close would close d.DB through the driver, so the instance is left
	// for the garbage collector.
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return &OpError{Op: "migrate", Resource: "database", Err: fmt.Errorf("failed to create migrate instance: %w", err)}
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return &OpError{Op: "migrate", Resource: "database", Err: err}
	}
	return nil
}

// Path returns the file the store was opened from.
func (d *Database) Path() string {
	return d.path
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

// Close releases the underlying handle.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
