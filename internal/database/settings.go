package database

import (
	"context"
	"database/sql"
	"errors"
)

const upsertSettingSQL = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// GetSetting returns the value stored under key. A missing key, or a key
// holding NULL, reports found=false with a nil error.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, wrapSettingErr("get", key, ErrEmptyKey)
	}
	value, found, err := getSetting(ctx, d.DB, key)
	return value, found, wrapSettingErr("get", key, err)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSetting(ctx context.Context, q queryRower, key string) (string, bool, error) {
	var value sql.NullString
	err := q.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// UpdateSetting replaces the value under key with fn(old, found) inside one
// transaction, so concurrent updates of the same key never lose a write.
// When fn fails nothing is written and its error is returned wrapped.
func (d *Database) UpdateSetting(ctx context.Context, key string, fn func(old string, found bool) (string, error)) error {
	if key == "" {
		return wrapSettingErr("update", key, ErrEmptyKey)
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		old, found, err := getSetting(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := fn(old, found)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, upsertSettingSQL, key, next)
		return err
	})
	return wrapSettingErr("update", key, err)
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return wrapSettingErr("set", key, ErrEmptyKey)
	}
	_, err := d.DB.ExecContext(ctx, upsertSettingSQL, key, value)
	return wrapSettingErr("set", key, err)
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	if key == "" {
		return wrapSettingErr("delete", key, ErrEmptyKey)
	}
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}
