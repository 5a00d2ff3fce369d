package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
)

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "rollback"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}
	if _, found, err := db.GetSetting(ctx, "tx"); err != nil || found {
		t.Fatalf("expected rollback to remove setting, found=%v err=%v", found, err)
	}
}

func TestWithTxCommit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "commit")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	value, found, err := db.GetSetting(ctx, "tx")
	if err != nil || !found || value != "commit" {
		t.Fatalf("GetSetting = %q, %v, %v", value, found, err)
	}
}
