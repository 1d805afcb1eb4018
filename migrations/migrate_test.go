// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CreditGuard Authors

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_CreatesSessionTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO session (key, value) VALUES ('token', 'tok1')`); err != nil {
		t.Fatalf("expected session table to exist, insert failed: %v", err)
	}

	var value string
	if err = db.QueryRow(`SELECT value FROM session WHERE key = 'token'`).Scan(&value); err != nil {
		t.Fatalf("select from session failed: %v", err)
	}
	if value != "tok1" {
		t.Errorf("expected value 'tok1', got %q", value)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	if err = Migrate(db); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations set: every goose query fails

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
