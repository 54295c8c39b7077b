// SPDX-License-Identifier: Apache-2.0

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations, goose's first query fails

	err = Migrate(context.Background(), db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	if !errors.Is(err, ErrUnsupportedDialect) {
		t.Fatalf("expected ErrUnsupportedDialect, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db, DialectSQLite); err != nil {
		t.Fatalf("unexpected migrate error: %v", err)
	}

	// second run is a no-op
	if err := Migrate(ctx, db, DialectSQLite); err != nil {
		t.Fatalf("unexpected error on repeated migrate: %v", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash) VALUES ('1', 'Ann', 'ann@example.com', 'h')`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var role string
	if err := db.QueryRowContext(ctx, `SELECT role FROM users WHERE id = '1'`).Scan(&role); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if role != "guest" {
		t.Errorf("expected default role guest, got %s", role)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash) VALUES ('2', 'Bob', 'ann@example.com', 'h')`)
	if err == nil {
		t.Error("expected unique violation on duplicate email")
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ('3', 'Cid', 'cid@example.com', 'h', 'root')`)
	if err == nil {
		t.Error("expected check violation on unknown role")
	}
}
