package app

import (
	"database/sql"
	"testing"

	"puz_shelf/internal/db"
	"puz_shelf/sql/schema"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SetupTestService is a helper for integration tests that need a real DB and Service.
func SetupTestService(t *testing.T) (*Service, *db.Queries, *sql.DB) {
	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one connection, one in-memory database
	dbConn.SetMaxOpenConns(1)
	if _, err := dbConn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatal(err)
	}

	goose.SetBaseFS(schema.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatal(err)
	}
	if err := goose.Up(dbConn, "."); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	queries := db.New(dbConn)
	service := NewService(queries, dbConn, 16)

	t.Cleanup(func() {
		service.Shutdown()
		dbConn.Close()
	})

	return service, queries, dbConn
}
