package services

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"reviewboard/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return conn
}
