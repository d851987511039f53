package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/database"
)

// SetupTestDB opens a private in-memory SQLite database through database.New,
// so tests run the same gorm config and migration as the server.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := NewTestConfig()
	// a named shared-cache database lives as long as one connection stays open
	cfg.Database.SQLitePath = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	cfg.Database.MaxOpenConns = 1
	cfg.Database.MaxIdleConns = 1

	db, err := database.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	return db.DB
}

// CleanupTestDB closes the database; the in-memory data goes with it
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("Failed to get database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}
