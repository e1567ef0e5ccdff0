package database

import (
	"os"
	"testing"

	"gorm.io/gorm"
)

// OpenTest connects to the database named by TEST_DATABASE_URL, migrates
// the schema, and wipes all rows so every test starts clean. Tests that
// need a store call this first; they are skipped in -short runs and when
// no test database is configured.
func OpenTest(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := Connect(dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	CleanupTest(t, db)
	return db
}

// CleanupTest removes all rows in dependency order.
func CleanupTest(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"api_keys", "logs", "events", "projects", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}
