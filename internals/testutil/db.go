package testutil

import (
	"os"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	databases "eventku_backend/internals/databases"
)

// AllTables in dependency order, children first. Truncation runs with
// CASCADE so order only matters for readability.
var AllTables = []string{
	"event_sponsors",
	"sponsorship_tiers",
	"sponsors",
	"notifications",
	"event_feedbacks",
	"rsvps",
	"tickets",
	"ticket_types",
	"event_schedules",
	"events",
	"event_categories",
	"venue_sections",
	"venues",
	"user_roles",
	"roles",
	"users",
}

// OpenDB connects to the database named by TEST_DATABASE_URL and migrates the
// schema. Tests using it are skipped when the variable is unset or the
// database is unreachable, so the unit suite stays runnable anywhere.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("cannot open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("cannot get sql.DB: %v", err)
	}
	sqlDB.SetConnMaxLifetime(time.Minute)
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("test database unreachable: %v", err)
	}

	if err := databases.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Reset empties the given tables (all of them when none are named) and
// restarts their identity sequences.
func Reset(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		tables = AllTables
	}
	stmt := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	if err := db.Exec(stmt).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}
}
