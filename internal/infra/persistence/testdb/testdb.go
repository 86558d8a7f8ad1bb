// Package testdb opens migrated in-memory SQLite databases for tests of the
// persistence layer and the use cases built on it.
package testdb

import (
	"fmt"
	"testing"
	"time"

	"directory/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh migrated database that is closed when the test ends.
// The pool holds a single connection so the in-memory database outlives
// individual statements and concurrent writers are serialized.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := postgres.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}

	return db
}
