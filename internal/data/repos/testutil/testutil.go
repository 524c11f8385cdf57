// Package testutil opens hermetic in-memory databases for repo and service
// tests. Each test gets its own named shared-cache sqlite instance so the
// schema and data never leak between tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ideaforge/ideaforge-backend/internal/data/db"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

// Logger returns a no-op logger so test output stays readable.
func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// OpenDB opens an in-memory sqlite database keyed to the test name and
// migrates the full schema. The connection is closed on test cleanup.
func OpenDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive for the whole
	// test; the pool closing its last conn would drop it.
	sqlDB, err := gdb.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return gdb
}
