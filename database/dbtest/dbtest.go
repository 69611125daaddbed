// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/config"
	"github.com/camden-git/starwarsapi/database"
)

// New returns a migrated database backed by a file in t.TempDir().
// The pool is closed when the test finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		URL:          "sqlite:///" + filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	}
	db, err := database.InitGormDB(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrateModels(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
