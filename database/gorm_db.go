package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/camden-git/starwarsapi/config"
	"github.com/camden-git/starwarsapi/logging"
	"github.com/camden-git/starwarsapi/models"
)

// sqlite needs foreign keys switched on per connection and a busy timeout so
// concurrent favorite writes wait instead of failing with SQLITE_BUSY.
const sqliteDSNParams = "_foreign_keys=on&_busy_timeout=5000"

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteDSNParams
	}
	return path + "?" + sqliteDSNParams
}

// Dialector picks the GORM driver for the configured database url.
func Dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver() == config.DriverPostgres {
		return postgres.Open(cfg.DSN())
	}
	return sqlite.Open(sqliteDSN(cfg.DSN()))
}

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(cfg), &gorm.Config{
		Logger:         logging.GormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database using GORM: %w", cfg.Driver(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Driver() == config.DriverSQLite {
		// enable write-ahead logging for better concurrency
		if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
			log.Warn("failed to set WAL mode", zap.Error(err))
		}
	}

	log.Info("GORM database initialized", zap.String("driver", cfg.Driver()))
	return db, nil
}

// AutoMigrateModels creates or updates the schema for every model.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Planet{},
		&models.Favorite{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return sqlDB.Close()
}
