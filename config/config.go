package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	// DefaultDatabaseURL is used when DATABASE_URL is unset.
	DefaultDatabaseURL = "sqlite:////tmp/test.db"

	defaultPort             = 3000
	defaultLogLevel         = "info"
	defaultRequestTimeout   = 60
	defaultMaxOpenConns     = 100
	defaultMaxIdleConns     = 10
	defaultAllowedOriginAny = "*"
)

type Config struct {
	Server   ServerConfig   `validate:"required"`
	Database DatabaseConfig `validate:"required"`
}

type ServerConfig struct {
	Port           int           `validate:"required,gt=0,lt=65536"`
	LogLevel       string        `validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string      `validate:"required,min=1,dive,required"`
	RequestTimeout time.Duration `validate:"required,gt=0"`
}

type DatabaseConfig struct {
	// URL after scheme normalization (postgres:// -> postgresql://)
	URL string `validate:"required"`

	AutoMigrate  bool
	MaxOpenConns int `validate:"gt=0"`
	MaxIdleConns int `validate:"gte=0"`
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %t. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme some hosting
// providers hand out into postgresql://.
func NormalizeDatabaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultDatabaseURL
	}
	if strings.HasPrefix(raw, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	return raw
}

// Driver returns which GORM dialector serves the configured URL.
func (d DatabaseConfig) Driver() string {
	if strings.HasPrefix(d.URL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// DSN returns the connection string in the form the driver expects.
// Postgres URLs pass through untouched; sqlite URLs lose their scheme, so
// sqlite:////tmp/test.db becomes /tmp/test.db.
func (d DatabaseConfig) DSN() string {
	if d.Driver() == DriverPostgres {
		return d.URL
	}
	if strings.HasPrefix(d.URL, "sqlite:///") {
		return strings.TrimPrefix(d.URL, "sqlite:///")
	}
	return strings.TrimPrefix(d.URL, "sqlite://")
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:           getEnvIntOrDefault("PORT", defaultPort),
			LogLevel:       strings.ToLower(getEnvOrDefault("LOG_LEVEL", defaultLogLevel)),
			AllowedOrigins: splitOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOriginAny)),
			RequestTimeout: time.Duration(getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)) * time.Second,
		},
		Database: DatabaseConfig{
			URL:          NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
			AutoMigrate:  getEnvBoolOrDefault("AUTO_MIGRATE", true),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags on the loaded configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Database.Driver() == DriverSQLite && c.Database.DSN() == "" {
		return fmt.Errorf("invalid configuration: sqlite database url %q has no path", c.Database.URL)
	}
	return nil
}
