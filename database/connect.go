package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/dsa-learning-backend/config"
)

const (
	DBTypePostgres = "postgres"
	DBTypeSupabase = "supa"
	DBTypeSQLite   = "sqlite"
)

// Dialector picks the gorm driver and DSN for DB_TYPE.
func Dialector(c map[string]string) (gorm.Dialector, error) {
	dbType := strings.ToLower(config.GetString(c, "DB_TYPE", DBTypePostgres))
	switch dbType {
	case DBTypePostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(c, "DB_HOST", "localhost"),
			config.GetString(c, "DB_USER", "postgres"),
			config.GetString(c, "DB_PASSWORD", ""),
			config.GetString(c, "DB_NAME", "dsa_learning"),
			config.GetString(c, "DB_PORT", "5432"),
			config.GetString(c, "DB_SSLMODE", "disable"),
		)
		return postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), nil
	case DBTypeSupabase:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		return postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), nil
	case DBTypeSQLite:
		return sqlite.Open(SQLiteDSN(config.GetString(c, "SQLITE_PATH", "dsa_learning.db"))), nil
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// SQLiteDSN turns on foreign key enforcement, which sqlite leaves off per connection.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on&_busy_timeout=5000"
	}
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

// NewGormLogger routes gorm's SQL logging through zerolog.
func NewGormLogger(zl zerolog.Logger, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if zl.GetLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}
	return logger.New(&zl, logger.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Open connects to the configured store and sizes the connection pool.
func Open(c map[string]string) (*gorm.DB, error) {
	dialector, err := Dialector(c)
	if err != nil {
		return nil, err
	}

	slow := time.Duration(config.GetInt(c, "DB_SLOW_QUERY_MS", 500)) * time.Millisecond
	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger:         NewGormLogger(log.With().Str("component", "gorm").Logger(), slow),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt(c, "DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(config.GetInt(c, "DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Str("dialect", dialector.Name()).Msg("connected to database")
	return db, nil
}
