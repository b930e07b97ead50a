package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vladimiradmaev/quantified-self/internal/config"
	"github.com/vladimiradmaev/quantified-self/internal/database/migrations"
	"github.com/vladimiradmaev/quantified-self/internal/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. Single statements run without an implicit
// transaction.
func Open(cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	logger.Debug("Opening database connection", "host", cfg.Host, "database", cfg.DBName, "url_set", cfg.URL != "")
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// NewPostgresDB connects and brings the schema up to date
func NewPostgresDB(ctx context.Context, cfg config.DBConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := Open(cfg, logLevel)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	logger.Info("Database connection established and migrations completed", "database", cfg.DBName)
	return db, nil
}

// Migrate applies the embedded SQL migrations
func Migrate(ctx context.Context, db *gorm.DB) error {
	m := migrations.New(db)
	if err := m.LoadSQLMigrations(migrations.Files, migrations.Dir); err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func newGormLogger(level logger.LogLevel) gormlogger.Interface {
	mode := gormlogger.Warn
	switch level {
	case logger.LevelDebug:
		mode = gormlogger.Info
	case logger.LevelError:
		mode = gormlogger.Error
	}
	return gormlogger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  mode,
		IgnoreRecordNotFoundError: true,
	})
}
