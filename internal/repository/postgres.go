package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PostgresDB wraps the shared connection pool
type PostgresDB struct {
	db *gorm.DB
}

// NewPostgresDB wraps an opened pool
func NewPostgresDB(db *gorm.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

// GetDB returns the underlying GORM database instance
func (p *PostgresDB) GetDB() *gorm.DB {
	return p.db
}

// Ping checks that the store is reachable
func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases the pool
func (p *PostgresDB) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
