package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vladimiradmaev/quantified-self/internal/logger"
	"gorm.io/gorm"
)

// Files holds the schema migrations shipped with the binary
//
//go:embed sql/*.sql
var Files embed.FS

// Dir is the directory of Files holding the .sql migrations
const Dir = "sql"

const createRecordsTable = `CREATE TABLE IF NOT EXISTS migration_records (
	id VARCHAR(255) PRIMARY KEY,
	created_at BIGINT
)`

// Migration represents a database migration
type Migration struct {
	ID   string
	Up   func(*gorm.DB) error
	Down func(*gorm.DB) error
}

// MigrationRecord represents a record of executed migrations
type MigrationRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

// Migrator applies registered migrations in id order, once each
type Migrator struct {
	db         *gorm.DB
	migrations map[string]Migration
}

func New(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: make(map[string]Migration),
	}
}

// Register adds a new migration to the registry
func (m *Migrator) Register(id string, up, down func(*gorm.DB) error) {
	m.migrations[id] = Migration{
		ID:   id,
		Up:   up,
		Down: down,
	}
}

// Pending returns the ids that have not been applied yet, in order
func (m *Migrator) Pending(ctx context.Context) ([]string, error) {
	db := m.db.WithContext(ctx)

	if err := db.Exec(createRecordsTable).Error; err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var executed []MigrationRecord
	if err := db.Find(&executed).Error; err != nil {
		return nil, fmt.Errorf("failed to get executed migrations: %w", err)
	}
	done := make(map[string]bool, len(executed))
	for _, r := range executed {
		done[r.ID] = true
	}

	var ids []string
	for id := range m.migrations {
		if !done[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// RunMigrations executes all pending migrations
func (m *Migrator) RunMigrations(ctx context.Context) error {
	pending, err := m.Pending(ctx)
	if err != nil {
		return err
	}

	db := m.db.WithContext(ctx)
	for _, id := range pending {
		log := logger.WithFields("migration", id)
		log.Info("Running migration")
		if err := m.migrations[id].Up(db); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", id, err)
		}

		record := MigrationRecord{ID: id}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", id, err)
		}
		log.Info("Completed migration")
	}

	return nil
}

// LoadSQLMigrations registers every .sql file of dir as a migration
// named after the file.
func (m *Migrator) LoadSQLMigrations(fsys fs.FS, dir string) error {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		id := strings.TrimSuffix(file.Name(), ".sql")

		content, err := fs.ReadFile(fsys, path.Join(dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file.Name(), err)
		}

		statement := string(content)
		m.Register(id, func(db *gorm.DB) error {
			return db.Exec(statement).Error
		}, nil) // No down migration for SQL files
	}

	return nil
}
