package migrator

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

func (m *Migrator) Up() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator.Up: set dialect: %w", err)
	}

	if err := goose.Up(m.db, m.migrationsDir); err != nil {
		return fmt.Errorf("migrator.Up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator.Down: set dialect: %w", err)
	}

	if err := goose.Down(m.db, m.migrationsDir); err != nil {
		return fmt.Errorf("migrator.Down: %w", err)
	}
	return nil
}

func (m *Migrator) Version() (int64, error) {
	v, err := goose.GetDBVersion(m.db)
	if err != nil {
		return 0, fmt.Errorf("migrator.Version: %w", err)
	}
	return v, nil
}

func (m *Migrator) Close() error {
	return m.db.Close()
}
