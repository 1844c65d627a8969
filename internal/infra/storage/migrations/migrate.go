package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Logger logging facade
type Logger interface {
	Info(format string, v ...interface{})
}

// Up applies the embedded migrations. An already up-to-date schema is not an error.
func Up(db *sql.DB, log Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: %v", ErrApply, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("%w: read version: %v", ErrApply, err)
	}
	log.Info("Migrations: schema version=%d, dirty=%t", version, dirty)

	return nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: driver: %v", ErrInit, err)
	}

	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: source: %v", ErrInit, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("%w: instance: %v", ErrInit, err)
	}

	return m, nil
}
