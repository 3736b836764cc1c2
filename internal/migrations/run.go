// Package migrations создаёт схему хранилища при старте процесса.
// SQL-файлы встроены в бинарник, для каждого драйвера свой набор.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/magabrotheeeer/sakaclient-backend/internal/config"
)

//go:embed sql
var files embed.FS

// Run применяет миграции для драйвера config.DriverSQLite или config.DriverPostgres.
// Повторный запуск на уже созданной схеме не является ошибкой.
func Run(db *sql.DB, driverName string) error {
	const op = "migrations.Run"

	var (
		driver database.Driver
		err    error
	)
	switch driverName {
	case config.DriverSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case config.DriverPostgres:
		driver, err = pgxv5.WithInstance(db, &pgxv5.Config{})
	default:
		return fmt.Errorf("%s: unknown driver %q", op, driverName)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := iofs.New(files, "sql/"+driverName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
