// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var files embed.FS

// migrationLogger adapts slog to migrate.Logger.
type migrationLogger struct {
	logger *slog.Logger
}

func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l migrationLogger) Verbose() bool {
	return false
}

// Runner applies the embedded migrations over a single connection of the pool.
// Close releases that connection; the pool itself stays open.
type Runner struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewRunner prepares a runner on db.
func NewRunner(ctx context.Context, db *sql.DB, logger *slog.Logger) (*Runner, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "failed to create migrate instance")
	}
	m.Log = migrationLogger{logger: logger}

	return &Runner{m: m, logger: logger}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Runner) Up() error {
	start := time.Now()

	err := r.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		r.logger.Info("No new migrations to apply")

		return nil
	}
	if err != nil {
		version, dirty, _ := r.m.Version()
		r.logger.Error("Failed to apply migrations",
			slog.Any("error", err),
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty),
		)

		return errors.Wrap(err, "failed to apply migrations")
	}

	r.logger.Info("Successfully applied migrations", slog.Duration("elapsed", time.Since(start)))

	return nil
}

// Down reverts steps migrations; steps <= 0 reverts all of them.
func (r *Runner) Down(steps int) error {
	var err error
	if steps <= 0 {
		err = r.m.Down()
	} else {
		err = r.m.Steps(-steps)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return errors.Wrap(err, "failed to revert migrations")
}

// Version reports the applied version. A fresh database reports version 0.
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}

// Close releases the migration connection.
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	if srcErr != nil {
		return errors.Wrap(srcErr, "failed to close migration source")
	}

	return errors.Wrap(dbErr, "failed to close migration connection")
}
