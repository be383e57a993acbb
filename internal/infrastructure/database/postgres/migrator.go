package postgres

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
)

// RunMigrations applies all pending schema migrations from
// cfg.MigrationPath.  It opens a short-lived database/sql connection
// through the pgx stdlib driver, separate from the pgx pool.
func RunMigrations(cfg config.DatabaseConfig, log logging.Logger) error {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if cfg.MigrationPath == "" {
		log.Info("no migration path configured, skipping migrations")
		return nil
	}

	db, err := sql.Open("pgx", BuildDSN(cfg))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "open migration connection")
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "create migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationPath, cfg.DBName, driver)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "create migrator")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "read migration version")
	}
	log.Info("migrations applied",
		logging.Int("version", int(version)),
		logging.Bool("dirty", dirty))
	return nil
}
