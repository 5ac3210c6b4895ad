package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"tripdesk/config"
	"tripdesk/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

// Direction names a migration run accepted by Runner.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

// DSN points golang-migrate at the write node, keeping its bookkeeping table configurable.
func DSN(cfg *config.Config) string {
	dsn := postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix)

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		dsn += "&x-migrations-table=" + url.QueryEscape(table)
	}

	return dsn
}

func (d Direction) valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop:
		return true
	}

	return false
}

func Runner(cfg *config.Config, direction Direction) error {
	if !direction.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownDirection, direction)
	}

	mig, err := migrate.New(migrationsSource, DSN(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", direction, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", verr)
	}

	log.Info().
		Str("direction", string(direction)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, DirectionUp)
}
