package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
	"tripdesk/config"
	"tripdesk/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresMaxIdleTime       = 5 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens both pools. Reads go to the replica; every transaction runs on the primary.
func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect("read", cfg.DB.Postgres.Read, cfg),
		Write: connect("write", cfg.DB.Postgres.Write, cfg),
	}
}

// WithTx runs fn inside a single write transaction. The transaction commits only when fn
// returns nil; any error or panic rolls it back.
func (c *Connection) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
		}
	}
}

// IsUniqueViolation reports whether err came from a unique index rejecting a row.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// DSN renders the lib/pq URL for one node. The session timezone follows the node setting
// when one is given.
func DSN(node config.PostgresNode, prefix string) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(node.Username, node.Password),
		Host:   net.JoinHostPort(node.Host, node.Port),
		Path:   prefix + node.Name,
	}

	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// connect retries until the node answers or the attempts run out, in which case the process
// exits since no operation can run without storage.
func connect(role string, node config.PostgresNode, cfg *config.Config) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)

	logger := log.With().
		Str("role", role).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("db", pg.Prefix+node.Name).
		Logger()

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect("postgres", DSN(node, pg.Prefix))
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxIdleTime(postgresMaxIdleTime)

			logger.Info().Msg("database connected")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Err(err).Int("attempts", attempts).Msg("database unreachable")

	return nil
}
