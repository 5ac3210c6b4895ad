package repository

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Transactor opens a write transaction scoped to fn. *postgres.Connection satisfies it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}
