package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/payment/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

// PaymentTransaction is append-only. It exposes no update.
type PaymentTransaction interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.PaymentTransaction) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PaymentTransaction, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PaymentTransaction, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PaymentTransaction]
}

func New(db *postgres.Connection, otel otel.Otel) PaymentTransaction {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentTransaction](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
