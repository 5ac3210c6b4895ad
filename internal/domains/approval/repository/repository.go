package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/approval/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type ApprovalRequest interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.ApprovalRequest) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.ApprovalRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ApprovalRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateWhereTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ApprovalRequest]
}

func New(db *postgres.Connection, otel otel.Otel) ApprovalRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ApprovalRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
