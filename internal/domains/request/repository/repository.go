package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/request/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type TravelRequest interface {
	Insert(ctx context.Context, model model.TravelRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.TravelRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.TravelRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateWhere(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	UpdateWhereTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TravelRequest]
}

func New(db *postgres.Connection, otel otel.Otel) TravelRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TravelRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
