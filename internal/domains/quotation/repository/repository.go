package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/quotation/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Quotation interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Quotation) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Quotation, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Quotation, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Quotation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Quotation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateWhere(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	UpdateWhereTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

// Version stores the append-only snapshots taken when a quotation is branched.
type Version interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Version) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Version, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Quotation]
}

func New(db *postgres.Connection, otel otel.Otel) Quotation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Quotation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type versionRepositoryImpl struct {
	gRepo.Repository[model.Version]
}

func NewVersion(db *postgres.Connection, otel otel.Otel) Version {
	return &versionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Version](model.VersionEntityName, model.VersionTableName, model.FieldVersionID, db, otel),
	}
}
