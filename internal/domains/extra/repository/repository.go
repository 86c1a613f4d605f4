package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/extra/model"
	gDto "poolhire/shared/dto"
	gRepo "poolhire/shared/repository"
)

type Extra interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Extra, error)
	GetActiveByPool(ctx context.Context, poolID string) ([]model.Extra, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Extra]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Extra {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Extra](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetActiveByPool(ctx context.Context, poolID string) ([]model.Extra, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPoolID,
				Value:    poolID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, filter)
}
