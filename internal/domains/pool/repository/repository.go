package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/pool/model"
	gDto "poolhire/shared/dto"
	gRepo "poolhire/shared/repository"
)

type Pool interface {
	Insert(ctx context.Context, model model.Pool) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Pool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Pool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Pool]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pool {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Pool](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
