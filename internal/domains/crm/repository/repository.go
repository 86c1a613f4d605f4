package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/crm/model"
	gDto "poolhire/shared/dto"
	gRepo "poolhire/shared/repository"
	"time"
)

type Integration interface {
	GetActive(ctx context.Context) ([]model.Integration, error)
	MarkSynced(ctx context.Context, id string, syncedAt time.Time) error
}

type SyncLog interface {
	Insert(ctx context.Context, model model.SyncLog) error
}

type integrationImpl struct {
	gRepo.Repository[model.Integration]
}

func New(db *postgres.Connection, otel otel.Otel) Integration {
	return &integrationImpl{
		Repository: gRepo.NewRepository[model.Integration](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *integrationImpl) GetActive(ctx context.Context) ([]model.Integration, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, filter)
}

func (r *integrationImpl) MarkSynced(ctx context.Context, id string, syncedAt time.Time) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return r.Update(ctx, map[string]any{model.FieldLastSyncAt: syncedAt}, filter)
}

type syncLogImpl struct {
	gRepo.Repository[model.SyncLog]
}

func NewSyncLog(db *postgres.Connection, otel otel.Otel) SyncLog {
	return &syncLogImpl{
		Repository: gRepo.NewRepository[model.SyncLog](model.SyncLogEntityName, model.SyncLogTableName, model.SyncLogFieldID, db, otel),
	}
}
