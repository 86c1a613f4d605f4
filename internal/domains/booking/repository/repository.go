package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/booking/model"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/logger"
	gRepo "poolhire/shared/repository"
	"poolhire/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	queryUpdateStatus = `UPDATE bookings SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4`
	queryHostID       = `SELECT pools.host_id FROM bookings JOIN pools ON pools.id = bookings.pool_id WHERE bookings.id = $1`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status, actor string) error
	GetHostIDTx(ctx context.Context, tx *sqlx.Tx, id string) (string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatusTx sets the booking status; a missing booking is not an error.
func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status, actor string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpdateStatus)

	if _, err = tx.ExecContext(ctx, queryUpdateStatus, status, timezone.Now(), actor, id); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return nil
}

// GetHostIDTx resolves the host owning the booked pool, empty when the booking does not exist.
func (r *repositoryImpl) GetHostIDTx(ctx context.Context, tx *sqlx.Tx, id string) (hostID string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetHostIDTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHostID)

	err = tx.GetContext(ctx, &hostID, queryHostID, id)
	if errors.Is(err, sql.ErrNoRows) {
		return constant.Empty, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return constant.Empty, fmt.Errorf("failed to get booking host: %w", err)
	}

	return hostID, nil
}

// OwnedBy matches a single booking id belonging to userID.
func OwnedBy(id, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
