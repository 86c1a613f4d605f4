package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/internal/domains/payment/model"
	"poolhire/shared/constant"
	"poolhire/shared/logger"
	gRepo "poolhire/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryGetByIntentForUpdate = `SELECT id, booking_id, stripe_payment_intent_id, amount, currency, platform_fee, host_payout_amount, status, processed_at, created_at, modified_at, created_by, modified_by FROM payments WHERE stripe_payment_intent_id = $1 FOR UPDATE`
	queryMarkSucceeded        = `UPDATE payments SET status = $1, processed_at = $2, modified_at = $2, modified_by = $3 WHERE id = $4`
	queryMarkFailedByIntent   = `UPDATE payments SET status = $1, processed_at = $2, modified_at = $2, modified_by = $3 WHERE stripe_payment_intent_id = $4 AND status <> $5`
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	GetByIntentForUpdateTx(ctx context.Context, tx *sqlx.Tx, intentID string) (model.Payment, error)
	MarkSucceededTx(ctx context.Context, tx *sqlx.Tx, id string, processedAt time.Time, actor string) error
	MarkFailedByIntentTx(ctx context.Context, tx *sqlx.Tx, intentID string, processedAt time.Time, actor string) (int64, error)
}

type HostPayout interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, payout model.HostPayout) (bool, error)
}

type ProcessedEvent interface {
	ClaimTx(ctx context.Context, tx *sqlx.Tx, event model.ProcessedEvent) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByIntentForUpdateTx locks the payment row until tx ends. A zero Payment means no row matched.
func (r *repositoryImpl) GetByIntentForUpdateTx(ctx context.Context, tx *sqlx.Tx, intentID string) (payment model.Payment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.GetByIntentForUpdateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetByIntentForUpdate)

	err = tx.GetContext(ctx, &payment, queryGetByIntentForUpdate, intentID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Payment{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return payment, fmt.Errorf("failed to lock payment: %w", err)
	}

	return payment, nil
}

func (r *repositoryImpl) MarkSucceededTx(ctx context.Context, tx *sqlx.Tx, id string, processedAt time.Time, actor string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.MarkSucceededTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMarkSucceeded)

	if _, err = tx.ExecContext(ctx, queryMarkSucceeded, model.StatusSucceeded, processedAt, actor, id); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to mark payment succeeded: %w", err)
	}

	return nil
}

// MarkFailedByIntentTx never downgrades a succeeded payment and reports how many rows changed.
func (r *repositoryImpl) MarkFailedByIntentTx(ctx context.Context, tx *sqlx.Tx, intentID string, processedAt time.Time, actor string) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.MarkFailedByIntentTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMarkFailedByIntent)

	result, err := tx.ExecContext(ctx, queryMarkFailedByIntent, model.StatusFailed, processedAt, actor, intentID, model.StatusSucceeded)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to mark payment failed: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected payments: %w", err)
	}

	return affected, nil
}

type hostPayoutImpl struct {
	gRepo.Repository[model.HostPayout]
}

func NewHostPayout(db *postgres.Connection, otel otel.Otel) HostPayout {
	return &hostPayoutImpl{
		Repository: gRepo.NewRepository[model.HostPayout](model.PayoutEntityName, model.PayoutTableName, model.PayoutFieldPaymentID, db, otel),
	}
}

// InsertTx returns false when a payout for the payment already exists.
func (r *hostPayoutImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, payout model.HostPayout) (bool, error) {
	return r.InsertIgnoreTx(ctx, tx, payout, model.PayoutFieldPaymentID)
}

type processedEventImpl struct {
	gRepo.Repository[model.ProcessedEvent]
}

func NewProcessedEvent(db *postgres.Connection, otel otel.Otel) ProcessedEvent {
	return &processedEventImpl{
		Repository: gRepo.NewRepository[model.ProcessedEvent](model.ProcessedEventEntityName, model.ProcessedEventTableName, model.ProcessedEventFieldID, db, otel),
	}
}

// ClaimTx returns false when the event id was already recorded.
func (r *processedEventImpl) ClaimTx(ctx context.Context, tx *sqlx.Tx, event model.ProcessedEvent) (bool, error) {
	return r.InsertIgnoreTx(ctx, tx, event)
}
