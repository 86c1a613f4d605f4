package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"poolhire/infras/kafka"
	"poolhire/infras/stripe"
	bookingModel "poolhire/internal/domains/booking/model"
	"poolhire/internal/domains/payment/model"
	"poolhire/internal/domains/payment/model/dto"
	"poolhire/shared/constant"
	"poolhire/shared/failure"
	"poolhire/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const webhookArchiveDir = "webhooks/stripe"

// HandleWebhook verifies and applies a provider event. Every handled type is safe to redeliver;
// a returned non-failure error asks the provider to retry.
func (s *serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleWebhook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.gateway.ConstructEvent(ctx, payload, signature)
	if errors.Is(err, stripe.ErrInvalidSignature) {
		log.Warn().Err(err).Msg("rejected webhook with invalid signature")

		return failure.InvalidSignature("invalid signature") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to read verified webhook event")

		return fmt.Errorf("failed to read webhook event: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"webhook.event_id":   event.ID,
		"webhook.event_type": event.Type,
	})

	var applied *dto.PaymentEvent

	switch event.Type {
	case stripe.EventPaymentIntentSucceeded:
		s.archive(ctx, event.ID, payload)

		applied, err = s.applySucceeded(ctx, event)
	case stripe.EventPaymentIntentFailed:
		s.archive(ctx, event.ID, payload)

		applied, err = s.applyFailed(ctx, event)
	default:
		log.Info().Str("event_id", event.ID).Str("event_type", event.Type).Msg("ignoring unhandled webhook event")

		return nil
	}

	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Str("event_type", event.Type).Msg("failed to apply webhook event")

		return fmt.Errorf("failed to apply webhook event %s: %w", event.ID, err)
	}

	if applied != nil {
		s.publish(ctx, *applied)
	}

	return nil
}

func (s *serviceImpl) applySucceeded(ctx context.Context, event stripe.Event) (applied *dto.PaymentEvent, err error) {
	now := timezone.Now()
	intent := event.PaymentIntent

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		claimed, err := s.claim(ctx, tx, event)
		if err != nil || !claimed {
			return err
		}

		payment, err := s.repo.GetByIntentForUpdateTx(ctx, tx, intent.ID)
		if err != nil {
			return err
		}

		if payment.ID == constant.Empty {
			log.Error().Str("payment_intent_id", intent.ID).Msg("succeeded intent has no recorded payment")

			return nil
		}

		if payment.Status == model.StatusSucceeded {
			return nil
		}

		if err = s.repo.MarkSucceededTx(ctx, tx, payment.ID, now, constant.ProviderStripe); err != nil {
			return err
		}

		if err = s.bookingRepo.UpdateStatusTx(ctx, tx, payment.BookingID, bookingModel.StatusConfirmed, constant.ProviderStripe); err != nil {
			return err
		}

		if payment.HostPayoutAmount > 0 {
			if err = s.recordPayout(ctx, tx, payment); err != nil {
				return err
			}
		}

		applied = &dto.PaymentEvent{
			EventID:         event.ID,
			EventType:       event.Type,
			PaymentIntentID: intent.ID,
			PaymentID:       payment.ID,
			BookingID:       payment.BookingID,
			Status:          model.StatusSucceeded,
			Amount:          payment.Amount,
			Currency:        payment.Currency,
			OccurredAt:      now,
		}

		return nil
	})

	return applied, err //nolint:wrapcheck
}

func (s *serviceImpl) recordPayout(ctx context.Context, tx *sqlx.Tx, payment model.Payment) error {
	hostID, err := s.bookingRepo.GetHostIDTx(ctx, tx, payment.BookingID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if hostID == constant.Empty {
		log.Error().Str("payment_id", payment.ID).Str("booking_id", payment.BookingID).Msg("no host found for payout")

		return nil
	}

	inserted, err := s.payoutRepo.InsertTx(ctx, tx, model.HostPayout{
		ID:        uuid.NewString(),
		PaymentID: payment.ID,
		HostID:    hostID,
		Amount:    payment.HostPayoutAmount,
		Currency:  payment.Currency,
		Status:    model.PayoutStatusPending,
		CreatedAt: timezone.Now(),
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !inserted {
		log.Warn().Str("payment_id", payment.ID).Msg("host payout already recorded")
	}

	return nil
}

func (s *serviceImpl) applyFailed(ctx context.Context, event stripe.Event) (applied *dto.PaymentEvent, err error) {
	now := timezone.Now()
	intent := event.PaymentIntent
	bookingID := intent.Metadata["booking_id"]

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		claimed, err := s.claim(ctx, tx, event)
		if err != nil || !claimed {
			return err
		}

		affected, err := s.repo.MarkFailedByIntentTx(ctx, tx, intent.ID, now, constant.ProviderStripe)
		if err != nil {
			return err
		}

		if affected == 0 {
			payment, err := s.repo.GetByIntentForUpdateTx(ctx, tx, intent.ID)
			if err != nil {
				return err
			}

			// A late failure must not cancel a booking that has already been paid.
			if payment.Status == model.StatusSucceeded {
				log.Warn().Str("payment_intent_id", intent.ID).Msg("ignoring failure for succeeded payment")

				return nil
			}
		}

		if bookingID != constant.Empty {
			if err = s.bookingRepo.UpdateStatusTx(ctx, tx, bookingID, bookingModel.StatusCancelled, constant.ProviderStripe); err != nil {
				return err
			}
		}

		applied = &dto.PaymentEvent{
			EventID:         event.ID,
			EventType:       event.Type,
			PaymentIntentID: intent.ID,
			BookingID:       bookingID,
			Status:          model.StatusFailed,
			Amount:          intent.Amount,
			Currency:        intent.Currency,
			OccurredAt:      now,
		}

		return nil
	})

	return applied, err //nolint:wrapcheck
}

func (s *serviceImpl) claim(ctx context.Context, tx *sqlx.Tx, event stripe.Event) (bool, error) {
	claimed, err := s.eventRepo.ClaimTx(ctx, tx, model.ProcessedEvent{
		ID:          event.ID,
		Provider:    constant.ProviderStripe,
		EventType:   event.Type,
		ProcessedAt: timezone.Now(),
	})
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	if !claimed {
		log.Info().Str("event_id", event.ID).Msg("webhook event already processed")
	}

	return claimed, nil
}

// archive keeps the verified payload for audits; failures never block processing.
func (s *serviceImpl) archive(ctx context.Context, eventID string, payload []byte) {
	bucket := s.cfg.External.Stripe.ArchiveBucket
	if bucket == constant.Empty {
		return
	}

	key := path.Join(webhookArchiveDir, eventID+".json")

	if _, err := s.s3.PutObject(ctx, bucket, key, constant.ContentTypeJSON, payload); err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("failed to archive webhook payload")
	}
}

// publish runs after commit; a broker outage is logged, never retried through the provider.
func (s *serviceImpl) publish(ctx context.Context, event dto.PaymentEvent) {
	key := event.BookingID
	if key == constant.Empty {
		key = event.PaymentIntentID
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Payment, kafka.Message{Key: key, Value: event})
	if err != nil {
		log.Error().Err(err).Str("event_id", event.EventID).Msg("failed to publish payment event")
	}
}
