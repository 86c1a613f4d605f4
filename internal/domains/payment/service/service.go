package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"strings"
	"time"

	"poolhire/config"
	"poolhire/infras/kafka"
	"poolhire/infras/otel"
	"poolhire/infras/postgres"
	"poolhire/infras/s3"
	"poolhire/infras/stripe"
	bookingModel "poolhire/internal/domains/booking/model"
	bookingRepo "poolhire/internal/domains/booking/repository"
	"poolhire/internal/domains/payment/fee"
	"poolhire/internal/domains/payment/model"
	"poolhire/internal/domains/payment/model/dto"
	"poolhire/internal/domains/payment/repository"
	"poolhire/shared/constant"
	"poolhire/shared/failure"
	gModel "poolhire/shared/model"
	"poolhire/shared/timezone"
	"poolhire/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultStripeTimeout = 10 * time.Second

	// maxAmountMinor is the largest charge accepted, 999,999.99 in major units.
	maxAmountMinor int64 = 99_999_999

	msgCreatePaymentFailed = "unable to create payment"
)

type Payment interface {
	CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (dto.CreateIntentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type serviceImpl struct {
	repo        repository.Payment
	payoutRepo  repository.HostPayout
	eventRepo   repository.ProcessedEvent
	bookingRepo bookingRepo.Booking
	transactor  postgres.Transactor
	gateway     stripe.Gateway
	kafka       kafka.Client
	s3          s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	payoutRepo repository.HostPayout,
	eventRepo repository.ProcessedEvent,
	bookingRepo bookingRepo.Booking,
	transactor postgres.Transactor,
	gateway stripe.Gateway,
	kafka kafka.Client,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		payoutRepo:  payoutRepo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		gateway:     gateway,
		kafka:       kafka,
		s3:          s3,
		cfg:         cfg,
		otel:        otel,
	}
}

// CreateIntent opens a provider payment intent for one of the caller's bookings and records a pending payment.
func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (res dto.CreateIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateIntent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	if validator.ValidateVar(req.BookingID, "required,uuid") != nil {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if req.Amount > float64(maxAmountMinor)/100 {
		return res, failure.BadRequestFromString("amount exceeds the maximum charge") // nolint:wrapcheck
	}

	amount := fee.ToMinor(req.Amount)
	if amount < 1 {
		return res, failure.BadRequestFromString("amount must be at least one minor unit") // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, bookingRepo.OwnedBy(req.BookingID, user))
	if err != nil {
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to get booking for payment")

		return res, failure.PersistenceFailure(msgCreatePaymentFailed) // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusPending {
		return res, failure.Conflict("booking is not awaiting payment") // nolint:wrapcheck
	}

	if amount != booking.TotalPrice {
		log.Warn().
			Str("booking_id", booking.ID).
			Int64("amount", amount).
			Int64("total_price", booking.TotalPrice).
			Msg("payment amount differs from booking total")
	}

	currency := strings.ToLower(req.Currency)
	if currency == constant.Empty {
		currency = s.cfg.Payment.Currency
	}

	platformFee, payout := fee.Split(amount, s.cfg.Payment.PlatformFeeBasisPoints, s.cfg.Payment.FeeRoundingUnit)

	scope.SetAttributes(map[string]any{
		"payment.booking_id":   booking.ID,
		"payment.amount":       amount,
		"payment.platform_fee": platformFee,
	})

	intent, err := s.createProviderIntent(ctx, stripe.PaymentIntentRequest{
		Amount:   amount,
		Currency: currency,
		Metadata: map[string]string{
			"booking_id": booking.ID,
			"user_id":    user,
			"pool_id":    booking.PoolID,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to create payment intent")

		return res, failure.UpstreamFailure(msgCreatePaymentFailed) // nolint:wrapcheck
	}

	now := timezone.Now()
	payment := model.Payment{
		ID:                    uuid.NewString(),
		BookingID:             booking.ID,
		StripePaymentIntentID: intent.ID,
		Amount:                amount,
		Currency:              currency,
		PlatformFee:           platformFee,
		HostPayoutAmount:      payout,
		Status:                model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, payment); err != nil {
		// The intent exists at the provider without a local row; it is left for manual reconciliation.
		log.Error().
			Err(err).
			Str("payment_intent_id", intent.ID).
			Str("booking_id", booking.ID).
			Msg("orphaned payment intent: failed to record payment")

		return res, failure.PersistenceFailure(msgCreatePaymentFailed) // nolint:wrapcheck
	}

	log.Info().Str("payment_id", payment.ID).Str("payment_intent_id", intent.ID).Msg("payment intent created")

	return dto.CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		PaymentID:    payment.ID,
	}, nil
}

func (s *serviceImpl) createProviderIntent(ctx context.Context, req stripe.PaymentIntentRequest) (stripe.PaymentIntent, error) {
	timeout := time.Duration(s.cfg.External.Stripe.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultStripeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return s.gateway.CreatePaymentIntent(ctx, req) //nolint:wrapcheck
}
