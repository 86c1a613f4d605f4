package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"poolhire/config"
	"poolhire/infras/otel"
	"poolhire/internal/domains/booking/model"
	"poolhire/internal/domains/booking/model/dto"
	"poolhire/internal/domains/booking/pricing"
	"poolhire/internal/domains/booking/repository"
	extraRepo "poolhire/internal/domains/extra/repository"
	poolModel "poolhire/internal/domains/pool/model"
	poolRepo "poolhire/internal/domains/pool/repository"
	"poolhire/shared"
	"poolhire/shared/cache"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"
	"poolhire/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Quotes live under the pool prefix so a pool update drops them.
const cacheQuote = "pool:quote"

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	poolRepo  poolRepo.Pool
	extraRepo extraRepo.Extra
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, poolRepo poolRepo.Pool, extraRepo extraRepo.Extra, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		poolRepo:  poolRepo,
		extraRepo: extraRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	selected := slices.Clone(req.Extras)
	slices.Sort(selected)

	cacheKey := shared.BuildCacheKey(cacheQuote, req.PoolID, strings.Join(selected, ","))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for quote")

		return res, nil
	}

	res, err = s.quote(ctx, req.PoolID, req.Extras)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save quote to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) quote(ctx context.Context, poolID string, selected []string) (res dto.QuoteResponse, err error) {
	pool, err := s.poolRepo.Get(ctx, shared.FilterByID(poolID, poolModel.FieldID, poolModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("pool_id", poolID).Msg("failed to get pool")

		return res, fmt.Errorf("failed to get pool: %w", err)
	}

	if pool.ID == constant.Empty || !pool.IsActive {
		return res, failure.NotFound("pool not found") // nolint:wrapcheck
	}

	extras, err := s.extraRepo.GetActiveByPool(ctx, poolID)
	if err != nil {
		log.Error().Err(err).Str("pool_id", poolID).Msg("failed to get pool extras")

		return res, fmt.Errorf("failed to get pool extras: %w", err)
	}

	total := pricing.Total(pool.Price, selected, pricing.Catalog(extras))

	return dto.QuoteResponse{
		PoolID:      pool.ID,
		BasePrice:   pool.Price,
		ExtrasPrice: total - pool.Price,
		TotalPrice:  total,
		Currency:    s.cfg.Payment.Currency,
	}, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	bookingDate, err := timezone.Parse(dto.DateLayout, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("booking_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if bookingDate.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("booking_date cannot be in the past") // nolint:wrapcheck
	}

	quote, err := s.quote(ctx, req.PoolID, req.Extras)
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(user, quote.TotalPrice)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("pool_id", booking.PoolID).Int64("total_price", booking.TotalPrice).Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

// Get only returns bookings owned by the caller.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	booking, err := s.repo.Get(ctx, repository.OwnedBy(id, user))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if req.SortBy == constant.Empty {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
