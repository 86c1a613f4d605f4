package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"poolhire/config"
	"poolhire/infras/otel"
	extraRepo "poolhire/internal/domains/extra/repository"
	"poolhire/internal/domains/pool/model"
	"poolhire/internal/domains/pool/model/dto"
	"poolhire/internal/domains/pool/repository"
	"poolhire/shared"
	"poolhire/shared/cache"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPool       = "pool:get"
	cacheGetAllPool    = "pool:gets"
	cacheCountPool     = "pool:count"
	cacheGetPoolExtras = "pool:extras"
	cacheGetPoolQuote  = "pool:quote"
)

type Pool interface {
	Create(ctx context.Context, req dto.CreatePoolRequest) (dto.PoolResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPoolsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PoolResponse, error)
	GetExtras(ctx context.Context, id string) (dto.GetExtrasResponse, error)
	Update(ctx context.Context, req dto.UpdatePoolRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Pool
	extraRepo extraRepo.Extra
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Pool, extraRepo extraRepo.Extra, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pool {
	return &serviceImpl{
		repo:      repo,
		extraRepo: extraRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePoolRequest) (res dto.PoolResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hostID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if hostID == constant.Empty {
		return res, failure.Unauthorized("authentication required") // nolint:wrapcheck
	}

	pool := req.ToModel(hostID)

	if err = s.repo.Insert(ctx, pool); err != nil {
		log.Error().Err(err).Msg("failed to create pool")

		return res, fmt.Errorf("failed to create pool: %w", err)
	}

	res.FromModel(pool)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPool)
		shared.InvalidateCaches(c, s.cache, cacheCountPool)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPoolsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPool, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pools")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pools")

		return res, fmt.Errorf("failed to count pools: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pools")

		return res, fmt.Errorf("failed to get pools: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pools to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPool, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pool count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pools")

		return res, fmt.Errorf("failed to count pools: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pool count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PoolResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPool, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for pool")

		return res, nil
	}

	pool, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pool")

		return res, fmt.Errorf("failed to get pool: %w", err)
	}

	if pool.ID == constant.Empty {
		return res, failure.NotFound("pool not found") // nolint:wrapcheck
	}

	res.FromModel(pool)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pool to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetExtras(ctx context.Context, id string) (res dto.GetExtrasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetExtras")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPoolExtras, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	if _, err = s.Get(ctx, id); err != nil {
		return res, err
	}

	extras, err := s.extraRepo.GetActiveByPool(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("pool_id", id).Msg("failed to get pool extras")

		return res, fmt.Errorf("failed to get pool extras: %w", err)
	}

	res.FromModels(extras)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save pool extras to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePoolRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check pool existence")

		return fmt.Errorf("failed to get pool: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("pool not found") // nolint:wrapcheck
	}

	// Hosts may only edit their own listings.
	if role != constant.RoleAdmin && current.HostID != user {
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update pool")

		return fmt.Errorf("failed to update pool: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPool, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete pool cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPool)
		shared.InvalidateCaches(c, s.cache, cacheCountPool)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetPoolQuote, current.ID))
	}()

	return nil
}
