package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"poolhire/config"
	"poolhire/infras/crm"
	"poolhire/infras/kafka"
	"poolhire/infras/otel"
	"poolhire/internal/domains/crm/model"
	"poolhire/internal/domains/crm/model/dto"
	"poolhire/internal/domains/crm/repository"
	poolModel "poolhire/internal/domains/pool/model"
	poolDto "poolhire/internal/domains/pool/model/dto"
	poolRepo "poolhire/internal/domains/pool/repository"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const msgSyncCompleted = "availability sync completed"

type Crm interface {
	SyncAll(ctx context.Context) (dto.SyncResponse, error)
}

type serviceImpl struct {
	repo        repository.Integration
	syncLogRepo repository.SyncLog
	poolRepo    poolRepo.Pool
	client      crm.Client
	kafka       kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Integration,
	syncLogRepo repository.SyncLog,
	poolRepo poolRepo.Pool,
	client crm.Client,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Crm {
	return &serviceImpl{
		repo:        repo,
		syncLogRepo: syncLogRepo,
		poolRepo:    poolRepo,
		client:      client,
		kafka:       kafka,
		cfg:         cfg,
		otel:        otel,
	}
}

// SyncAll pushes availability of every active pool to its host's CRM. Only listing the integrations can
// fail the run; everything below that is reported per entry.
func (s *serviceImpl) SyncAll(ctx context.Context) (res dto.SyncResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	integrations, err := s.repo.GetActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active crm integrations")

		return res, fmt.Errorf("failed to get active crm integrations: %w", err)
	}

	res.Status = model.SyncStatusSuccess
	res.Message = msgSyncCompleted
	res.Results = []dto.SyncResult{}

	for _, integration := range integrations {
		res.Results = append(res.Results, s.syncIntegration(ctx, integration)...)

		if err := s.repo.MarkSynced(ctx, integration.ID, timezone.Now()); err != nil {
			log.Error().Err(err).Str("integration_id", integration.ID).Msg("failed to update last sync time")
		}
	}

	scope.SetAttributes(map[string]any{
		"crm.integrations": len(integrations),
		"crm.results":      len(res.Results),
	})

	s.publish(ctx, res.Summarize(len(integrations), timezone.Now()))

	return res, nil
}

func (s *serviceImpl) syncIntegration(ctx context.Context, integration model.Integration) []dto.SyncResult {
	pools, err := s.poolRepo.GetAll(
		ctx,
		gDto.QueryParams{SortBy: poolModel.FieldName, SortDir: gDto.SortDirAsc},
		poolDto.ListFilter{HostID: integration.HostID}.ToFilterGroup(),
	)
	if err != nil {
		log.Error().Err(err).Str("integration_id", integration.ID).Msg("failed to get pools for crm integration")

		return []dto.SyncResult{{
			IntegrationID: integration.ID,
			Status:        model.SyncStatusError,
			Error:         "unable to list pools",
		}}
	}

	results := make([]dto.SyncResult, 0, len(pools))

	for _, pool := range pools {
		results = append(results, s.syncPool(ctx, integration, pool))
	}

	return results
}

func (s *serviceImpl) syncPool(ctx context.Context, integration model.Integration, pool poolModel.Pool) dto.SyncResult {
	result := dto.SyncResult{
		IntegrationID: integration.ID,
		PoolID:        pool.ID,
		Status:        model.SyncStatusSuccess,
	}

	syncLog := model.SyncLog{
		ID:            uuid.NewString(),
		IntegrationID: integration.ID,
		PoolID:        pool.ID,
		Status:        model.SyncStatusSuccess,
	}

	err := s.client.SyncAvailability(ctx, crm.SyncRequest{
		IntegrationID: integration.ID,
		Provider:      integration.Provider,
		HostID:        integration.HostID,
		PoolID:        pool.ID,
		PoolName:      pool.Name,
		APIKey:        integration.APIKey,
		APISecret:     integration.APISecret,
	})
	if err != nil {
		log.Warn().Err(err).Str("integration_id", integration.ID).Str("pool_id", pool.ID).Msg("crm availability sync failed")

		msg := err.Error()
		syncLog.Status = model.SyncStatusError
		syncLog.ErrorMessage = &msg
		result.Status = model.SyncStatusError
		result.Error = msg
	}

	syncLog.SyncedAt = timezone.Now()

	if err := s.syncLogRepo.Insert(ctx, syncLog); err != nil {
		log.Error().Err(err).Str("integration_id", integration.ID).Str("pool_id", pool.ID).Msg("failed to insert sync log")
	}

	return result
}

func (s *serviceImpl) publish(ctx context.Context, event dto.SyncRunEvent) {
	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.CrmSync, kafka.Message{Key: "crm-sync", Value: event})
	if err != nil {
		log.Error().Err(err).Str("topic", s.cfg.Kafka.Topics.CrmSync).Msg("failed to publish crm sync event")
	}
}
