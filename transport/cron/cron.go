package cron

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"poolhire/config"
	"poolhire/infras/otel"
	"poolhire/internal/domains/crm/service"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const flushTimeout = 5 * time.Second

type Scheduler struct {
	Config *config.Config
	crm    service.Crm
	cron   *cron.Cron
}

func New(cfg *config.Config, crm service.Crm) *Scheduler {
	logger := zerologAdapter{}

	return &Scheduler{
		Config: cfg,
		crm:    crm,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

// Start registers the jobs and starts the scheduler without blocking.
func (s *Scheduler) Start() error {
	schedule := s.Config.External.CRM.Schedule

	_, err := s.cron.AddFunc(schedule, s.syncAvailabilityJob)
	if err != nil {
		return fmt.Errorf("failed to schedule crm availability sync: %w", err)
	}

	log.Info().Str("schedule", schedule).Msg("Scheduled CRM availability sync.")

	s.cron.Start()

	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()

	log.Info().Msg("Scheduler stopped.")
}

// Run starts the scheduler and blocks until SIGTERM.
func (s *Scheduler) Run() {
	if err := s.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	<-signalCh

	log.Info().Msg("Received SIGTERM. Waiting for running jobs.")

	s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}

func (s *Scheduler) syncAvailabilityJob() {
	res, err := s.crm.SyncAll(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("crm availability sync failed")

		return
	}

	log.Info().Int("results", len(res.Results)).Msg(res.Message)
}

type zerologAdapter struct{}

func (zerologAdapter) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (zerologAdapter) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
