package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"poolhire/config"
	"poolhire/infras/crm"
	crmClientMocks "poolhire/infras/crm/mocks"
	kafkaMocks "poolhire/infras/kafka/mocks"
	"poolhire/infras/otel/mocks"
	crmMocks "poolhire/internal/domains/crm/mocks"
	"poolhire/internal/domains/crm/model"
	"poolhire/internal/domains/crm/model/dto"
	"poolhire/internal/domains/crm/service"
	poolMocks "poolhire/internal/domains/pool/mocks"
	poolModel "poolhire/internal/domains/pool/model"
)

type fixture struct {
	repo        *crmMocks.MockIntegration
	syncLogRepo *crmMocks.MockSyncLog
	poolRepo    *poolMocks.MockPool
	client      *crmClientMocks.MockClient
	kafka       *kafkaMocks.MockClient
	svc         service.Crm
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.CrmSync = "crm.sync.events"

	f := &fixture{
		repo:        crmMocks.NewMockIntegration(ctrl),
		syncLogRepo: crmMocks.NewMockSyncLog(ctrl),
		poolRepo:    poolMocks.NewMockPool(ctrl),
		client:      crmClientMocks.NewMockClient(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.syncLogRepo, f.poolRepo, f.client, f.kafka, cfg, mocks.NewOtel())

	return f
}

func TestCrmService_SyncAll(t *testing.T) {
	integrations := []model.Integration{
		{ID: "int-1", HostID: "host-1", Provider: "hubspot", APIKey: "key-1", IsActive: true},
		{ID: "int-2", HostID: "host-2", Provider: "salesforce", APIKey: "key-2", IsActive: true},
	}

	tests := []struct {
		name        string
		setupMock   func(f *fixture)
		wantErr     bool
		wantResults []dto.SyncResult
	}{
		{
			name: "one failing pool does not abort the run",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetActive(gomock.Any()).Return(integrations, nil)
				gomock.InOrder(
					f.poolRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]poolModel.Pool{{ID: "pool-1", HostID: "host-1"}}, nil),
					f.poolRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]poolModel.Pool{{ID: "pool-2", HostID: "host-2"}, {ID: "pool-3", HostID: "host-2"}}, nil),
				)
				f.client.EXPECT().
					SyncAvailability(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req crm.SyncRequest) error {
						if req.PoolID == "pool-2" {
							return errors.New("crm responded with status 503")
						}

						return nil
					}).
					Times(3)
				f.syncLogRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, syncLog model.SyncLog) error {
						if syncLog.PoolID == "pool-2" {
							assert.Equal(t, model.SyncStatusError, syncLog.Status)
							require.NotNil(t, syncLog.ErrorMessage)
						} else {
							assert.Equal(t, model.SyncStatusSuccess, syncLog.Status)
							assert.Nil(t, syncLog.ErrorMessage)
						}

						return nil
					}).
					Times(3)
				f.repo.EXPECT().MarkSynced(gomock.Any(), "int-1", gomock.Any()).Return(nil)
				f.repo.EXPECT().MarkSynced(gomock.Any(), "int-2", gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), "crm.sync.events", gomock.Any()).Return(nil)
			},
			wantResults: []dto.SyncResult{
				{IntegrationID: "int-1", PoolID: "pool-1", Status: model.SyncStatusSuccess},
				{IntegrationID: "int-2", PoolID: "pool-2", Status: model.SyncStatusError, Error: "crm responded with status 503"},
				{IntegrationID: "int-2", PoolID: "pool-3", Status: model.SyncStatusSuccess},
			},
		},
		{
			name: "pool listing failure is reported per integration",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetActive(gomock.Any()).Return(integrations[:1], nil)
				f.poolRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
				f.repo.EXPECT().MarkSynced(gomock.Any(), "int-1", gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantResults: []dto.SyncResult{
				{IntegrationID: "int-1", Status: model.SyncStatusError, Error: "unable to list pools"},
			},
		},
		{
			name: "no integrations",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetActive(gomock.Any()).Return(nil, nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))
			},
			wantResults: []dto.SyncResult{},
		},
		{
			name: "listing integrations fails the run",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.SyncAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "availability sync completed", res.Message)
			assert.Equal(t, "success", res.Status)
			assert.Equal(t, tt.wantResults, res.Results)
		})
	}
}

func TestSyncResponse_Summarize(t *testing.T) {
	res := dto.SyncResponse{Results: []dto.SyncResult{
		{Status: model.SyncStatusSuccess},
		{Status: model.SyncStatusError},
		{Status: model.SyncStatusSuccess},
	}}

	finishedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	event := res.Summarize(2, finishedAt)

	assert.Equal(t, 2, event.Integrations)
	assert.Equal(t, 2, event.Succeeded)
	assert.Equal(t, 1, event.Failed)
	assert.Equal(t, finishedAt, event.FinishedAt)
}
