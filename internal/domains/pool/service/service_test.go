package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"poolhire/config"
	"poolhire/infras/otel/mocks"
	extraMocks "poolhire/internal/domains/extra/mocks"
	extraModel "poolhire/internal/domains/extra/model"
	poolMocks "poolhire/internal/domains/pool/mocks"
	"poolhire/internal/domains/pool/model"
	"poolhire/internal/domains/pool/model/dto"
	"poolhire/internal/domains/pool/service"
	cacheMocks "poolhire/shared/cache/mocks"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	repo      *poolMocks.MockPool
	extraRepo *extraMocks.MockExtra
	cache     *cacheMocks.MockRedisCache
	svc       service.Pool
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      poolMocks.NewMockPool(ctrl),
		extraRepo: extraMocks.NewMockExtra(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.extraRepo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func hostCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestPoolService_Create(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "host creates listing",
			ctx:  hostCtx("host-1", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pool model.Pool) error {
						assert.Equal(t, "host-1", pool.HostID)
						assert.Equal(t, int64(5000), pool.Price)
						assert.True(t, pool.IsActive)

						return nil
					})
			},
		},
		{
			name:      "missing identity",
			ctx:       context.Background(),
			setupMock: func(f fixture) {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "repository error",
			ctx:  hostCtx("host-1", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(tt.ctx, dto.CreatePoolRequest{Name: "Lido", Location: "London", Price: 5000})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Lido", res.Name)
		})
	}
}

func TestPoolService_GetAll(t *testing.T) {
	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListFilter{}.ToFilterGroup())
		assert.NoError(t, err)
	})

	t.Run("cache miss reads repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Pool{
			{ID: "p1", Name: "Lido", Price: 5000},
			{ID: "p2", Name: "Spa", Price: 8000},
		}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 1}, dto.ListFilter{}.ToFilterGroup())
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Pools, 2)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestPoolService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{ID: "p1", Name: "Lido"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "p1")

			if tt.wantCode != 0 {
				assert.True(t, failure.Is(err, tt.wantCode))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "p1", res.ID)
		})
	}
}

func TestPoolService_GetExtras(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "pool:extras:p1", gomock.Any()).Return(errCacheMiss)
	f.cache.EXPECT().Get(gomock.Any(), "pool:get:p1", gomock.Any()).Return(errCacheMiss)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{ID: "p1"}, nil)
	f.extraRepo.EXPECT().GetActiveByPool(gomock.Any(), "p1").Return([]extraModel.Extra{
		{ID: "cleaning", Name: "Cleaning", Price: 1000},
		{ID: "towels", Name: "Towels", Price: 500},
	}, nil)

	res, err := f.svc.GetExtras(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []dto.ExtraResponse{
		{ID: "cleaning", Name: "Cleaning", Price: 1000},
		{ID: "towels", Name: "Towels", Price: 500},
	}, res.Extras)
}

func TestPoolService_Update(t *testing.T) {
	price := int64(6000)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "owner updates",
			ctx:  hostCtx("host-1", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{ID: "p1", HostID: "host-1"}, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &price, fields[model.FieldPrice])
						assert.Equal(t, "host-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "admin updates any listing",
			ctx:  hostCtx("admin-1", constant.RoleAdmin),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{ID: "p1", HostID: "host-1"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "other host is rejected",
			ctx:  hostCtx("host-2", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{ID: "p1", HostID: "host-1"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "not found",
			ctx:  hostCtx("host-1", constant.RoleHost),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Pool{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(tt.ctx, dto.UpdatePoolRequest{Price: &price}, "p1")

			if tt.wantCode != 0 {
				assert.True(t, failure.Is(err, tt.wantCode))

				return
			}

			assert.NoError(t, err)
		})
	}
}
