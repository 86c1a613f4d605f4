package pool_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"poolhire/infras/otel/mocks"
	"poolhire/internal/domains/pool/model"
	"poolhire/internal/domains/pool/model/dto"
	serviceMocks "poolhire/internal/domains/pool/service/mocks"
	"poolhire/internal/handlers/pool"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*serviceMocks.MockPool, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockPool(ctrl)

	handler := pool.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func filterFields(group gDto.FilterGroup) []string {
	var fields []string

	for _, item := range group.Filters {
		switch f := item.(type) {
		case gDto.Filter:
			fields = append(fields, f.Field)
		case gDto.FilterGroup:
			fields = append(fields, filterFields(f)...)
		}
	}

	return fields
}

func TestHandler_GetPools(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantSortBy  string
		wantSortDir string
		wantFields  []string
	}{
		{
			name:        "defaults",
			query:       "",
			wantSortBy:  constant.DefaultValueSortBy,
			wantSortDir: constant.DefaultValueSortDir,
			wantFields:  []string{model.FieldIsActive},
		},
		{
			name:        "whitelisted sort",
			query:       "?sort_by=price&sort_dir=asc",
			wantSortBy:  model.FieldPrice,
			wantSortDir: gDto.SortDirAsc,
			wantFields:  []string{model.FieldIsActive},
		},
		{
			name:        "unknown sort column is replaced",
			query:       "?sort_by=password&sort_dir=asc",
			wantSortBy:  constant.DefaultValueSortBy,
			wantSortDir: constant.DefaultValueSortDir,
			wantFields:  []string{model.FieldIsActive},
		},
		{
			name:        "all filters",
			query:       "?search=lido&location=london&min_price=1000&max_price=9000&host_id=host-1",
			wantSortBy:  constant.DefaultValueSortBy,
			wantSortDir: constant.DefaultValueSortDir,
			wantFields: []string{
				model.FieldIsActive,
				model.FieldName,
				model.FieldDescription,
				model.FieldLocation,
				model.FieldPrice,
				model.FieldPrice,
				model.FieldHostID,
			},
		},
		{
			name:        "unparsable price is ignored",
			query:       "?min_price=cheap",
			wantSortBy:  constant.DefaultValueSortBy,
			wantSortDir: constant.DefaultValueSortDir,
			wantFields:  []string{model.FieldIsActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPoolsResponse, error) {
					assert.Equal(t, tt.wantSortBy, params.SortBy)
					assert.Equal(t, tt.wantSortDir, params.SortDir)
					assert.Equal(t, constant.DefaultValuePage, params.Page)
					assert.Equal(t, tt.wantFields, filterFields(filter))

					return dto.GetPoolsResponse{Pools: []dto.PoolResponse{{ID: "pool-1"}}, TotalData: 1, TotalPage: 1}, nil
				})

			req := httptest.NewRequest(http.MethodGet, "/pools/"+tt.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"id":"pool-1"`)
		})
	}
}

const poolID = "3c8e5a4b-1f2d-4b7a-9c6e-2a1d0f9b8e75"

func TestHandler_GetPoolByID(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *serviceMocks.MockPool)
		wantCode  int
	}{
		{
			name: "found",
			path: "/pools/" + poolID,
			setupMock: func(svc *serviceMocks.MockPool) {
				svc.EXPECT().Get(gomock.Any(), poolID).Return(dto.PoolResponse{ID: poolID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			path: "/pools/" + poolID,
			setupMock: func(svc *serviceMocks.MockPool) {
				svc.EXPECT().Get(gomock.Any(), poolID).Return(dto.PoolResponse{}, failure.NotFound("pool"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "malformed id never reaches the service",
			path:      "/pools/pool-1",
			setupMock: func(_ *serviceMocks.MockPool) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetPoolExtras(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetExtras(gomock.Any(), poolID).Return(dto.GetExtrasResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/pools/"+poolID+"/extras", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/pools/pool-1/extras", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_CreatePool(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockPool)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"name":"Lido","location":"London","price":6500,"capacity":8}`,
			setupMock: func(svc *serviceMocks.MockPool) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.PoolResponse{ID: "pool-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing name",
			body:      `{"location":"London","price":6500}`,
			setupMock: func(_ *serviceMocks.MockPool) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "negative price",
			body:      `{"name":"Lido","location":"London","price":-1}`,
			setupMock: func(_ *serviceMocks.MockPool) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/pools/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdatePool(t *testing.T) {
	t.Run("not the owner", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			Update(gomock.Any(), gomock.Any(), poolID).
			Return(failure.Forbidden("only the owning host can update this pool"))

		req := httptest.NewRequest(http.MethodPatch, "/pools/"+poolID, strings.NewReader(`{"name":"Lido"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/pools/pool-1", strings.NewReader(`{"name":"Lido"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
