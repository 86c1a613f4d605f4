package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"poolhire/config"
	"poolhire/infras/jwt"
	jwtMocks "poolhire/infras/jwt/mocks"
	"poolhire/infras/otel/mocks"
	"poolhire/permissions"
	"poolhire/shared/constant"
	"poolhire/transport/http/middleware"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "internal-key"

func newProtectedRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	perms := permissions.Get()
	require.NotNil(t, perms)

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), perms, cfg)

	ok := func(writer http.ResponseWriter, request *http.Request) {
		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
		writer.Header().Set("X-Role", role)
		writer.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		r.Post("/webhooks/stripe", ok)
		r.Route("/bookings", func(r chi.Router) {
			r.Post("/quote", ok)
			r.Post("/", ok)
		})
		r.Route("/pools", func(r chi.Router) {
			r.Get("/", ok)
			r.Post("/", ok)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", ok)
		})
	})

	return router
}

func TestAuthRole_PermissionChain(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		token     string
		apiKey    string
		setupMock func(j *jwtMocks.MockJWT)
		wantCode  int
		wantRole  string
	}{
		{
			name:     "webhook is public",
			method:   http.MethodPost,
			path:     "/v1/webhooks/stripe",
			wantCode: http.StatusOK,
		},
		{
			name:     "quote is public",
			method:   http.MethodPost,
			path:     "/v1/bookings/quote",
			wantCode: http.StatusOK,
		},
		{
			name:     "pool listing is public",
			method:   http.MethodGet,
			path:     "/v1/pools",
			wantCode: http.StatusOK,
		},
		{
			name:     "booking needs a token",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "guest can book",
			method: http.MethodPost,
			path:   "/v1/bookings",
			token:  "guest-token",
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "guest-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1", Email: "guest@example.com", Role: constant.RoleGuest}, nil)
			},
			wantCode: http.StatusOK,
			wantRole: constant.RoleGuest,
		},
		{
			name:   "guest cannot create pools",
			method: http.MethodPost,
			path:   "/v1/pools",
			token:  "guest-token",
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "guest-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "user-1", Email: "guest@example.com", Role: constant.RoleGuest}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "host creates pools",
			method: http.MethodPost,
			path:   "/v1/pools",
			token:  "host-token",
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "host-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "host-1", Email: "host@example.com", Role: constant.RoleHost}, nil)
			},
			wantCode: http.StatusOK,
			wantRole: constant.RoleHost,
		},
		{
			name:   "users listing is admin only",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "host-token",
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "host-token", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "host-1", Email: "host@example.com", Role: constant.RoleHost}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/users",
			token:  "old-token",
			setupMock: func(j *jwtMocks.MockJWT) {
				j.EXPECT().ValidateToken(gomock.Any(), "old-token", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "internal api key bypasses user auth",
			method:   http.MethodGet,
			path:     "/v1/users",
			apiKey:   testAPIKey,
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/users",
			apiKey:   "guess",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(jwtService)
			}

			router := newProtectedRouter(t, jwtService)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.token)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantRole != "" {
				assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestAuthRole_RequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		apiKey     string
		wantCode   int
	}{
		{name: "matching key", configured: testAPIKey, apiKey: testAPIKey, wantCode: http.StatusOK},
		{name: "missing key", configured: testAPIKey, wantCode: http.StatusUnauthorized},
		{name: "wrong key", configured: testAPIKey, apiKey: "guess", wantCode: http.StatusForbidden},
		{name: "unconfigured key rejects everything", apiKey: "anything", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			authRole := middleware.NewAuthRoleMiddleware(nil, mocks.NewOtel(), nil, cfg)

			handler := authRole.RequireAPIKey(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/v1/crm/sync", nil)
			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
