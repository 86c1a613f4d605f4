package auth_test

import (
	"net/http"
	"net/http/httptest"
	"poolhire/infras/otel/mocks"
	"poolhire/internal/domains/auth/model/dto"
	serviceMocks "poolhire/internal/domains/auth/service/mocks"
	"poolhire/internal/handlers/auth"
	"poolhire/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Endpoints(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		setupMock func(svc *serviceMocks.MockAuth)
		wantCode  int
		wantBody  string
	}{
		{
			name: "register host",
			path: "/auth/register",
			body: `{"email":"host@example.com","password":"s3cretpass","role":"host"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "register as admin is rejected",
			path:      "/auth/register",
			body:      `{"email":"root@example.com","password":"s3cretpass","role":"admin"}`,
			setupMock: func(_ *serviceMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			path: "/auth/register",
			body: `{"email":"host@example.com","password":"s3cretpass"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(failure.Conflict("email already registered"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "login",
			path: "/auth/login",
			body: `{"email":"guest@example.com","password":"s3cretpass"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().
					Login(gomock.Any(), dto.LoginRequest{Email: "guest@example.com", Password: "s3cretpass"}).
					Return(dto.LoginResponse{AccessToken: "access"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"access_token":"access"`,
		},
		{
			name:      "login with malformed email",
			path:      "/auth/login",
			body:      `{"email":"guest","password":"s3cretpass"}`,
			setupMock: func(_ *serviceMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "refresh without token",
			path:      "/auth/refresh-token",
			body:      `{}`,
			setupMock: func(_ *serviceMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "change password",
			path: "/auth/change-password",
			body: `{"current_password":"old-pass","new_password":"n3wpassword"}`,
			setupMock: func(svc *serviceMocks.MockAuth) {
				svc.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "change password too short",
			path:      "/auth/change-password",
			body:      `{"current_password":"old-pass","new_password":"short"}`,
			setupMock: func(_ *serviceMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "new password equals current",
			path:      "/auth/change-password",
			body:      `{"current_password":"s3cretpass","new_password":"s3cretpass"}`,
			setupMock: func(_ *serviceMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  "new_password must be different from the current value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := serviceMocks.NewMockAuth(ctrl)
			tt.setupMock(svc)

			handler := auth.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
