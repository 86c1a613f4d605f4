package auth

import (
	"context"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/auth/model/dto"
	"poolhire/internal/domains/auth/service"
	"poolhire/shared/constant"
	"poolhire/shared/validator"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", handler.Register)
		auth.Post("/login", handler.Login)
		auth.Post("/refresh-token", handler.RefreshToken)
		auth.Post("/change-password", handler.ChangePassword)
	})
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// Register creates a guest or host account.
// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Description Register a guest or host account. Role defaults to guest.
// @Param request body dto.RegisterRequest true "Email, password and optional role"
// @Success 201 {object} response.Message "Account created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Register")
	defer scope.End()

	var body dto.RegisterRequest
	if err := validator.Validate(r.Body, &body); err != nil {
		response.Fail(w, scope, err, "invalid register request")

		return
	}

	if err := handler.service.Register(ctx, body); err != nil {
		response.Fail(w, scope, err, "failed to register user")

		return
	}

	response.WithMessage(w, http.StatusCreated, "Account created")
}

// Login exchanges credentials for a token pair.
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.TokenResponse] "Token pair"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Login")
	defer scope.End()

	var body dto.LoginRequest
	if err := validator.Validate(r.Body, &body); err != nil {
		response.Fail(w, scope, err, "invalid login request")

		return
	}

	res, err := handler.service.Login(ctx, body)
	if err != nil {
		response.Fail(w, scope, err, "failed to login user")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken trades a refresh token for a new pair.
// @Summary Rotate tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Current refresh token"
// @Success 200 {object} response.Data[dto.TokenResponse] "Token pair"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "RefreshToken")
	defer scope.End()

	var body dto.RefreshTokenRequest
	if err := validator.Validate(r.Body, &body); err != nil {
		response.Fail(w, scope, err, "invalid refresh request")

		return
	}

	res, err := handler.service.RefreshToken(ctx, body)
	if err != nil {
		response.Fail(w, scope, err, "failed to refresh token")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword replaces the caller's password after checking the current one.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.Message "Password changed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "ChangePassword")
	defer scope.End()

	var body dto.ChangePasswordRequest
	if err := validator.Validate(r.Body, &body); err != nil {
		response.Fail(w, scope, err, "invalid change password request")

		return
	}

	if err := handler.service.ChangePassword(ctx, body); err != nil {
		response.Fail(w, scope, err, "failed to change password")

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed")
}
