package user

import (
	"context"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/user/model"
	"poolhire/internal/domains/user/model/dto"
	"poolhire/internal/domains/user/service"
	"poolhire/shared"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/validator"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldEmail, model.FieldLevel, constant.FieldCreatedAt}

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(users chi.Router) {
		users.Get("/me", handler.GetMe)
		users.Patch("/me", handler.UpdateMe)
		users.Get("/", handler.GetUsers)
		users.Get("/{id}", handler.GetUserByID)
		users.Patch("/{id}", handler.UpdateUser)
	})
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// GetMe returns the caller's profile.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetMe")
	defer scope.End()

	profile, err := handler.service.Me(ctx)
	if err != nil {
		response.Fail(w, scope, err, "failed to get profile")

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpdateMe lets a user edit their own name and avatar.
// @Summary Update my profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.Message "Profile updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "UpdateMe")
	defer scope.End()

	var req dto.UpdateProfileRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "invalid profile update")

		return
	}

	if err := handler.service.UpdateMe(ctx, req); err != nil {
		response.Fail(w, scope, err, "failed to update profile")

		return
	}

	response.WithMessage(w, http.StatusOK, "Profile updated successfully")
}

// GetUsers pages through accounts.
// @Summary List users
// @Description Admin only.
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Email contains"
// @Param level query string false "Exact role"
// @Param active query bool false "Account state"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "Users page"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetUsers")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)
	params.RestrictSort(sortableFields...)

	query := r.URL.Query()
	filter := dto.ListFilter{
		Email:  query.Get(model.FieldEmail),
		Level:  query.Get(model.FieldLevel),
		Active: shared.ConvertStringToBool(query.Get(model.FieldActive)),
	}

	page, err := handler.service.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		response.Fail(w, scope, err, "failed to list users")

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// GetUserByID returns one account.
// @Summary Get a user
// @Description Admin only.
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User"
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetUserByID")
	defer scope.End()

	found, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to get user")

		return
	}

	response.WithJSON(w, http.StatusOK, found)
}

// UpdateUser changes a user's role or account state.
// @Summary Update a user
// @Description Admin only. Used to promote guests to hosts.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Role and state"
// @Success 200 {object} response.Message "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "UpdateUser")
	defer scope.End()

	var req dto.UpdateUserRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "invalid user update")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to update user")

		return
	}

	response.WithMessage(w, http.StatusOK, "User updated successfully")
}
