package pool

import (
	"context"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/pool/model"
	"poolhire/internal/domains/pool/model/dto"
	"poolhire/internal/domains/pool/service"
	"poolhire/shared"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"
	"poolhire/shared/validator"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	queryParamSearch   = "search"
	queryParamLocation = "location"
	queryParamMinPrice = "min_price"
	queryParamMaxPrice = "max_price"
	queryParamHostID   = "host_id"
)

var sortableFields = []string{model.FieldName, model.FieldPrice, model.FieldCapacity, constant.FieldCreatedAt}

type Handler struct {
	service service.Pool
	otel    otel.Otel
}

func New(service service.Pool, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pools", func(pools chi.Router) {
		pools.Post("/", handler.CreatePool)
		pools.Get("/", handler.GetPools)
		pools.Get("/{id}", handler.GetPoolByID)
		pools.Get("/{id}/extras", handler.GetPoolExtras)
		pools.Patch("/{id}", handler.UpdatePool)
	})
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// CreatePool handles the creation of a new pool listing.
// @Summary Create a new pool
// @Description Create a pool listing owned by the calling host. Prices are in minor units.
// @Tags Pool
// @Accept json
// @Produce json
// @Param request body dto.CreatePoolRequest true "Create Pool Request"
// @Success 201 {object} response.Data[dto.PoolResponse] "Pool created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pools [post]
// @Security BearerAuth
func (handler *Handler) CreatePool(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CreatePool")
	defer scope.End()

	var req dto.CreatePoolRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create pool")

		return
	}

	scope.AddEvent("Pool created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPools lists active pools.
// @Summary Get all pools
// @Description Browse active pools with optional search, location, price and host filters.
// @Tags Pool
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Match on name or description"
// @Param location query string false "Filter by location"
// @Param min_price query integer false "Minimum base price (minor units)"
// @Param max_price query integer false "Maximum base price (minor units)"
// @Param host_id query string false "Filter by host"
// @Success 200 {object} response.Data[dto.GetPoolsResponse] "List of pools"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pools [get]
func (handler *Handler) GetPools(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetPools")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)
	params.RestrictSort(sortableFields...)

	query := r.URL.Query()

	filter := dto.ListFilter{
		Search:   query.Get(queryParamSearch),
		Location: query.Get(queryParamLocation),
		MinPrice: shared.ConvertStringToInt64(query.Get(queryParamMinPrice)),
		MaxPrice: shared.ConvertStringToInt64(query.Get(queryParamMaxPrice)),
		HostID:   query.Get(queryParamHostID),
	}

	pools, err := handler.service.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		response.Fail(w, scope, err, "failed to get pools")

		return
	}

	scope.AddEvent("Pools retrieved successfully")

	response.WithJSON(w, http.StatusOK, pools)
}

// GetPoolByID retrieves a pool by its ID.
// @Summary Get a pool by ID
// @Tags Pool
// @Produce json
// @Param id path string true "Pool ID"
// @Success 200 {object} response.Data[dto.PoolResponse] "Pool details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pools/{id} [get]
func (handler *Handler) GetPoolByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetPoolByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Fail(w, scope, failure.NotFound("pool not found"), "failed to get pool by ID")

		return
	}

	pool, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get pool by ID")

		return
	}

	scope.AddEvent("Pool retrieved successfully")

	response.WithJSON(w, http.StatusOK, pool)
}

// GetPoolExtras lists the active extras of a pool.
// @Summary Get pool extras
// @Tags Pool
// @Produce json
// @Param id path string true "Pool ID"
// @Success 200 {object} response.Data[dto.GetExtrasResponse] "Pool extras"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pools/{id}/extras [get]
func (handler *Handler) GetPoolExtras(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetPoolExtras")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Fail(w, scope, failure.NotFound("pool not found"), "failed to get pool extras")

		return
	}

	extras, err := handler.service.GetExtras(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get pool extras")

		return
	}

	response.WithJSON(w, http.StatusOK, extras)
}

// UpdatePool updates an existing pool by its ID.
// @Summary Update a pool by ID
// @Description Only the owning host or an admin may update a pool.
// @Tags Pool
// @Accept json
// @Produce json
// @Param id path string true "Pool ID"
// @Param request body dto.UpdatePoolRequest true "Update Pool Request"
// @Success 200 {object} response.Message "Pool updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pools/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePool(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "UpdatePool")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Fail(w, scope, failure.NotFound("pool not found"), "failed to update pool")

		return
	}

	var req dto.UpdatePoolRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "invalid request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update pool")

		return
	}

	scope.AddEvent("Pool updated successfully")

	response.WithMessage(w, http.StatusOK, "Pool updated successfully")
}
