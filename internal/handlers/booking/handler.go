package booking

import (
	"context"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/booking/model"
	"poolhire/internal/domains/booking/model/dto"
	"poolhire/internal/domains/booking/service"
	"poolhire/shared/constant"
	gDto "poolhire/shared/dto"
	"poolhire/shared/failure"
	"poolhire/shared/validator"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
)

var sortableFields = []string{model.FieldBookingDate, model.FieldStatus, model.FieldTotalPrice, constant.FieldCreatedAt}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(bookings chi.Router) {
		bookings.Post("/quote", handler.Quote)
		bookings.Post("/", handler.CreateBooking)
		bookings.Get("/mybookings", handler.GetMyBookings)
		bookings.Get("/{id}", handler.GetBookingByID)
	})
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// Quote prices a booking without creating it.
// @Summary Quote a booking
// @Description Base pool price plus the selected extras, in minor units. Unknown extras are ignored.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Booking quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/quote [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "Quote")
	defer scope.End()

	var req dto.QuoteRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "invalid booking request")

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to quote booking")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateBooking creates a pending booking for the caller.
// @Summary Create a booking
// @Description The total is computed server-side from the pool price and selected extras.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "invalid booking request")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("booking created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyBookings lists the caller's bookings.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetMyBookings")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)
	params.RestrictSort(sortableFields...)

	page, err := handler.service.GetMine(ctx, params)
	if err != nil {
		response.Fail(w, scope, err, "failed to get bookings")

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// GetBookingByID retrieves one of the caller's bookings.
// @Summary Get a booking by ID
// @Description Bookings of other users are reported as not found.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if validator.ValidateVar(id, "uuid") != nil {
		response.Fail(w, scope, failure.NotFound("booking not found"), "failed to get booking by ID")

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(w, scope, err, "failed to get booking by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
