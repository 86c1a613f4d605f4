package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/payment/model/dto"
	"poolhire/internal/domains/payment/service"
	"poolhire/shared/constant"
	"poolhire/shared/failure"
	"poolhire/shared/validator"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{service: service, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/payments/intent", handler.CreateIntent)
	router.Post("/webhooks/stripe", handler.StripeWebhook)
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// CreateIntent opens a payment intent for one of the caller's bookings.
// @Summary Create a payment intent
// @Description Amount is in major units (e.g. 65.00). The platform fee is split off server-side.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateIntentRequest true "Create Intent Request"
// @Success 201 {object} response.Data[dto.CreateIntentResponse] "Payment intent created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/intent [post]
// @Security BearerAuth
func (handler *Handler) CreateIntent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CreateIntent")
	defer scope.End()

	var req dto.CreateIntentRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.CreateIntent(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to create payment intent")

		return
	}

	scope.AddEvent("Payment intent created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// StripeWebhook receives payment provider events.
// @Summary Stripe webhook
// @Description Verified with the Stripe-Signature header. Redeliveries are applied at most once.
// @Tags Payment
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} response.Message "Event received"
// @Failure 400 {object} response.Error
// @Failure 413 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/webhooks/stripe [post]
func (handler *Handler) StripeWebhook(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "StripeWebhook")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, constant.RequestMaxWebhookBody))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to read webhook body")

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.WithMessage(writer, http.StatusRequestEntityTooLarge, "payload too large")

			return
		}

		response.WithError(writer, failure.BadRequestFromString("unable to read payload"))

		return
	}

	signature := request.Header.Get(constant.RequestHeaderStripeSignature)

	if err := handler.service.HandleWebhook(ctx, payload, signature); err != nil {
		response.Fail(writer, scope, err, "webhook rejected")

		return
	}

	response.WithMessage(writer, http.StatusOK, "received")
}
