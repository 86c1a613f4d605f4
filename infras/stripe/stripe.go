package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"poolhire/config"
	"poolhire/infras/otel"
	"poolhire/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	stripeGo "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	otelScopeName = "stripe"

	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"

	eventObjectPaymentIntent = "payment_intent."
)

var ErrInvalidSignature = errors.New("invalid stripe signature")

type PaymentIntentRequest struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
	Metadata     map[string]string
	FailureMsg   string
}

// Event is a verified webhook delivery. PaymentIntent is only populated for payment_intent.* types.
type Event struct {
	ID            string
	Type          string
	PaymentIntent PaymentIntent
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntent, error)
	ConstructEvent(ctx context.Context, payload []byte, signature string) (Event, error)
}

type gatewayImpl struct {
	client        *client.API
	webhookSecret string
	otel          otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.External.Stripe.TimeoutSeconds) * time.Second,
	}

	backendConfig := func() *stripeGo.BackendConfig {
		return &stripeGo.BackendConfig{
			HTTPClient:    httpClient,
			LeveledLogger: leveledLogger{},
		}
	}

	api := &client.API{}
	api.Init(cfg.External.Stripe.SecretKey, &stripeGo.Backends{
		API:     stripeGo.GetBackendWithConfig(stripeGo.APIBackend, backendConfig()),
		Connect: stripeGo.GetBackendWithConfig(stripeGo.ConnectBackend, backendConfig()),
		Uploads: stripeGo.GetBackendWithConfig(stripeGo.UploadsBackend, backendConfig()),
	})

	log.Info().Int("timeout_seconds", cfg.External.Stripe.TimeoutSeconds).Msg("Stripe client initialized")

	return &gatewayImpl{
		client:        api,
		webhookSecret: cfg.External.Stripe.WebhookSecret,
		otel:          otel,
	}
}

func (g *gatewayImpl) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (res PaymentIntent, err error) {
	ctx, scope := g.otel.NewScope(ctx, otelScopeName, otelScopeName+".CreatePaymentIntent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"payment.amount":   req.Amount,
		"payment.currency": req.Currency,
	})

	params := &stripeGo.PaymentIntentParams{
		Amount:   stripeGo.Int64(req.Amount),
		Currency: stripeGo.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripeGo.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeGo.Bool(true),
		},
	}
	params.Context = ctx

	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripeGo.Error
		if errors.As(err, &stripeErr) {
			log.Error().Err(err).Str("code", string(stripeErr.Code)).Str("request_id", stripeErr.RequestID).Msg("stripe rejected payment intent")
		} else {
			log.Error().Err(err).Msg("failed to reach stripe")
		}

		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return fromPaymentIntent(intent), nil
}

func (g *gatewayImpl) ConstructEvent(ctx context.Context, payload []byte, signature string) (res Event, err error) {
	_, scope := g.otel.NewScope(ctx, otelScopeName, otelScopeName+".ConstructEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Warn().Err(err).Msg("stripe webhook signature verification failed")

		return res, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	res.ID = event.ID
	res.Type = string(event.Type)

	scope.SetAttributes(map[string]any{
		"stripe.event_id":   res.ID,
		"stripe.event_type": res.Type,
	})

	if !strings.HasPrefix(res.Type, eventObjectPaymentIntent) || event.Data == nil {
		return res, nil
	}

	var intent stripeGo.PaymentIntent
	if err = json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Error().Err(err).Str("event_id", res.ID).Msg("failed to decode payment intent from event")

		return res, fmt.Errorf("failed to decode payment intent: %w", err)
	}

	res.PaymentIntent = fromPaymentIntent(&intent)

	return res, nil
}

func fromPaymentIntent(intent *stripeGo.PaymentIntent) PaymentIntent {
	res := PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		Metadata:     intent.Metadata,
	}

	if intent.LastPaymentError != nil {
		res.FailureMsg = intent.LastPaymentError.Msg
	}

	if res.Metadata == nil {
		res.Metadata = map[string]string{}
	}

	return res
}

type leveledLogger struct{}

func (leveledLogger) Debugf(format string, v ...interface{}) {
	log.Debug().Str(constant.OtelExternalScopeName, otelScopeName).Msgf(format, v...)
}

func (leveledLogger) Infof(format string, v ...interface{}) {
	log.Info().Str(constant.OtelExternalScopeName, otelScopeName).Msgf(format, v...)
}

func (leveledLogger) Warnf(format string, v ...interface{}) {
	log.Warn().Str(constant.OtelExternalScopeName, otelScopeName).Msgf(format, v...)
}

func (leveledLogger) Errorf(format string, v ...interface{}) {
	log.Error().Str(constant.OtelExternalScopeName, otelScopeName).Msgf(format, v...)
}
