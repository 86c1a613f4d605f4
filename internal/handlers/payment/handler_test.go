package payment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"poolhire/infras/otel/mocks"
	"poolhire/internal/domains/payment/model/dto"
	serviceMocks "poolhire/internal/domains/payment/service/mocks"
	"poolhire/internal/handlers/payment"
	"poolhire/shared/constant"
	"poolhire/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*serviceMocks.MockPayment, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockPayment(ctrl)

	handler := payment.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateIntent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockPayment)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"booking_id":"9b2f7c1e-4d3a-4f6b-8e21-5c0a7d9e3f14","amount":65.00}`,
			setupMock: func(svc *serviceMocks.MockPayment) {
				svc.EXPECT().
					CreateIntent(gomock.Any(), dto.CreateIntentRequest{BookingID: "9b2f7c1e-4d3a-4f6b-8e21-5c0a7d9e3f14", Amount: 65}).
					Return(dto.CreateIntentResponse{ClientSecret: "pi_1_secret", PaymentID: "payment-1"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"client_secret":"pi_1_secret"`,
		},
		{
			name:      "missing booking id",
			body:      `{"amount":65.00}`,
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed booking id",
			body:      `{"booking_id":"booking-1","amount":65.00}`,
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `booking_id must be a valid uuid`,
		},
		{
			name:      "amount over maximum",
			body:      `{"booking_id":"9b2f7c1e-4d3a-4f6b-8e21-5c0a7d9e3f14","amount":1e17}`,
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non positive amount",
			body:      `{"booking_id":"9b2f7c1e-4d3a-4f6b-8e21-5c0a7d9e3f14","amount":0}`,
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"booking_id":`,
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "provider unavailable",
			body: `{"booking_id":"9b2f7c1e-4d3a-4f6b-8e21-5c0a7d9e3f14","amount":65.00}`,
			setupMock: func(svc *serviceMocks.MockPayment) {
				svc.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any()).
					Return(dto.CreateIntentResponse{}, failure.UpstreamFailure("unable to create payment"))
			},
			wantCode: http.StatusBadGateway,
			wantBody: `"error":"unable to create payment"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/payments/intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_StripeWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)

	tests := []struct {
		name      string
		body      []byte
		signature string
		setupMock func(svc *serviceMocks.MockPayment)
		wantCode  int
	}{
		{
			name:      "raw body and signature reach the service",
			body:      payload,
			signature: "t=1,v1=abc",
			setupMock: func(svc *serviceMocks.MockPayment) {
				svc.EXPECT().
					HandleWebhook(gomock.Any(), gomock.Any(), "t=1,v1=abc").
					DoAndReturn(func(_ context.Context, got []byte, _ string) error {
						assert.Equal(t, payload, got)

						return nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "bad signature",
			body:      payload,
			signature: "forged",
			setupMock: func(svc *serviceMocks.MockPayment) {
				svc.EXPECT().
					HandleWebhook(gomock.Any(), gomock.Any(), "forged").
					Return(failure.InvalidSignature("invalid signature"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "processing failure asks for redelivery",
			body:      payload,
			signature: "t=1,v1=abc",
			setupMock: func(svc *serviceMocks.MockPayment) {
				svc.EXPECT().
					HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(failure.PersistenceFailure("unable to process event"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "oversized body",
			body:      bytes.Repeat([]byte("a"), constant.RequestMaxWebhookBody+1),
			signature: "t=1,v1=abc",
			setupMock: func(_ *serviceMocks.MockPayment) {},
			wantCode:  http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderStripeSignature, tt.signature)

			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "received", body["message"])
			}
		})
	}
}
