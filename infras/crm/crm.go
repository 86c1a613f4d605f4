package crm

//go:generate go run go.uber.org/mock/mockgen -source=./crm.go -destination=./mocks/crm_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"poolhire/config"
	"poolhire/infras/otel"
	"poolhire/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelScopeName = "crm"

	syncAvailabilityPath = "/availability/sync"
	maxErrorBodyBytes    = 512
)

type SyncRequest struct {
	IntegrationID string `json:"integration_id"`
	Provider      string `json:"provider"`
	HostID        string `json:"host_id"`
	PoolID        string `json:"pool_id"`
	PoolName      string `json:"pool_name"`
	APIKey        string `json:"-"`
	APISecret     string `json:"-"`
}

type Client interface {
	SyncAvailability(ctx context.Context, req SyncRequest) error
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := time.Duration(cfg.External.CRM.TimeoutSeconds) * time.Second

	return &clientImpl{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimSuffix(cfg.External.CRM.BaseURL, "/"),
		timeout: timeout,
		otel:    otel,
	}
}

func (c *clientImpl) SyncAvailability(ctx context.Context, req SyncRequest) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".SyncAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"crm.provider":       req.Provider,
		"crm.integration_id": req.IntegrationID,
		"crm.pool_id":        req.PoolID,
	})

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal sync request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+req.Provider+syncAvailabilityPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAPIKey, req.APIKey)
	httpReq.Header.Set(constant.RequestHeaderAPISecret, req.APISecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("provider", req.Provider).Str("pool_id", req.PoolID).Msg("failed to reach crm")

		return fmt.Errorf("failed to call crm: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return fmt.Errorf("crm responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
