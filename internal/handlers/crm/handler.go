package crm

import (
	"context"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/internal/domains/crm/service"
	"poolhire/shared/constant"
	"poolhire/transport/http/middleware"
	"poolhire/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service    service.Crm
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Crm, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.RequireAPIKey).Post("/crm/sync", handler.Sync)
}

func (handler *Handler) scope(r *http.Request, name string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
}

// Sync runs one availability sync across every active CRM integration.
// @Summary Sync CRM availability
// @Description Triggered by an external scheduler. Per-pool failures are reported in results.
// @Tags CRM
// @Produce json
// @Param X-API-Key header string true "Internal API key"
// @Success 200 {object} dto.SyncResponse "Sync results"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crm/sync [post]
func (handler *Handler) Sync(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CrmSync")
	defer scope.End()

	res, err := handler.service.SyncAll(ctx)
	if err != nil {
		response.Fail(writer, scope, err, "failed to sync crm availability")

		return
	}

	response.WithRaw(writer, http.StatusOK, res)
}
