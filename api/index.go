package handler

import (
	"net/http"
	"poolhire/config"
	"poolhire/di"
	"poolhire/shared/logger"
	"sync"
)

var service = sync.OnceValue(func() http.Handler {
	cfg := config.Get()

	logger.Setup(cfg, "serverless")

	return di.InitializeService()
})

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	service().ServeHTTP(w, r)
}
