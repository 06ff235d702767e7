package handler

import (
	"net/http"

	"github.com/lambda-feedback/mathy/internal/metrics"
	"github.com/lambda-feedback/mathy/internal/server"
)

func NewDispatchRoute(handler *DispatchHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("/health", http.HandlerFunc(HealthHandler))
}

func NewMetricsRoute(recorder *metrics.Recorder) server.HttpHandlerResult {
	return server.AsHttpHandler("/metrics", recorder.Handler())
}
