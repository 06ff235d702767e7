package handler

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mathy/dispatch"
	"github.com/lambda-feedback/mathy/internal/metrics"
	"github.com/lambda-feedback/mathy/models"
)

type DispatchHandlerParams struct {
	fx.In

	Handler dispatch.Handler
	Config  dispatch.Config
	Log     *zap.Logger

	// Metrics is only provided if the metrics route is enabled.
	Metrics *metrics.Recorder `optional:"true"`
}

func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		handler: params.Handler,
		config:  params.Config,
		metrics: params.Metrics,
		log:     params.Log,
	}
}

// DispatchHandler adapts net/http requests to the request dispatcher.
type DispatchHandler struct {
	handler dispatch.Handler
	config  dispatch.Config
	metrics *metrics.Recorder
	log     *zap.Logger
}

func (h *DispatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	start := time.Now()

	defer func() {
		if err := recover(); err != nil {
			h.recoverPanic(w, r, log, err)
		}
	}()

	request := dispatch.Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     dispatch.NewBodyReader(r.Body, h.config.MaxBodyBytes),
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	if h.metrics != nil {
		h.metrics.ObserveRequest(response.Operation, response.StatusCode, time.Since(start))
	}

	h.write(w, log, response)
}

func (h *DispatchHandler) write(w http.ResponseWriter, log *zap.Logger, response dispatch.Response) {
	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

func (h *DispatchHandler) recoverPanic(w http.ResponseWriter, r *http.Request, log *zap.Logger, recovered any) {
	log.Error("panic while handling request", zap.Any("panic", recovered))

	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.Scope().SetRequest(r)
	hub.RecoverWithContext(r.Context(), recovered)

	if h.metrics != nil {
		h.metrics.ObservePanic()
	}

	h.write(w, log, dispatch.Response{
		StatusCode: http.StatusInternalServerError,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(`{"error":"Internal Server Error"}`),
		Operation:  models.OperationNone,
	})
}
