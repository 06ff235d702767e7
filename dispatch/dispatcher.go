package dispatch

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/mathy/dispatch/schema"
	"github.com/lambda-feedback/mathy/models"
)

// Handler is the interface for handling normalized requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// HandlerFunc computes the result for a matched request. A returned error
// is converted into an error response.
type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Route binds a request predicate to a handler.
type Route struct {
	Operation models.Operation
	Match     func(method, path string) bool
	Handle    HandlerFunc
}

// HandlerParams defines the dependencies for the dispatcher.
type HandlerParams struct {
	fx.In

	Log *zap.Logger
}

// Dispatcher routes requests through an ordered route table. The first
// matching route handles the request.
type Dispatcher struct {
	routes  []Route
	schemas *schema.Schema
	log     *zap.Logger
}

var _ Handler = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher serving factorial, fibonacci and mean.
func NewDispatcher(params HandlerParams) (*Dispatcher, error) {
	schemas, err := schema.New()
	if err != nil {
		return nil, err
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		schemas: schemas,
		log:     log,
	}

	d.routes = []Route{
		{
			Operation: models.OperationFactorial,
			Match: func(method, path string) bool {
				return method == http.MethodGet && path == "/factorial"
			},
			Handle: func(ctx context.Context, req Request) (any, error) {
				return factorial(ctx, ParseQuery(req.RawQuery))
			},
		},
		{
			Operation: models.OperationFibonacci,
			Match: func(method, path string) bool {
				return method == http.MethodGet && strings.HasPrefix(path, "/fibonacci")
			},
			Handle: func(ctx context.Context, req Request) (any, error) {
				return fibonacci(ctx, req.Path)
			},
		},
		{
			Operation: models.OperationMean,
			Match: func(method, path string) bool {
				return (method == http.MethodGet || method == http.MethodPost) && path == "/mean"
			},
			Handle: func(ctx context.Context, req Request) (any, error) {
				return d.mean(ctx, req.Body)
			},
		},
	}

	return d, nil
}

// Routes returns the route table in match order.
func (d *Dispatcher) Routes() []Route {
	return append([]Route(nil), d.routes...)
}

// Handle routes the request and serializes the outcome.
func (d *Dispatcher) Handle(ctx context.Context, req Request) Response {
	log := d.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	route, ok := d.match(req)
	if !ok {
		log.Debug("route not found")
		resp := newErrorResponse(ErrNotFound)
		resp.Operation = models.OperationNone
		return resp
	}

	log = log.With(zap.Stringer("operation", route.Operation))

	var resp Response
	if result, err := route.Handle(ctx, req); err != nil {
		log.Debug("request rejected", zap.Error(err))
		resp = newErrorResponse(err)
	} else {
		resp = newResultResponse(result)
	}

	resp.Operation = route.Operation

	if err := d.validate(resp.Body); err != nil {
		log.Error("invalid response", zap.Error(err))
		resp = newErrorResponse(err)
		resp.Operation = route.Operation
	}

	log.Debug("request handled", zap.Int("status", resp.StatusCode))

	return resp
}

func (d *Dispatcher) match(req Request) (Route, bool) {
	for _, route := range d.routes {
		if route.Match(req.Method, req.Path) {
			return route, true
		}
	}

	return Route{}, false
}
