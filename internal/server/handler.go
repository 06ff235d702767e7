package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the server mux under Pattern.
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

// HttpHandlerResult contributes a handler to the "handlers" value group
// consumed by the http server and the lambda handler.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

func AsHttpHandler(pattern string, handler http.Handler) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}
