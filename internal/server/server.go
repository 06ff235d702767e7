package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger

	Shutdowner fx.Shutdowner `optional:"true"`
}

type HttpServer struct {
	ctx        context.Context
	addr       string
	server     *http.Server
	log        *zap.Logger
	shutdowner fx.Shutdowner

	mu       sync.Mutex
	listener net.Listener
}

// NewHandler routes requests to the handler registered for their exact
// path. The handler registered for "/" receives every other path as-is,
// without cleaning or redirects. Cleartext HTTP/2 is enabled on demand.
func NewHandler(config HttpConfig, handlers []*HttpHandler) http.Handler {
	router := &router{exact: make(map[string]http.Handler, len(handlers))}

	for _, handler := range handlers {
		if handler.Pattern == "/" {
			router.fallback = handler.Handler
			continue
		}
		router.exact[handler.Pattern] = handler.Handler
	}

	if config.H2c {
		return h2c.NewHandler(router, &http2.Server{})
	}

	return router
}

type router struct {
	exact    map[string]http.Handler
	fallback http.Handler
}

func (rt *router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if handler, ok := rt.exact[r.URL.Path]; ok {
		handler.ServeHTTP(w, r)
		return
	}

	if rt.fallback != nil {
		rt.fallback.ServeHTTP(w, r)
		return
	}

	http.NotFound(w, r)
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	addr := net.JoinHostPort(params.Config.Host, fmt.Sprint(params.Config.Port))

	server := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(params.Config, params.Handlers),
		ReadHeaderTimeout: params.Config.ReadHeaderTimeout,
	}

	return &HttpServer{
		ctx:        params.Context,
		addr:       addr,
		server:     server,
		log:        params.Logger,
		shutdowner: params.Shutdowner,
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := server.Listen(ctx); err != nil {
				return err
			}
			go server.Serve()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// Listen binds the listening socket.
func (s *HttpServer) Listen(ctx context.Context) error {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.With(zap.Error(err)).Error("failed to listen")
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *HttpServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// Serve accepts connections until the server is shut down. A serve
// failure shuts the application down with exit code 1.
func (s *HttpServer) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return errors.New("server is not listening")
	}

	err := s.server.Serve(listener)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	s.log.With(zap.Error(err)).Error("failed to serve")

	if s.shutdowner != nil {
		s.shutdowner.Shutdown(fx.ExitCode(1))
	}

	return err
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	return nil
}
