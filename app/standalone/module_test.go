package standalone

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/mathy/dispatch"
	"github.com/lambda-feedback/mathy/handler"
	"github.com/lambda-feedback/mathy/internal/server"
)

func startServer(t *testing.T, routes handler.Config) string {
	var srv *server.HttpServer

	app := fxtest.New(t,
		fx.Supply(zaptest.NewLogger(t)),
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		dispatch.Module(dispatch.Config{MaxBodyBytes: dispatch.DefaultMaxBodyBytes}),
		Module(Config{
			HttpConfig: server.HttpConfig{Host: "127.0.0.1", Port: 0},
			Routes:     routes,
		}),
		fx.Populate(&srv),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return fmt.Sprintf("http://%s", srv.Addr())
}

func get(t *testing.T, url string) (int, string) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, string(body)
}

func TestModule_Dispatch(t *testing.T) {
	base := startServer(t, handler.Config{})

	status, body := get(t, base+"/factorial?n=5")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"result":120}`, body)

	status, body = get(t, base+"/health")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Not Found"}`, body)
}

func TestModule_OptionalRoutes(t *testing.T) {
	base := startServer(t, handler.Config{Health: true, Metrics: true})

	status, body := get(t, base+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	status, _ = get(t, base+"/fibonacci/10")
	assert.Equal(t, http.StatusOK, status)

	status, body = get(t, base+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `mathy_http_requests_total{operation="fibonacci",status="200"} 1`)
}

func TestModule_UncleanPaths(t *testing.T) {
	base := startServer(t, handler.Config{Health: true})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/fibonacci//5", http.StatusOK, `{"result":8}`},
		{"/fibonacci/../factorial", http.StatusUnprocessableEntity, `{"error":"Parameter n must be an integer"}`},
		{"//factorial?n=3", http.StatusNotFound, `{"error":"Not Found"}`},
		{"/health/", http.StatusNotFound, `{"error":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, err := http.Get(base + tt.path)
			require.NoError(t, err)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
			assert.JSONEq(t, tt.body, string(body))
		})
	}
}
