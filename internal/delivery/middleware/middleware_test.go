package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trajmatch/config"
	deliverycontext "trajmatch/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/echo-id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/api/v1/simulation", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("client id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo-id", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-42")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-42", rec.Body.String())
		assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo-id", nil))

		assert.NotEmpty(t, rec.Body.String())
		assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	t.Run("request carries request id", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		req := httptest.NewRequest(http.MethodGet, "/echo-id", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")

		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"request_id":"abc"`)
		assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
	})

	t.Run("status polling is quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/simulation", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("status polling is logged in debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/simulation", nil))

		assert.Contains(t, buf.String(), "HTTP Request")
	})

	t.Run("not found warns", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}
