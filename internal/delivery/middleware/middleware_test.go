package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	domainerrors "canteen/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestIDMiddleware(logger)

	t.Run("keeps client supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		var ctxID string
		err := m.Process(func(c echo.Context) error {
			ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "client-id", ctxID)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})

	t.Run("replaces unusable client id", func(t *testing.T) {
		for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", maxRequestIDLength+1)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, bad)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	newContext := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/api/canteens?keyword=north", nil)

		return echo.New().NewContext(req, httptest.NewRecorder())
	}

	t.Run("debug logs status from app error", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

		err := m.Handle(func(echo.Context) error {
			return domainerrors.NewResourceNotFoundError(domainerrors.ResourceCanteen, "x")
		})(newContext())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "status=404")
		assert.Contains(t, buf.String(), `query="keyword=north"`)
	})

	t.Run("silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

		require.NoError(t, m.Handle(func(echo.Context) error { return nil })(newContext()))
		assert.Empty(t, buf.String())
	})
}
