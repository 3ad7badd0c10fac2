package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/logger"
	"encly/internal/middleware"
)

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var r map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	return records
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	e := echo.New()
	e.Use(middleware.RequestLogger(base))
	e.GET("/health", func(c echo.Context) error {
		seenID = logger.RequestIDFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := resp.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seenID)

	records := logRecords(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, id, records[0]["request_id"])
	assert.Equal(t, float64(http.StatusOK), records[0]["status"])
	assert.Equal(t, "/health", records[0]["route"])
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(middleware.RequestLogger(base))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-supplied-id")
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, "client-supplied-id", resp.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLogger_ErrorLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantLevel string
	}{
		{name: "client error", err: echo.NewHTTPError(http.StatusNotFound, "missing"), wantCode: http.StatusNotFound, wantLevel: "WARN"},
		{name: "server error", err: assert.AnError, wantCode: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, nil))

			e := echo.New()
			e.Use(middleware.RequestLogger(base))
			e.GET("/links", func(c echo.Context) error {
				return tt.err
			})

			resp := httptest.NewRecorder()
			e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/links", nil))

			assert.Equal(t, tt.wantCode, resp.Code)
			records := logRecords(t, &buf)
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, float64(tt.wantCode), records[0]["status"])
			assert.Contains(t, records[0], "error")
		})
	}
}
