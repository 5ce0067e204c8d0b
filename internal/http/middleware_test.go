package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qrmenu-analytics/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedRouter returns a router with the full middleware chain logging into buf.
func newBufferedRouter(t *testing.T, buf *bytes.Buffer) *chi.Mux {
	t.Helper()
	logger, err := loggers.NewWithWriter("debug", buf)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	return router
}

// logLines decodes the JSON log lines carrying msg.
func logLines(t *testing.T, buf *bytes.Buffer, msg string) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		if line["message"] == msg {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestMwRequestLogger_RequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		providedID string
	}{
		{name: "generated when missing"},
		{name: "kept when provided", providedID: "custom-request-id-12345"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := mwRequestLogger(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Header.Get(headerRequestID)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
			if tt.providedID != "" {
				req.Header.Set(headerRequestID, tt.providedID)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.providedID != "" {
				assert.Equal(t, tt.providedID, seen)
			} else {
				assert.Len(t, seen, 26, "request ID should be a ULID")
			}
		})
	}
}

func TestSetupMiddleware_AccessLogCarriesTenantAndRoute(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := newBufferedRouter(t, &buf)
	router.Get("/analytics/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Post("/events", func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, r, errInvalidQuery("bad", nil))
	})

	req := httptest.NewRequest(http.MethodGet, "/analytics/leaderboard?restaurantId=rst-1&page=2", nil)
	req.Header.Set(headerRequestID, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/events", nil)
	req.Header.Set(headerRequestID, "req-2")
	req.Header.Set(headerRestaurantID, "rst-2")
	router.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, &buf, "request completed")
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "req-1", lines[0][loggers.FieldRequestID])
	assert.Equal(t, "rst-1", lines[0][loggers.FieldRestaurantID])
	assert.Equal(t, "/analytics/leaderboard", lines[0][loggers.FieldHttpRoute])
	assert.Equal(t, "restaurantId=rst-1&page=2", lines[0][loggers.FieldHttpQuery])
	assert.EqualValues(t, 200, lines[0][loggers.FieldHttpStatus])
	assert.EqualValues(t, 2, lines[0][loggers.FieldBytes])

	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "rst-2", lines[1][loggers.FieldRestaurantID])
	assert.EqualValues(t, 400, lines[1][loggers.FieldHttpStatus])
	assert.Equal(t, "HTTP_1000", lines[1][loggers.FieldErrorCode])
}

func TestSetupMiddleware_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "integration test panic"},
		{name: "error panic", panic: assert.AnError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			router := newBufferedRouter(t, &buf)
			router.Get("/analytics/hourly", func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/analytics/hourly", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)

			completed := logLines(t, &buf, "request completed")
			require.Len(t, completed, 1)
			assert.Equal(t, "error", completed[0]["level"])
			assert.Equal(t, "SYS_9000", completed[0][loggers.FieldErrorCode])
		})
	}
}

func TestMwRecoverer_RepanicsOnAbortHandler(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
