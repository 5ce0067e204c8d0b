package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/svcerrors"
	"qrmenu-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestLogger(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwMetrics)
	router.Use(mwAccessLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter wraps the writer once so later middleware can read status, size and error code.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// routePattern returns the matched chi pattern, or the raw path when nothing matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// responseOutcome reads what the handler wrote. A handler that never called WriteHeader sent 200.
func responseOutcome(w http.ResponseWriter) (status int, bytesWritten int, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		bytesWritten = appWriter.BytesWritten()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, bytesWritten, errorCode
}

func mwMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, _, errorCode := responseOutcome(w)
		labels := []string{r.Method, routePattern(r), strconv.Itoa(status), errorCode}
		metricRequestsTotal.WithLabelValues(labels...).Inc()
		metricRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// mwRequestLogger extracts or generates a request ID and stores a request-scoped logger on the
// context. The tenant is attached when the caller names one, by header on ingestion or by query
// on the analytics routes.
func mwRequestLogger(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestID(r)
			if reqID == "" {
				reqID = ulid.NewULID()
				setRequestID(r, reqID)
			}

			logCtx := httpLogger.With().Str(loggers.FieldRequestID, reqID)
			if tenant := requestRestaurantID(r); tenant != "" {
				logCtx = logCtx.Str(loggers.FieldRestaurantID, tenant)
			}

			next.ServeHTTP(w, r.WithContext(logCtx.Logger().WithContext(r.Context())))
		})
	}
}

func requestRestaurantID(r *http.Request) string {
	if id := restaurantID(r); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get("restaurantId"))
}

// mwAccessLog writes one line per request; 4xx at warn, 5xx at error.
func mwAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, bytesWritten, errorCode := responseOutcome(w)

			logger := loggers.Ctx(r.Context())
			var event *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Error()
			case status >= http.StatusBadRequest:
				event = logger.Warn()
			default:
				event = logger.Info()
			}

			event.
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Str(loggers.FieldHttpRoute, routePattern(r)).
				Str(loggers.FieldHttpQuery, r.URL.RawQuery).
				Int(loggers.FieldHttpStatus, status).
				Int(loggers.FieldBytes, bytesWritten).
				Str(loggers.FieldErrorCode, errorCode).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 response. http.ErrAbortHandler is
// re-raised so net/http can drop the connection as the handler asked.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(p)
			}

			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}
