package http

import (
	"net/http"

	"qrmenu-analytics/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status, size and service error of a response for the
// metrics and access log middleware.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// Committed reports whether the status line has been sent, after which no error body can follow.
func (w *appResponseWriter) Committed() bool {
	return w.Status() != 0
}
