package http

import (
	"encoding/json"
	"net/http"

	"qrmenu-analytics/internal/shared/loggers"
	"qrmenu-analytics/internal/shared/svcerrors"
)

// upstreamRetryAfterSeconds is sent with 503s; the event store and catalog are not retried server-side.
const upstreamRetryAfterSeconds = "5"

// ErrorResponse is the JSON envelope of every failed request, CSV routes included.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// errorHandlingAdapter turns an AppHttpHandler into a http.HandlerFunc. Errors without a
// service code become SYS_9001.
func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldHttpRoute, routePattern(r)).
				Msg("request failed")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// the metrics and access log middleware read the code back from the writer
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
		if appWriter.Committed() {
			loggers.Ctx(r.Context()).Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("response already started, error body dropped")
			return
		}
	}

	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int(loggers.FieldHttpStatus, svcErr.HttpStatusCode).
		Msg("error response")

	if svcErr.HttpStatusCode == http.StatusServiceUnavailable {
		w.Header().Set(headerRetryAfter, upstreamRetryAfterSeconds)
	}
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(svcErr.HttpStatusCode)

	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
