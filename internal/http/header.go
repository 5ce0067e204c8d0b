package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID          = "x-request-id"
	headerContentType        = "content-type"
	headerContentDisposition = "content-disposition"
	headerIdempotencyKey     = "idempotency-key"
	headerRestaurantID       = "x-restaurant-id"
	headerUserAgent          = "user-agent"
	headerRetryAfter         = "retry-after"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

func restaurantID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRestaurantID))
}

func userAgent(r *http.Request) string {
	return r.Header.Get(headerUserAgent)
}
