package http

import (
	"net/http"

	"qrmenu-analytics/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// appHandlerFunc lets a plain method serve as an AppHttpHandler.
type appHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f appHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), restaurantID(r), idempotencyKey(r), userAgent(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, result)
}
