package events

import (
	"qrmenu-analytics/internal/models"
)

// TrackedEventBatch carries the events accepted from one tracking request through the
// write-behind stream into the event store. Batches are partitioned by restaurant so one
// restaurant's events reach the store in the order they were accepted.
//
// Example JSON:
//
//	{
//	  "batchId": "01JFX3NDEKTSV4RRFFQ69G5FAV",
//	  "restaurantId": "rst-bistro",
//	  "events": [
//	    {"id": "01JFX3NDEM...", "restaurantId": "rst-bistro", "eventType": "QR_SCAN", "occurredAt": "2025-12-28T18:03:15Z", "sessionId": "s-7f2c"}
//	  ]
//	}
type TrackedEventBatch struct {
	BatchID      string          `json:"batchId"`
	RestaurantID string          `json:"restaurantId"`
	Events       []*models.Event `json:"events"`
}
