package models

import "time"

// TrackingBatch is one storefront tracking request as accepted by ingestion. It is archived
// verbatim under its batch id so a retried request with the same idempotency key is detected.
type TrackingBatch struct {
	BatchID      string    `json:"batchId"`
	RestaurantID string    `json:"restaurantId"`
	ReceivedAt   time.Time `json:"receivedAt"`
	Events       []*Event  `json:"events"`
}
