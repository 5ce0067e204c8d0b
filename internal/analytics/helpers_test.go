package analytics

import (
	"time"

	"qrmenu-analytics/internal/models"
)

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(seconds int) time.Time {
	return t0.Add(time.Duration(seconds) * time.Second)
}

type eventOpt func(*models.Event)

func withSession(id string) eventOpt { return func(e *models.Event) { e.SessionID = id } }
func withVisitor(id string) eventOpt { return func(e *models.Event) { e.VisitorID = id } }
func withProduct(id string) eventOpt { return func(e *models.Event) { e.ProductID = id } }
func withDevice(d models.DeviceType) eventOpt {
	return func(e *models.Event) { e.DeviceType = d }
}

func newEvent(id, restaurantID string, eventType models.EventType, occurredAt time.Time, opts ...eventOpt) *models.Event {
	e := &models.Event{ID: id, RestaurantID: restaurantID, EventType: eventType, OccurredAt: occurredAt}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// scenarioEvents: s1 scans then views 30s later, s2 views once.
func scenarioEvents() []*models.Event {
	return []*models.Event{
		newEvent("e1", "A", models.EventQRScan, at(0), withSession("s1")),
		newEvent("e2", "A", models.EventMenuView, at(30), withSession("s1")),
		newEvent("e3", "A", models.EventMenuView, at(0), withSession("s2")),
	}
}
