package models

import "time"

// EventType is the kind of visitor interaction recorded by the storefront.
type EventType string

const (
	EventQRScan       EventType = "QR_SCAN"
	EventMenuView     EventType = "MENU_VIEW"
	EventProductView  EventType = "PRODUCT_VIEW"
	EventContactClick EventType = "CONTACT_CLICK"
)

// IsKnown reports whether t belongs to the closed set of event types. Unknown types still
// count towards totals but never towards a per-type breakdown.
func (t EventType) IsKnown() bool {
	switch t {
	case EventQRScan, EventMenuView, EventProductView, EventContactClick:
		return true
	}
	return false
}

type DeviceType string

const (
	DeviceMobile  DeviceType = "MOBILE"
	DeviceDesktop DeviceType = "DESKTOP"
	DeviceTablet  DeviceType = "TABLET"
	DeviceUnknown DeviceType = ""
)

func (d DeviceType) IsKnown() bool {
	switch d {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return true
	}
	return false
}

// Event is one recorded visitor interaction. Events are read-only once stored; optional
// string fields are empty when absent.
//
// Example JSON:
//
//	{
//	  "id": "01JFX3NDEKTSV4RRFFQ69G5FAV",
//	  "restaurantId": "rst-bistro",
//	  "eventType": "PRODUCT_VIEW",
//	  "occurredAt": "2025-12-28T18:03:15Z",
//	  "sessionId": "s-7f2c",
//	  "visitorId": "v-91aa",
//	  "deviceType": "MOBILE",
//	  "source": "qr",
//	  "productId": "prd-tiramisu",
//	  "tableNo": "12",
//	  "pagePath": "/m/rst-bistro/desserts"
//	}
type Event struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurantId"`
	EventType    EventType  `json:"eventType"`
	OccurredAt   time.Time  `json:"occurredAt"`
	SessionID    string     `json:"sessionId,omitempty"`
	VisitorID    string     `json:"visitorId,omitempty"`
	DeviceType   DeviceType `json:"deviceType,omitempty"`
	Source       string     `json:"source,omitempty"`
	ProductID    string     `json:"productId,omitempty"`
	TableNo      string     `json:"tableNo,omitempty"`
	PagePath     string     `json:"pagePath,omitempty"`
}

// VisitorKey is the identity used for distinct-visitor counts: visitorId, falling back to
// sessionId. Empty when the event carries neither.
func (e *Event) VisitorKey() string {
	if e.VisitorID != "" {
		return e.VisitorID
	}
	return e.SessionID
}
