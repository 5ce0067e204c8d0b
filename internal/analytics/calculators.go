package analytics

import (
	"time"

	"qrmenu-analytics/internal/models"
)

// TotalVisits counts every event, including those with an unrecognised type.
func TotalVisits(events []*models.Event) int64 {
	return int64(len(events))
}

// UniqueVisitors counts distinct visitorId-or-sessionId values. Events carrying neither are
// ignored.
func UniqueVisitors(events []*models.Event) int64 {
	seen := make(map[string]struct{})
	for _, e := range events {
		if key := e.VisitorKey(); key != "" {
			seen[key] = struct{}{}
		}
	}
	return int64(len(seen))
}

func CountByType(events []*models.Event, eventType models.EventType) int64 {
	var n int64
	for _, e := range events {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}

// CountTypes tallies the recognised event types in one pass. Unknown types are left out, so
// the sum never exceeds TotalVisits.
func CountTypes(events []*models.Event) models.EventTypeCounts {
	var counts models.EventTypeCounts
	for _, e := range events {
		switch e.EventType {
		case models.EventQRScan:
			counts.QRScans++
		case models.EventMenuView:
			counts.MenuViews++
		case models.EventProductView:
			counts.ProductViews++
		case models.EventContactClick:
			counts.ContactClicks++
		}
	}
	return counts
}

// BounceRate is the percentage of single-event sessions, 0 when there are no sessions.
func BounceRate(sessions []models.Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var bounced int
	for _, s := range sessions {
		if s.IsBounce {
			bounced++
		}
	}
	return float64(bounced) / float64(len(sessions)) * 100
}

// AvgSessionDuration averages DurationSeconds over non-bounced sessions only.
func AvgSessionDuration(sessions []models.Session) float64 {
	var total float64
	var n int
	for _, s := range sessions {
		if s.IsBounce {
			continue
		}
		total += s.DurationSeconds
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// CountDevices splits events by device type; anything outside the known set is Unknown.
func CountDevices(events []*models.Event) models.DeviceBreakdown {
	var breakdown models.DeviceBreakdown
	for _, e := range events {
		switch e.DeviceType {
		case models.DeviceMobile:
			breakdown.Mobile++
		case models.DeviceDesktop:
			breakdown.Desktop++
		case models.DeviceTablet:
			breakdown.Tablet++
		default:
			breakdown.Unknown++
		}
	}
	return breakdown
}

// LastActivity returns the latest OccurredAt, or nil for an empty set.
func LastActivity(events []*models.Event) *time.Time {
	var last *time.Time
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			continue
		}
		if last == nil || e.OccurredAt.After(*last) {
			t := e.OccurredAt
			last = &t
		}
	}
	return last
}
